package draft

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chinex4/unipaddy-app/internal/model"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	return NewFileStore(filepath.Join(t.TempDir(), "draft.json"))
}

func TestFileStoreLoadEmpty(t *testing.T) {
	store := newTestStore(t)

	rows, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.NotNil(t, rows)
}

func TestFileStoreRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	rows := []model.CourseRow{
		{ID: "r1", Code: "MTH101", Units: 3, Grade: model.GradeA, Points: 15},
		{ID: "r2", Code: "PHY101", Units: 2, Grade: model.GradeC, Points: 6},
	}
	require.NoError(t, store.Save(ctx, rows))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, rows, loaded)
}

func TestFileStoreSaveReplaces(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first := []model.CourseRow{{ID: "r1", Code: "MTH101", Units: 3, Grade: model.GradeA, Points: 15}}
	second := []model.CourseRow{{ID: "r2", Code: "CHM101", Units: 2, Grade: model.GradeB, Points: 8}}

	require.NoError(t, store.Save(ctx, first))
	require.NoError(t, store.Save(ctx, second))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, second, loaded)
}

func TestFileStoreClear(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, []model.CourseRow{{ID: "r1", Code: "MTH101", Units: 3, Grade: model.GradeA}}))
	require.NoError(t, store.Save(ctx, nil))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestFileStoreSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "draft.json")
	ctx := context.Background()

	rows := []model.CourseRow{{ID: "r1", Code: "GST101", Units: 1, Grade: model.GradeE, Points: 1}}
	require.NoError(t, NewFileStore(path).Save(ctx, rows))

	loaded, err := NewFileStore(path).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, rows, loaded)
}
