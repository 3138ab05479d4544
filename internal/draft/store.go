package draft

import (
	"context"

	"github.com/Chinex4/unipaddy-app/internal/model"
)

// Store persists the single in-progress course list. Load returns an empty
// slice when no draft has ever been saved; Save fully replaces the previous
// draft, last write wins. Clearing the draft is Save(ctx, nil).
type Store interface {
	Load(ctx context.Context) ([]model.CourseRow, error)
	Save(ctx context.Context, rows []model.CourseRow) error
}
