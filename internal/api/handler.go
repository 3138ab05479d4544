package api

import (
	stderrors "errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Chinex4/unipaddy-app/internal/cgpa"
	"github.com/Chinex4/unipaddy-app/internal/compute"
	"github.com/Chinex4/unipaddy-app/internal/config"
	"github.com/Chinex4/unipaddy-app/internal/excel"
	"github.com/Chinex4/unipaddy-app/internal/logger"
	"github.com/Chinex4/unipaddy-app/internal/model"
	"github.com/Chinex4/unipaddy-app/pkg/errors"
)

const maxImportSize = 5 << 20 // 5 MiB is generous for one semester of rows

type Handler struct {
	service  *cgpa.Service
	importer excel.Importer
	exporter *excel.Exporter
	cfg      *config.Config
	log      zerolog.Logger
}

func NewHandler(service *cgpa.Service, cfg *config.Config) *Handler {
	return &Handler{
		service:  service,
		importer: excel.NewImporter(),
		exporter: excel.NewExporter(),
		cfg:      cfg,
		log:      logger.Get(),
	}
}

func (h *Handler) GetDraft(c *gin.Context) {
	rows, err := h.service.LoadDraft(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to load draft")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, model.DraftResponse{
		Courses: rows,
		Summary: h.service.Summarize(rows),
	})
}

func (h *Handler) SaveDraft(c *gin.Context) {
	var req model.SaveDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	rows, err := h.service.SaveDraft(c.Request.Context(), req.Courses)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.DraftResponse{
		Courses: rows,
		Summary: h.service.Summarize(rows),
	})
}

// AddDraftRow appends one blank row for the add-course action.
func (h *Handler) AddDraftRow(c *gin.Context) {
	rows, err := h.service.AddDraftRow(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to add draft row")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, model.DraftResponse{
		Courses: rows,
		Summary: h.service.Summarize(rows),
	})
}

// ImportDraft replaces the draft with the rows of an uploaded spreadsheet.
func (h *Handler) ImportDraft(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing file upload"})
		return
	}
	if fileHeader.Size > maxImportSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File too large"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unreadable file upload"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unreadable file upload"})
		return
	}

	courses, err := h.importer.Import(c.Request.Context(), data)
	if err != nil {
		h.respondImportError(c, err)
		return
	}

	rows, err := h.service.SaveDraft(c.Request.Context(), courses)
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.log.Info().Int("courses", len(rows)).Msg("Draft imported from spreadsheet")
	c.JSON(http.StatusOK, model.DraftResponse{
		Courses: rows,
		Summary: h.service.Summarize(rows),
	})
}

// Summarize is the live GPA preview for rows still being edited.
func (h *Handler) Summarize(c *gin.Context) {
	var req model.SummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	summary := h.service.Summarize(req.Courses)
	c.JSON(http.StatusOK, gin.H{
		"summary": summary,
		"class":   compute.Classify(summary.GPA),
	})
}

func (h *Handler) Finalize(c *gin.Context) {
	var req model.FinalizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	resp, err := h.service.Finalize(c.Request.Context(), req.Year, req.Term, req.Courses)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ListSemesters(c *gin.Context) {
	semesters, err := h.service.Semesters(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list semesters")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if semesters == nil {
		semesters = []model.SemesterRecord{}
	}
	c.JSON(http.StatusOK, gin.H{"semesters": semesters})
}

func (h *Handler) SemesterCourses(c *gin.Context) {
	id, ok := h.semesterID(c)
	if !ok {
		return
	}

	courses, err := h.service.Courses(c.Request.Context(), id)
	if err != nil {
		h.log.Error().Err(err).Int64("semester_id", id).Msg("Failed to get semester courses")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if courses == nil {
		courses = []model.CourseRow{}
	}
	c.JSON(http.StatusOK, gin.H{"courses": courses})
}

func (h *Handler) Reopen(c *gin.Context) {
	id, ok := h.semesterID(c)
	if !ok {
		return
	}

	rows, err := h.service.Reopen(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.DraftResponse{
		Courses: rows,
		Summary: h.service.Summarize(rows),
	})
}

func (h *Handler) Overall(c *gin.Context) {
	summary, err := h.service.Overall(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to compute overall summary")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *Handler) Transcript(c *gin.Context) {
	ctx := c.Request.Context()

	semesters, err := h.service.Semesters(ctx)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list semesters for transcript")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	courses := make(map[int64][]model.CourseRow, len(semesters))
	for _, rec := range semesters {
		rows, err := h.service.Courses(ctx, rec.ID)
		if err != nil {
			h.log.Error().Err(err).Int64("semester_id", rec.ID).Msg("Failed to get courses for transcript")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		courses[rec.ID] = rows
	}

	overall, err := h.service.Overall(ctx)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to compute overall for transcript")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	data, err := h.exporter.Export(ctx, excel.Transcript{
		Semesters: semesters,
		Courses:   courses,
		Overall:   *overall,
	})
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to export transcript")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="transcript.xlsx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": h.cfg.App.Name,
		"version": h.cfg.App.Version,
	})
}

func (h *Handler) semesterID(c *gin.Context) (int64, bool) {
	idStr := c.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid semester ID"})
		return 0, false
	}
	return id, true
}

// respondImportError keeps parse failures (bad workbook, malformed cells) as
// 400s with the parser's row-level message; validation errors go through the
// shared mapping.
func (h *Handler) respondImportError(c *gin.Context, err error) {
	var verr errors.ValidationError
	if stderrors.As(err, &verr) {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

// respondError maps the error taxonomy onto status codes: rejected input is
// 400 with the offending value echoed, a missing semester is 404, anything
// storage-side is 5xx.
func (h *Handler) respondError(c *gin.Context, err error) {
	var verr errors.ValidationError
	switch {
	case stderrors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": verr.Message,
			"field": verr.Field,
			"value": verr.Value,
		})
	case stderrors.Is(err, errors.ErrInvalidKey):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Year must be positive and term must be 1 or 2"})
	case stderrors.Is(err, errors.ErrInvalidGrade):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid grade letter"})
	case stderrors.Is(err, errors.ErrSemesterNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Semester not found"})
	case stderrors.Is(err, errors.ErrStorageUnavailable):
		h.log.Error().Err(err).Msg("Ledger storage unavailable")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Storage unavailable"})
	default:
		h.log.Error().Err(err).Msg("Unhandled error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
