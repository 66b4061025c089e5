package interview

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"interview-backend/internal/shared/server/middleware"
	"interview-backend/internal/shared/server/respond"
	"interview-backend/internal/shared/telemetry"
)

// maxBodyBytes caps the analyze request body.
const maxBodyBytes = 10 << 20

// Handler wires HTTP handlers to the interview service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches interview routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyze", h.analyze)
	rg.GET("/health", h.health)
	rg.GET("/model-info", h.modelInfo)
	rg.GET("/sample-questions", h.sampleQuestions)
}

func (h *Handler) analyze(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)

	var profile Profile
	if err := c.ShouldBindJSON(&profile); err != nil {
		respond.Failure(c, http.StatusBadRequest, msgInvalidBody+err.Error())
		return
	}
	telemetry.Info("interview.analyze.request", map[string]any{
		"request_id": middleware.RequestIDFromContext(c),
		"position":   profile.Position,
		"experience": profile.Experience,
	})

	result, err := h.Svc.Analyze(c.Request.Context(), profile)
	if err != nil {
		respond.Failure(c, http.StatusInternalServerError, msgInternalError+err.Error())
		return
	}
	if !result.Success {
		respond.Failure(c, http.StatusBadRequest, result.ErrorMessage)
		return
	}
	respond.OK(c, result)
}

func (h *Handler) health(c *gin.Context) {
	telemetry.Debug("interview.health", nil)
	respond.Text(c, http.StatusOK, msgHealthy)
}

func (h *Handler) modelInfo(c *gin.Context) {
	info, err := h.Svc.ModelInfo()
	if err != nil {
		telemetry.Error("interview.model_info.failed", map[string]any{"error": err.Error()})
		respond.Text(c, http.StatusInternalServerError, msgModelInfo+err.Error())
		return
	}
	respond.Text(c, http.StatusOK, info)
}

func (h *Handler) sampleQuestions(c *gin.Context) {
	position, ok := c.GetQuery("position")
	if !ok {
		respond.Failure(c, http.StatusBadRequest, msgSampleFailed+ErrMissingPosition.Error())
		return
	}
	experience := strings.TrimSpace(c.Query("experience"))
	if experience == "" {
		experience = EntryLevel
	}
	telemetry.Info("interview.sample_questions.request", map[string]any{
		"position":   position,
		"experience": experience,
	})
	respond.OK(c, h.Svc.SampleQuestions(position, experience))
}
