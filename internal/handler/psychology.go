// Package handler implements the HTTP endpoints of the API server.
package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/psychohealer/psychohealer/internal/middleware"
	"github.com/psychohealer/psychohealer/internal/model"
	"github.com/psychohealer/psychohealer/pkg/logger"
)

// ChatService is the pipeline capability the HTTP layer depends on.
type ChatService interface {
	Respond(ctx context.Context, query, userID string) (*model.ChatResponse, <-chan error)
	History(ctx context.Context, userID string, limit int) ([]model.Entry, error)
	Status() model.StatusResponse
}

// defaultHistoryLimit applies when the history request omits a limit.
const defaultHistoryLimit = 10

// PsychologyHandler handles the psychology chat endpoints.
type PsychologyHandler struct {
	service ChatService
	logger  *logger.Logger
}

// NewPsychologyHandler creates a new psychology handler.
func NewPsychologyHandler(svc ChatService, log *logger.Logger) *PsychologyHandler {
	return &PsychologyHandler{
		service: svc,
		logger:  log,
	}
}

// Chat handles POST /api/v1/psychology/chat
func (h *PsychologyHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req model.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := middleware.ValidateQuery(req.Query); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := middleware.ValidateUserID(req.UserID); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	reqLog := h.logger.WithRequest(middleware.GetCorrelationID(r.Context()), req.UserID)

	// The history write behind resp is fire-and-forget; the client gets its
	// response before the append is durably recorded.
	resp, _ := h.service.Respond(r.Context(), req.Query, req.UserID)

	reqLog.Info("chat request handled",
		zap.String("model_used", resp.ModelUsed),
		zap.Int("videos", len(resp.YouTubeVideos)),
	)

	writeJSON(w, http.StatusOK, resp)
}

// History handles POST /api/v1/psychology/history
func (h *PsychologyHandler) History(w http.ResponseWriter, r *http.Request) {
	var req model.HistoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := middleware.ValidateUserID(req.UserID); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	limit := req.Limit
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	entries, err := h.service.History(r.Context(), req.UserID, limit)
	if err != nil {
		h.logger.WithRequest(middleware.GetCorrelationID(r.Context()), req.UserID).
			Error("failed to get history", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to get history")
		return
	}
	if entries == nil {
		entries = []model.Entry{}
	}

	writeJSON(w, http.StatusOK, &model.HistoryResponse{
		History: entries,
		UserID:  req.UserID,
	})
}

// Status handles GET /api/v1/psychology/status
func (h *PsychologyHandler) Status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Status())
}
