package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/kalculo-backend/internal/domain"
	"github.com/heartmarshall/kalculo-backend/internal/service/macrotarget"
	"github.com/heartmarshall/kalculo-backend/pkg/ctxutil"
)

// macroTargetService defines the minimal interface needed by MacroTargetHandler.
type macroTargetService interface {
	SetTargets(ctx context.Context, input macrotarget.SetTargetsInput) (*domain.MacroTargets, error)
	GetActive(ctx context.Context, childID uuid.UUID) (*domain.MacroTargets, error)
	History(ctx context.Context, childID uuid.UUID) ([]domain.MacroTargetsHistoryEntry, error)
}

// MacroTargetHandler serves a child's daily macro targets.
type MacroTargetHandler struct {
	svc macroTargetService
	log *slog.Logger
}

// NewMacroTargetHandler creates a MacroTargetHandler.
func NewMacroTargetHandler(svc macroTargetService, logger *slog.Logger) *MacroTargetHandler {
	return &MacroTargetHandler{svc: svc, log: logger.With("handler", "macrotarget")}
}

type setTargetsRequest struct {
	ProteinTargetGrams float64 `json:"proteinTargetGrams"`
	CarbsTargetGrams   float64 `json:"carbsTargetGrams"`
	FatsTargetGrams    float64 `json:"fatsTargetGrams"`
}

// Set handles PUT /v1/children/{childID}/macro-targets.
func (h *MacroTargetHandler) Set(w http.ResponseWriter, r *http.Request) {
	parentID, ok := ctxutil.ParentIDFromCtx(r.Context())
	if !ok {
		handleError(h.log, w, r, domain.ErrUnauthorized)
		return
	}
	childID, err := childIDFromRequest(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req setTargetsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	targets, err := h.svc.SetTargets(r.Context(), macrotarget.SetTargetsInput{
		ChildID:  childID,
		ParentID: parentID,
		Values: domain.MacroTargetsValues{
			ProteinTargetGrams: req.ProteinTargetGrams,
			CarbsTargetGrams:   req.CarbsTargetGrams,
			FatsTargetGrams:    req.FatsTargetGrams,
		},
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toMacroTargetsResponse(targets))
}

// Get handles GET /v1/children/{childID}/macro-targets.
func (h *MacroTargetHandler) Get(w http.ResponseWriter, r *http.Request) {
	childID, err := childIDFromRequest(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	targets, err := h.svc.GetActive(r.Context(), childID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toMacroTargetsResponse(targets))
}

// History handles GET /v1/children/{childID}/macro-targets/history.
func (h *MacroTargetHandler) History(w http.ResponseWriter, r *http.Request) {
	childID, err := childIDFromRequest(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	entries, err := h.svc.History(r.Context(), childID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toHistoryResponse(entries))
}

func childIDFromRequest(r *http.Request) (uuid.UUID, error) {
	childID, err := uuid.Parse(r.PathValue("childID"))
	if err != nil {
		return uuid.Nil, domain.NewValidationError("childId", "must be a UUID")
	}
	return childID, nil
}
