package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/kalculo-backend/internal/domain"
	"github.com/heartmarshall/kalculo-backend/internal/service/menudraft"
	"github.com/heartmarshall/kalculo-backend/pkg/ctxutil"
)

// draftService defines the minimal interface needed by DraftHandler.
type draftService interface {
	ListFoods(ctx context.Context) ([]domain.FoodItem, error)
	GetDailyDraft(ctx context.Context, ref menudraft.DraftRef) (*domain.DailyMenuDraft, error)
	AddFood(ctx context.Context, input menudraft.AddFoodInput) (*domain.DailyMenuDraft, error)
	UpdateLineQuantity(ctx context.Context, input menudraft.UpdateLineQuantityInput) (*domain.DailyMenuDraft, error)
	RemoveLine(ctx context.Context, input menudraft.RemoveLineInput) (*domain.DailyMenuDraft, error)
	MoveLine(ctx context.Context, input menudraft.MoveLineInput) (*domain.DailyMenuDraft, error)
	CalculateCompliance(ctx context.Context, ref menudraft.DraftRef) (*domain.DraftComplianceResult, error)
	LockDraft(ctx context.Context, ref menudraft.DraftRef) (*domain.DailyMenuDraft, error)
	AuthorizeShare(ctx context.Context, ref menudraft.DraftRef) (*domain.DraftComplianceResult, error)
}

// DraftHandler serves the food catalog and daily menu draft endpoints.
type DraftHandler struct {
	svc draftService
	log *slog.Logger
}

// NewDraftHandler creates a DraftHandler.
func NewDraftHandler(svc draftService, logger *slog.Logger) *DraftHandler {
	return &DraftHandler{svc: svc, log: logger.With("handler", "draft")}
}

type addLineRequest struct {
	FoodID        string  `json:"foodId"`
	QuantityGrams float64 `json:"quantityGrams"`
}

type updateLineRequest struct {
	QuantityGrams float64 `json:"quantityGrams"`
}

type moveLineRequest struct {
	Direction string `json:"direction"`
}

// ListFoods handles GET /v1/foods.
func (h *DraftHandler) ListFoods(w http.ResponseWriter, r *http.Request) {
	foods, err := h.svc.ListFoods(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]foodResponse, len(foods))
	for i, f := range foods {
		out[i] = toFoodResponse(f)
	}
	writeJSON(w, http.StatusOK, out)
}

// GetDraft handles GET /v1/children/{childID}/drafts/{day}.
func (h *DraftHandler) GetDraft(w http.ResponseWriter, r *http.Request) {
	ref, err := draftRefFromRequest(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	draft, err := h.svc.GetDailyDraft(r.Context(), ref)
	h.writeDraft(w, r, draft, err)
}

// AddLine handles POST /v1/children/{childID}/drafts/{day}/lines.
func (h *DraftHandler) AddLine(w http.ResponseWriter, r *http.Request) {
	ref, err := draftRefFromRequest(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req addLineRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	draft, err := h.svc.AddFood(r.Context(), menudraft.AddFoodInput{
		DraftRef:      ref,
		FoodID:        req.FoodID,
		QuantityGrams: req.QuantityGrams,
	})
	h.writeDraft(w, r, draft, err)
}

// UpdateLine handles PATCH /v1/children/{childID}/drafts/{day}/lines/{lineID}.
func (h *DraftHandler) UpdateLine(w http.ResponseWriter, r *http.Request) {
	ref, lineID, err := lineRefFromRequest(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req updateLineRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	draft, err := h.svc.UpdateLineQuantity(r.Context(), menudraft.UpdateLineQuantityInput{
		DraftRef:      ref,
		LineID:        lineID,
		QuantityGrams: req.QuantityGrams,
	})
	h.writeDraft(w, r, draft, err)
}

// RemoveLine handles DELETE /v1/children/{childID}/drafts/{day}/lines/{lineID}.
func (h *DraftHandler) RemoveLine(w http.ResponseWriter, r *http.Request) {
	ref, lineID, err := lineRefFromRequest(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	draft, err := h.svc.RemoveLine(r.Context(), menudraft.RemoveLineInput{
		DraftRef: ref,
		LineID:   lineID,
	})
	h.writeDraft(w, r, draft, err)
}

// MoveLine handles POST /v1/children/{childID}/drafts/{day}/lines/{lineID}/move.
func (h *DraftHandler) MoveLine(w http.ResponseWriter, r *http.Request) {
	ref, lineID, err := lineRefFromRequest(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req moveLineRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	draft, err := h.svc.MoveLine(r.Context(), menudraft.MoveLineInput{
		DraftRef:  ref,
		LineID:    lineID,
		Direction: domain.MoveDirection(req.Direction),
	})
	h.writeDraft(w, r, draft, err)
}

// Compliance handles GET /v1/children/{childID}/drafts/{day}/compliance.
func (h *DraftHandler) Compliance(w http.ResponseWriter, r *http.Request) {
	ref, err := draftRefFromRequest(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	result, err := h.svc.CalculateCompliance(r.Context(), ref)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toComplianceResponse(*result))
}

// Lock handles POST /v1/children/{childID}/drafts/{day}/lock.
func (h *DraftHandler) Lock(w http.ResponseWriter, r *http.Request) {
	ref, err := draftRefFromRequest(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	draft, err := h.svc.LockDraft(r.Context(), ref)
	h.writeDraft(w, r, draft, err)
}

// ShareAuthorization handles GET /v1/children/{childID}/drafts/{day}/share-authorization.
func (h *DraftHandler) ShareAuthorization(w http.ResponseWriter, r *http.Request) {
	ref, err := draftRefFromRequest(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	result, err := h.svc.AuthorizeShare(r.Context(), ref)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, shareAuthorizationResponse{
		Authorized: true,
		Compliance: toComplianceResponse(*result),
	})
}

func (h *DraftHandler) writeDraft(w http.ResponseWriter, r *http.Request, draft *domain.DailyMenuDraft, err error) {
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toDraftResponse(draft))
}

// draftRefFromRequest builds a DraftRef from the token subject and the
// {childID} and {day} path values.
func draftRefFromRequest(r *http.Request) (menudraft.DraftRef, error) {
	parentID, ok := ctxutil.ParentIDFromCtx(r.Context())
	if !ok {
		return menudraft.DraftRef{}, domain.ErrUnauthorized
	}

	var errs []domain.FieldError
	childID, err := uuid.Parse(r.PathValue("childID"))
	if err != nil {
		errs = append(errs, domain.FieldError{Field: "childId", Message: "must be a UUID"})
	}
	day, err := domain.ParseDay(r.PathValue("day"))
	if err != nil {
		errs = append(errs, domain.FieldError{Field: "day", Message: "must be a YYYY-MM-DD date"})
	}
	if len(errs) > 0 {
		return menudraft.DraftRef{}, domain.NewValidationErrors(errs)
	}

	return menudraft.DraftRef{ParentID: parentID, ChildID: childID, Day: day}, nil
}

func lineRefFromRequest(r *http.Request) (menudraft.DraftRef, uuid.UUID, error) {
	ref, err := draftRefFromRequest(r)
	if err != nil {
		return ref, uuid.Nil, err
	}
	lineID, err := uuid.Parse(r.PathValue("lineID"))
	if err != nil {
		return ref, uuid.Nil, domain.NewValidationError("lineId", "must be a UUID")
	}
	return ref, lineID, nil
}
