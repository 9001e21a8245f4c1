package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/kalculo-backend/internal/domain"
)

const maxBodyBytes = 64 << 10

// errorResponse is the body of every non-2xx response.
type errorResponse struct {
	Error      string              `json:"error"`
	Code       string              `json:"code"`
	Field      string              `json:"field,omitempty"`
	Fields     []fieldErrorJSON    `json:"fields,omitempty"`
	Compliance *complianceResponse `json:"compliance,omitempty"`
}

type fieldErrorJSON struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// kindCodes maps failure kinds to response codes. Kinds are checked before
// categories so that callers can branch on the specific failure.
var kindCodes = []struct {
	kind error
	code string
}{
	{domain.ErrInvalidQuantity, "INVALID_QUANTITY"},
	{domain.ErrIncompleteFoodNutrition, "INCOMPLETE_FOOD_NUTRITION_DATA"},
	{domain.ErrIncoherentFoodNutrition, "INCOHERENT_FOOD_NUTRITION_DATA"},
	{domain.ErrInvalidMacroTarget, "INVALID_MACRO_TARGET"},
	{domain.ErrFoodItemNotFound, "FOOD_ITEM_NOT_FOUND"},
	{domain.ErrDraftLineNotFound, "DRAFT_LINE_NOT_FOUND"},
	{domain.ErrMacroTargetsNotConfigured, "MACRO_TARGETS_NOT_CONFIGURED"},
	{domain.ErrDraftLocked, "DRAFT_LOCKED"},
	{domain.ErrMenuNotCompliantForLock, "MENU_NOT_COMPLIANT_FOR_LOCK"},
	{domain.ErrMenuNotCompliantForSharing, "MENU_NOT_COMPLIANT_FOR_SHARING"},
	{domain.ErrDraftVersionConflict, "DRAFT_VERSION_CONFLICT"},
}

var categoryStatus = []struct {
	category error
	status   int
	code     string
}{
	{domain.ErrValidation, http.StatusBadRequest, "VALIDATION"},
	{domain.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
	{domain.ErrAlreadyExists, http.StatusConflict, "ALREADY_EXISTS"},
	{domain.ErrConflict, http.StatusConflict, "CONFLICT"},
	{domain.ErrUnauthorized, http.StatusUnauthorized, "UNAUTHORIZED"},
	{domain.ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
}

// handleError writes err as a JSON error response. Unknown errors are
// logged and reported as 500 without detail.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	status, code := classify(err)
	if status == http.StatusInternalServerError {
		log.ErrorContext(r.Context(), "internal error",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		writeError(w, status, code, "internal server error")
		return
	}

	resp := errorResponse{Error: err.Error(), Code: code}

	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		resp.Fields = make([]fieldErrorJSON, len(ve.Errors))
		for i, fe := range ve.Errors {
			resp.Fields[i] = fieldErrorJSON{Field: fe.Field, Message: fe.Message}
		}
	}
	var re *domain.RuleError
	if errors.As(err, &re) {
		resp.Field = re.Field
	}
	var ce *domain.ComplianceError
	if errors.As(err, &ce) {
		c := toComplianceResponse(ce.Compliance)
		resp.Compliance = &c
	}

	writeJSON(w, status, resp)
}

func classify(err error) (int, string) {
	code := ""
	for _, k := range kindCodes {
		if errors.Is(err, k.kind) {
			code = k.code
			break
		}
	}
	for _, c := range categoryStatus {
		if errors.Is(err, c.category) {
			if code == "" {
				code = c.code
			}
			return c.status, code
		}
	}
	return http.StatusInternalServerError, "INTERNAL"
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: message, Code: code})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// decodeJSON reads a size-limited JSON body into dst. Failures are
// reported as validation errors.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return domain.NewValidationError("body", "required")
		}
		return domain.NewValidationError("body", fmt.Sprintf("invalid JSON: %v", err))
	}
	return nil
}
