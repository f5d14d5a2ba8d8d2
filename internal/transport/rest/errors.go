package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/assistant-core/internal/domain"
	"github.com/heartmarshall/assistant-core/pkg/ctxutil"
)

// Error codes returned alongside the message so clients can react without
// parsing text.
const (
	codeFeatureDisabled   = "FEATURE_DISABLED"
	codeQuotaExceeded     = "QUOTA_EXCEEDED"
	codeValidation        = "VALIDATION_ERROR"
	codeUnauthorized      = "UNAUTHORIZED"
	codeForbidden         = "FORBIDDEN"
	codeNotFound          = "NOT_FOUND"
	codeUpstream          = "UPSTREAM_UNAVAILABLE"
	codeMalformedUpstream = "MALFORMED_UPSTREAM_RESPONSE"
	codeInternal          = "INTERNAL"
)

type errorResponse struct {
	Error   string       `json:"error"`
	Code    string       `json:"code,omitempty"`
	Feature string       `json:"feature,omitempty"`
	Fields  []fieldError `json:"fields,omitempty"`
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

func writeCodedError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: message, Code: code})
}

// handleError maps a service error onto a status code and body. Unknown
// errors are logged and reported as 500 without detail.
func handleError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var (
		ve *domain.ValidationError
		fe *domain.FeatureDisabledError
	)

	switch {
	case errors.As(err, &ve):
		fields := make([]fieldError, 0, len(ve.Errors))
		for _, e := range ve.Errors {
			fields = append(fields, fieldError{Field: e.Field, Message: e.Message})
		}
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "validation failed", Code: codeValidation, Fields: fields})
	case errors.As(err, &fe):
		writeJSON(w, http.StatusForbidden, errorResponse{
			Error:   "upgrade your plan to use this feature",
			Code:    codeFeatureDisabled,
			Feature: fe.Feature.String(),
		})
	case errors.Is(err, domain.ErrFeatureDisabled):
		writeCodedError(w, http.StatusForbidden, codeFeatureDisabled, "upgrade your plan to use this feature")
	case errors.Is(err, domain.ErrQuotaExceeded):
		writeCodedError(w, http.StatusTooManyRequests, codeQuotaExceeded, "daily AI call limit reached; try again tomorrow or upgrade")
	case errors.Is(err, domain.ErrValidation):
		writeCodedError(w, http.StatusBadRequest, codeValidation, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeCodedError(w, http.StatusUnauthorized, codeUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		writeCodedError(w, http.StatusForbidden, codeForbidden, "forbidden")
	case errors.Is(err, domain.ErrNotFound):
		writeCodedError(w, http.StatusNotFound, codeNotFound, "not found")
	case errors.Is(err, domain.ErrEmbeddingUnavailable), errors.Is(err, domain.ErrReasoningUnavailable):
		log.WarnContext(r.Context(), "upstream unavailable", slog.String("error", err.Error()))
		w.Header().Set("Retry-After", "5")
		writeCodedError(w, http.StatusServiceUnavailable, codeUpstream, "upstream service unavailable, retry later")
	case errors.Is(err, domain.ErrMalformedUpstreamResponse):
		writeCodedError(w, http.StatusBadGateway, codeMalformedUpstream, "upstream returned an unusable response")
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeCodedError(w, http.StatusInternalServerError, codeInternal, "internal server error")
	}
}

// requireAccount returns the authenticated account or writes 401.
func requireAccount(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	accountID, ok := ctxutil.AccountIDFromCtx(r.Context())
	if !ok {
		writeCodedError(w, http.StatusUnauthorized, codeUnauthorized, "unauthorized")
		return uuid.Nil, false
	}
	return accountID, true
}

// decodeBody decodes a JSON request body, rejecting unknown fields.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		writeCodedError(w, http.StatusBadRequest, codeValidation, "invalid request body")
		return false
	}
	return true
}

func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(strings.TrimSpace(r.PathValue(name)))
	if err != nil {
		writeCodedError(w, http.StatusBadRequest, codeValidation, "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}
