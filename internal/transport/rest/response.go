package rest

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"

	"github.com/heartmarshall/library-backend/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Machine-readable error codes. Clients branch on these, never on messages.
const (
	CodeInvalidInput     = "INVALID_INPUT"
	CodeUnauthorized     = "UNAUTHORIZED"
	CodeForbidden        = "FORBIDDEN"
	CodeNotFound         = "NOT_FOUND"
	CodeConflict         = "CONFLICT"
	CodeAlreadyExists    = "ALREADY_EXISTS"
	CodeExhausted        = "EXHAUSTED"
	CodeAlreadyHeld      = "ALREADY_HELD"
	CodeAlreadyReturned  = "ALREADY_RETURNED"
	CodeAlreadyRenewed   = "ALREADY_RENEWED"
	CodeAlreadyUsed      = "ALREADY_USED"
	CodeDuplicatePending = "DUPLICATE_PENDING"
	CodeNotPending       = "NOT_PENDING"
	CodeExpired          = "EXPIRED"
	CodeInvalidToken     = "INVALID_TOKEN"
	CodeWrongSubjectKind = "WRONG_SUBJECT_KIND"
	CodeUnavailable      = "DEPENDENCY_UNAVAILABLE"
	CodeInternal         = "INTERNAL"
)

const (
	defaultPageLimit       = 50
	maxRequestBodyBytes    = 1 << 20
	errMsgInvalidBody      = "invalid request body"
	errMsgInternal         = "internal server error"
	errMsgServiceUnhealthy = "dependency unavailable"
)

// ErrorResponse is the JSON body of every non-2xx response.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Code   string            `json:"code"`
	Fields map[string]string `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Error: message, Code: code})
}

// errorMapping pairs a domain error with its HTTP status and code. Order
// matters: specific conflicts are listed before the ErrConflict family.
var errorMapping = []struct {
	err    error
	status int
	code   string
}{
	{domain.ErrInvalidToken, http.StatusBadRequest, CodeInvalidToken},
	{domain.ErrWrongSubjectKind, http.StatusBadRequest, CodeWrongSubjectKind},
	{domain.ErrValidation, http.StatusBadRequest, CodeInvalidInput},
	{domain.ErrUnauthorized, http.StatusUnauthorized, CodeUnauthorized},
	{domain.ErrForbidden, http.StatusForbidden, CodeForbidden},
	{domain.ErrNotFound, http.StatusNotFound, CodeNotFound},
	{domain.ErrExhausted, http.StatusConflict, CodeExhausted},
	{domain.ErrAlreadyHeld, http.StatusConflict, CodeAlreadyHeld},
	{domain.ErrAlreadyReturned, http.StatusConflict, CodeAlreadyReturned},
	{domain.ErrAlreadyRenewed, http.StatusConflict, CodeAlreadyRenewed},
	{domain.ErrAlreadyUsed, http.StatusConflict, CodeAlreadyUsed},
	{domain.ErrDuplicatePending, http.StatusConflict, CodeDuplicatePending},
	{domain.ErrNotPending, http.StatusConflict, CodeNotPending},
	{domain.ErrAlreadyExists, http.StatusConflict, CodeAlreadyExists},
	{domain.ErrConflict, http.StatusConflict, CodeConflict},
	{domain.ErrExpired, http.StatusGone, CodeExpired},
	{domain.ErrDependencyUnavailable, http.StatusServiceUnavailable, CodeUnavailable},
}

// handleError maps a service error to an HTTP response. Unknown errors are
// logged and reported as 500 without detail.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		fields := make(map[string]string, len(ve.Errors))
		for _, fe := range ve.Errors {
			fields[fe.Field] = fe.Message
		}
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: ve.Error(), Code: CodeInvalidInput, Fields: fields})
		return
	}

	for _, m := range errorMapping {
		if errors.Is(err, m.err) {
			if m.status >= http.StatusInternalServerError {
				log.WarnContext(r.Context(), "dependency unavailable", slog.String("error", err.Error()))
				writeError(w, m.status, m.code, errMsgServiceUnhealthy)
				return
			}
			writeError(w, m.status, m.code, m.err.Error())
			return
		}
	}

	log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
	writeError(w, http.StatusInternalServerError, CodeInternal, errMsgInternal)
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, CodeInvalidInput, errMsgInvalidBody)
		return false
	}
	return true
}

func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		writeError(w, http.StatusBadRequest, CodeInvalidInput, name+" must be a UUID")
		return uuid.Nil, false
	}
	return id, true
}

// pageParams reads limit and offset. Malformed values become a 400.
func pageParams(w http.ResponseWriter, r *http.Request) (limit, offset int, ok bool) {
	q := r.URL.Query()
	limit, offset = defaultPageLimit, 0
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, CodeInvalidInput, "limit must be an integer")
			return 0, 0, false
		}
		limit = n
	}
	if v := q.Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, CodeInvalidInput, "offset must be an integer")
			return 0, 0, false
		}
		offset = n
	}
	return limit, offset, true
}

func queryUUID(w http.ResponseWriter, r *http.Request, name string) (*uuid.UUID, bool) {
	v := strings.TrimSpace(r.URL.Query().Get(name))
	if v == "" {
		return nil, true
	}
	id, err := uuid.Parse(v)
	if err != nil {
		writeError(w, http.StatusBadRequest, CodeInvalidInput, name+" must be a UUID")
		return nil, false
	}
	return &id, true
}

func optionalString(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}
