package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/library-backend/internal/domain"
	"github.com/heartmarshall/library-backend/internal/service/submission"
)

type submissionService interface {
	Submit(ctx context.Context, input submission.SubmitInput) (*domain.BookSubmission, error)
	Review(ctx context.Context, input submission.ReviewInput) (*submission.ReviewResult, error)
	Cancel(ctx context.Context, id uuid.UUID) (*domain.BookSubmission, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.BookSubmission, error)
	List(ctx context.Context, input submission.ListInput) ([]domain.BookSubmission, error)
	PendingCount(ctx context.Context) (int, error)
}

// SubmissionHandler serves member book submissions and their review.
type SubmissionHandler struct {
	svc submissionService
	log *slog.Logger
}

// NewSubmissionHandler creates a SubmissionHandler.
func NewSubmissionHandler(svc submissionService, logger *slog.Logger) *SubmissionHandler {
	return &SubmissionHandler{svc: svc, log: logger.With("handler", "submission")}
}

type submitRequest struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	Category    string `json:"category"`
	ISBN        string `json:"isbn"`
	Publisher   string `json:"publisher"`
	PublishYear *int   `json:"publishYear"`
	Description string `json:"description"`
}

type reviewRequest struct {
	Approved bool    `json:"approved"`
	Comment  *string `json:"comment"`
}

type reviewResponse struct {
	Submission         submissionResponse `json:"submission"`
	Book               *bookResponse      `json:"book,omitempty"`
	NotificationQueued bool               `json:"notificationQueued"`
}

// Submit handles POST /submissions.
func (h *SubmissionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if !decodeBody(w, r, &req) {
		return
	}

	sub, err := h.svc.Submit(r.Context(), submission.SubmitInput{
		Title:       req.Title,
		Author:      req.Author,
		Category:    req.Category,
		ISBN:        req.ISBN,
		Publisher:   req.Publisher,
		PublishYear: req.PublishYear,
		Description: req.Description,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toSubmissionResponse(sub))
}

// Get handles GET /submissions/{id}.
func (h *SubmissionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	sub, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSubmissionResponse(sub))
}

// List handles GET /submissions?member=&status=&limit=&offset=.
func (h *SubmissionHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset, ok := pageParams(w, r)
	if !ok {
		return
	}
	memberID, ok := queryUUID(w, r, "member")
	if !ok {
		return
	}

	input := submission.ListInput{MemberID: memberID, Limit: limit, Offset: offset}
	if v := optionalString(r.URL.Query().Get("status")); v != nil {
		status := domain.SubmissionStatus(*v)
		input.Status = &status
	}

	subs, err := h.svc.List(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]submissionResponse, 0, len(subs))
	for i := range subs {
		resp = append(resp, toSubmissionResponse(&subs[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Review handles POST /submissions/{id}/review.
func (h *SubmissionHandler) Review(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req reviewRequest
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := h.svc.Review(r.Context(), submission.ReviewInput{
		SubmissionID: id,
		Approved:     req.Approved,
		Comment:      req.Comment,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := reviewResponse{
		Submission:         toSubmissionResponse(result.Submission),
		NotificationQueued: result.NotificationQueued,
	}
	if result.Book != nil {
		b := toBookResponse(result.Book)
		resp.Book = &b
	}
	writeJSON(w, http.StatusOK, resp)
}

// Cancel handles POST /submissions/{id}/cancel.
func (h *SubmissionHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	sub, err := h.svc.Cancel(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSubmissionResponse(sub))
}

// PendingCount handles GET /submissions/pending/count.
func (h *SubmissionHandler) PendingCount(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.PendingCount(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"pending": n})
}
