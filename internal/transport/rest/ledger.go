package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/library-backend/internal/domain"
	"github.com/heartmarshall/library-backend/internal/service/ledger"
)

type ledgerService interface {
	AddOrReplaceBook(ctx context.Context, input ledger.AddBookInput) (*domain.Book, error)
	GetBook(ctx context.Context, id uuid.UUID) (*domain.Book, error)
	ListBooks(ctx context.Context, input ledger.ListBooksInput) ([]domain.Book, error)
	DeleteBook(ctx context.Context, id uuid.UUID) error
	Borrow(ctx context.Context, bookID uuid.UUID) (*domain.BorrowRecord, error)
	Return(ctx context.Context, loanID uuid.UUID) (*domain.BorrowRecord, error)
	Renew(ctx context.Context, loanID uuid.UUID) (*domain.BorrowRecord, error)
	ListLoans(ctx context.Context, input ledger.ListLoansInput) ([]domain.BorrowRecord, int, error)
	Statistics(ctx context.Context) (*domain.Statistics, error)
}

// LedgerHandler serves catalogue and lending endpoints.
type LedgerHandler struct {
	svc ledgerService
	log *slog.Logger
}

// NewLedgerHandler creates a LedgerHandler.
func NewLedgerHandler(svc ledgerService, logger *slog.Logger) *LedgerHandler {
	return &LedgerHandler{svc: svc, log: logger.With("handler", "ledger")}
}

type addBookRequest struct {
	Title        string `json:"title"`
	Author       string `json:"author"`
	Category     string `json:"category"`
	ISBN         string `json:"isbn"`
	Publisher    string `json:"publisher"`
	PublishYear  *int   `json:"publishYear"`
	Location     string `json:"location"`
	Introduction string `json:"introduction"`
	Total        int    `json:"total"`
}

// AddBook handles POST /books.
func (h *LedgerHandler) AddBook(w http.ResponseWriter, r *http.Request) {
	var req addBookRequest
	if !decodeBody(w, r, &req) {
		return
	}

	book, err := h.svc.AddOrReplaceBook(r.Context(), ledger.AddBookInput{
		Title:        req.Title,
		Author:       req.Author,
		Category:     req.Category,
		ISBN:         req.ISBN,
		Publisher:    req.Publisher,
		PublishYear:  req.PublishYear,
		Location:     req.Location,
		Introduction: req.Introduction,
		Total:        req.Total,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toBookResponse(book))
}

// GetBook handles GET /books/{id}.
func (h *LedgerHandler) GetBook(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	book, err := h.svc.GetBook(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toBookResponse(book))
}

// ListBooks handles GET /books?category=&status=&limit=&offset=.
func (h *LedgerHandler) ListBooks(w http.ResponseWriter, r *http.Request) {
	limit, offset, ok := pageParams(w, r)
	if !ok {
		return
	}

	input := ledger.ListBooksInput{
		Category: optionalString(r.URL.Query().Get("category")),
		Limit:    limit,
		Offset:   offset,
	}
	if v := optionalString(r.URL.Query().Get("status")); v != nil {
		status := domain.BookStatus(*v)
		input.Status = &status
	}

	books, err := h.svc.ListBooks(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]bookResponse, 0, len(books))
	for i := range books {
		resp = append(resp, toBookResponse(&books[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

// DeleteBook handles DELETE /books/{id}.
func (h *LedgerHandler) DeleteBook(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteBook(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Borrow handles POST /books/{id}/borrow.
func (h *LedgerHandler) Borrow(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	rec, err := h.svc.Borrow(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toLoanResponse(rec))
}

// Return handles POST /loans/{id}/return.
func (h *LedgerHandler) Return(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	rec, err := h.svc.Return(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toLoanResponse(rec))
}

// Renew handles POST /loans/{id}/renew.
func (h *LedgerHandler) Renew(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	rec, err := h.svc.Renew(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toLoanResponse(rec))
}

// ListLoans handles GET /loans?member=&book=&state=&limit=&offset=.
func (h *LedgerHandler) ListLoans(w http.ResponseWriter, r *http.Request) {
	limit, offset, ok := pageParams(w, r)
	if !ok {
		return
	}
	memberID, ok := queryUUID(w, r, "member")
	if !ok {
		return
	}
	bookID, ok := queryUUID(w, r, "book")
	if !ok {
		return
	}

	input := ledger.ListLoansInput{MemberID: memberID, BookID: bookID, Limit: limit, Offset: offset}
	if v := optionalString(r.URL.Query().Get("state")); v != nil {
		state := domain.LoanState(*v)
		input.State = &state
	}

	records, total, err := h.svc.ListLoans(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	page := loanPage{Items: make([]loanResponse, 0, len(records)), Total: total}
	for i := range records {
		page.Items = append(page.Items, toLoanResponse(&records[i]))
	}
	writeJSON(w, http.StatusOK, page)
}

// Statistics handles GET /stats.
func (h *LedgerHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Statistics(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, statsResponse{
		Books:        stats.Books,
		Members:      stats.Members,
		OpenLoans:    stats.OpenLoans,
		OverdueLoans: stats.OverdueLoans,
	})
}
