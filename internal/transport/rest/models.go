package rest

import (
	"time"

	"github.com/heartmarshall/library-backend/internal/domain"
)

type bookResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Author       string    `json:"author"`
	Category     string    `json:"category,omitempty"`
	ISBN         string    `json:"isbn,omitempty"`
	Publisher    string    `json:"publisher,omitempty"`
	PublishYear  *int      `json:"publishYear,omitempty"`
	Location     string    `json:"location,omitempty"`
	Introduction string    `json:"introduction,omitempty"`
	Total        int       `json:"total"`
	Available    int       `json:"available"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

func toBookResponse(b *domain.Book) bookResponse {
	return bookResponse{
		ID:           b.ID.String(),
		Title:        b.Title,
		Author:       b.Author,
		Category:     b.Category,
		ISBN:         b.ISBN,
		Publisher:    b.Publisher,
		PublishYear:  b.PublishYear,
		Location:     b.Location,
		Introduction: b.Introduction,
		Total:        b.Total,
		Available:    b.Available,
		Status:       b.Status().String(),
		CreatedAt:    b.CreatedAt,
	}
}

type loanResponse struct {
	ID         string     `json:"id"`
	BookID     string     `json:"bookId"`
	MemberID   string     `json:"memberId"`
	BorrowedAt time.Time  `json:"borrowedAt"`
	DueAt      time.Time  `json:"dueAt"`
	ReturnedAt *time.Time `json:"returnedAt,omitempty"`
	Renewed    bool       `json:"renewed"`
}

func toLoanResponse(r *domain.BorrowRecord) loanResponse {
	return loanResponse{
		ID:         r.ID.String(),
		BookID:     r.BookID.String(),
		MemberID:   r.MemberID.String(),
		BorrowedAt: r.BorrowedAt,
		DueAt:      r.DueAt,
		ReturnedAt: r.ReturnedAt,
		Renewed:    r.Renewed,
	}
}

type loanPage struct {
	Items []loanResponse `json:"items"`
	Total int            `json:"total"`
}

type statsResponse struct {
	Books        int `json:"bookCount"`
	Members      int `json:"memberCount"`
	OpenLoans    int `json:"borrowCount"`
	OverdueLoans int `json:"overdueCount"`
}

type memberResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FullName  string    `json:"fullName"`
	CreatedAt time.Time `json:"createdAt"`
}

type submissionResponse struct {
	ID            string     `json:"id"`
	MemberID      string     `json:"memberId"`
	Title         string     `json:"title"`
	Author        string     `json:"author"`
	Category      string     `json:"category,omitempty"`
	ISBN          string     `json:"isbn,omitempty"`
	Publisher     string     `json:"publisher,omitempty"`
	PublishYear   *int       `json:"publishYear,omitempty"`
	Description   string     `json:"description,omitempty"`
	Status        string     `json:"status"`
	ReviewComment *string    `json:"reviewComment,omitempty"`
	ReviewedAt    *time.Time `json:"reviewedAt,omitempty"`
	CreatedBookID *string    `json:"createdBookId,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

func toSubmissionResponse(s *domain.BookSubmission) submissionResponse {
	resp := submissionResponse{
		ID:            s.ID.String(),
		MemberID:      s.MemberID.String(),
		Title:         s.Title,
		Author:        s.Author,
		Category:      s.Category,
		ISBN:          s.ISBN,
		Publisher:     s.Publisher,
		PublishYear:   s.PublishYear,
		Description:   s.Description,
		Status:        s.Status.String(),
		ReviewComment: s.ReviewComment,
		ReviewedAt:    s.ReviewedAt,
		CreatedAt:     s.CreatedAt,
	}
	if s.CreatedBookID != nil {
		id := s.CreatedBookID.String()
		resp.CreatedBookID = &id
	}
	return resp
}
