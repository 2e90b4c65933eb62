package rest

import "net/http"

// Handlers groups every REST handler mounted by NewRouter.
type Handlers struct {
	Health       *HealthHandler
	Ledger       *LedgerHandler
	Registration *RegistrationHandler
	Submission   *SubmissionHandler

	// Throttle wraps the unauthenticated registration endpoints. Optional.
	Throttle func(http.Handler) http.Handler
}

// NewRouter mounts all endpoints on a ServeMux. Identity is resolved by
// middleware; each service enforces its own role checks.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	throttle := h.Throttle
	if throttle == nil {
		throttle = func(next http.Handler) http.Handler { return next }
	}

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.HandleFunc("POST /books", h.Ledger.AddBook)
	mux.HandleFunc("GET /books", h.Ledger.ListBooks)
	mux.HandleFunc("GET /books/{id}", h.Ledger.GetBook)
	mux.HandleFunc("DELETE /books/{id}", h.Ledger.DeleteBook)
	mux.HandleFunc("POST /books/{id}/borrow", h.Ledger.Borrow)
	mux.HandleFunc("GET /loans", h.Ledger.ListLoans)
	mux.HandleFunc("POST /loans/{id}/return", h.Ledger.Return)
	mux.HandleFunc("POST /loans/{id}/renew", h.Ledger.Renew)
	mux.HandleFunc("GET /stats", h.Ledger.Statistics)

	mux.Handle("POST /auth/register", throttle(http.HandlerFunc(h.Registration.Register)))
	mux.Handle("GET /confirm-registration", throttle(http.HandlerFunc(h.Registration.Confirm)))

	mux.HandleFunc("POST /submissions", h.Submission.Submit)
	mux.HandleFunc("GET /submissions", h.Submission.List)
	mux.HandleFunc("GET /submissions/pending/count", h.Submission.PendingCount)
	mux.HandleFunc("GET /submissions/{id}", h.Submission.Get)
	mux.HandleFunc("POST /submissions/{id}/review", h.Submission.Review)
	mux.HandleFunc("POST /submissions/{id}/cancel", h.Submission.Cancel)

	return mux
}
