package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/heartmarshall/library-backend/internal/service/registration"
)

type registrationService interface {
	Register(ctx context.Context, input registration.RegisterInput) (*registration.RegisterResult, error)
	Decide(ctx context.Context, token string, approved bool) (*registration.Decision, error)
}

// RegistrationHandler serves account registration and the operator's
// approve/reject links.
type RegistrationHandler struct {
	svc registrationService
	log *slog.Logger
}

// NewRegistrationHandler creates a RegistrationHandler.
func NewRegistrationHandler(svc registrationService, logger *slog.Logger) *RegistrationHandler {
	return &RegistrationHandler{svc: svc, log: logger.With("handler", "registration")}
}

type registerRequest struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	FullName    string `json:"fullName"`
	AccountType string `json:"accountType"`
}

type pendingResponse struct {
	Status             string    `json:"status"`
	Email              string    `json:"email"`
	Username           string    `json:"username"`
	ExpiresAt          time.Time `json:"expiresAt"`
	NotificationQueued bool      `json:"notificationQueued"`
}

type decisionResponse struct {
	Status             string `json:"status"`
	Username           string `json:"username"`
	Email              string `json:"email"`
	AdminID            string `json:"adminId,omitempty"`
	NotificationQueued bool   `json:"notificationQueued"`
}

// Register handles POST /auth/register. A member account is created at once
// (201); an admin account is recorded for operator approval (202).
func (h *RegistrationHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := h.svc.Register(r.Context(), registration.RegisterInput{
		Username:    req.Username,
		Email:       req.Email,
		Password:    req.Password,
		FullName:    req.FullName,
		AccountType: registration.AccountType(strings.ToLower(strings.TrimSpace(req.AccountType))),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if p := result.Pending; p != nil {
		writeJSON(w, http.StatusAccepted, pendingResponse{
			Status:             "pending_verification",
			Email:              p.Email,
			Username:           p.Username,
			ExpiresAt:          p.ExpiresAt,
			NotificationQueued: p.NotificationQueued,
		})
		return
	}

	m := result.Member
	writeJSON(w, http.StatusCreated, memberResponse{
		ID:        m.ID.String(),
		Username:  m.Username,
		Email:     m.Email,
		FullName:  m.FullName,
		CreatedAt: m.CreatedAt,
	})
}

// Confirm handles GET /confirm-registration?token=&action=approve|reject.
// It is the target of the links in the operator's verification email.
func (h *RegistrationHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var approved bool
	switch strings.ToLower(q.Get("action")) {
	case "approve":
		approved = true
	case "reject":
		approved = false
	default:
		writeError(w, http.StatusBadRequest, CodeInvalidInput, "action must be approve or reject")
		return
	}

	decision, err := h.svc.Decide(r.Context(), q.Get("token"), approved)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := decisionResponse{
		Status:             "rejected",
		Username:           decision.Username,
		Email:              decision.Email,
		NotificationQueued: decision.NotificationQueued,
	}
	if decision.Approved {
		resp.Status = "approved"
		if decision.Admin != nil {
			resp.AdminID = decision.Admin.ID.String()
		}
	}
	writeJSON(w, http.StatusOK, resp)
}
