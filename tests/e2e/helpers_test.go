//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/heartmarshall/library-backend/internal/adapter/otelmetrics"
	"github.com/heartmarshall/library-backend/internal/adapter/postgres/queue"
	"github.com/heartmarshall/library-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/library-backend/internal/app"
	"github.com/heartmarshall/library-backend/internal/auth"
	"github.com/heartmarshall/library-backend/internal/config"
	"github.com/heartmarshall/library-backend/internal/service/notification"
)

const (
	testJWTSecret  = "test-secret-at-least-32-chars-long!!"
	testJWTIssuer  = "test-issuer"
	operatorEmail  = "operator@library.test"
	confirmBaseURL = "http://library.test/confirm-registration"
	emailWait      = 10 * time.Second
)

// ---------------------------------------------------------------------------
// Recording mailer
// ---------------------------------------------------------------------------

type sentEmail struct {
	To      string
	Subject string
	Body    string
}

type recordingMailer struct {
	mu   sync.Mutex
	sent []sentEmail
}

func (m *recordingMailer) SendEmail(_ context.Context, _, to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, sentEmail{To: to, Subject: subject, Body: body})
	return nil
}

// ---------------------------------------------------------------------------
// testServer wraps the full stack: REST handlers, services, the PostgreSQL
// notification queue and an in-process consumer feeding recordingMailer.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	Mail   *recordingMailer
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	cfg := &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:        testJWTSecret,
			JWTIssuer:        testJWTIssuer,
			PasswordHashCost: 4,
		},
		Lending: config.LendingConfig{
			LoanPeriod:    30 * 24 * time.Hour,
			RenewalPeriod: 30 * 24 * time.Hour,
		},
		Verification: config.VerificationConfig{
			TokenTTL:       12 * time.Hour,
			OperatorEmail:  operatorEmail,
			ConfirmBaseURL: confirmBaseURL,
		},
	}

	sink, err := otelmetrics.New(noop.NewMeterProvider().Meter("e2e"))
	require.NoError(t, err)

	mailer := &recordingMailer{}
	settings := notification.Settings{OperatorEmail: operatorEmail, ConfirmBaseURL: confirmBaseURL}

	// Each server gets its own topic so parallel tests never share mail.
	topic := "e2e-" + uuid.New().String()[:8]
	producer := notification.NewProducer(logger, queue.NewPublisher(pool, topic), sink, 64)
	direct := notification.NewDirectSender(logger, mailer, sink, settings)
	dispatcher := notification.NewDispatcher(logger, producer, direct, true)
	sub := queue.NewSubscriber(pool, topic, "e2e", 20*time.Millisecond, logger)
	consumer := notification.NewConsumer(logger, sub, mailer, sink, settings)

	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	wg.Add(2)
	go func() { defer wg.Done(); _ = producer.Run(ctx) }()
	go func() { defer wg.Done(); _ = consumer.Run(ctx) }()

	srv := httptest.NewServer(app.NewHTTPHandler(app.HTTPDeps{
		Logger:   logger,
		Config:   cfg,
		Pool:     pool,
		Notifier: dispatcher,
	}))

	t.Cleanup(func() {
		srv.Close()
		cancel()
		wg.Wait()
	})

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		Mail:   mailer,
	}
}

// ---------------------------------------------------------------------------
// HTTP helpers
// ---------------------------------------------------------------------------

func (ts *testServer) do(t *testing.T, method, path, token string, body any) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

// doJSON sends a request and decodes the JSON response into a map.
func (ts *testServer) doJSON(t *testing.T, method, path, token string, body any) (int, map[string]any) {
	t.Helper()
	status, raw := ts.do(t, method, path, token, body)

	var out map[string]any
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out), "body: %s", raw)
	}
	return status, out
}

// ---------------------------------------------------------------------------
// Identity helpers
// ---------------------------------------------------------------------------

// accessToken signs a bearer token the way the external identity provider does.
func accessToken(t *testing.T, id uuid.UUID, role string) string {
	t.Helper()

	now := time.Now()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, auth.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.String(),
			Issuer:    testJWTIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(15 * time.Minute)),
		},
		Role: role,
	})
	signed, err := tok.SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return signed
}

func uniqueName(prefix string) string {
	return prefix + "-" + uuid.New().String()[:8]
}

// registerMember creates a member through the public endpoint and returns
// its ID and a bearer token.
func registerMember(t *testing.T, ts *testServer) (uuid.UUID, string) {
	t.Helper()

	name := uniqueName("reader")
	status, body := ts.doJSON(t, http.MethodPost, "/auth/register", "", map[string]any{
		"username": name,
		"email":    name + "@example.com",
		"password": "correct-horse",
		"fullName": "Test Reader",
	})
	require.Equal(t, http.StatusCreated, status, "register member: %v", body)

	id, err := uuid.Parse(body["id"].(string))
	require.NoError(t, err)
	return id, accessToken(t, id, "member")
}

var tokenParam = regexp.MustCompile(`token=([^&\s]+)`)

// requestAdmin files an admin registration and returns the verification
// token from the operator's email.
func requestAdmin(t *testing.T, ts *testServer, username, email string) string {
	t.Helper()

	status, body := ts.doJSON(t, http.MethodPost, "/auth/register", "", map[string]any{
		"username":    username,
		"email":       email,
		"password":    "correct-horse",
		"accountType": "admin",
	})
	require.Equal(t, http.StatusAccepted, status, "register admin: %v", body)
	require.Equal(t, "pending_verification", body["status"])

	msg := waitForEmail(t, ts, operatorEmail, "Administrator registration request", username)
	m := tokenParam.FindStringSubmatch(msg.Body)
	require.Len(t, m, 2, "no token in operator email: %s", msg.Body)

	token, err := url.QueryUnescape(m[1])
	require.NoError(t, err)
	return token
}

// registerAdmin runs the full operator approval flow and returns the new
// admin's ID and a bearer token.
func registerAdmin(t *testing.T, ts *testServer) (uuid.UUID, string) {
	t.Helper()

	name := uniqueName("librarian")
	token := requestAdmin(t, ts, name, name+"@example.com")

	status, body := ts.doJSON(t, http.MethodGet, confirmPath(token, "approve"), "", nil)
	require.Equal(t, http.StatusOK, status, "confirm: %v", body)

	id, err := uuid.Parse(body["adminId"].(string))
	require.NoError(t, err)
	return id, accessToken(t, id, "admin")
}

func confirmPath(token, action string) string {
	return "/confirm-registration?token=" + url.QueryEscape(token) + "&action=" + action
}

// waitForEmail blocks until an email to `to` with `subject` whose body
// mentions `contains` has been sent.
func waitForEmail(t *testing.T, ts *testServer, to, subject, contains string) sentEmail {
	t.Helper()

	var found sentEmail
	require.Eventually(t, func() bool {
		ts.Mail.mu.Lock()
		defer ts.Mail.mu.Unlock()
		for _, e := range ts.Mail.sent {
			if e.To == to && e.Subject == subject && strings.Contains(e.Body, contains) {
				found = e
				return true
			}
		}
		return false
	}, emailWait, 20*time.Millisecond, "no %q email to %s", subject, to)
	return found
}
