package httpapi

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/daybook/internal/logging"
	"github.com/dmitrijs2005/daybook/internal/server/archive"
	"github.com/dmitrijs2005/daybook/internal/server/config"
	"github.com/dmitrijs2005/daybook/internal/server/entries"
	"github.com/dmitrijs2005/daybook/internal/server/shared/db"
	"github.com/dmitrijs2005/daybook/internal/server/users"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()

	cfg := &config.Config{
		SecretKey:             "test-secret",
		TokenValidityDuration: time.Hour,
	}

	rm := db.NewInMemoryRepositoryManager()
	us := users.NewService(rm.Users(), cfg)
	es := entries.NewService(rm.Entries())
	as := archive.NewService(cfg)

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

	srv, err := NewServer(":0", logger, us, es, as, cfg.SecretKey)
	if err != nil {
		t.Fatalf("NewServer error: %v", err)
	}
	return srv.Routes()
}

func doJSON(t *testing.T, h http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal error: %v", err)
		}
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("decode error: %v (body: %s)", err, rec.Body.String())
	}
	return v
}

func registerAndLogin(t *testing.T, h http.Handler, email, password string) loginResponse {
	t.Helper()

	creds := credentialsRequest{Email: email, Password: password}

	rec := doJSON(t, h, http.MethodPost, "/api/register", "", creds)
	if rec.Code != http.StatusCreated {
		t.Fatalf("register: got status %d, body %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, h, http.MethodPost, "/api/login", "", creds)
	if rec.Code != http.StatusOK {
		t.Fatalf("login: got status %d, body %s", rec.Code, rec.Body.String())
	}
	return decodeBody[loginResponse](t, rec)
}

func TestRegister_Created(t *testing.T) {
	h := newTestHandler(t)

	rec := doJSON(t, h, http.MethodPost, "/api/register", "", credentialsRequest{Email: "alice@example.com", Password: "pw"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("got status %d, body %s", rec.Code, rec.Body.String())
	}

	resp := decodeBody[registerResponse](t, rec)
	if resp.User.ID == 0 || resp.User.Email != "alice@example.com" {
		t.Fatalf("unexpected body: %+v", resp)
	}
}

func TestRegister_MissingFields(t *testing.T) {
	h := newTestHandler(t)

	rec := doJSON(t, h, http.MethodPost, "/api/register", "", credentialsRequest{Email: "alice@example.com"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want 400", rec.Code)
	}
}

func TestRegister_Duplicate(t *testing.T) {
	h := newTestHandler(t)

	creds := credentialsRequest{Email: "dup@example.com", Password: "pw"}
	if rec := doJSON(t, h, http.MethodPost, "/api/register", "", creds); rec.Code != http.StatusCreated {
		t.Fatalf("first register: got status %d", rec.Code)
	}

	rec := doJSON(t, h, http.MethodPost, "/api/register", "", creds)
	if rec.Code != http.StatusConflict {
		t.Fatalf("got status %d, want 409", rec.Code)
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	h := newTestHandler(t)

	if rec := doJSON(t, h, http.MethodPost, "/api/register", "", credentialsRequest{Email: "bob@example.com", Password: "right"}); rec.Code != http.StatusCreated {
		t.Fatalf("register: got status %d", rec.Code)
	}

	rec := doJSON(t, h, http.MethodPost, "/api/login", "", credentialsRequest{Email: "bob@example.com", Password: "wrong"})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("wrong password: got status %d, want 401", rec.Code)
	}

	rec = doJSON(t, h, http.MethodPost, "/api/login", "", credentialsRequest{Email: "ghost@example.com", Password: "whatever"})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("unknown email: got status %d, want 401", rec.Code)
	}
}

func TestEntries_MissingToken(t *testing.T) {
	h := newTestHandler(t)

	rec := doJSON(t, h, http.MethodGet, "/api/entries", "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("got status %d, want 401", rec.Code)
	}
}

func TestEntries_MalformedAuthHeader(t *testing.T) {
	h := newTestHandler(t)

	for _, header := range []string{"Bearer", "Bearer ", "Token abc", "abc"} {
		req := httptest.NewRequest(http.MethodGet, "/api/entries", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("header %q: got status %d, want 401", header, rec.Code)
		}
	}
}

func TestEntries_InvalidToken(t *testing.T) {
	h := newTestHandler(t)

	rec := doJSON(t, h, http.MethodGet, "/api/entries", "not-a-valid-token", nil)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("got status %d, want 403", rec.Code)
	}
}

func TestAppendBatch_EmptyBatch(t *testing.T) {
	h := newTestHandler(t)
	session := registerAndLogin(t, h, "alice@example.com", "pw")

	rec := doJSON(t, h, http.MethodPost, "/api/entries/batch", session.Token, []batchEntryRequest{})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want 400", rec.Code)
	}
}

func TestBatchUpload_IdempotentRoundTrip(t *testing.T) {
	h := newTestHandler(t)
	session := registerAndLogin(t, h, "alice@example.com", "pw")

	batch := []batchEntryRequest{
		{Timestamp: "2024-01-01 10:00:00", Text: "morning"},
		{Timestamp: "2024-01-01 18:00:00", Text: "evening"},
	}

	rec := doJSON(t, h, http.MethodPost, "/api/entries/batch", session.Token, batch)
	if rec.Code != http.StatusOK {
		t.Fatalf("first upload: got status %d, body %s", rec.Code, rec.Body.String())
	}
	inserted := decodeBody[[]entryResponse](t, rec)
	if len(inserted) != 2 {
		t.Fatalf("first upload: expected 2 inserted rows, got %d", len(inserted))
	}

	// same batch again: nothing inserted, not an error
	rec = doJSON(t, h, http.MethodPost, "/api/entries/batch", session.Token, batch)
	if rec.Code != http.StatusOK {
		t.Fatalf("replay: got status %d", rec.Code)
	}
	inserted = decodeBody[[]entryResponse](t, rec)
	if len(inserted) != 0 {
		t.Fatalf("replay: expected 0 inserted rows, got %d", len(inserted))
	}

	rec = doJSON(t, h, http.MethodGet, "/api/entries", session.Token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list: got status %d", rec.Code)
	}
	list := decodeBody[[]entryResponse](t, rec)
	if len(list) != 2 {
		t.Fatalf("list: expected 2 entries, got %d", len(list))
	}
	if list[0].Content != "morning" || list[1].Content != "evening" {
		t.Fatalf("list not ordered by timestamp: %+v", list)
	}
	if list[0].UserID != session.UserID {
		t.Fatalf("entry not scoped to caller: %+v", list[0])
	}
}

func TestEntries_IsolatedBetweenAccounts(t *testing.T) {
	h := newTestHandler(t)
	alice := registerAndLogin(t, h, "alice@example.com", "pw")
	bob := registerAndLogin(t, h, "bob@example.com", "pw")

	rec := doJSON(t, h, http.MethodPost, "/api/entries/batch", alice.Token,
		[]batchEntryRequest{{Timestamp: "2024-01-01 10:00:00", Text: "private"}})
	if rec.Code != http.StatusOK {
		t.Fatalf("upload: got status %d", rec.Code)
	}

	rec = doJSON(t, h, http.MethodGet, "/api/entries", bob.Token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list: got status %d", rec.Code)
	}
	list := decodeBody[[]entryResponse](t, rec)
	if len(list) != 0 {
		t.Fatalf("expected empty log for other account, got %+v", list)
	}
}

func TestGetArchiveURL_RejectsForeignKey(t *testing.T) {
	h := newTestHandler(t)
	session := registerAndLogin(t, h, "alice@example.com", "pw")

	rec := doJSON(t, h, http.MethodGet, "/api/archive/url?key=users/999/2024/1/1/abc", session.Token, nil)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("foreign key: got status %d, want 403", rec.Code)
	}
}

func TestGetArchiveURL_MissingKey(t *testing.T) {
	h := newTestHandler(t)
	session := registerAndLogin(t, h, "alice@example.com", "pw")

	rec := doJSON(t, h, http.MethodGet, "/api/archive/url", session.Token, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("missing key: got status %d, want 400", rec.Code)
	}
}

func TestHealth(t *testing.T) {
	h := newTestHandler(t)

	rec := doJSON(t, h, http.MethodGet, "/health", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200", rec.Code)
	}
}
