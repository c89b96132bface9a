package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/daybook/internal/client/models"
)

// HTTPClient talks JSON over HTTP to the daybook backend. The session token
// obtained at login is kept on the client and attached as a Bearer credential
// to the identity-scoped calls. The token is guarded by a mutex: requests run
// on the flush timer goroutine while login/logout update the token from the
// caller's goroutine.
type HTTPClient struct {
	baseURL string
	http    *http.Client

	mu    sync.Mutex
	token string
}

func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 12 * time.Second},
	}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	UserID int64  `json:"userId"`
	Token  string `json:"token"`
}

type entryDTO struct {
	ID        int64  `json:"id"`
	CreatedAt string `json:"created_at"`
	Content   string `json:"content"`
	UserID    int64  `json:"user_id"`
}

type batchEntryDTO struct {
	Timestamp string `json:"timestamp"`
	Text      string `json:"text"`
}

type archiveDTO struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

func (c *HTTPClient) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *HTTPClient) bearer() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

// do sends one JSON request and decodes the response into out (unless nil).
// Non-2xx statuses are collapsed into the package sentinel errors so callers
// can match with errors.Is regardless of endpoint.
func (c *HTTPClient) do(ctx context.Context, method, path string, body any, authorized bool, out any) error {

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authorized {
		req.Header.Set("Authorization", "Bearer "+c.bearer())
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return ErrUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return c.mapStatus(resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return err
		}
	}

	return nil
}

func (c *HTTPClient) mapStatus(status int) error {
	switch status {
	case http.StatusBadRequest:
		return ErrValidation
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusConflict:
		return ErrConflict
	default:
		return fmt.Errorf("server error: status %d", status)
	}
}

func (c *HTTPClient) Register(ctx context.Context, email string, password string) error {
	return c.do(ctx, http.MethodPost, "/api/register", credentialsRequest{Email: email, Password: password}, false, nil)
}

func (c *HTTPClient) Login(ctx context.Context, email string, password string) (*Session, error) {

	var resp loginResponse
	err := c.do(ctx, http.MethodPost, "/api/login", credentialsRequest{Email: email, Password: password}, false, &resp)
	if err != nil {
		return nil, err
	}

	c.SetToken(resp.Token)

	return &Session{UserID: resp.UserID, Token: resp.Token}, nil
}

func (c *HTTPClient) ListEntries(ctx context.Context) ([]models.Entry, error) {

	var resp []entryDTO
	if err := c.do(ctx, http.MethodGet, "/api/entries", nil, true, &resp); err != nil {
		return nil, err
	}

	result := make([]models.Entry, 0, len(resp))
	for _, e := range resp {
		result = append(result, models.Entry{
			ServerID:  e.ID,
			Timestamp: e.CreatedAt,
			Text:      e.Content,
			UserID:    e.UserID,
		})
	}

	return result, nil
}

func (c *HTTPClient) AppendBatch(ctx context.Context, entries []models.Entry) ([]models.Entry, error) {

	batch := make([]batchEntryDTO, 0, len(entries))
	for _, e := range entries {
		batch = append(batch, batchEntryDTO{Timestamp: e.Timestamp, Text: e.Text})
	}

	var resp []entryDTO
	if err := c.do(ctx, http.MethodPost, "/api/entries/batch", batch, true, &resp); err != nil {
		return nil, err
	}

	result := make([]models.Entry, 0, len(resp))
	for _, e := range resp {
		result = append(result, models.Entry{
			ServerID:  e.ID,
			Timestamp: e.CreatedAt,
			Text:      e.Content,
			UserID:    e.UserID,
		})
	}

	return result, nil
}

func (c *HTTPClient) CreateArchive(ctx context.Context) (string, string, error) {

	var resp archiveDTO
	if err := c.do(ctx, http.MethodPost, "/api/archive", nil, true, &resp); err != nil {
		return "", "", err
	}

	return resp.Key, resp.URL, nil
}

func (c *HTTPClient) GetArchiveURL(ctx context.Context, key string) (string, error) {

	q := url.Values{"key": {key}}

	var resp archiveDTO
	if err := c.do(ctx, http.MethodGet, "/api/archive/url?"+q.Encode(), nil, true, &resp); err != nil {
		return "", err
	}

	return resp.URL, nil
}
