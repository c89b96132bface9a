package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/daybook/internal/common"
	"github.com/dmitrijs2005/daybook/internal/server/archive"
	"github.com/dmitrijs2005/daybook/internal/server/entries"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

type registerResponse struct {
	User userResponse `json:"user"`
}

type loginResponse struct {
	UserID int64  `json:"userId"`
	Token  string `json:"token"`
}

type entryResponse struct {
	ID        int64  `json:"id"`
	CreatedAt string `json:"created_at"`
	Content   string `json:"content"`
	UserID    int64  `json:"user_id"`
}

type batchEntryRequest struct {
	Timestamp string `json:"timestamp"`
	Text      string `json:"text"`
}

type archiveResponse struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

type archiveURLResponse struct {
	URL string `json:"url"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func toEntryResponses(list []entries.Entry) []entryResponse {
	result := make([]entryResponse, 0, len(list))
	for _, e := range list {
		result = append(result, entryResponse{ID: e.ID, CreatedAt: e.CreatedAt, Content: e.Content, UserID: e.UserID})
	}
	return result
}

func (s *Server) Register(w http.ResponseWriter, r *http.Request) {

	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := s.users.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrValidation):
			writeError(w, http.StatusBadRequest, "Email and password required")
		case errors.Is(err, common.ErrAlreadyExists):
			writeError(w, http.StatusConflict, "User already exists")
		default:
			s.logger.Error(r.Context(), "registration failed", "error", err.Error())
			writeError(w, http.StatusInternalServerError, "Database error")
		}
		return
	}

	s.logger.Info(r.Context(), "registered", "email", user.Email)
	writeJSON(w, http.StatusCreated, registerResponse{User: userResponse{ID: user.ID, Email: user.Email}})
}

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {

	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := s.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrValidation):
			writeError(w, http.StatusBadRequest, "Email and password required")
		case errors.Is(err, common.ErrUnauthorized):
			writeError(w, http.StatusUnauthorized, "Invalid credentials")
		default:
			s.logger.Error(r.Context(), "login failed", "error", err.Error())
			writeError(w, http.StatusInternalServerError, "Login failed")
		}
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{UserID: result.UserID, Token: result.Token})
}

func (s *Server) ListEntries(w http.ResponseWriter, r *http.Request) {

	uid, ok := userID(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	list, err := s.entries.List(r.Context(), uid)
	if err != nil {
		s.logger.Error(r.Context(), "entry list failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "Database query failed")
		return
	}

	writeJSON(w, http.StatusOK, toEntryResponses(list))
}

func (s *Server) AppendBatch(w http.ResponseWriter, r *http.Request) {

	uid, ok := userID(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var req []batchEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	batch := make([]entries.NewEntry, 0, len(req))
	for _, e := range req {
		batch = append(batch, entries.NewEntry{Timestamp: e.Timestamp, Text: e.Text})
	}

	inserted, err := s.entries.AppendBatch(r.Context(), uid, batch)
	if err != nil {
		if errors.Is(err, common.ErrValidation) {
			writeError(w, http.StatusBadRequest, "No entries provided")
			return
		}
		s.logger.Error(r.Context(), "entry batch failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "Database insert failed")
		return
	}

	s.logger.Info(r.Context(), "batch appended", "received", len(batch), "inserted", len(inserted))
	writeJSON(w, http.StatusOK, toEntryResponses(inserted))
}

func (s *Server) CreateArchive(w http.ResponseWriter, r *http.Request) {

	uid, ok := userID(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	key, url, err := s.archive.GetPresignedPutUrl(r.Context(), uid)
	if err != nil {
		s.logger.Error(r.Context(), "archive presign failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "Archive failed")
		return
	}

	writeJSON(w, http.StatusOK, archiveResponse{Key: key, URL: url})
}

func (s *Server) GetArchiveURL(w http.ResponseWriter, r *http.Request) {

	uid, ok := userID(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	key := r.URL.Query().Get("key")
	if key == "" {
		writeError(w, http.StatusBadRequest, "Key required")
		return
	}
	if !archive.OwnedBy(key, uid) {
		writeError(w, http.StatusForbidden, "Forbidden")
		return
	}

	url, err := s.archive.GetPresignedGetUrl(r.Context(), key)
	if err != nil {
		s.logger.Error(r.Context(), "archive presign failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "Archive failed")
		return
	}

	writeJSON(w, http.StatusOK, archiveURLResponse{URL: url})
}
