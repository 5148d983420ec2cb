package httpapi

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/harudiary/haru/internal/common"
)

func (s *Server) handlePing(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "OK"})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	user, err := s.users.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrDuplicate) {
			writeError(w, http.StatusConflict, "username already taken")
			return
		}
		s.logger.Error(r.Context(), "registration failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	s.logger.Info(r.Context(), "Registered", "username", req.Username)
	writeJSON(w, http.StatusCreated, map[string]string{"user_id": user.ID})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	pair, userID, err := s.users.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		s.logger.Error(r.Context(), "login failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{
		UserID:       userID,
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	pair, userID, err := s.users.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		if errors.Is(err, common.ErrUnauthorized) || errors.Is(err, common.ErrRefreshTokenExpired) {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		s.logger.Error(r.Context(), "token refresh failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{
		UserID:       userID,
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

func (s *Server) handleCreateEntry(w http.ResponseWriter, r *http.Request) {
	var req createEntryRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	userID := userIDFromContext(r.Context())
	id, err := s.entries.Create(r.Context(), userID, req.Title, req.Content)
	if err != nil {
		s.logger.Error(r.Context(), "entry creation failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, createEntryResponse{ID: id})
}

func (s *Server) handleUpdateEntry(w http.ResponseWriter, r *http.Request) {
	var req updateEntryRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	userID := userIDFromContext(r.Context())
	id := chi.URLParam(r, "id")

	if err := s.entries.UpdateContent(r.Context(), userID, id, req.Content); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			writeError(w, http.StatusNotFound, "entry not found")
			return
		}
		s.logger.Error(r.Context(), "entry update failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeleteEntry(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())
	id := chi.URLParam(r, "id")

	if err := s.entries.Delete(r.Context(), userID, id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			writeError(w, http.StatusNotFound, "entry not found")
			return
		}
		s.logger.Error(r.Context(), "entry deletion failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListEntries(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())
	from, to, ok := rangeParams(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "from and to must be given together")
		return
	}

	entries, err := s.entries.List(r.Context(), userID, from, to)
	if err != nil {
		s.logger.Error(r.Context(), "entry listing failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, listEntriesResponse{Entries: entries})
}

// rangeParams reads the optional from/to query pair. Both or neither must be
// present.
func rangeParams(r *http.Request) (from, to string, ok bool) {
	from = r.URL.Query().Get("from")
	to = r.URL.Query().Get("to")
	if (from == "") != (to == "") {
		return "", "", false
	}
	return from, to, true
}
