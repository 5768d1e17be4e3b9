package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/2400031249Gowtham/Certification-Trackerr/internal/api/httpx"
	"github.com/2400031249Gowtham/Certification-Trackerr/internal/auth"
	"github.com/2400031249Gowtham/Certification-Trackerr/internal/models"
	"github.com/2400031249Gowtham/Certification-Trackerr/internal/services"
)

type AuthHandler struct {
	users *services.UserService
	tm    *auth.TokenManager
}

func NewAuthHandler(users *services.UserService, tm *auth.TokenManager) *AuthHandler {
	return &AuthHandler{users: users, tm: tm}
}

type registerReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResp struct {
	AccessToken  string      `json:"accessToken"`
	RefreshToken string      `json:"refreshToken"`
	ExpiresIn    int64       `json:"expiresIn"` // access token lifetime, seconds
	User         models.User `json:"user"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "invalid request body", nil)
		return
	}
	u, err := h.users.Register(r.Context(), req.Username, req.Password, req.FullName, req.Email)
	if err != nil {
		httpx.WriteServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, u)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "invalid request body", nil)
		return
	}
	u, err := h.users.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		httpx.WriteServiceError(w, err)
		return
	}
	h.writeTokens(w, u)
}

type refreshReq struct {
	RefreshToken string `json:"refreshToken"`
}

// Refresh exchanges a valid refresh token for a fresh token pair.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req refreshReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.RefreshToken == "" {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "invalid request body", nil)
		return
	}
	claims, isRefresh, err := h.tm.ParseAny(req.RefreshToken)
	if err != nil || !isRefresh {
		httpx.WriteError(w, http.StatusUnauthorized, "unauthorized", "invalid refresh token", nil)
		return
	}
	u, err := h.users.GetByID(r.Context(), claims.UserID)
	if err != nil {
		httpx.WriteError(w, http.StatusUnauthorized, "unauthorized", "unknown user", nil)
		return
	}
	h.writeTokens(w, u)
}

func (h *AuthHandler) writeTokens(w http.ResponseWriter, u models.User) {
	access, refresh, exp, err := h.tm.GeneratePair(u.ID, u.Role)
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "internal_error", "token generation failed", nil)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, tokenResp{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(time.Until(exp).Seconds()),
		User:         u,
	})
}
