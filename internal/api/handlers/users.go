package handlers

import (
	"net/http"

	"github.com/2400031249Gowtham/Certification-Trackerr/internal/api/httpx"
	"github.com/2400031249Gowtham/Certification-Trackerr/internal/services"
)

type UsersHandler struct {
	users *services.UserService
}

func NewUsersHandler(users *services.UserService) *UsersHandler {
	return &UsersHandler{users: users}
}

// List returns every account. Password hashes never serialize (json:"-").
// The route is admin-gated in the router.
func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		httpx.WriteServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, users)
}
