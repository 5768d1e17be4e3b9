package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/2400031249Gowtham/Certification-Trackerr/internal/api/httpx"
	"github.com/2400031249Gowtham/Certification-Trackerr/internal/middleware"
	"github.com/2400031249Gowtham/Certification-Trackerr/internal/models"
	"github.com/2400031249Gowtham/Certification-Trackerr/internal/query"
	"github.com/2400031249Gowtham/Certification-Trackerr/internal/services"
)

type CertificationsHandler struct {
	certs *services.CertificationService
}

func NewCertificationsHandler(certs *services.CertificationService) *CertificationsHandler {
	return &CertificationsHandler{certs: certs}
}

func actorFrom(r *http.Request) services.Actor {
	u, _ := middleware.UserFrom(r.Context())
	return services.Actor{ID: u.UserID, Role: u.Role}
}

// List supports ?q= (text search), ?status= (all|active|expiring|expired),
// ?sort= (expiration|recent) and, for admins, ?user_id=.
func (h *CertificationsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	statusFilter, err := query.ParseStatusFilter(q.Get("status"))
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", err.Error(), nil)
		return
	}
	certs, err := h.certs.List(r.Context(), actorFrom(r), services.ListOptions{
		UserID: q.Get("user_id"),
		Query:  q.Get("q"),
		Status: statusFilter,
		Sort:   q.Get("sort"),
	})
	if err != nil {
		httpx.WriteServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, certs)
}

func (h *CertificationsHandler) Get(w http.ResponseWriter, r *http.Request) {
	c, err := h.certs.Get(r.Context(), actorFrom(r), chi.URLParam(r, "id"))
	if err != nil {
		httpx.WriteServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, c)
}

func (h *CertificationsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var c models.Certification
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "invalid request body", nil)
		return
	}
	created, err := h.certs.Create(r.Context(), actorFrom(r), c)
	if err != nil {
		httpx.WriteServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, created)
}

func (h *CertificationsHandler) Patch(w http.ResponseWriter, r *http.Request) {
	var patch models.CertificationPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "invalid request body", nil)
		return
	}
	updated, err := h.certs.Update(r.Context(), actorFrom(r), chi.URLParam(r, "id"), patch)
	if err != nil {
		httpx.WriteServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, updated)
}

func (h *CertificationsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.certs.Delete(r.Context(), actorFrom(r), chi.URLParam(r, "id")); err != nil {
		httpx.WriteServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
