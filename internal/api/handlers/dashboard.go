package handlers

import (
	"net/http"

	"github.com/2400031249Gowtham/Certification-Trackerr/internal/api/httpx"
	"github.com/2400031249Gowtham/Certification-Trackerr/internal/services"
)

type DashboardHandler struct {
	dash *services.DashboardService
}

func NewDashboardHandler(dash *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dash: dash}
}

// Overview returns the stat-card counts plus the expiring-soon and
// recently-issued lists, scoped to the caller's role.
func (h *DashboardHandler) Overview(w http.ResponseWriter, r *http.Request) {
	o, err := h.dash.Overview(r.Context(), actorFrom(r))
	if err != nil {
		httpx.WriteServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, o)
}
