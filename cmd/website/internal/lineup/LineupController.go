package lineup

import (
	"log/slog"
	"net/http"

	"github.com/adampresley/adamgokit/httphelpers"
	"github.com/llpevents/website/cmd/website/internal/api"
	"github.com/llpevents/website/pkg/models"
	"github.com/llpevents/website/pkg/services"
)

type LineupHandlers interface {
	GetLineup(w http.ResponseWriter, r *http.Request)
}

type LineupControllerConfig struct {
	LineupService services.LineupServicer
}

type LineupController struct {
	lineupService services.LineupServicer
}

func NewLineupController(config LineupControllerConfig) LineupController {
	return LineupController{
		lineupService: config.LineupService,
	}
}

/*
GET /api/lineup?email={email}

An unknown email returns an empty entry list, not a 404. This lookup
is a convenience for singers checking their set list, not a login.
*/
func (c LineupController) GetLineup(w http.ResponseWriter, r *http.Request) {
	email := httphelpers.GetFromRequest[string](r, "email")

	if email == "" {
		api.WriteError(w, http.StatusBadRequest, "Email is required")
		return
	}

	entries, err := c.lineupService.GetEntriesByEmail(email)

	if err != nil {
		slog.Error("error reading singer lineup", "error", err)
		api.WriteErrorDetail(w, http.StatusInternalServerError, "Failed to load lineup", err.Error())
		return
	}

	api.WriteJson(w, http.StatusOK, struct {
		Email   string               `json:"email"`
		Entries []models.LineupEntry `json:"entries"`
	}{
		Email:   email,
		Entries: entries,
	})
}
