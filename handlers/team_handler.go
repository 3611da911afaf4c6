package handlers

import (
	"net/http"

	"github.com/tournify/tournament-manager/services"
)

type TeamHandler struct {
	teamService services.TeamService
}

func NewTeamHandler(ts services.TeamService) *TeamHandler {
	return &TeamHandler{teamService: ts}
}

// CreateTeam godoc
// @Summary Register a team
// @Tags teams
// @Accept json
// @Produce json
// @Param tournamentID path int true "Tournament ID"
// @Param body body services.CreateTeamInput true "Team data"
// @Success 201 {object} models.Team
// @Failure 422 {object} map[string]string "Validation failed"
// @Router /tournaments/{tournamentID}/teams [post]
func (h *TeamHandler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.CreateTeamInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	input.TournamentID = tournamentID

	team, err := h.teamService.CreateTeam(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, team, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ListTeams godoc
// @Summary List tournament teams
// @Tags teams
// @Produce json
// @Param tournamentID path int true "Tournament ID"
// @Success 200 {array} models.Team
// @Router /tournaments/{tournamentID}/teams [get]
func (h *TeamHandler) ListTeams(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	teams, err := h.teamService.ListTournamentTeams(r.Context(), tournamentID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, teams, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
