package handlers

import (
	"net/http"

	"github.com/tournify/tournament-manager/services"
)

type PoolHandler struct {
	poolService      services.PoolService
	standingsService services.StandingsService
}

func NewPoolHandler(ps services.PoolService, ss services.StandingsService) *PoolHandler {
	return &PoolHandler{poolService: ps, standingsService: ss}
}

type AssignTeamsInput struct {
	TeamIDs []int `json:"team_ids"`
}

// CreatePool godoc
// @Summary Create a pool in a phase
// @Tags pools
// @Accept json
// @Produce json
// @Param phaseID path int true "Phase ID"
// @Param body body services.CreatePoolInput true "Pool data"
// @Success 201 {object} models.Pool
// @Failure 422 {object} map[string]string "Validation failed"
// @Router /phases/{phaseID}/pools [post]
func (h *PoolHandler) CreatePool(w http.ResponseWriter, r *http.Request) {
	phaseID, err := getIDFromURL(r, "phaseID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.CreatePoolInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	input.PhaseID = phaseID

	pool, err := h.poolService.CreatePool(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, pool, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// AssignTeams godoc
// @Summary Assign teams to a pool
// @Tags pools
// @Description All teams are assigned or none. A team can belong to one pool only.
// @Accept json
// @Produce json
// @Param poolID path int true "Pool ID"
// @Param body body AssignTeamsInput true "Team IDs"
// @Success 200 {array} models.Team "Pool roster after the assignment"
// @Failure 404 {object} map[string]string "Pool not found"
// @Failure 409 {object} map[string]string "Team already in a pool"
// @Router /pools/{poolID}/teams [post]
func (h *PoolHandler) AssignTeams(w http.ResponseWriter, r *http.Request) {
	poolID, err := getIDFromURL(r, "poolID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input AssignTeamsInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	roster, err := h.poolService.AssignTeams(r.Context(), poolID, input.TeamIDs)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, roster, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ListPoolTeams godoc
// @Summary List pool teams
// @Tags pools
// @Produce json
// @Param poolID path int true "Pool ID"
// @Success 200 {array} models.Team
// @Router /pools/{poolID}/teams [get]
func (h *PoolHandler) ListPoolTeams(w http.ResponseWriter, r *http.Request) {
	poolID, err := getIDFromURL(r, "poolID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	teams, err := h.poolService.ListPoolTeams(r.Context(), poolID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, teams, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetStandings godoc
// @Summary Pool standings
// @Tags pools
// @Description Ranked by points, goal difference, then goals for. Recomputed on every request.
// @Produce json
// @Param poolID path int true "Pool ID"
// @Success 200 {array} models.Standing
// @Failure 503 {object} map[string]string "Storage unavailable"
// @Router /pools/{poolID}/standings [get]
func (h *PoolHandler) GetStandings(w http.ResponseWriter, r *http.Request) {
	poolID, err := getIDFromURL(r, "poolID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	table, err := h.standingsService.GetStandings(r.Context(), poolID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, table, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
