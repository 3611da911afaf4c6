package handlers

import (
	"net/http"

	"github.com/tournify/tournament-manager/models"
	"github.com/tournify/tournament-manager/services"
)

type MatchHandler struct {
	matchService services.MatchService
}

func NewMatchHandler(ms services.MatchService) *MatchHandler {
	return &MatchHandler{matchService: ms}
}

type SubmitScoreInput struct {
	Score1 *int `json:"score1"`
	Score2 *int `json:"score2"`
}

// GenerateMatches godoc
// @Summary Generate a round-robin calendar
// @Tags matches
// @Description Pairs every team of the pool (or of the tournament when pool_id is omitted) and places the matches on the selected fields.
// @Accept json
// @Produce json
// @Param tournamentID path int true "Tournament ID"
// @Param body body services.GenerateMatchesInput true "Scheduling parameters"
// @Success 201 {object} services.GenerateMatchesResult
// @Failure 400 {object} map[string]string "Malformed request"
// @Failure 422 {object} map[string]string "Validation failed, not enough teams or no fields"
// @Failure 503 {object} map[string]string "Storage unavailable"
// @Router /tournaments/{tournamentID}/matches/generate [post]
func (h *MatchHandler) GenerateMatches(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.GenerateMatchesInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	input.TournamentID = tournamentID

	result, err := h.matchService.GenerateMatches(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, result, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// CreateMatch godoc
// @Summary Create a single match
// @Tags matches
// @Accept json
// @Produce json
// @Param tournamentID path int true "Tournament ID"
// @Param body body services.CreateMatchInput true "Match data; pool_id and bracket_id are mutually exclusive"
// @Success 201 {object} models.Match
// @Failure 400 {object} map[string]string "Malformed request"
// @Failure 422 {object} map[string]string "Validation failed"
// @Router /tournaments/{tournamentID}/matches [post]
func (h *MatchHandler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.CreateMatchInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	input.TournamentID = tournamentID

	match, err := h.matchService.CreateMatch(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, match, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ListTournamentMatches godoc
// @Summary List tournament matches
// @Tags matches
// @Produce json
// @Param tournamentID path int true "Tournament ID"
// @Success 200 {array} models.Match "Ordered by scheduled time, then field"
// @Router /tournaments/{tournamentID}/matches [get]
func (h *MatchHandler) ListTournamentMatches(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	matches, err := h.matchService.ListTournamentMatches(r.Context(), tournamentID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, matches, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ListPoolMatches godoc
// @Summary List pool matches
// @Tags pools
// @Produce json
// @Param poolID path int true "Pool ID"
// @Success 200 {array} models.Match
// @Router /pools/{poolID}/matches [get]
func (h *MatchHandler) ListPoolMatches(w http.ResponseWriter, r *http.Request) {
	poolID, err := getIDFromURL(r, "poolID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	matches, err := h.matchService.ListPoolMatches(r.Context(), poolID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, matches, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// UpdateMatch godoc
// @Summary Update match attributes
// @Tags matches
// @Accept json
// @Produce json
// @Param matchID path int true "Match ID"
// @Param body body models.MatchUpdate true "Fields to change"
// @Success 200 {object} models.Match
// @Failure 404 {object} map[string]string "Match not found"
// @Failure 422 {object} map[string]string "Validation failed"
// @Router /matches/{matchID} [patch]
func (h *MatchHandler) UpdateMatch(w http.ResponseWriter, r *http.Request) {
	matchID, err := getIDFromURL(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var upd models.MatchUpdate
	if err := readJSON(w, r, &upd); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	match, err := h.matchService.UpdateMatch(r.Context(), matchID, upd)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, match, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// SubmitScore godoc
// @Summary Submit the final score
// @Tags matches
// @Description Stores both scores (0-99) and marks the match completed. Submitting again overwrites the result.
// @Accept json
// @Produce json
// @Param matchID path int true "Match ID"
// @Param body body SubmitScoreInput true "Scores"
// @Success 200 {object} map[string]interface{} "success and updated match"
// @Failure 404 {object} map[string]string "Match not found"
// @Failure 422 {object} map[string]string "Score out of range"
// @Router /matches/{matchID}/score [post]
func (h *MatchHandler) SubmitScore(w http.ResponseWriter, r *http.Request) {
	matchID, err := getIDFromURL(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input SubmitScoreInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if input.Score1 == nil || input.Score2 == nil {
		failedValidationResponse(w, r, "score1 and score2 are required")
		return
	}

	match, err := h.matchService.SubmitScore(r.Context(), matchID, *input.Score1, *input.Score2)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"success": true, "match": match}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
