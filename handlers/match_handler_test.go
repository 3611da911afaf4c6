package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tournify/tournament-manager/models"
	"github.com/tournify/tournament-manager/services"
)

type stubMatchService struct {
	generateInput services.GenerateMatchesInput
	generateErr   error
	scoreCalls    [][3]int
	scoreErr      error
}

func (s *stubMatchService) GenerateMatches(_ context.Context, input services.GenerateMatchesInput) (*services.GenerateMatchesResult, error) {
	s.generateInput = input
	if s.generateErr != nil {
		return nil, s.generateErr
	}
	return &services.GenerateMatchesResult{Count: 6, BatchID: "b5d6c1de-3b0a-4c2e-9d1f-0a6c8f3e2b71"}, nil
}

func (s *stubMatchService) CreateMatch(_ context.Context, input services.CreateMatchInput) (*models.Match, error) {
	return &models.Match{ID: 1, TournamentID: input.TournamentID, Status: models.StatusScheduled}, nil
}

func (s *stubMatchService) UpdateMatch(_ context.Context, id int, _ models.MatchUpdate) (*models.Match, error) {
	return &models.Match{ID: id}, nil
}

func (s *stubMatchService) SubmitScore(_ context.Context, id, score1, score2 int) (*models.Match, error) {
	s.scoreCalls = append(s.scoreCalls, [3]int{id, score1, score2})
	if s.scoreErr != nil {
		return nil, s.scoreErr
	}
	return &models.Match{ID: id, Score1: &score1, Score2: &score2, Status: models.MatchStatusCompleted}, nil
}

func (s *stubMatchService) ListTournamentMatches(context.Context, int) ([]models.Match, error) {
	return []models.Match{}, nil
}

func (s *stubMatchService) ListPoolMatches(context.Context, int) ([]models.Match, error) {
	return []models.Match{}, nil
}

type stubStandingsService struct {
	table []models.Standing
	err   error
}

func (s stubStandingsService) GetStandings(context.Context, int) ([]models.Standing, error) {
	return s.table, s.err
}

func newMatchRouter(ms services.MatchService, ss services.StandingsService) http.Handler {
	mh := NewMatchHandler(ms)
	ph := NewPoolHandler(nil, ss)
	r := chi.NewRouter()
	r.Post("/tournaments/{tournamentID}/matches/generate", mh.GenerateMatches)
	r.Post("/matches/{matchID}/score", mh.SubmitScore)
	r.Get("/pools/{poolID}/standings", ph.GetStandings)
	return r
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestGenerateMatchesHandler(t *testing.T) {
	ms := &stubMatchService{}
	router := newMatchRouter(ms, nil)

	rec := do(t, router, http.MethodPost, "/tournaments/4/matches/generate",
		`{"pool_id": 9, "start_time": "2026-06-13T09:00:00Z", "match_duration_minutes": 20, "break_duration_minutes": 5, "field_ids": [3, 1]}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.EqualValues(t, 6, body["count"])
	assert.NotEmpty(t, body["batch_id"])

	assert.Equal(t, 4, ms.generateInput.TournamentID)
	require.NotNil(t, ms.generateInput.PoolID)
	assert.Equal(t, 9, *ms.generateInput.PoolID)
	assert.Equal(t, []int{3, 1}, ms.generateInput.FieldIDs)
	assert.Equal(t, 20, ms.generateInput.MatchDurationMinutes)
}

func TestGenerateMatchesHandler_Errors(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		body   string
		err    error
		status int
	}{
		{"bad id", "/tournaments/abc/matches/generate", `{}`, nil, http.StatusBadRequest},
		{"unknown key", "/tournaments/1/matches/generate", `{"teams": 3}`, nil, http.StatusBadRequest},
		{"insufficient teams", "/tournaments/1/matches/generate", `{"field_ids": [1]}`, services.ErrInsufficientTeams, http.StatusUnprocessableEntity},
		{"no fields", "/tournaments/1/matches/generate", `{"field_ids": []}`, services.ErrNoFieldsConfigured, http.StatusUnprocessableEntity},
		{"storage", "/tournaments/1/matches/generate", `{"field_ids": [1]}`, fmt.Errorf("%w: dial tcp", services.ErrStorageUnavailable), http.StatusServiceUnavailable},
		{"unexpected", "/tournaments/1/matches/generate", `{"field_ids": [1]}`, errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newMatchRouter(&stubMatchService{generateErr: tt.err}, nil)
			rec := do(t, router, http.MethodPost, tt.path, tt.body)
			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), `"error"`)
		})
	}
}

func TestSubmitScoreHandler(t *testing.T) {
	ms := &stubMatchService{}
	router := newMatchRouter(ms, nil)

	rec := do(t, router, http.MethodPost, "/matches/12/score", `{"score1": 99, "score2": 0}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool         `json:"success"`
		Match   models.Match `json:"match"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, models.MatchStatusCompleted, body.Match.Status)
	assert.Equal(t, [][3]int{{12, 99, 0}}, ms.scoreCalls)
}

func TestSubmitScoreHandler_Rejections(t *testing.T) {
	t.Run("missing score", func(t *testing.T) {
		ms := &stubMatchService{}
		rec := do(t, newMatchRouter(ms, nil), http.MethodPost, "/matches/12/score", `{"score1": 1}`)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Empty(t, ms.scoreCalls)
	})
	t.Run("out of range", func(t *testing.T) {
		ms := &stubMatchService{scoreErr: fmt.Errorf("%w: score1 must be between 0 and 99, got 100", services.ErrValidationFailed)}
		rec := do(t, newMatchRouter(ms, nil), http.MethodPost, "/matches/12/score", `{"score1": 100, "score2": 0}`)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), "between 0 and 99")
	})
	t.Run("unknown match", func(t *testing.T) {
		ms := &stubMatchService{scoreErr: services.ErrMatchNotFound}
		rec := do(t, newMatchRouter(ms, nil), http.MethodPost, "/matches/12/score", `{"score1": 1, "score2": 0}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestGetStandingsHandler(t *testing.T) {
	table := []models.Standing{
		{Rank: 1, Team: models.Team{ID: 1, Name: "A"}, Played: 1, Won: 1, GoalsFor: 3, GoalsAgainst: 1, GoalDifference: 2, Points: 3},
		{Rank: 2, Team: models.Team{ID: 2, Name: "B"}, Played: 1, Lost: 1, GoalsFor: 1, GoalsAgainst: 3, GoalDifference: -2},
	}
	rec := do(t, newMatchRouter(nil, stubStandingsService{table: table}), http.MethodGet, "/pools/3/standings", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got []models.Standing
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, table, got)
}

func TestGetStandingsHandler_EmptyPool(t *testing.T) {
	rec := do(t, newMatchRouter(nil, stubStandingsService{table: []models.Standing{}}), http.MethodGet, "/pools/3/standings", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}
