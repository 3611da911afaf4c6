package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/tournify/tournament-manager/models"
)

// RosterRepositoryTestSuite covers the pool, team, field and tournament
// repositories that feed the scheduler and the standings.
type RosterRepositoryTestSuite struct {
	suite.Suite
	db   *sqlx.DB
	mock sqlmock.Sqlmock
	ctx  context.Context
}

func (s *RosterRepositoryTestSuite) SetupTest() {
	mockDB, mock, err := sqlmock.New()
	require.NoError(s.T(), err)

	s.db = sqlx.NewDb(mockDB, "sqlmock")
	s.mock = mock
	s.ctx = context.Background()
}

func (s *RosterRepositoryTestSuite) TearDownTest() {
	assert.NoError(s.T(), s.mock.ExpectationsWereMet())
	s.db.Close()
}

func (s *RosterRepositoryTestSuite) TestPoolGetPhaseID() {
	s.mock.ExpectQuery(`SELECT phase_id FROM pools WHERE id = \$1`).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"phase_id"}).AddRow(8))

	phaseID, err := NewPoolRepository(s.db).GetPhaseID(s.ctx, nil, 3)

	require.NoError(s.T(), err)
	require.NotNil(s.T(), phaseID)
	assert.Equal(s.T(), 8, *phaseID)
}

func (s *RosterRepositoryTestSuite) TestPoolGetPhaseID_UnknownPool() {
	s.mock.ExpectQuery(`SELECT phase_id FROM pools`).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"phase_id"}))

	phaseID, err := NewPoolRepository(s.db).GetPhaseID(s.ctx, nil, 3)

	require.NoError(s.T(), err)
	assert.Nil(s.T(), phaseID)
}

func (s *RosterRepositoryTestSuite) TestPoolGetByID_NotFound() {
	s.mock.ExpectQuery(`FROM pools WHERE id = \$1`).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"id", "phase_id", "name", "emoji", "created_at"}))

	pool, err := NewPoolRepository(s.db).GetByID(s.ctx, nil, 5)

	assert.Nil(s.T(), pool)
	assert.ErrorIs(s.T(), err, ErrPoolNotFound)
}

func (s *RosterRepositoryTestSuite) TestPoolCreate() {
	s.mock.ExpectQuery(`INSERT INTO pools`).
		WithArgs(2, "Poule A", nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(3, time.Now()))

	pool := &models.Pool{PhaseID: 2, Name: "Poule A"}
	require.NoError(s.T(), NewPoolRepository(s.db).Create(s.ctx, nil, pool))
	assert.Equal(s.T(), 3, pool.ID)
}

func (s *RosterRepositoryTestSuite) TestPoolAssignTeam_AlreadyAssigned() {
	s.mock.ExpectExec(`INSERT INTO pool_teams`).
		WithArgs(3, 10).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "pool_teams_team_id_key"})

	err := NewPoolRepository(s.db).AssignTeam(s.ctx, nil, 3, 10)

	assert.ErrorIs(s.T(), err, ErrTeamAlreadyInPool)
}

func (s *RosterRepositoryTestSuite) TestPoolAssignTeam_UnknownTeam() {
	s.mock.ExpectExec(`INSERT INTO pool_teams`).
		WithArgs(3, 10).
		WillReturnError(&pq.Error{Code: "23503"})

	err := NewPoolRepository(s.db).AssignTeam(s.ctx, nil, 3, 10)

	assert.ErrorIs(s.T(), err, ErrPoolAssignmentTarget)
}

func (s *RosterRepositoryTestSuite) TestPoolAssignTeam_ConnectionLost() {
	s.mock.ExpectExec(`INSERT INTO pool_teams`).
		WillReturnError(&pq.Error{Code: "08006"})

	err := NewPoolRepository(s.db).AssignTeam(s.ctx, nil, 3, 10)

	assert.ErrorIs(s.T(), err, ErrStorageUnavailable)
}

func (s *RosterRepositoryTestSuite) TestTeamListByPool_AssignmentOrder() {
	now := time.Now()
	s.mock.ExpectQuery(`FROM pool_teams pt JOIN teams t ON t.id = pt.team_id WHERE pt.pool_id = \$1 ORDER BY pt.id ASC`).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"id", "tournament_id", "name", "logo_url", "created_at"}).
			AddRow(12, 1, "Lions", nil, now).
			AddRow(10, 1, "Tigers", "https://cdn.example.com/tigers.png", now))

	teams, err := NewTeamRepository(s.db).ListByPool(s.ctx, nil, 3)

	require.NoError(s.T(), err)
	require.Len(s.T(), teams, 2)
	assert.Equal(s.T(), 12, teams[0].ID)
	assert.Nil(s.T(), teams[0].LogoURL)
	assert.Equal(s.T(), "https://cdn.example.com/tigers.png", *teams[1].LogoURL)
}

func (s *RosterRepositoryTestSuite) TestTeamListByTournament_Empty() {
	s.mock.ExpectQuery(`FROM teams WHERE tournament_id = \$1`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "tournament_id", "name", "logo_url", "created_at"}))

	teams, err := NewTeamRepository(s.db).ListByTournament(s.ctx, nil, 1)

	require.NoError(s.T(), err)
	assert.NotNil(s.T(), teams)
	assert.Empty(s.T(), teams)
}

func (s *RosterRepositoryTestSuite) TestFieldListByTournament_Ordered() {
	now := time.Now()
	s.mock.ExpectQuery(`FROM fields WHERE tournament_id = \$1 ORDER BY sort_order ASC, id ASC`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "tournament_id", "name", "sort_order", "created_at"}).
			AddRow(4, 1, "Terrain 1", 1, now).
			AddRow(3, 1, "Terrain 2", 2, now))

	fields, err := NewFieldRepository(s.db).ListByTournament(s.ctx, nil, 1)

	require.NoError(s.T(), err)
	require.Len(s.T(), fields, 2)
	assert.Equal(s.T(), "Terrain 1", fields[0].Name)
	assert.Equal(s.T(), 2, fields[1].Order)
}

func (s *RosterRepositoryTestSuite) TestFieldDelete_NotFound() {
	s.mock.ExpectExec(`DELETE FROM fields WHERE id = \$1`).
		WithArgs(9).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := NewFieldRepository(s.db).Delete(s.ctx, nil, 9)

	assert.ErrorIs(s.T(), err, ErrFieldNotFound)
}

func (s *RosterRepositoryTestSuite) TestScoringRulesByPool() {
	s.mock.ExpectQuery(`SELECT t.points_win, t.points_draw, t.points_loss FROM pools p`).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"points_win", "points_draw", "points_loss"}).AddRow(2, 1, 0))

	rules, err := NewTournamentRepository(s.db).GetScoringRulesByPool(s.ctx, nil, 3)

	require.NoError(s.T(), err)
	assert.Equal(s.T(), models.ScoringRules{Win: 2, Draw: 1, Loss: 0}, *rules)
}

func (s *RosterRepositoryTestSuite) TestScoringRulesByPool_NotFound() {
	s.mock.ExpectQuery(`FROM pools p`).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"points_win", "points_draw", "points_loss"}))

	rules, err := NewTournamentRepository(s.db).GetScoringRulesByPool(s.ctx, nil, 3)

	assert.Nil(s.T(), rules)
	assert.ErrorIs(s.T(), err, ErrTournamentNotFound)
}

func TestRosterRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RosterRepositoryTestSuite))
}
