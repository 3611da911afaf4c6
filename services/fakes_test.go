package services

import (
	"cmp"
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/tournify/tournament-manager/models"
	"github.com/tournify/tournament-manager/realtime"
	"github.com/tournify/tournament-manager/repositories"
)

// memStore backs the in-memory repositories used by the service tests.
type memStore struct {
	mu sync.Mutex

	nextID    int
	teams     []models.Team
	pools     map[int]models.Pool
	poolTeams map[int][]int
	teamPool  map[int]int
	fields    []models.Field
	matches   []models.Match
	rules     map[int]models.ScoringRules // by pool

	// failCreateAt makes the n-th match insert (1-based) fail with failErr.
	failCreateAt int
	creates      int
	// readErr, when set, is returned by every list call.
	readErr error
	failErr error
}

func newMemStore() *memStore {
	return &memStore{
		nextID:    100,
		pools:     make(map[int]models.Pool),
		poolTeams: make(map[int][]int),
		teamPool:  make(map[int]int),
		rules:     make(map[int]models.ScoringRules),
		failErr:   fmt.Errorf("%w: connection reset", repositories.ErrStorageUnavailable),
	}
}

func (s *memStore) id() int {
	s.nextID++
	return s.nextID
}

func (s *memStore) addTeams(tournamentID int, names ...string) []models.Team {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Team, 0, len(names))
	for _, n := range names {
		t := models.Team{ID: s.id(), TournamentID: tournamentID, Name: n}
		s.teams = append(s.teams, t)
		out = append(out, t)
	}
	return out
}

func (s *memStore) addPool(phaseID int, teams ...models.Team) models.Pool {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := models.Pool{ID: s.id(), PhaseID: phaseID, Name: fmt.Sprintf("Pool %d", len(s.pools)+1)}
	s.pools[p.ID] = p
	for _, t := range teams {
		s.poolTeams[p.ID] = append(s.poolTeams[p.ID], t.ID)
		s.teamPool[t.ID] = p.ID
	}
	return p
}

func (s *memStore) matchByID(id int) models.Match {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.matches {
		if m.ID == id {
			return m
		}
	}
	panic(fmt.Sprintf("match %d not stored", id))
}

func (s *memStore) matchCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.matches)
}

type memSnapshot struct {
	matches   []models.Match
	poolTeams map[int][]int
	teamPool  map[int]int
}

func (s *memStore) snapshot() memSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	pt := make(map[int][]int, len(s.poolTeams))
	for k, v := range s.poolTeams {
		pt[k] = slices.Clone(v)
	}
	return memSnapshot{matches: slices.Clone(s.matches), poolTeams: pt, teamPool: maps.Clone(s.teamPool)}
}

func (s *memStore) restore(snap memSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.matches, s.poolTeams, s.teamPool = snap.matches, snap.poolTeams, snap.teamPool
}

// fakeTransactor restores the store when fn fails.
type fakeTransactor struct {
	store *memStore
	calls int
}

func (t *fakeTransactor) WithinTx(ctx context.Context, fn func(exec repositories.SQLExecutor) error) error {
	t.calls++
	snap := t.store.snapshot()
	if err := fn(nil); err != nil {
		t.store.restore(snap)
		return err
	}
	return nil
}

type memMatchRepo struct{ s *memStore }

func (r memMatchRepo) Create(_ context.Context, _ repositories.SQLExecutor, m *models.Match) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.creates++
	if r.s.failCreateAt > 0 && r.s.creates == r.s.failCreateAt {
		return r.s.failErr
	}
	m.ID = r.s.id()
	m.CreatedAt = time.Now()
	m.UpdatedAt = m.CreatedAt
	r.s.matches = append(r.s.matches, *m)
	return nil
}

func (r memMatchRepo) GetByID(_ context.Context, _ repositories.SQLExecutor, id int) (*models.Match, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, m := range r.s.matches {
		if m.ID == id {
			return &m, nil
		}
	}
	return nil, repositories.ErrMatchNotFound
}

func (r memMatchRepo) ListByPool(_ context.Context, _ repositories.SQLExecutor, poolID int) ([]models.Match, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.readErr != nil {
		return nil, r.s.readErr
	}
	out := make([]models.Match, 0)
	for _, m := range r.s.matches {
		if m.PoolID != nil && *m.PoolID == poolID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r memMatchRepo) ListByTournament(_ context.Context, _ repositories.SQLExecutor, tournamentID int) ([]models.Match, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.readErr != nil {
		return nil, r.s.readErr
	}
	out := make([]models.Match, 0)
	for _, m := range r.s.matches {
		if m.TournamentID == tournamentID {
			out = append(out, m)
		}
	}
	slices.SortStableFunc(out, func(a, b models.Match) int {
		return cmpOr(
			a.ScheduledTime.Compare(*b.ScheduledTime),
			cmp.Compare(*a.FieldID, *b.FieldID),
			cmp.Compare(a.ID, b.ID),
		)
	})
	return out, nil
}

func (r memMatchRepo) Update(_ context.Context, _ repositories.SQLExecutor, id int, upd models.MatchUpdate) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.matches {
		m := &r.s.matches[i]
		if m.ID != id {
			continue
		}
		if upd.Team1ID != nil {
			m.Team1ID = upd.Team1ID
		}
		if upd.Team2ID != nil {
			m.Team2ID = upd.Team2ID
		}
		if upd.Score1 != nil {
			v := *upd.Score1
			m.Score1 = &v
		}
		if upd.Score2 != nil {
			v := *upd.Score2
			m.Score2 = &v
		}
		if upd.ScheduledTime != nil {
			m.ScheduledTime = upd.ScheduledTime
		}
		if upd.FieldID != nil {
			m.FieldID = upd.FieldID
		}
		if upd.Status != nil {
			m.Status = *upd.Status
		}
		m.UpdatedAt = time.Now()
		return nil
	}
	return repositories.ErrMatchNotFound
}

type memTeamRepo struct{ s *memStore }

func (r memTeamRepo) Create(_ context.Context, _ repositories.SQLExecutor, t *models.Team) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t.ID = r.s.id()
	r.s.teams = append(r.s.teams, *t)
	return nil
}

func (r memTeamRepo) ListByTournament(_ context.Context, _ repositories.SQLExecutor, tournamentID int) ([]models.Team, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.readErr != nil {
		return nil, r.s.readErr
	}
	out := make([]models.Team, 0)
	for _, t := range r.s.teams {
		if t.TournamentID == tournamentID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r memTeamRepo) ListByPool(_ context.Context, _ repositories.SQLExecutor, poolID int) ([]models.Team, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.readErr != nil {
		return nil, r.s.readErr
	}
	out := make([]models.Team, 0)
	for _, id := range r.s.poolTeams[poolID] {
		for _, t := range r.s.teams {
			if t.ID == id {
				out = append(out, t)
			}
		}
	}
	return out, nil
}

type memPoolRepo struct{ s *memStore }

func (r memPoolRepo) Create(_ context.Context, _ repositories.SQLExecutor, p *models.Pool) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p.ID = r.s.id()
	r.s.pools[p.ID] = *p
	return nil
}

func (r memPoolRepo) GetByID(_ context.Context, _ repositories.SQLExecutor, id int) (*models.Pool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.pools[id]
	if !ok {
		return nil, repositories.ErrPoolNotFound
	}
	return &p, nil
}

func (r memPoolRepo) GetPhaseID(_ context.Context, _ repositories.SQLExecutor, poolID int) (*int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.pools[poolID]
	if !ok {
		return nil, nil
	}
	phaseID := p.PhaseID
	return &phaseID, nil
}

func (r memPoolRepo) AssignTeam(_ context.Context, _ repositories.SQLExecutor, poolID, teamID int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.pools[poolID]; !ok {
		return repositories.ErrPoolAssignmentTarget
	}
	if !slices.ContainsFunc(r.s.teams, func(t models.Team) bool { return t.ID == teamID }) {
		return repositories.ErrPoolAssignmentTarget
	}
	if _, taken := r.s.teamPool[teamID]; taken {
		return fmt.Errorf("%w: team %d", repositories.ErrTeamAlreadyInPool, teamID)
	}
	r.s.teamPool[teamID] = poolID
	r.s.poolTeams[poolID] = append(r.s.poolTeams[poolID], teamID)
	return nil
}

type memTournamentRepo struct{ s *memStore }

func (r memTournamentRepo) GetScoringRulesByPool(_ context.Context, _ repositories.SQLExecutor, poolID int) (*models.ScoringRules, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.readErr != nil {
		return nil, r.s.readErr
	}
	rules, ok := r.s.rules[poolID]
	if !ok {
		return nil, repositories.ErrTournamentNotFound
	}
	return &rules, nil
}

type memFieldRepo struct{ s *memStore }

func (r memFieldRepo) Create(_ context.Context, _ repositories.SQLExecutor, f *models.Field) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	f.ID = r.s.id()
	r.s.fields = append(r.s.fields, *f)
	return nil
}

func (r memFieldRepo) ListByTournament(_ context.Context, _ repositories.SQLExecutor, tournamentID int) ([]models.Field, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]models.Field, 0)
	for _, f := range r.s.fields {
		if f.TournamentID == tournamentID {
			out = append(out, f)
		}
	}
	slices.SortStableFunc(out, func(a, b models.Field) int {
		return cmpOr(cmp.Compare(a.Order, b.Order), cmp.Compare(a.ID, b.ID))
	})
	return out, nil
}

func (r memFieldRepo) Delete(_ context.Context, _ repositories.SQLExecutor, id int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i := slices.IndexFunc(r.s.fields, func(f models.Field) bool { return f.ID == id })
	if i < 0 {
		return repositories.ErrFieldNotFound
	}
	r.s.fields = slices.Delete(r.s.fields, i, i+1)
	return nil
}

type recordingPublisher struct {
	mu       sync.Mutex
	rooms    []string
	messages []realtime.Message
}

func (p *recordingPublisher) BroadcastToRoom(roomID string, msg interface{}) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.rooms = append(p.rooms, roomID)
	if m, ok := msg.(realtime.Message); ok {
		p.messages = append(p.messages, m)
	}
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.messages))
	for i, m := range p.messages {
		out[i] = m.Type
	}
	return out
}

// cmpOr returns the first non-zero comparison result, mirroring cmp.Or
// (Go 1.22+) for toolchains where it is unavailable.
func cmpOr(vals ...int) int {
	for _, v := range vals {
		if v != 0 {
			return v
		}
	}
	return 0
}
