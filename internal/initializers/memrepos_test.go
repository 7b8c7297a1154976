package initializers

import (
	"sort"
	"sync"
	"time"

	"workplanner/pkg/planentry"
	"workplanner/pkg/team"
	"workplanner/pkg/user"
)

// memStore - хранилище в памяти для тестов роутера, ведет себя как pg репозитории
type memStore struct {
	mu      sync.Mutex
	nextID  uint
	users   map[uint]*user.User
	teams   map[uint]*team.Team
	members map[uint]map[uint]struct{}
	entries map[uint]*planentry.PlanEntry
}

func newMemStore() *memStore {
	return &memStore{
		users:   map[uint]*user.User{},
		teams:   map[uint]*team.Team{},
		members: map[uint]map[uint]struct{}{},
		entries: map[uint]*planentry.PlanEntry{},
	}
}

func (s *memStore) repos() Repos {
	return Repos{
		Users:       &memUsers{s},
		Teams:       &memTeams{s},
		PlanEntries: &memPlanEntries{s},
	}
}

func (s *memStore) id() uint {
	s.nextID++
	return s.nextID
}

type memUsers struct{ s *memStore }

func (r *memUsers) Create(u *user.User) (*user.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.users {
		if existing.Username == u.Username {
			return nil, user.ErrUsernameTaken
		}
	}

	u.ID = r.s.id()
	u.AccountCreationDate = time.Now().UTC()
	r.s.users[u.ID] = u
	return u, nil
}

func (r *memUsers) GetByID(userID uint) (*user.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[userID]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return u, nil
}

func (r *memUsers) GetByUsername(username string) (*user.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (r *memUsers) List() ([]*user.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]*user.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FirstName < out[j].FirstName })
	return out, nil
}

func (r *memUsers) Count() (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	return int64(len(r.s.users)), nil
}

func (r *memUsers) Delete(userID uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[userID]; !ok {
		return user.ErrUserNotFound
	}

	for _, t := range r.s.teams {
		if t.TeamLeaderID != nil && *t.TeamLeaderID == userID {
			t.TeamLeaderID, t.TeamLeader = nil, nil
		}
	}
	for _, m := range r.s.members {
		delete(m, userID)
	}
	for id, e := range r.s.entries {
		if e.UserID == userID {
			delete(r.s.entries, id)
		}
	}
	delete(r.s.users, userID)
	return nil
}

func (r *memUsers) Authenticate(username, password string) (*user.User, error) {
	u, err := r.GetByUsername(username)
	if err != nil || !u.CheckPassword(password) {
		return nil, user.ErrInvalidCredentials
	}
	return u, nil
}

type memTeams struct{ s *memStore }

func (r *memTeams) Create(t *team.Team) (*team.Team, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.teams {
		if existing.Name == t.Name {
			return nil, team.ErrTeamNameTaken
		}
	}

	t.ID = r.s.id()
	t.TeamCreationDate = time.Now().UTC()
	r.s.teams[t.ID] = t
	r.s.members[t.ID] = map[uint]struct{}{}
	return t, nil
}

func (r *memTeams) GetByID(teamID uint) (*team.Team, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	t, ok := r.s.teams[teamID]
	if !ok {
		return nil, team.ErrTeamNotFound
	}
	return t, nil
}

func (r *memTeams) GetByName(name string) (*team.Team, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, t := range r.s.teams {
		if t.Name == name {
			return t, nil
		}
	}
	return nil, team.ErrTeamNotFound
}

func (r *memTeams) List() ([]*team.Team, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]*team.Team, 0, len(r.s.teams))
	for _, t := range r.s.teams {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *memTeams) Delete(teamID uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.teams[teamID]; !ok {
		return team.ErrTeamNotFound
	}

	for id, e := range r.s.entries {
		if e.TeamID == teamID {
			delete(r.s.entries, id)
		}
	}
	delete(r.s.members, teamID)
	delete(r.s.teams, teamID)
	return nil
}

func (r *memTeams) SetLeader(teamID, userID uint) (*team.Team, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	t, ok := r.s.teams[teamID]
	if !ok {
		return nil, team.ErrTeamNotFound
	}
	u, ok := r.s.users[userID]
	if !ok {
		return nil, user.ErrUserNotFound
	}

	r.s.members[teamID][userID] = struct{}{}
	t.TeamLeaderID, t.TeamLeader = &u.ID, u
	return t, nil
}

func (r *memTeams) ResetLeader(teamID uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	t, ok := r.s.teams[teamID]
	if !ok {
		return team.ErrTeamNotFound
	}
	t.TeamLeaderID, t.TeamLeader = nil, nil
	return nil
}

func (r *memTeams) AddMembers(teamID uint, userIDs []uint) ([]*user.User, error) {
	r.s.mu.Lock()
	if _, ok := r.s.teams[teamID]; !ok {
		r.s.mu.Unlock()
		return nil, team.ErrTeamNotFound
	}
	for _, id := range userIDs {
		if _, ok := r.s.users[id]; !ok {
			r.s.mu.Unlock()
			return nil, user.ErrUserNotFound
		}
	}
	for _, id := range userIDs {
		r.s.members[teamID][id] = struct{}{}
	}
	r.s.mu.Unlock()

	return r.ListMembers(teamID)
}

func (r *memTeams) RemoveMember(teamID, userID uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	t, ok := r.s.teams[teamID]
	if !ok {
		return team.ErrTeamNotFound
	}
	if _, ok := r.s.users[userID]; !ok {
		return user.ErrUserNotFound
	}

	if t.TeamLeaderID != nil && *t.TeamLeaderID == userID {
		t.TeamLeaderID, t.TeamLeader = nil, nil
	}
	delete(r.s.members[teamID], userID)
	return nil
}

func (r *memTeams) ListMembers(teamID uint) ([]*user.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	m, ok := r.s.members[teamID]
	if !ok {
		return nil, team.ErrTeamNotFound
	}

	out := make([]*user.User, 0, len(m))
	for id := range m {
		out = append(out, r.s.users[id])
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FirstName < out[j].FirstName })
	return out, nil
}

func (r *memTeams) ListByUser(userID uint) ([]*team.Team, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[userID]; !ok {
		return nil, user.ErrUserNotFound
	}

	out := []*team.Team{}
	for teamID, m := range r.s.members {
		if _, ok := m[userID]; ok {
			out = append(out, r.s.teams[teamID])
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

type memPlanEntries struct{ s *memStore }

func (r *memPlanEntries) Create(teamID, userID uint, entry *planentry.PlanEntry) (*planentry.PlanEntry, error) {
	if !entry.Color.Valid() {
		return nil, planentry.ErrInvalidColor
	}
	if entry.EndTime.Before(entry.StartTime) {
		return nil, planentry.ErrInvalidTimeRange
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.teams[teamID]; !ok {
		return nil, team.ErrTeamNotFound
	}
	if _, ok := r.s.users[userID]; !ok {
		return nil, user.ErrUserNotFound
	}

	entry.ID = r.s.id()
	entry.TeamID, entry.UserID = teamID, userID
	r.s.entries[entry.ID] = entry
	return entry, nil
}

func (r *memPlanEntries) GetByID(planEntryID uint) (*planentry.PlanEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	e, ok := r.s.entries[planEntryID]
	if !ok {
		return nil, planentry.ErrPlanEntryNotFound
	}
	return e, nil
}

func (r *memPlanEntries) List() ([]*planentry.PlanEntry, error) {
	return r.filter(func(*planentry.PlanEntry) bool { return true }), nil
}

func (r *memPlanEntries) ListByTeamAndUser(teamID, userID uint) ([]*planentry.PlanEntry, error) {
	r.s.mu.Lock()
	_, teamOK := r.s.teams[teamID]
	_, userOK := r.s.users[userID]
	r.s.mu.Unlock()

	if !teamOK {
		return nil, team.ErrTeamNotFound
	}
	if !userOK {
		return nil, user.ErrUserNotFound
	}

	return r.filter(func(e *planentry.PlanEntry) bool {
		return e.TeamID == teamID && e.UserID == userID
	}), nil
}

func (r *memPlanEntries) Delete(planEntryID uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.entries[planEntryID]; !ok {
		return planentry.ErrPlanEntryNotFound
	}
	delete(r.s.entries, planEntryID)
	return nil
}

func (r *memPlanEntries) filter(keep func(*planentry.PlanEntry) bool) []*planentry.PlanEntry {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := []*planentry.PlanEntry{}
	for _, e := range r.s.entries {
		if keep(e) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out
}
