package handlers_test

import (
	"workplanner/pkg/planentry"
	"workplanner/pkg/team"
	"workplanner/pkg/user"

	"github.com/stretchr/testify/mock"
)

type usersRepoMock struct{ mock.Mock }

var _ user.UsersRepo = (*usersRepoMock)(nil)

func (m *usersRepoMock) Create(u *user.User) (*user.User, error) {
	args := m.Called(u)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *usersRepoMock) GetByID(userID uint) (*user.User, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *usersRepoMock) GetByUsername(username string) (*user.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *usersRepoMock) List() ([]*user.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*user.User), args.Error(1)
}

func (m *usersRepoMock) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *usersRepoMock) Delete(userID uint) error {
	return m.Called(userID).Error(0)
}

func (m *usersRepoMock) Authenticate(username, password string) (*user.User, error) {
	args := m.Called(username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

type teamsRepoMock struct{ mock.Mock }

var _ team.TeamsRepo = (*teamsRepoMock)(nil)

func (m *teamsRepoMock) Create(t *team.Team) (*team.Team, error) {
	args := m.Called(t)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*team.Team), args.Error(1)
}

func (m *teamsRepoMock) GetByID(teamID uint) (*team.Team, error) {
	args := m.Called(teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*team.Team), args.Error(1)
}

func (m *teamsRepoMock) GetByName(name string) (*team.Team, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*team.Team), args.Error(1)
}

func (m *teamsRepoMock) List() ([]*team.Team, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*team.Team), args.Error(1)
}

func (m *teamsRepoMock) Delete(teamID uint) error {
	return m.Called(teamID).Error(0)
}

func (m *teamsRepoMock) SetLeader(teamID, userID uint) (*team.Team, error) {
	args := m.Called(teamID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*team.Team), args.Error(1)
}

func (m *teamsRepoMock) ResetLeader(teamID uint) error {
	return m.Called(teamID).Error(0)
}

func (m *teamsRepoMock) AddMembers(teamID uint, userIDs []uint) ([]*user.User, error) {
	args := m.Called(teamID, userIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*user.User), args.Error(1)
}

func (m *teamsRepoMock) RemoveMember(teamID, userID uint) error {
	return m.Called(teamID, userID).Error(0)
}

func (m *teamsRepoMock) ListMembers(teamID uint) ([]*user.User, error) {
	args := m.Called(teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*user.User), args.Error(1)
}

func (m *teamsRepoMock) ListByUser(userID uint) ([]*team.Team, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*team.Team), args.Error(1)
}

type planEntriesRepoMock struct{ mock.Mock }

var _ planentry.PlanEntriesRepo = (*planEntriesRepoMock)(nil)

func (m *planEntriesRepoMock) Create(teamID, userID uint, entry *planentry.PlanEntry) (*planentry.PlanEntry, error) {
	args := m.Called(teamID, userID, entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*planentry.PlanEntry), args.Error(1)
}

func (m *planEntriesRepoMock) GetByID(planEntryID uint) (*planentry.PlanEntry, error) {
	args := m.Called(planEntryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*planentry.PlanEntry), args.Error(1)
}

func (m *planEntriesRepoMock) List() ([]*planentry.PlanEntry, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*planentry.PlanEntry), args.Error(1)
}

func (m *planEntriesRepoMock) ListByTeamAndUser(teamID, userID uint) ([]*planentry.PlanEntry, error) {
	args := m.Called(teamID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*planentry.PlanEntry), args.Error(1)
}

func (m *planEntriesRepoMock) Delete(planEntryID uint) error {
	return m.Called(planEntryID).Error(0)
}
