package team

import (
	"errors"
	"time"

	"workplanner/pkg/user"
)

var (
	ErrTeamNotFound  = errors.New("TEAM_NOT_FOUND")
	ErrTeamNameTaken = errors.New("TEAM_NAME_TAKEN")
)

type Team struct {
	ID               uint      `gorm:"primaryKey;column:id"`
	Name             string    `gorm:"type:varchar(20);uniqueIndex;not null;column:name"`
	Description      string    `gorm:"type:varchar(30);not null;column:description"`
	TeamCreationDate time.Time `gorm:"not null;column:team_creation_date"`

	TeamLeaderID *uint      `gorm:"column:team_leader_id"`
	TeamLeader   *user.User `gorm:"foreignKey:TeamLeaderID;constraint:OnDelete:SET NULL"`

	Members []*user.User `gorm:"many2many:team_users;constraint:OnDelete:CASCADE"`
}

// Membership is the row of the team_users join table.
type Membership struct {
	TeamID uint `gorm:"primaryKey;autoIncrement:false;column:team_id"`
	UserID uint `gorm:"primaryKey;autoIncrement:false;column:user_id"`
}

func (Membership) TableName() string {
	return "team_users"
}

// TeamsRepo - a leader is always a member, so SetLeader joins the user to the team first,
// and RemoveMember drops the leadership of the removed user.
type TeamsRepo interface {
	Create(t *Team) (*Team, error)
	GetByID(teamID uint) (*Team, error)
	GetByName(name string) (*Team, error)
	List() ([]*Team, error)
	Delete(teamID uint) error

	SetLeader(teamID, userID uint) (*Team, error)
	ResetLeader(teamID uint) error

	AddMembers(teamID uint, userIDs []uint) ([]*user.User, error)
	RemoveMember(teamID, userID uint) error
	ListMembers(teamID uint) ([]*user.User, error)
	ListByUser(userID uint) ([]*Team, error)
}
