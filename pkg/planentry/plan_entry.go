package planentry

import (
	"errors"
	"time"

	"workplanner/pkg/team"
	"workplanner/pkg/user"
)

type Color string

const (
	ColorRed   Color = "RED"
	ColorGreen Color = "GREEN"
	ColorBlue  Color = "BLUE"
)

func (c Color) Valid() bool {
	switch c {
	case ColorRed, ColorGreen, ColorBlue:
		return true
	}
	return false
}

var (
	ErrPlanEntryNotFound = errors.New("PLAN_ENTRY_NOT_FOUND")
	ErrInvalidTimeRange  = errors.New("INVALID_TIME_RANGE")
	ErrInvalidColor      = errors.New("INVALID_COLOR")
)

type PlanEntry struct {
	ID        uint      `gorm:"primaryKey;column:id"`
	Title     string    `gorm:"type:varchar(20);not null;column:title"`
	StartTime time.Time `gorm:"not null;index;column:start_time"`
	EndTime   time.Time `gorm:"not null;column:end_time"`
	Color     Color     `gorm:"type:varchar(8);not null;column:color"`

	UserID uint       `gorm:"not null;index;column:user_id"`
	User   *user.User `gorm:"constraint:OnDelete:CASCADE"`
	TeamID uint       `gorm:"not null;index;column:team_id"`
	Team   *team.Team `gorm:"constraint:OnDelete:CASCADE"`
}

type PlanEntriesRepo interface {
	Create(teamID, userID uint, entry *PlanEntry) (*PlanEntry, error)
	GetByID(planEntryID uint) (*PlanEntry, error)
	List() ([]*PlanEntry, error)
	ListByTeamAndUser(teamID, userID uint) ([]*PlanEntry, error)
	Delete(planEntryID uint) error
}
