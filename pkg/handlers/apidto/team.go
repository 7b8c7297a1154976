package apidto

import "workplanner/pkg/team"

// Team - description обязателен, но может быть пустой строкой
type Team struct {
	ID               uint       `json:"id"`
	Name             string     `json:"name" binding:"required,min=5,max=20"`
	Description      *string    `json:"description" binding:"required,max=30"`
	TeamCreationDate *LocalTime `json:"teamCreationDate,omitempty"`
	TeamLeader       *User      `json:"teamLeader"`
}

func FromTeam(t *team.Team) Team {
	if t == nil {
		return Team{}
	}

	dto := Team{
		ID:               t.ID,
		Name:             t.Name,
		Description:      &t.Description,
		TeamCreationDate: &LocalTime{Time: t.TeamCreationDate},
	}
	if t.TeamLeader != nil {
		leader := FromUser(t.TeamLeader)
		dto.TeamLeader = &leader
	}

	return dto
}

func FromTeams(teams []*team.Team) []Team {
	out := make([]Team, 0, len(teams))
	for _, t := range teams {
		out = append(out, FromTeam(t))
	}
	return out
}

// ToTeam - лидер на создании игнорируется, назначается отдельным эндпоинтом
func ToTeam(dto Team) *team.Team {
	t := &team.Team{Name: dto.Name}
	if dto.Description != nil {
		t.Description = *dto.Description
	}
	return t
}
