package apidto

import "workplanner/pkg/planentry"

type PlanEntry struct {
	ID             uint       `json:"id"`
	Title          string     `json:"title" binding:"required,min=4,max=20"`
	StartTime      *LocalTime `json:"startTime" binding:"required"`
	EndTime        *LocalTime `json:"endTime" binding:"required"`
	PlanEntryColor string     `json:"planEntryColor" binding:"required,oneof=RED GREEN BLUE"`
	UserID         uint       `json:"userId,omitempty"`
	TeamID         uint       `json:"teamId,omitempty"`
}

func FromPlanEntry(e *planentry.PlanEntry) PlanEntry {
	if e == nil {
		return PlanEntry{}
	}
	return PlanEntry{
		ID:             e.ID,
		Title:          e.Title,
		StartTime:      &LocalTime{Time: e.StartTime},
		EndTime:        &LocalTime{Time: e.EndTime},
		PlanEntryColor: string(e.Color),
		UserID:         e.UserID,
		TeamID:         e.TeamID,
	}
}

func FromPlanEntries(entries []*planentry.PlanEntry) []PlanEntry {
	out := make([]PlanEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, FromPlanEntry(e))
	}
	return out
}

// ToPlanEntry ожидает уже провалидированный dto, времена не nil
func ToPlanEntry(dto PlanEntry) *planentry.PlanEntry {
	return &planentry.PlanEntry{
		Title:     dto.Title,
		StartTime: dto.StartTime.Time,
		EndTime:   dto.EndTime.Time,
		Color:     planentry.Color(dto.PlanEntryColor),
	}
}
