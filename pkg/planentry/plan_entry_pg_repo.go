package planentry

import (
	"errors"

	"workplanner/pkg/team"
	"workplanner/pkg/user"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type PlanEntriesRepoPg struct {
	logger *zap.SugaredLogger
	db     *gorm.DB
}

func NewPlanEntriesRepoPg(logger *zap.SugaredLogger, db *gorm.DB) *PlanEntriesRepoPg {
	return &PlanEntriesRepoPg{
		logger: logger,
		db:     db,
	}
}

func (repo *PlanEntriesRepoPg) Create(teamID, userID uint, entry *PlanEntry) (*PlanEntry, error) {
	repo.logger.Debugw("Create()", "teamID", teamID, "userID", userID, "title", entry.Title)

	if !entry.Color.Valid() {
		repo.logger.Warnw("unknown plan entry color", "color", entry.Color)
		return nil, ErrInvalidColor
	}

	if entry.EndTime.Before(entry.StartTime) {
		repo.logger.Warnw("plan entry ends before it starts", "start", entry.StartTime, "end", entry.EndTime)
		return nil, ErrInvalidTimeRange
	}

	err := repo.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&team.Team{}, teamID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				repo.logger.Warnw("team does not exist", "teamID", teamID)
				return team.ErrTeamNotFound
			}
			return err
		}

		if err := tx.First(&user.User{}, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				repo.logger.Warnw("user does not exist", "userID", userID)
				return user.ErrUserNotFound
			}
			return err
		}

		entry.TeamID = teamID
		entry.UserID = userID

		if err := tx.Create(entry).Error; err != nil {
			repo.logger.Errorw("error creating plan entry", "teamID", teamID, "userID", userID, "err", err)
			return err
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	repo.logger.Debugw("plan entry created", "planEntryID", entry.ID, "teamID", teamID, "userID", userID)
	return entry, nil
}

func (repo *PlanEntriesRepoPg) GetByID(planEntryID uint) (*PlanEntry, error) {
	repo.logger.Debugw("GetByID()", "planEntryID", planEntryID)

	var entry PlanEntry
	if err := repo.db.First(&entry, planEntryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			repo.logger.Warnw("plan entry does not exist", "planEntryID", planEntryID)
			return nil, ErrPlanEntryNotFound
		}
		repo.logger.Errorw("failed to query plan entry", "planEntryID", planEntryID, "err", err)
		return nil, err
	}

	return &entry, nil
}

func (repo *PlanEntriesRepoPg) List() ([]*PlanEntry, error) {
	repo.logger.Debugw("List()")

	entries := []*PlanEntry{}
	if err := repo.db.Order("start_time ASC").Find(&entries).Error; err != nil {
		repo.logger.Errorw("failed to list plan entries", "err", err)
		return nil, err
	}

	return entries, nil
}

func (repo *PlanEntriesRepoPg) ListByTeamAndUser(teamID, userID uint) ([]*PlanEntry, error) {
	repo.logger.Debugw("ListByTeamAndUser()", "teamID", teamID, "userID", userID)

	if err := repo.db.First(&team.Team{}, teamID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			repo.logger.Warnw("team does not exist", "teamID", teamID)
			return nil, team.ErrTeamNotFound
		}
		return nil, err
	}

	if err := repo.db.First(&user.User{}, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			repo.logger.Warnw("user does not exist", "userID", userID)
			return nil, user.ErrUserNotFound
		}
		return nil, err
	}

	entries := []*PlanEntry{}
	if err := repo.db.
		Where("team_id = ? AND user_id = ?", teamID, userID).
		Order("start_time ASC").
		Find(&entries).Error; err != nil {
		repo.logger.Errorw("failed to list plan entries", "teamID", teamID, "userID", userID, "err", err)
		return nil, err
	}

	return entries, nil
}

func (repo *PlanEntriesRepoPg) Delete(planEntryID uint) error {
	repo.logger.Debugw("Delete()", "planEntryID", planEntryID)

	err := repo.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&PlanEntry{}, planEntryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				repo.logger.Warnw("plan entry does not exist", "planEntryID", planEntryID)
				return ErrPlanEntryNotFound
			}
			return err
		}

		return tx.Delete(&PlanEntry{}, planEntryID).Error
	})

	if err != nil {
		// отсутствие записи уже залогировано как warn
		if errors.Is(err, ErrPlanEntryNotFound) {
			return err
		}
		repo.logger.Errorw("failed to delete plan entry", "planEntryID", planEntryID, "err", err)
		return err
	}

	repo.logger.Debugw("plan entry deleted", "planEntryID", planEntryID)
	return nil
}
