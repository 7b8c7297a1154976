package team

import (
	"errors"
	"strings"
	"time"

	"workplanner/pkg/user"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TeamsRepoPg struct {
	logger *zap.SugaredLogger
	db     *gorm.DB
}

func NewTeamsRepoPg(logger *zap.SugaredLogger, db *gorm.DB) *TeamsRepoPg {
	return &TeamsRepoPg{
		logger: logger,
		db:     db,
	}
}

func (repo *TeamsRepoPg) Create(t *Team) (*Team, error) {
	repo.logger.Debugw("Create()", "teamName", t.Name)

	err := repo.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&Team{}).Where("name = ?", t.Name).Count(&count).Error; err != nil {
			repo.logger.Errorw("error checking team name", "teamName", t.Name, "err", err)
			return err
		}

		if count > 0 {
			repo.logger.Warnw("couldnt create team - name already used", "teamName", t.Name)
			return ErrTeamNameTaken
		}

		t.TeamCreationDate = time.Now().UTC()
		if err := tx.Create(t).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "SQLSTATE 23505") {
				repo.logger.Warnw("couldnt create team - name already used", "teamName", t.Name)
				return ErrTeamNameTaken
			}
			repo.logger.Errorw("error creating team", "teamName", t.Name, "err", err)
			return err
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	repo.logger.Debugw("created team", "teamID", t.ID, "teamName", t.Name)
	return t, nil
}

func (repo *TeamsRepoPg) GetByID(teamID uint) (*Team, error) {
	repo.logger.Debugw("GetByID()", "teamID", teamID)

	var t Team
	if err := repo.db.Preload("TeamLeader").First(&t, teamID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			repo.logger.Warnw("team does not exist", "teamID", teamID)
			return nil, ErrTeamNotFound
		}
		repo.logger.Errorw("failed to query team", "teamID", teamID, "err", err)
		return nil, err
	}

	return &t, nil
}

func (repo *TeamsRepoPg) GetByName(name string) (*Team, error) {
	repo.logger.Debugw("GetByName()", "teamName", name)

	var t Team
	if err := repo.db.Preload("TeamLeader").First(&t, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			repo.logger.Warnw("team does not exist", "teamName", name)
			return nil, ErrTeamNotFound
		}
		repo.logger.Errorw("failed to query team", "teamName", name, "err", err)
		return nil, err
	}

	return &t, nil
}

func (repo *TeamsRepoPg) List() ([]*Team, error) {
	repo.logger.Debugw("List()")

	teams := []*Team{}
	if err := repo.db.Preload("TeamLeader").Order("name ASC").Find(&teams).Error; err != nil {
		repo.logger.Errorw("failed to list teams", "err", err)
		return nil, err
	}

	return teams, nil
}

func (repo *TeamsRepoPg) Delete(teamID uint) error {
	repo.logger.Debugw("Delete()", "teamID", teamID)

	err := repo.db.Transaction(func(tx *gorm.DB) error {
		if _, err := repo.findTeam(tx, teamID); err != nil {
			return err
		}

		if err := tx.Exec("DELETE FROM plan_entries WHERE team_id = ?", teamID).Error; err != nil {
			repo.logger.Errorw("error removing plan entries", "teamID", teamID, "err", err)
			return err
		}

		if err := tx.Where("team_id = ?", teamID).Delete(&Membership{}).Error; err != nil {
			repo.logger.Errorw("error removing memberships", "teamID", teamID, "err", err)
			return err
		}

		return tx.Delete(&Team{}, teamID).Error
	})

	if err != nil {
		// отсутствие записи уже залогировано как warn
		if errors.Is(err, ErrTeamNotFound) {
			return err
		}
		repo.logger.Errorw("failed to delete team", "teamID", teamID, "err", err)
		return err
	}

	repo.logger.Debugw("team deleted", "teamID", teamID)
	return nil
}

func (repo *TeamsRepoPg) SetLeader(teamID, userID uint) (*Team, error) {
	repo.logger.Debugw("SetLeader()", "teamID", teamID, "userID", userID)

	var t *Team
	err := repo.db.Transaction(func(tx *gorm.DB) error {
		if _, err := repo.findTeam(tx, teamID); err != nil {
			return err
		}
		if _, err := repo.findUser(tx, userID); err != nil {
			return err
		}

		// leader has to be a member, joining is a no-op for existing members
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&Membership{TeamID: teamID, UserID: userID}).Error; err != nil {
			repo.logger.Errorw("error adding leader to members", "teamID", teamID, "userID", userID, "err", err)
			return err
		}

		if err := tx.Model(&Team{}).Where("id = ?", teamID).Update("team_leader_id", userID).Error; err != nil {
			repo.logger.Errorw("error setting team leader", "teamID", teamID, "userID", userID, "err", err)
			return err
		}

		var loaded Team
		if err := tx.Preload("TeamLeader").First(&loaded, teamID).Error; err != nil {
			return err
		}
		t = &loaded

		return nil
	})

	if err != nil {
		return nil, err
	}

	repo.logger.Debugw("team leader set", "teamID", teamID, "userID", userID)
	return t, nil
}

func (repo *TeamsRepoPg) ResetLeader(teamID uint) error {
	repo.logger.Debugw("ResetLeader()", "teamID", teamID)

	return repo.db.Transaction(func(tx *gorm.DB) error {
		if _, err := repo.findTeam(tx, teamID); err != nil {
			return err
		}

		if err := tx.Model(&Team{}).Where("id = ?", teamID).Update("team_leader_id", nil).Error; err != nil {
			repo.logger.Errorw("error resetting team leader", "teamID", teamID, "err", err)
			return err
		}

		return nil
	})
}

func (repo *TeamsRepoPg) AddMembers(teamID uint, userIDs []uint) ([]*user.User, error) {
	repo.logger.Debugw("AddMembers()", "teamID", teamID, "usersCount", len(userIDs))

	ids := uniqueIDs(userIDs)

	var members []*user.User
	err := repo.db.Transaction(func(tx *gorm.DB) error {
		if _, err := repo.findTeam(tx, teamID); err != nil {
			return err
		}

		if len(ids) > 0 {
			var found []*user.User
			if err := tx.Where("id IN ?", ids).Find(&found).Error; err != nil {
				repo.logger.Errorw("error querying users", "teamID", teamID, "err", err)
				return err
			}

			if len(found) != len(ids) {
				repo.logger.Warnw("some users do not exist", "teamID", teamID, "requested", len(ids), "found", len(found))
				return user.ErrUserNotFound
			}

			memberships := make([]Membership, 0, len(ids))
			for _, id := range ids {
				memberships = append(memberships, Membership{TeamID: teamID, UserID: id})
			}

			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&memberships).Error; err != nil {
				repo.logger.Errorw("error adding members", "teamID", teamID, "err", err)
				return err
			}
		}

		var err error
		members, err = repo.listMembers(tx, teamID)
		return err
	})

	if err != nil {
		return nil, err
	}

	repo.logger.Debugw("members added", "teamID", teamID, "membersCount", len(members))
	return members, nil
}

func (repo *TeamsRepoPg) RemoveMember(teamID, userID uint) error {
	repo.logger.Debugw("RemoveMember()", "teamID", teamID, "userID", userID)

	return repo.db.Transaction(func(tx *gorm.DB) error {
		if _, err := repo.findTeam(tx, teamID); err != nil {
			return err
		}
		if _, err := repo.findUser(tx, userID); err != nil {
			return err
		}

		if err := tx.Model(&Team{}).
			Where("id = ? AND team_leader_id = ?", teamID, userID).
			Update("team_leader_id", nil).Error; err != nil {
			repo.logger.Errorw("error clearing team leader", "teamID", teamID, "userID", userID, "err", err)
			return err
		}

		if err := tx.Where("team_id = ? AND user_id = ?", teamID, userID).Delete(&Membership{}).Error; err != nil {
			repo.logger.Errorw("error removing member", "teamID", teamID, "userID", userID, "err", err)
			return err
		}

		return nil
	})
}

func (repo *TeamsRepoPg) ListMembers(teamID uint) ([]*user.User, error) {
	repo.logger.Debugw("ListMembers()", "teamID", teamID)

	if _, err := repo.findTeam(repo.db, teamID); err != nil {
		return nil, err
	}

	return repo.listMembers(repo.db, teamID)
}

func (repo *TeamsRepoPg) ListByUser(userID uint) ([]*Team, error) {
	repo.logger.Debugw("ListByUser()", "userID", userID)

	if _, err := repo.findUser(repo.db, userID); err != nil {
		return nil, err
	}

	teams := []*Team{}
	if err := repo.db.
		Joins("JOIN team_users ON team_users.team_id = teams.id").
		Where("team_users.user_id = ?", userID).
		Preload("TeamLeader").
		Order("teams.name ASC").
		Find(&teams).Error; err != nil {
		repo.logger.Errorw("failed to list user teams", "userID", userID, "err", err)
		return nil, err
	}

	return teams, nil
}

func (repo *TeamsRepoPg) listMembers(db *gorm.DB, teamID uint) ([]*user.User, error) {
	members := []*user.User{}
	if err := db.
		Joins("JOIN team_users ON team_users.user_id = users.id").
		Where("team_users.team_id = ?", teamID).
		Order("users.first_name ASC").
		Find(&members).Error; err != nil {
		repo.logger.Errorw("failed to list members", "teamID", teamID, "err", err)
		return nil, err
	}

	return members, nil
}

func (repo *TeamsRepoPg) findTeam(db *gorm.DB, teamID uint) (*Team, error) {
	var t Team
	if err := db.First(&t, teamID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			repo.logger.Warnw("team does not exist", "teamID", teamID)
			return nil, ErrTeamNotFound
		}
		repo.logger.Errorw("failed to query team", "teamID", teamID, "err", err)
		return nil, err
	}

	return &t, nil
}

func (repo *TeamsRepoPg) findUser(db *gorm.DB, userID uint) (*user.User, error) {
	var u user.User
	if err := db.First(&u, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			repo.logger.Warnw("user does not exist", "userID", userID)
			return nil, user.ErrUserNotFound
		}
		repo.logger.Errorw("failed to query user", "userID", userID, "err", err)
		return nil, err
	}

	return &u, nil
}
