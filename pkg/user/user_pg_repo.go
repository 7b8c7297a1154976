package user

import (
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type UsersRepoPg struct {
	logger *zap.SugaredLogger
	db     *gorm.DB
}

func NewUsersRepoPg(logger *zap.SugaredLogger, db *gorm.DB) *UsersRepoPg {
	return &UsersRepoPg{
		logger: logger,
		db:     db,
	}
}

func (repo *UsersRepoPg) Create(u *User) (*User, error) {
	repo.logger.Debugw("Create()", "username", u.Username)

	err := repo.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&User{}).Where("username = ?", u.Username).Count(&count).Error; err != nil {
			repo.logger.Errorw("error checking username", "username", u.Username, "err", err)
			return err
		}

		if count > 0 {
			repo.logger.Warnw("username already used", "username", u.Username)
			return ErrUsernameTaken
		}

		if u.Role == "" {
			u.Role = RoleUser
		}
		u.AccountCreationDate = time.Now().UTC()

		if err := tx.Create(u).Error; err != nil {
			// a concurrent registration can slip past the count, the unique index catches it
			if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "SQLSTATE 23505") {
				repo.logger.Warnw("username already used", "username", u.Username)
				return ErrUsernameTaken
			}
			repo.logger.Errorw("error creating user", "username", u.Username, "err", err)
			return err
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	repo.logger.Debugw("user created", "userID", u.ID, "username", u.Username)
	return u, nil
}

func (repo *UsersRepoPg) GetByID(userID uint) (*User, error) {
	repo.logger.Debugw("GetByID()", "userID", userID)

	var u User
	if err := repo.db.First(&u, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			repo.logger.Warnw("user does not exist", "userID", userID)
			return nil, ErrUserNotFound
		}
		repo.logger.Errorw("failed to query user", "userID", userID, "err", err)
		return nil, err
	}

	return &u, nil
}

func (repo *UsersRepoPg) GetByUsername(username string) (*User, error) {
	repo.logger.Debugw("GetByUsername()", "username", username)

	var u User
	if err := repo.db.First(&u, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			repo.logger.Warnw("user does not exist", "username", username)
			return nil, ErrUserNotFound
		}
		repo.logger.Errorw("failed to query user", "username", username, "err", err)
		return nil, err
	}

	return &u, nil
}

func (repo *UsersRepoPg) List() ([]*User, error) {
	repo.logger.Debugw("List()")

	users := []*User{}
	if err := repo.db.Order("first_name ASC").Find(&users).Error; err != nil {
		repo.logger.Errorw("failed to list users", "err", err)
		return nil, err
	}

	return users, nil
}

func (repo *UsersRepoPg) Count() (int64, error) {
	repo.logger.Debugw("Count()")

	var n int64
	if err := repo.db.Model(&User{}).Count(&n).Error; err != nil {
		repo.logger.Errorw("failed to count users", "err", err)
		return 0, err
	}

	return n, nil
}

func (repo *UsersRepoPg) Delete(userID uint) error {
	repo.logger.Debugw("Delete()", "userID", userID)

	err := repo.db.Transaction(func(tx *gorm.DB) error {
		var u User
		if err := tx.First(&u, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				repo.logger.Warnw("user does not exist", "userID", userID)
				return ErrUserNotFound
			}
			return err
		}

		if err := tx.Exec("UPDATE teams SET team_leader_id = NULL WHERE team_leader_id = ?", userID).Error; err != nil {
			repo.logger.Errorw("error clearing team leader", "userID", userID, "err", err)
			return err
		}

		if err := tx.Exec("DELETE FROM team_users WHERE user_id = ?", userID).Error; err != nil {
			repo.logger.Errorw("error removing memberships", "userID", userID, "err", err)
			return err
		}

		if err := tx.Exec("DELETE FROM plan_entries WHERE user_id = ?", userID).Error; err != nil {
			repo.logger.Errorw("error removing plan entries", "userID", userID, "err", err)
			return err
		}

		return tx.Delete(&User{}, userID).Error
	})

	if err != nil {
		// отсутствие записи уже залогировано как warn
		if errors.Is(err, ErrUserNotFound) {
			return err
		}
		repo.logger.Errorw("failed to delete user", "userID", userID, "err", err)
		return err
	}

	repo.logger.Debugw("user deleted", "userID", userID)
	return nil
}

func (repo *UsersRepoPg) Authenticate(username, password string) (*User, error) {
	repo.logger.Debugw("Authenticate()", "username", username)

	u, err := repo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !u.CheckPassword(password) {
		repo.logger.Warnw("wrong password", "username", username)
		return nil, ErrInvalidCredentials
	}

	return u, nil
}
