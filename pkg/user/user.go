package user

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
)

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

var (
	ErrUserNotFound       = errors.New("USER_NOT_FOUND")
	ErrUsernameTaken      = errors.New("USERNAME_TAKEN")
	ErrInvalidCredentials = errors.New("INVALID_CREDENTIALS")
)

type User struct {
	ID                  uint      `gorm:"primaryKey;column:id"`
	Username            string    `gorm:"type:varchar(20);uniqueIndex;not null;column:username"`
	FirstName           string    `gorm:"type:varchar(20);not null;column:first_name"`
	LastName            string    `gorm:"type:varchar(20);not null;column:last_name"`
	Password            string    `gorm:"type:varchar(255);not null;column:password"`
	Role                Role      `gorm:"type:varchar(16);not null;default:USER;column:role"`
	AccountCreationDate time.Time `gorm:"not null;column:account_creation_date"`
}

// SetPassword stores the bcrypt hash of raw, never raw itself.
func (u *User) SetPassword(raw string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	u.Password = string(hashed)
	return nil
}

func (u *User) CheckPassword(raw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(raw)) == nil
}

// UsersRepo - memberships and leadership are owned by the team side, but removing a user
// has to clean them up in the same transaction, so Delete touches those tables too.
type UsersRepo interface {
	Create(u *User) (*User, error)
	GetByID(userID uint) (*User, error)
	GetByUsername(username string) (*User, error)
	List() ([]*User, error)
	Count() (int64, error)
	Delete(userID uint) error
	Authenticate(username, password string) (*User, error)
}
