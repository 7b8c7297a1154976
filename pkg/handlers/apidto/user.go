package apidto

import "workplanner/pkg/user"

type User struct {
	ID                  uint      `json:"id"`
	Username            string    `json:"username"`
	FirstName           string    `json:"firstName"`
	LastName            string    `json:"lastName"`
	Role                user.Role `json:"role"`
	AccountCreationDate LocalTime `json:"accountCreationDate"`
}

// UserRegistration - тело POST /users, пароль приходит только здесь и наружу не отдается
type UserRegistration struct {
	Username  string `json:"username" binding:"required,min=4,max=20"`
	Password  string `json:"password" binding:"required,min=3,max=15"`
	FirstName string `json:"firstName" binding:"required,min=2,max=20"`
	LastName  string `json:"lastName" binding:"required,min=2,max=20"`
}

func FromUser(u *user.User) User {
	if u == nil {
		return User{}
	}
	return User{
		ID:                  u.ID,
		Username:            u.Username,
		FirstName:           u.FirstName,
		LastName:            u.LastName,
		Role:                u.Role,
		AccountCreationDate: LocalTime{Time: u.AccountCreationDate},
	}
}

func FromUsers(users []*user.User) []User {
	out := make([]User, 0, len(users))
	for _, u := range users {
		out = append(out, FromUser(u))
	}
	return out
}

// ToUser не хэширует пароль, это делает хэндлер через User.SetPassword
func ToUser(dto UserRegistration) *user.User {
	return &user.User{
		Username:  dto.Username,
		FirstName: dto.FirstName,
		LastName:  dto.LastName,
		Role:      user.RoleUser,
	}
}
