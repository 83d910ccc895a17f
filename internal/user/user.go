package user

import (
	"time"

	userDatamodel "github.com/hanifadr/reimbursement-hub/internal/core/datamodel/user"
)

// Role is the coarse authorization level of a user. There is no
// finer-grained permission model: the lifecycle table and the query
// layer gate everything on these three values.
type Role string

const (
	RoleEmployee   Role = "employee"
	RoleHR         Role = "hr"
	RoleAccountant Role = "accountant"
)

func (r Role) Valid() bool {
	switch r {
	case RoleEmployee, RoleHR, RoleAccountant:
		return true
	}
	return false
}

type User struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       Role      `json:"role"`
	AvatarURL  string    `json:"avatar_url,omitempty"`
	Department string    `json:"department,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func (u *User) IsEmployee() bool {
	return u.Role == RoleEmployee
}

func (u *User) IsHR() bool {
	return u.Role == RoleHR
}

func (u *User) IsAccountant() bool {
	return u.Role == RoleAccountant
}

// CanSeeAllExpenses reports whether the user's role grants visibility
// over every employee's expenses rather than only their own.
func (u *User) CanSeeAllExpenses() bool {
	return u.Role == RoleHR || u.Role == RoleAccountant
}

func ToDataModel(u *User) *userDatamodel.User {
	return &userDatamodel.User{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Role:       string(u.Role),
		AvatarURL:  u.AvatarURL,
		Department: u.Department,
		CreatedAt:  u.CreatedAt,
	}
}

func FromDataModel(u *userDatamodel.User) *User {
	return &User{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Role:       Role(u.Role),
		AvatarURL:  u.AvatarURL,
		Department: u.Department,
		CreatedAt:  u.CreatedAt,
	}
}

func FromDataModelSlice(users []*userDatamodel.User) []*User {
	result := make([]*User, len(users))
	for i, u := range users {
		result[i] = FromDataModel(u)
	}
	return result
}
