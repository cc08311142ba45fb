package domain

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleStudent    Role = "STUDENT"
	RoleAdminStand Role = "ADMIN_STAND"
	RoleSuperadmin Role = "SUPERADMIN"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleStudent, RoleAdminStand, RoleSuperadmin:
		return true
	}
	return false
}

type User struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"-"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Student struct {
	ID        uint      `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	Photo     string    `json:"photo,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Principal is the authenticated caller as carried by the access token.
type Principal struct {
	ID   uuid.UUID
	Role Role
}

func (p Principal) Is(role Role) bool {
	return p.Role == role
}

// StudentUpdate holds the profile fields to change; nil fields are kept.
type StudentUpdate struct {
	Name    *string
	Address *string
	Phone   *string
	Photo   *string
}

func (u StudentUpdate) Apply(s Student) Student {
	if u.Name != nil {
		s.Name = *u.Name
	}
	if u.Address != nil {
		s.Address = *u.Address
	}
	if u.Phone != nil {
		s.Phone = *u.Phone
	}
	if u.Photo != nil {
		s.Photo = *u.Photo
	}
	return s
}
