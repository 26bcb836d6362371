package user

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User carries identity and the role that gates partner operations.
type User struct {
	id           uuid.UUID
	name         string
	phoneNumber  PhoneNumber
	passwordHash string
	role         Role
	createdAt    time.Time
}

func NewUser(name string, phoneNumber PhoneNumber, passwordHash string) (*User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	return &User{
		id:           uuid.New(),
		name:         name,
		phoneNumber:  phoneNumber,
		passwordHash: passwordHash,
		role:         RoleUser,
	}, nil
}

func ReconstructUser(id uuid.UUID, name string, phoneNumber PhoneNumber, passwordHash string, role Role, createdAt time.Time) *User {
	return &User{
		id:           id,
		name:         name,
		phoneNumber:  phoneNumber,
		passwordHash: passwordHash,
		role:         role,
		createdAt:    createdAt,
	}
}

// BecomePartner upgrades the account so it may own stores.
func (u *User) BecomePartner() {
	u.role = RolePartner
}

func (u *User) IsPartner() bool {
	return u.role == RolePartner
}

func (u *User) ID() uuid.UUID            { return u.id }
func (u *User) Name() string             { return u.name }
func (u *User) PhoneNumber() PhoneNumber { return u.phoneNumber }
func (u *User) PasswordHash() string     { return u.passwordHash }
func (u *User) Role() Role               { return u.role }
func (u *User) CreatedAt() time.Time     { return u.createdAt }
