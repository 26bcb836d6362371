//go:build unit || e2e

package builder

import (
	"time"

	domuser "storeslot/internal/domain/user"
	reqdto "storeslot/internal/handler/dto/request"
	"storeslot/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID          uuid.UUID
	Name        string
	PhoneNumber string
	Password    string
	Role        domuser.Role
	CreatedAt   time.Time
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:          uuid.New(),
		Name:        "Taro Yamada",
		PhoneNumber: "09012345678",
		Password:    "password123",
		Role:        domuser.RoleUser,
		CreatedAt:   time.Now(),
	}
}

func (b *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(b)
	return b
}

func (b *UserBuilder) WithRole(role domuser.Role) *UserBuilder {
	b.Role = role
	return b
}

func (b *UserBuilder) WithPhoneNumber(phoneNumber string) *UserBuilder {
	b.PhoneNumber = phoneNumber
	return b
}

func (b *UserBuilder) AsPartner() *UserBuilder {
	b.Role = domuser.RolePartner
	return b
}

func (b *UserBuilder) BuildDomain() (*domuser.User, error) {
	phone, err := domuser.NewPhoneNumber(b.PhoneNumber)
	if err != nil {
		return nil, err
	}
	return domuser.ReconstructUser(b.ID, b.Name, phone, "hashed:"+b.Password, b.Role, b.CreatedAt), nil
}

func (b *UserBuilder) BuildRegisterRequestDTO() reqdto.RegisterUserRequest {
	return reqdto.RegisterUserRequest{
		Name:        b.Name,
		PhoneNumber: b.PhoneNumber,
		Password:    b.Password,
	}
}

func (b *UserBuilder) BuildLoginRequestDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		PhoneNumber: b.PhoneNumber,
		Password:    b.Password,
	}
}

func (b *UserBuilder) BuildView() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:          b.ID,
		Name:        b.Name,
		PhoneNumber: b.PhoneNumber,
		Role:        b.Role.String(),
		CreatedAt:   b.CreatedAt,
	}
}
