package request

import (
	"storeslot/internal/domain/user"
)

type RegisterUserRequest struct {
	Name        string `json:"name" binding:"required"`
	PhoneNumber string `json:"phone_number" binding:"required"`
	Password    string `json:"password" binding:"required,min=8"`
}

func (r *RegisterUserRequest) ToDomain() (user.PhoneNumber, user.Password, error) {
	phone, err := user.NewPhoneNumber(r.PhoneNumber)
	if err != nil {
		return user.PhoneNumber{}, user.Password{}, err
	}
	pass, err := user.NewPassword(r.Password)
	if err != nil {
		return user.PhoneNumber{}, user.Password{}, err
	}
	return phone, pass, nil
}

type LoginRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required"`
	Password    string `json:"password" binding:"required"`
}
