package dto

import (
	"time"

	"github.com/spec-kit/adoptafacil/internal/domain"
)

// UserSaveRequest payload for POST /User/save.
type UserSaveRequest struct {
	Email     string     `json:"email" validate:"required,email,max=255"`
	Password  string     `json:"password" validate:"required"`
	FullName  string     `json:"fullName" validate:"required,max=255"`
	Status    string     `json:"status" validate:"required"`
	LastLogin *time.Time `json:"lastLogin"`
}

// ToDomain validates the payload and builds the entity.
func (r UserSaveRequest) ToDomain() (*domain.User, error) {
	if err := Validate(r); err != nil {
		return nil, err
	}
	status, err := domain.ParseUserStatus(r.Status)
	if err != nil {
		return nil, err
	}
	user, err := domain.NewUser(r.Email, r.Password, r.FullName, status)
	if err != nil {
		return nil, err
	}
	if r.LastLogin != nil {
		user.RecordLogin(*r.LastLogin)
	}
	return user, nil
}

// UserResponse is the public view of a user. The credential is never included.
type UserResponse struct {
	ID               int64      `json:"id"`
	Email            string     `json:"email"`
	FullName         string     `json:"fullName"`
	RegistrationDate time.Time  `json:"registrationDate"`
	LastLogin        *time.Time `json:"lastLogin"`
	Status           string     `json:"status"`
}

func NewUserResponse(u domain.User) UserResponse {
	return UserResponse{
		ID:               u.ID,
		Email:            u.Email,
		FullName:         u.FullName,
		RegistrationDate: u.RegistrationDate,
		LastLogin:        u.LastLogin,
		Status:           u.Status.String(),
	}
}

func NewUserResponses(users []domain.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserResponse(u))
	}
	return out
}
