package domain

import (
	"strings"
	"time"

	apperrors "github.com/spec-kit/adoptafacil/pkg/util/errorutil"
)

// User is a platform account. Password holds the bcrypt hash once registered.
type User struct {
	ID               int64
	Email            string
	Password         string
	FullName         string
	RegistrationDate time.Time
	LastLogin        *time.Time
	Status           UserStatus
}

// NewUser builds a User from its required fields.
func NewUser(email, password, fullName string, status UserStatus) (*User, error) {
	u := &User{
		Email:    strings.TrimSpace(email),
		Password: password,
		FullName: strings.TrimSpace(fullName),
		Status:   status,
	}
	if err := u.CheckRequired(); err != nil {
		return nil, err
	}
	return u, nil
}

// CheckRequired reports every required field left empty.
func (u *User) CheckRequired() error {
	var missing []string
	if u.Email == "" {
		missing = append(missing, "email")
	}
	if u.Password == "" {
		missing = append(missing, "password")
	}
	if u.FullName == "" {
		missing = append(missing, "fullName")
	}
	if u.Status == "" {
		missing = append(missing, "status")
	}
	if len(missing) > 0 {
		return apperrors.NewMissingRequiredField(missing...)
	}
	if !u.Status.IsValid() {
		return apperrors.NewInvalidEnumValue("status", string(u.Status), names(UserStatuses))
	}
	return nil
}

// Activate, Deactivate and Suspend change the status; users are never removed.
func (u *User) Activate()   { u.Status = UserStatusActive }
func (u *User) Deactivate() { u.Status = UserStatusInactive }
func (u *User) Suspend()    { u.Status = UserStatusSuspended }

// RecordLogin stamps LastLogin.
func (u *User) RecordLogin(at time.Time) {
	t := at.UTC()
	u.LastLogin = &t
}
