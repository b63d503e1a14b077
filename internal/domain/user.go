package domain

import "time"

type User struct {
	ID              int64      `json:"id"`
	Email           string     `json:"email" validate:"required,email"`
	PasswordHash    string     `json:"-"`
	FirstName       string     `json:"firstName,omitempty"`
	LastName        string     `json:"lastName,omitempty"`
	Phone           string     `json:"phone,omitempty"`
	DateOfBirth     *time.Time `json:"dateOfBirth,omitempty"`
	ProfileImage    string     `json:"profileImage,omitempty"`
	IsVerified      bool       `json:"isVerified"`
	MMTSelectMember bool       `json:"mmtSelectMember"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}
