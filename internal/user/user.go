package user

import (
	"errors"
	"time"
)

const (
	RoleSeller = "seller"
	RoleBuyer  = "buyer"
)

// User is an account that can post listings (seller) or browse and contact
// sellers (buyer). Password always holds the bcrypt hash, never plaintext.
type User struct {
	ID        string
	Username  string
	Email     string
	Password  string
	Phone     string
	Role      string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrDuplicateEmail     = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrMissingFields      = errors.New("please provide all required fields")
)
