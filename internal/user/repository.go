package user

import "context"

type Repository interface {
	CreateUser(ctx context.Context, u *User) (string, error)
	GetUserByID(ctx context.Context, id string) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	UpdateUser(ctx context.Context, u *User) error
	UpdatePassword(ctx context.Context, id, hashedPassword string) error
	DeactivateUser(ctx context.Context, id string) error
}
