package user

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// TokenTTL matches the 7-day expiry the web client expects.
const TokenTTL = 7 * 24 * time.Hour

type Usecase struct {
	repo      Repository
	jwtSecret string
	logger    *zap.Logger
}

func NewUsecase(repo Repository, jwtSecret string, logger *zap.Logger) *Usecase {
	return &Usecase{
		repo:      repo,
		jwtSecret: jwtSecret,
		logger:    logger.Named("UserUsecase"),
	}
}

// Register creates an account and returns it with a fresh session token.
// Registration requires username, email, password and role up front.
func (u *Usecase) Register(ctx context.Context, username, email, password, role, phone string) (*User, string, error) {
	if username == "" || email == "" || password == "" || role == "" {
		return nil, "", ErrMissingFields
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	account := &User{
		Username:  username,
		Email:     email,
		Password:  string(hashed),
		Phone:     phone,
		Role:      role,
		IsActive:  true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	id, err := u.repo.CreateUser(ctx, account)
	if err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			return nil, "", ErrDuplicateEmail
		}
		u.logger.Error("failed to create user", zap.String("email", email), zap.Error(err))
		return nil, "", err
	}
	account.ID = id

	token, err := u.issueToken(id)
	if err != nil {
		return nil, "", err
	}
	return account, token, nil
}

// Login verifies credentials and returns the account with a session token.
// Unknown email and wrong password are indistinguishable to the caller.
func (u *Usecase) Login(ctx context.Context, email, password string) (*User, string, error) {
	if email == "" || password == "" {
		return nil, "", ErrMissingFields
	}

	account, err := u.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if !account.IsActive {
		return nil, "", ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := u.issueToken(account.ID)
	if err != nil {
		return nil, "", err
	}
	return account, token, nil
}

func (u *Usecase) GetProfile(ctx context.Context, userID string) (*User, error) {
	account, err := u.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !account.IsActive {
		return nil, ErrUnauthorized
	}
	return account, nil
}

func (u *Usecase) UpdateProfile(ctx context.Context, userID, username, email, phone string) error {
	account, err := u.GetProfile(ctx, userID)
	if err != nil {
		return err
	}

	if username != "" {
		account.Username = username
	}
	if email != "" {
		account.Email = email
	}
	if phone != "" {
		account.Phone = phone
	}
	account.UpdatedAt = time.Now()

	return u.repo.UpdateUser(ctx, account)
}

func (u *Usecase) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	account, err := u.GetProfile(ctx, userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(oldPassword)); err != nil {
		return ErrInvalidCredentials
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return u.repo.UpdatePassword(ctx, userID, string(hashed))
}

// DeleteUser soft-deletes the account so past listings keep a resolvable seller.
func (u *Usecase) DeleteUser(ctx context.Context, userID string) error {
	if _, err := u.GetProfile(ctx, userID); err != nil {
		return err
	}
	return u.repo.DeactivateUser(ctx, userID)
}

func (u *Usecase) issueToken(userID string) (string, error) {
	claims := jwt.MapClaims{
		"id":  userID,
		"exp": time.Now().Add(TokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(u.jwtSecret))
}
