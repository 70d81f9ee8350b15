package users

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"career-backend/internal/shared/apperr"
	"career-backend/internal/shared/auth"
	"career-backend/internal/shared/mail"
	"career-backend/internal/shared/telemetry"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

const (
	msgInvalidCredentials = "Invalid email or password"
	msgUserNotFound       = "User not found"
	msgDuplicateUser      = "User with this email or username already exists"
)

// Tokens issues and checks the tokens handed out by this service.
type Tokens interface {
	Issue(ownerID int64, username string) (string, error)
	IssueReset(ownerID int64, username string) (string, error)
	VerifyReset(token string) (auth.SessionClaim, error)
}

type Service struct {
	Repo   Repo
	Tokens Tokens
	Hasher auth.PasswordHasher
	Mailer mail.Mailer
}

func NewService(repo Repo, tokens Tokens, hasher auth.PasswordHasher, mailer mail.Mailer) *Service {
	if mailer == nil {
		mailer = mail.LogMailer{}
	}
	return &Service{Repo: repo, Tokens: tokens, Hasher: hasher, Mailer: mailer}
}

// SignupInput is the normalised signup request.
type SignupInput struct {
	Username string
	Email    string
	Password string
}

// AuthResult is returned by every operation that logs the user in.
type AuthResult struct {
	User  User
	Token string
}

// ResetTicket is the outcome of a password-reset request.
type ResetTicket struct {
	Username string
	Token    string
}

// NormalizeEmail trims and case-folds an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *Service) Signup(ctx context.Context, in SignupInput) (AuthResult, error) {
	username := strings.TrimSpace(in.Username)
	email := NormalizeEmail(in.Email)
	if username == "" {
		return AuthResult{}, apperr.Validation("Username is required")
	}
	if !emailPattern.MatchString(email) {
		return AuthResult{}, apperr.Validation("Invalid email format")
	}
	if err := auth.ValidatePassword(in.Password); err != nil {
		return AuthResult{}, err
	}

	exists, err := s.Repo.ExistsByEmailOrUsername(ctx, email, username)
	if err != nil {
		return AuthResult{}, apperr.Persistence(fmt.Errorf("check existing user: %w", err))
	}
	if exists {
		return AuthResult{}, apperr.Conflict(msgDuplicateUser)
	}

	hash, err := s.Hasher.Hash(in.Password)
	if err != nil {
		return AuthResult{}, apperr.Persistence(fmt.Errorf("hash password: %w", err))
	}
	user, err := s.Repo.Create(ctx, User{Username: username, Email: email, PasswordHash: hash})
	if err != nil {
		if errors.Is(err, ErrDuplicate) {
			return AuthResult{}, apperr.Conflict(msgDuplicateUser)
		}
		return AuthResult{}, apperr.Persistence(fmt.Errorf("create user: %w", err))
	}
	return s.loggedIn(user)
}

func (s *Service) Login(ctx context.Context, email, password string) (AuthResult, error) {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return AuthResult{}, apperr.Validation("Email and password are required")
	}
	user, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return AuthResult{}, apperr.Unauthenticated(msgInvalidCredentials)
		}
		return AuthResult{}, apperr.Persistence(fmt.Errorf("load user: %w", err))
	}
	if !s.Hasher.Verify(user.PasswordHash, password) {
		return AuthResult{}, apperr.Unauthenticated(msgInvalidCredentials)
	}
	return s.loggedIn(user)
}

// Profile loads the user behind a verified session.
func (s *Service) Profile(ctx context.Context, userID int64) (User, error) {
	user, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			// the token outlived its user
			return User{}, apperr.Unauthenticated("missing or invalid token")
		}
		return User{}, apperr.Persistence(fmt.Errorf("load user: %w", err))
	}
	return user, nil
}

// ForgotPassword issues a reset token and mails it to the account owner.
func (s *Service) ForgotPassword(ctx context.Context, email string) (ResetTicket, error) {
	email = NormalizeEmail(email)
	if email == "" {
		return ResetTicket{}, apperr.Validation("Email is required")
	}
	user, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ResetTicket{}, apperr.NotFound(msgUserNotFound)
		}
		return ResetTicket{}, apperr.Persistence(fmt.Errorf("load user: %w", err))
	}
	token, err := s.Tokens.IssueReset(user.ID, user.Username)
	if err != nil {
		return ResetTicket{}, apperr.Persistence(fmt.Errorf("issue reset token: %w", err))
	}

	msg := mail.Message{
		To:      user.Email,
		Subject: "Reset your password",
		Body: fmt.Sprintf("Hi %s,\n\nUse this code to reset your password. It expires in one hour.\n\n%s\n",
			user.Username, token),
	}
	if err := s.Mailer.Send(ctx, msg); err != nil {
		telemetry.Error("users.reset_mail_failed", map[string]any{"user_id": user.ID, "error": err.Error()})
		return ResetTicket{}, apperr.Persistence(fmt.Errorf("send reset mail: %w", err))
	}
	return ResetTicket{Username: user.Username, Token: token}, nil
}

// ResetInput is the normalised reset-password request.
type ResetInput struct {
	Email       string
	ResetToken  string
	NewPassword string
}

func (s *Service) ResetPassword(ctx context.Context, in ResetInput) (AuthResult, error) {
	email := NormalizeEmail(in.Email)
	if email == "" || strings.TrimSpace(in.ResetToken) == "" || in.NewPassword == "" {
		return AuthResult{}, apperr.Validation("Email, reset token and new password are required")
	}
	if err := auth.ValidatePassword(in.NewPassword); err != nil {
		return AuthResult{}, err
	}
	user, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return AuthResult{}, apperr.NotFound(msgUserNotFound)
		}
		return AuthResult{}, apperr.Persistence(fmt.Errorf("load user: %w", err))
	}
	claim, err := s.Tokens.VerifyReset(in.ResetToken)
	if err != nil || claim.OwnerID != user.ID {
		return AuthResult{}, apperr.Unauthenticated("Invalid or expired reset token")
	}

	hash, err := s.Hasher.Hash(in.NewPassword)
	if err != nil {
		return AuthResult{}, apperr.Persistence(fmt.Errorf("hash password: %w", err))
	}
	if err := s.Repo.UpdatePasswordHash(ctx, user.ID, hash); err != nil {
		return AuthResult{}, apperr.Persistence(fmt.Errorf("update password: %w", err))
	}
	user.PasswordHash = hash
	return s.loggedIn(user)
}

// List returns every user, newest first. Only routed in dev.
func (s *Service) List(ctx context.Context) ([]User, error) {
	list, err := s.Repo.List(ctx)
	if err != nil {
		return nil, apperr.Persistence(fmt.Errorf("list users: %w", err))
	}
	return list, nil
}

func (s *Service) loggedIn(user User) (AuthResult, error) {
	token, err := s.Tokens.Issue(user.ID, user.Username)
	if err != nil {
		return AuthResult{}, apperr.Persistence(fmt.Errorf("issue token: %w", err))
	}
	return AuthResult{User: user, Token: token}, nil
}
