package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Dicon-MoodLight/moodlight-server/internal/config"
	"github.com/Dicon-MoodLight/moodlight-server/internal/mail"
	"github.com/Dicon-MoodLight/moodlight-server/internal/models"
	"github.com/Dicon-MoodLight/moodlight-server/internal/repository"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AuthService drives the join/confirm/login/password-change workflow. It is
// a stateless coordinator over the injected stores; every pending state
// lives in the verification table.
type AuthService struct {
	users         repository.UserStore
	verifications repository.VerificationStore
	notifier      mail.Notifier
	cfg           *config.Config
}

func NewAuthService(users repository.UserStore, verifications repository.VerificationStore, notifier mail.Notifier, cfg *config.Config) *AuthService {
	return &AuthService{
		users:         users,
		verifications: verifications,
		notifier:      notifier,
		cfg:           cfg,
	}
}

// Join starts account creation. A repeated join for the same email
// overwrites the pending verification with a fresh code instead of
// duplicating it; availability is only checked for first-time requests.
// The verification row is durable before the email leaves, so a delivery
// failure is survivable: the user re-requests and the code is resent.
func (s *AuthService) Join(ctx context.Context, email, password, nickname, adminKey string) error {
	hash, err := hashPassword(password)
	if err != nil {
		return err
	}

	_, err = s.verifications.FindByEmailAndMode(ctx, email, models.ModeJoin)
	switch {
	case err == nil:
		// resend: overwrite below, keep identity
	case errors.Is(err, repository.ErrNotFound):
		if err := s.checkAvailability(ctx, email, nickname); err != nil {
			return err
		}
	default:
		return err
	}

	v := &models.Verification{
		Email:           email,
		Mode:            models.ModeJoin,
		ConfirmCode:     generateConfirmCode(),
		Nickname:        nickname,
		PendingPassword: hash,
		PendingIsAdmin:  s.cfg.AdminKey != "" && adminKey == s.cfg.AdminKey,
	}

	if err := s.verifications.Upsert(ctx, v); err != nil {
		// The unique index on (email, mode) is the authoritative guard; the
		// availability check above is only an early exit.
		if errors.Is(err, repository.ErrDuplicate) {
			return ErrEmailTaken
		}
		return err
	}

	// Delivery is attempted last and never undoes the record.
	if err := s.notifier.SendConfirmCode(ctx, email, v.ConfirmCode); err != nil {
		slog.Error("confirmation email delivery failed", "error", err, "action", "join")
	}
	return nil
}

func (s *AuthService) checkAvailability(ctx context.Context, email, nickname string) error {
	// Email collision is reported before nickname collision.
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	if _, err := s.users.FindByNickname(ctx, nickname); err == nil {
		return ErrNicknameTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	if _, err := s.verifications.FindByNickname(ctx, nickname); err == nil {
		return ErrNicknameTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	return nil
}

// Confirm turns a pending join verification into a real account. Creating
// the user and deleting the verification commit in one transaction, so a
// crash can never leave an orphaned verification behind a created user.
func (s *AuthService) Confirm(ctx context.Context, email, code string) (*models.User, error) {
	v, err := s.verifications.FindByCode(ctx, email, code, models.ModeJoin)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCodeNotFound
		}
		return nil, err
	}

	user, err := s.users.CreateFromVerification(ctx, v)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	slog.Info("user confirmed", "user_id", user.ID.String())
	return user, nil
}

// CheckConfirmCode reports whether a code matches the pending verification.
// Pure lookup, no mutation; clients use it to pre-validate input.
func (s *AuthService) CheckConfirmCode(ctx context.Context, email, code string, mode models.VerificationMode) error {
	if _, err := s.verifications.FindByCode(ctx, email, code, mode); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrCodeNotFound
		}
		return err
	}
	return nil
}

// Login fails uniformly whether the email is unknown or the password is
// wrong, so responses don't reveal which emails are registered.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !verifyPassword(password, user.Password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *AuthService) ChangePassword(ctx context.Context, userID uuid.UUID, oldPassword, newPassword string) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if !verifyPassword(oldPassword, user.Password) {
		return ErrInvalidCredentials
	}

	hash, err := hashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.users.UpdatePassword(ctx, userID, hash)
}

// ChangePasswordNotLoggedIn starts a forgotten-password reset. Unlike join,
// the account must already exist; the verification carries only a code.
func (s *AuthService) ChangePasswordNotLoggedIn(ctx context.Context, email string) error {
	if _, err := s.users.FindByEmail(ctx, email); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	v := &models.Verification{
		Email:       email,
		Mode:        models.ModeChangePassword,
		ConfirmCode: generateConfirmCode(),
	}
	if err := s.verifications.Upsert(ctx, v); err != nil {
		return err
	}

	if err := s.notifier.SendConfirmCode(ctx, email, v.ConfirmCode); err != nil {
		slog.Error("confirmation email delivery failed", "error", err, "action", "change_password")
	}
	return nil
}

// ConfirmChangePasswordNotLoggedIn completes the reset: the password update
// and the verification delete commit in one transaction.
func (s *AuthService) ConfirmChangePasswordNotLoggedIn(ctx context.Context, email, code, newPassword string) error {
	v, err := s.verifications.FindByCode(ctx, email, code, models.ModeChangePassword)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrCodeNotFound
		}
		return err
	}

	hash, err := hashPassword(newPassword)
	if err != nil {
		return err
	}

	if err := s.users.ResetPasswordFromVerification(ctx, v, hash); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}

func (s *AuthService) UpdateFirebaseToken(ctx context.Context, userID uuid.UUID, token string) error {
	err := s.users.UpdateFirebaseToken(ctx, userID, token)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrUserNotFound
	}
	return err
}

// CreateAccessToken signs a stateless HS256 token over the user's identity.
func (s *AuthService) CreateAccessToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":      user.ID.String(),
		"email":    user.Email,
		"is_admin": user.IsAdmin,
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(s.cfg.JWTAccessExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}
	return signed, nil
}
