package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"learnhub/internal/auth"
	"learnhub/internal/dto"
	apperrors "learnhub/internal/errors"
	"learnhub/internal/mailer"
	"learnhub/internal/model"
	"learnhub/internal/repository"
)

const bcryptCost = 10

// AuthService handles authentication operations.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*dto.LoginResponse, error)
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Logout(ctx context.Context, userID uint) error
	ForgotPassword(ctx context.Context, email string) error
	VerifyOTP(ctx context.Context, email, otp string) (bool, error)
	ResetPassword(ctx context.Context, email, otp, newPassword string) error
}

type authService struct {
	userRepo     repository.UserRepository
	jwtService   *auth.JWTService
	sessionStore auth.SessionStore
	otpStore     auth.OTPStore
	mailer       mailer.Mailer
}

// NewAuthService creates a new authentication service.
func NewAuthService(
	userRepo repository.UserRepository,
	jwtService *auth.JWTService,
	sessionStore auth.SessionStore,
	otpStore auth.OTPStore,
	mailer mailer.Mailer,
) AuthService {
	return &authService{
		userRepo:     userRepo,
		jwtService:   jwtService,
		sessionStore: sessionStore,
		otpStore:     otpStore,
		mailer:       mailer,
	}
}

// Login verifies credentials and returns the caller's active session token.
// A user with a live token gets the same token back, so repeated logins are
// idempotent on the token value. The check-then-set against the session store
// is not atomic; two concurrent first logins can each mint a token.
func (s *authService) Login(ctx context.Context, email, password string) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.sessionStore.Get(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("read session token: %w", err)
	}

	message := "User already logged in"
	if token == "" {
		token, err = s.jwtService.GenerateToken(user.ID, user.Email, user.Role)
		if err != nil {
			return nil, fmt.Errorf("generate token: %w", err)
		}
		if err := s.sessionStore.Save(ctx, user.ID, token); err != nil {
			return nil, fmt.Errorf("store session token: %w", err)
		}
		message = "Login successful"
	}

	return &dto.LoginResponse{
		Name:    user.Name,
		Role:    user.Role,
		Token:   token,
		Message: message,
	}, nil
}

// Register creates a new account. The ADMIN role cannot be self-assigned.
func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	exists, err := s.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check email existence: %w", err)
	}
	if exists {
		return nil, apperrors.ErrEmailTaken
	}

	role, err := model.ParseRole(req.Role)
	if err != nil {
		return nil, fmt.Errorf("parse role: %w", err)
	}
	if role == model.RoleAdmin {
		return nil, apperrors.ErrAdminRoleNotAllowed
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := dto.UserFromRegisterRequest(req)
	user.PasswordHash = string(hashedPassword)
	user.CreatedAt = time.Now()

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return &dto.RegisterResponse{
		Message: "User registered successfully",
		ID:      user.ID,
		Name:    user.Name,
		Email:   user.Email,
		Role:    user.Role,
	}, nil
}

// Logout drops the caller's session token. Logging out twice is a no-op.
func (s *authService) Logout(ctx context.Context, userID uint) error {
	return s.sessionStore.Delete(ctx, userID)
}

// ForgotPassword generates a 6-digit reset code, stores it with a TTL and
// hands it to the mailer for out-of-band delivery.
func (s *authService) ForgotPassword(ctx context.Context, email string) error {
	code := fmt.Sprintf("%06d", rand.Intn(900000)+100000)

	if err := s.otpStore.Save(ctx, email, code); err != nil {
		return fmt.Errorf("store otp: %w", err)
	}
	if err := s.mailer.SendOTP(ctx, email, code); err != nil {
		return fmt.Errorf("send otp: %w", err)
	}
	return nil
}

// VerifyOTP reports whether the code matches the stored one for the email.
func (s *authService) VerifyOTP(ctx context.Context, email, otp string) (bool, error) {
	stored, err := s.otpStore.Get(ctx, email)
	if err != nil {
		return false, fmt.Errorf("read otp: %w", err)
	}
	return stored != "" && stored == otp, nil
}

// ResetPassword re-hashes the password after OTP verification. The code is
// removed afterwards, so it is single-use.
func (s *authService) ResetPassword(ctx context.Context, email, otp, newPassword string) error {
	valid, err := s.VerifyOTP(ctx, email, otp)
	if err != nil {
		return err
	}
	if !valid {
		return apperrors.ErrInvalidOTP
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("find user: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	user.PasswordHash = string(hashedPassword)

	if err := s.userRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	return s.otpStore.Delete(ctx, email)
}
