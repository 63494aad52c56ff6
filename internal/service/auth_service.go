package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"lingo_quiz/internal/config"
	"lingo_quiz/internal/middleware"
	"lingo_quiz/internal/model"
	"lingo_quiz/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Signup(ctx context.Context, req *model.SignupRequest) (*model.AuthResponse, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error)
	Refresh(ctx context.Context, req *model.RefreshRequest) (*model.RefreshResponse, error)
	GetUser(ctx context.Context, userID uint) (*model.User, error)
}

type authService struct {
	db       *gorm.DB
	userRepo repository.UserRepository
	cfg      *config.Config
}

// NewAuthService は AuthService の新しいインスタンスを生成します
func NewAuthService(db *gorm.DB, userRepo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{
		db:       db,
		userRepo: userRepo,
		cfg:      cfg,
	}
}

// Signup は新しいユーザーを登録し、トークンペアを返します
func (s *authService) Signup(ctx context.Context, req *model.SignupRequest) (*model.AuthResponse, error) {
	logger := middleware.GetLogger(ctx)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	_, err := s.userRepo.FindByEmail(ctx, s.db, email)
	if err == nil {
		logger.Warn("Email already exists", "email", email)
		return nil, model.NewAppError("DUPLICATE_EMAIL", "A user with this email already exists.", "email", model.ErrConflict)
	}
	if !errors.Is(err, model.ErrNotFound) {
		logger.Error("Failed to check email existence", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to register user.", "", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Failed to hash password", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to register user.", "", err)
	}

	firstName, lastName := splitFullName(req.FullName)
	user := &model.User{
		Email:        email,
		FirstName:    firstName,
		LastName:     lastName,
		PasswordHash: string(hashedPassword),
	}
	if err := s.userRepo.Create(ctx, s.db, user); err != nil {
		if errors.Is(err, model.ErrConflict) {
			logger.Warn("Conflict during user creation (race condition)", "email", email)
			return nil, model.NewAppError("DUPLICATE_EMAIL", "A user with this email already exists.", "email", model.ErrConflict)
		}
		logger.Error("Failed to create user in DB", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to register user.", "", err)
	}

	tokens, err := s.issueTokenPair(user)
	if err != nil {
		logger.Error("Failed to sign JWT", "error", err, "user_id", user.ID)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to issue tokens.", "", err)
	}

	logger.Info("User registered", "user_id", user.ID)
	return &model.AuthResponse{User: model.NewUserResponse(user), Tokens: *tokens}, nil
}

// Login はユーザーを認証し、トークンペアを返します
func (s *authService) Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	logger := middleware.GetLogger(ctx).With("email", email)

	user, err := s.userRepo.FindByEmail(ctx, s.db, email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Warn("Login failed: user not found")
			return nil, model.NewAppError("AUTHENTICATION_FAILED", "Invalid email or password.", "", model.ErrUnauthorized)
		}
		logger.Error("Login failed: db error on FindByEmail", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to log in.", "", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		logger.Warn("Login failed: password mismatch", "user_id", user.ID)
		return nil, model.NewAppError("AUTHENTICATION_FAILED", "Invalid email or password.", "", model.ErrUnauthorized)
	}

	tokens, err := s.issueTokenPair(user)
	if err != nil {
		logger.Error("Failed to sign JWT", "error", err, "user_id", user.ID)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to issue tokens.", "", err)
	}

	logger.Info("Login successful", "user_id", user.ID)
	return &model.AuthResponse{User: model.NewUserResponse(user), Tokens: *tokens}, nil
}

// Refresh は refresh トークンから新しい access トークンを発行します
func (s *authService) Refresh(ctx context.Context, req *model.RefreshRequest) (*model.RefreshResponse, error) {
	logger := middleware.GetLogger(ctx)

	claims, err := middleware.ParseToken(s.cfg, req.Refresh, model.TokenTypeRefresh)
	if err != nil {
		logger.Warn("Refresh failed: invalid token", "error", err)
		return nil, model.NewAppError("INVALID_TOKEN", "Token is invalid or expired.", "refresh", model.ErrUnauthorized)
	}
	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || userID == 0 {
		logger.Warn("Refresh failed: invalid subject", "subject", claims.Subject)
		return nil, model.NewAppError("INVALID_TOKEN", "Token is invalid or expired.", "refresh", model.ErrUnauthorized)
	}

	// スタッフ権限の変更を反映するため、ユーザーを取り直す
	user, err := s.userRepo.FindByID(ctx, s.db, uint(userID))
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Warn("Refresh failed: user no longer exists", "user_id", userID)
			return nil, model.NewAppError("INVALID_TOKEN", "Token is invalid or expired.", "refresh", model.ErrUnauthorized)
		}
		logger.Error("Refresh failed: db error on FindByID", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to refresh token.", "", err)
	}

	access, err := s.signToken(user, model.TokenTypeAccess, s.cfg.JWT.AccessTokenTTL)
	if err != nil {
		logger.Error("Failed to sign JWT", "error", err, "user_id", user.ID)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to issue tokens.", "", err)
	}
	return &model.RefreshResponse{Access: access}, nil
}

// GetUser は指定されたIDのユーザーを取得します
func (s *authService) GetUser(ctx context.Context, userID uint) (*model.User, error) {
	logger := middleware.GetLogger(ctx)
	user, err := s.userRepo.FindByID(ctx, s.db, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Warn("User not found", "user_id", userID)
			return nil, model.NewAppError("USER_NOT_FOUND", "User not found.", "", model.ErrNotFound)
		}
		logger.Error("Error finding user by ID", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to load user.", "", err)
	}
	return user, nil
}

// --- ヘルパー関数 ---

func (s *authService) issueTokenPair(user *model.User) (*model.TokenPair, error) {
	access, err := s.signToken(user, model.TokenTypeAccess, s.cfg.JWT.AccessTokenTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := s.signToken(user, model.TokenTypeRefresh, s.cfg.JWT.RefreshTokenTTL)
	if err != nil {
		return nil, err
	}
	return &model.TokenPair{Access: access, Refresh: refresh}, nil
}

func (s *authService) signToken(user *model.User, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &model.JWTCustomClaims{
		TokenType: tokenType,
		IsStaff:   user.IsStaff,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    s.cfg.App.Name,
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWT.SecretKey))
}

// splitFullName は先頭の語を名、残りを姓として扱います。
func splitFullName(fullName string) (string, string) {
	parts := strings.Fields(fullName)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}
