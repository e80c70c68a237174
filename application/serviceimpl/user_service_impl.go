package serviceimpl

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"taskmanager/domain/dto"
	"taskmanager/domain/models"
	"taskmanager/domain/repositories"
	"taskmanager/domain/services"
	"taskmanager/pkg/logger"
	"taskmanager/pkg/utils"
)

type UserServiceImpl struct {
	userRepo  repositories.UserRepository
	jwtSecret string
	jwtExpiry time.Duration
}

func NewUserService(userRepo repositories.UserRepository, jwtSecret string, jwtExpiry time.Duration) services.UserService {
	return &UserServiceImpl{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
		jwtExpiry: jwtExpiry,
	}
}

func (s *UserServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, _ := s.userRepo.GetByEmail(ctx, email)
	if existing != nil {
		logger.WarnContext(ctx, "Registration failed - email already exists", "email", email)
		return nil, services.ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to hash password", "error", err)
		return nil, err
	}

	user := &models.User{
		ID:               uuid.New(),
		Name:             strings.TrimSpace(req.Name),
		Email:            email,
		Password:         string(hashed),
		NightlyReminders: false,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// The pre-check above races with concurrent registrations; the
		// unique index is the real guard.
		if errors.Is(err, repositories.ErrDuplicate) {
			logger.WarnContext(ctx, "Registration failed - email already exists", "email", email)
			return nil, services.ErrEmailTaken
		}
		logger.ErrorContext(ctx, "Failed to create user", "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "User registered", "user_id", user.ID, "email", user.Email)

	return user, nil
}

func (s *UserServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (string, *models.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	// Unknown email and wrong password return the same error so callers
	// cannot enumerate registered addresses.
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		logger.WarnContext(ctx, "Login failed - email not found", "email", email)
		return "", nil, services.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		logger.WarnContext(ctx, "Login failed - invalid password", "user_id", user.ID)
		return "", nil, services.ErrInvalidCredentials
	}

	token, err := s.GenerateJWT(user)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to generate JWT", "user_id", user.ID, "error", err)
		return "", nil, err
	}

	logger.InfoContext(ctx, "User logged in", "user_id", user.ID)

	return token, user, nil
}

func (s *UserServiceImpl) GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

func (s *UserServiceImpl) SetNightlyReminders(ctx context.Context, userID uuid.UUID, enabled bool) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.NightlyReminders = enabled
	user.UpdatedAt = time.Now()

	if err := s.userRepo.Update(ctx, user); err != nil {
		logger.ErrorContext(ctx, "Failed to update reminder setting", "user_id", userID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Nightly reminders toggled", "user_id", userID, "enabled", enabled)

	return user, nil
}

func (s *UserServiceImpl) GenerateJWT(user *models.User) (string, error) {
	now := time.Now()
	claims := utils.JWTClaims{
		UserID: user.ID.String(),
		Email:  user.Email,
		Name:   user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtExpiry)),
			Subject:   user.ID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}
