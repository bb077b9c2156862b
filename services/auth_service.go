package services

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/activi-backend/dto"
	"github.com/activi-backend/models"
	"github.com/activi-backend/repositories"
	"github.com/activi-backend/utils"
)

const (
	minPasswordLength = 6
	tokenValidity     = 7 * 24 * time.Hour
)

var userRepo = repositories.NewUserRepository()

// Register creates a new user account and returns a token plus the public
// user record
func Register(req dto.RegisterRequest) (*dto.AuthResponse, error) {
	if req.Email == "" || req.Password == "" || len(req.Password) < minPasswordLength {
		return nil, utils.NewValidationError("email and password (min. 6 chars) are required")
	}

	// Check if email already exists (case-insensitive)
	_, err := userRepo.FindByEmail(req.Email)
	if err == nil {
		return nil, utils.NewConflictError("user already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.NewInternalError("server error")
	}

	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, utils.NewInternalError("server error")
	}

	user := models.User{
		ID:           uuid.NewString(),
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
	}

	user, err = userRepo.Create(user)
	if err != nil {
		return nil, utils.NewInternalError("server error")
	}

	token, err := GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, utils.NewInternalError("server error")
	}

	return &dto.AuthResponse{
		Token: token,
		User:  dto.UserResponse{ID: user.ID, Email: user.Email},
	}, nil
}

// Login authenticates a user and returns a token. Unknown email and wrong
// password are indistinguishable to the caller.
func Login(req dto.LoginRequest) (*dto.AuthResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, utils.NewValidationError("email and password are required")
	}

	user, err := userRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewAuthError("invalid email or password")
		}
		return nil, utils.NewInternalError("server error")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, utils.NewAuthError("invalid email or password")
	}

	token, err := GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, utils.NewInternalError("server error")
	}

	return &dto.AuthResponse{
		Token: token,
		User:  dto.UserResponse{ID: user.ID, Email: user.Email},
	}, nil
}

// GenerateToken generates a new JWT token for a user
func GenerateToken(userID, email string) (string, error) {
	secretKey := os.Getenv("JWT_SECRET")
	if secretKey == "" {
		return "", errors.New("JWT_SECRET not set in environment")
	}

	now := time.Now()
	claims := dto.TokenClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenValidity)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secretKey))
}

// ValidateToken validates a JWT token and returns claims if valid.
// Side-effect-free: it touches neither the store nor the clock beyond
// expiry checking.
func ValidateToken(tokenString string) (*dto.TokenClaims, error) {
	secretKey := os.Getenv("JWT_SECRET")
	if secretKey == "" {
		return nil, errors.New("JWT_SECRET not set in environment")
	}

	token, err := jwt.ParseWithClaims(tokenString, &dto.TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secretKey), nil
	})
	if err != nil {
		return nil, utils.NewAuthError("invalid or expired token")
	}

	claims, ok := token.Claims.(*dto.TokenClaims)
	if !ok || !token.Valid {
		return nil, utils.NewAuthError("invalid or expired token")
	}

	return claims, nil
}
