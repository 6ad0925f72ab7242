package service

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/petitplat/backend/internal/model"
	"github.com/petitplat/backend/internal/types"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidToken       = errors.New("invalid token")
)

// Role classifies a viewer relative to a recipe.
type Role int

const (
	RoleAnonymous Role = iota
	RoleOwner
	RoleAdmin
)

// AuthService handles accounts, tokens and the viewer role gate.
type AuthService struct {
	db         *gorm.DB
	jwtSecret  string
	adminEmail string
}

func NewAuthService(db *gorm.DB, jwtSecret, adminEmail string) *AuthService {
	return &AuthService{
		db:         db,
		jwtSecret:  jwtSecret,
		adminEmail: normalizeEmail(adminEmail),
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *AuthService) Register(email, username, password string) (string, error) {
	var existing model.User
	if err := s.db.Where("email = ?", email).First(&existing).Error; err == nil {
		return "", ErrUserExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	user := model.User{
		ID:           uuid.New(),
		Email:        email,
		Username:     username,
		PasswordHash: string(hashed),
	}
	if err := s.db.Create(&user).Error; err != nil {
		return "", err
	}

	return s.generateToken(user)
}

func (s *AuthService) Login(email, password string) (string, error) {
	var user model.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.generateToken(user)
}

func (s *AuthService) generateToken(user model.User) (string, error) {
	claims := types.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		UserID:   user.ID,
		Email:    user.Email,
		Username: user.Username,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// ValidateToken parses a bearer token into its claims.
func (s *AuthService) ValidateToken(tokenString string) (*types.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &types.TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*types.TokenClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// RoleOf classifies a viewer relative to a recipe. Admin is decided by
// trimmed, case-insensitive equality with the configured admin address;
// owner by id equality with the recipe's stored owner. This only drives
// affordances: every write handler re-checks with CanEdit.
func (s *AuthService) RoleOf(viewer *types.Viewer, recipe *model.Recipe) Role {
	if viewer == nil {
		return RoleAnonymous
	}
	if s.adminEmail != "" && normalizeEmail(viewer.Email) == s.adminEmail {
		return RoleAdmin
	}
	if recipe != nil && recipe.UserID != nil && *recipe.UserID == viewer.UserID {
		return RoleOwner
	}
	return RoleAnonymous
}

// CanEdit reports whether the viewer may modify or delete the recipe.
func (s *AuthService) CanEdit(viewer *types.Viewer, recipe *model.Recipe) bool {
	role := s.RoleOf(viewer, recipe)
	return role == RoleAdmin || role == RoleOwner
}

// IsAdmin reports whether the viewer holds the configured admin address.
func (s *AuthService) IsAdmin(viewer *types.Viewer) bool {
	return s.RoleOf(viewer, nil) == RoleAdmin
}
