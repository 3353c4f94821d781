package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/lingo-polska/core/internal/models"
	"github.com/lingo-polska/core/internal/pkg/apperrors"
	"github.com/lingo-polska/core/internal/pkg/jwt"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const tokenTTL = 7 * 24 * time.Hour

// ErrBadCredentials is returned for both unknown-user and wrong-password so
// the login response does not leak which one it was.
var ErrBadCredentials = errors.New("invalid username or password")

type LoginDTO struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RegisterDTO struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name"`
	Mail     string `json:"mail"`
}

type LoginResult struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Expiry   int64  `json:"expiry"`
}

type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger.Named("auth")}
}

// HasAdmin reports whether the admin account has been created yet.
func (s *Service) HasAdmin() (bool, error) {
	var count int64
	if err := s.db.Model(&models.UserModel{}).Count(&count).Error; err != nil {
		return false, apperrors.Storage("count users", err)
	}
	return count > 0, nil
}

// Register creates the single admin account. It refuses once one exists.
func (s *Service) Register(dto *RegisterDTO) (*models.UserModel, error) {
	exists, err := s.HasAdmin()
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.Validation("admin account already initialized")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.UserModel{
		Username: strings.TrimSpace(dto.Username),
		Name:     strings.TrimSpace(dto.Name),
		Password: string(hashed),
		Mail:     strings.TrimSpace(dto.Mail),
	}
	if user.Name == "" {
		user.Name = user.Username
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, apperrors.Storage("create user", err)
	}
	s.logger.Info("admin account created", zap.String("username", user.Username))
	return &user, nil
}

// Login checks credentials and issues a JWT.
func (s *Service) Login(dto *LoginDTO, clientIP string) (*LoginResult, error) {
	var user models.UserModel
	err := s.db.First(&user, "username = ?", strings.TrimSpace(dto.Username)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBadCredentials
		}
		return nil, apperrors.Storage("find user", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(dto.Password)) != nil {
		return nil, ErrBadCredentials
	}

	token, err := jwt.Sign(user.ID, tokenTTL)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	s.db.Model(&user).Updates(map[string]interface{}{
		"last_login_time": &now,
		"last_login_ip":   clientIP,
	})

	return &LoginResult{
		Token:    token,
		Username: user.Username,
		Name:     user.Name,
		Expiry:   now.Add(tokenTTL).Unix(),
	}, nil
}

// GetUser loads a user by ID, nil when missing.
func (s *Service) GetUser(id string) (*models.UserModel, error) {
	var user models.UserModel
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.Storage("get user", err)
	}
	return &user, nil
}
