package service

import (
	"fmt"

	"github.com/snapfolio/snapfolio-backend/internal/apperr"
	"github.com/snapfolio/snapfolio-backend/internal/models"
	"github.com/snapfolio/snapfolio-backend/pkg/bcrypt"
	"github.com/snapfolio/snapfolio-backend/pkg/jwt"
	"go.uber.org/zap"
)

type AuthService struct {
	userRepo   UserStore
	mailer     Mailer
	jwtService *jwt.Service
	logger     *zap.Logger
}

func NewAuthService(userRepo UserStore, mailer Mailer, jwtService *jwt.Service, logger *zap.Logger) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		mailer:     mailer,
		jwtService: jwtService,
		logger:     logger,
	}
}

func (s *AuthService) Register(req *models.RegisterRequest) (*models.AuthResponse, error) {
	exists, err := s.userRepo.EmailExists(req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: email already registered", apperr.ErrInvalidInput)
	}

	hashedPassword, err := bcrypt.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		FullName: req.FullName,
		Email:    req.Email,
		Password: hashedPassword,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	token, err := s.jwtService.GenerateToken(user.Email, user.ID)
	if err != nil {
		return nil, err
	}

	response := &models.AuthResponse{
		Token: token,
		User:  *user,
	}

	// Welcome email gönderilemezse kayıt başarılı kalır
	if err := s.mailer.SendWelcomeEmail(user.Email, user.FullName); err != nil {
		s.logger.Warn("failed to send welcome email",
			zap.String("email", user.Email),
			zap.Error(err))
		response.Warning = "Account created but welcome email could not be sent"
	}

	return response, nil
}

func (s *AuthService) Login(req *models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid email or password", apperr.ErrUnauthorized)
	}

	if err := bcrypt.ComparePassword(user.Password, req.Password); err != nil {
		return nil, fmt.Errorf("%w: invalid email or password", apperr.ErrUnauthorized)
	}

	token, err := s.jwtService.GenerateToken(user.Email, user.ID)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Token: token,
		User:  *user,
	}, nil
}
