package service

import (
	"github.com/snapfolio/snapfolio-backend/internal/models"
)

type UserService struct {
	userRepo UserStore
}

func NewUserService(userRepo UserStore) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) GetProfile(userID uint) (*models.User, error) {
	return s.userRepo.GetByID(userID)
}

func (s *UserService) UpdateProfile(userID uint, req *models.UpdateProfileRequest) (*models.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	user.FullName = req.FullName
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}
