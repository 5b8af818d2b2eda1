package service

import (
	"errors"

	"github.com/google/uuid"
	"github.com/snapfolio/snapfolio-backend/internal/apperr"
	"github.com/snapfolio/snapfolio-backend/internal/models"
)

// Misafir cookie'si 30 gün yaşar
const GuestTokenMaxAge = 30 * 24 * 60 * 60

type GuestService struct {
	guestRepo GuestStore
	eventRepo EventStore
}

func NewGuestService(guestRepo GuestStore, eventRepo EventStore) *GuestService {
	return &GuestService{
		guestRepo: guestRepo,
		eventRepo: eventRepo,
	}
}

// ResolveOrCreate token'lı misafiri bulur; token yok veya tanınmıyorsa
// yeni bir misafir ve token üretir. minted true dönerse caller token'ı
// cookie olarak istemciye vermelidir ki sonraki yüklemeler aynı misafire
// bağlansın.
func (s *GuestService) ResolveOrCreate(eventID uint, token, name, email string) (guest *models.Guest, minted bool, err error) {
	if token != "" {
		guest, err = s.guestRepo.GetByToken(token)
		if err == nil {
			return guest, false, nil
		}
		if !errors.Is(err, apperr.ErrNotFound) {
			return nil, false, err
		}
	}

	guest = &models.Guest{
		EventID:    eventID,
		Name:       name,
		Email:      email,
		GuestToken: uuid.NewString(),
	}
	if guest.Name == "" {
		guest.Name = "Anonymous"
	}

	if err := s.guestRepo.Create(guest); err != nil {
		return nil, false, err
	}
	return guest, true, nil
}

// RegisterGuest QR taraması sonrası misafirin kendini tanıtması
func (s *GuestService) RegisterGuest(req models.RegisterGuestRequest) (*models.Guest, error) {
	if _, err := s.eventRepo.GetByID(req.EventID); err != nil {
		return nil, err
	}

	guest, _, err := s.ResolveOrCreate(req.EventID, "", req.Name, req.Email)
	return guest, err
}

func (s *GuestService) GetGuest(id uint) (*models.Guest, error) {
	return s.guestRepo.GetByID(id)
}

// LookupByToken cookie'deki token'dan misafiri bulur
func (s *GuestService) LookupByToken(token string) (*models.Guest, error) {
	if token == "" {
		return nil, apperr.ErrNotFound
	}
	return s.guestRepo.GetByToken(token)
}
