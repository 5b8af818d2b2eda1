package service

import (
	"fmt"

	"github.com/snapfolio/snapfolio-backend/internal/apperr"
	"github.com/snapfolio/snapfolio-backend/internal/models"
)

type GuestbookService struct {
	guestbookRepo GuestbookStore
	reactionRepo  ReactionStore
	eventRepo     EventStore
	mediaRepo     MediaStore
	guestRepo     GuestStore
}

func NewGuestbookService(
	guestbookRepo GuestbookStore,
	reactionRepo ReactionStore,
	eventRepo EventStore,
	mediaRepo MediaStore,
	guestRepo GuestStore,
) *GuestbookService {
	return &GuestbookService{
		guestbookRepo: guestbookRepo,
		reactionRepo:  reactionRepo,
		eventRepo:     eventRepo,
		mediaRepo:     mediaRepo,
		guestRepo:     guestRepo,
	}
}

func (s *GuestbookService) AddMessage(eventID uint, guestID *uint, req *models.GuestbookMessageRequest) (*models.GuestbookEntry, error) {
	if _, err := s.eventRepo.GetByID(eventID); err != nil {
		return nil, err
	}

	entry := &models.GuestbookEntry{
		EventID:   eventID,
		GuestID:   guestID,
		GuestName: req.GuestName,
		Message:   req.Message,
	}
	if err := s.guestbookRepo.Create(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *GuestbookService) GetMessages(eventID uint) ([]models.GuestbookEntry, error) {
	if _, err := s.eventRepo.GetByID(eventID); err != nil {
		return nil, err
	}
	return s.guestbookRepo.GetByEventID(eventID)
}

// ReactToMessage defter mesajına beğeni sayacı işler
func (s *GuestbookService) ReactToMessage(entryID uint, reactionType string) (*models.GuestbookEntry, error) {
	switch reactionType {
	case "like", "love", "laugh":
	default:
		return nil, fmt.Errorf("%w: unknown reaction type %q", apperr.ErrInvalidInput, reactionType)
	}
	return s.guestbookRepo.IncrementReaction(entryID, reactionType)
}

// ReactToMedia medyaya beğeni veya yorum bırakır
func (s *GuestbookService) ReactToMedia(req *models.ReactionRequest) (*models.Reaction, error) {
	media, err := s.mediaRepo.GetByID(req.MediaID)
	if err != nil {
		return nil, err
	}
	guest, err := s.guestRepo.GetByID(req.GuestID)
	if err != nil {
		return nil, err
	}
	if guest.EventID != media.EventID {
		return nil, fmt.Errorf("%w: guest does not belong to this event", apperr.ErrInvalidInput)
	}
	if req.Type == models.ReactionComment && req.Comment == "" {
		return nil, fmt.Errorf("%w: comment text is required", apperr.ErrInvalidInput)
	}

	reaction := &models.Reaction{
		MediaID: req.MediaID,
		GuestID: req.GuestID,
		Type:    req.Type,
		Comment: req.Comment,
	}
	if err := s.reactionRepo.Create(reaction); err != nil {
		return nil, err
	}
	return reaction, nil
}

func (s *GuestbookService) GetMediaReactions(mediaID uint) ([]models.Reaction, error) {
	if _, err := s.mediaRepo.GetByID(mediaID); err != nil {
		return nil, err
	}
	return s.reactionRepo.GetByMediaID(mediaID)
}
