package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/snapfolio/snapfolio-backend/internal/models"
	"github.com/snapfolio/snapfolio-backend/internal/realtime"
	"go.uber.org/zap"
)

const fanoutTimeout = 10 * time.Second

// NotificationService yükleme sonrası fanout: websocket yayını,
// canlı akış cache'i ve host'a email. Hepsi best-effort, hata
// yalnızca loglanır ve yüklemeyi asla geri döndürmez.
type NotificationService struct {
	publisher   Publisher
	userRepo    UserStore
	mailer      Mailer
	redisClient *redis.Client
	frontendURL string
	logger      *zap.Logger
}

func NewNotificationService(
	publisher Publisher,
	userRepo UserStore,
	mailer Mailer,
	redisClient *redis.Client,
	frontendURL string,
	logger *zap.Logger,
) *NotificationService {
	return &NotificationService{
		publisher:   publisher,
		userRepo:    userRepo,
		mailer:      mailer,
		redisClient: redisClient,
		frontendURL: frontendURL,
		logger:      logger,
	}
}

func (s *NotificationService) MediaUploaded(event *models.Event, media *models.Media) {
	resp := models.NewMediaResponse(media)

	s.publisher.Publish(event.ID, realtime.MsgNewMedia, resp)

	s.pushLiveFeed(event.ID, resp)

	s.emailHost(event, media)
}

func (s *NotificationService) pushLiveFeed(eventID uint, resp models.MediaResponse) {
	if s.redisClient == nil {
		return
	}
	// İleri tarihe planlanmış medya görünene kadar akış cache'ine girmez
	if resp.VisibleAt.After(time.Now()) {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), fanoutTimeout)
	defer cancel()

	payload, err := json.Marshal(resp)
	if err != nil {
		s.logger.Warn("failed to marshal live feed entry", zap.Error(err))
		return
	}

	key := liveFeedKey(eventID)
	pipe := s.redisClient.Pipeline()
	pipe.LPush(ctx, key, payload)
	pipe.LTrim(ctx, key, 0, liveFeedLimit-1)
	if _, err := pipe.Exec(ctx); err != nil {
		s.logger.Warn("failed to update live feed cache",
			zap.Uint("event_id", eventID),
			zap.Error(err))
	}
}

func (s *NotificationService) emailHost(event *models.Event, media *models.Media) {
	host, err := s.userRepo.GetByID(event.HostID)
	if err != nil {
		s.logger.Warn("failed to look up host for notification",
			zap.Uint("event_id", event.ID),
			zap.Error(err))
		return
	}

	mediaURL := fmt.Sprintf("%s/events/%d/media/%d", s.frontendURL, event.ID, media.ID)
	if err := s.mailer.SendNewMediaEmail(host.Email, event.Name, string(media.Type), mediaURL); err != nil {
		s.logger.Warn("failed to send new media email",
			zap.Uint("event_id", event.ID),
			zap.String("host_email", host.Email),
			zap.Error(err))
	}
}
