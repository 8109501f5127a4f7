package impl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"time"

	"beacon/config"
	"beacon/internal/domain/constants"
	"beacon/internal/domain/entity"
	"beacon/internal/domain/repository"
	"beacon/internal/domain/service"
	"beacon/internal/usecase"

	"github.com/google/uuid"
)

type sweepService struct {
	eventRepo        repository.EventRepository
	categoryRepo     repository.CategoryRepository
	notificationRepo repository.NotificationRepository
	matcher          usecase.MatcherUsecase
	publisher        service.EventPublisher
	config           *config.Config
	logger           *slog.Logger
	now              func() time.Time
}

// NewSweepService creates a new sweep service instance
func NewSweepService(
	eventRepo repository.EventRepository,
	categoryRepo repository.CategoryRepository,
	notificationRepo repository.NotificationRepository,
	matcher usecase.MatcherUsecase,
	publisher service.EventPublisher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.SweepUsecase {
	return &sweepService{
		eventRepo:        eventRepo,
		categoryRepo:     categoryRepo,
		notificationRepo: notificationRepo,
		matcher:          matcher,
		publisher:        publisher,
		config:           cfg,
		logger:           logger,
		now:              time.Now,
	}
}

// RunSweep executes one reminder pass over the lookahead window.
func (s *sweepService) RunSweep(ctx context.Context) (*usecase.SweepResult, error) {
	sweepID := uuid.New().String()
	now := s.now().UTC()
	until := now.Add(s.config.Notification.LookaheadWindow)

	events, err := s.eventRepo.FindEventsStartingBetween(ctx, now, until)
	if err != nil {
		return nil, fmt.Errorf("failed to scan upcoming events: %w", err)
	}

	s.logger.Info("Reminder sweep started",
		slog.String("sweep_id", sweepID),
		slog.Time("window_from", now),
		slog.Time("window_until", until),
		slog.Int("events", len(events)),
	)

	result := &usecase.SweepResult{EventsScanned: len(events)}
	categories := make(map[uuid.UUID]*entity.Category)

	for _, event := range events {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		matches, err := s.matcher.FindInterestedUsers(ctx, event)
		if err != nil {
			// One broken event must not sink the whole pass.
			s.logger.Error("Matching failed for event, skipping",
				slog.String("sweep_id", sweepID),
				slog.String("event_id", event.ID.String()),
				slog.String("error", err.Error()),
			)

			continue
		}
		result.UsersMatched += len(matches)

		category, err := s.lookupCategory(ctx, categories, event.CategoryID)
		if err != nil {
			s.logger.Error("Category lookup failed for event, skipping",
				slog.String("sweep_id", sweepID),
				slog.String("event_id", event.ID.String()),
				slog.String("error", err.Error()),
			)

			continue
		}

		for _, match := range matches {
			s.remindUser(ctx, sweepID, event, category, match, result)
		}
	}

	s.logger.Info("Reminder sweep finished",
		slog.String("sweep_id", sweepID),
		slog.Int("events_scanned", result.EventsScanned),
		slog.Int("users_matched", result.UsersMatched),
		slog.Int("notifications_sent", result.NotificationsSent),
		slog.Int("duplicates_skipped", result.DuplicatesSkipped),
		slog.Int("publish_failures", result.PublishFailures),
	)

	return result, nil
}

// remindUser persists the notification record and, only when this sweep was
// the one that inserted it, publishes the reminder. Publish failures are
// logged and counted but never retried here: the record is already durable
// and a later delivery mechanism can pick it up.
func (s *sweepService) remindUser(ctx context.Context, sweepID string, event *entity.Event, category *entity.Category, match *usecase.MatchedUser, result *usecase.SweepResult) {
	message := &service.ReminderMessage{
		RequestID:    sweepID,
		EventID:      event.ID.String(),
		UserID:       match.User.ID.String(),
		Title:        event.Title,
		StartTime:    event.StartTime,
		CategoryName: category.NameFor(match.User.PreferredLanguage),
		DistanceKm:   math.Round(match.DistanceKm*10) / 10,
	}

	payload, err := json.Marshal(message)
	if err != nil {
		s.logger.Error("Failed to encode reminder payload",
			slog.String("sweep_id", sweepID),
			slog.String("event_id", message.EventID),
			slog.String("user_id", message.UserID),
			slog.String("error", err.Error()),
		)

		return
	}

	record := &entity.NotificationRecord{
		UserID:  match.User.ID,
		EventID: event.ID,
		Type:    constants.NotificationTypeEventReminder,
		Payload: payload,
		SentAt:  s.now().UTC(),
	}

	inserted, err := s.notificationRepo.InsertNotificationIfAbsent(ctx, record)
	if err != nil {
		s.logger.Error("Failed to persist notification record",
			slog.String("sweep_id", sweepID),
			slog.String("event_id", message.EventID),
			slog.String("user_id", message.UserID),
			slog.String("error", err.Error()),
		)

		return
	}
	if !inserted {
		result.DuplicatesSkipped++

		return
	}

	message.NotificationID = record.ID.String()

	publishCtx, cancel := context.WithTimeout(ctx, s.config.Notification.PublishTimeout)
	defer cancel()

	if err := s.publisher.PublishReminder(publishCtx, message); err != nil {
		result.PublishFailures++
		s.logger.Error("Failed to publish reminder, record kept",
			slog.String("sweep_id", sweepID),
			slog.String("notification_id", message.NotificationID),
			slog.String("user_id", message.UserID),
			slog.String("error", err.Error()),
		)
	}

	result.NotificationsSent++
}

func (s *sweepService) lookupCategory(ctx context.Context, cache map[uuid.UUID]*entity.Category, categoryID uuid.UUID) (*entity.Category, error) {
	if category, ok := cache[categoryID]; ok {
		return category, nil
	}

	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	cache[categoryID] = category

	return category, nil
}
