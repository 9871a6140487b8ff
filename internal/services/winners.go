package services

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/jmercer/awardpool/internal/catalog"
	apperrors "github.com/jmercer/awardpool/internal/errors"
	"github.com/jmercer/awardpool/internal/logger"
	"github.com/jmercer/awardpool/internal/models"
	"github.com/jmercer/awardpool/internal/repository"
	"github.com/jmercer/awardpool/internal/winnerfeed"
)

// WinnerService handles the host's winner announcements
type WinnerService struct {
	log         logger.Logger
	repo        repository.WinnerRepository
	catalog     *catalog.Catalog
	feed        *winnerfeed.Feed
	broadcaster Broadcaster
}

// NewWinnerService creates a new WinnerService
func NewWinnerService(log logger.Logger, repo repository.WinnerRepository, cat *catalog.Catalog, feed *winnerfeed.Feed, broadcaster Broadcaster) *WinnerService {
	return &WinnerService{
		log:         log,
		repo:        repo,
		catalog:     cat,
		feed:        feed,
		broadcaster: broadcaster,
	}
}

// ListAll returns every announced winner, newest first
func (s *WinnerService) ListAll(ctx context.Context) ([]models.Winner, error) {
	return s.repo.ListWinners(ctx)
}

// SetWinner records the announced winner for a category and pushes the
// change to every session and websocket client
func (s *WinnerService) SetWinner(ctx context.Context, category, nominee string) error {
	if _, ok := s.catalog.Get(category); !ok {
		return ErrUnknownCategory
	}
	if !s.catalog.HasNominee(category, nominee) {
		return ErrUnknownNominee
	}

	created, err := s.repo.UpsertWinner(ctx, category, nominee)
	if err != nil {
		return err
	}

	kind := winnerfeed.Updated
	if created {
		kind = winnerfeed.Inserted
	}
	event := winnerfeed.Event{
		Kind:        kind,
		Category:    category,
		Nominee:     nominee,
		AnnouncedAt: time.Now(),
	}
	s.publish(event)

	s.log.Info("Winner announced", "category", category, "nominee", nominee, "kind", kind)
	return nil
}

// RemoveWinner retracts a winner announcement, returning the category to
// pending. Returns repository.ErrNotFound if nothing was announced.
func (s *WinnerService) RemoveWinner(ctx context.Context, category string) error {
	if _, ok := s.catalog.Get(category); !ok {
		return ErrUnknownCategory
	}

	if err := s.repo.DeleteWinner(ctx, category); err != nil {
		if stderrors.Is(err, repository.ErrNotFound) {
			return apperrors.Wrap(err, apperrors.ErrNotFound, "no winner announced for this category")
		}
		return err
	}

	event := winnerfeed.Event{
		Kind:        winnerfeed.Deleted,
		Category:    category,
		AnnouncedAt: time.Now(),
	}
	s.publish(event)

	s.log.Info("Winner retracted", "category", category)
	return nil
}

func (s *WinnerService) publish(event winnerfeed.Event) {
	s.feed.Publish(event)
	if s.broadcaster != nil {
		s.broadcaster.Broadcast(models.WSMessage{Type: "winner", Payload: event})
	}
}

var _ WinnerServicer = (*WinnerService)(nil)
