package usecase

import (
	"context"
	"fmt"
	"time"

	"movie-catalog/internal/data/repository"

	"go.uber.org/zap"
)

// NotifyService drives the release-day email job. Run is safe to call from
// the schedule and from a manual trigger; it never returns an error, so a
// failed run can never take the schedule down with it.
type NotifyService interface {
	Run(ctx context.Context)
}

type notifyService struct {
	repo   *repository.Repository
	mailer Mailer
	log    *zap.Logger
	now    func() time.Time
}

func NewNotifyService(repo *repository.Repository, mailer Mailer, log *zap.Logger) NotifyService {
	return &notifyService{
		repo:   repo,
		mailer: mailer,
		log:    log.With(zap.String("service", "notify")),
		now:    time.Now,
	}
}

func (s *notifyService) Run(ctx context.Context) {
	start, end := utcDayWindow(s.now())

	notices, err := s.repo.Movie.FindReleasedBetween(ctx, start, end)
	if err != nil {
		s.log.Error("Release notification run failed", zap.Error(err))
		return
	}

	sent := 0
	for _, notice := range notices {
		if notice.OwnerEmail == "" {
			continue
		}

		subject := fmt.Sprintf("Releasing today: %s", notice.Title)
		html := fmt.Sprintf("<p>Today is the day! <strong>%s</strong> premieres.</p>", notice.Title)

		// A single failed dispatch must not abort the remaining records.
		if err := s.mailer.Send(notice.OwnerEmail, subject, html); err != nil {
			s.log.Error("Failed to send release notification",
				zap.Error(err),
				zap.String("movie_id", notice.MovieID.String()),
			)
			continue
		}
		sent++
	}

	s.log.Info("Release notifications processed",
		zap.Int("matched", len(notices)),
		zap.Int("sent", sent),
	)
}

// utcDayWindow returns [00:00:00.000, 23:59:59.999] UTC for now's date.
func utcDayWindow(now time.Time) (time.Time, time.Time) {
	now = now.UTC()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 999_000_000, time.UTC)
	return start, end
}
