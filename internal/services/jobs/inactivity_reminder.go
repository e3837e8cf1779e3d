package jobs

import (
	"context"
	"log/slog"
	"time"

	postUsecase "github.com/admin/tg-bots/post-bot/internal/usecases/post"
)

const inactivityReminderName = "inactivity-reminder"

// InactivityReminder джоба для напоминаний неактивным пользователям,
// запускается через фиксированный интервал от текущего момента
type InactivityReminder struct {
	postService *postUsecase.Service
	interval    time.Duration
	log         *slog.Logger
}

// NewInactivityReminder создаёт новую джобу напоминаний
func NewInactivityReminder(
	postService *postUsecase.Service,
	interval time.Duration,
	log *slog.Logger,
) *InactivityReminder {
	return &InactivityReminder{
		postService: postService,
		interval:    interval,
		log:         log,
	}
}

func (j *InactivityReminder) Name() string {
	return inactivityReminderName
}

// NextRun фиксированный интервал от текущего момента, без привязки
// к календарному расписанию
func (j *InactivityReminder) NextRun(now time.Time) time.Time {
	return now.Add(j.interval)
}

func (j *InactivityReminder) Run(ctx context.Context) error {
	return j.postService.SendInactivityReminders(ctx)
}
