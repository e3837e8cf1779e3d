package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/admin/tg-bots/post-bot/internal/ports/jobs"
)

// Scheduler управляет запуском периодических джоб
type Scheduler struct {
	jobs []jobs.Job
	log  *slog.Logger
}

// NewScheduler создаёт новый планировщик джоб
func NewScheduler(log *slog.Logger) *Scheduler {
	return &Scheduler{
		jobs: make([]jobs.Job, 0),
		log:  log,
	}
}

// Register регистрирует джобу в планировщике
func (s *Scheduler) Register(job jobs.Job) {
	s.jobs = append(s.jobs, job)
	s.log.Debug("job registered", "job_name", job.Name(), "total_jobs", len(s.jobs))
}

// Start запускает планировщик и все зарегистрированные джобы
func (s *Scheduler) Start(ctx context.Context) error {
	if len(s.jobs) == 0 {
		s.log.Error("no jobs registered, scheduler not started")
		return nil
	}

	s.log.Info("starting job scheduler", "jobs_count", len(s.jobs))

	for _, job := range s.jobs {
		job := job
		jobName := job.Name()
		go func() {
			s.runJob(ctx, job, jobName)
		}()
	}

	return nil
}

// runJob запускает отдельную джобу в цикле.
// Ошибки выполнения логируются и не ретраятся: следующая попытка
// произойдёт на очередном тике по NextRun.
func (s *Scheduler) runJob(ctx context.Context, job jobs.Job, jobName string) {
	for {
		now := time.Now()
		nextRun := job.NextRun(now)

		duration := nextRun.Sub(now)

		select {
		case <-ctx.Done():
			s.log.Info("job stopped by context", "job_name", jobName)
			return
		case <-time.After(duration):
			if err := job.Run(ctx); err != nil {
				s.log.Error("job execution failed",
					"job_name", jobName,
					"error", err,
				)
			} else {
				s.log.Info("job executed successfully", "job_name", jobName)
			}
		}
	}
}
