package batch

import (
	"context"
	"time"

	"github.com/driftlab/wakewise/internal/service"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// recomputeTimeout bounds one full batch pass.
const recomputeTimeout = 10 * time.Minute

// RecomputeJob periodically refreshes the smart schedules of alarms that
// opted into adaptive scheduling.
type RecomputeJob struct {
	schedules service.ScheduleService
	log       zerolog.Logger
	cron      *cron.Cron
}

func NewRecomputeJob(schedules service.ScheduleService, log zerolog.Logger) *RecomputeJob {
	return &RecomputeJob{
		schedules: schedules,
		log:       log,
		cron:      cron.New(),
	}
}

// Start registers the job on the given cron spec and starts the scheduler.
func (j *RecomputeJob) Start(spec string) error {
	_, err := j.cron.AddFunc(spec, j.run)
	if err != nil {
		return err
	}
	j.cron.Start()
	j.log.Info().Str("cron", spec).Msg("adaptive recompute job scheduled")
	return nil
}

// Stop stops the scheduler, waiting for a running pass to finish.
func (j *RecomputeJob) Stop() {
	ctx := j.cron.Stop()
	<-ctx.Done()
}

func (j *RecomputeJob) run() {
	ctx, cancel := context.WithTimeout(context.Background(), recomputeTimeout)
	defer cancel()

	start := time.Now()
	updated, err := j.schedules.RecomputeAll(ctx)
	if err != nil {
		j.log.Error().Err(err).Msg("adaptive recompute pass failed")
		return
	}
	j.log.Info().
		Int("updated", updated).
		Dur("duration", time.Since(start)).
		Msg("adaptive recompute pass finished")
}
