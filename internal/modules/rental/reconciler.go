package rental

// Background goroutine that periodically re-attempts equipment status flips
// that failed in-request. Flips carry an absolute target status, so retrying
// one that already landed is harmless.

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

const reconcileBatchSize = 10

type Reconciler struct {
	tasks  SyncTaskRepositoryInterface
	setter InternalStatusSetter
}

func NewReconciler(tasks SyncTaskRepositoryInterface, setter InternalStatusSetter) *Reconciler {
	return &Reconciler{tasks: tasks, setter: setter}
}

// Start launches the sweep loop. It respects the context for graceful
// shutdown.
func (r *Reconciler) Start(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		log.Info().Dur("interval", interval).Msg("reconciler: started")

		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("reconciler: shutting down")
				return
			case <-ticker.C:
				r.processPending(ctx)
			}
		}
	}()
}

func (r *Reconciler) processPending(ctx context.Context) {
	tasks, err := r.tasks.ListPending(ctx, reconcileBatchSize)
	if err != nil {
		log.Error().Err(err).Msg("reconciler: failed to query pending tasks")
		return
	}
	if len(tasks) == 0 {
		return
	}

	log.Info().Int("count", len(tasks)).Msg("reconciler: processing pending status flips")

	for _, task := range tasks {
		if err := r.setter.SetStatusInternal(ctx, task.EquipmentID, string(task.TargetStatus)); err != nil {
			log.Warn().
				Err(err).
				Int64("task_id", task.ID).
				Int64("equipment_id", task.EquipmentID).
				Int("attempts", task.Attempts+1).
				Msg("reconciler: flip failed, will retry next tick")
			if markErr := r.tasks.MarkFailed(ctx, task.ID, err.Error()); markErr != nil {
				log.Error().Err(markErr).Int64("task_id", task.ID).Msg("reconciler: failed to record attempt")
			}
			continue
		}

		if err := r.tasks.MarkDone(ctx, task.ID); err != nil {
			log.Error().Err(err).Int64("task_id", task.ID).Msg("reconciler: failed to mark task done")
			continue
		}

		log.Info().
			Int64("equipment_id", task.EquipmentID).
			Str("target_status", string(task.TargetStatus)).
			Msg("reconciler: equipment status repaired")
	}
}
