package jobs

import (
	"context"
	"log/slog"

	"stockrequest/internal/core/application/usecases/commands"
	"stockrequest/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// CompletionCheckJob manages the scheduled completion sweep over open
// orders. Runs every minute, probing each open order and marking it Done
// once every request line is fulfilled.
type CompletionCheckJob struct {
	uncompletedOrders queries.GetUncompletedOrdersQueryHandler
	checkCompletion   commands.CheckOrderCompletionCommandHandler
	cron              *cron.Cron
	logger            *slog.Logger
}

// NewCompletionCheckJob creates a new job for the completion sweep.
// Uses the uncompleted-orders query to find candidates and the completion
// probe command to transition them.
func NewCompletionCheckJob(
	uncompletedOrders queries.GetUncompletedOrdersQueryHandler,
	checkCompletion commands.CheckOrderCompletionCommandHandler,
	logger *slog.Logger,
) *CompletionCheckJob {
	return &CompletionCheckJob{
		uncompletedOrders: uncompletedOrders,
		checkCompletion:   checkCompletion,
		cron:              cron.New(),
		logger:            logger.With("component", "completion_check_job"),
	}
}

// Start begins the completion sweep to run every minute.
func (j *CompletionCheckJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		j.sweep(ctx)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Completion check job started (running every minute)")
	return nil
}

// Stop stops the completion sweep.
func (j *CompletionCheckJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Completion check job stopped")
}

// sweep probes every open order once. Draft orders also come back from the
// query but have nothing to probe. Failures on one order do not stop the
// sweep over the rest.
func (j *CompletionCheckJob) sweep(ctx context.Context) {
	orders, err := j.uncompletedOrders.Handle(ctx, queries.NewGetUncompletedOrdersQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Completion sweep failed to list orders", "error", err)
		return
	}

	for _, candidate := range orders {
		if candidate.Status != "Open" {
			continue
		}

		cmd, cmdErr := commands.NewCheckOrderCompletionCommand(candidate.ID)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Completion sweep failed to build command",
				"order_id", candidate.ID.String(), "error", cmdErr)
			continue
		}

		if handleErr := j.checkCompletion.Handle(ctx, cmd); handleErr != nil {
			j.logger.ErrorContext(ctx, "Completion probe failed",
				"order_id", candidate.ID.String(), "error", handleErr)
		}
	}
}
