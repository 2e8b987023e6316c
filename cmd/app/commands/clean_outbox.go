package commands

import (
	"context"
	"fmt"
	"log/slog"

	outboxUseCase "github.com/ourshop/shop/internal/outbox/usecase"
)

type cleanOutboxOutput struct {
	Count  int64 `json:"count"`
	Days   int   `json:"days"`
	DryRun bool  `json:"dry_run"`
}

// RunCleanOutbox deletes processed outbox events older than days. With dryRun it
// only reports how many would go.
func RunCleanOutbox(
	ctx context.Context,
	useCase outboxUseCase.UseCase,
	logger *slog.Logger,
	stdio IOTuple,
	days int,
	dryRun bool,
	format string,
) error {
	if format != "text" && format != "json" {
		return fmt.Errorf("invalid format: %s (valid options: text, json)", format)
	}

	logger.Info("cleaning outbox events", slog.Int("days", days), slog.Bool("dry_run", dryRun))

	count, err := useCase.PurgeProcessed(ctx, days, dryRun)
	if err != nil {
		return fmt.Errorf("failed to clean outbox events: %w", err)
	}

	logger.Info("outbox cleanup completed",
		slog.Int64("count", count),
		slog.Int("days", days),
		slog.Bool("dry_run", dryRun),
	)

	text := fmt.Sprintf("Deleted %d processed event(s) older than %d day(s)", count, days)
	if dryRun {
		text = fmt.Sprintf("Dry-run mode: would delete %d processed event(s) older than %d day(s)", count, days)
	}
	return writeOutput(stdio.Writer, format, cleanOutboxOutput{Count: count, Days: days, DryRun: dryRun}, text)
}
