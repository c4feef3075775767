package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/craftline/catalog-sync/internal/platform"
	"github.com/craftline/catalog-sync/internal/platform/models"
	"github.com/craftline/catalog-sync/internal/platform/rabbitmq"
	"github.com/craftline/catalog-sync/pkg/v1/commander"
	"github.com/rs/zerolog"
)

// Syncer executes synchronization runs.
type Syncer interface {
	Sync(ctx context.Context, trigger models.Trigger) (*models.SyncRun, error)
	SyncProduct(ctx context.Context, sourceID string) (*models.SyncRun, error)
}

// Gate decides whether a scheduled run should proceed.
type Gate interface {
	ShouldRun(ctx context.Context, now time.Time, minInterval time.Duration, force bool) (bool, error)
}

// RMQHandler handles RMQ sync commands.
type RMQHandler struct {
	rmq         *rabbitmq.RabbitMQ
	syncer      Syncer
	gate        Gate
	minInterval time.Duration
	logger      *zerolog.Logger
}

// NewHandler returns new RMQHandler.
func NewHandler(
	rmq *rabbitmq.RabbitMQ,
	syncer Syncer,
	gate Gate,
	minInterval time.Duration,
	logger *zerolog.Logger,
) *RMQHandler {
	return &RMQHandler{
		rmq:         rmq,
		syncer:      syncer,
		gate:        gate,
		minInterval: minInterval,
		logger:      logger,
	}
}

// Start starts consuming and handling sync commands from RMQ.
func (h *RMQHandler) Start(ctx context.Context, queue string) error {
	errorsChan, err := h.rmq.Consume(ctx, queue, h.handleMessage)
	if err != nil {
		return err
	}

	go func() {
		for err := range errorsChan {
			h.logger.Error().
				Err(err).
				Msg("can't handle message")
		}
	}()

	return nil
}

func (h *RMQHandler) handleMessage(ctx context.Context, message []byte) error {
	cmd, err := decodeMessage(message)
	if err != nil {
		return err
	}

	run, err := h.runCommand(ctx, cmd)
	if errors.Is(err, platform.ErrAlreadyRunning) {
		// another run holds the claim; this trigger is dropped, not retried
		h.logger.Warn().
			Str("trigger", cmd.Trigger).
			Msg("sync skipped, another run is in progress")
		return nil
	}
	if err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}

	if run == nil {
		return nil
	}

	h.logger.Info().
		Str("trigger", string(run.Trigger)).
		Str("status", string(run.Status)).
		Int32("itemsSucceeded", run.ItemsSucceeded).
		Int32("itemsFailed", run.ItemsFailed).
		Msg("sync finished")

	return nil
}

// runCommand routes one command to the right run shape. A nil run with nil
// error means the command was skipped by the scheduler gate.
func (h *RMQHandler) runCommand(ctx context.Context, cmd *commander.SyncCommand) (*models.SyncRun, error) {
	switch cmd.Trigger {
	case commander.TriggerManual:
		return h.syncer.Sync(ctx, models.TriggerManual)

	case commander.TriggerScheduled:
		shouldRun, err := h.gate.ShouldRun(ctx, time.Now().UTC(), h.minInterval, cmd.Force)
		if err != nil {
			return nil, fmt.Errorf("can't check scheduler gate: %w", err)
		}
		if !shouldRun {
			h.logger.Debug().Msg("scheduled sync skipped, last run is too recent")
			return nil, nil
		}
		return h.syncer.Sync(ctx, models.TriggerScheduled)

	case commander.TriggerWebhook:
		if cmd.SourceProductID == "" {
			return nil, fmt.Errorf("webhook command has no source product id")
		}
		return h.syncer.SyncProduct(ctx, cmd.SourceProductID)

	default:
		return nil, fmt.Errorf("unknown trigger %q", cmd.Trigger)
	}
}

func decodeMessage(msg []byte) (*commander.SyncCommand, error) {
	var cmd commander.SyncCommand
	err := json.Unmarshal(msg, &cmd)
	if err != nil {
		return nil, fmt.Errorf("can't decode sync command: %w", err)
	}

	return &cmd, nil
}
