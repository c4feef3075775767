package commander

import (
	"context"
	"encoding/json"
	"fmt"
)

//go:generate mockery --name Sender --filename sender.go

// Sender sends messages.
type Sender interface {
	Send(context.Context, []byte) error
}

// Trigger values accepted by the sync pipeline.
const (
	TriggerManual    = "manual"
	TriggerScheduled = "scheduled"
	TriggerWebhook   = "webhook"
)

// SyncCommand asks the pipeline to run one synchronization.
// Force bypasses the scheduler gate for scheduled triggers.
// SourceProductID scopes a webhook trigger to one product.
type SyncCommand struct {
	Trigger         string `json:"trigger"`
	Force           bool   `json:"force,omitempty"`
	SourceProductID string `json:"sourceProductId,omitempty"`
}

// SyncCommander sends sync commands.
type SyncCommander struct {
	sender Sender
}

// NewSyncCommander returns new SyncCommander using provided sender for sending commands.
func NewSyncCommander(sender Sender) SyncCommander {
	return SyncCommander{
		sender: sender,
	}
}

// SendManual sends a manually triggered full sync command.
func (c SyncCommander) SendManual(ctx context.Context) error {
	return c.send(ctx, SyncCommand{Trigger: TriggerManual})
}

// SendScheduled sends a scheduled full sync command, honoring the scheduler
// gate unless force is set.
func (c SyncCommander) SendScheduled(ctx context.Context, force bool) error {
	return c.send(ctx, SyncCommand{Trigger: TriggerScheduled, Force: force})
}

// SendWebhook sends a sync command scoped to a single source product.
func (c SyncCommander) SendWebhook(ctx context.Context, sourceProductID string) error {
	return c.send(ctx, SyncCommand{Trigger: TriggerWebhook, SourceProductID: sourceProductID})
}

func (c SyncCommander) send(ctx context.Context, cmd SyncCommand) error {
	cmdMsg, err := json.Marshal(cmd)
	if err != nil {
		return fmt.Errorf("can't marshal sync command: %w", err)
	}

	return c.sender.Send(ctx, cmdMsg)
}
