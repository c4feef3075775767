package models

import "time"

// Trigger is the origin of a sync run.
type Trigger string

// Known sync run triggers.
const (
	TriggerManual    Trigger = "manual"
	TriggerScheduled Trigger = "scheduled"
	TriggerWebhook   Trigger = "webhook"
)

// RunStatus is the lifecycle status of a sync run.
type RunStatus string

// Known sync run statuses. A run starts as RunRunning and moves to exactly
// one terminal status.
const (
	RunRunning RunStatus = "running"
	RunSuccess RunStatus = "success"
	RunPartial RunStatus = "partial"
	RunFailed  RunStatus = "failed"
)

// ChangeStatus is the review status of a detected product change.
type ChangeStatus string

// Known change statuses. ChangeRejected and ChangeApplied are terminal.
const (
	ChangePendingReview ChangeStatus = "pending_review"
	ChangeApproved      ChangeStatus = "approved"
	ChangeRejected      ChangeStatus = "rejected"
	ChangeApplied       ChangeStatus = "applied"
)

// ChangeType is the field family of a detected change.
type ChangeType string

// Known change types.
const (
	ChangeTypePrice     ChangeType = "price"
	ChangeTypeInventory ChangeType = "inventory"
	ChangeTypeMetadata  ChangeType = "metadata"
	ChangeTypeImage     ChangeType = "image"
	ChangeTypeVariant   ChangeType = "variant"
	ChangeTypeOther     ChangeType = "other"
)

// Severity is the review-risk classification of a detected change.
type Severity string

// Known change severities.
const (
	SeverityCritical Severity = "critical"
	SeverityStandard Severity = "standard"
	SeverityMinor    Severity = "minor"
)

// CanTransition reports whether a change may move from one status to another.
// Terminal statuses have no outgoing transitions.
func CanTransition(from, to ChangeStatus) bool {
	switch from {
	case ChangePendingReview:
		return to == ChangeApproved || to == ChangeRejected || to == ChangeApplied
	case ChangeApproved:
		return to == ChangeApplied
	default:
		return false
	}
}

// SyncRun is one synchronization run model.
type SyncRun struct {
	ID             int
	Trigger        Trigger
	Status         RunStatus
	StartedAt      time.Time
	CompletedAt    *time.Time
	ItemsSucceeded int32
	ItemsFailed    int32
	Detail         []RunDetailEntry
}

// RunDetailEntry is one structured entry of a run's detail log.
type RunDetailEntry struct {
	SourceProductID string `json:"sourceProductId,omitempty"`
	Stage           string `json:"stage"`
	Message         string `json:"message"`
}

// CategoryMapping links one source catalog category to the local taxonomy.
// LocalCategoryID stays nil until an operator assigns it.
type CategoryMapping struct {
	ID                 int
	SourceCategoryID   string
	SourceCategoryName string
	LocalCategoryID    *int32
	IsActive           bool
	CreatedAt          time.Time
}

// ProductChange is one detected field-level difference between the source
// and the local catalog, subject to review.
type ProductChange struct {
	ID               int
	LocalProductID   int
	SourceProductID  string
	FieldName        string
	ChangeType       ChangeType
	Severity         Severity
	OldValue         ChangeValue
	NewValue         ChangeValue
	OriginatingRunID int
	Status           ChangeStatus
	ReviewedBy       *string
	ReviewedAt       *time.Time
	CreatedAt        time.Time
}

// ChangeFilter narrows change listings for operator review queues.
// Zero-valued fields are ignored.
type ChangeFilter struct {
	Status         ChangeStatus
	Severity       Severity
	ChangeType     ChangeType
	LocalProductID int
}

// Product is the local storefront product model.
type Product struct {
	ID           int
	ExternalID   string
	Name         string
	Description  string
	Price        string
	Currency     string
	Availability string
	ImageURL     string
	CategoryID   *int32
	IsActive     bool
	CreatedAt    time.Time
	Variants     []ProductVariant
}

// ProductVariant is one local product variant model.
type ProductVariant struct {
	ID           int
	ProductID    int
	ExternalID   string
	Name         string
	Price        string
	Availability string
	ImageURL     string
	Color        *string
	Size         *string
}

// SourceProductResult contains a fetched source product with its validation
// error if there is any.
type SourceProductResult struct {
	Product SourceProduct
	Error   error
}

// SourceCategory is one category record of the source catalog.
type SourceCategory struct {
	ID       string
	Name     string
	ParentID *string
}

// SourceProduct is one product record of the source catalog.
type SourceProduct struct {
	ID           string
	Name         string
	Description  string
	Price        string
	Currency     string
	Availability string
	ImageURL     string
	CategoryID   string
	Variants     []SourceVariant
}

// SourceVariant is one variant record of a source catalog product.
type SourceVariant struct {
	ID           string
	Name         string
	Price        string
	Availability string
	ImageURL     string
	Color        *string
	Size         *string
}
