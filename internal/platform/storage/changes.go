package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/craftline/catalog-sync/internal/platform"
	"github.com/craftline/catalog-sync/internal/platform/models"
	"github.com/craftline/catalog-sync/internal/platform/storage/gen/postgres/public/table"

	pgmodels "github.com/craftline/catalog-sync/internal/platform/storage/gen/postgres/public/model"
	pg "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

// SyncDetected reconciles one product's detected changes against its pending
// change rows in a single transaction:
//   - a detected field with no pending row gets a new pending row,
//   - a detected field with a pending row updates its new value and run if the
//     source moved again (suppressed otherwise),
//   - a compared field with a pending row but no detected change means the
//     source no longer differs: the pending row is moot and gets removed.
//
// compared lists the fields the detector could actually diff. A pending row
// for a field outside that list is kept as is: its absence from detected says
// nothing about the source, only that the comparison was skipped.
// Returns numbers of created, updated and resolved changes.
func (p Postgres) SyncDetected(
	ctx context.Context,
	localProductID int,
	detected []models.ProductChange,
	compared []string,
) (created int32, updated int32, resolved int32, err error) {
	err = runInTransaction(ctx, p.db, func(tx *sql.Tx) error {
		pending, err := getPendingChanges(ctx, tx, localProductID)
		if err != nil {
			return fmt.Errorf("can't get pending changes: %w", err)
		}

		pendingByField := make(map[string]pgmodels.ProductChange, len(pending))
		for ix := range pending {
			pendingByField[pending[ix].FieldName] = pending[ix]
		}

		detectedFields := make(map[string]struct{}, len(detected))
		for ix := range detected {
			change := &detected[ix]
			detectedFields[change.FieldName] = struct{}{}

			row, exists := pendingByField[change.FieldName]
			if !exists {
				if err := insertChange(ctx, tx, change); err != nil {
					return fmt.Errorf("can't insert change: %w", err)
				}
				created++
				continue
			}

			if row.NewValue == change.NewValue.Text {
				continue
			}

			if err := updateChangeValue(ctx, tx, row.ID, change); err != nil {
				return fmt.Errorf("can't update pending change: %w", err)
			}
			updated++
		}

		comparedFields := make(map[string]struct{}, len(compared))
		for _, field := range compared {
			comparedFields[field] = struct{}{}
		}

		for field := range pendingByField {
			if _, stillDiffers := detectedFields[field]; stillDiffers {
				continue
			}
			if _, wasCompared := comparedFields[field]; !wasCompared {
				continue
			}
			if err := deleteChange(ctx, tx, pendingByField[field].ID); err != nil {
				return fmt.Errorf("can't remove moot change: %w", err)
			}
			resolved++
		}

		return nil
	})
	if err != nil {
		return 0, 0, 0, err
	}

	return created, updated, resolved, nil
}

// GetChange returns one change by ID or ErrNotFound.
func (p Postgres) GetChange(ctx context.Context, id int) (*models.ProductChange, error) {
	var change pgmodels.ProductChange
	err := table.ProductChange.SELECT(table.ProductChange.AllColumns).
		WHERE(table.ProductChange.ID.EQ(pg.Int32(int32(id)))).
		QueryContext(ctx, p.db, &change)

	if errors.Is(err, qrm.ErrNoRows) {
		return nil, platform.ErrNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("can't get change: %w", err)
	}

	return toAppChange(&change), nil
}

// ListChanges returns changes matching the filter, newest first.
func (p Postgres) ListChanges(ctx context.Context, filter models.ChangeFilter) ([]models.ProductChange, error) {
	conditions := []pg.BoolExpression{table.ProductChange.ID.IS_NOT_NULL()}
	if filter.Status != "" {
		conditions = append(conditions, table.ProductChange.Status.EQ(pg.String(string(filter.Status))))
	}
	if filter.Severity != "" {
		conditions = append(conditions, table.ProductChange.Severity.EQ(pg.String(string(filter.Severity))))
	}
	if filter.ChangeType != "" {
		conditions = append(conditions, table.ProductChange.ChangeType.EQ(pg.String(string(filter.ChangeType))))
	}
	if filter.LocalProductID != 0 {
		conditions = append(conditions, table.ProductChange.LocalProductID.EQ(pg.Int32(int32(filter.LocalProductID))))
	}

	var changes []pgmodels.ProductChange
	err := table.ProductChange.SELECT(table.ProductChange.AllColumns).
		WHERE(pg.AND(conditions...)).
		ORDER_BY(table.ProductChange.CreatedAt.DESC()).
		QueryContext(ctx, p.db, &changes)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("can't list changes: %w", err)
	}

	result := make([]models.ProductChange, 0, len(changes))
	for ix := range changes {
		result = append(result, *toAppChange(&changes[ix]))
	}

	return result, nil
}

// TransitionChange moves one change from an expected status to the next one.
// The write is a single conditional update, so of two concurrent reviewers
// exactly one wins; the loser gets ErrInvalidTransition.
func (p Postgres) TransitionChange(
	ctx context.Context,
	id int,
	from, to models.ChangeStatus,
	actor string,
) (*models.ProductChange, error) {
	var change *models.ProductChange

	err := runInTransaction(ctx, p.db, func(tx *sql.Tx) error {
		transitioned, err := transitionChange(ctx, tx, id, from, to, actor)
		if err != nil {
			return err
		}
		change = transitioned
		return nil
	})
	if err != nil {
		return nil, err
	}

	return change, nil
}

// ApplyChange atomically applies one pending change: the status moves to
// applied and the new value is written into the target local field in the
// same transaction. If the field write fails nothing is committed.
func (p Postgres) ApplyChange(ctx context.Context, id int, actor string) (*models.ProductChange, error) {
	var change *models.ProductChange

	err := runInTransaction(ctx, p.db, func(tx *sql.Tx) error {
		applied, err := transitionChange(ctx, tx, id, models.ChangePendingReview, models.ChangeApplied, actor)
		if err != nil {
			return err
		}

		if err := applyField(ctx, tx, applied); err != nil {
			return fmt.Errorf("can't write %q to product %d: %w", applied.FieldName, applied.LocalProductID, err)
		}

		change = applied
		return nil
	})
	if err != nil {
		return nil, err
	}

	return change, nil
}

func transitionChange(
	ctx context.Context,
	tx *sql.Tx,
	id int,
	from, to models.ChangeStatus,
	actor string,
) (*models.ProductChange, error) {
	if !models.CanTransition(from, to) {
		return nil, platform.ErrInvalidTransition
	}

	now := time.Now().UTC()

	var updated pgmodels.ProductChange
	err := table.ProductChange.UPDATE().
		SET(
			table.ProductChange.Status.SET(pg.String(string(to))),
			table.ProductChange.ReviewedBy.SET(pg.String(actor)),
			table.ProductChange.ReviewedAt.SET(pg.TimestampzT(now)),
		).
		WHERE(pg.AND(
			table.ProductChange.ID.EQ(pg.Int32(int32(id))),
			table.ProductChange.Status.EQ(pg.String(string(from))),
		)).
		RETURNING(table.ProductChange.AllColumns).
		QueryContext(ctx, tx, &updated)

	if errors.Is(err, qrm.ErrNoRows) {
		// Either the change is gone or another actor already moved it.
		var current pgmodels.ProductChange
		err := table.ProductChange.SELECT(table.ProductChange.Status).
			WHERE(table.ProductChange.ID.EQ(pg.Int32(int32(id)))).
			QueryContext(ctx, tx, &current)
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, platform.ErrNotFound
		}
		if err != nil {
			return nil, fmt.Errorf("can't get change status: %w", err)
		}
		return nil, platform.ErrInvalidTransition
	}

	if err != nil {
		return nil, fmt.Errorf("can't transition change: %w", err)
	}

	return toAppChange(&updated), nil
}

func getPendingChanges(ctx context.Context, tx *sql.Tx, localProductID int) ([]pgmodels.ProductChange, error) {
	var pending []pgmodels.ProductChange
	err := table.ProductChange.SELECT(table.ProductChange.AllColumns).
		WHERE(pg.AND(
			table.ProductChange.LocalProductID.EQ(pg.Int32(int32(localProductID))),
			table.ProductChange.Status.EQ(pg.String(string(models.ChangePendingReview))),
		)).
		QueryContext(ctx, tx, &pending)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, err
	}

	return pending, nil
}

func insertChange(ctx context.Context, tx *sql.Tx, change *models.ProductChange) error {
	columnList := table.ProductChange.AllColumns.Except(
		table.ProductChange.ID,
		table.ProductChange.ReviewedBy,
		table.ProductChange.ReviewedAt,
		table.ProductChange.CreatedAt,
	)

	dbChange := toDBChange(change)
	dbChange.Status = string(models.ChangePendingReview)

	_, err := table.ProductChange.INSERT(columnList).
		MODEL(dbChange).
		ExecContext(ctx, tx)

	return err
}

func updateChangeValue(ctx context.Context, tx *sql.Tx, id int32, change *models.ProductChange) error {
	_, err := table.ProductChange.UPDATE().
		SET(
			table.ProductChange.NewValue.SET(pg.String(change.NewValue.Text)),
			table.ProductChange.OriginatingRunID.SET(pg.Int32(int32(change.OriginatingRunID))),
		).
		WHERE(table.ProductChange.ID.EQ(pg.Int32(id))).
		ExecContext(ctx, tx)

	return err
}

func deleteChange(ctx context.Context, tx *sql.Tx, id int32) error {
	_, err := table.ProductChange.DELETE().
		WHERE(table.ProductChange.ID.EQ(pg.Int32(id))).
		ExecContext(ctx, tx)

	return err
}
