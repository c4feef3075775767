package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/craftline/catalog-sync/internal/platform"
	"github.com/craftline/catalog-sync/internal/platform/models"
	"github.com/craftline/catalog-sync/internal/platform/storage/gen/postgres/public/table"
	"github.com/lib/pq"

	pgmodels "github.com/craftline/catalog-sync/internal/platform/storage/gen/postgres/public/model"
	pg "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

// Postgres is storage for sync runs, product changes, category mappings and
// the local product catalog.
type Postgres struct {
	db *sql.DB
}

// NewPostgres returns new Postgres.
func NewPostgres(db *sql.DB) Postgres {
	return Postgres{
		db: db,
	}
}

// StartRun claims a new running sync run and returns it.
// The claim is a single insert guarded by a partial unique index over running
// runs, so two concurrent starts can never both succeed; the loser gets
// ErrAlreadyRunning.
func (p Postgres) StartRun(ctx context.Context, trigger models.Trigger) (*models.SyncRun, error) {
	newRun := pgmodels.SyncRun{
		Trigger: string(trigger),
		Status:  string(models.RunRunning),
		Detail:  "[]",
	}

	err := table.SyncRun.INSERT(
		table.SyncRun.Trigger,
		table.SyncRun.Status,
		table.SyncRun.Detail,
	).
		MODEL(newRun).
		RETURNING(table.SyncRun.AllColumns).
		QueryContext(ctx, p.db, &newRun)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, platform.ErrAlreadyRunning
		}
		return nil, fmt.Errorf("can't insert run into database: %w", err)
	}

	return toAppRun(&newRun)
}

// FinishRun moves a running run to its terminal status and writes the final
// counts and detail. Terminal runs are never mutated again: the update is
// conditional on the run still being in running status.
func (p Postgres) FinishRun(ctx context.Context, run *models.SyncRun) error {
	dbRun, err := toDBRun(run)
	if err != nil {
		return err
	}

	result, err := table.SyncRun.UPDATE(
		table.SyncRun.Status,
		table.SyncRun.CompletedAt,
		table.SyncRun.ItemsSucceeded,
		table.SyncRun.ItemsFailed,
		table.SyncRun.Detail,
	).
		MODEL(dbRun).
		WHERE(pg.AND(
			table.SyncRun.ID.EQ(pg.Int32(int32(run.ID))),
			table.SyncRun.Status.EQ(pg.String(string(models.RunRunning))),
		)).
		ExecContext(ctx, p.db)
	if err != nil {
		return fmt.Errorf("can't update run: %w", err)
	}

	if rowsAffected, err := result.RowsAffected(); rowsAffected == 0 || err != nil {
		return fmt.Errorf("can't update run: run %d is not running", run.ID)
	}

	return nil
}

// LastCompletedRun returns the most recently completed run.
// It returns ErrNotFound if no run has ever completed.
func (p Postgres) LastCompletedRun(ctx context.Context) (*models.SyncRun, error) {
	var run pgmodels.SyncRun
	err := table.SyncRun.SELECT(table.SyncRun.AllColumns).
		WHERE(table.SyncRun.CompletedAt.IS_NOT_NULL()).
		ORDER_BY(table.SyncRun.CompletedAt.DESC()).
		LIMIT(1).
		QueryContext(ctx, p.db, &run)

	if errors.Is(err, qrm.ErrNoRows) {
		return nil, platform.ErrNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("can't get last completed run: %w", err)
	}

	return toAppRun(&run)
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

func runInTransaction(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	var (
		tx  *sql.Tx
		err error
	)

	if tx, err = db.BeginTx(ctx, nil); err != nil {
		return fmt.Errorf("can't begin transaction: %w", err)
	}

	if err = fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("can't rollback transaction: %w (rollback reason: %w)", rbErr, err)
		}
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("can't commit transaction: %w", err)
	}

	return nil
}
