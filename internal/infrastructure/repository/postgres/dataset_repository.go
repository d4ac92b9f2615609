package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/riskibarqy/football-explorer/internal/domain/football"
	qb "github.com/riskibarqy/football-explorer/internal/platform/querybuilder"
	"github.com/sourcegraph/conc/pool"
)

// DatasetRepository stores the two raw tables in Postgres.
type DatasetRepository struct {
	db *sqlx.DB
}

func NewDatasetRepository(db *sqlx.DB) *DatasetRepository {
	return &DatasetRepository{db: db}
}

// Load reads both tables concurrently, each in file order.
func (r *DatasetRepository) Load(ctx context.Context) (football.Dataset, error) {
	var (
		matchRows []matchTableModel
		goalRows  []goalEventTableModel
	)

	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		return r.selectAll(ctx, matchesTable, matchTableModel{}, &matchRows)
	})
	p.Go(func(ctx context.Context) error {
		return r.selectAll(ctx, goalEventsTable, goalEventTableModel{}, &goalRows)
	})
	if err := p.Wait(); err != nil {
		return football.Dataset{}, err
	}

	ds := football.Dataset{
		Matches: make([]football.Match, 0, len(matchRows)),
		Goals:   make([]football.GoalEvent, 0, len(goalRows)),
	}
	for _, row := range matchRows {
		ds.Matches = append(ds.Matches, row.toDomain())
	}
	for _, row := range goalRows {
		ds.Goals = append(ds.Goals, row.toDomain())
	}

	return ds, nil
}

func (r *DatasetRepository) selectAll(ctx context.Context, table string, model any, dest any) error {
	cols, err := qb.Columns(model)
	if err != nil {
		return fmt.Errorf("resolve %s columns: %w", table, err)
	}
	query, args, err := qb.Select(cols...).From(table).OrderBy("row_no").ToSQL()
	if err != nil {
		return fmt.Errorf("build select %s query: %w", table, err)
	}

	if err := r.db.SelectContext(ctx, dest, query, args...); err != nil {
		if isUndefinedTable(err) {
			return fmt.Errorf("select %s: table missing, run migrations first: %w", table, err)
		}
		return fmt.Errorf("select %s: %w", table, err)
	}
	return nil
}

// Replace swaps the stored dataset for ds in a single transaction.
func (r *DatasetRepository) Replace(ctx context.Context, ds football.Dataset) error {
	matchRows := make([]any, 0, len(ds.Matches))
	for i, m := range ds.Matches {
		row, err := newMatchTableModel(int64(i+1), m)
		if err != nil {
			return fmt.Errorf("match row %d: %w", i+1, err)
		}
		matchRows = append(matchRows, row)
	}
	goalRows := make([]any, 0, len(ds.Goals))
	for i, g := range ds.Goals {
		row, err := newGoalEventTableModel(int64(i+1), g)
		if err != nil {
			return fmt.Errorf("goal row %d: %w", i+1, err)
		}
		goalRows = append(goalRows, row)
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx replace dataset: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	truncateQuery, err := qb.Truncate(goalEventsTable, matchesTable)
	if err != nil {
		return fmt.Errorf("build truncate dataset query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, truncateQuery); err != nil {
		return fmt.Errorf("truncate dataset: %w", err)
	}

	if err := copyRows(ctx, tx, matchesTable, matchTableModel{}, matchRows); err != nil {
		return err
	}
	if err := copyRows(ctx, tx, goalEventsTable, goalEventTableModel{}, goalRows); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace dataset: %w", err)
	}
	return nil
}

func copyRows(ctx context.Context, tx *sqlx.Tx, table string, model any, rows []any) error {
	cols, err := qb.Columns(model)
	if err != nil {
		return fmt.Errorf("resolve %s columns: %w", table, err)
	}

	stmt, err := tx.PrepareContext(ctx, pq.CopyIn(table, cols...))
	if err != nil {
		return fmt.Errorf("prepare copy %s: %w", table, err)
	}
	defer stmt.Close()

	for i, row := range rows {
		vals, err := qb.Values(row)
		if err != nil {
			return fmt.Errorf("row %d values for %s: %w", i+1, table, err)
		}
		if _, err := stmt.ExecContext(ctx, vals...); err != nil {
			return fmt.Errorf("copy %s row %d: %w", table, i+1, err)
		}
	}
	if _, err := stmt.ExecContext(ctx); err != nil {
		return fmt.Errorf("flush copy %s: %w", table, err)
	}
	return nil
}
