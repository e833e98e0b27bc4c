// Package report persists branch hourly-salary rows to the reporting
// database.
package report

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/branchpay/branchpay-etl/internal/payroll"
	"github.com/branchpay/branchpay-etl/pkg/database"
	"github.com/branchpay/branchpay-etl/pkg/errors"
)

// Row is one persisted row of the branch_hourly_salary table.
type Row struct {
	Year          int             `db:"year"`
	Month         int             `db:"month"`
	BranchID      int64           `db:"branch_id"`
	SalaryPerHour decimal.Decimal `db:"salary_per_hour"`
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at"`
}

// Repository handles branch_hourly_salary persistence
type Repository struct {
	db *database.DB
}

// NewRepository creates a new report repository
func NewRepository(db *database.DB) *Repository {
	return &Repository{db: db}
}

// schemaDDL mirrors migrations/001_branch_hourly_salary.sql
const schemaDDL = `
	CREATE TABLE IF NOT EXISTS branch_hourly_salary (
		year INT NOT NULL,
		month INT NOT NULL,
		branch_id BIGINT NOT NULL,
		salary_per_hour NUMERIC(14,2) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		PRIMARY KEY (year, month, branch_id)
	)
`

// EnsureSchema creates the reporting table if it does not exist yet.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schemaDDL); err != nil {
		return errors.Persistence("ensure schema", err)
	}
	return nil
}

// UpsertRates writes one row per (year, month, branch) in a single
// parameterized statement. The upsert on the natural key makes re-running
// the job for the same date safe: the existing row is overwritten instead
// of duplicated. An empty input is a no-op.
func (r *Repository) UpsertRates(ctx context.Context, rates []payroll.BranchMonthRate) error {
	if len(rates) == 0 {
		return nil
	}

	placeholders := make([]string, 0, len(rates))
	args := make([]interface{}, 0, len(rates)*4)
	for i, rate := range rates {
		n := i * 4
		placeholders = append(placeholders, fmt.Sprintf("($%d, $%d, $%d, $%d)", n+1, n+2, n+3, n+4))
		args = append(args, rate.Year, rate.Month, rate.BranchID, rate.SalaryPerHour)
	}

	query := fmt.Sprintf(`
		INSERT INTO branch_hourly_salary (year, month, branch_id, salary_per_hour)
		VALUES %s
		ON CONFLICT (year, month, branch_id) DO UPDATE SET
			salary_per_hour = EXCLUDED.salary_per_hour,
			updated_at = NOW()
	`, strings.Join(placeholders, ", "))

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return errors.Persistence("upsert rates", err)
	}
	return nil
}

// GetRate fetches the persisted rate for one branch-month, or nil when no
// row exists.
func (r *Repository) GetRate(ctx context.Context, year, month int, branchID int64) (*Row, error) {
	query := `
		SELECT year, month, branch_id, salary_per_hour, created_at, updated_at
		FROM branch_hourly_salary
		WHERE year = $1 AND month = $2 AND branch_id = $3
	`

	var row Row
	err := r.db.GetContext(ctx, &row, query, year, month, branchID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Persistence("get rate", err)
	}
	return &row, nil
}
