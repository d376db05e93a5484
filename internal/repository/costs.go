package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/costmanager/backend/internal/models"
)

// CostRepository exposes the cost store operations. Costs are
// append-only in normal flow; DeleteAll backs the bulk-wipe utility.
type CostRepository interface {
	Insert(ctx context.Context, cost *models.Cost) error
	FindByUserMonth(ctx context.Context, userID int64, year, month int) ([]models.Cost, error)
	DeleteAll(ctx context.Context) (int64, error)
}

type PostgresCostRepository struct {
	db *sql.DB
}

func NewPostgresCostRepository(db *sql.DB) *PostgresCostRepository {
	return &PostgresCostRepository{db: db}
}

// MonthRange returns the half-open UTC interval covering the given
// calendar month. A cost stamped at the first instant of the next
// month belongs to the next month's bucket only.
func MonthRange(year, month int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

func (r *PostgresCostRepository) Insert(ctx context.Context, cost *models.Cost) error {
	return r.db.QueryRowContext(ctx, `
		INSERT INTO costs (description, category, userid, sum, date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, cost.Description, cost.Category, cost.UserID, cost.Sum, cost.Date).Scan(&cost.ID)
}

func (r *PostgresCostRepository) FindByUserMonth(ctx context.Context, userID int64, year, month int) ([]models.Cost, error) {
	start, end := MonthRange(year, month)

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, description, category, userid, sum, date
		FROM costs
		WHERE userid = $1 AND date >= $2 AND date < $3
		ORDER BY date ASC
	`, userID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	costs := []models.Cost{}
	for rows.Next() {
		var cost models.Cost
		if err := rows.Scan(&cost.ID, &cost.Description, &cost.Category, &cost.UserID, &cost.Sum, &cost.Date); err != nil {
			return nil, err
		}
		costs = append(costs, cost)
	}
	return costs, rows.Err()
}

func (r *PostgresCostRepository) DeleteAll(ctx context.Context) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM costs`)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
