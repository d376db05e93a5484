package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"github.com/costmanager/backend/internal/models"
)

func TestMonthRange(t *testing.T) {
	t.Run("mid-year month", func(t *testing.T) {
		start, end := MonthRange(2024, 6)
		assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), start)
		assert.Equal(t, time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), end)
	})

	t.Run("december rolls into the next year", func(t *testing.T) {
		start, end := MonthRange(2024, 12)
		assert.Equal(t, time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC), start)
		assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), end)
	})
}

func TestPostgresCostRepository_Insert(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewPostgresCostRepository(db)
	date := time.Date(2024, 10, 10, 0, 0, 0, 0, time.UTC)

	t.Run("assigns the generated id", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO costs \(description, category, userid, sum, date\) VALUES \(\$1, \$2, \$3, \$4, \$5\) RETURNING id`).
			WithArgs("Chicken Bread", "food", int64(64209), 20.0, date).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))

		cost := &models.Cost{
			Description: "Chicken Bread",
			Category:    "food",
			UserID:      64209,
			Sum:         20,
			Date:        date,
		}
		assert.NoError(t, repo.Insert(context.Background(), cost))
		assert.Equal(t, int64(42), cost.ID)
	})

	t.Run("insert failure propagates", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO costs`).
			WillReturnError(errors.New("constraint violation"))

		cost := &models.Cost{Description: "Milk", Category: "food", UserID: 64209, Sum: 8, Date: date}
		assert.Error(t, repo.Insert(context.Background(), cost))
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCostRepository_FindByUserMonth(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewPostgresCostRepository(db)

	query := `SELECT id, description, category, userid, sum, date FROM costs WHERE userid = \$1 AND date >= \$2 AND date < \$3 ORDER BY date ASC`
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)

	t.Run("returns the month's rows in date order", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "description", "category", "userid", "sum", "date"}).
			AddRow(1, "Dentist", "health", 64209, 12.5, time.Date(2024, 6, 3, 15, 0, 0, 0, time.UTC)).
			AddRow(2, "Chicken Bread", "food", 64209, 20.0, time.Date(2024, 6, 10, 9, 30, 0, 0, time.UTC))

		mock.ExpectQuery(query).
			WithArgs(int64(64209), start, end).
			WillReturnRows(rows)

		costs, err := repo.FindByUserMonth(context.Background(), 64209, 2024, 6)
		assert.NoError(t, err)
		assert.Len(t, costs, 2)
		assert.Equal(t, "Dentist", costs[0].Description)
		assert.Equal(t, "Chicken Bread", costs[1].Description)
	})

	t.Run("empty month yields an empty slice", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(int64(64209), start, end).
			WillReturnRows(sqlmock.NewRows([]string{"id", "description", "category", "userid", "sum", "date"}))

		costs, err := repo.FindByUserMonth(context.Background(), 64209, 2024, 6)
		assert.NoError(t, err)
		assert.NotNil(t, costs)
		assert.Empty(t, costs)
	})

	t.Run("query failure propagates", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(int64(64209), start, end).
			WillReturnError(errors.New("connection reset"))

		costs, err := repo.FindByUserMonth(context.Background(), 64209, 2024, 6)
		assert.Error(t, err)
		assert.Nil(t, costs)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCostRepository_DeleteAll(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewPostgresCostRepository(db)

	t.Run("reports the number of rows removed", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM costs`).
			WillReturnResult(sqlmock.NewResult(0, 5))

		deleted, err := repo.DeleteAll(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, int64(5), deleted)
	})

	t.Run("exec failure propagates", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM costs`).
			WillReturnError(errors.New("disk full"))

		_, err := repo.DeleteAll(context.Background())
		assert.Error(t, err)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
