package order

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-WeekendService/internal/domain"
)

func newTestRepository(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(db), mock
}

func orderColumns() []string {
	return []string{"id", "user_id", "full_name", "employee_id", "location", "role", "dates", "status", "created_at", "updated_at"}
}

func TestSave_Upsert(t *testing.T) {
	repo, mock := newTestRepository(t)
	now := time.Now()

	o := &domain.Order{
		ID:         "order-1",
		UserID:     "user-1",
		FullName:   "Иванов Иван",
		EmployeeID: "12345",
		Location:   domain.LocationMoscow,
		Role:       domain.RoleBP,
		Dates: []time.Time{
			time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2030, 6, 2, 0, 0, 0, 0, time.UTC),
		},
		Status: domain.OrderStatusPending,
	}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO orders")).
		WithArgs("order-1", "user-1", "Иванов Иван", "12345", "moscow", "bp",
			pq.StringArray{"2030-06-01", "2030-06-02"}, "pending").
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	saved, err := repo.Save(context.Background(), o)
	require.NoError(t, err)

	assert.Equal(t, now, saved.CreatedAt)
	assert.Equal(t, now, saved.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID(t *testing.T) {
	repo, mock := newTestRepository(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, user_id, full_name, employee_id, location, role, dates, status, created_at, updated_at FROM orders WHERE id = $1")).
		WithArgs("order-1").
		WillReturnRows(sqlmock.NewRows(orderColumns()).
			AddRow("order-1", "user-1", "Иванов Иван", "12345", "moscow", "bp",
				"{2030-06-01,2030-06-02}", "pending", now, now))

	o, err := repo.GetByID(context.Background(), "order-1")
	require.NoError(t, err)

	assert.Equal(t, "order-1", o.ID)
	assert.Equal(t, domain.LocationMoscow, o.Location)
	assert.Equal(t, domain.RoleBP, o.Role)
	assert.Equal(t, domain.OrderStatusPending, o.Status)
	require.Len(t, o.Dates, 2)
	assert.Equal(t, "2030-06-01", o.Dates[0].Format(domain.DateFormat))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock := newTestRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(orderColumns()))

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestListByUser(t *testing.T) {
	repo, mock := newTestRepository(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM orders WHERE user_id = $1 ORDER BY created_at DESC")).
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows(orderColumns()).
			AddRow("order-2", "user-1", "Иванов Иван", "12345", "spb", "sbe",
				"{2030-07-01}", "pending", now, now).
			AddRow("order-1", "user-1", "Иванов Иван", "12345", "moscow", "bp",
				"{2030-06-01}", "confirmed", now.Add(-time.Hour), now.Add(-time.Hour)))

	orders, err := repo.ListByUser(context.Background(), "user-1")
	require.NoError(t, err)

	require.Len(t, orders, 2)
	assert.Equal(t, "order-2", orders[0].ID)
	assert.Equal(t, domain.OrderStatusConfirmed, orders[1].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListAll_Paged(t *testing.T) {
	repo, mock := newTestRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at DESC LIMIT 10 OFFSET 20")).
		WillReturnRows(sqlmock.NewRows(orderColumns()))

	orders, err := repo.ListAll(context.Background(), 10, 20)
	require.NoError(t, err)
	assert.Empty(t, orders)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus(t *testing.T) {
	repo, mock := newTestRepository(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE orders SET status = $1, updated_at = NOW() WHERE id = $2")).
		WithArgs("confirmed", "order-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateStatus(context.Background(), "order-1", domain.OrderStatusConfirmed)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus_NotFound(t *testing.T) {
	repo, mock := newTestRepository(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE orders")).
		WithArgs("cancelled", "missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), "missing", domain.OrderStatusCancelled)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestDelete(t *testing.T) {
	repo, mock := newTestRepository(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM orders WHERE id = $1")).
		WithArgs("order-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Delete(context.Background(), "order-1")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_NotFound(t *testing.T) {
	repo, mock := newTestRepository(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM orders")).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}
