package cancel_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-WeekendService/internal/domain"
	orderRepo "github.com/m04kA/SMC-WeekendService/internal/infra/storage/order"
	quotaService "github.com/m04kA/SMC-WeekendService/internal/service/quota"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeLedger struct {
	releases   []string
	releaseErr map[string]error
}

func (f *fakeLedger) Release(ctx context.Context, location domain.Location, role domain.Role, date time.Time) (*domain.QuotaCounter, error) {
	k := date.Format(domain.DateFormat)
	if err, ok := f.releaseErr[k]; ok {
		return nil, err
	}
	f.releases = append(f.releases, k)
	return &domain.QuotaCounter{Location: location, Role: role, Date: date}, nil
}

type fakeOrderRepository struct {
	order   *domain.Order
	deleted []string
}

func (f *fakeOrderRepository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	if f.order == nil || f.order.ID != id {
		return nil, orderRepo.ErrOrderNotFound
	}
	return f.order, nil
}

func (f *fakeOrderRepository) Delete(ctx context.Context, id string) error {
	if f.order == nil || f.order.ID != id {
		return orderRepo.ErrOrderNotFound
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func testOrder() *domain.Order {
	return &domain.Order{
		ID:       "order-1",
		UserID:   "user-1",
		Location: domain.LocationMoscow,
		Role:     domain.RoleBP,
		Dates: []time.Time{
			time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2030, 6, 2, 0, 0, 0, 0, time.UTC),
		},
		Status: domain.OrderStatusPending,
	}
}

func TestExecute_Success(t *testing.T) {
	ledger := &fakeLedger{}
	repo := &fakeOrderRepository{order: testOrder()}
	uc := New(ledger, repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), Request{OrderID: "order-1", UserID: "user-1"})
	require.NoError(t, err)

	assert.Equal(t, "order-1", resp.OrderID)
	assert.Len(t, resp.ReleasedDates, 2)
	assert.Empty(t, resp.FailedReleases)
	assert.Equal(t, []string{"2030-06-01", "2030-06-02"}, ledger.releases)
	assert.Equal(t, []string{"order-1"}, repo.deleted)
}

func TestExecute_OrderNotFound(t *testing.T) {
	uc := New(&fakeLedger{}, &fakeOrderRepository{}, nopLogger{})

	_, err := uc.Execute(context.Background(), Request{OrderID: "missing", UserID: "user-1"})
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestExecute_NotOwner(t *testing.T) {
	ledger := &fakeLedger{}
	repo := &fakeOrderRepository{order: testOrder()}
	uc := New(ledger, repo, nopLogger{})

	_, err := uc.Execute(context.Background(), Request{OrderID: "order-1", UserID: "user-2"})
	assert.ErrorIs(t, err, ErrAccessDenied)

	// Ни возвратов, ни удаления
	assert.Empty(t, ledger.releases)
	assert.Empty(t, repo.deleted)
}

func TestExecute_ReleaseAnomalyStillDeletes(t *testing.T) {
	// Первая дата уже на нуле в ledger-е, возврат невозможен
	ledger := &fakeLedger{
		releaseErr: map[string]error{"2030-06-01": quotaService.ErrNothingToRelease},
	}
	repo := &fakeOrderRepository{order: testOrder()}
	uc := New(ledger, repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), Request{OrderID: "order-1", UserID: "user-1"})
	require.NoError(t, err)

	// Аномалия зафиксирована, заказ всё равно удалён
	assert.Len(t, resp.FailedReleases, 1)
	assert.Len(t, resp.ReleasedDates, 1)
	assert.Equal(t, []string{"order-1"}, repo.deleted)
}

func TestExecute_Validation(t *testing.T) {
	uc := New(&fakeLedger{}, &fakeOrderRepository{}, nopLogger{})

	_, err := uc.Execute(context.Background(), Request{OrderID: "", UserID: "user-1"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), Request{OrderID: "order-1", UserID: " "})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
