package submit_reservation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-WeekendService/internal/domain"
	quotaService "github.com/m04kA/SMC-WeekendService/internal/service/quota"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// fakeLedger ledger с фиксированной ёмкостью на каждую дату
type fakeLedger struct {
	capacity map[string]int
	used     map[string]int
	reserves []string
	releases []string
}

func newFakeLedger(capacity map[string]int) *fakeLedger {
	return &fakeLedger{
		capacity: capacity,
		used:     make(map[string]int),
	}
}

func (f *fakeLedger) Reserve(ctx context.Context, location domain.Location, role domain.Role, date time.Time) (*domain.QuotaCounter, error) {
	k := date.Format(domain.DateFormat)
	total, ok := f.capacity[k]
	if !ok {
		return nil, quotaService.ErrQuotaNotConfigured
	}
	if f.used[k] >= total {
		return nil, quotaService.ErrQuotaExhausted
	}
	f.used[k]++
	f.reserves = append(f.reserves, k)
	return &domain.QuotaCounter{Location: location, Role: role, Date: date, Total: total, Used: f.used[k]}, nil
}

func (f *fakeLedger) Release(ctx context.Context, location domain.Location, role domain.Role, date time.Time) (*domain.QuotaCounter, error) {
	k := date.Format(domain.DateFormat)
	if f.used[k] <= 0 {
		return nil, quotaService.ErrNothingToRelease
	}
	f.used[k]--
	f.releases = append(f.releases, k)
	return &domain.QuotaCounter{Location: location, Role: role, Date: date, Total: f.capacity[k], Used: f.used[k]}, nil
}

type fakeOrderRepository struct {
	saved   *domain.Order
	saveErr error
}

func (f *fakeOrderRepository) Save(ctx context.Context, o *domain.Order) (*domain.Order, error) {
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	f.saved = o
	o.CreatedAt = time.Now()
	o.UpdatedAt = o.CreatedAt
	return o, nil
}

func validRequest(dates ...time.Time) Request {
	return Request{
		UserID:     "user-1",
		FullName:   "Иванов Иван",
		EmployeeID: "12345",
		Location:   domain.LocationMoscow,
		Role:       domain.RoleBP,
		Dates:      dates,
	}
}

func TestExecute_Success(t *testing.T) {
	d1 := time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2030, 6, 2, 0, 0, 0, 0, time.UTC)

	ledger := newFakeLedger(map[string]int{"2030-06-01": 1, "2030-06-02": 1})
	repo := &fakeOrderRepository{}
	uc := New(ledger, repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest(d1, d2))
	require.NoError(t, err)

	assert.NotEmpty(t, resp.OrderID)
	assert.Equal(t, domain.OrderStatusPending, resp.Order.Status)
	assert.Equal(t, []string{"2030-06-01", "2030-06-02"}, ledger.reserves)
	assert.Empty(t, ledger.releases)

	require.NotNil(t, repo.saved)
	assert.Equal(t, "user-1", repo.saved.UserID)
	assert.Len(t, repo.saved.Dates, 2)
}

func TestExecute_SecondDateExhausted_CompensatesFirst(t *testing.T) {
	d1 := time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2030, 6, 2, 0, 0, 0, 0, time.UTC)

	// Вторая дата уже занята
	ledger := newFakeLedger(map[string]int{"2030-06-01": 1, "2030-06-02": 0})
	repo := &fakeOrderRepository{}
	uc := New(ledger, repo, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest(d1, d2))
	require.Error(t, err)

	var unavailable *DatesUnavailableError
	require.True(t, errors.As(err, &unavailable))
	assert.ErrorIs(t, err, ErrDatesUnavailable)
	assert.Equal(t, []time.Time{domain.DateOnly(d2)}, unavailable.Dates)

	// Первый резерв откатился, заказ не создан
	assert.Equal(t, []string{"2030-06-01"}, ledger.releases)
	assert.Equal(t, 0, ledger.used["2030-06-01"])
	assert.Nil(t, repo.saved)
}

func TestExecute_SaveFails_ReleasesAllDates(t *testing.T) {
	d1 := time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2030, 6, 2, 0, 0, 0, 0, time.UTC)

	ledger := newFakeLedger(map[string]int{"2030-06-01": 1, "2030-06-02": 1})
	repo := &fakeOrderRepository{saveErr: errors.New("connection reset")}
	uc := New(ledger, repo, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest(d1, d2))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternal)

	// Полная компенсация обоих резервов
	assert.Equal(t, []string{"2030-06-01", "2030-06-02"}, ledger.releases)
	assert.Equal(t, 0, ledger.used["2030-06-01"])
	assert.Equal(t, 0, ledger.used["2030-06-02"])
}

func TestExecute_QuotaNotConfigured(t *testing.T) {
	d1 := time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC)

	ledger := newFakeLedger(map[string]int{})
	uc := New(ledger, &fakeOrderRepository{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest(d1))
	assert.ErrorIs(t, err, ErrQuotaNotConfigured)
}

func TestExecute_Validation(t *testing.T) {
	d1 := time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2030, 6, 2, 0, 0, 0, 0, time.UTC)
	d3 := time.Date(2030, 6, 3, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name   string
		mutate func(req *Request)
	}{
		{"empty user id", func(req *Request) { req.UserID = " " }},
		{"short full name", func(req *Request) { req.FullName = "ив" }},
		{"employee id with letters", func(req *Request) { req.EmployeeID = "12a45" }},
		{"employee id too short", func(req *Request) { req.EmployeeID = "12" }},
		{"unknown location", func(req *Request) { req.Location = "berlin" }},
		{"unknown role", func(req *Request) { req.Role = "pilot" }},
		{"no dates", func(req *Request) { req.Dates = nil }},
		{"too many dates", func(req *Request) { req.Dates = []time.Time{d1, d2, d3} }},
		{"duplicate dates", func(req *Request) { req.Dates = []time.Time{d1, d1} }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ledger := newFakeLedger(map[string]int{"2030-06-01": 1})
			uc := New(ledger, &fakeOrderRepository{}, nopLogger{})

			req := validRequest(d1)
			tc.mutate(&req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)

			// Без побочных эффектов
			assert.Empty(t, ledger.reserves)
		})
	}
}
