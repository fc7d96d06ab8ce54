package wizard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-WeekendService/internal/domain"
	"github.com/m04kA/SMC-WeekendService/internal/service/orders/models"
	"github.com/m04kA/SMC-WeekendService/internal/usecase/cancel_reservation"
	"github.com/m04kA/SMC-WeekendService/internal/usecase/get_available_dates"
	"github.com/m04kA/SMC-WeekendService/internal/usecase/submit_reservation"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeSubmitter struct {
	resp *submit_reservation.Response
	err  error
	got  *submit_reservation.Request
}

func (f *fakeSubmitter) Execute(ctx context.Context, req submit_reservation.Request) (*submit_reservation.Response, error) {
	f.got = &req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type fakeCanceller struct {
	resp *cancel_reservation.Response
	err  error
}

func (f *fakeCanceller) Execute(ctx context.Context, req cancel_reservation.Request) (*cancel_reservation.Response, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type fakeDatesProvider struct {
	dates []string
	err   error
}

func (f *fakeDatesProvider) Execute(ctx context.Context, req get_available_dates.Request) (*get_available_dates.Response, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &get_available_dates.Response{
		Location: req.Location,
		Role:     req.Role,
		Dates:    f.dates,
	}, nil
}

type fakeOrdersReader struct {
	list *models.OrderListResponse
	err  error
}

func (f *fakeOrdersReader) ListByUser(ctx context.Context, userID string) (*models.OrderListResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.list, nil
}

func newTestService(submitter *fakeSubmitter, canceller *fakeCanceller) *Service {
	return NewService(
		submitter,
		canceller,
		&fakeDatesProvider{dates: []string{"2030-06-01", "2030-06-02", "2030-06-03"}},
		&fakeOrdersReader{list: &models.OrderListResponse{Orders: []*models.OrderResponse{}}},
		nopLogger{},
		30*time.Minute,
		domain.DefaultWindowDays,
	)
}

// advanceToDates проводит пользователя до шага выбора дат
func advanceToDates(t *testing.T, svc *Service, userID string) {
	t.Helper()
	ctx := context.Background()

	resp, err := svc.Handle(ctx, userID, CmdOrderWeekend, nil)
	require.NoError(t, err)
	require.Equal(t, ResponseLocations, resp.Type)

	resp, err = svc.Handle(ctx, userID, CmdSelectLocation, []string{"moscow"})
	require.NoError(t, err)
	require.Equal(t, ResponseRoles, resp.Type)

	resp, err = svc.Handle(ctx, userID, CmdSelectRole, []string{"bp"})
	require.NoError(t, err)
	require.Equal(t, ResponsePromptFullName, resp.Type)

	resp, err = svc.Handle(ctx, userID, CmdText, []string{"Иванов Иван Иванович"})
	require.NoError(t, err)
	require.Equal(t, ResponsePromptEmployeeID, resp.Type)

	resp, err = svc.Handle(ctx, userID, CmdText, []string{"12345"})
	require.NoError(t, err)
	require.Equal(t, ResponseAvailableDates, resp.Type)
	require.Equal(t, domain.StateSelectingDates, resp.State)
}

func TestHandle_FullFlow(t *testing.T) {
	submitter := &fakeSubmitter{resp: &submit_reservation.Response{OrderID: "order-1"}}
	svc := newTestService(submitter, &fakeCanceller{})
	ctx := context.Background()

	advanceToDates(t, svc, "user-1")

	resp, err := svc.Handle(ctx, "user-1", CmdSelectDate, []string{"2030-06-01"})
	require.NoError(t, err)
	assert.Equal(t, ResponseDatesSelected, resp.Type)
	assert.True(t, resp.Data.(SelectedDatesData).CanSelectMore)

	resp, err = svc.Handle(ctx, "user-1", CmdSelectDate, []string{"2030-06-02"})
	require.NoError(t, err)
	assert.False(t, resp.Data.(SelectedDatesData).CanSelectMore)

	resp, err = svc.Handle(ctx, "user-1", CmdConfirmDates, nil)
	require.NoError(t, err)
	assert.Equal(t, ResponseConfirmation, resp.Type)
	assert.Equal(t, domain.StateConfirming, resp.State)

	summary := resp.Data.(SummaryData)
	assert.Equal(t, "moscow", summary.Location)
	assert.Equal(t, "bp", summary.Role)
	assert.Equal(t, []string{"2030-06-01", "2030-06-02"}, summary.Dates)

	resp, err = svc.Handle(ctx, "user-1", CmdConfirmOrder, nil)
	require.NoError(t, err)
	assert.Equal(t, ResponseOrderCreated, resp.Type)
	assert.Equal(t, domain.StateIdle, resp.State)
	assert.Equal(t, "order-1", resp.Data.(OrderCreatedData).OrderID)

	require.NotNil(t, submitter.got)
	assert.Equal(t, "user-1", submitter.got.UserID)
	assert.Equal(t, domain.LocationMoscow, submitter.got.Location)
	assert.Equal(t, domain.RoleBP, submitter.got.Role)
	assert.Equal(t, "Иванов Иван Иванович", submitter.got.FullName)
	assert.Equal(t, "12345", submitter.got.EmployeeID)
	assert.Len(t, submitter.got.Dates, 2)
}

func TestHandle_InvalidLocation(t *testing.T) {
	svc := newTestService(&fakeSubmitter{}, &fakeCanceller{})
	ctx := context.Background()

	_, err := svc.Handle(ctx, "user-1", CmdOrderWeekend, nil)
	require.NoError(t, err)

	resp, err := svc.Handle(ctx, "user-1", CmdSelectLocation, []string{"novosibirsk"})
	require.NoError(t, err)
	assert.Equal(t, ResponseError, resp.Type)
	assert.Equal(t, KindInvalidInput, resp.Data.(ErrorData).Kind)
	assert.Equal(t, domain.StateSelectingLocation, resp.State)
}

func TestHandle_ShortFullName(t *testing.T) {
	svc := newTestService(&fakeSubmitter{}, &fakeCanceller{})
	ctx := context.Background()

	_, err := svc.Handle(ctx, "user-1", CmdOrderWeekend, nil)
	require.NoError(t, err)
	_, err = svc.Handle(ctx, "user-1", CmdSelectLocation, []string{"spb"})
	require.NoError(t, err)
	_, err = svc.Handle(ctx, "user-1", CmdSelectRole, []string{"sbe"})
	require.NoError(t, err)

	resp, err := svc.Handle(ctx, "user-1", CmdText, []string{"  ив  "})
	require.NoError(t, err)
	assert.Equal(t, ResponseError, resp.Type)
	assert.Equal(t, KindInvalidInput, resp.Data.(ErrorData).Kind)
	assert.Equal(t, domain.StateEnteringFullName, resp.State)
}

func TestHandle_EmployeeIDValidation(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		valid bool
	}{
		{"digits only", "12345", true},
		{"too short", "12", false},
		{"too long", "12345678901", false},
		{"letters", "12a45", false},
		{"min length", "123", true},
		{"max length", "1234567890", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := newTestService(&fakeSubmitter{}, &fakeCanceller{})
			ctx := context.Background()

			_, err := svc.Handle(ctx, "user-1", CmdOrderWeekend, nil)
			require.NoError(t, err)
			_, err = svc.Handle(ctx, "user-1", CmdSelectLocation, []string{"sochi"})
			require.NoError(t, err)
			_, err = svc.Handle(ctx, "user-1", CmdSelectRole, []string{"ipb"})
			require.NoError(t, err)
			_, err = svc.Handle(ctx, "user-1", CmdText, []string{"Петров Петр"})
			require.NoError(t, err)

			resp, err := svc.Handle(ctx, "user-1", CmdText, []string{tc.input})
			require.NoError(t, err)

			if tc.valid {
				assert.Equal(t, ResponseAvailableDates, resp.Type)
				assert.Equal(t, domain.StateSelectingDates, resp.State)
			} else {
				assert.Equal(t, ResponseError, resp.Type)
				assert.Equal(t, domain.StateEnteringEmployeeID, resp.State)
			}
		})
	}
}

func TestHandle_ThirdDateRejected(t *testing.T) {
	svc := newTestService(&fakeSubmitter{}, &fakeCanceller{})
	ctx := context.Background()

	advanceToDates(t, svc, "user-1")

	_, err := svc.Handle(ctx, "user-1", CmdSelectDate, []string{"2030-06-01"})
	require.NoError(t, err)
	_, err = svc.Handle(ctx, "user-1", CmdSelectDate, []string{"2030-06-02"})
	require.NoError(t, err)

	resp, err := svc.Handle(ctx, "user-1", CmdSelectDate, []string{"2030-06-03"})
	require.NoError(t, err)
	assert.Equal(t, ResponseError, resp.Type)
	assert.Equal(t, KindLimitExceeded, resp.Data.(ErrorData).Kind)

	// Черновик не изменился
	resp, err = svc.Handle(ctx, "user-1", CmdConfirmDates, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"2030-06-01", "2030-06-02"}, resp.Data.(SummaryData).Dates)
}

func TestHandle_DuplicateDateRejected(t *testing.T) {
	svc := newTestService(&fakeSubmitter{}, &fakeCanceller{})
	ctx := context.Background()

	advanceToDates(t, svc, "user-1")

	_, err := svc.Handle(ctx, "user-1", CmdSelectDate, []string{"2030-06-01"})
	require.NoError(t, err)

	resp, err := svc.Handle(ctx, "user-1", CmdSelectDate, []string{"2030-06-01"})
	require.NoError(t, err)
	assert.Equal(t, ResponseError, resp.Type)
	assert.Equal(t, KindDuplicateSelection, resp.Data.(ErrorData).Kind)
}

func TestHandle_ConfirmWithoutDates(t *testing.T) {
	svc := newTestService(&fakeSubmitter{}, &fakeCanceller{})
	ctx := context.Background()

	advanceToDates(t, svc, "user-1")

	resp, err := svc.Handle(ctx, "user-1", CmdConfirmDates, nil)
	require.NoError(t, err)
	assert.Equal(t, ResponseError, resp.Type)
	assert.Equal(t, KindEmptySelection, resp.Data.(ErrorData).Kind)
	assert.Equal(t, domain.StateSelectingDates, resp.State)
}

func TestHandle_UnavailableDatesKeepConfirming(t *testing.T) {
	submitter := &fakeSubmitter{
		err: &submit_reservation.DatesUnavailableError{
			Dates: []time.Time{time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC)},
		},
	}
	svc := newTestService(submitter, &fakeCanceller{})
	ctx := context.Background()

	advanceToDates(t, svc, "user-1")

	_, err := svc.Handle(ctx, "user-1", CmdSelectDate, []string{"2030-06-01"})
	require.NoError(t, err)
	_, err = svc.Handle(ctx, "user-1", CmdConfirmDates, nil)
	require.NoError(t, err)

	resp, err := svc.Handle(ctx, "user-1", CmdConfirmOrder, nil)
	require.NoError(t, err)
	assert.Equal(t, ResponseDatesUnavailable, resp.Type)
	assert.Equal(t, domain.StateConfirming, resp.State)
	assert.Equal(t, []string{"2030-06-01"}, resp.Data.(UnavailableDatesData).Dates)
}

func TestHandle_CancelResetsState(t *testing.T) {
	svc := newTestService(&fakeSubmitter{}, &fakeCanceller{})
	ctx := context.Background()

	advanceToDates(t, svc, "user-1")

	resp, err := svc.Handle(ctx, "user-1", CmdCancel, nil)
	require.NoError(t, err)
	assert.Equal(t, ResponseCancelled, resp.Type)
	assert.Equal(t, domain.StateIdle, resp.State)

	// После отмены выбор даты не принимается
	resp, err = svc.Handle(ctx, "user-1", CmdSelectDate, []string{"2030-06-01"})
	require.NoError(t, err)
	assert.Equal(t, ResponseError, resp.Type)
}

func TestHandle_SessionsAreIsolated(t *testing.T) {
	svc := newTestService(&fakeSubmitter{}, &fakeCanceller{})
	ctx := context.Background()

	advanceToDates(t, svc, "user-1")

	// Второй пользователь начинает с нуля
	resp, err := svc.Handle(ctx, "user-2", CmdSelectDate, []string{"2030-06-01"})
	require.NoError(t, err)
	assert.Equal(t, ResponseError, resp.Type)
	assert.Equal(t, domain.StateIdle, resp.State)
}

func TestHandle_CancelOrderNotFound(t *testing.T) {
	svc := newTestService(&fakeSubmitter{}, &fakeCanceller{err: cancel_reservation.ErrOrderNotFound})
	ctx := context.Background()

	resp, err := svc.Handle(ctx, "user-1", CmdCancelOrder, []string{"missing-id"})
	require.NoError(t, err)
	assert.Equal(t, ResponseError, resp.Type)
	assert.Equal(t, KindInvalidInput, resp.Data.(ErrorData).Kind)
}

func TestHandle_UnknownCommand(t *testing.T) {
	svc := newTestService(&fakeSubmitter{}, &fakeCanceller{})

	resp, err := svc.Handle(context.Background(), "user-1", "bogus", nil)
	require.NoError(t, err)
	assert.Equal(t, ResponseError, resp.Type)
	assert.Equal(t, KindInvalidInput, resp.Data.(ErrorData).Kind)
}

func TestHandle_EmptyUserID(t *testing.T) {
	svc := newTestService(&fakeSubmitter{}, &fakeCanceller{})

	_, err := svc.Handle(context.Background(), "  ", CmdHelp, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
