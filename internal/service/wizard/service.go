// Package wizard пошаговый мастер заказа выходных
// Держит состояние диалога каждого пользователя и собирает черновик заявки;
// оформление и отмена делегируются usecase-ам
package wizard

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-WeekendService/internal/domain"
	"github.com/m04kA/SMC-WeekendService/internal/usecase/cancel_reservation"
	"github.com/m04kA/SMC-WeekendService/internal/usecase/get_available_dates"
	"github.com/m04kA/SMC-WeekendService/internal/usecase/submit_reservation"
)

const (
	msgHelp = "Доступные команды: order_weekend - заказать выходные, my_orders - мои заказы, " +
		"cancel_order <id> - отменить заказ, weekend_free_dates <локация> <должность> - свободные даты, cancel - прервать оформление"
	msgChooseLocation     = "Выберите локацию"
	msgChooseRole         = "Выберите должность"
	msgEnterFullName      = "Введите ФИО"
	msgEnterEmployeeID    = "Введите табельный номер"
	msgChooseDates        = "Выберите дату выходного"
	msgDateAdded          = "Дата добавлена"
	msgConfirmOrder       = "Проверьте заявку и подтвердите оформление"
	msgOrderCreated       = "Заявка оформлена"
	msgOrderCancelled     = "Заказ отменён"
	msgWizardCancelled    = "Оформление прервано"
	msgDatesUnavailable   = "По выбранным датам не осталось мест, измените даты"
	msgUnknownCommand     = "Неизвестная команда, отправьте help для списка команд"
	msgUnexpectedInput    = "Сейчас ожидается выбор из предложенных вариантов"
	msgUnknownLocation    = "Неизвестная локация"
	msgUnknownRole        = "Неизвестная должность"
	msgBadFullName        = "ФИО должно содержать не менее 3 символов"
	msgBadEmployeeID      = "Табельный номер должен состоять из 3-10 цифр"
	msgBadDate            = "Дата должна быть в формате ГГГГ-ММ-ДД и не в прошлом"
	msgDuplicateDate      = "Эта дата уже выбрана"
	msgTooManyDates       = "Можно выбрать не более 2 дат"
	msgNoDatesSelected    = "Не выбрано ни одной даты"
	msgQuotaNotConfigured = "Для этой локации и должности квота не настроена"
	msgOrderNotFound      = "Заказ не найден"
	msgNotYourOrder       = "Этот заказ принадлежит другому пользователю"
)

// Service мастер заказа выходных
type Service struct {
	sessions   *sessionStore
	submitter  Submitter
	canceller  Canceller
	dates      DatesProvider
	orders     OrdersReader
	logger     Logger
	windowDays int
}

// NewService создает новый экземпляр мастера
func NewService(submitter Submitter, canceller Canceller, dates DatesProvider, orders OrdersReader, logger Logger, sessionTTL time.Duration, windowDays int) *Service {
	if windowDays <= 0 || windowDays > domain.MaxWindowDays {
		windowDays = domain.DefaultWindowDays
	}
	return &Service{
		sessions:   newSessionStore(sessionTTL),
		submitter:  submitter,
		canceller:  canceller,
		dates:      dates,
		orders:     orders,
		logger:     logger,
		windowDays: windowDays,
	}
}

// Handle обрабатывает один шаг диалога пользователя
// Ошибки валидации шага возвращаются структурированным Response без мутации
// состояния; error возвращается только при внутренних сбоях
func (s *Service) Handle(ctx context.Context, userID, command string, args []string) (*Response, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	sess := s.sessions.get(userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	s.logger.Info("Handle: user=%s command=%s state=%s", userID, command, sess.state)

	switch command {
	case CmdStart:
		sess.reset()
		return &Response{Type: ResponseMessage, State: sess.state, Message: msgHelp}, nil
	case CmdHelp:
		return &Response{Type: ResponseMessage, State: sess.state, Message: msgHelp}, nil
	case CmdOrderWeekend:
		return s.startWizard(sess), nil
	case CmdSelectLocation:
		return s.selectLocation(sess, args), nil
	case CmdSelectRole:
		return s.selectRole(sess, args), nil
	case CmdText:
		return s.handleText(ctx, sess, args)
	case CmdSelectDate:
		return s.selectDate(sess, args), nil
	case CmdContinueSelecting:
		return s.continueSelecting(ctx, sess)
	case CmdConfirmDates:
		return s.confirmDates(sess), nil
	case CmdConfirmOrder:
		return s.confirmOrder(ctx, sess, userID)
	case CmdCancel:
		sess.reset()
		return &Response{Type: ResponseCancelled, State: sess.state, Message: msgWizardCancelled}, nil
	case CmdMyOrders:
		return s.myOrders(ctx, sess, userID)
	case CmdCancelOrder:
		return s.cancelOrder(ctx, sess, userID, args)
	case CmdFreeDates:
		return s.freeDates(ctx, sess, args)
	default:
		return validationError(sess.state, KindInvalidInput, msgUnknownCommand), nil
	}
}

func (s *Service) startWizard(sess *session) *Response {
	sess.reset()
	sess.state = domain.StateSelectingLocation
	return &Response{
		Type:    ResponseLocations,
		State:   sess.state,
		Message: msgChooseLocation,
		Data:    locationOptions(),
	}
}

func (s *Service) selectLocation(sess *session, args []string) *Response {
	if sess.state != domain.StateSelectingLocation {
		return validationError(sess.state, KindInvalidInput, msgUnexpectedInput)
	}
	if len(args) == 0 {
		return validationError(sess.state, KindInvalidInput, msgUnknownLocation)
	}

	location, ok := domain.ParseLocation(args[0])
	if !ok {
		return validationError(sess.state, KindInvalidInput, msgUnknownLocation)
	}

	sess.draft.Location = location
	sess.state = domain.StateSelectingRole
	return &Response{
		Type:    ResponseRoles,
		State:   sess.state,
		Message: msgChooseRole,
		Data:    roleOptions(),
	}
}

func (s *Service) selectRole(sess *session, args []string) *Response {
	if sess.state != domain.StateSelectingRole {
		return validationError(sess.state, KindInvalidInput, msgUnexpectedInput)
	}
	if len(args) == 0 {
		return validationError(sess.state, KindInvalidInput, msgUnknownRole)
	}

	role, ok := domain.ParseRole(args[0])
	if !ok {
		return validationError(sess.state, KindInvalidInput, msgUnknownRole)
	}

	sess.draft.Role = role
	sess.state = domain.StateEnteringFullName
	return &Response{Type: ResponsePromptFullName, State: sess.state, Message: msgEnterFullName}
}

// handleText обрабатывает свободный текст: ФИО и табельный номер
// В остальных состояниях текст не принимается
func (s *Service) handleText(ctx context.Context, sess *session, args []string) (*Response, error) {
	text := ""
	if len(args) > 0 {
		text = args[0]
	}

	switch sess.state {
	case domain.StateEnteringFullName:
		fullName := strings.TrimSpace(text)
		if len([]rune(fullName)) < domain.MinFullNameLength {
			return validationError(sess.state, KindInvalidInput, msgBadFullName), nil
		}
		sess.draft.FullName = fullName
		sess.state = domain.StateEnteringEmployeeID
		return &Response{Type: ResponsePromptEmployeeID, State: sess.state, Message: msgEnterEmployeeID}, nil

	case domain.StateEnteringEmployeeID:
		employeeID := strings.TrimSpace(text)
		if !validEmployeeID(employeeID) {
			return validationError(sess.state, KindInvalidInput, msgBadEmployeeID), nil
		}
		sess.draft.EmployeeID = employeeID
		sess.state = domain.StateSelectingDates
		return s.offerDates(ctx, sess)

	default:
		return validationError(sess.state, KindInvalidInput, msgUnexpectedInput), nil
	}
}

func (s *Service) selectDate(sess *session, args []string) *Response {
	if sess.state != domain.StateSelectingDates {
		return validationError(sess.state, KindInvalidInput, msgUnexpectedInput)
	}
	if len(args) == 0 {
		return validationError(sess.state, KindInvalidInput, msgBadDate)
	}

	date, err := time.ParseInLocation(domain.DateFormat, args[0], time.UTC)
	if err != nil || date.Before(domain.DateOnly(time.Now().UTC())) {
		return validationError(sess.state, KindInvalidInput, msgBadDate)
	}

	if sess.draft.HasDate(date) {
		return validationError(sess.state, KindDuplicateSelection, msgDuplicateDate)
	}
	if sess.draft.DatesFull() {
		return validationError(sess.state, KindLimitExceeded, msgTooManyDates)
	}

	sess.draft.SelectedDates = append(sess.draft.SelectedDates, date)
	return &Response{
		Type:    ResponseDatesSelected,
		State:   sess.state,
		Message: msgDateAdded,
		Data: SelectedDatesData{
			Selected:      formatDates(sess.draft.SelectedDates),
			CanSelectMore: !sess.draft.DatesFull(),
		},
	}
}

func (s *Service) continueSelecting(ctx context.Context, sess *session) (*Response, error) {
	if sess.state != domain.StateSelectingDates {
		return validationError(sess.state, KindInvalidInput, msgUnexpectedInput), nil
	}
	if sess.draft.DatesFull() {
		return validationError(sess.state, KindLimitExceeded, msgTooManyDates), nil
	}
	return s.offerDates(ctx, sess)
}

func (s *Service) confirmDates(sess *session) *Response {
	if sess.state != domain.StateSelectingDates {
		return validationError(sess.state, KindInvalidInput, msgUnexpectedInput)
	}
	if len(sess.draft.SelectedDates) == 0 {
		return validationError(sess.state, KindEmptySelection, msgNoDatesSelected)
	}

	sess.state = domain.StateConfirming
	return &Response{
		Type:    ResponseConfirmation,
		State:   sess.state,
		Message: msgConfirmOrder,
		Data:    draftSummary(sess.draft),
	}
}

// confirmOrder передает черновик координатору бронирования
// При нехватке мест состояние остается confirming, пользователь может изменить даты
func (s *Service) confirmOrder(ctx context.Context, sess *session, userID string) (*Response, error) {
	if sess.state != domain.StateConfirming {
		return validationError(sess.state, KindInvalidInput, msgUnexpectedInput), nil
	}

	result, err := s.submitter.Execute(ctx, submit_reservation.Request{
		UserID:     userID,
		FullName:   sess.draft.FullName,
		EmployeeID: sess.draft.EmployeeID,
		Location:   sess.draft.Location,
		Role:       sess.draft.Role,
		Dates:      sess.draft.SelectedDates,
	})
	if err != nil {
		var unavailable *submit_reservation.DatesUnavailableError
		switch {
		case errors.As(err, &unavailable):
			return &Response{
				Type:    ResponseDatesUnavailable,
				State:   sess.state,
				Message: msgDatesUnavailable,
				Data:    UnavailableDatesData{Dates: formatDates(unavailable.Dates)},
			}, nil
		case errors.Is(err, submit_reservation.ErrQuotaNotConfigured):
			return validationError(sess.state, KindInvalidInput, msgQuotaNotConfigured), nil
		case errors.Is(err, submit_reservation.ErrInvalidInput):
			return validationError(sess.state, KindInvalidInput, err.Error()), nil
		default:
			s.logger.Error("confirmOrder: submit failed for user=%s: %v", userID, err)
			return nil, fmt.Errorf("%w: confirmOrder - submit: %v", ErrInternal, err)
		}
	}

	summary := draftSummary(sess.draft)
	sess.reset()
	return &Response{
		Type:    ResponseOrderCreated,
		State:   sess.state,
		Message: msgOrderCreated,
		Data:    OrderCreatedData{OrderID: result.OrderID, Summary: summary},
	}, nil
}

func (s *Service) myOrders(ctx context.Context, sess *session, userID string) (*Response, error) {
	list, err := s.orders.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("myOrders: failed to list orders for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: myOrders - list orders: %v", ErrInternal, err)
	}

	return &Response{Type: ResponseOrders, State: sess.state, Data: list}, nil
}

func (s *Service) cancelOrder(ctx context.Context, sess *session, userID string, args []string) (*Response, error) {
	if len(args) == 0 {
		return validationError(sess.state, KindInvalidInput, msgOrderNotFound), nil
	}

	result, err := s.canceller.Execute(ctx, cancel_reservation.Request{
		OrderID: args[0],
		UserID:  userID,
	})
	if err != nil {
		switch {
		case errors.Is(err, cancel_reservation.ErrOrderNotFound):
			return validationError(sess.state, KindInvalidInput, msgOrderNotFound), nil
		case errors.Is(err, cancel_reservation.ErrAccessDenied):
			return validationError(sess.state, KindInvalidInput, msgNotYourOrder), nil
		case errors.Is(err, cancel_reservation.ErrInvalidInput):
			return validationError(sess.state, KindInvalidInput, err.Error()), nil
		default:
			s.logger.Error("cancelOrder: cancel failed for user=%s order=%s: %v", userID, args[0], err)
			return nil, fmt.Errorf("%w: cancelOrder - cancel: %v", ErrInternal, err)
		}
	}

	return &Response{
		Type:    ResponseOrderCancelled,
		State:   sess.state,
		Message: msgOrderCancelled,
		Data: OrderCancelledData{
			OrderID:        result.OrderID,
			FailedReleases: formatDates(result.FailedReleases),
		},
	}, nil
}

func (s *Service) freeDates(ctx context.Context, sess *session, args []string) (*Response, error) {
	location := ""
	role := ""
	switch {
	case len(args) >= 2:
		location, role = args[0], args[1]
	case sess.draft.Location != "" && sess.draft.Role != "":
		location, role = string(sess.draft.Location), string(sess.draft.Role)
	default:
		return validationError(sess.state, KindInvalidInput, msgUnknownLocation), nil
	}

	return s.listDates(ctx, sess, location, role)
}

// offerDates предлагает даты со свободными местами для черновика
func (s *Service) offerDates(ctx context.Context, sess *session) (*Response, error) {
	return s.listDates(ctx, sess, string(sess.draft.Location), string(sess.draft.Role))
}

func (s *Service) listDates(ctx context.Context, sess *session, location, role string) (*Response, error) {
	result, err := s.dates.Execute(ctx, get_available_dates.Request{
		Location: location,
		Role:     role,
		Days:     s.windowDays,
	})
	if err != nil {
		switch {
		case errors.Is(err, get_available_dates.ErrQuotaNotConfigured):
			return validationError(sess.state, KindInvalidInput, msgQuotaNotConfigured), nil
		case errors.Is(err, get_available_dates.ErrInvalidInput):
			return validationError(sess.state, KindInvalidInput, err.Error()), nil
		default:
			s.logger.Error("listDates: failed to list dates for %s/%s: %v", location, role, err)
			return nil, fmt.Errorf("%w: listDates - available dates: %v", ErrInternal, err)
		}
	}

	return &Response{
		Type:    ResponseAvailableDates,
		State:   sess.state,
		Message: msgChooseDates,
		Data: DatesData{
			Location: result.Location,
			Role:     result.Role,
			Dates:    result.Dates,
		},
	}, nil
}

func validationError(state domain.WizardState, kind ErrorKind, message string) *Response {
	return &Response{
		Type:    ResponseError,
		State:   state,
		Message: message,
		Data:    ErrorData{Kind: kind},
	}
}

func locationOptions() OptionsData {
	options := make([]Option, 0, len(domain.Locations))
	for _, l := range domain.Locations {
		options = append(options, Option{ID: string(l), Name: l.Name()})
	}
	return OptionsData{Options: options}
}

func roleOptions() OptionsData {
	options := make([]Option, 0, len(domain.Roles))
	for _, r := range domain.Roles {
		options = append(options, Option{ID: string(r), Name: r.Name()})
	}
	return OptionsData{Options: options}
}

func draftSummary(d *domain.WizardDraft) SummaryData {
	return SummaryData{
		Location:     string(d.Location),
		LocationName: d.Location.Name(),
		Role:         string(d.Role),
		RoleName:     d.Role.Name(),
		FullName:     d.FullName,
		EmployeeID:   d.EmployeeID,
		Dates:        formatDates(d.SelectedDates),
	}
}

func formatDates(dates []time.Time) []string {
	if len(dates) == 0 {
		return nil
	}
	out := make([]string, len(dates))
	for i, d := range dates {
		out[i] = d.Format(domain.DateFormat)
	}
	return out
}

func validEmployeeID(id string) bool {
	if len(id) < domain.MinEmployeeIDLength || len(id) > domain.MaxEmployeeIDLength {
		return false
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
