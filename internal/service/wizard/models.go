package wizard

import "github.com/m04kA/SMC-WeekendService/internal/domain"

// Команды, которые принимает мастер заказа выходных
const (
	CmdStart             = "start"
	CmdHelp              = "help"
	CmdOrderWeekend      = "order_weekend"
	CmdSelectLocation    = "select_location"
	CmdSelectRole        = "select_role"
	CmdText              = "text"
	CmdSelectDate        = "select_date"
	CmdContinueSelecting = "continue_selecting"
	CmdConfirmDates      = "confirm_dates"
	CmdConfirmOrder      = "confirm_order"
	CmdCancel            = "cancel"
	CmdMyOrders          = "my_orders"
	CmdCancelOrder       = "cancel_order"
	CmdFreeDates         = "weekend_free_dates"
)

// ResponseType тип структурированного ответа мастера
// Отрисовка ответа полностью на стороне вызывающего слоя
type ResponseType string

const (
	ResponseMessage          ResponseType = "message"
	ResponseLocations        ResponseType = "locations"
	ResponseRoles            ResponseType = "roles"
	ResponsePromptFullName   ResponseType = "prompt_fullname"
	ResponsePromptEmployeeID ResponseType = "prompt_employee_id"
	ResponseAvailableDates   ResponseType = "available_dates"
	ResponseDatesSelected    ResponseType = "dates_selected"
	ResponseConfirmation     ResponseType = "confirmation"
	ResponseOrderCreated     ResponseType = "order_created"
	ResponseDatesUnavailable ResponseType = "dates_unavailable"
	ResponseError            ResponseType = "error"
	ResponseOrders           ResponseType = "orders"
	ResponseOrderCancelled   ResponseType = "order_cancelled"
	ResponseCancelled        ResponseType = "cancelled"
)

// ErrorKind вид ошибки валидации шага мастера
type ErrorKind string

const (
	KindInvalidInput       ErrorKind = "InvalidInput"
	KindLimitExceeded      ErrorKind = "LimitExceeded"
	KindDuplicateSelection ErrorKind = "DuplicateSelection"
	KindEmptySelection     ErrorKind = "EmptySelection"
)

// Response результат обработки одного шага мастера
type Response struct {
	Type    ResponseType       `json:"type"`
	State   domain.WizardState `json:"state"`
	Message string             `json:"message,omitempty"`
	Data    interface{}        `json:"data,omitempty"`
}

// Option элемент списка выбора (локация или должность)
type Option struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// OptionsData список вариантов выбора
type OptionsData struct {
	Options []Option `json:"options"`
}

// ErrorData структурированная ошибка валидации
type ErrorData struct {
	Kind ErrorKind `json:"kind"`
}

// DatesData даты со свободными местами для пары (локация, должность)
type DatesData struct {
	Location string   `json:"location"`
	Role     string   `json:"role"`
	Dates    []string `json:"dates"`
}

// SelectedDatesData уже выбранные даты черновика
type SelectedDatesData struct {
	Selected      []string `json:"selected"`
	CanSelectMore bool     `json:"canSelectMore"`
}

// SummaryData итог черновика перед подтверждением
type SummaryData struct {
	Location     string   `json:"location"`
	LocationName string   `json:"locationName"`
	Role         string   `json:"role"`
	RoleName     string   `json:"roleName"`
	FullName     string   `json:"fullName"`
	EmployeeID   string   `json:"employeeId"`
	Dates        []string `json:"dates"`
}

// OrderCreatedData результат успешного оформления заказа
type OrderCreatedData struct {
	OrderID string      `json:"orderId"`
	Summary SummaryData `json:"summary"`
}

// UnavailableDatesData даты, по которым не хватило мест
type UnavailableDatesData struct {
	Dates []string `json:"dates"`
}

// OrderCancelledData результат отмены заказа
type OrderCancelledData struct {
	OrderID        string   `json:"orderId"`
	FailedReleases []string `json:"failedReleases,omitempty"`
}
