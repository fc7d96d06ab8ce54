package process_message

import (
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-WeekendService/internal/api/handlers"
	"github.com/m04kA/SMC-WeekendService/internal/service/wizard"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgUserIDRequired     = "не указан идентификатор пользователя"
)

// commands команды, распознаваемые в начале сообщения
// Любой другой текст передается мастеру как свободный ввод
var commands = map[string]struct{}{
	wizard.CmdStart:             {},
	wizard.CmdHelp:              {},
	wizard.CmdOrderWeekend:      {},
	wizard.CmdSelectLocation:    {},
	wizard.CmdSelectRole:        {},
	wizard.CmdSelectDate:        {},
	wizard.CmdContinueSelecting: {},
	wizard.CmdConfirmDates:      {},
	wizard.CmdConfirmOrder:      {},
	wizard.CmdCancel:            {},
	wizard.CmdMyOrders:          {},
	wizard.CmdCancelOrder:       {},
	wizard.CmdFreeDates:         {},
}

type Handler struct {
	wizard WizardService
	logger Logger
}

func NewHandler(wizardService WizardService, logger Logger) *Handler {
	return &Handler{
		wizard: wizardService,
		logger: logger,
	}
}

// Handle POST /api/v1/messenger/message
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ProcessMessageRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /messenger/message - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if strings.TrimSpace(req.UserID) == "" {
		handlers.RespondBadRequest(w, msgUserIDRequired)
		return
	}

	command, args := parseMessage(req.Message)

	result, err := h.wizard.Handle(r.Context(), req.UserID, command, args)
	if err != nil {
		if errors.Is(err, wizard.ErrInvalidInput) {
			h.logger.Warn("POST /messenger/message - Invalid input: user_id=%s, error=%v", req.UserID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}
		h.logger.Error("POST /messenger/message - Failed to handle message: user_id=%s, error=%v", req.UserID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /messenger/message - Handled: user_id=%s, command=%s, response=%s",
		req.UserID, command, result.Type)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// parseMessage разбирает сообщение на команду и аргументы
// Неизвестное первое слово означает свободный текст целиком
func parseMessage(message string) (string, []string) {
	fields := strings.Fields(message)
	if len(fields) == 0 {
		return wizard.CmdText, []string{""}
	}

	if _, ok := commands[fields[0]]; ok {
		return fields[0], fields[1:]
	}
	return wizard.CmdText, []string{strings.TrimSpace(message)}
}
