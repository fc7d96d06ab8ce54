package get_available_dates

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-WeekendService/internal/api/handlers"
	"github.com/m04kA/SMC-WeekendService/internal/domain"
	getAvailableDates "github.com/m04kA/SMC-WeekendService/internal/usecase/get_available_dates"
)

const (
	msgInvalidParams      = "некорректные параметры запроса"
	msgInvalidFrom        = "некорректная дата from, ожидается YYYY-MM-DD"
	msgInvalidDays        = "некорректное значение days"
	msgQuotaNotConfigured = "квота для этой локации и должности не настроена"
)

type Handler struct {
	useCase GetAvailableDatesUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableDatesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/available-dates?location=&role=&from=&days=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := getAvailableDates.Request{
		Location: query.Get("location"),
		Role:     query.Get("role"),
	}

	if fromStr := query.Get("from"); fromStr != "" {
		from, err := time.ParseInLocation(domain.DateFormat, fromStr, time.UTC)
		if err != nil {
			h.logger.Warn("GET /available-dates - Invalid from: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFrom)
			return
		}
		req.From = from
	}

	if daysStr := query.Get("days"); daysStr != "" {
		days, err := strconv.Atoi(daysStr)
		if err != nil {
			h.logger.Warn("GET /available-dates - Invalid days: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDays)
			return
		}
		req.Days = days
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableDates.ErrInvalidInput):
			h.logger.Warn("GET /available-dates - Invalid input: location=%s, role=%s, error=%v",
				req.Location, req.Role, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		case errors.Is(err, getAvailableDates.ErrQuotaNotConfigured):
			h.logger.Warn("GET /available-dates - Quota not configured: location=%s, role=%s",
				req.Location, req.Role)
			handlers.RespondNotFound(w, msgQuotaNotConfigured)

		default:
			h.logger.Error("GET /available-dates - Failed: location=%s, role=%s, error=%v",
				req.Location, req.Role, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /available-dates - Found %d dates: location=%s, role=%s",
		len(result.Dates), result.Location, result.Role)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
