package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelOrderHandler "github.com/m04kA/SMC-WeekendService/internal/api/handlers/cancel_order"
	getAvailableDatesHandler "github.com/m04kA/SMC-WeekendService/internal/api/handlers/get_available_dates"
	getOrderHandler "github.com/m04kA/SMC-WeekendService/internal/api/handlers/get_order"
	getQuotaStatsHandler "github.com/m04kA/SMC-WeekendService/internal/api/handlers/get_quota_stats"
	getUserOrdersHandler "github.com/m04kA/SMC-WeekendService/internal/api/handlers/get_user_orders"
	listOrdersHandler "github.com/m04kA/SMC-WeekendService/internal/api/handlers/list_orders"
	processMessageHandler "github.com/m04kA/SMC-WeekendService/internal/api/handlers/process_message"
	resetQuotasHandler "github.com/m04kA/SMC-WeekendService/internal/api/handlers/reset_quotas"
	updateOrderStatusHandler "github.com/m04kA/SMC-WeekendService/internal/api/handlers/update_order_status"
	updateQuotaHandler "github.com/m04kA/SMC-WeekendService/internal/api/handlers/update_quota"
	"github.com/m04kA/SMC-WeekendService/internal/api/middleware"
	"github.com/m04kA/SMC-WeekendService/internal/config"
	orderRepo "github.com/m04kA/SMC-WeekendService/internal/infra/storage/order"
	quotaRepo "github.com/m04kA/SMC-WeekendService/internal/infra/storage/quota"
	ordersService "github.com/m04kA/SMC-WeekendService/internal/service/orders"
	quotaService "github.com/m04kA/SMC-WeekendService/internal/service/quota"
	wizardService "github.com/m04kA/SMC-WeekendService/internal/service/wizard"
	cancelReservationUC "github.com/m04kA/SMC-WeekendService/internal/usecase/cancel_reservation"
	getAvailableDatesUC "github.com/m04kA/SMC-WeekendService/internal/usecase/get_available_dates"
	submitReservationUC "github.com/m04kA/SMC-WeekendService/internal/usecase/submit_reservation"
	"github.com/m04kA/SMC-WeekendService/pkg/dbmetrics"
	"github.com/m04kA/SMC-WeekendService/pkg/logger"
	"github.com/m04kA/SMC-WeekendService/pkg/metrics"
	"github.com/m04kA/SMC-WeekendService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-WeekendService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-WeekendService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем репозитории (с метриками или без)
	var (
		quotaRepository *quotaRepo.Repository
		orderRepository *orderRepo.Repository
	)

	// Интерфейс transaction manager-а, используемый сервисом квот
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")

		quotaRepository = quotaRepo.NewRepository(wrappedDB)
		orderRepository = orderRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		quotaRepository = quotaRepo.NewRepository(db)
		orderRepository = orderRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	quotaSvc := quotaService.NewService(quotaRepository, txMgr, log)
	ordersSvc := ordersService.NewService(orderRepository, log)

	// Создаем отсутствующие квоты из конфигурации
	defaults := quotaDefaults(cfg.Quotas)
	if err := quotaSvc.SeedDefaults(context.Background(), defaults); err != nil {
		log.Fatal("Failed to seed quota defaults: %v", err)
	}

	// Инициализируем use cases
	submitReservation := submitReservationUC.New(quotaSvc, orderRepository, log)
	cancelReservation := cancelReservationUC.New(quotaSvc, orderRepository, log)
	getAvailableDates := getAvailableDatesUC.New(quotaSvc, log)

	// Инициализируем мастера заказа выходных
	wizardSvc := wizardService.NewService(
		submitReservation,
		cancelReservation,
		getAvailableDates,
		ordersSvc,
		log,
		time.Duration(cfg.Wizard.SessionTTLMinutes)*time.Minute,
		cfg.Wizard.DateWindowDays,
	)

	// Инициализируем handlers
	processMessage := processMessageHandler.NewHandler(wizardSvc, log)
	availableDates := getAvailableDatesHandler.NewHandler(getAvailableDates, log)
	getOrder := getOrderHandler.NewHandler(ordersSvc, log)
	getUserOrders := getUserOrdersHandler.NewHandler(ordersSvc, log)
	cancelOrder := cancelOrderHandler.NewHandler(cancelReservation, log)
	updateOrderStatus := updateOrderStatusHandler.NewHandler(ordersSvc, log)
	listOrders := listOrdersHandler.NewHandler(ordersSvc, log)
	getQuotaStats := getQuotaStatsHandler.NewHandler(quotaSvc, log)
	updateQuota := updateQuotaHandler.NewHandler(quotaSvc, log)
	resetQuotas := resetQuotasHandler.NewHandler(quotaSvc, defaults, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Входящие сообщения мессенджера (с rate limit per-user)
	messengerLimiter := middleware.NewRateLimiter(cfg.Wizard.MessengerRateLimit, cfg.Wizard.MessengerRateBurst)
	api.Handle("/messenger/message",
		messengerLimiter.Middleware(http.HandlerFunc(processMessage.Handle))).Methods(http.MethodPost)

	// Даты со свободными местами
	api.HandleFunc("/available-dates", availableDates.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Заказы ---
	// Получение заказа по ID
	protected.HandleFunc("/orders/{orderId}", getOrder.Handle).Methods(http.MethodGet)

	// Отмена заказа
	protected.HandleFunc("/orders/{orderId}/cancel", cancelOrder.Handle).Methods(http.MethodPost)

	// История заказов пользователя
	protected.HandleFunc("/users/{userId}/orders", getUserOrders.Handle).Methods(http.MethodGet)

	// --- Админ-панель ---
	// Изменение статуса заказа
	protected.HandleFunc("/orders/{orderId}/status", updateOrderStatus.Handle).Methods(http.MethodPatch)

	// Список всех заказов
	protected.HandleFunc("/admin/orders", listOrders.Handle).Methods(http.MethodGet)

	// Статистика квот
	protected.HandleFunc("/admin/quotas/stats", getQuotaStats.Handle).Methods(http.MethodGet)

	// Сброс квот к значениям по умолчанию
	protected.HandleFunc("/admin/quotas/reset", resetQuotas.Handle).Methods(http.MethodPost)

	// Изменение дневной квоты
	protected.HandleFunc("/admin/quotas/{location}/{role}", updateQuota.Handle).Methods(http.MethodPut)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}

// quotaDefaults конвертирует квоты из конфигурации в формат сервиса
func quotaDefaults(quotas map[string]config.RoleQuotas) map[string]map[string]int {
	defaults := make(map[string]map[string]int, len(quotas))
	for location, roles := range quotas {
		defaults[location] = make(map[string]int, len(roles))
		for role, quota := range roles {
			defaults[location][role] = quota
		}
	}
	return defaults
}
