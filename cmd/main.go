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
	"github.com/redis/go-redis/v9"

	addDateRangeHandler "github.com/m04kA/SMC-DeliveryDates/internal/api/handlers/add_date_range"
	checkAvailabilityHandler "github.com/m04kA/SMC-DeliveryDates/internal/api/handlers/check_availability"
	deliveryDateHandler "github.com/m04kA/SMC-DeliveryDates/internal/api/handlers/delivery_date"
	editDateRangeHandler "github.com/m04kA/SMC-DeliveryDates/internal/api/handlers/edit_date_range"
	getBlockedDatesHandler "github.com/m04kA/SMC-DeliveryDates/internal/api/handlers/get_blocked_dates"
	getDisabledDatesHandler "github.com/m04kA/SMC-DeliveryDates/internal/api/handlers/get_disabled_dates"
	getShopSettingsHandler "github.com/m04kA/SMC-DeliveryDates/internal/api/handlers/get_shop_settings"
	installShopHandler "github.com/m04kA/SMC-DeliveryDates/internal/api/handlers/install_shop"
	interceptCheckoutHandler "github.com/m04kA/SMC-DeliveryDates/internal/api/handlers/intercept_checkout"
	removeDateRangeHandler "github.com/m04kA/SMC-DeliveryDates/internal/api/handlers/remove_date_range"
	toggleBlockedDayHandler "github.com/m04kA/SMC-DeliveryDates/internal/api/handlers/toggle_blocked_day"
	"github.com/m04kA/SMC-DeliveryDates/internal/api/middleware"
	"github.com/m04kA/SMC-DeliveryDates/internal/config"
	metafieldsRepo "github.com/m04kA/SMC-DeliveryDates/internal/infra/storage/metafields"
	selectedDateRepo "github.com/m04kA/SMC-DeliveryDates/internal/infra/storage/selected_date"
	datesService "github.com/m04kA/SMC-DeliveryDates/internal/service/dates"
	weekdaysService "github.com/m04kA/SMC-DeliveryDates/internal/service/weekdays"
	deliveryGateUC "github.com/m04kA/SMC-DeliveryDates/internal/usecase/delivery_gate"
	getDisabledDatesUC "github.com/m04kA/SMC-DeliveryDates/internal/usecase/get_disabled_dates"
	installShopUC "github.com/m04kA/SMC-DeliveryDates/internal/usecase/install_shop"
	"github.com/m04kA/SMC-DeliveryDates/pkg/dbmetrics"
	"github.com/m04kA/SMC-DeliveryDates/pkg/logger"
	"github.com/m04kA/SMC-DeliveryDates/pkg/metrics"
)

func main() {
	configPath := "config.toml"
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		configPath = path
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
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

	log.Info("Starting SMC-DeliveryDates...")
	log.Info("Configuration loaded from %s", configPath)

	// Метрики (nil, если выключены; методы Observe* безопасны для nil)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к PostgreSQL (конфигурация магазинов)
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Подключаемся к Redis (выбранные даты доставки)
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer rdb.Close()

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		pingCancel()
		log.Fatal("Failed to ping redis at %s: %v", cfg.Redis.Addr, err)
	}
	pingCancel()
	log.Info("Successfully connected to redis (addr=%s, db=%d)", cfg.Redis.Addr, cfg.Redis.DB)

	// Репозитории (с метриками или без)
	var metafieldsRepository *metafieldsRepo.Repository
	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		metafieldsRepository = metafieldsRepo.NewRepository(wrappedDB)
		log.Info("Database metrics collection started")
	} else {
		metafieldsRepository = metafieldsRepo.NewRepository(db)
	}

	selectedDateRepository := selectedDateRepo.NewRepository(
		rdb,
		time.Duration(cfg.Redis.SelectionTTL)*time.Second,
	)

	// Сервисы
	weekdaysSvc := weekdaysService.NewService(metafieldsRepository, metricsCollector, log)
	datesSvc := datesService.NewService(
		metafieldsRepository,
		metricsCollector,
		time.Duration(cfg.Editor.SessionTTL)*time.Second,
		log,
	)

	// Use cases
	getDisabledDatesUseCase := getDisabledDatesUC.NewUseCase(metafieldsRepository, log)
	deliveryGateUseCase := deliveryGateUC.NewUseCase(
		selectedDateRepository,
		getDisabledDatesUseCase,
		metricsCollector,
		log,
	)
	installShopUseCase := installShopUC.NewUseCase(metafieldsRepository, log)

	// Handlers
	installShop := installShopHandler.NewHandler(installShopUseCase, log)
	getShopSettings := getShopSettingsHandler.NewHandler(weekdaysSvc, datesSvc, log)
	toggleBlockedDay := toggleBlockedDayHandler.NewHandler(weekdaysSvc, log)
	addDateRange := addDateRangeHandler.NewHandler(datesSvc, log)
	editDateRange := editDateRangeHandler.NewHandler(datesSvc, log)
	removeDateRange := removeDateRangeHandler.NewHandler(datesSvc, log)
	getBlockedDates := getBlockedDatesHandler.NewHandler(datesSvc, log)
	getDisabledDates := getDisabledDatesHandler.NewHandler(getDisabledDatesUseCase, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(getDisabledDatesUseCase, log)
	deliveryDate := deliveryDateHandler.NewHandler(deliveryGateUseCase, log)
	interceptCheckout := interceptCheckoutHandler.NewHandler(deliveryGateUseCase, log)

	// Роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (календарь и checkout покупателя)
	// ============================================================

	api.HandleFunc("/shops/{shopId}/disabled-dates", getDisabledDates.Handle).Methods(http.MethodGet)
	api.HandleFunc("/shops/{shopId}/availability", checkAvailability.Handle).Methods(http.MethodGet)

	api.HandleFunc("/shops/{shopId}/checkouts/{checkoutToken}/delivery-date",
		deliveryDate.HandleSet).Methods(http.MethodPut)
	api.HandleFunc("/shops/{shopId}/checkouts/{checkoutToken}/delivery-date",
		deliveryDate.HandleClear).Methods(http.MethodDelete)

	api.HandleFunc("/checkouts/{checkoutToken}/intercept", interceptCheckout.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (админка мерчанта, требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(log))

	protected.HandleFunc("/shops/{shopId}/install", installShop.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/shops/{shopId}/settings", getShopSettings.Handle).Methods(http.MethodGet)

	// --- Дни недели ---
	protected.HandleFunc("/shops/{shopId}/blocked-days/{day}/toggle", toggleBlockedDay.Handle).Methods(http.MethodPost)

	// --- Диапазоны дат ---
	// Маршруты removal объявлены раньше /dates/{index}
	protected.HandleFunc("/shops/{shopId}/dates/removal/confirm", removeDateRange.HandleConfirm).Methods(http.MethodPost)
	protected.HandleFunc("/shops/{shopId}/dates/removal", removeDateRange.HandleCancel).Methods(http.MethodDelete)
	protected.HandleFunc("/shops/{shopId}/dates/{index:[0-9]+}/removal", removeDateRange.HandleRequest).Methods(http.MethodPost)
	protected.HandleFunc("/shops/{shopId}/dates/{index:[0-9]+}", editDateRange.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/shops/{shopId}/dates", addDateRange.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/shops/{shopId}/blocked-dates", getBlockedDates.Handle).Methods(http.MethodGet)

	// HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

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

	log.Info("Server stopped")
}
