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

	advanceAppointmentHandler "github.com/m04kA/BRB-SchedulingService/internal/api/handlers/advance_appointment"
	createAppointmentHandler "github.com/m04kA/BRB-SchedulingService/internal/api/handlers/create_appointment"
	getAgendaHandler "github.com/m04kA/BRB-SchedulingService/internal/api/handlers/get_agenda"
	getAppointmentHandler "github.com/m04kA/BRB-SchedulingService/internal/api/handlers/get_appointment"
	listBarbersHandler "github.com/m04kA/BRB-SchedulingService/internal/api/handlers/list_barbers"
	listServicesHandler "github.com/m04kA/BRB-SchedulingService/internal/api/handlers/list_services"
	"github.com/m04kA/BRB-SchedulingService/internal/api/middleware"
	"github.com/m04kA/BRB-SchedulingService/internal/config"
	appointmentRepo "github.com/m04kA/BRB-SchedulingService/internal/infra/storage/appointment"
	directoryRepo "github.com/m04kA/BRB-SchedulingService/internal/infra/storage/directory"
	appointmentsService "github.com/m04kA/BRB-SchedulingService/internal/service/appointments"
	directoryService "github.com/m04kA/BRB-SchedulingService/internal/service/directory"
	createAppointmentUC "github.com/m04kA/BRB-SchedulingService/internal/usecase/create_appointment"
	"github.com/m04kA/BRB-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/BRB-SchedulingService/pkg/logger"
	"github.com/m04kA/BRB-SchedulingService/pkg/metrics"
	"github.com/m04kA/BRB-SchedulingService/pkg/simpletxmanager"
	"github.com/m04kA/BRB-SchedulingService/pkg/txmanager"
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

	log.Info("Starting BRB-SchedulingService...")
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
		appointmentRepository *appointmentRepo.Repository
		directoryRepository   *directoryRepo.Repository
	)

	// Интерфейс для transaction manager (используется в use cases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		directoryRepository = directoryRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		directoryRepository = directoryRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	appointmentsSvc := appointmentsService.NewService(
		appointmentRepository,
		directoryRepository,
		cfg.Booking.Timezone,
		metricsCollector,
		log,
	)
	directorySvc := directoryService.NewService(directoryRepository, log)

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		directoryRepository,
		txMgr,
		createAppointmentUC.BusinessHours{
			OpenHour:  cfg.Booking.OpenHour,
			CloseHour: cfg.Booking.CloseHour,
			Timezone:  cfg.Booking.Timezone,
		},
		metricsCollector,
		log,
	)

	// Инициализируем handlers
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	advanceAppointment := advanceAppointmentHandler.NewHandler(appointmentsSvc, log)
	getAgenda := getAgendaHandler.NewHandler(appointmentsSvc, log)
	listBarbers := listBarbersHandler.NewHandler(directorySvc, log)
	listServices := listServicesHandler.NewHandler(directorySvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Записи ---
	// Создание записи
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Получение записи по ID
	api.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)

	// Перевод записи в терминальный статус (done / cancelled)
	api.HandleFunc("/appointments/{appointmentId}/status", advanceAppointment.Handle).Methods(http.MethodPatch)

	// --- Барберы и услуги ---
	// Агенда барбера на день
	api.HandleFunc("/barbers/{barberId}/agenda", getAgenda.Handle).Methods(http.MethodGet)

	// Справочник для витрины записи
	api.HandleFunc("/barbers", listBarbers.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)

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
