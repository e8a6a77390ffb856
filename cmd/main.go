package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	deleteSelectionHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/delete_selection"
	exportICSHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/export_ics"
	exportLinkHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/export_link"
	getCatalogHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/get_catalog"
	getMonthGridHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/get_month_grid"
	getSelectionHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/get_selection"
	getTimeSlotsHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/get_time_slots"
	saveSelectionHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/save_selection"
	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
	"github.com/m04kA/SMC-SalonBooking/internal/calendar"
	"github.com/m04kA/SMC-SalonBooking/internal/config"
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	selectionRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/selection"
	catalogService "github.com/m04kA/SMC-SalonBooking/internal/service/catalog"
	selectionService "github.com/m04kA/SMC-SalonBooking/internal/service/selection"
	exportBookingUC "github.com/m04kA/SMC-SalonBooking/internal/usecase/export_booking"
	getMonthGridUC "github.com/m04kA/SMC-SalonBooking/internal/usecase/get_month_grid"
	getTimeSlotsUC "github.com/m04kA/SMC-SalonBooking/internal/usecase/get_time_slots"
	"github.com/m04kA/SMC-SalonBooking/migrations"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
	"github.com/m04kA/SMC-SalonBooking/pkg/metrics"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to TOML config")
	envPath := flag.String("env", ".env", "path to .env file")
	flag.Parse()

	// Подтягиваем .env до чтения конфигурации, переменные окружения процесса важнее
	if err := config.LoadDotEnv(*envPath); err != nil {
		fmt.Printf("Failed to load env file: %v\n", err)
		os.Exit(1)
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(*configPath)
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

	log.Info("Starting SMC-SalonBooking...")
	log.Info("Configuration loaded from %s", *configPath)

	location, err := cfg.Salon.LoadLocation()
	if err != nil {
		log.Fatal("Failed to load salon timezone %q: %v", cfg.Salon.Timezone, err)
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Каталог услуг и мастеров из конфигурации
	catalogSvc := catalogService.NewService(toDomainServices(cfg.Services), toDomainStylists(cfg.Stylists), log)
	log.Info("Catalog loaded: services=%d, stylists=%d", len(cfg.Services), len(cfg.Stylists))

	// Инициализируем use cases
	getMonthGridUseCase := getMonthGridUC.NewUseCase(location, log)

	getTimeSlotsUseCase, err := getTimeSlotsUC.NewUseCase(domain.SlotsConfig{
		StartHour:     cfg.Slots.StartHour,
		EndHour:       cfg.Slots.EndHour,
		StepMinutes:   cfg.Slots.StepMinutes,
		ExcludedHours: cfg.Slots.ExcludedHours,
	}, log)
	if err != nil {
		log.Fatal("Invalid slots configuration: %v", err)
	}

	exporter := calendar.NewExporter(cfg.Salon.ProductID, cfg.Salon.ProviderURL)

	exportBookingUseCase := exportBookingUC.NewUseCase(
		catalogSvc,
		exporter,
		cfg.Salon.Location,
		location,
		metricsCollector,
		log,
	)

	// Инициализируем handlers
	getCatalog := getCatalogHandler.NewHandler(catalogSvc, log)
	getMonthGrid := getMonthGridHandler.NewHandler(getMonthGridUseCase, log)
	getTimeSlots := getTimeSlotsHandler.NewHandler(getTimeSlotsUseCase, log)
	exportICS := exportICSHandler.NewHandler(exportBookingUseCase, log)
	exportLink := exportLinkHandler.NewHandler(exportBookingUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestLogger(log))

	// Добавляем metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	// Каталог услуг и мастеров
	api.HandleFunc("/catalog", getCatalog.Handle).Methods(http.MethodGet)

	// Сетка месяца
	api.HandleFunc("/calendar/month", getMonthGrid.Handle).Methods(http.MethodGet)

	// Временные слоты
	api.HandleFunc("/slots", getTimeSlots.Handle).Methods(http.MethodGet)

	// Экспорт записи в календарь
	api.HandleFunc("/export/ics", exportICS.Handle).Methods(http.MethodPost)
	api.HandleFunc("/export/link", exportLink.Handle).Methods(http.MethodPost)

	// ============================================================
	// SESSION ROUTES (требуют X-Session-ID header, только с БД)
	// ============================================================

	if cfg.Database.Enabled {
		db, err := openDatabase(cfg.Database)
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		if cfg.Database.MigrateOnStart {
			version, err := migrations.Up(db)
			if err != nil {
				log.Fatal("Failed to apply migrations: %v", err)
			}
			log.Info("Database schema is at version %d", version)
		}

		selectionSvc := selectionService.NewService(
			selectionRepo.NewRepository(db),
			catalogSvc,
			metricsCollector,
			log,
		)

		session := api.PathPrefix("").Subrouter()
		session.Use(middleware.Session)

		session.HandleFunc("/selection", saveSelectionHandler.NewHandler(selectionSvc, log).Handle).Methods(http.MethodPut)
		session.HandleFunc("/selection", getSelectionHandler.NewHandler(selectionSvc, log).Handle).Methods(http.MethodGet)
		session.HandleFunc("/selection", deleteSelectionHandler.NewHandler(selectionSvc, log).Handle).Methods(http.MethodDelete)
	} else {
		log.Warn("Database disabled, selection routes are not mounted")
	}

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

func openDatabase(cfg config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, err
	}

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func toDomainServices(items []config.ServiceConfig) []domain.SalonService {
	result := make([]domain.SalonService, len(items))
	for i, s := range items {
		result[i] = domain.SalonService{
			ID:              s.ID,
			Name:            s.Name,
			DurationMinutes: s.DurationMinutes,
			PriceEUR:        s.PriceEUR,
		}
	}
	return result
}

func toDomainStylists(items []config.StylistConfig) []domain.Stylist {
	result := make([]domain.Stylist, len(items))
	for i, s := range items {
		result[i] = domain.Stylist{
			ID:        s.ID,
			Name:      s.Name,
			AvatarURL: s.AvatarURL,
		}
	}
	return result
}
