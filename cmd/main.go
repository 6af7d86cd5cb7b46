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

	autoForwardHandler "github.com/m04kA/SMC-DeskBooking/internal/api/handlers/auto_forward"
	buildConflictMapHandler "github.com/m04kA/SMC-DeskBooking/internal/api/handlers/build_conflict_map"
	cancelReservationHandler "github.com/m04kA/SMC-DeskBooking/internal/api/handlers/cancel_reservation"
	createReservationHandler "github.com/m04kA/SMC-DeskBooking/internal/api/handlers/create_reservation"
	getOrganizationSettingsHandler "github.com/m04kA/SMC-DeskBooking/internal/api/handlers/get_organization_settings"
	getReservationHandler "github.com/m04kA/SMC-DeskBooking/internal/api/handlers/get_reservation"
	getReservationDaysHandler "github.com/m04kA/SMC-DeskBooking/internal/api/handlers/get_reservation_days"
	removeReservationDayHandler "github.com/m04kA/SMC-DeskBooking/internal/api/handlers/remove_reservation_day"
	updateOrganizationSettingsHandler "github.com/m04kA/SMC-DeskBooking/internal/api/handlers/update_organization_settings"
	"github.com/m04kA/SMC-DeskBooking/internal/api/middleware"
	"github.com/m04kA/SMC-DeskBooking/internal/config"
	membershipCache "github.com/m04kA/SMC-DeskBooking/internal/infra/cache/membership"
	catalogRepo "github.com/m04kA/SMC-DeskBooking/internal/infra/storage/catalog"
	reservationRepo "github.com/m04kA/SMC-DeskBooking/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-DeskBooking/internal/integrations/events"
	membershipServiceClient "github.com/m04kA/SMC-DeskBooking/internal/integrations/membershipservice"
	organizationsService "github.com/m04kA/SMC-DeskBooking/internal/service/organizations"
	reservationsService "github.com/m04kA/SMC-DeskBooking/internal/service/reservations"
	autoForwardUC "github.com/m04kA/SMC-DeskBooking/internal/usecase/auto_forward"
	buildConflictMapUC "github.com/m04kA/SMC-DeskBooking/internal/usecase/build_conflict_map"
	createReservationUC "github.com/m04kA/SMC-DeskBooking/internal/usecase/create_reservation"
	getReservationDaysUC "github.com/m04kA/SMC-DeskBooking/internal/usecase/get_reservation_days"
	"github.com/m04kA/SMC-DeskBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-DeskBooking/pkg/logger"
	"github.com/m04kA/SMC-DeskBooking/pkg/metrics"
	"github.com/m04kA/SMC-DeskBooking/pkg/txmanager"
)

func main() {
	configPath := os.Getenv("DESK_CONFIG_PATH")
	if configPath == "" {
		configPath = "config.toml"
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

	log.Info("Starting SMC-DeskBooking...")
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены).
	// Методы *metrics.Metrics безопасны для nil, поэтому usecase получают коллектор в любом случае.
	var (
		metricsCollector *metrics.Metrics
		dbRecorder       dbmetrics.Recorder
	)
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		dbRecorder = metricsCollector
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

	// Без метрик обёртка просто проксирует запросы
	wrappedDB := dbmetrics.WrapWithDefault(db, dbRecorder, stopMetricsCh)

	// Инициализируем интеграционных клиентов
	httpMembershipClient := membershipServiceClient.NewClient(
		cfg.MembershipService.URL,
		time.Duration(cfg.MembershipService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (MembershipService=%s timeout=%ds)",
		cfg.MembershipService.URL, cfg.MembershipService.Timeout)

	// Членства кэшируются в Redis (если включен и доступен)
	type MembershipClient interface {
		GetMemberships(ctx context.Context, userID string) ([]membershipServiceClient.Membership, error)
		GetMembershipInOrganization(ctx context.Context, userID, organizationID string) (*membershipServiceClient.Membership, error)
	}
	var membershipClient MembershipClient = httpMembershipClient

	if cfg.Redis.Enabled {
		redisClient, err := membershipCache.NewRedisClient(context.Background(), cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Warn("Redis unavailable at %s, membership cache disabled: %v", cfg.Redis.Addr, err)
		} else {
			defer redisClient.Close()
			membershipClient = membershipCache.NewCachedClient(
				httpMembershipClient,
				membershipCache.NewRedisStore(redisClient),
				time.Duration(cfg.Redis.MembershipTTL)*time.Second,
				log,
			)
			log.Info("Membership cache enabled (redis=%s ttl=%ds)", cfg.Redis.Addr, cfg.Redis.MembershipTTL)
		}
	}

	// События бронирований публикуются в Kafka (если заданы брокеры)
	type EventPublisher interface {
		Publish(ctx context.Context, event events.Event) error
	}
	var publisher EventPublisher = events.NopPublisher{}

	if brokers := events.SplitBrokers(cfg.Kafka.Brokers); len(brokers) > 0 {
		kafkaPublisher := events.NewKafkaPublisher(brokers, cfg.Kafka.Topic, log)
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
		log.Info("Reservation events enabled (brokers=%v topic=%s)", brokers, cfg.Kafka.Topic)
	} else {
		log.Warn("Kafka brokers not configured, reservation events disabled")
	}

	// Инициализируем репозитории
	catalogRepository := catalogRepo.NewRepository(wrappedDB)
	reservationRepository := reservationRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем сервисы
	reservationsSvc := reservationsService.NewService(reservationRepository, txMgr, publisher, log)
	organizationsSvc := organizationsService.NewService(catalogRepository, membershipClient, log)

	// Инициализируем use cases
	buildConflictMapUseCase := buildConflictMapUC.NewUseCase(
		reservationRepository,
		catalogRepository,
		membershipClient,
		metricsCollector,
		log,
	)

	autoForwardUseCase := autoForwardUC.NewUseCase(
		catalogRepository,
		membershipClient,
		metricsCollector,
		log,
	)

	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		catalogRepository,
		membershipClient,
		txMgr,
		publisher,
		metricsCollector,
		log,
	)

	getReservationDaysUseCase := getReservationDaysUC.NewUseCase(
		reservationRepository,
		membershipClient,
		metricsCollector,
		log,
	)

	// Инициализируем handlers
	buildConflictMap := buildConflictMapHandler.NewHandler(buildConflictMapUseCase, log)
	autoForward := autoForwardHandler.NewHandler(autoForwardUseCase, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getReservationDays := getReservationDaysHandler.NewHandler(getReservationDaysUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationsSvc, log)
	removeReservationDay := removeReservationDayHandler.NewHandler(reservationsSvc, log)
	getOrganizationSettings := getOrganizationSettingsHandler.NewHandler(organizationsSvc, log)
	updateOrganizationSettings := updateOrganizationSettingsHandler.NewHandler(organizationsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Все маршруты API требуют X-User-ID header
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Auth)

	// --- Каталог ---
	// Автовыбор организации/локации/пространства
	api.HandleFunc("/selection", autoForward.Handle).Methods(http.MethodGet)

	// Карта занятости столов на выбранные дни и время
	api.HandleFunc("/desks/conflicts", buildConflictMap.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	api.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	api.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reservations/{reservationId}", cancelReservation.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/reservations/{reservationId}/time-ranges/{timeRangeId}",
		removeReservationDay.Handle).Methods(http.MethodDelete)

	// Предстоящие дни бронирований (mine=true - только свои)
	api.HandleFunc("/reservation-days", getReservationDays.Handle).Methods(http.MethodGet)

	// --- Настройки организации ---
	api.HandleFunc("/organizations/{organizationId}/settings", getOrganizationSettings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/organizations/{organizationId}/settings", updateOrganizationSettings.Handle).Methods(http.MethodPut)

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
	close(stopMetricsCh)

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
