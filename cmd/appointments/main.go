package main

import (
	"context"

	appointmentshandler "beautycabin/internal/appointments/handler"
	appointmentsrepository "beautycabin/internal/appointments/repository"
	appointmentsservice "beautycabin/internal/appointments/service"
	appointmentsvalidator "beautycabin/internal/appointments/validator"
	"beautycabin/internal/auth/denylist"
	authhandler "beautycabin/internal/auth/handler"
	"beautycabin/internal/auth/hasher"
	authrepository "beautycabin/internal/auth/repository"
	authservice "beautycabin/internal/auth/service"
	"beautycabin/internal/auth/token"
	healthhandler "beautycabin/internal/health/handler"
	"beautycabin/pkg/app"
	"beautycabin/pkg/config"
	"beautycabin/pkg/kafka"
	"beautycabin/pkg/middleware"
)

const ServiceName = "appointments"

func main() {
	cfg := config.Load(ServiceName)
	if err := cfg.ValidateAuth(); err != nil {
		cfg.Log.Fatal("Invalid auth configuration", "error", err)
	}

	cfg.SetMongo()
	cfg.SetRedis()

	cfg.Log.Info("Starting Appointments service")

	revoked := initDenylist(cfg)
	authService := initAuthService(cfg, revoked)
	authenticator := middleware.NewAuthenticator(authService, cfg.Log)

	events, producer := initEventPublisher(cfg)
	appointmentService := initAppointmentService(cfg, events)

	serverApp := app.NewApplication(cfg,
		healthhandler.NewHealthHandler(mongoPinger(cfg), cfg.Log),
		authhandler.NewAuthHandler(authService, authenticator, cfg.Log),
		appointmentshandler.NewAppointmentHandler(appointmentService, authenticator, cfg.Log),
	)
	serverApp.OnShutdown(revoked.Stop)
	if producer != nil {
		serverApp.OnShutdown(func() {
			if err := producer.Close(); err != nil {
				cfg.Log.Error("Failed to close Kafka producer", "error", err)
			}
		})
	}
	serverApp.OnShutdown(cfg.GracefulShutdown)
	serverApp.Run()
}

func initDenylist(cfg *config.Config) denylist.Denylist {
	if cfg.Client.Redis != nil {
		cfg.Log.Info("Token denylist backed by Redis")
		return denylist.NewRedisDenylist(cfg.Client.Redis)
	}
	cfg.Log.Info("Token denylist kept in memory", "sweep_interval", cfg.DenylistSweepInterval)
	return denylist.NewInMemoryDenylist(cfg.DenylistSweepInterval)
}

func initAuthService(cfg *config.Config, revoked denylist.Denylist) authservice.AuthService {
	authService := authservice.NewAuthService(
		authrepository.NewMongoAdminRepository(cfg),
		hasher.NewBcryptHasher(cfg.BcryptCost),
		token.NewManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL),
		revoked,
		cfg,
	)

	cfg.Log.Info("Auth service initialized", "token_ttl", cfg.JWTTTL)
	return authService
}

func initEventPublisher(cfg *config.Config) (appointmentsservice.EventPublisher, *kafka.Producer) {
	if !cfg.KafkaEnabled() {
		cfg.Log.Info("Kafka not configured, appointment events disabled")
		return nil, nil
	}

	producer, err := kafka.NewProducer(kafka.ProducerConfig{
		Brokers: cfg.KafkaBrokers,
		Topic:   cfg.KafkaAppointmentsTopic,
	}, cfg.Log)
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka producer", "error", err)
	}
	producer.Use(kafka.LoggingMiddleware(cfg.Log))

	cfg.Log.Info("Appointment events enabled", "topic", producer.Topic())
	return kafka.NewAppointmentEventPublisher(producer, ServiceName), producer
}

func initAppointmentService(cfg *config.Config, events appointmentsservice.EventPublisher) appointmentsservice.AppointmentService {
	appointmentService := appointmentsservice.NewAppointmentService(
		appointmentsrepository.NewMongoAppointmentRepository(cfg),
		appointmentsvalidator.NewAppointmentValidator(cfg.Log),
		events,
		cfg,
	)

	cfg.Log.Info("Appointment service initialized", "database", cfg.MongoDatabaseName)
	return appointmentService
}

func mongoPinger(cfg *config.Config) healthhandler.PingFunc {
	return func(ctx context.Context) error {
		return cfg.Client.Mongo.Ping(ctx, nil)
	}
}
