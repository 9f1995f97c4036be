package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"doctorportal/config"
	"doctorportal/database"
	appointmentRepo "doctorportal/database/repository/appointment"
	bookingRepo "doctorportal/database/repository/booking"
	doctorRepo "doctorportal/database/repository/doctor"
	"doctorportal/database/repository/memory"
	userRepoPkg "doctorportal/database/repository/user"
	"doctorportal/handlers"
	"doctorportal/middleware"
	"doctorportal/routes"
	"doctorportal/services/auth"
	"doctorportal/services/availability"
	"doctorportal/services/booking"
	"doctorportal/services/doctor"
	"doctorportal/services/payment"
	"doctorportal/services/user"
	"doctorportal/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type stores struct {
	users    userRepoPkg.UserRepository
	catalog  appointmentRepo.OptionRepository
	bookings bookingRepo.BookingRepository
	doctors  doctorRepo.DoctorRepository
}

func mongoStores(client *mongo.Client, cfg config.Config) (*stores, error) {
	db := client.Database(cfg.DBName)

	users, err := userRepoPkg.NewMongoUserRepo(db)
	if err != nil {
		return nil, err
	}
	catalog, err := appointmentRepo.NewMongoOptionRepo(db)
	if err != nil {
		return nil, err
	}
	bookings, err := bookingRepo.NewMongoBookingRepo(db, cfg.BookingUniqueIndex)
	if err != nil {
		return nil, err
	}
	doctors, err := doctorRepo.NewMongoDoctorRepo(db)
	if err != nil {
		return nil, err
	}
	return &stores{users: users, catalog: catalog, bookings: bookings, doctors: doctors}, nil
}

func memoryStores(cfg config.Config) *stores {
	return &stores{
		users:    memory.NewUserStore(),
		catalog:  memory.NewCatalogStore(database.DefaultCatalog()...),
		bookings: memory.NewBookingStore(cfg.BookingUniqueIndex),
		doctors:  memory.NewDoctorStore(),
	}
}

func catalogCache(cfg config.Config, rdb *redis.Client, logger *zap.Logger) appointmentRepo.CatalogCache {
	if rdb != nil {
		return appointmentRepo.NewRedisCatalogCache(rdb, cfg.CatalogCacheTTL, logger)
	}
	return appointmentRepo.NewLRUCatalogCache(cfg.CatalogCacheSize, cfg.CatalogCacheTTL)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("main: failed to load config: %v", err)
	}
	logger, err := utils.NewLogger(cfg)
	if err != nil {
		log.Fatalf("main: failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	health := &utils.HealthChecker{}

	var st *stores
	switch cfg.Store {
	case "memory":
		logger.Warn("main: using in-memory stores, data is not persisted")
		st = memoryStores(cfg)
	default:
		client, err := database.Connect(context.Background(), cfg.DatabaseURL)
		if err != nil {
			logger.Sugar().Fatalf("main: %v", err)
		}
		defer client.Disconnect(context.Background())
		logger.Sugar().Infof("Connected to MongoDB database %s", cfg.DBName)
		health.Mongo = client

		st, err = mongoStores(client, cfg)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize repositories: %v", err)
		}
	}

	rdb, err := utils.NewCacheClient(cfg)
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}
	if rdb != nil {
		defer rdb.Close()
		health.Redis = rdb
	}
	catalog := appointmentRepo.NewCachedOptionRepo(st.catalog, catalogCache(cfg, rdb, logger))

	// services.
	userService := &user.DefaultUserService{Repo: st.users}
	doctorService := &doctor.DefaultDoctorService{Repo: st.doctors}
	tokens := auth.NewTokenIssuer(cfg.JWTSecret, st.users)
	calculator := availability.NewCalculator(catalog, st.bookings)
	registrar := booking.NewRegistrar(st.bookings, catalog, cfg.BookingValidateSlots, logger)
	payments := payment.NewStripePaymentService(cfg.StripeKey, logger)

	guards := middleware.NewGuards(tokens, st.users, logger)

	handlerBundle := &handlers.HandlerBundle{
		Appointments: handlers.NewAppointmentHandler(calculator, logger),
		Bookings:     handlers.NewBookingHandler(registrar, logger),
		Users:        handlers.NewUserHandler(userService, tokens, logger),
		Doctors:      handlers.NewDoctorHandler(doctorService, logger),
		Payments:     handlers.NewPaymentHandler(payments, logger),
		Health:       health,
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(utils.ErrorHandler(logger))
	router.Use(middleware.RequestLogger(logger))
	routes.RegisterRoutes(router, handlerBundle, guards)

	srv := &http.Server{
		Addr:    "0.0.0.0:" + cfg.AppPort,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
