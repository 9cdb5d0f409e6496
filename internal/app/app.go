package app

import (
	"github.com/gin-gonic/gin"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/eventhotel/booking-api/config"
	"github.com/eventhotel/booking-api/internal/cache"
	"github.com/eventhotel/booking-api/internal/database"
	"github.com/eventhotel/booking-api/internal/handler"
	"github.com/eventhotel/booking-api/internal/middleware"
	"github.com/eventhotel/booking-api/internal/mq"
	"github.com/eventhotel/booking-api/internal/repository"
	"github.com/eventhotel/booking-api/internal/service/domain"
	"github.com/eventhotel/booking-api/internal/service/workflow"
)

type App struct {
	Config *config.Config

	DB     *gorm.DB
	Cache  *cache.RedisCache
	Logger *zap.Logger
	MQConn *amqp.Connection

	EnrollmentRepo repository.EnrollmentRepo
	TicketRepo     repository.TicketRepo
	BookingRepo    repository.BookingRepo
	RoomRepo       repository.RoomRepo

	EligibilityService domain.EligibilityService
	BookingService     domain.BookingService

	BookingWorkflow *workflow.BookingWorkflow
}

func New(config *config.Config, db *gorm.DB, cache *cache.RedisCache, mqConn *amqp.Connection, logger *zap.Logger) *App {
	enrollmentRepo := repository.NewEnrollmentRepoGorm(db)
	ticketRepo := repository.NewTicketRepoGorm(db)
	bookingRepo := repository.NewBookingRepoGorm(db)
	roomRepo := repository.NewRoomRepoGorm(db)

	eligibilityService := domain.NewEligibilityService(enrollmentRepo, ticketRepo)
	bookingService := domain.NewBookingService(db, eligibilityService, bookingRepo, roomRepo)

	bookingWorkflow := workflow.NewBookingWorkflow(bookingService, mqConn, logger)

	return &App{
		Config:             config,
		DB:                 db,
		Cache:              cache,
		Logger:             logger,
		MQConn:             mqConn,
		EnrollmentRepo:     enrollmentRepo,
		TicketRepo:         ticketRepo,
		BookingRepo:        bookingRepo,
		RoomRepo:           roomRepo,
		EligibilityService: eligibilityService,
		BookingService:     bookingService,
		BookingWorkflow:    bookingWorkflow,
	}
}

func (app *App) Init() error {
	if err := database.Migrate(app.DB); err != nil {
		return err
	}

	if app.MQConn != nil {
		if err := mq.InitQueues(app.MQConn); err != nil {
			return err
		}
	}

	return nil
}

// Router builds the gin engine with the auth gate and rate limiter in
// front of the booking routes.
func (app *App) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	rateLimit := middleware.NewTokenBucket(app.Config.RateLimit, app.Cache.Client)
	auth := middleware.Auth(app.Config.JWTSecret, app.Cache)

	bookingHandler := handler.NewBookingHandler(app.BookingWorkflow, app.Logger)
	handler.RegisterRoutes(r, bookingHandler, rateLimit, auth)

	return r
}

func (app *App) Close() error {
	sqlDB, err := app.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
