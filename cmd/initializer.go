package main

import (
	"database/sql"
	"log"

	"firebase.google.com/go/messaging"
	"github.com/redis/go-redis/v9"

	"github.com/dinakar-24/sse-pay/internal/config"
	"github.com/dinakar-24/sse-pay/internal/handlers"
	"github.com/dinakar-24/sse-pay/internal/razorpay"
	"github.com/dinakar-24/sse-pay/internal/repositories"
	"github.com/dinakar-24/sse-pay/internal/services"
	"github.com/dinakar-24/sse-pay/utils"
)

type application struct {
	errorLog *log.Logger
	infoLog  *log.Logger
	db       *sql.DB
	rdb      *redis.Client

	tokenManager *utils.Manager
	authService  *services.AuthService

	paymentRepo *repositories.PaymentRepository
	sessionRepo *repositories.SessionRepository

	authHandler         *handlers.AuthHandler
	adminHandler        *handlers.AdminHandler
	studentHandler      *handlers.StudentHandler
	eventHandler        *handlers.EventHandler
	dueHandler          *handlers.DueHandler
	paymentHandler      *handlers.PaymentHandler
	complaintHandler    *handlers.ComplaintHandler
	libraryHandler      *handlers.LibraryHandler
	collegeHandler      *handlers.CollegeHandler
	notificationHandler *handlers.NotificationHandler
}

func initializeApp(db *sql.DB, rdb *redis.Client, msgClient *messaging.Client, gateway *razorpay.Client, cfg config.Config, secrets config.Secrets, errorLog, infoLog *log.Logger) (*application, error) {
	tokenManager, err := utils.NewManager(secrets.JWTSigningKey)
	if err != nil {
		return nil, err
	}

	// Repositories
	studentRepo := repositories.StudentRepository{DB: db}
	adminRepo := repositories.AdminRepository{DB: db}
	eventRepo := repositories.EventRepository{DB: db}
	dueRepo := repositories.DueRepository{DB: db}
	paymentRepo := repositories.PaymentRepository{DB: db}
	complaintRepo := repositories.ComplaintRepository{DB: db}
	bookRepo := repositories.LibraryBookRepository{DB: db}
	collegeRepo := repositories.CollegeInfoRepository{DB: db}
	sessionRepo := repositories.SessionRepository{DB: db}
	tokenRepo := repositories.DeviceTokenRepository{DB: db}

	// Services
	authService := &services.AuthService{
		StudentRepo:  &studentRepo,
		AdminRepo:    &adminRepo,
		SessionRepo:  &sessionRepo,
		TokenManager: tokenManager,
		RDB:          rdb,
	}
	studentService := &services.StudentService{StudentRepo: &studentRepo}
	eventService := &services.EventService{EventRepo: &eventRepo, DueRepo: &dueRepo}
	dueService := &services.DueService{DueRepo: &dueRepo}
	complaintService := &services.ComplaintService{ComplaintRepo: &complaintRepo, DueRepo: &dueRepo}
	libraryService := &services.LibraryService{BookRepo: &bookRepo, DueRepo: &dueRepo}
	collegeService := &services.CollegeService{CollegeRepo: &collegeRepo}
	notificationService := &services.NotificationService{
		Client:    msgClient,
		TokenRepo: &tokenRepo,
		InfoLog:   infoLog,
		ErrorLog:  errorLog,
	}
	paymentService := &services.PaymentService{
		Dues:     &dueRepo,
		Payments: &paymentRepo,
		Gateway:  gateway,
		Locker:   &services.RedisDueLocker{RDB: rdb},
		Notifier: notificationService,
		Currency: cfg.Razorpay.Currency,
		ErrorLog: errorLog,
	}

	return &application{
		errorLog: errorLog,
		infoLog:  infoLog,
		db:       db,
		rdb:      rdb,

		tokenManager: tokenManager,
		authService:  authService,

		paymentRepo: &paymentRepo,
		sessionRepo: &sessionRepo,

		authHandler:         &handlers.AuthHandler{Service: authService},
		adminHandler:        &handlers.AdminHandler{AdminRepo: &adminRepo},
		studentHandler:      &handlers.StudentHandler{Service: studentService, Dues: dueService},
		eventHandler:        &handlers.EventHandler{Service: eventService},
		dueHandler:          &handlers.DueHandler{Service: dueService},
		paymentHandler:      &handlers.PaymentHandler{Service: paymentService, PaymentRepo: &paymentRepo},
		complaintHandler:    &handlers.ComplaintHandler{Service: complaintService},
		libraryHandler:      &handlers.LibraryHandler{Service: libraryService},
		collegeHandler:      &handlers.CollegeHandler{Service: collegeService},
		notificationHandler: &handlers.NotificationHandler{Service: notificationService},
	}, nil
}
