package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"skillbridge/config"
	"skillbridge/cron"
	"skillbridge/database"
	mentorRepo "skillbridge/database/repository/mentor"
	sessionRepo "skillbridge/database/repository/session"
	"skillbridge/handlers"
	"skillbridge/middleware"
	"skillbridge/routes"
	"skillbridge/services/booking"
	"skillbridge/services/directory"
	"skillbridge/services/notification"
	"skillbridge/services/tasks"
	"skillbridge/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger := utils.GetLogger()
	defer logger.Sync() //nolint:errcheck

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// repositories.
	var (
		mentors     mentorRepo.MentorRepository
		sessions    sessionRepo.SessionRepository
		mongoClient *mongo.Client
	)
	switch cfg.StoreBackend {
	case "mongo":
		database.InitDB()
		mongoClient = database.MongoClient
		mongoMentors := mentorRepo.NewMongoMentorRepo()
		mongoSessions := sessionRepo.NewMongoSessionRepo()
		if err := mongoMentors.EnsureIndexes(); err != nil {
			logger.Fatal("main: failed to create mentor indexes", zap.Error(err))
		}
		if err := mongoSessions.EnsureIndexes(); err != nil {
			logger.Fatal("main: failed to create session indexes", zap.Error(err))
		}
		mentors, sessions = mongoMentors, mongoSessions
	default:
		mentors = mentorRepo.NewMemoryMentorRepo()
		sessions = sessionRepo.NewMemorySessionRepo()
	}
	if cfg.SeedMentors {
		n, err := mentorRepo.Seed(ctx, mentors, mentorRepo.DefaultMentors())
		if err != nil {
			logger.Fatal("main: failed to seed mentors", zap.Error(err))
		}
		logger.Info("Mentor directory ready", zap.Int("seeded", n))
	}

	loc := cfg.Location()
	clock := func() time.Time { return time.Now().In(loc) }

	// services.
	dir := directory.NewDirectory(mentors, logger)
	store := booking.NewSessionStore(sessions, dir, logger)
	store.Clock = clock

	redisClients := map[string]*redis.Client{}
	var drafts booking.DraftStore
	switch cfg.DraftBackend {
	case "redis":
		client := utils.GetDraftCacheClient()
		redisClients["drafts"] = client
		drafts = booking.NewRedisDraftStore(client, cfg.DraftTTL())
	default:
		drafts = booking.NewMemoryDraftStore(cfg.DraftTTL())
	}

	// Direct delivery: log always, FCM when credentials are configured.
	delivery := notification.MultiSink{notification.NewLogSink(logger)}
	if cfg.FirebaseCredentialsFile != "" {
		fcm, err := utils.FirebaseInit(ctx, cfg.FirebaseCredentialsFile)
		if err != nil {
			logger.Fatal("main: failed to initialize firebase", zap.Error(err))
		}
		delivery = append(delivery, notification.NewFCMSink(fcm, logger))
	}

	var (
		sink   notification.Sink = delivery
		queue  *asynq.Client
		worker *asynq.Server
	)
	if cfg.QueueEnabled {
		redisOpt := utils.QueueRedisOpt()
		asynqOpt := asynq.RedisClientOpt{Addr: redisOpt.Addr, Password: redisOpt.Password, DB: redisOpt.DB}
		redisClients["queue"] = redis.NewClient(redisOpt)

		queue = asynq.NewClient(asynqOpt)
		sink = notification.NewQueueSink(queue, logger)
		store.Reminders = &tasks.ReminderScheduler{
			Queue:    queue,
			Lead:     cfg.ReminderLead(),
			Location: loc,
			Now:      clock,
			Logger:   logger,
		}
		worker = cron.InitNotificationWorker(asynqOpt, cron.NewServeMux(delivery, store, dir, logger), logger)
	}

	bookingService := &booking.DefaultBookingSessionService{
		Mentors: dir,
		Store:   store,
		Drafts:  drafts,
		Sink:    sink,
		Clock:   clock,
		Logger:  logger,
	}

	utils.StartHealthMonitor(ctx, time.Minute, redisClients, mongoClient)

	// Create the Gin router.
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin))

	handlerBundle := handlers.NewHandlerBundle(
		handlers.NewMentorHandler(dir, store),
		handlers.NewBookingHandler(bookingService),
		handlers.NewSessionHandler(store),
	)
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
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
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("main: server forced to shutdown", zap.Error(err))
	}
	if worker != nil {
		worker.Shutdown()
	}
	if queue != nil {
		if err := queue.Close(); err != nil {
			logger.Warn("main: failed to close task queue client", zap.Error(err))
		}
	}
	for name, client := range redisClients {
		if err := client.Close(); err != nil {
			logger.Warn("main: failed to close redis client", zap.String("client", name), zap.Error(err))
		}
	}
	if err := database.CloseDB(shutdownCtx); err != nil {
		logger.Warn("main: failed to disconnect from MongoDB", zap.Error(err))
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
