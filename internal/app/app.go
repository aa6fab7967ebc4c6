// Package app assembles the API server from configuration.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"careercompass/internal/cache"
	"careercompass/internal/catalog"
	"careercompass/internal/config"
	"careercompass/internal/logging"
	"careercompass/internal/matcher"
	"careercompass/internal/repository"
	"careercompass/internal/service"
	"careercompass/internal/session"
	"careercompass/internal/transport/rest"
	"careercompass/internal/transport/rest/middleware"
	"careercompass/internal/transport/ws"
)

const limiterIdle = 10 * time.Minute

// App is the wired server and the clients it owns
type App struct {
	Config      *config.Config
	Mongo       *mongo.Client
	Redis       *redis.Client
	Hub         *ws.Hub
	Assessments *service.AssessmentService
	Courses     *service.CourseService
	Handler     http.Handler

	limiter *middleware.RateLimiter
	stop    chan struct{}
	log     zerolog.Logger
}

// New connects to MongoDB and Redis and builds every service on top of them.
// The caller must Close the returned App.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logging.Component("app")

	mongoClient, err := connectMongo(ctx, cfg.Mongo)
	if err != nil {
		return nil, err
	}
	log.Info().Str("database", cfg.Mongo.Database).Msg("connected to MongoDB")

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		mongoClient.Disconnect(ctx)
		rdb.Close()
		return nil, fmt.Errorf("failed to ping Redis: %w", err)
	}
	log.Info().Str("addr", cfg.Redis.Addr).Msg("connected to Redis")

	a := &App{
		Config: cfg,
		Mongo:  mongoClient,
		Redis:  rdb,
		stop:   make(chan struct{}),
		log:    log,
	}
	if err := a.wire(ctx); err != nil {
		a.Close(ctx)
		return nil, err
	}
	return a, nil
}

func connectMongo(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, error) {
	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	return client, nil
}

func (a *App) wire(ctx context.Context) error {
	cfg := a.Config
	db := a.Mongo.Database(cfg.Mongo.Database)

	// Repositories
	sessionRepo := repository.NewSessionRepo(db)
	resultRepo := repository.NewResultRepo(db)
	courseRepo := repository.NewCourseRepo(db)

	// Caches
	answerCache := cache.NewAnswerCache(a.Redis, cfg.Session.AnswerTTL)
	sessionCache := cache.NewSessionCache(a.Redis, cfg.Session.AnswerTTL)
	trending := cache.NewTrendingCache(a.Redis)
	stats := cache.NewQuestionStatsCache(a.Redis)

	bank, err := catalog.DefaultBank()
	if err != nil {
		return fmt.Errorf("invalid question bank: %w", err)
	}
	courses, seeded, err := service.LoadCourses(ctx, courseRepo)
	if err != nil {
		return err
	}
	a.log.Info().
		Str("catalog_version", bank.Version()).
		Int("questions", bank.Len()).
		Int("courses", courses.Len()).
		Bool("seeded", seeded).
		Msg("catalogs loaded")

	authSvc := service.NewAuthService(cfg.Auth)
	a.Courses = service.NewCourseService(courses, trending)
	a.Assessments = service.NewAssessmentService(
		session.NewMachine(bank),
		matcher.New(cfg.Matcher, matcher.WithLogger(logging.Component("matcher"))),
		a.Courses,
		answerCache,
		sessionCache,
		sessionRepo,
		resultRepo,
		trending,
		stats,
		authSvc,
		logging.Component("assessment"),
	)

	a.Hub = ws.NewHub(logging.Component("ws"))
	a.Assessments.SetBroadcaster(a.Hub)

	if cfg.RateLimit.Enabled {
		a.limiter = middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, cfg.RateLimit.TrustedProxies)
		go a.limiter.Run(time.Minute, limiterIdle, a.stop)
	}

	a.Handler = rest.NewRouter(&rest.Container{
		AuthService:       authSvc,
		AssessmentService: a.Assessments,
		CourseService:     a.Courses,
		WSHandler:         ws.NewHandler(a.Hub, authSvc, a.Assessments, checkOrigin(cfg.Server.CORSOrigins), logging.Component("ws")),
		RateLimiter:       a.limiter,
		CORSOrigins:       cfg.Server.CORSOrigins,
		Logger:            logging.Component("http"),
	})
	return nil
}

// checkOrigin admits websocket upgrades from the configured CORS origins
func checkOrigin(origins []string) func(*http.Request) bool {
	allowed := make(map[string]bool, len(origins))
	for _, o := range origins {
		if o == "*" {
			return nil
		}
		allowed[o] = true
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		return origin == "" || allowed[origin]
	}
}

// Close stops background work and disconnects from the stores
func (a *App) Close(ctx context.Context) error {
	close(a.stop)
	if a.Hub != nil {
		a.Hub.Close()
	}

	var errs []error
	if err := a.Redis.Close(); err != nil {
		errs = append(errs, fmt.Errorf("redis: %w", err))
	}
	if err := a.Mongo.Disconnect(ctx); err != nil {
		errs = append(errs, fmt.Errorf("mongo: %w", err))
	}
	return errors.Join(errs...)
}
