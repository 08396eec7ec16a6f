package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"rentalhub/internal/config"
	"rentalhub/internal/metrics"
	"rentalhub/internal/middleware"
	"rentalhub/internal/payment"
	"rentalhub/internal/repository"
	"rentalhub/internal/service"
	"rentalhub/internal/txn"
	"rentalhub/pkg/timer"

	"github.com/gin-gonic/gin"
	"github.com/go-chi/cors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

const (
	connectTimeout = 10 * time.Second
	indexTimeout   = 30 * time.Second
)

// Server represents the HTTP server
type Server struct {
	cfg   *config.Config
	log   *zap.Logger
	http  *http.Server
	mongo *mongo.Client
}

// New creates a new server instance. An unreachable MongoDB is logged and
// tolerated; requests fail individually until it comes back.
func New(cfg *config.Config, logger *zap.Logger) (*Server, error) {
	gin.SetMode(cfg.Server.GinMode)

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	mongoClient, err := Connect(ctx, cfg.Mongo, logger)
	if err != nil {
		return nil, err
	}
	db := mongoClient.Database(cfg.Mongo.Database)

	go ensureIndexes(db, logger)

	var gateway service.PaymentGateway
	if cfg.Payment.StripeSecretKey != "" {
		gateway = payment.NewStripeGateway(cfg.Payment.StripeSecretKey, nil)
	} else {
		logger.Warn("STRIPE_SECRET_KEY not set; payment intents are disabled")
	}

	repos := InitRepositories(db)
	services := InitServices(cfg, repos, txn.NewMongoRunner(mongoClient, logger), gateway, logger)
	handlers := InitHandlers(services, func(ctx context.Context) error {
		return mongoClient.Ping(ctx, readpref.Primary())
	}, logger)

	router := setupRouter(handlers, services, metrics.New(), logger)

	return &Server{
		cfg:   cfg,
		log:   logger,
		mongo: mongoClient,
		http: &http.Server{
			Addr:              cfg.Server.Address(),
			Handler:           withCORS(cfg.Server.CORSOrigins, router),
			ReadHeaderTimeout: 10 * time.Second,
		},
	}, nil
}

// Connect builds the shared client. Only configuration errors are returned;
// a failed ping is logged.
func Connect(ctx context.Context, cfg config.MongoConfig, logger *zap.Logger) (*mongo.Client, error) {
	opts := options.Client().ApplyURI(cfg.URI)
	if cfg.MaxPoolSize > 0 {
		opts.SetMaxPoolSize(uint64(cfg.MaxPoolSize))
	}
	if strings.HasPrefix(cfg.URI, "mongodb+srv://") {
		opts.SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		logger.Error("MongoDB is not reachable; continuing without it", zap.Error(err))
	} else {
		logger.Info("connected to MongoDB", zap.String("database", cfg.Database))
	}
	return client, nil
}

func ensureIndexes(db *mongo.Database, logger *zap.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), indexTimeout)
	defer cancel()
	defer timer.Track(logger, "ensure indexes")()
	if err := repository.EnsureIndexes(ctx, db, logger); err != nil {
		logger.Error("failed to ensure indexes", zap.Error(err))
	}
}

// Close disconnects MongoDB client
func (s *Server) Close() error {
	if s.mongo != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.mongo.Disconnect(ctx)
	}
	return nil
}

// Run serves until Shutdown is called
func (s *Server) Run() error {
	s.log.Info("server listening", zap.String("addr", s.cfg.Server.Address()))
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting requests, waits for in-flight ones and then
// disconnects from MongoDB.
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.http.Shutdown(ctx)
	if cerr := s.Close(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}

func withCORS(origins []string, next http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	})(next)
}

func setupRouter(h *Handlers, s *Services, m *metrics.Metrics, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.SetTrustedProxies(nil)
	r.Use(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.Metrics(m),
	)

	auth := middleware.Auth(s.Tokens)
	admin := middleware.RequireAdmin(s.Users, logger)

	// Operational
	r.GET("/", h.Health.Root)
	r.GET("/healthz", h.Health.Healthz)
	r.GET("/version", h.Health.Version)
	r.GET("/metrics", gin.WrapH(m.Handler()))

	// Token issuance
	r.POST("/jwt", h.Auth.IssueToken)

	// Apartments
	r.GET("/appertments", h.Apartment.List)
	r.POST("/appertments", auth, admin, h.Apartment.Create)
	r.GET("/appertments-count", h.Apartment.Count)

	// Users
	r.PUT("/users", h.User.Upsert)
	r.GET("/users/:email", h.User.Get)

	// Members
	r.POST("/membersinfo", h.Membership.CreateMember)
	r.GET("/members", auth, h.Membership.ListMembers)
	r.GET("/member/:email", h.Membership.GetMember)
	r.DELETE("/member/:email", auth, admin, h.Membership.Revoke)

	// Agreements
	r.POST("/agreementlists", auth, h.Membership.CreateAgreement)
	r.GET("/agreementlists", auth, admin, h.Membership.ListAgreements)
	r.GET("/agreementlists/:email", h.Membership.AgreementsByEmail)
	r.PATCH("/agements-user/:email", auth, admin, h.Membership.Decide)

	// Announcements
	r.POST("/announcements", auth, admin, h.Announcement.Create)
	r.GET("/announcements", h.Announcement.List)

	// Coupons
	r.POST("/cupon-codes", auth, admin, h.Coupon.Create)
	r.GET("/cupon-codes", h.Coupon.List)
	r.GET("/cupon-codes/:code", h.Coupon.GetByCode)
	r.GET("/cupon/:id", auth, admin, h.Coupon.GetByID)
	r.PUT("/cupon/:id", auth, admin, h.Coupon.Update)

	// Admin report
	r.GET("/admin-stats", auth, admin, h.Stats.AdminStats)

	// Payments
	r.POST("/create-payment-intent", h.Payment.CreateIntent)
	r.POST("/payments", h.Payment.Finalize)
	r.GET("/payments/:email", h.Payment.History)
	r.POST("/payments-info", h.Payment.StageInfo)
	r.GET("/payments-info/:email", h.Payment.InfoByEmail)

	return r
}
