package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Guidoll2/fontaneriabarcelona/internal/cache"
	"github.com/Guidoll2/fontaneriabarcelona/internal/cart"
	"github.com/Guidoll2/fontaneriabarcelona/internal/catalog"
	"github.com/Guidoll2/fontaneriabarcelona/internal/config"
	"github.com/Guidoll2/fontaneriabarcelona/internal/db"
	"github.com/Guidoll2/fontaneriabarcelona/internal/docs"
	"github.com/Guidoll2/fontaneriabarcelona/internal/leads"
	"github.com/Guidoll2/fontaneriabarcelona/internal/metrics"
	"github.com/Guidoll2/fontaneriabarcelona/internal/middleware"
	"github.com/Guidoll2/fontaneriabarcelona/internal/notifications"
	"github.com/Guidoll2/fontaneriabarcelona/internal/orders"
	"github.com/Guidoll2/fontaneriabarcelona/internal/ratelimit"
	"github.com/Guidoll2/fontaneriabarcelona/internal/transport"
	"github.com/Guidoll2/fontaneriabarcelona/internal/validation"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var leadsRepo leads.Repository
	if cfg.MongoURI != "" {
		client, cols, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			logger.Error("mongo connection failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("mongo connected", slog.String("db", cfg.MongoDB))
		defer client.Disconnect(context.Background())

		if err := db.EnsureIndexes(ctx, cols); err != nil {
			logger.Error("index creation failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		leadsRepo = leads.NewRepository(cols.Quotes, cols.ChlorinatorLeads)
	} else {
		logger.Info("mongo disabled, leads will not be persisted")
	}

	var cacheStore cache.Cache = cache.NewNoop()
	var redisCache *cache.RedisCache
	if cfg.RedisURL != "" || cfg.RedisAddr != "" {
		if cfg.RedisURL != "" {
			redisCache, err = cache.NewRedisFromURL(cfg.RedisURL)
			if err != nil {
				logger.Error("redis connection failed", slog.String("error", err.Error()))
				os.Exit(1)
			}
		} else {
			redisCache = cache.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		}
		if err := redisCache.Ping(ctx); err != nil {
			logger.Error("redis connection failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("redis connected")
		cacheStore = redisCache
	}

	var mailer notifications.Mailer
	if ms := notifications.NewMailerSendClient(cfg.MailerSendAPIKey, cfg.MailSenderEmail, cfg.MailSenderName); ms != nil {
		mailer = ms
		logger.Info("mailersend mailer enabled", slog.String("sender", cfg.MailSenderEmail))
	} else if sg := notifications.NewSendGridMailer(cfg.SendGridAPIKey, cfg.MailSenderEmail, cfg.MailSenderName); sg != nil {
		mailer = sg
		logger.Info("sendgrid mailer enabled", slog.String("sender", cfg.MailSenderEmail))
	} else {
		logger.Info("mailer disabled")
	}

	dispatcher := notifications.NewDispatcher(mailer, cfg.MailOwnerEmail, cfg.MailOwnerName, cfg.OrderEmailBestEffort, logger)
	if dispatcher == nil {
		logger.Info("notification dispatcher disabled")
	}

	val := validation.New()

	window := time.Duration(cfg.RateLimitWindowSec) * time.Second
	var quotesLimiter, ordersLimiter *ratelimit.Limiter
	if redisCache != nil {
		store := ratelimit.NewRedisStore(redisCache.Client(), window)
		quotesLimiter = ratelimit.New(store, cfg.RateLimitQuotes, window)
		ordersLimiter = ratelimit.New(store, cfg.RateLimitOrders, window)
	} else {
		store := ratelimit.NewMemoryStore()
		defer store.StartEviction(5*time.Minute, 10*time.Minute)()
		quotesLimiter = ratelimit.New(store, cfg.RateLimitQuotes, window)
		ordersLimiter = ratelimit.New(store, cfg.RateLimitOrders, window)
	}

	cartStore := cart.NewStore(time.Duration(cfg.CartSessionTTLMin) * time.Minute)
	defer cartStore.StartEviction(5 * time.Minute)()

	cacheTTL := time.Duration(cfg.CacheTTLSeconds) * time.Second

	var leadsNotifier leads.Notifier
	if dispatcher != nil {
		leadsNotifier = dispatcher
	}
	leadsService := leads.NewService(leadsRepo, leadsNotifier, cfg.Timezone, logger)
	leadsHandler := leads.NewHandler(leadsService, val, logger)

	var ordersDispatcher orders.Dispatcher
	if dispatcher != nil {
		ordersDispatcher = dispatcher
	}
	ordersService := orders.NewService(ordersDispatcher, cfg.Timezone)
	ordersHandler := orders.NewHandler(ordersService, cartStore, val, logger)

	cartHandler := cart.NewHandler(cartStore, catalog.Source{}, logger)
	catalogHandler := catalog.NewHandler(cacheStore, cacheTTL, logger)
	docsHandler := docs.NewHandler(cfg.ValveGuideURL, cfg.ValveGuidePath, cacheStore, cacheTTL, logger)

	r := chi.NewRouter()
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.FrontendOrigin))
	r.Use(chiMiddleware.Timeout(30 * time.Second))

	r.Route("/api", func(api chi.Router) {
		api.With(quotesLimiter.Middleware(logger)).Post("/leads", leadsHandler.CreateQuote)
		api.With(quotesLimiter.Middleware(logger)).Post("/leads/chlorinator", leadsHandler.CreateChlorinator)
		api.With(ordersLimiter.Middleware(logger)).Post("/orders", ordersHandler.Create)

		api.Get("/products", catalogHandler.List)
		api.Get("/valve-guide", docsHandler.ValveGuide)

		api.Route("/cart", func(c chi.Router) {
			c.Get("/", cartHandler.Get)
			c.Delete("/", cartHandler.Clear)
			c.Post("/items", cartHandler.AddItem)
			c.Patch("/items/{id}", cartHandler.UpdateQuantity)
			c.Delete("/items/{id}", cartHandler.RemoveItem)
		})

		api.Get("/site-config", func(w http.ResponseWriter, r *http.Request) {
			payload := map[string]string{"siteBaseUrl": cfg.SiteBaseURL}
			if cfg.GAMeasurementID != "" {
				payload["gaMeasurementId"] = cfg.GAMeasurementID
			}
			transport.WriteJSON(w, http.StatusOK, payload)
		})
	})

	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	srv := &http.Server{
		Addr:    cfg.ServerAddr,
		Handler: r,
	}

	go func() {
		logger.Info("server started", slog.String("addr", cfg.ServerAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.String("error", err.Error()))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.String("error", err.Error()))
	}
}
