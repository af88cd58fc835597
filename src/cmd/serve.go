package cmd

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "Backend-Career-Advisor/docs"
	"Backend-Career-Advisor/src/controllers"
	"Backend-Career-Advisor/src/database"
	"Backend-Career-Advisor/src/jobs"
	"Backend-Career-Advisor/src/routes"
	"Backend-Career-Advisor/src/services/assessment"
	"Backend-Career-Advisor/src/services/submission"
	"Backend-Career-Advisor/src/utils"

	"github.com/go-playground/validator/v10"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func runServe(cmd *cobra.Command) error {
	rt, err := bootstrap(cmd, nil)
	if err != nil {
		return err
	}
	cfg, log := rt.cfg, rt.log
	ctx, stop := signal.NotifyContext(cmdContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var store submission.Store = submission.NewMemoryStore()
	if cfg.Database.Mongo.Enabled() {
		client, db, err := database.ConnectMongo(ctx, cfg.Database.Mongo)
		if err != nil {
			return err
		}
		defer client.Disconnect(context.Background())
		store = submission.NewMongoStore(db)
		log.Info("MongoDB connected", map[string]interface{}{"database": cfg.Database.Mongo.Database})
	} else {
		log.Warn("MongoDB not configured, submissions kept in memory", nil)
	}

	var (
		redisClient *redis.Client
		enqueuer    jobs.Enqueuer
		worker      *asynq.Server
	)
	if cfg.Database.Redis.Enabled() {
		redisClient, err = database.NewRedis(ctx, cfg.Database.Redis)
		if err != nil {
			return err
		}
		defer redisClient.Close()

		asynqClient := database.NewAsynqClient(cfg.Database.Redis)
		defer asynqClient.Close()
		enqueuer = asynqClient

		worker = jobs.NewServer(database.AsynqRedisOpt(cfg.Database.Redis))
		if err := worker.Start(jobs.NewWorker(rt.trainer, log).Mux()); err != nil {
			return fmt.Errorf("start asynq worker: %w", err)
		}
		defer worker.Shutdown()
		log.Info("Redis connected, prediction cache and retrain worker enabled", nil)
	} else {
		log.Warn("Redis not configured, caching disabled and retrains run inline", nil)
	}

	if cfg.Auth.JWTSecret == "" {
		log.Warn("auth.jwt_secret is empty, admin routes answer 503", nil)
	}

	svc := assessment.NewService(rt.encoder, rt.registry, store,
		utils.NewPredictionCache(redisClient, cfg.Model.CacheTTL()), log)

	app := routes.NewApp(routes.Deps{
		Assessment: svc,
		Dispatcher: jobs.NewDispatcher(enqueuer, rt.trainer),
		Issuer:     utils.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL()),
		Blacklist:  utils.NewTokenBlacklist(redisClient),
		Admin: controllers.AdminCredentials{
			Username:     cfg.Auth.AdminUsername,
			PasswordHash: cfg.Auth.AdminPasswordHash,
		},
		Validate:       validator.New(),
		Logger:         log,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		StaticDir:      cfg.Server.StaticDir,
	})

	errCh := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf(":%s", url.PathEscape(cfg.Server.Port))
		log.Info("Server is running", map[string]interface{}{"addr": addr})
		errCh <- app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		log.Info("Shutdown signal received, stopping server", nil)
		return app.ShutdownWithTimeout(10 * time.Second)
	}
}
