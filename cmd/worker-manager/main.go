// cmd/worker-manager/main.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/camunda/zeebe/clients/go/v8/pkg/zbc"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"guidance-workers/internal/catalog"
	"guidance-workers/internal/common/aws"
	"guidance-workers/internal/common/camunda"
	"guidance-workers/internal/common/config"
	"guidance-workers/internal/common/database"
	"guidance-workers/internal/common/logger"
	"guidance-workers/internal/common/observability"
	"guidance-workers/internal/session"
	"guidance-workers/pkg/registry"

	cr "guidance-workers/internal/workers/guidance/calculate-roi"
	rr "guidance-workers/internal/workers/guidance/resolve-recommendation"
	rm "guidance-workers/internal/workers/guidance/retrieve-matches"
	sq "guidance-workers/internal/workers/guidance/score-quiz"
	sgr "guidance-workers/internal/workers/guidance/send-guidance-report"
)

const activityRegistryPath = "configs/activity-registry.json"

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2 // Exponential backoff
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	zapLog := logger.New("info", "console")
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting worker manager...")

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	obs := observability.New("worker-manager")
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Activity Registry ---
	reg, err := registry.LoadRegistry(activityRegistryPath)
	if err != nil {
		zapLog.Fatal("activity registry load failed", zap.Error(err))
	}
	if err := reg.Validate(); err != nil {
		zapLog.Fatal("activity registry invalid", zap.Error(err))
	}
	zapLog.Info("activity registry loaded",
		zap.String("version", reg.Version),
		zap.Int("activities", len(reg.Activities)),
	)

	// --- Init Zeebe Client with retry ---
	zeebe, err := camunda.Connect(&camunda.ClientConfig{
		GatewayAddress:         cfg.Camunda.BrokerAddress,
		UsePlaintextConnection: true,
	}, log)
	if err != nil {
		zapLog.Fatal("zeebe client failed after retries", zap.Error(err))
	}
	zeebeClient := zeebe.GetClient()
	zapLog.Info("Zeebe client connected successfully")

	// --- Init PostgreSQL with retry ---
	var pg *database.PostgresClient
	err = retryWithBackoff(func() error {
		var err error
		pg, err = database.NewPostgres(cfg.Database.Postgres)
		if err != nil {
			return err
		}
		return pg.Ping(ctx)
	}, 15, 2*time.Second, zapLog, "PostgreSQL connection")

	if err != nil {
		zapLog.Fatal("postgres failed after retries", zap.Error(err))
	}
	defer pg.Close()
	zapLog.Info("PostgreSQL connected successfully")

	// --- Init Redis with retry ---
	var redis *database.RedisClient
	err = retryWithBackoff(func() error {
		var err error
		redis, err = database.NewRedis(cfg.Database.Redis)
		if err != nil {
			return err
		}
		return redis.Ping(ctx)
	}, 10, 2*time.Second, zapLog, "Redis connection")

	if err != nil {
		zapLog.Fatal("redis failed after retries", zap.Error(err))
	}
	defer redis.Close()
	zapLog.Info("Redis connected successfully")

	// --- Shared domain state ---

	// Career catalog: prefer the database copy, fall back to the embedded
	// static entries so the pipeline always has reference data.
	catalogStore := catalog.NewStore(pg.GetDB(), log)
	careers := catalogStore.LoadOrStatic(ctx)
	zapLog.Info("career catalog loaded", zap.Int("labels", careers.Len()))

	sessions := session.NewStore(
		redis.GetClient(),
		cfg.Session.KeyPrefix,
		time.Duration(cfg.Session.TTL)*time.Second,
		log,
	)

	// --- Register Guidance Workers ---

	if config.IsWorkerEnabled(cfg, sq.TaskType) {
		handler := sq.NewHandler(
			&sq.Config{
				Timeout:            config.GetDuration(config.GetWorkerConfig(cfg, sq.TaskType).Timeout),
				MaxRecommendations: 5,
			},
			sessions, log,
		)
		startWorker(zeebeClient, sq.TaskType, config.GetWorkerConfig(cfg, sq.TaskType), reg, obs, handler.Handle, zapLog)
	}

	if config.IsWorkerEnabled(cfg, rr.TaskType) {
		handler := rr.NewHandler(
			&rr.Config{
				Timeout: config.GetDuration(config.GetWorkerConfig(cfg, rr.TaskType).Timeout),
			},
			careers, log,
		)
		startWorker(zeebeClient, rr.TaskType, config.GetWorkerConfig(cfg, rr.TaskType), reg, obs, handler.Handle, zapLog)
	}

	if config.IsWorkerEnabled(cfg, rm.TaskType) {
		handler := rm.NewHandler(
			&rm.Config{
				BaseURL:    cfg.Matching.BaseURL,
				Timeout:    config.GetDuration(cfg.Matching.Timeout),
				MinResults: cfg.Matching.MinResults,
			},
			log,
		)
		startWorker(zeebeClient, rm.TaskType, config.GetWorkerConfig(cfg, rm.TaskType), reg, obs, handler.Handle, zapLog)
	}

	if config.IsWorkerEnabled(cfg, cr.TaskType) {
		handler := cr.NewHandler(
			&cr.Config{
				Timeout:             config.GetDuration(config.GetWorkerConfig(cfg, cr.TaskType).Timeout),
				DefaultAnnualSalary: cfg.ROI.DefaultAnnualSalary,
				DefaultWorkingYears: cfg.ROI.DefaultWorkingYears,
			},
			careers, log,
		)
		startWorker(zeebeClient, cr.TaskType, config.GetWorkerConfig(cfg, cr.TaskType), reg, obs, handler.Handle, zapLog)
	}

	if config.IsWorkerEnabled(cfg, sgr.TaskType) {
		sesClient, err := aws.NewSESClient(ctx, cfg.Notifications.AWS.Region)
		if err != nil {
			zapLog.Fatal("failed to create SES client", zap.Error(err))
		}
		handler := sgr.NewHandler(
			&sgr.Config{
				Timeout:   config.GetDuration(config.GetWorkerConfig(cfg, sgr.TaskType).Timeout),
				FromEmail: cfg.Notifications.Email.FromEmail,
				Region:    cfg.Notifications.AWS.Region,
				Enabled:   cfg.Notifications.Email.Enabled,
			},
			sesClient, log,
		)
		startWorker(zeebeClient, sgr.TaskType, config.GetWorkerConfig(cfg, sgr.TaskType), reg, obs, handler.Handle, zapLog)
	}

	zapLog.Info("All guidance workers registered successfully")

	// --- Health & Metrics Server ---
	go func() {
		http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]string{
				"status": "healthy",
				"time":   time.Now().Format(time.RFC3339),
			})
		})
		http.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			if err := zeebe.HealthCheck(r.Context()); err != nil {
				w.WriteHeader(http.StatusServiceUnavailable)
				json.NewEncoder(w).Encode(map[string]string{
					"status": "not ready",
					"error":  err.Error(),
					"time":   time.Now().Format(time.RFC3339),
				})
				return
			}
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]string{
				"status": "ready",
				"time":   time.Now().Format(time.RFC3339),
			})
		})
		http.Handle("/metrics", promhttp.Handler())
		zapLog.Info("Health/Metrics server listening on :8080")
		if err := http.ListenAndServe(":8080", nil); err != nil {
			zapLog.Error("Health/Metrics server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping workers...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	_ = shutdownCtx

	if err := zeebe.Close(); err != nil {
		zapLog.Error("Error closing Zeebe client", zap.Error(err))
	}

	zapLog.Info("Worker manager stopped gracefully")
}

func startWorker(client zbc.Client, taskType string, wcfg config.WorkerConfig, reg *registry.ActivityRegistry, obs *observability.Observability, handlerFunc func(worker.JobClient, entities.Job), log *zap.Logger) {
	if !wcfg.Enabled {
		log.Info("worker disabled", zap.String("taskType", taskType))
		return
	}

	// Every deployed worker must be declared in the activity registry so
	// process designers can rely on it as the task-type inventory.
	activity := reg.FindByTaskType(taskType)
	if activity == nil {
		log.Fatal("task type missing from activity registry",
			zap.String("taskType", taskType),
			zap.String("registry", activityRegistryPath),
		)
	}

	instrumented := func(jobClient worker.JobClient, job entities.Job) {
		start := time.Now()
		handlerFunc(jobClient, job)
		obs.RecordJobHandled(context.Background(), taskType, time.Since(start))
	}

	client.NewJobWorker().
		JobType(taskType).
		Handler(instrumented).
		MaxJobsActive(wcfg.MaxJobsActive).
		Timeout(time.Duration(wcfg.Timeout) * time.Millisecond).
		Open()

	log.Info("worker started",
		zap.String("taskType", taskType),
		zap.String("activity", activity.ID),
		zap.Int("maxJobsActive", wcfg.MaxJobsActive),
		zap.Int("timeout_ms", wcfg.Timeout),
	)
}
