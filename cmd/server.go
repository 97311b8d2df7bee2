package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	config "github.com/salmanakber/mayaopps-sub001/internal/configs"
	httpapi "github.com/salmanakber/mayaopps-sub001/internal/http"
	"github.com/salmanakber/mayaopps-sub001/internal/jobs"
	repository "github.com/salmanakber/mayaopps-sub001/internal/repositories"
	"github.com/salmanakber/mayaopps-sub001/internal/services"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP API server",
	Long:  "Starts the rota HTTP API, the batch validation pool and the optional weekly clone job",
	RunE: func(cmd *cobra.Command, args []string) error {

		if err := godotenv.Load(); err != nil {
			log.Println(".env file not found, using environment variables")
		}

		cfg := config.Load()

		locker, redisClient := config.NewLocker(cfg)
		if redisClient != nil {
			defer redisClient.Close()
		}

		db := config.New(cfg.DatabaseDSN)
		repos := repository.New(db)

		assignmentService := services.NewAssignmentService(repos, locker)
		pool := services.NewPoolService(assignmentService, cfg.ValidationWorkers, cfg.ValidationQueueSize)
		cloneService := services.NewCloneService(repos)

		var cloneJob *jobs.WeeklyCloneJob
		if cfg.CloneSchedule != "" {
			cloneJob = jobs.NewWeeklyCloneJob(cloneService, cfg.CloneSchedule, cfg.CloneCompanyIDs)
			if err := cloneJob.Start(); err != nil {
				return err
			}
		}

		e := echo.New()

		handler := httpapi.NewHandler(
			services.NewTaskService(repos),
			assignmentService,
			pool,
			services.NewWorkloadService(repos),
			services.NewConflictService(repos),
			cloneService,
		)
		httpapi.Register(e, handler, cfg.RateLimit)

		go func() {
			log.Printf("HTTP server listening on %s", cfg.AppURL)
			if err := e.Start(cfg.AppURL); err != nil {
				log.Printf("server stopped: %v", err)
			}
		}()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		ctx, cancel := context.WithTimeout(
			context.Background(),
			time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second,
		)
		defer cancel()

		_ = e.Shutdown(ctx)
		if cloneJob != nil {
			cloneJob.Stop(ctx)
		}
		pool.Shutdown(ctx)

		log.Println("HTTP server and validation pool shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
