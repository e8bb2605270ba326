package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chaos-planner/internal/config"
	"chaos-planner/internal/repository"
	"chaos-planner/internal/server"
	"chaos-planner/internal/service"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to the YAML config file")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := repository.NewDB(cfg.Database.URL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	sqlDB, err := db.DB()
	if err == nil {
		defer sqlDB.Close()
	}

	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	durationRepo := repository.NewDurationRepository(db)

	taskSvc := service.NewTaskService(taskRepo)
	categorySvc := service.NewCategoryService(categoryRepo, taskRepo)
	durationSvc := service.NewDurationService(durationRepo)
	reportSvc := service.NewReportService(categorySvc)

	handlers := server.NewHandlers(taskSvc, categorySvc, durationSvc, userRepo)
	srv := server.New(cfg.HTTP.Addr, cfg.HTTP.CORSOrigin, handlers)

	scheduler := service.NewSchedulerService(time.Local)
	if cfg.Report.Interval > 0 {
		if _, err := scheduler.ScheduleInterval(cfg.Report.Interval, func() {
			jobCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			summary, err := reportSvc.Summary(jobCtx, time.Now())
			if err != nil {
				log.Printf("report: %v", err)
				return
			}
			log.Println(summary)
		}); err != nil {
			log.Fatalf("schedule reports: %v", err)
		}
		scheduler.Start()
		defer scheduler.Stop()
	}

	log.Printf("[info] listening on %s", cfg.HTTP.Addr)
	if err := srv.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("server stopped with error: %v", err)
	}
	log.Println("Shutdown complete.")
}
