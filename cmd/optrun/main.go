package main

import (
	"Tendon/internal/auth"
	"Tendon/internal/calc/optimize"
	"Tendon/internal/repo"
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// optrun recomputes optimizations for stored projects without going
// through the HTTP API. Usage: optrun <user_id> <project_id>...
func main() {
	godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	if len(os.Args) < 3 {
		logger.Fatal("usage: optrun <user_id> <project_id>...")
	}
	userID, err := strconv.Atoi(os.Args[1])
	if err != nil {
		logger.Fatal("bad user id", zap.String("arg", os.Args[1]))
	}

	db := auth.InitDB(logger)
	defer db.Close()
	svc := &optimize.Service{Repo: repo.NewPostgresDB(db), Log: logger}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	for _, arg := range os.Args[2:] {
		id, err := strconv.Atoi(arg)
		if err != nil {
			logger.Error("bad project id", zap.String("arg", arg))
			continue
		}

		start := time.Now()
		res, err := svc.Optimize(ctx, id, userID)
		if err != nil {
			logger.Error("optimize failed", zap.Int("project", id), zap.Error(err))
			if ctx.Err() != nil {
				return
			}
			continue
		}
		logger.Info("optimize done",
			zap.Int("project", id),
			zap.String("optimal", res.Optimal),
			zap.Duration("took", time.Since(start)))
	}
}
