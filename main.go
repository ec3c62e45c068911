// main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"review-cloud/cmd"
	"review-cloud/internal/data/repository"
	"review-cloud/internal/nlp"
	"review-cloud/internal/render"
	"review-cloud/internal/usecase"
	"review-cloud/internal/wire"
	"review-cloud/pkg/database"
	"review-cloud/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("source", config.Source.Kind),
		zap.Bool("serve", config.App.Serve),
		zap.Bool("debug", config.App.Debug),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var repo *repository.Repository
	switch config.Source.Kind {
	case "postgres":
		db, err := database.InitDB(ctx, config.Database)
		if err != nil {
			logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()
		repo = repository.NewPostgresRepository(db, logger)
	default:
		repo = repository.NewCSVRepository(config.Source.DataPath, logger)
	}

	targets, err := utils.LoadTargets(config.App.TargetsPath)
	if err != nil {
		logger.Fatal("Failed to load targets", zap.Error(err))
	}

	ttf, err := render.LoadFont(config.Cloud.FontPath)
	if err != nil {
		logger.Fatal("Failed to load font", zap.Error(err))
	}

	background, err := render.ParseColor(config.Cloud.Background)
	if err != nil {
		logger.Fatal("Invalid background color", zap.Error(err))
	}

	opts := render.DefaultOptions()
	opts.Width = config.Cloud.Width
	opts.Height = config.Cloud.Height
	opts.MaxFontSize = config.Cloud.MaxFontSize
	opts.MinFontSize = config.Cloud.MinFontSize
	opts.Background = background
	opts.Seed = config.Cloud.Seed

	renderer, err := render.NewRenderer(ttf, opts, logger)
	if err != nil {
		logger.Fatal("Failed to create renderer", zap.Error(err))
	}

	displayer, err := render.NewPNGDisplayer(config.Cloud.OutputDir, logger)
	if err != nil {
		logger.Fatal("Failed to create displayer", zap.Error(err))
	}

	service := usecase.NewService(repo, nlp.NewRuleAnalyzer(), renderer, config, logger)

	summary, err := service.Review.Summary(ctx)
	if err != nil {
		logger.Fatal("Failed to summarize reviews", zap.Error(err))
	}
	usecase.LogSummary(logger, summary)

	if _, err := usecase.RunTargets(ctx, service.Cloud, displayer, targets, config.Cloud.TopN, logger); err != nil {
		logger.Fatal("Word cloud run failed", zap.Error(err))
	}

	if !config.App.Serve {
		return
	}

	app := wire.Wiring(service, logger)
	if err := cmd.APIServer(ctx, app.Router, config.App.Port, logger); err != nil {
		logger.Fatal("Server stopped", zap.Error(err))
	}
}
