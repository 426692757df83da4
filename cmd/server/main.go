package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"transportreports/config"
	"transportreports/db"
	"transportreports/db/mongo"
	"transportreports/db/postgres"
	"transportreports/handlers"
	"transportreports/logging"
	"transportreports/metrics"
	"transportreports/report"
	"transportreports/repository"
	"transportreports/routes"
	"transportreports/service"
	"transportreports/utils"
)

func main() {
	// Load config from .env or environment
	cfg := config.LoadConfig()
	logger := logging.NewLogger(cfg.LogFormat, cfg.LogLevel)
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var conn db.DB
	var bookingRepo repository.BookingRepository
	var memoRepo repository.LoadingMemoRepository
	var companyRepo repository.CompanyRepository

	switch db.DBType(cfg.DBType) {
	case db.Postgres:
		if err := db.RunMigrations(cfg.PostgresURL, cfg.MigrationsPath, logger); err != nil {
			logger.Fatal().Err(err).Msg("migrations failed")
		}
		pg := postgres.NewPostgresDB(cfg.PostgresURL)
		if err := pg.Connect(); err != nil {
			logger.Fatal().Err(err).Msg("postgres connect failed")
		}
		conn = pg

		bookingRepo = repository.NewPostgresBookingRepo(pg.Conn)
		memoRepo = repository.NewPostgresLoadingMemoRepo(pg.Conn)
		companyRepo = repository.NewPostgresCompanyRepo(pg.Conn)

	case db.Mongo:
		mg := mongo.NewMongoDB(cfg.MongoURL, cfg.MongoDatabase)
		if err := mg.Connect(); err != nil {
			logger.Fatal().Err(err).Msg("mongo connect failed")
		}
		conn = mg

		bookingRepo = repository.NewMongoBookingRepo(mg.DB())
		memoRepo = repository.NewMongoLoadingMemoRepo(mg.DB())
		companyRepo = repository.NewMongoCompanyRepo(mg.DB())
	}
	defer func() {
		if err := conn.Disconnect(); err != nil {
			logger.Error().Err(err).Msg("disconnect")
		}
	}()

	printer := utils.NewPrinter(cfg.ChromeTimeout)

	svc := &service.ReportService{
		Repo:     repository.NewReportRepository(bookingRepo, memoRepo, companyRepo),
		Measurer: report.FixedMeasurer{RowHeight: cfg.Layout.SummaryRow},
		Geometry: report.Geometry{
			PageHeight:       cfg.Layout.PageHeight,
			BodyHeaderHeight: cfg.Layout.BodyHeader,
			BodyRowHeight:    cfg.Layout.BodyRow,
		},
		Printer: printer,
		PDFDir:  cfg.PDFDir,
		Metrics: metrics.New("transportreports", prometheus.DefaultRegisterer),
		Logger:  logger.With().Str("component", "reports").Logger(),
	}

	if cfg.Layout.MeasureInDOM {
		svc.PrintMeasurer = utils.ChromeMeasurer{Printer: printer}
	}

	uploader, err := utils.NewR2Uploader(ctx, cfg.R2)
	if err != nil {
		logger.Fatal().Err(err).Msg("r2 setup failed")
	}
	if uploader != nil {
		svc.Uploader = uploader
		logger.Info().Str("bucket", cfg.R2.Bucket).Msg("uploading pdfs to r2")
	}

	router := routes.SetupRoutes(routes.Handlers{
		Health:   &handlers.HealthHandler{DB: conn, Logger: logger},
		Report:   &handlers.ReportHandler{Service: svc, Logger: logger},
		EwayBill: &handlers.EwayBillHandler{Service: svc, Logger: logger},
		Memo:     &handlers.MemoHandler{},
		Company:  &handlers.CompanyHandler{Repo: companyRepo, Logger: logger},
	}, routes.Options{
		Logger:         logger,
		AllowedOrigins: cfg.CORSAllowedOrigins,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go shutdownOnDone(ctx, srv, logger)

	logger.Info().Str("port", cfg.Port).Str("db", cfg.DBType).Msg("server running")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal().Err(err).Msg("server failed")
	}
}

func shutdownOnDone(ctx context.Context, srv *http.Server, logger zerolog.Logger) {
	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("shutdown")
	}
}
