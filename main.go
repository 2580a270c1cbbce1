package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/envelope-zero/tracker/internal/config"
	v1 "github.com/envelope-zero/tracker/internal/controllers/v1"
	"github.com/envelope-zero/tracker/internal/models"
	"github.com/envelope-zero/tracker/internal/router"
	"github.com/envelope-zero/tracker/internal/service"
	"github.com/envelope-zero/tracker/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// shutdownTimeout is how long running requests get to finish on shutdown.
const shutdownTimeout = 30 * time.Second

// @title			Expense Tracker
// @description	Backend for tracking expenses and monthly income, with a monthly savings report.
// @BasePath		/
func main() {
	// A .env file is optional, the environment always takes precedence
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal().Msg(err.Error())
	}

	gin.SetMode(cfg.GinMode)

	output := io.Writer(os.Stdout)
	if cfg.HumanLogs() {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	apiURL, err := url.Parse(cfg.APIURL)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	currency, err := models.ParseCurrency(cfg.Currency)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	s := store.New(cfg.DataDir)
	if err := s.Init(); err != nil {
		log.Fatal().Msg(err.Error())
	}

	co := v1.Controller{
		Expenses: service.NewExpenseService(s, nil),
		Income:   service.NewIncomeService(s, nil),
		Report:   service.NewReportService(s, s, currency, nil),
	}

	opts := router.Options{
		AllowOrigins: cfg.AllowOrigins,
		EnablePprof:  cfg.EnablePprof,
		StaticDir:    cfg.StaticDir,
	}

	r, teardown, err := router.Config(apiURL, opts)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	defer teardown()

	router.AttachRoutes(r.Group("/"), co, s, opts)

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 16,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("address", cfg.ListenAddr).Str("data", s.Dir()).Msg("Server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Info().Msg("Shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("Server")
	}

	log.Info().Msg("Server stopped")
}
