package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-insights/internal/handlers/v1/insight"
	"github.com/carson-networks/budget-insights/internal/handlers/v1/recurring"
	"github.com/carson-networks/budget-insights/internal/handlers/v1/status"
	"github.com/carson-networks/budget-insights/internal/handlers/v1/transaction"
	"github.com/carson-networks/budget-insights/internal/ingest"
	"github.com/carson-networks/budget-insights/internal/logging"
	"github.com/carson-networks/budget-insights/internal/service"
	"github.com/carson-networks/budget-insights/internal/storage"
)

const shutdownTimeout = 15 * time.Second

type Rest struct {
	Logger      *logrus.Logger
	Port        string
	Service     *service.Service
	Storage     *storage.Storage
	Categorizer *ingest.Categorizer
	Location    *time.Location
}

// Router builds the chi router with every endpoint registered.
func (r *Rest) Router() http.Handler {
	router := chi.NewMux()
	router.Use(middleware.Recoverer)

	statusHandler := status.NewHandler(nil)
	if r.Storage != nil {
		statusHandler = status.NewHandler(r.Storage)
	}
	router.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	api := humachi.New(router, huma.DefaultConfig("Budget Insights API", "1.0.0"))
	api.UseMiddleware(logging.Middleware(r.Logger))

	transactions := r.Service.Transaction
	transaction.NewCreateTransactionHandler(transactions).Register(api)
	transaction.NewListTransactionsHandler(transactions).Register(api)
	transaction.NewImportTransactionsHandler(transactions, r.Categorizer, r.Location).Register(api)

	insights := r.Service.Insight
	insight.NewListQuestionsHandler(insights).Register(api)
	insight.NewAskHandler(insights, r.Location).Register(api)
	insight.NewMonthSummaryHandler(insights, r.Location).Register(api)
	insight.NewForecastHandler(insights, r.Location).Register(api)
	insight.NewWeekdayReportHandler(insights).Register(api)
	insight.NewHeatmapHandler(insights, r.Location).Register(api)
	insight.NewPlanHandler(insights, r.Location).Register(api)

	rules := r.Service.Recurring
	recurring.NewCreateRuleHandler(rules).Register(api)
	recurring.NewListRulesHandler(rules).Register(api)
	recurring.NewSetActiveHandler(rules).Register(api)
	recurring.NewApplyHandler(rules, r.Location).Register(api)

	return router
}

// Serve listens until ctx is cancelled, then drains in-flight requests.
func (r *Rest) Serve(ctx context.Context) error {
	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Router(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		r.Logger.WithField("port", r.Port).Info("HttpServer.Serve.listening")
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
			return err
		}
		return nil
	case <-ctx.Done():
	}

	r.Logger.Info("HttpServer.Serve.shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.shutdown error")
		return err
	}
	return nil
}
