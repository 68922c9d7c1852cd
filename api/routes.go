package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-coach/internal/handlers/v1/category"
	"github.com/carson-networks/budget-coach/internal/handlers/v1/chat"
	"github.com/carson-networks/budget-coach/internal/handlers/v1/insight"
	"github.com/carson-networks/budget-coach/internal/handlers/v1/profile"
	"github.com/carson-networks/budget-coach/internal/handlers/v1/status"
	"github.com/carson-networks/budget-coach/internal/handlers/v1/transaction"
	"github.com/carson-networks/budget-coach/internal/logging"
	"github.com/carson-networks/budget-coach/internal/operator"
	"github.com/carson-networks/budget-coach/internal/service"
)

type Rest struct {
	Logger   *logrus.Logger
	Port     string
	Service  *service.Service
	Operator *operator.OperatorDelegator
}

// Routes builds the HTTP handler: /status as a plain handler and everything
// under /v1 as huma operations.
func (r *Rest) Routes() http.Handler {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler(r.Operator)
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	api := humago.New(mux, huma.DefaultConfig("Budget Coach API", "1.0.0"))
	api.UseMiddleware(logging.Middleware(r.Logger))

	transactions := r.Service.Transaction
	insights := r.Service.Insight

	transaction.NewImportHandler(transactions).Register(api)
	transaction.NewListTransactionsHandler(transactions).Register(api)
	transaction.NewRecategorizeHandler(transactions).Register(api)
	transaction.NewExportHandler(transactions, insights).Register(api)
	category.NewListCategoriesHandler(transactions).Register(api)
	profile.NewGetProfileHandler(r.Service.Profile).Register(api)
	profile.NewSaveProfileHandler(r.Service.Profile).Register(api)
	insight.NewSummaryHandler(insights).Register(api)
	insight.NewSuggestionsHandler(insights).Register(api)
	chat.NewAskHandler(insights).Register(api)
	chat.NewSuggestedQuestionsHandler(insights).Register(api)

	return mux
}

// Serve listens until ctx is cancelled, then gives in-flight requests a few
// seconds to finish.
func (r *Rest) Serve(ctx context.Context) {
	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Routes(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			r.Logger.WithError(err).Error("HttpServer.Serve.shutdown error")
		}
	}()

	r.Logger.WithField("port", r.Port).Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}
