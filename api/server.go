package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
	"github.com/sprintertech/frame-bridge/api/handlers"
)

func NewRouter(
	transactionHandler *handlers.TransactionHandler,
	networksHandler *handlers.NetworksHandler,
	explorerLinkHandler *handlers.ExplorerLinkHandler,
) *mux.Router {
	metrics := newMetricsRegistry()

	r := mux.NewRouter()
	r.Use(requestIDMiddleware, metrics.middleware)
	r.HandleFunc("/api/tx", transactionHandler.HandleTransaction).Methods("POST").Queries("from", "{network}")
	r.HandleFunc("/v1/networks", networksHandler.HandleRequest).Methods("GET")
	r.HandleFunc("/v1/networks/{network}/transactions", transactionHandler.HandleTransaction).Methods("POST")
	r.HandleFunc("/v1/networks/{network}/transactions/{hash}", explorerLinkHandler.HandleRequest).Methods("GET")
	r.Handle("/metrics", metrics.handler()).Methods("GET")
	return r
}

func Serve(ctx context.Context, addr string, handler http.Handler) {
	server := &http.Server{
		Addr:        addr,
		Handler:     handler,
		ReadTimeout: time.Second * 10,
	}
	go func() {
		log.Info().Msgf("Starting server on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			panic(err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		log.Err(err).Msgf("Error shutting down server")
	} else {
		log.Info().Msgf("Server shut down gracefully.")
	}
}
