package main

import (
	"errors"
	"log"
	"net/http"
	"time"

	"go.uber.org/zap"
)

func main() {
	cfg := mustConfig()

	app, err := newApp(cfg)
	if err != nil {
		log.Fatal("logger init error: ", err)
	}
	defer app.close()

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           app.routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	app.log.Info("chayuan data service listening",
		zap.String("port", cfg.Port), zap.String("backend", cfg.BackendURL))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		app.log.Fatal("server stopped", zap.Error(err))
	}
}
