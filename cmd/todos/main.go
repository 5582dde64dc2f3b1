package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path"
	"runtime"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/ndjamen/todos/cmd/todos/config"
	"github.com/ndjamen/todos/pkg/todos/server"
	"github.com/ndjamen/todos/pkg/todos/store"
	"github.com/ndjamen/todos/pkg/version"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

func main() {
	err := godotenv.Load(".env")
	if err != nil {
		log.Warnf("could not load .env file, relying on env vars")
	}

	config, err := config.Environ()
	if err != nil {
		log.Fatalln("main: invalid configuration")
	}

	initLogger(config)
	if log.IsLevelEnabled(log.TraceLevel) {
		log.Traceln(config.String())
	}

	if key := config.Database.EncryptionKey; key != "" && len(key) != 32 {
		panic(fmt.Errorf("DATABASE_ENCRYPTION_KEY must be 32 bytes long"))
	}

	store := store.New(config.Database.Driver, config.Database.Config, config.Database.EncryptionKey)
	defer store.Close()
	log.Infof("%s database initialized", config.Database.Driver)

	metricsRouter := chi.NewRouter()
	metricsRouter.Get("/metrics", promhttp.Handler().ServeHTTP)
	go func() {
		err := http.ListenAndServe(config.MetricsAddr, metricsRouter)
		if err != nil {
			log.Errorf("metrics server stopped: %s", err)
		}
	}()

	r := server.SetupRouter(
		config,
		store,
		store,
		&server.Metrics{
			Perf:            perf,
			UsersRegistered: usersRegistered,
			ToDosCreated:    todosCreated,
		},
	)
	srv := &http.Server{
		Addr:    config.ListenAddr,
		Handler: r,
	}

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Infof("todos %s listening on %s", version.String(), config.ListenAddr)
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			panic(err)
		}
	}()

	<-stopCh
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	err = srv.Shutdown(ctx)
	if err != nil {
		log.Errorf("could not shut down gracefully: %s", err)
	}
	log.Info("Successfully cleaned up resources. Stopping.")
}

// helper function configures the logging.
func initLogger(c *config.Config) {
	log.SetReportCaller(true)

	customFormatter := &log.TextFormatter{
		CallerPrettyfier: func(f *runtime.Frame) (string, string) {
			filename := path.Base(f.File)
			return "", fmt.Sprintf("[%s:%d]", filename, f.Line)
		},
	}
	customFormatter.FullTimestamp = true
	log.SetFormatter(customFormatter)

	if c.Logging.Debug {
		log.SetLevel(log.DebugLevel)
	}
	if c.Logging.Trace {
		log.SetLevel(log.TraceLevel)
	}
}
