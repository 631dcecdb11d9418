package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"

	adapthttp "fitdiary/internal/adapter/http"
	"fitdiary/internal/adapter/cache"
	"fitdiary/internal/adapter/memory"
	"fitdiary/internal/adapter/postgres"
	"fitdiary/internal/adapter/redisstore"
	"fitdiary/internal/adapter/sqlite"
	"fitdiary/internal/app"
	"fitdiary/internal/config"
	"fitdiary/internal/domain"
	"fitdiary/internal/logging"
	"fitdiary/internal/telemetry/metrics"
)

const megabyte = 1024 * 1024

func main() {
	env := flag.String("env", "development", "environment [dev | development | prod | production]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		panic(err)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogFileName:   cfg.LogsPath,
		LogToStdout:   cfg.LogToStdout,
		LogLevel:      cfg.LogLevel,
		LogFormatJSON: cfg.LogFormatJSON,
	})
	log.Warnf("---->> running in [%s] environment", *env)

	loc, err := domain.LoadZone(cfg.TimeZone)
	if err != nil {
		log.Warnf("time zone: %s, falling back to %s", err, loc)
	}
	clock := domain.NewClock(loc)

	store, closeStore, err := openStore(context.Background(), cfg)
	if err != nil {
		log.Fatalf("open %s store: %s", cfg.Storage, err)
	}
	defer closeStore()
	log.Debugf("using %s storage", cfg.Storage)

	promRegistry := metrics.SetupPrometheus()
	metricsManager := metrics.NewManager("fitdiary", "server", promRegistry)

	state := app.NewState(cache.New(store, cfg.CacheSizeMB*megabyte))
	state.OnSaveError(func(key domain.RecordKey, err error) {
		log.Errorf("save %s: %s", key, err)
		metricsManager.CounterRecordSaveFailures.WithLabelValues(string(key)).Inc()
	})
	state.Rehydrate(context.Background())
	svc := app.NewServices(state, clock)

	switch cmd := flag.Arg(0); cmd {
	case "", "serve":
		serve(cfg, svc, metricsManager, promRegistry)
	case "today":
		if err := printToday(os.Stdout, svc.Dashboard.Today()); err != nil {
			log.Fatalf("today: %s", err)
		}
	default:
		log.Fatalf("unknown command: %s", cmd)
	}
}

// openStore returns the configured record store and a func releasing it.
func openStore(ctx context.Context, cfg *config.Config) (domain.RecordStore, func(), error) {
	switch strings.ToLower(cfg.Storage) {
	case config.StorageMemory:
		return memory.New(), func() {}, nil
	case config.StoragePostgres:
		db, err := postgres.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return db, func() { _ = db.Close() }, nil
	case config.StorageRedis:
		client, err := redisstore.NewClient(ctx, cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			return nil, nil, err
		}
		return redisstore.NewStore(client, cfg.RedisPrefix), func() { _ = client.Close() }, nil
	default:
		db, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return db, func() { _ = db.Close() }, nil
	}
}

func serve(cfg *config.Config, svc *app.Services, mm *metrics.Manager, reg *prometheus.Registry) {
	handler := adapthttp.New(svc, adapthttp.Options{
		WebDir:         cfg.WebDir,
		MaxUploadBytes: cfg.MaxUploadBytes,
		AllowedOrigins: cfg.AllowedOrigins,
		Metrics:        mm,
		Gatherer:       reg,
	}).Handler()

	httpServer := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	chOsInterrupt := make(chan os.Signal, 1)
	signal.Notify(chOsInterrupt, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Infof("listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	receivedSig := <-chOsInterrupt
	log.Warnf("signal [%s] received, shutting down ...", receivedSig)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Errorf("shutdown: %s", err)
	}
}

// printToday draws today's rings, easing each bar from empty to its value.
func printToday(w io.Writer, d app.Dashboard) error {
	fmt.Fprintf(w, "%s  %s\n%s\n\n", d.Date, d.Name, d.Greeting)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	for _, ring := range d.Rings {
		tw := domain.Tween{To: ring.Value, Goal: ring.Goal, Duration: 400 * time.Millisecond}
		err := domain.Animate(ctx, tw, 0, func(v float64) {
			fmt.Fprintf(w, "\r%-8s %s %6.0f / %.0f %s", ring.Label, bar(v, ring.Goal), v, ring.Goal, ring.Unit)
		})
		if err != nil {
			return err
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "\nkcal %.0f  sets %d", d.KcalIntake, d.Activities)
	if d.Weight.Recorded {
		fmt.Fprintf(w, "  weight %.1f %s (%s)", d.Weight.Value, d.Weight.Unit, d.Weight.Date)
	}
	if d.GoalMet {
		fmt.Fprint(w, "  goal met")
	}
	fmt.Fprintln(w)
	return nil
}

func bar(value, goal float64) string {
	const width = 20
	filled := int(domain.RingFraction(value, goal) * width)
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", width-filled) + "]"
}
