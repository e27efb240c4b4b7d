package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	stdlog "log"
	"net/http"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"dispatch/internal/pkg/config"
	"dispatch/internal/pkg/kafka"
	"dispatch/internal/simulator"
	"dispatch/pkg/geo"
	"dispatch/pkg/logger"
	"dispatch/pkg/logger/zap_adapter"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	var (
		tripID      int64
		from, to    string
		steps       int
		interval    time.Duration
		metricsPort string
	)
	flag.Int64Var(&tripID, "trip", 0, "Trip id")
	flag.StringVar(&from, "from", "", "Start point as lat,lng")
	flag.StringVar(&to, "to", "", "End point as lat,lng")
	flag.IntVar(&steps, "steps", 20, "Number of route segments")
	flag.DurationVar(&interval, "interval", 5*time.Second, "Delay between samples")
	flag.StringVar(&metricsPort, "metrics-port", "2112", "Port for /metrics, empty to disable")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.LoadProducer()
	if err != nil {
		stdlog.Fatalf("load config: %v", err)
	}

	zapLogger, err := zap_adapter.NewZapAdapter(cfg.LogLevel)
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		_ = zapLogger.Sync()
	}()

	var log logger.Logger = zapLogger

	start, err := parsePoint(from)
	if err != nil {
		log.Error("bad -from", logger.NewField("error", err))
		return
	}
	end, err := parsePoint(to)
	if err != nil {
		log.Error("bad -to", logger.NewField("error", err))
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if metricsPort != "" {
		metricsServer := &http.Server{
			Addr:              ":" + metricsPort,
			Handler:           promhttp.Handler(),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error("metrics server failed", logger.NewField("error", err))
			}
		}()
		defer metricsServer.Close()
	}

	producer, err := kafka.NewProducer(ctx, log, &cfg.Kafka)
	if err != nil {
		log.Error("kafka producer", logger.NewField("error", err))
		return
	}
	defer func() {
		if err := producer.Close(); err != nil {
			log.Error("failed to close producer", logger.NewField("error", err))
		}
	}()

	_, err = simulator.New(log, producer).Drive(ctx, simulator.Config{
		TripID:   tripID,
		From:     start,
		To:       end,
		Steps:    steps,
		Interval: interval,
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Error("simulation failed", logger.NewField("error", err))
	}
}

func parsePoint(raw string) (geo.Point, error) {
	lat, lng, ok := strings.Cut(raw, ",")
	if !ok {
		return geo.Point{}, fmt.Errorf("expected lat,lng, got %q", raw)
	}
	latV, err := strconv.ParseFloat(strings.TrimSpace(lat), 64)
	if err != nil {
		return geo.Point{}, fmt.Errorf("lat: %w", err)
	}
	lngV, err := strconv.ParseFloat(strings.TrimSpace(lng), 64)
	if err != nil {
		return geo.Point{}, fmt.Errorf("lng: %w", err)
	}
	return geo.Point{Lat: latV, Lng: lngV}, nil
}
