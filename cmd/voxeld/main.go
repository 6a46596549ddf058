package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/voxelforge/voxeld/internal/sim"
	"github.com/voxelforge/voxeld/internal/sim/config"
)

func main() {
	cfg := config.DefaultConfig()

	configPath := flag.String("config", "", "path to YAML config file")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "world generation seed")
	flag.StringVar(&cfg.GeneratorType, "generator", cfg.GeneratorType, "terrain generator: default or flat")
	flag.IntVar(&cfg.RenderDistance, "render-distance", cfg.RenderDistance, "chunk streaming radius")
	flag.IntVar(&cfg.MeshBudget, "mesh-budget", cfg.MeshBudget, "dirty-mesh rebuilds per tick")
	flag.IntVar(&cfg.Workers, "workers", cfg.Workers, "mesh worker goroutines")
	flag.IntVar(&cfg.TickRate, "tick-rate", cfg.TickRate, "simulation ticks per second")
	flag.StringVar(&cfg.MetricsAddr, "metrics-addr", cfg.MetricsAddr, "prometheus listen address")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *configPath != "" {
		fromFile, err := config.Load(*configPath)
		if err != nil {
			log.Error("load config", "error", err)
			os.Exit(1)
		}
		explicit := make(map[string]bool)
		flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
		config.Merge(cfg, fromFile, explicit)
	}
	if err := cfg.Validate(); err != nil {
		log.Error("invalid config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	go serveMetrics(log, cfg.MetricsAddr, reg)

	s := sim.New(cfg, log, reg)
	defer s.Close()

	log.Info("simulation started",
		"generator", cfg.GeneratorType,
		"seed", cfg.Seed,
		"renderDistance", cfg.RenderDistance,
		"workers", cfg.Workers,
	)

	observer := s.World().FindSpawnPosition()
	start := time.Now()
	s.BuildAll(observer)
	log.Info("initial load complete",
		"chunks", s.World().ChunkCount(),
		"spawn", observer,
		"elapsed", time.Since(start),
	)

	run(ctx, s, cfg, observer)
	log.Info("simulation stopped")
}

// run ticks the simulation until the context is cancelled, walking the
// observer in a straight line so chunk streaming stays under load.
func run(ctx context.Context, s *sim.Simulation, cfg *config.Config, observer mgl32.Vec3) {
	const walkSpeed = 4.3 // blocks per second

	interval := time.Second / time.Duration(cfg.TickRate)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	step := float32(walkSpeed) * float32(interval.Seconds())
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			observer[0] += step
			s.Tick(observer)
		}
	}
}

func serveMetrics(log *slog.Logger, addr string, reg *prometheus.Registry) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Error("metrics server", "error", err)
	}
}
