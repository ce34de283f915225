// cmd/adcsd/main.go
package main

import (
	"context"
	"flag"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/iotasat/adcs-supervisor/internal/actuator"
	"github.com/iotasat/adcs-supervisor/internal/bench"
	"github.com/iotasat/adcs-supervisor/internal/config"
	"github.com/iotasat/adcs-supervisor/internal/engine"
	"github.com/iotasat/adcs-supervisor/internal/logging"
	"github.com/iotasat/adcs-supervisor/internal/metrics"
	"github.com/iotasat/adcs-supervisor/internal/statefile"
	"github.com/iotasat/adcs-supervisor/internal/supervisor"
	"github.com/iotasat/adcs-supervisor/internal/telemetry"
	"github.com/iotasat/adcs-supervisor/internal/telemetry/sim"
)

func main() {
	cfgPath := flag.String("cfg", "adcsd.yaml", "path to config file")
	flag.Parse()

	// --------------------
	// Load + default + validate config
	// --------------------

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	config.ApplyDefaults(cfg)
	if err := config.Validate(cfg); err != nil {
		log.Fatalf("config validation failed: %v", err)
	}

	closeLog, err := logging.Setup(cfg.ADCS.Log.File, cfg.ADCS.Log.Level)
	if err != nil {
		log.Fatalf("logging setup failed: %v", err)
	}
	defer closeLog()

	// --------------------
	// Build telemetry provider + actuator sink
	// --------------------

	var (
		provider telemetry.Provider
		sink     actuator.Sink
		statusW  supervisor.StatusWriter
	)

	switch cfg.ADCS.Telemetry.Source {
	case config.SourceBench:
		// One bench connection carries telemetry reads, torque commands
		// and the status writeback.
		cli, err := bench.New(bench.Config{
			Endpoint: cfg.ADCS.Telemetry.Bench.Endpoint,
			UnitID:   cfg.ADCS.Telemetry.Bench.UnitID,
			Timeout:  time.Duration(cfg.ADCS.Telemetry.Bench.TimeoutMs) * time.Millisecond,
		})
		if err != nil {
			log.Fatalf("bench connect failed: %v", err)
		}
		defer cli.Close()
		provider, sink, statusW = cli, cli, cli

	case config.SourceSim:
		provider = sim.New(sim.Config{
			Seed:                  cfg.ADCS.Telemetry.Sim.Seed,
			SafePowerThresholdPct: cfg.ADCS.Control.SafePowerThresholdPct,
			EclipseFraction:       cfg.ADCS.Telemetry.Sim.EclipseFraction,
			SensorFailureProb:     cfg.ADCS.Telemetry.Sim.SensorFailureProb,
		})
		sink = actuator.NopSink{}
	}

	// --------------------
	// Metrics listener (optional)
	// --------------------

	met := metrics.New()
	if addr := cfg.ADCS.Monitoring.ListenAddr; addr != "" {
		go func() {
			if err := met.Serve(addr); err != nil {
				log.Errorf("metrics listener failed: %v", err)
			}
		}()
	}

	// --------------------
	// Supervisor
	// --------------------

	sup := supervisor.New(
		supervisor.Config{
			Thresholds: engine.Thresholds{
				AngularRateDegS: cfg.ADCS.Control.AngularRateThresholdDegS,
				SunAlignmentDeg: cfg.ADCS.Control.SunAlignmentThresholdDeg,
			},
			Limits: actuator.Limits{
				MagnetorquerMaxNm:   cfg.ADCS.Actuators.MagnetorquerMaxNm,
				ReactionWheelMaxNm:  cfg.ADCS.Actuators.ReactionWheelMaxNm,
				KpSun:               cfg.ADCS.Actuators.KpSun,
				KpPointing:          cfg.ADCS.Actuators.KpPointing,
				AngularRateDegS:     cfg.ADCS.Control.AngularRateThresholdDegS,
				SunAlignmentDeg:     cfg.ADCS.Control.SunAlignmentThresholdDeg,
				PointingDeadbandDeg: cfg.ADCS.Control.PointingDeadbandDeg,
			},
			HighRatePersistence:   cfg.ADCS.Fault.HighRatePersistenceCount,
			SensorFailPersistence: cfg.ADCS.Fault.SensorFailPersistenceCount,
			SensorRetryCount:      cfg.ADCS.Fault.SensorRetryCount,
			SensorRetryDelay:      time.Duration(cfg.ADCS.Fault.SensorRetryDelayMs) * time.Millisecond,
			Interval:              time.Duration(cfg.ADCS.Loop.IntervalMs) * time.Millisecond,
		},
		provider,
		sink,
		statefile.New(cfg.ADCS.Persistence.StateFile),
		met,
		statusW,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sup.Run(ctx)
	log.Infof("shutdown requested, last mode %s", sup.Current())
}
