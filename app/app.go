// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/sprintertech/frame-bridge/api"
	"github.com/sprintertech/frame-bridge/api/handlers"
	"github.com/sprintertech/frame-bridge/bridge"
	"github.com/sprintertech/frame-bridge/chains"
	"github.com/sprintertech/frame-bridge/chains/evm"
	"github.com/sprintertech/frame-bridge/config"
	"github.com/sprintertech/frame-bridge/health"
	"github.com/sprintertech/frame-bridge/metrics"
	"github.com/sprintertech/frame-bridge/protocol/across"
	"github.com/sygmaprotocol/sygma-core/observability"
)

var Version string

// LoadConfig reads the configuration selected by the config flags, layered on the
// shared configuration when a config url is set
func LoadConfig() (*config.Config, error) {
	configFlag := viper.GetString(config.ConfigFlagName)
	configURL := viper.GetString(config.ConfigURLFlagName)

	var base *config.RawConfig
	var err error
	if configURL != "" {
		base, err = config.GetSharedConfigFromNetwork(configURL)
		if err != nil {
			return nil, err
		}
	}

	if strings.ToLower(configFlag) == "env" {
		return config.GetConfigFromENV(base)
	}
	return config.GetConfigFromFile(configFlag, base)
}

// NewOrchestrator wires the quote client, chain registry and deposit call builder
func NewOrchestrator(configuration *config.Config) (*bridge.Orchestrator, error) {
	spokePools := make(map[chains.Network]common.Address)
	for _, networkConfig := range configuration.NetworkConfigs {
		switch networkConfig["type"] {
		case "evm", nil:
			{
				config, err := evm.NewEVMConfig(networkConfig)
				if err != nil {
					return nil, err
				}

				if config.SpokePool != (common.Address{}) {
					spokePools[config.GeneralChainConfig.Network()] = config.SpokePool
				}
			}
		default:
			return nil, fmt.Errorf("type '%s' not recognized", networkConfig["type"])
		}
	}

	registry := chains.NewRegistry()
	builder := bridge.NewDepositCallBuilder(registry, nil)
	acrossAPI := across.NewAcrossAPI(configuration.BridgeConfig.AcrossURL)
	return bridge.NewOrchestrator(
		registry,
		acrossAPI,
		builder,
		configuration.BridgeConfig.DefaultAmount,
		spokePools,
	), nil
}

func Run() error {
	configuration, err := LoadConfig()
	panicOnError(err)

	observability.ConfigureLogger(configuration.BridgeConfig.LogLevel, os.Stdout)

	log.Info().Msg("Successfully loaded configuration")

	mp := sdkmetric.NewMeterProvider()
	if configuration.BridgeConfig.OpenTelemetryCollectorURL != "" {
		mp, err = observability.InitMetricProvider(context.Background(), configuration.BridgeConfig.OpenTelemetryCollectorURL)
		panicOnError(err)
	}
	defer func() {
		if err := mp.Shutdown(context.Background()); err != nil {
			log.Error().Msgf("Error shutting down meter provider: %v", err)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	attributes := []attribute.KeyValue{
		attribute.String("env", configuration.BridgeConfig.Env),
		attribute.String("version", Version),
	}
	meter := mp.Meter("bridge-metric-provider")
	_, err = metrics.NewHostMetrics(ctx, meter, metric.WithAttributes(attributes...))
	panicOnError(err)
	bridgeMetrics, err := metrics.NewBridgeMetrics(ctx, meter, attributes...)
	panicOnError(err)

	orchestrator, err := NewOrchestrator(configuration)
	panicOnError(err)

	registry := chains.NewRegistry()
	router := api.NewRouter(
		handlers.NewTransactionHandler(orchestrator, bridgeMetrics, configuration.BridgeConfig.QuoteTimeout),
		handlers.NewNetworksHandler(registry),
		handlers.NewExplorerLinkHandler(registry),
	)

	p := pool.New().WithContext(ctx)
	p.Go(func(ctx context.Context) error {
		api.Serve(ctx, configuration.BridgeConfig.ApiAddr, router)
		return nil
	})
	p.Go(func(ctx context.Context) error {
		return health.StartHealthEndpoint(ctx, configuration.BridgeConfig.HealthPort)
	})

	sysErr := make(chan os.Signal, 1)
	signal.Notify(sysErr,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGHUP,
		syscall.SIGQUIT)

	log.Info().Msgf("Started frame bridge with PID: %d. Version: v%s", os.Getpid(), Version)

	sig := <-sysErr
	log.Info().Msgf("terminating got ` [%v] signal", sig)
	cancel()
	return p.Wait()
}

func panicOnError(err error) {
	if err != nil {
		panic(err)
	}
}
