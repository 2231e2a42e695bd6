// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/creasty/defaults"
	"github.com/imdario/mergo"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"github.com/sprintertech/frame-bridge/chains/evm/units"
)

const (
	ENV_PREFIX = "BRIDGE"
)

type Config struct {
	BridgeConfig   BridgeConfig
	NetworkConfigs []map[string]interface{}
}

type BridgeConfig struct {
	LogLevel                  zerolog.Level
	Env                       string
	ApiAddr                   string
	HealthPort                uint16
	OpenTelemetryCollectorURL string
	AcrossURL                 string
	DefaultAmount             string
	QuoteTimeout              time.Duration
}

type RawConfig struct {
	BridgeConfig   RawBridgeConfig          `mapstructure:"bridge" json:"bridge"`
	NetworkConfigs []map[string]interface{} `mapstructure:"networks" json:"networks"`
}

type RawBridgeConfig struct {
	LogLevel                  string `mapstructure:"logLevel" json:"logLevel" default:"info"`
	Env                       string `mapstructure:"env" json:"env" default:"dev"`
	ApiAddr                   string `mapstructure:"apiAddr" json:"apiAddr" default:":8080"`
	HealthPort                uint16 `mapstructure:"healthPort" json:"healthPort" default:"9001"`
	OpenTelemetryCollectorURL string `mapstructure:"openTelemetryCollectorURL" json:"openTelemetryCollectorURL"`
	AcrossURL                 string `mapstructure:"acrossURL" json:"acrossURL" default:"https://app.across.to/api"`
	DefaultAmount             string `mapstructure:"defaultAmount" json:"defaultAmount" default:"0.01"`
	// seconds
	QuoteTimeout uint64 `mapstructure:"quoteTimeout" json:"quoteTimeout" default:"10"`
}

func (c *RawBridgeConfig) Validate() error {
	if c.ApiAddr == "" {
		return fmt.Errorf("required field bridge.ApiAddr empty")
	}
	if c.AcrossURL == "" {
		return fmt.Errorf("required field bridge.AcrossURL empty")
	}
	if _, err := units.ParseEther(c.DefaultAmount); err != nil {
		return fmt.Errorf("invalid bridge.DefaultAmount: %w", err)
	}
	if c.QuoteTimeout == 0 {
		return fmt.Errorf("bridge.QuoteTimeout must be positive")
	}
	return nil
}

// GetConfigFromFile reads the JSON/YAML configuration file at path and fills
// empty values from the shared base configuration, if any.
func GetConfigFromFile(path string, base *RawConfig) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	err := v.ReadInConfig()
	if err != nil {
		return nil, err
	}

	raw := &RawConfig{}
	err = v.Unmarshal(raw)
	if err != nil {
		return nil, err
	}

	return processRawConfig(raw, base)
}

// GetConfigFromENV reads BRIDGE_* environment variables, e.g. BRIDGE_APIADDR.
// Network overrides are passed as a JSON array in BRIDGE_NETWORKS.
func GetConfigFromENV(base *RawConfig) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(ENV_PREFIX)
	v.AutomaticEnv()

	raw := &RawConfig{
		BridgeConfig: RawBridgeConfig{
			LogLevel:                  v.GetString("LOGLEVEL"),
			Env:                       v.GetString("ENV"),
			ApiAddr:                   v.GetString("APIADDR"),
			HealthPort:                uint16(v.GetUint("HEALTHPORT")), // nolint:gosec
			OpenTelemetryCollectorURL: v.GetString("OPENTELEMETRYCOLLECTORURL"),
			AcrossURL:                 v.GetString("ACROSSURL"),
			DefaultAmount:             v.GetString("DEFAULTAMOUNT"),
			QuoteTimeout:              v.GetUint64("QUOTETIMEOUT"),
		},
	}

	networks := v.GetString("NETWORKS")
	if networks != "" {
		err := json.Unmarshal([]byte(networks), &raw.NetworkConfigs)
		if err != nil {
			return nil, fmt.Errorf("invalid %s_NETWORKS: %w", ENV_PREFIX, err)
		}
	}

	return processRawConfig(raw, base)
}

// GetSharedConfigFromNetwork fetches the shared JSON configuration that local
// configuration is layered on
func GetSharedConfigFromNetwork(url string) (*RawConfig, error) {
	resp, err := http.Get(url) // nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d, %s", resp.StatusCode, url)
	}

	raw := &RawConfig{}
	err = json.NewDecoder(resp.Body).Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	return raw, nil
}

func processRawConfig(raw *RawConfig, base *RawConfig) (*Config, error) {
	if base != nil {
		err := mergo.Merge(raw, *base)
		if err != nil {
			return nil, err
		}
	}

	err := defaults.Set(&raw.BridgeConfig)
	if err != nil {
		return nil, err
	}

	err = raw.BridgeConfig.Validate()
	if err != nil {
		return nil, err
	}

	logLevel, err := zerolog.ParseLevel(strings.ToLower(raw.BridgeConfig.LogLevel))
	if err != nil {
		return nil, fmt.Errorf("invalid bridge.LogLevel: %w", err)
	}

	return &Config{
		BridgeConfig: BridgeConfig{
			LogLevel:                  logLevel,
			Env:                       raw.BridgeConfig.Env,
			ApiAddr:                   raw.BridgeConfig.ApiAddr,
			HealthPort:                raw.BridgeConfig.HealthPort,
			OpenTelemetryCollectorURL: raw.BridgeConfig.OpenTelemetryCollectorURL,
			AcrossURL:                 strings.TrimSuffix(raw.BridgeConfig.AcrossURL, "/"),
			DefaultAmount:             raw.BridgeConfig.DefaultAmount,
			// nolint:gosec
			QuoteTimeout: time.Duration(raw.BridgeConfig.QuoteTimeout) * time.Second,
		},
		NetworkConfigs: raw.NetworkConfigs,
	}, nil
}
