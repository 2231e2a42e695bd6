// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/sprintertech/frame-bridge/config"
	"github.com/stretchr/testify/suite"
)

type GetConfigTestSuite struct {
	suite.Suite
}

func TestRunGetConfigTestSuite(t *testing.T) {
	suite.Run(t, new(GetConfigTestSuite))
}

func (s *GetConfigTestSuite) writeConfig(content string) string {
	path := filepath.Join(s.T().TempDir(), "config.json")
	err := os.WriteFile(path, []byte(content), 0600)
	s.Nil(err)
	return path
}

func (s *GetConfigTestSuite) Test_GetConfigFromFile_Defaults() {
	path := s.writeConfig(`{"bridge": {}}`)

	cfg, err := config.GetConfigFromFile(path, nil)

	s.Nil(err)
	s.Equal(config.BridgeConfig{
		LogLevel:      zerolog.InfoLevel,
		Env:           "dev",
		ApiAddr:       ":8080",
		HealthPort:    9001,
		AcrossURL:     "https://app.across.to/api",
		DefaultAmount: "0.01",
		QuoteTimeout:  10 * time.Second,
	}, cfg.BridgeConfig)
}

func (s *GetConfigTestSuite) Test_GetConfigFromFile_CustomValues() {
	path := s.writeConfig(`{
		"bridge": {
			"logLevel": "debug",
			"apiAddr": ":3000",
			"acrossURL": "https://testnet.across.to/api/",
			"defaultAmount": "0.05",
			"quoteTimeout": 3
		},
		"networks": [
			{"name": "base", "spokePool": "0x09aea4b2242abC8bb4BB78D537A67a245A7bEC64"}
		]
	}`)

	cfg, err := config.GetConfigFromFile(path, nil)

	s.Nil(err)
	s.Equal(zerolog.DebugLevel, cfg.BridgeConfig.LogLevel)
	s.Equal(":3000", cfg.BridgeConfig.ApiAddr)
	s.Equal("https://testnet.across.to/api", cfg.BridgeConfig.AcrossURL)
	s.Equal("0.05", cfg.BridgeConfig.DefaultAmount)
	s.Equal(3*time.Second, cfg.BridgeConfig.QuoteTimeout)
	s.Len(cfg.NetworkConfigs, 1)
}

func (s *GetConfigTestSuite) Test_GetConfigFromFile_InvalidDefaultAmount() {
	path := s.writeConfig(`{"bridge": {"defaultAmount": "abc"}}`)

	_, err := config.GetConfigFromFile(path, nil)

	s.NotNil(err)
}

func (s *GetConfigTestSuite) Test_GetConfigFromFile_InvalidLogLevel() {
	path := s.writeConfig(`{"bridge": {"logLevel": "loud"}}`)

	_, err := config.GetConfigFromFile(path, nil)

	s.NotNil(err)
}

func (s *GetConfigTestSuite) Test_GetConfigFromFile_MissingFile() {
	_, err := config.GetConfigFromFile(filepath.Join(s.T().TempDir(), "missing.json"), nil)

	s.NotNil(err)
}

func (s *GetConfigTestSuite) Test_GetConfigFromFile_MergesSharedConfig() {
	path := s.writeConfig(`{"bridge": {"apiAddr": ":3000"}}`)
	base := &config.RawConfig{
		BridgeConfig: config.RawBridgeConfig{
			ApiAddr: ":4000",
			Env:     "production",
		},
		NetworkConfigs: []map[string]interface{}{
			{"name": "optimism"},
		},
	}

	cfg, err := config.GetConfigFromFile(path, base)

	s.Nil(err)
	s.Equal(":3000", cfg.BridgeConfig.ApiAddr)
	s.Equal("production", cfg.BridgeConfig.Env)
	s.Len(cfg.NetworkConfigs, 1)
}

func (s *GetConfigTestSuite) Test_GetConfigFromENV() {
	s.T().Setenv("BRIDGE_APIADDR", ":5000")
	s.T().Setenv("BRIDGE_LOGLEVEL", "warn")
	s.T().Setenv("BRIDGE_QUOTETIMEOUT", "2")
	s.T().Setenv("BRIDGE_NETWORKS", `[{"name": "ethereum"}]`)

	cfg, err := config.GetConfigFromENV(nil)

	s.Nil(err)
	s.Equal(":5000", cfg.BridgeConfig.ApiAddr)
	s.Equal(zerolog.WarnLevel, cfg.BridgeConfig.LogLevel)
	s.Equal(2*time.Second, cfg.BridgeConfig.QuoteTimeout)
	s.Equal(uint16(9001), cfg.BridgeConfig.HealthPort)
	s.Equal([]map[string]interface{}{{"name": "ethereum"}}, cfg.NetworkConfigs)
}

func (s *GetConfigTestSuite) Test_GetConfigFromENV_InvalidNetworks() {
	s.T().Setenv("BRIDGE_NETWORKS", `{invalid`)

	_, err := config.GetConfigFromENV(nil)

	s.NotNil(err)
}
