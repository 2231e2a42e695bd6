package config_test

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/sprintertech/frame-bridge/config"
	"github.com/stretchr/testify/suite"
)

type BindFlagsTestSuite struct {
	suite.Suite
}

func TestRunBindFlagsTestSuite(t *testing.T) {
	suite.Run(t, new(BindFlagsTestSuite))
}

func (s *BindFlagsTestSuite) Test_DefaultConfigIsEnv() {
	cmd := &cobra.Command{}
	config.BindFlags(cmd)

	s.Equal("env", viper.GetString(config.ConfigFlagName))
	s.Equal("", viper.GetString(config.ConfigURLFlagName))

	cfg, err := config.GetConfigFromENV(nil)
	s.Nil(err)
	s.Equal(":8080", cfg.BridgeConfig.ApiAddr)
}
