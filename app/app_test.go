package app_test

import (
	"testing"

	"github.com/sprintertech/frame-bridge/app"
	"github.com/sprintertech/frame-bridge/config"
	"github.com/stretchr/testify/suite"
)

type NewOrchestratorTestSuite struct {
	suite.Suite
}

func TestRunNewOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(NewOrchestratorTestSuite))
}

func (s *NewOrchestratorTestSuite) Test_NoNetworkConfigs() {
	o, err := app.NewOrchestrator(&config.Config{})

	s.Nil(err)
	s.NotNil(o)
}

func (s *NewOrchestratorTestSuite) Test_PinnedSpokePool() {
	o, err := app.NewOrchestrator(&config.Config{
		NetworkConfigs: []map[string]interface{}{
			{
				"name":      "base",
				"type":      "evm",
				"spokePool": "0x09aea4b2242abC8bb4BB78D537A67a245A7bEC64",
			},
			{
				"name": "optimism",
			},
		},
	})

	s.Nil(err)
	s.NotNil(o)
}

func (s *NewOrchestratorTestSuite) Test_InvalidNetworkConfig() {
	_, err := app.NewOrchestrator(&config.Config{
		NetworkConfigs: []map[string]interface{}{
			{
				"name": "arbitrum",
			},
		},
	})

	s.NotNil(err)
}

func (s *NewOrchestratorTestSuite) Test_UnknownType() {
	_, err := app.NewOrchestrator(&config.Config{
		NetworkConfigs: []map[string]interface{}{
			{
				"name": "base",
				"type": "substrate",
			},
		},
	})

	s.NotNil(err)
}
