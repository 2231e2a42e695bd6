package metrics_test

import (
	"context"
	"testing"

	"github.com/sprintertech/frame-bridge/metrics"
	"github.com/stretchr/testify/suite"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric/noop"
)

type BridgeMetricsTestSuite struct {
	suite.Suite

	metrics *metrics.BridgeMetrics
	cancel  context.CancelFunc
}

func TestRunBridgeMetricsTestSuite(t *testing.T) {
	suite.Run(t, new(BridgeMetricsTestSuite))
}

func (s *BridgeMetricsTestSuite) SetupTest() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	m, err := metrics.NewBridgeMetrics(ctx, noop.NewMeterProvider().Meter("test"), attribute.String("env", "test"))
	s.Nil(err)
	s.metrics = m
}

func (s *BridgeMetricsTestSuite) TearDownTest() {
	s.cancel()
}

func (s *BridgeMetricsTestSuite) Test_RequestLifecycle() {
	s.NotPanics(func() {
		s.metrics.StartRequest("1")
		s.metrics.EndRequest("1", "base", metrics.OutcomeSuccess)
	})
}

func (s *BridgeMetricsTestSuite) Test_EndRequest_UnknownRequest() {
	s.NotPanics(func() {
		s.metrics.EndRequest("unknown", "base", "quote unavailable")
	})
}

func (s *BridgeMetricsTestSuite) Test_NewHostMetrics() {
	_, err := metrics.NewHostMetrics(context.Background(), noop.NewMeterProvider().Meter("test"), nil)
	s.Nil(err)
}
