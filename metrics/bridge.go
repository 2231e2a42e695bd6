package metrics

import (
	"context"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	REQUEST_TTL = time.Minute * 10

	OutcomeSuccess = "ok"
)

type BridgeMetrics struct {
	depositCounter       metric.Int64Counter
	failureCounter       metric.Int64Counter
	requestTimeHistogram metric.Float64Histogram

	requestStartTimeCache *ttlcache.Cache[string, time.Time]
	attributes            []attribute.KeyValue
}

// NewBridgeMetrics initializes metrics related to deposit call assembly
func NewBridgeMetrics(ctx context.Context, meter metric.Meter, attributes ...attribute.KeyValue) (*BridgeMetrics, error) {
	depositCounter, err := meter.Int64Counter(
		"bridge.DepositCalls",
		metric.WithDescription("Number of deposit calls built"),
	)
	if err != nil {
		return nil, err
	}

	failureCounter, err := meter.Int64Counter(
		"bridge.Failures",
		metric.WithDescription("Number of bridge requests that failed, by error kind"),
	)
	if err != nil {
		return nil, err
	}

	requestTimeHistogram, err := meter.Float64Histogram(
		"bridge.RequestTime",
		metric.WithDescription("Time from request start until a deposit call or error is returned"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	cache := ttlcache.New(
		ttlcache.WithTTL[string, time.Time](REQUEST_TTL),
	)
	go cache.Start()
	go func() {
		<-ctx.Done()
		cache.Stop()
	}()

	return &BridgeMetrics{
		depositCounter:        depositCounter,
		failureCounter:        failureCounter,
		requestTimeHistogram:  requestTimeHistogram,
		requestStartTimeCache: cache,
		attributes:            attributes,
	}, nil
}

func (m *BridgeMetrics) StartRequest(requestID string) {
	m.requestStartTimeCache.Set(requestID, time.Now(), ttlcache.DefaultTTL)
}

// EndRequest records the request outcome, OutcomeSuccess or the error kind.
func (m *BridgeMetrics) EndRequest(requestID string, network string, outcome string) {
	attrs := metric.WithAttributes(append(
		[]attribute.KeyValue{
			attribute.String("network", network),
			attribute.String("outcome", outcome),
		},
		m.attributes...)...)

	if outcome == OutcomeSuccess {
		m.depositCounter.Add(context.Background(), 1, attrs)
	} else {
		m.failureCounter.Add(context.Background(), 1, attrs)
	}

	startTime := m.requestStartTimeCache.Get(requestID)
	if startTime == nil {
		log.Warn().Msgf("Request start time with ID %s not found", requestID)
		return
	}
	m.requestStartTimeCache.Delete(requestID)

	m.requestTimeHistogram.Record(context.Background(), time.Since(startTime.Value()).Seconds(), attrs)
}
