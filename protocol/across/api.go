package across

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"math/big"
	"net/http"
	"net/url"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
)

const (
	ACROSS_URL = "https://app.across.to/api"
)

var ErrMalformedQuote = errors.New("malformed quote")

// StatusError is returned when the suggested-fees endpoint answers with a non-2xx status
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code: %d, %s", e.StatusCode, e.Body)
}

type SuggestedFeesRequest struct {
	InputToken         common.Address
	OutputToken        common.Address
	OriginChainID      uint64
	DestinationChainID uint64
	Amount             *big.Int
}

type FeeQuote struct {
	TotalRelayFee    *big.Int
	QuoteTimestamp   uint32
	SpokePoolAddress common.Address
}

type suggestedFeesResponse struct {
	TotalRelayFee *struct {
		Pct   string `json:"pct"`
		Total string `json:"total"`
	} `json:"totalRelayFee"`
	Timestamp        string `json:"timestamp"`
	SpokePoolAddress string `json:"spokePoolAddress"`
}

type AcrossAPI struct {
	url        string
	HTTPClient *http.Client
}

// NewAcrossAPI creates a suggested-fees client. The client sets no timeout of its own,
// callers bound the request through the context.
func NewAcrossAPI(url string) *AcrossAPI {
	if url == "" {
		url = ACROSS_URL
	}

	return &AcrossAPI{
		url:        url,
		HTTPClient: &http.Client{},
	}
}

// SuggestedFees requests a fresh relay fee quote for the route. Quotes are time sensitive
// and are never cached or retried.
func (a *AcrossAPI) SuggestedFees(ctx context.Context, r SuggestedFeesRequest) (*FeeQuote, error) {
	if r.Amount == nil {
		return nil, fmt.Errorf("missing amount")
	}

	params := url.Values{}
	params.Set("inputToken", r.InputToken.Hex())
	params.Set("outputToken", r.OutputToken.Hex())
	params.Set("originChainId", strconv.FormatUint(r.OriginChainID, 10))
	params.Set("destinationChainId", strconv.FormatUint(r.DestinationChainID, 10))
	params.Set("amount", r.Amount.String())
	endpoint := fmt.Sprintf("%s/suggested-fees?%s", a.url, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := a.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	s := new(suggestedFeesResponse)
	if err := json.Unmarshal(body, s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	return s.quote()
}

func (s *suggestedFeesResponse) quote() (*FeeQuote, error) {
	if s.TotalRelayFee == nil || s.TotalRelayFee.Total == "" {
		return nil, fmt.Errorf("%w: missing field 'totalRelayFee.total'", ErrMalformedQuote)
	}
	fee, ok := new(big.Int).SetString(s.TotalRelayFee.Total, 10)
	if !ok || fee.Sign() < 0 {
		return nil, fmt.Errorf("%w: invalid 'totalRelayFee.total' %s", ErrMalformedQuote, s.TotalRelayFee.Total)
	}

	if s.Timestamp == "" {
		return nil, fmt.Errorf("%w: missing field 'timestamp'", ErrMalformedQuote)
	}
	timestamp, err := strconv.ParseUint(s.Timestamp, 10, 64)
	if err != nil || timestamp > math.MaxUint32 {
		return nil, fmt.Errorf("%w: invalid 'timestamp' %s", ErrMalformedQuote, s.Timestamp)
	}

	if s.SpokePoolAddress == "" {
		return nil, fmt.Errorf("%w: missing field 'spokePoolAddress'", ErrMalformedQuote)
	}
	if !common.IsHexAddress(s.SpokePoolAddress) {
		return nil, fmt.Errorf("%w: invalid 'spokePoolAddress' %s", ErrMalformedQuote, s.SpokePoolAddress)
	}

	return &FeeQuote{
		TotalRelayFee:    fee,
		QuoteTimestamp:   uint32(timestamp),
		SpokePoolAddress: common.HexToAddress(s.SpokePoolAddress),
	}, nil
}
