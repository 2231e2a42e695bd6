package api_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sprintertech/frame-bridge/api"
	"github.com/sprintertech/frame-bridge/api/handlers"
	mock_handlers "github.com/sprintertech/frame-bridge/api/handlers/mock"
	"github.com/sprintertech/frame-bridge/bridge"
	"github.com/sprintertech/frame-bridge/chains"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const caller = "0xde526bA5d1ad94cC59D7A79d99A59F607d31A657"

type RouterTestSuite struct {
	suite.Suite

	mockBridger *mock_handlers.MockBridger
	mockMetrics *mock_handlers.MockRequestMetrics
	router      http.Handler
}

func TestRunRouterTestSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func (s *RouterTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.mockBridger = mock_handlers.NewMockBridger(ctrl)
	s.mockMetrics = mock_handlers.NewMockRequestMetrics(ctrl)

	registry := chains.NewRegistry()
	s.router = api.NewRouter(
		handlers.NewTransactionHandler(s.mockBridger, s.mockMetrics, time.Second),
		handlers.NewNetworksHandler(registry),
		handlers.NewExplorerLinkHandler(registry),
	)
}

func (s *RouterTestSuite) frameRequest(target string) *http.Request {
	body := `{"untrustedData":{"fid":1,"address":"` + caller + `","inputText":"","buttonIndex":1}}`
	return httptest.NewRequest(http.MethodPost, target, bytes.NewReader([]byte(body)))
}

func (s *RouterTestSuite) Test_FrameRoute_UsesQueryNetwork() {
	s.mockMetrics.EXPECT().StartRequest(gomock.Any())
	s.mockMetrics.EXPECT().EndRequest(gomock.Any(), "optimism", bridge.ErrQuoteUnavailable.Error())
	s.mockBridger.EXPECT().Execute(gomock.Any(), "optimism", "", caller).Return(nil, &bridge.BridgeError{
		Kind: bridge.ErrQuoteUnavailable,
	})
	recorder := httptest.NewRecorder()

	s.router.ServeHTTP(recorder, s.frameRequest("/api/tx?from=optimism"))

	s.Equal(http.StatusBadGateway, recorder.Code)
	s.NotEmpty(recorder.Header().Get(handlers.REQUEST_ID_HEADER))
}

func (s *RouterTestSuite) Test_NetworkRoute_KeepsRequestID() {
	s.mockMetrics.EXPECT().StartRequest("request")
	s.mockMetrics.EXPECT().EndRequest("request", "ethereum", bridge.ErrInvalidAmount.Error())
	s.mockBridger.EXPECT().Execute(gomock.Any(), "ethereum", "", caller).Return(nil, &bridge.BridgeError{
		Kind: bridge.ErrInvalidAmount,
	})
	req := s.frameRequest("/v1/networks/ethereum/transactions")
	req.Header.Set(handlers.REQUEST_ID_HEADER, "request")
	recorder := httptest.NewRecorder()

	s.router.ServeHTTP(recorder, req)

	s.Equal(http.StatusBadRequest, recorder.Code)
	s.Equal("request", recorder.Header().Get(handlers.REQUEST_ID_HEADER))
}

func (s *RouterTestSuite) Test_FrameRoute_MissingNetworkQuery() {
	recorder := httptest.NewRecorder()

	s.router.ServeHTTP(recorder, s.frameRequest("/api/tx"))

	s.Equal(http.StatusNotFound, recorder.Code)
}

func (s *RouterTestSuite) Test_Metrics_CountsRequests() {
	recorder := httptest.NewRecorder()
	s.router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/networks", nil))
	s.Equal(http.StatusOK, recorder.Code)

	recorder = httptest.NewRecorder()
	s.router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	s.Equal(http.StatusOK, recorder.Code)
	s.True(strings.Contains(
		recorder.Body.String(),
		`frame_bridge_http_requests_total{route="/v1/networks",status="200"} 1`,
	))
}
