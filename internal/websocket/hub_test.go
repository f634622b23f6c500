package websocket

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"importduty/internal/metrics"
	"importduty/internal/service"
	"importduty/internal/tariff"
)

func newTestHub(m *metrics.Metrics) *Hub {
	calc := service.NewCalculationService(service.CalculationServiceConfig{
		Rates:          tariff.DefaultRates(),
		AssessmentYear: 2025,
	})
	return NewHub(calc, m)
}

func TestAnswer(t *testing.T) {
	hub := newTestHub(nil)
	ctx := context.Background()

	ok := hub.Answer(ctx, []byte(`{"request_id":"r1","category":"motorcycle","cif":350000,"engine_cc":650}`))
	assert.Equal(t, StatusOK, ok.Status)
	assert.Equal(t, "r1", ok.RequestID)
	require.NotNil(t, ok.Data)
	assert.InDelta(t, 650_125, ok.Data.Result.TotalLanded, 1e-6)

	invalid := hub.Answer(ctx, []byte(`{"request_id":"r2","category":"vehicle"}`))
	assert.Equal(t, StatusInvalid, invalid.Status)
	assert.Equal(t, "r2", invalid.RequestID)
	assert.Equal(t, map[string]string{"crsp": "Enter CRSP", "year": "Valid year", "engine_cc": "Enter CC"}, invalid.Fields)

	noCategory := hub.Answer(ctx, []byte(`{"request_id":"r3"}`))
	assert.Equal(t, StatusInvalid, noCategory.Status)
	assert.Equal(t, map[string]string{"category": "Select item type"}, noCategory.Fields)

	broken := hub.Answer(ctx, []byte(`not json`))
	assert.Equal(t, StatusError, broken.Status)
	assert.Contains(t, broken.Error, "Invalid request payload")
}

func TestLiveCalculatorRoundTrip(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := metrics.New(prometheus.NewRegistry())
	hub := newTestHub(m)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	router := gin.New()
	router.GET("/api/ws", func(c *gin.Context) { ServeWs(hub, c) })
	srv := httptest.NewServer(router)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.WriteMessage(websocket.TextMessage,
		[]byte(`{"request_id":"a","category":"cargo","cif":100000,"hs_code":"8517"}`)))

	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	var reply LiveReply
	require.NoError(t, conn.ReadJSON(&reply))
	assert.Equal(t, "a", reply.RequestID)
	assert.Equal(t, StatusOK, reply.Status)
	require.NotNil(t, reply.Data)
	assert.Equal(t, "8517", reply.Data.HSCode.Code)

	assert.Eventually(t, func() bool { return hub.Len() == 1 }, time.Second, 10*time.Millisecond)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.LiveClients))

	require.NoError(t, conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")))
	assert.Eventually(t, func() bool { return hub.Len() == 0 }, time.Second, 10*time.Millisecond)
	assert.Equal(t, 0.0, testutil.ToFloat64(m.LiveClients))
}

func TestCheckOrigin(t *testing.T) {
	check := CheckOrigin([]string{"http://localhost:5173"})

	req := httptest.NewRequest(http.MethodGet, "/api/ws", nil)
	assert.True(t, check(req))

	req.Header.Set("Origin", "http://localhost:5173")
	assert.True(t, check(req))

	req.Header.Set("Origin", "http://evil.example")
	assert.False(t, check(req))

	assert.True(t, CheckOrigin(nil)(req))
}
