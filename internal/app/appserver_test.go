package app

import (
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wsgreet/internal/greeter"
	"wsgreet/internal/shared/types"
)

func testConfig() *types.Config {
	cfg := new(types.Config)
	cfg.ServerConf.ListenAddr = "127.0.0.1:0"
	cfg.ServerConf.WSPath = "/ws"
	return cfg
}

func newRunningServer(t *testing.T) *AppServer {
	t.Helper()
	s := New(testConfig())
	require.NoError(t, s.Listen())
	go func() { _ = s.Serve() }()
	t.Cleanup(s.Stop)
	return s
}

func TestHealthEndpoint(t *testing.T) {
	s := newRunningServer(t)

	resp, err := http.Get("http://" + s.Addr() + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "ok", string(body))
}

func TestGreetingServedOnConfiguredPath(t *testing.T) {
	s := newRunningServer(t)

	conn, _, err := websocket.DefaultDialer.Dial("ws://"+s.Addr()+"/ws", nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	msgType, msg, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, websocket.TextMessage, msgType)
	assert.Equal(t, greeter.Greeting, string(msg))

	deadline := time.Now().Add(time.Second)
	closeMsg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	require.NoError(t, conn.WriteControl(websocket.CloseMessage, closeMsg, deadline))
}

func TestStopUnblocksServe(t *testing.T) {
	s := New(testConfig())
	require.NoError(t, s.Listen())

	errCh := make(chan error, 1)
	go func() { errCh <- s.Serve() }()

	s.Stop()
	s.Stop() // idempotent

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return after Stop")
	}
}
