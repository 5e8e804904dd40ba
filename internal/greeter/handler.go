package greeter

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

// Greeting is the fixed message sent to the peer at the start of every turn.
const Greeting = "Hello!"

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true }, // Allow all origins
}

// Handler drives a single websocket connection: it greets the peer, waits for
// one reply, and repeats until the peer disconnects or the transport fails.
// Each connection is owned by exactly one handler goroutine; handlers share
// nothing with each other.
type Handler struct {
	log zerolog.Logger
}

func NewHandler(log zerolog.Logger) *Handler {
	return &Handler{log: log}
}

// ServeHTTP upgrades the request and runs the greeting loop to completion.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the HTTP error response.
		h.log.Error().Err(err).Str("remote_addr", r.RemoteAddr).Msg("Failed to upgrade websocket")
		return
	}
	defer conn.Close()

	log := h.log.With().Str("conn_id", uuid.New().String()).Logger()
	log.Info().Str("remote_addr", conn.RemoteAddr().String()).Msg("peer connected")

	if err := runLoop(log, conn); err != nil {
		if isPeerClose(err) {
			log.Info().Msg("peer closed connection")
			return
		}
		log.Error().Err(err).Msg("connection failed")
	}
}

// runLoop alternates one send and one receive per turn, forever. The greeting
// always goes out first; the read is the sole blocking wait of each turn, so a
// peer that never replies parks the loop there indefinitely.
func runLoop(log zerolog.Logger, conn *websocket.Conn) error {
	for {
		if err := conn.WriteMessage(websocket.TextMessage, []byte(Greeting)); err != nil {
			return err
		}
		log.Info().Str("text", Greeting).Msg("sent")

		msgType, msg, err := conn.ReadMessage()
		if err != nil {
			return err
		}
		if msgType != websocket.TextMessage {
			return fmt.Errorf("received non-text message")
		}
		log.Info().Str("text", string(msg)).Msg("received")
	}
}

// isPeerClose reports whether err is a graceful shutdown by the remote peer,
// as opposed to a transport failure.
func isPeerClose(err error) bool {
	return websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway)
}
