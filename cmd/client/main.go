package main

import (
	"bufio"
	"flag"
	"log"
	"os"
	"time"

	"github.com/gorilla/websocket"
)

// Interactive peer for the greeting server: prints every inbound message and
// sends each line typed on stdin.
func main() {
	url := flag.String("url", "ws://127.0.0.1:9080/ws", "WebSocket URL of the greeting server")
	flag.Parse()

	log.Printf(">>> Client: Attempting to connect to %s...", *url)

	dialer := websocket.Dialer{
		HandshakeTimeout: 15 * time.Second,
	}
	conn, _, err := dialer.Dial(*url, nil)
	if err != nil {
		log.Fatalf("Dial failed: %v", err)
	}
	defer conn.Close()
	log.Println("Connected. Type a line and press enter to send; Ctrl-D to quit.")

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			_, msg, err := conn.ReadMessage()
			if err != nil {
				if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
					log.Println("Server closed the connection.")
				} else {
					log.Printf("Read failed: %v", err)
				}
				return
			}
			log.Printf("<- %s", msg)
		}
	}()

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		if err := conn.WriteMessage(websocket.TextMessage, scanner.Bytes()); err != nil {
			log.Printf("Write failed: %v", err)
			break
		}
		log.Printf("-> %s", scanner.Text())
	}

	// Tell the server this is a graceful shutdown, then give the read pump a
	// moment to drain the close handshake.
	deadline := time.Now().Add(time.Second)
	closeMsg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	_ = conn.WriteControl(websocket.CloseMessage, closeMsg, deadline)
	select {
	case <-done:
	case <-time.After(time.Second):
	}
}
