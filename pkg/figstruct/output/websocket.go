package output

import (
	"context"
	"fmt"
	"time"

	"github.com/gorilla/websocket"
)

// DefaultWriteWait is the write deadline of a websocket message.
const DefaultWriteWait = 10 * time.Second

// WebSocketSender sends each line as one text message over a websocket
// connection dialed on first use.
type WebSocketSender struct {
	URL       string
	WriteWait time.Duration
	Dialer    *websocket.Dialer

	conn *websocket.Conn
}

// NewWebSocketSender returns a sender for the websocket server at url.
func NewWebSocketSender(url string) *WebSocketSender {
	return &WebSocketSender{URL: url, WriteWait: DefaultWriteWait, Dialer: websocket.DefaultDialer}
}

func (s *WebSocketSender) connect(ctx context.Context) error {
	if s.conn != nil {
		return nil
	}
	dialer := s.Dialer
	if dialer == nil {
		dialer = websocket.DefaultDialer
	}
	conn, _, err := dialer.DialContext(ctx, s.URL, nil)
	if err != nil {
		return fmt.Errorf("dial %s: %w", s.URL, err)
	}
	s.conn = conn
	return nil
}

// Send implements Sender.
func (s *WebSocketSender) Send(ctx context.Context, line []byte) error {
	if err := s.connect(ctx); err != nil {
		return err
	}
	wait := s.WriteWait
	if wait <= 0 {
		wait = DefaultWriteWait
	}
	deadline := time.Now().Add(wait)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := s.conn.SetWriteDeadline(deadline); err != nil {
		return err
	}
	return s.conn.WriteMessage(websocket.TextMessage, line)
}

// Close sends a close frame and closes the connection.
func (s *WebSocketSender) Close() error {
	if s.conn == nil {
		return nil
	}
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	werr := s.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
	cerr := s.conn.Close()
	s.conn = nil
	if werr != nil {
		return werr
	}
	return cerr
}
