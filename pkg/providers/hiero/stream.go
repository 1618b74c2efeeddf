package hiero

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/hashgraph-labs/ledgerkit/pkg/ledger"
	"github.com/hashgraph-labs/ledgerkit/pkg/logging"
)

// TopicStream is a live subscription to a consensus topic over the
// gateway's websocket endpoint. Messages arrive on Messages() in
// consensus order; the stream closes the channel when the connection
// drops or the context is cancelled.
type TopicStream struct {
	topicID ledger.EntityID
	conn    *websocket.Conn
	out     chan ledger.TopicMessage
	cancel  context.CancelFunc
	logger  *slog.Logger
}

// SubscribeTopic opens a websocket subscription for topicID starting at
// the next message. The caller owns the stream and must Close it.
func (c *Client) SubscribeTopic(ctx context.Context, topicID ledger.EntityID) (ledger.TopicStream, error) {
	wsURL := strings.Replace(c.baseURL, "https://", "wss://", 1)
	wsURL = strings.Replace(wsURL, "http://", "ws://", 1)
	wsURL += "/topics/" + topicID.String() + "/stream"

	header := http.Header{}
	header.Set("Authorization", "Bearer "+c.cfg.OperatorKey)
	header.Set("X-Operator-Account", c.cfg.Operator.String())

	dialer := websocket.Dialer{HandshakeTimeout: 10 * time.Second}
	conn, resp, err := dialer.DialContext(ctx, wsURL, header)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return nil, ledger.ErrTopicNotFound
		}
		return nil, err
	}

	streamCtx, cancel := context.WithCancel(ctx)
	s := &TopicStream{
		topicID: topicID,
		conn:    conn,
		out:     make(chan ledger.TopicMessage, 256),
		cancel:  cancel,
		logger:  logging.NewComponentLogger(slog.Default(), "topic_stream"),
	}

	s.logger.Info("topic_stream_opened", slog.String("topic_id", topicID.String()))
	go s.readLoop(streamCtx)
	return s, nil
}

func (s *TopicStream) Messages() <-chan ledger.TopicMessage { return s.out }

func (s *TopicStream) Close() error {
	s.cancel()
	return s.conn.Close()
}

func (s *TopicStream) readLoop(ctx context.Context) {
	defer close(s.out)
	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if ctx.Err() == nil && !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				s.logger.Error("topic_stream_read_error",
					slog.String("topic_id", s.topicID.String()),
					slog.String("error", err.Error()))
			}
			return
		}
		var wire wireMessage
		if err := json.Unmarshal(data, &wire); err != nil {
			s.logger.Warn("topic_stream_malformed_frame",
				slog.String("topic_id", s.topicID.String()))
			continue
		}
		msg, err := wire.decode()
		if err != nil {
			s.logger.Warn("topic_stream_undecodable_payload",
				slog.String("topic_id", s.topicID.String()),
				slog.Int64("sequence", wire.SequenceNumber))
			continue
		}
		select {
		case <-ctx.Done():
			return
		case s.out <- msg:
		}
	}
}

var _ ledger.TopicStreamer = (*Client)(nil)
