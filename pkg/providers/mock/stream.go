package mock

import (
	"context"

	"github.com/hashgraph-labs/ledgerkit/pkg/ledger"
)

// topicSubscription follows one topic. Retained messages are replayed
// on subscribe; later submissions are fanned out as they commit. closed
// and the subs slice are guarded by the client mutex.
type topicSubscription struct {
	client  *Client
	topicID ledger.EntityID
	ch      chan ledger.TopicMessage
	closed  bool
}

// SubscribeTopic replays the topic's retained messages and then follows
// new submissions until Close or topic deletion.
func (c *Client) SubscribeTopic(ctx context.Context, topicID ledger.EntityID) (ledger.TopicStream, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	top, err := c.topic(topicID)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sub := &topicSubscription{
		client:  c,
		topicID: topicID,
		ch:      make(chan ledger.TopicMessage, len(top.messages)+64),
	}
	for _, msg := range top.messages {
		sub.ch <- msg
	}
	top.subs = append(top.subs, sub)
	return sub, nil
}

func (s *topicSubscription) Messages() <-chan ledger.TopicMessage { return s.ch }

func (s *topicSubscription) Close() error {
	s.client.mu.Lock()
	defer s.client.mu.Unlock()
	if top, ok := s.client.topics[s.topicID]; ok {
		for i, sub := range top.subs {
			if sub == s {
				top.subs = append(top.subs[:i], top.subs[i+1:]...)
				break
			}
		}
	}
	s.closeLocked()
	return nil
}

// deliver drops the message when the subscriber's buffer is full; a
// stalled reader must not block SubmitMessage.
func (s *topicSubscription) deliver(msg ledger.TopicMessage) {
	if s.closed {
		return
	}
	select {
	case s.ch <- msg:
	default:
	}
}

func (s *topicSubscription) closeLocked() {
	if !s.closed {
		s.closed = true
		close(s.ch)
	}
}

var _ ledger.TopicStreamer = (*Client)(nil)
