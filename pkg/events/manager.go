package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// catchupLimit is the maximum number of events returned in a catchup response.
// If more events were missed, an overflow marker tells the client to do a
// full REST reload instead of paginating.
const catchupLimit = 200

// listenTimeout bounds how long a LISTEN command may block when subscribing
// to a new PG channel. Without this, a stalled connection would block the
// subscribing goroutine indefinitely.
const listenTimeout = 10 * time.Second

// CatchupEvent holds the data returned by the catchup query.
type CatchupEvent struct {
	ID      int
	Payload map[string]interface{}
}

// CatchupQuerier queries events for catchup. Implemented by EventService.
type CatchupQuerier interface {
	GetCatchupEvents(ctx context.Context, channel string, sinceID, limit int) ([]CatchupEvent, error)
}

// Subscription is an in-process event feed for one channel. Consumers range
// over C until they unsubscribe. A consumer that falls behind loses messages
// rather than stalling the dispatch pump; persistent events are recoverable
// through catchup, and transient ones are superseded by the next tick.
type Subscription struct {
	ID      string
	Channel string
	C       <-chan []byte

	ch      chan []byte
	dropped atomic.Int64
}

// Dropped returns how many events were discarded because the subscriber's
// buffer was full.
func (s *Subscription) Dropped() int64 {
	return s.dropped.Load()
}

// ConnectionManager fans NOTIFY payloads out to in-process subscribers.
// Each Go process (pod) has one ConnectionManager instance; the API's SSE
// handler and anything else that wants live events subscribes here.
type ConnectionManager struct {
	// Channel subscriptions: channel → subscription id → subscription
	subs map[string]map[string]*Subscription
	mu   sync.RWMutex

	// CatchupQuerier for replaying persisted events
	catchupQuerier CatchupQuerier

	// NotifyListener for dynamic LISTEN/UNLISTEN (set after construction)
	listener   *NotifyListener
	listenerMu sync.RWMutex
}

// NewConnectionManager creates a new ConnectionManager.
func NewConnectionManager(catchupQuerier CatchupQuerier) *ConnectionManager {
	return &ConnectionManager{
		subs:           make(map[string]map[string]*Subscription),
		catchupQuerier: catchupQuerier,
	}
}

// SetListener sets the NotifyListener for dynamic LISTEN/UNLISTEN.
// Called once during startup after both ConnectionManager and NotifyListener
// are created.
func (m *ConnectionManager) SetListener(l *NotifyListener) {
	m.listenerMu.Lock()
	defer m.listenerMu.Unlock()
	m.listener = l
}

// Subscribe registers an in-process subscriber for a channel and issues
// LISTEN when it is the channel's first. LISTEN completes before Subscribe
// returns, so a catchup query issued afterwards cannot race new events.
//
// buffer bounds the subscriber's queue; sends beyond it are dropped and
// counted on the subscription.
func (m *ConnectionManager) Subscribe(ctx context.Context, channel string, buffer int) (*Subscription, error) {
	if buffer <= 0 {
		buffer = 64
	}
	ch := make(chan []byte, buffer)
	sub := &Subscription{
		ID:      uuid.New().String(),
		Channel: channel,
		C:       ch,
		ch:      ch,
	}

	m.mu.Lock()
	needsListen := false
	if _, exists := m.subs[channel]; !exists {
		m.subs[channel] = make(map[string]*Subscription)
		needsListen = true
	}
	m.subs[channel][sub.ID] = sub
	m.mu.Unlock()

	if needsListen {
		m.listenerMu.RLock()
		l := m.listener
		m.listenerMu.RUnlock()
		if l != nil {
			listenCtx, cancel := context.WithTimeout(ctx, listenTimeout)
			defer cancel()
			if err := l.Subscribe(listenCtx, channel); err != nil {
				slog.Error("Failed to LISTEN on channel", "channel", channel, "error", err)
				m.removeSubscription(sub)
				return nil, fmt.Errorf("LISTEN on channel %s: %w", channel, err)
			}
		}
	}

	slog.Debug("Subscriber registered", "channel", channel, "subscription_id", sub.ID)
	return sub, nil
}

// Unsubscribe removes the subscription and closes its feed. Issues UNLISTEN
// when the last subscriber of a channel leaves.
func (m *ConnectionManager) Unsubscribe(sub *Subscription) {
	if sub == nil {
		return
	}
	if removed, last := m.removeSubscriptionLocked(sub); removed {
		close(sub.ch)
		if last {
			m.unlistenIfIdle(sub.Channel)
		}
	}
}

// removeSubscription drops the subscription without closing its feed; used
// on the Subscribe failure path where the channel was never handed out.
func (m *ConnectionManager) removeSubscription(sub *Subscription) {
	m.removeSubscriptionLocked(sub)
}

func (m *ConnectionManager) removeSubscriptionLocked(sub *Subscription) (removed, last bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	channelSubs, exists := m.subs[sub.Channel]
	if !exists {
		return false, false
	}
	if _, ok := channelSubs[sub.ID]; !ok {
		return false, false
	}
	delete(channelSubs, sub.ID)
	if len(channelSubs) == 0 {
		delete(m.subs, sub.Channel)
		return true, true
	}
	return true, false
}

// unlistenIfIdle stops the PG LISTEN for a channel unless someone
// resubscribed in the meantime. The re-check prevents a rapid
// unsubscribe/resubscribe cycle from dropping an active LISTEN.
func (m *ConnectionManager) unlistenIfIdle(channel string) {
	m.listenerMu.RLock()
	l := m.listener
	m.listenerMu.RUnlock()
	if l == nil {
		return
	}
	go func() {
		m.mu.RLock()
		_, resubscribed := m.subs[channel]
		m.mu.RUnlock()
		if resubscribed {
			return
		}
		if err := l.Unsubscribe(context.Background(), channel); err != nil {
			slog.Error("Failed to UNLISTEN channel", "channel", channel, "error", err)
		}
	}()
}

// Broadcast delivers an event payload to every subscriber of the channel.
// Never blocks: a full subscriber buffer drops the event and bumps the
// subscriber's drop counter.
//
// Sends happen under the read lock. Unsubscribe closes a feed only after
// taking the write lock, so a send can never race the close.
func (m *ConnectionManager) Broadcast(channel string, event []byte) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, sub := range m.subs[channel] {
		select {
		case sub.ch <- event:
		default:
			if n := sub.dropped.Add(1); n == 1 || n%100 == 0 {
				slog.Warn("Subscriber buffer full, dropping events",
					"channel", channel,
					"subscription_id", sub.ID,
					"dropped", n)
			}
		}
	}
}

// Catchup returns persisted events on the channel after sinceID, each with
// db_event_id injected, plus an overflow flag when more than catchupLimit
// events were missed. Overflowing clients should reload state over REST
// instead of paginating.
func (m *ConnectionManager) Catchup(ctx context.Context, channel string, sinceID int) ([][]byte, bool, error) {
	if m.catchupQuerier == nil {
		return nil, false, nil
	}

	events, err := m.catchupQuerier.GetCatchupEvents(ctx, channel, sinceID, catchupLimit+1)
	if err != nil {
		return nil, false, fmt.Errorf("catchup query failed: %w", err)
	}

	hasMore := len(events) > catchupLimit
	if hasMore {
		events = events[:catchupLimit]
	}

	// The stored payload doesn't contain db_event_id (it's only added to
	// the NOTIFY payload at publish time), so inject it from the row ID.
	out := make([][]byte, 0, len(events))
	for _, evt := range events {
		evt.Payload["db_event_id"] = evt.ID
		payload, err := json.Marshal(evt.Payload)
		if err != nil {
			continue
		}
		out = append(out, payload)
	}
	return out, hasMore, nil
}

// ActiveSubscribers returns the total subscriber count across all channels.
func (m *ConnectionManager) ActiveSubscribers() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	n := 0
	for _, channelSubs := range m.subs {
		n += len(channelSubs)
	}
	return n
}

// subscriberCount returns the number of subscribers for a channel.
// Unexported — used by tests to poll instead of sleeping.
func (m *ConnectionManager) subscriberCount(channel string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.subs[channel])
}
