package coordination

import (
	"context"
	"sync"
	"testing"

	"github.com/Spark-Corporations/Red-Shadow-sub000/ent/agentmessage"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/models"
	testdb "github.com/Spark-Corporations/Red-Shadow-sub000/test/database"
	"github.com/Spark-Corporations/Red-Shadow-sub000/test/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMailbox(t *testing.T) *Mailbox {
	t.Helper()
	dbClient := testdb.NewTestClient(t)
	engagementID := util.CreateTestEngagement(t, dbClient.Client, "assess host 10.0.0.5")
	return NewMailbox(dbClient.Client, engagementID)
}

func TestMailboxSendReceive(t *testing.T) {
	mbox := newTestMailbox(t)
	ctx := context.Background()

	err := mbox.Send(ctx, "lead", "agent-recon-1", models.MessageKindIntervention,
		map[string]any{"note": "focus on the DNS server"})
	require.NoError(t, err)
	err = mbox.Send(ctx, "agent-scan-1", "agent-recon-1", models.MessageKindPeerRequest,
		map[string]any{"question": "which subnets are live?"})
	require.NoError(t, err)

	has, err := mbox.HasMessages(ctx, "agent-recon-1")
	require.NoError(t, err)
	assert.True(t, has)

	count, err := mbox.Count(ctx, "agent-recon-1")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	// Peeking (markRead=false) does not consume.
	peeked, err := mbox.Receive(ctx, "agent-recon-1", false)
	require.NoError(t, err)
	require.Len(t, peeked, 2)

	peekedAgain, err := mbox.Receive(ctx, "agent-recon-1", false)
	require.NoError(t, err)
	assert.Len(t, peekedAgain, 2)

	// Consuming (markRead=true) delivers exactly once.
	consumed, err := mbox.Receive(ctx, "agent-recon-1", true)
	require.NoError(t, err)
	require.Len(t, consumed, 2)
	assert.Equal(t, agentmessage.KindIntervention, consumed[0].Kind)
	assert.Equal(t, "lead", consumed[0].FromAgent)
	assert.Equal(t, "focus on the DNS server", consumed[0].Payload["note"])

	empty, err := mbox.Receive(ctx, "agent-recon-1", true)
	require.NoError(t, err)
	assert.Empty(t, empty)

	has, err = mbox.HasMessages(ctx, "agent-recon-1")
	require.NoError(t, err)
	assert.False(t, has)

	// Other mailboxes are untouched.
	count, err = mbox.Count(ctx, "agent-scan-1")
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestMailboxDeliveryOrder(t *testing.T) {
	mbox := newTestMailbox(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		err := mbox.Send(ctx, "lead", "agent-1", models.MessageKindIntervention,
			map[string]any{"seq": float64(i)})
		require.NoError(t, err)
	}

	msgs, err := mbox.Receive(ctx, "agent-1", true)
	require.NoError(t, err)
	require.Len(t, msgs, 5)
	for i, msg := range msgs {
		assert.Equal(t, float64(i), msg.Payload["seq"], "messages must arrive in send order")
	}
}

func TestMailboxBroadcast(t *testing.T) {
	mbox := newTestMailbox(t)
	ctx := context.Background()

	mbox.Register("lead")
	mbox.Register("agent-1")
	mbox.Register("agent-2")
	mbox.Register("agent-3")

	n, err := mbox.Broadcast(ctx, "agent-1", models.MessageKindCriticalFinding,
		map[string]any{"severity": "critical", "title": "exposed admin panel"})
	require.NoError(t, err)
	assert.Equal(t, 3, n, "broadcast fans out to everyone but the sender")

	// Sender receives nothing.
	count, err := mbox.Count(ctx, "agent-1")
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	for _, agentID := range []string{"lead", "agent-2", "agent-3"} {
		msgs, err := mbox.Receive(ctx, agentID, true)
		require.NoError(t, err)
		require.Len(t, msgs, 1, "agent %s should receive the broadcast", agentID)
		assert.Equal(t, agentmessage.KindCriticalFinding, msgs[0].Kind)
		assert.Equal(t, "agent-1", msgs[0].FromAgent)
	}

	t.Run("unregistered agents are excluded", func(t *testing.T) {
		mbox.Unregister("agent-3")
		n, err := mbox.Broadcast(ctx, "lead", models.MessageKindTerminate, nil)
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		count, err := mbox.Count(ctx, "agent-3")
		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})

	t.Run("no recipients", func(t *testing.T) {
		lonely := newTestMailbox(t)
		lonely.Register("solo")
		n, err := lonely.Broadcast(ctx, "solo", models.MessageKindBroadcast, nil)
		require.NoError(t, err)
		assert.Equal(t, 0, n)
	})
}

func TestMailboxExactlyOnceUnderConcurrentReceive(t *testing.T) {
	mbox := newTestMailbox(t)
	ctx := context.Background()

	const total = 20
	for i := 0; i < total; i++ {
		err := mbox.Send(ctx, "lead", "agent-1", models.MessageKindIntervention,
			map[string]any{"seq": float64(i)})
		require.NoError(t, err)
	}

	const receivers = 4
	var mu sync.Mutex
	seen := make(map[int]int) // message ID -> delivery count
	errCh := make(chan error, receivers)
	var wg sync.WaitGroup

	for i := 0; i < receivers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			msgs, err := mbox.Receive(ctx, "agent-1", true)
			if err != nil {
				errCh <- err
				return
			}
			mu.Lock()
			defer mu.Unlock()
			for _, msg := range msgs {
				seen[msg.ID]++
			}
		}()
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		require.NoError(t, err)
	}

	assert.Len(t, seen, total, "every message must be delivered")
	for id, deliveries := range seen {
		assert.Equal(t, 1, deliveries, "message %d delivered more than once", id)
	}
}

func TestMailboxInvalidKind(t *testing.T) {
	mbox := newTestMailbox(t)
	ctx := context.Background()

	err := mbox.Send(ctx, "lead", "agent-1", models.MessageKind("pigeon"), nil)
	assert.ErrorContains(t, err, "invalid message kind")

	_, err = mbox.Broadcast(ctx, "lead", models.MessageKind("pigeon"), nil)
	assert.ErrorContains(t, err, "invalid message kind")

	err = mbox.Send(ctx, "lead", "", models.MessageKindIntervention, nil)
	assert.ErrorContains(t, err, "recipient is required")
}

func TestMailboxReset(t *testing.T) {
	mbox := newTestMailbox(t)
	ctx := context.Background()

	mbox.Register("agent-1")
	mbox.Register("agent-2")
	require.NoError(t, mbox.Send(ctx, "lead", "agent-1", models.MessageKindIntervention, nil))

	require.NoError(t, mbox.Reset(ctx))

	count, err := mbox.Count(ctx, "agent-1")
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	// Membership was cleared too.
	n, err := mbox.Broadcast(ctx, "lead", models.MessageKindBroadcast, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}
