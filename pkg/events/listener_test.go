package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNotifyListener(t *testing.T) {
	mgr := NewConnectionManager(nil)
	l := NewNotifyListener("host=localhost dbname=redclaw", mgr)
	require.NotNil(t, l)

	assert.Equal(t, "host=localhost dbname=redclaw", l.connString)
	assert.Same(t, mgr, l.manager)
	assert.NotNil(t, l.channels)
	assert.NotNil(t, l.commands)
	assert.False(t, l.running.Load(), "listener must not run before Start")
}

// Before Start there is no connection: LISTEN must fail loudly, UNLISTEN on
// a channel nobody listens to is a no-op.
func TestNotifyListenerWithoutConnection(t *testing.T) {
	l := NewNotifyListener("host=localhost dbname=redclaw", NewConnectionManager(nil))

	err := l.Subscribe(t.Context(), "engagement:eng-1")
	assert.ErrorContains(t, err, "not established")

	assert.NoError(t, l.Unsubscribe(t.Context(), "engagement:eng-1"))
}
