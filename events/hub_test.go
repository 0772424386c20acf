package events

import (
	"sync"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishReachesOnlyTargetUser(t *testing.T) {
	h := NewHub()

	_, aliceCh, err := h.Register("alice")
	require.NoError(t, err)
	_, bobCh, err := h.Register("bob")
	require.NoError(t, err)

	h.Publish("alice", []byte("ping"))

	select {
	case b := <-aliceCh:
		assert.Equal(t, []byte("ping"), b)
	default:
		t.Fatal("alice got no event")
	}

	select {
	case <-bobCh:
		t.Fatal("bob got alice's event")
	default:
	}
}

func TestPublishFansOutToAllConnections(t *testing.T) {
	h := NewHub()

	_, ch1, err := h.Register("alice")
	require.NoError(t, err)
	_, ch2, err := h.Register("alice")
	require.NoError(t, err)

	h.Publish("alice", []byte("ping"))

	for _, ch := range []chan []byte{ch1, ch2} {
		select {
		case b := <-ch:
			assert.Equal(t, []byte("ping"), b)
		default:
			t.Fatal("connection got no event")
		}
	}
}

func TestUnregisterClosesChannel(t *testing.T) {
	h := NewHub()

	subID, ch, err := h.Register("alice")
	require.NoError(t, err)

	h.Unregister(subID)

	_, ok := <-ch
	assert.False(t, ok)

	// publishing after unregister does not panic
	h.Publish("alice", []byte("ping"))
}

func TestPublishNeverBlocks(t *testing.T) {
	h := NewHub()

	_, _, err := h.Register("alice")
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		h.Publish("alice", []byte("flood"))
	}
}

func TestConcurrentRegisterPublish(t *testing.T) {
	h := NewHub()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			subID, _, err := h.Register("alice")
			assert.NoError(t, err)
			h.Publish("alice", []byte("x"))
			h.Unregister(subID)
		}()
	}
	wg.Wait()
}

func TestSendEncodesEvent(t *testing.T) {
	h := NewHub()

	_, ch, err := h.Register("alice")
	require.NoError(t, err)

	h.Send("alice", OpNoteShared, map[string]string{"noteId": "n1"})

	select {
	case b := <-ch:
		assert.Equal(t, OpNoteShared, jsoniter.Get(b, "op").ToInt())
		assert.Equal(t, "n1", jsoniter.Get(b, "data", "noteId").ToString())
		assert.NotZero(t, jsoniter.Get(b, "timestamp").ToInt64())
	default:
		t.Fatal("no event delivered")
	}
}
