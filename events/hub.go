package events

import (
	"sync"

	"github.com/aidarkhanov/nanoid/v2"
	"github.com/segmentio/fasthash/fnv1a"
)

const CONCURRENCY = 32
const VALID_NANOID_CHAR = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

type subscriber struct {
	userID string
	ch     chan []byte
}

type conc_sub_table struct {
	table map[string]*subscriber
	sync.RWMutex
}
type conc_sub_table_shards []*conc_sub_table

func (ct conc_sub_table_shards) get_shard(id string) *conc_sub_table {
	return ct[fnv1a.HashString32(id)%CONCURRENCY]
}

// Hub fans user events out to that user's live stream connections
type Hub struct {
	shards conc_sub_table_shards
}

// NewHub builds an empty hub
func NewHub() *Hub {

	shards := make([]*conc_sub_table, CONCURRENCY)
	for i := 0; uint32(i) < CONCURRENCY; i++ {
		shards[i] = &conc_sub_table{table: make(map[string]*subscriber)}
	}

	return &Hub{shards: shards}
}

// Register adds a stream connection for a user and returns its id and its
// event channel. The channel is closed by Unregister.
func (h *Hub) Register(userID string) (string, chan []byte, error) {

	ch := make(chan []byte, 8)

	subID, err := nanoid.GenerateString(VALID_NANOID_CHAR, 10)
	if err != nil {
		return "", nil, err
	}

	shard := h.shards.get_shard(subID)

	shard.Lock()
	for {
		if _, exists := shard.table[subID]; !exists {
			break
		}
		subID, err = nanoid.GenerateString(VALID_NANOID_CHAR, 10)
		if err != nil {
			shard.Unlock()
			return "", nil, err
		}
	}
	shard.table[subID] = &subscriber{userID: userID, ch: ch}
	shard.Unlock()

	return subID, ch, nil
}

// Unregister removes a stream connection and closes its channel
func (h *Hub) Unregister(subID string) {

	shard := h.shards.get_shard(subID)

	shard.Lock()
	sub := shard.table[subID]
	delete(shard.table, subID)
	shard.Unlock()

	if sub != nil {
		close(sub.ch)
	}
}

// Publish delivers an encoded event to every live connection of a user. A
// connection too slow to drain its channel misses the event rather than
// blocking the publisher.
func (h *Hub) Publish(userID string, b []byte) {

	for _, shard := range h.shards {
		shard.RLock()
		for _, sub := range shard.table {
			if sub.userID != userID {
				continue
			}
			select {
			case sub.ch <- b:
			default:
			}
		}
		shard.RUnlock()
	}
}
