package realtime

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestChannelFor(t *testing.T) {
	id := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

	assert.Equal(t, "restaurant:6ba7b810-9dad-11d1-80b4-00c04fd430c8:events", ChannelFor(id))
}

func TestEventEncoding(t *testing.T) {
	event := NewEvent(EventOrderCreated, map[string]interface{}{
		"orderNumber": "ORD-20250314-X7K2P9",
		"total":       120000,
	})

	body, err := json.Marshal(event)
	assert.NoError(t, err)

	var decoded map[string]interface{}
	assert.NoError(t, json.Unmarshal(body, &decoded))
	assert.Equal(t, EventOrderCreated, decoded["type"])

	payload, ok := decoded["payload"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, "ORD-20250314-X7K2P9", payload["orderNumber"])
}

func TestNewPublisherFallsBackToNoop(t *testing.T) {
	p := NewPublisher(nil)

	_, isNoop := p.(NoopPublisher)
	assert.True(t, isNoop)

	// Publishing through the noop must never panic.
	p.Publish(context.Background(), uuid.New(), NewEvent(EventInventoryUpdated, nil))
}
