package nats

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventEnvelopeCarriesSubjectAndTime(t *testing.T) {
	before := time.Now().UTC()
	ev := newEvent("listing.created", map[string]string{"id": "listing-1"})
	after := time.Now().UTC()

	assert.Equal(t, "listing.created", ev.Subject)
	assert.False(t, ev.OccurredAt.Before(before))
	assert.False(t, ev.OccurredAt.After(after))
}

func TestEventEnvelopeJSONShape(t *testing.T) {
	ev := newEvent("listing.deleted", map[string]string{"id": "listing-9"})

	data, err := json.Marshal(ev)
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "subject")
	assert.Contains(t, decoded, "occurredAt")
	assert.Contains(t, decoded, "payload")

	var payload map[string]string
	require.NoError(t, json.Unmarshal(decoded["payload"], &payload))
	assert.Equal(t, "listing-9", payload["id"])
}
