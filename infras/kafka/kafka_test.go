package kafka_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"hotelhills/infras/kafka"
)

func TestMessage_ToKafkaMessage(t *testing.T) {
	msg := kafka.Message{
		Key:   "bill-1",
		Value: map[string]any{"bill_id": "bill-1", "total": 350.0},
	}

	out, err := msg.ToKafkaMessage("bill.generated")

	assert.NoError(t, err)
	assert.Equal(t, "bill.generated", out.Topic)
	assert.Equal(t, []byte("bill-1"), out.Key)

	var decoded map[string]any
	assert.NoError(t, json.Unmarshal(out.Value, &decoded))
	assert.Equal(t, 350.0, decoded["total"])
	assert.Len(t, out.Headers, 1)
}

func TestMessage_ToKafkaMessageUnencodable(t *testing.T) {
	msg := kafka.Message{Key: "bad", Value: math.Inf(1)}

	_, err := msg.ToKafkaMessage("bill.generated")

	assert.Error(t, err)
}
