package kafka

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBrokers(t *testing.T) {
	assert.Equal(t, []string{"a:9092", "b:9092"}, Brokers(" a:9092, ,b:9092 "))
	assert.Empty(t, Brokers(""))
}

func TestNewWriter_UsesTopicAndBrokers(t *testing.T) {
	w := NewWriter("localhost:9092,localhost:9093", "match_completed")
	defer w.Close()

	assert.Equal(t, "match_completed", w.Topic)
	assert.NotNil(t, w.Addr)
}
