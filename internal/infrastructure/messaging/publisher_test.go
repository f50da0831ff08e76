package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"osintranet-http-service/internal/infrastructure/config"
)

// fakeToken completes immediately with err.
type fakeToken struct {
	err  error
	done chan struct{}
}

func newToken(err error) *fakeToken {
	t := &fakeToken{err: err, done: make(chan struct{})}
	close(t.done)
	return t
}

func (t *fakeToken) Wait() bool                     { return true }
func (t *fakeToken) WaitTimeout(time.Duration) bool { return true }
func (t *fakeToken) Done() <-chan struct{}          { return t.done }
func (t *fakeToken) Error() error                   { return t.err }

type published struct {
	topic    string
	qos      byte
	retained bool
	payload  []byte
}

// fakeClient records what is published. Connect fails failures times first.
type fakeClient struct {
	mqtt.Client

	mu        sync.Mutex
	connected bool
	failures  int
	attempts  int
	messages  []published
}

func (c *fakeClient) IsConnected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connected
}

func (c *fakeClient) Connect() mqtt.Token {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.attempts++
	if c.attempts <= c.failures {
		return newToken(errors.New("connection refused"))
	}
	c.connected = true
	return newToken(nil)
}

func (c *fakeClient) Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, published{topic: topic, qos: qos, retained: retained, payload: payload.([]byte)})
	return newToken(nil)
}

func (c *fakeClient) Disconnect(uint) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.connected = false
}

func TestPublishConnectsAndSendsJSON(t *testing.T) {
	client := &fakeClient{failures: 2}
	p := NewMQTTPublisherWithClient(client, "tcp://broker:1883", 1, false)
	p.backoffBase = time.Millisecond

	err := p.Publish(context.Background(), TopicPosting, PostingAdded{Accounting: 1, RunningNumber: 7, Account: "KASSE"})
	require.NoError(t, err)

	assert.Equal(t, 3, client.attempts)
	require.Len(t, client.messages, 1)
	msg := client.messages[0]
	assert.Equal(t, TopicPosting, msg.topic)
	assert.Equal(t, byte(1), msg.qos)

	var got map[string]any
	require.NoError(t, json.Unmarshal(msg.payload, &got))
	assert.Equal(t, "KASSE", got["account"])
	assert.EqualValues(t, 7, got["running_number"])

	p.Close()
	assert.False(t, client.IsConnected())
}

func TestPublishGivesUpAfterRetries(t *testing.T) {
	client := &fakeClient{failures: 100}
	p := NewMQTTPublisherWithClient(client, "tcp://broker:1883", 0, false)
	p.backoffBase = time.Millisecond
	p.maxRetries = 3

	err := p.Publish(context.Background(), TopicMembership, MembershipChanged{Membership: "deluxe"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
	assert.Equal(t, 3, client.attempts)
	assert.Empty(t, client.messages)
}

func TestConnectHonoursContext(t *testing.T) {
	client := &fakeClient{failures: 100}
	p := NewMQTTPublisherWithClient(client, "tcp://broker:1883", 0, false)
	p.backoffBase = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, p.Connect(ctx), context.Canceled)
}

func TestNewPublisherDisabled(t *testing.T) {
	p := NewPublisher(&config.Config{MQTTEnabled: false})
	_, ok := p.(NopPublisher)
	assert.True(t, ok)
	assert.NoError(t, p.Publish(context.Background(), TopicWelcomeLetter, WelcomeLetter{}))
}
