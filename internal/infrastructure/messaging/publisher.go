package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"

	"osintranet-http-service/internal/infrastructure/config"
	"osintranet-http-service/pkg/logger"
)

// 主题
const (
	TopicWelcomeLetter = "osintranet/foodwaste/welcome-letter"
	TopicMembership    = "osintranet/foodwaste/membership"
	TopicPosting       = "osintranet/finance/posting"
)

// Publisher sends notifications to other systems.
type Publisher interface {
	Publish(ctx context.Context, topic string, payload interface{}) error
	Close()
}

// NopPublisher drops every message. It is used when MQTT is disabled.
type NopPublisher struct{}

func (NopPublisher) Publish(_ context.Context, topic string, _ interface{}) error {
	logger.Debug("MQTT已禁用，丢弃消息: topic=%s", topic)
	return nil
}

func (NopPublisher) Close() {}

// MQTTPublisher publishes JSON payloads to an MQTT broker.
type MQTTPublisher struct {
	Client   mqtt.Client
	QoS      byte
	Retained bool

	broker      string
	maxRetries  int
	backoffBase time.Duration

	connectMu sync.Mutex
}

// NewPublisher returns an MQTTPublisher when MQTT is enabled and a NopPublisher otherwise.
func NewPublisher(cfg *config.Config) Publisher {
	if !cfg.MQTTEnabled {
		return NopPublisher{}
	}
	return NewMQTTPublisher(cfg)
}

// NewMQTTPublisher creates the client; the connection is opened lazily.
func NewMQTTPublisher(cfg *config.Config) *MQTTPublisher {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(cfg.MQTTBrokerURL)
	// 使用唯一的客户端ID，避免同一服务多实例冲突
	opts.SetClientID(fmt.Sprintf("%s-%s", cfg.MQTTClientID, uuid.New().String()[:8]))
	opts.SetAutoReconnect(true)
	opts.SetMaxReconnectInterval(30 * time.Second)
	opts.SetKeepAlive(60 * time.Second)
	opts.SetPingTimeout(10 * time.Second)
	opts.SetCleanSession(true)
	if cfg.MQTTUsername != "" {
		opts.SetUsername(cfg.MQTTUsername)
		opts.SetPassword(cfg.MQTTPassword)
	}
	opts.SetConnectionLostHandler(func(_ mqtt.Client, err error) {
		logger.Warning("[MQTT] 连接丢失: %v", err)
	})
	opts.SetOnConnectHandler(func(mqtt.Client) {
		logger.Info("[MQTT] 成功连接到 %s", cfg.MQTTBrokerURL)
	})

	return NewMQTTPublisherWithClient(mqtt.NewClient(opts), cfg.MQTTBrokerURL, byte(cfg.MQTTQoS), cfg.MQTTRetained)
}

// NewMQTTPublisherWithClient wraps an existing client.
func NewMQTTPublisherWithClient(client mqtt.Client, broker string, qos byte, retained bool) *MQTTPublisher {
	return &MQTTPublisher{
		Client:      client,
		QoS:         qos,
		Retained:    retained,
		broker:      broker,
		maxRetries:  5,
		backoffBase: time.Second,
	}
}

// Connect 连接到MQTT服务器，带有重试机制
func (p *MQTTPublisher) Connect(ctx context.Context) error {
	p.connectMu.Lock()
	defer p.connectMu.Unlock()

	if p.Client.IsConnected() {
		return nil
	}

	var err error
	for i := 0; i < p.maxRetries; i++ {
		token := p.Client.Connect()
		if token.WaitTimeout(5*time.Second) && token.Error() == nil {
			return nil
		}
		err = token.Error()
		if err == nil {
			err = fmt.Errorf("connect timeout")
		}

		// 指数退避: 1s, 2s, 4s, 8s, 16s
		backoff := p.backoffBase * time.Duration(1<<uint(i))
		logger.Warning("[MQTT] 连接尝试 %d/%d 失败: %v, 将在 %v 后重试", i+1, p.maxRetries, err, backoff)
		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return fmt.Errorf("connect to %s failed after %d attempts: %w", p.broker, p.maxRetries, err)
}

// Publish 发布消息到指定主题
func (p *MQTTPublisher) Publish(ctx context.Context, topic string, payload interface{}) error {
	if !p.Client.IsConnected() {
		if err := p.Connect(ctx); err != nil {
			return err
		}
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload for %s: %w", topic, err)
	}

	token := p.Client.Publish(topic, p.QoS, p.Retained, data)
	if !token.WaitTimeout(3 * time.Second) {
		return fmt.Errorf("publish to %s timed out", topic)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("publish to %s: %w", topic, err)
	}

	logger.Info("[MQTT] 已发布%T类型消息到主题: %s", payload, topic)
	return nil
}

// Close 断开与MQTT服务器的连接
func (p *MQTTPublisher) Close() {
	if p.Client != nil && p.Client.IsConnected() {
		p.Client.Disconnect(250)
	}
}
