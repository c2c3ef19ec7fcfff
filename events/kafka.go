package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/twmb/franz-go/pkg/kgo"
)

// producer is the part of *kgo.Client the sink uses.
type producer interface {
	Produce(ctx context.Context, r *kgo.Record, promise func(*kgo.Record, error))
	Flush(ctx context.Context) error
	Close()
}

// KafkaSink publishes events to a Kafka topic, keyed by entity.
type KafkaSink struct {
	client       producer
	topic        string
	logger       zerolog.Logger
	onDelivery   func(Envelope, error)
	flushTimeout time.Duration
}

// KafkaOption configures a KafkaSink.
type KafkaOption func(*KafkaSink)

func WithKafkaLogger(logger zerolog.Logger) KafkaOption {
	return func(k *KafkaSink) {
		k.logger = logger
	}
}

// WithDeliveryHook is called once per event when the broker acknowledges or
// rejects it.
func WithDeliveryHook(hook func(Envelope, error)) KafkaOption {
	return func(k *KafkaSink) {
		k.onDelivery = hook
	}
}

func WithFlushTimeout(d time.Duration) KafkaOption {
	return func(k *KafkaSink) {
		k.flushTimeout = d
	}
}

// NewKafkaSink connects lazily to brokers; records are produced
// asynchronously and Publish never waits for the broker.
func NewKafkaSink(brokers []string, topic string, opts ...KafkaOption) (*KafkaSink, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("kafka sink needs at least one broker")
	}
	if topic == "" {
		return nil, fmt.Errorf("kafka sink needs a topic")
	}
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.DefaultProduceTopic(topic),
		kgo.RecordPartitioner(kgo.StickyKeyPartitioner(nil)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka client: %w", err)
	}
	return newKafkaSink(client, topic, opts...), nil
}

func newKafkaSink(client producer, topic string, opts ...KafkaOption) *KafkaSink {
	k := &KafkaSink{
		client:       client,
		topic:        topic,
		logger:       zerolog.Nop(),
		flushTimeout: 10 * time.Second,
	}
	for _, opt := range opts {
		opt(k)
	}
	return k
}

func (k *KafkaSink) Publish(ctx context.Context, e Envelope) error {
	value, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to encode event %s: %w", e.Name, err)
	}
	record := &kgo.Record{
		Topic:     k.topic,
		Key:       []byte(e.Key),
		Value:     value,
		Timestamp: e.OccurredAt,
		Headers: []kgo.RecordHeader{
			{Key: "event", Value: []byte(e.Name)},
			{Key: "event_id", Value: []byte(e.ID.String())},
		},
	}
	k.client.Produce(ctx, record, func(_ *kgo.Record, err error) {
		if err != nil {
			k.logger.Warn().Err(err).Str("event", e.Name).Str("key", e.Key).Msg("kafka delivery failed")
		}
		if k.onDelivery != nil {
			k.onDelivery(e, err)
		}
	})
	return nil
}

// Close waits for buffered records up to the flush timeout, then disconnects.
func (k *KafkaSink) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), k.flushTimeout)
	defer cancel()
	err := k.client.Flush(ctx)
	k.client.Close()
	if err != nil {
		return fmt.Errorf("failed to flush kafka records: %w", err)
	}
	return nil
}
