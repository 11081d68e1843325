package kafka

import (
	"context"
	"testing"

	kafkago "github.com/segmentio/kafka-go"
)

func TestNewProducer(t *testing.T) {
	cfg := Config{
		Brokers: []string{"localhost:9092", "localhost:9093"},
	}

	p := NewProducer(cfg)
	if p == nil {
		t.Fatal("expected non-nil producer")
	}
	if len(p.brokers) != 2 {
		t.Fatalf("expected 2 brokers, got %d", len(p.brokers))
	}
	if p.writers == nil {
		t.Fatal("expected writers map to be initialized")
	}
	if len(p.writers) != 0 {
		t.Errorf("expected empty writers map, got %d entries", len(p.writers))
	}
}

func TestWriterFor(t *testing.T) {
	p := NewProducer(Config{Brokers: []string{"localhost:9092"}})

	w1 := p.writerFor("loan-events")
	if w1 == nil {
		t.Fatal("expected non-nil writer")
	}

	// Same topic returns the same writer instance.
	w2 := p.writerFor("loan-events")
	if w1 != w2 {
		t.Error("expected same writer instance for same topic")
	}

	w3 := p.writerFor("audit-events")
	if w1 == w3 {
		t.Error("expected different writer instance for different topic")
	}
	if len(p.writers) != 2 {
		t.Errorf("expected 2 writers, got %d", len(p.writers))
	}
}

func TestWriterForKeyedOrdering(t *testing.T) {
	p := NewProducer(Config{Brokers: []string{"localhost:9092"}})

	w := p.writerFor("loan-events")
	if _, ok := w.Balancer.(*kafkago.Hash); !ok {
		t.Errorf("expected hash balancer so keyed messages stay on one partition, got %T", w.Balancer)
	}
	if w.RequiredAcks != kafkago.RequireAll {
		t.Errorf("expected RequireAll acks, got %v", w.RequiredAcks)
	}
}

func TestPublishNoMessages(t *testing.T) {
	p := NewProducer(Config{Brokers: []string{"localhost:9092"}})

	// No broker is reachable in tests, so an empty publish must return
	// before touching a writer.
	if err := p.Publish(context.Background(), "loan-events"); err != nil {
		t.Fatalf("unexpected error publishing zero messages: %v", err)
	}
	if len(p.writers) != 0 {
		t.Errorf("expected no writer created for empty publish, got %d", len(p.writers))
	}
}

func TestProducerClose(t *testing.T) {
	p := NewProducer(Config{Brokers: []string{"localhost:9092"}})

	_ = p.writerFor("loan-events")
	_ = p.writerFor("audit-events")

	if err := p.Close(); err != nil {
		t.Fatalf("unexpected error on close: %v", err)
	}
	if len(p.writers) != 0 {
		t.Errorf("expected 0 writers after close, got %d", len(p.writers))
	}
}
