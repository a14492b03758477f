// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/danielhkuo/votaciones/models"
)

// Publisher announces stored votes to other services
type Publisher interface {
	PublishVote(ctx context.Context, event models.VoteEvent) error
}

// NewVoteEvent builds the event for a stored vote
func NewVoteEvent(voteID, candidateID int64) models.VoteEvent {
	return models.VoteEvent{
		EventID:     uuid.NewString(),
		VoteID:      voteID,
		CandidatoID: candidateID,
		RecordedAt:  time.Now().UTC(),
	}
}

// NopPublisher drops every event. Used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) PublishVote(context.Context, models.VoteEvent) error { return nil }

// amqpChannel is the subset of *amqp.Channel the publisher needs
type amqpChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// AMQPPublisher sends vote events to a durable RabbitMQ queue
type AMQPPublisher struct {
	conn  *amqp.Connection
	ch    amqpChannel
	queue string
	mu    sync.Mutex
}

// Dial connects to RabbitMQ and declares the queue. There is a single
// attempt; callers decide what to do on failure.
func Dial(url, queue string) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	_, err = ch.QueueDeclare(
		queue,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue %s: %w", queue, err)
	}

	return &AMQPPublisher{conn: conn, ch: ch, queue: queue}, nil
}

func (p *AMQPPublisher) PublishVote(ctx context.Context, event models.VoteEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode vote event: %w", err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.EventID,
		Timestamp:    event.RecordedAt,
		Body:         body,
	}

	// The client library ignores ctx and blocks while the broker applies
	// flow control, so the deadline is enforced here.
	errc := make(chan error, 1)
	go func() {
		// Channels are not safe for concurrent publishing
		p.mu.Lock()
		defer p.mu.Unlock()
		errc <- p.ch.PublishWithContext(ctx, "", p.queue, false, false, msg)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		return fmt.Errorf("publish vote event %s: %w", event.EventID, ctx.Err())
	}
}

// Close closes the channel and the connection. It does not wait for a
// publish stuck on a blocked broker; closing the channel releases it.
func (p *AMQPPublisher) Close() error {
	err := p.ch.Close()
	if p.conn != nil {
		if cerr := p.conn.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
