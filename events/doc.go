// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package events publishes a message for every stored vote.

When RABBITMQ_URL is set the server dials once at startup:

	pub, err := events.Dial(cfg.AMQPURL, cfg.AMQPQueue)

If the dial fails, or no URL is configured, NopPublisher is used instead.
Messages are persistent JSON bodies on a durable queue:

	{"eventId":"<uuid>","voteId":1,"candidatoId":2,"recordedAt":"..."}

Publishing happens after the vote is committed. A failed publish is logged
by the caller and does not affect the vote.
*/
package events
