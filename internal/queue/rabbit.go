package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/streadway/amqp"

	"resume-match/internal/config"
)

// AnalysisTask asks the worker to structure and score one uploaded resume.
type AnalysisTask struct {
	ResumeID uuid.UUID `json:"resume_id"`
	UserID   uuid.UUID `json:"user_id"`
	Queued   time.Time `json:"queued_at"`
}

// Rabbit is a thin wrapper over one AMQP connection. The analysis queue is
// declared durable on first use so the API and the worker can start in any
// order.
type Rabbit struct {
	conn   *amqp.Connection
	queue  string
	logger *log.Logger
}

func Dial(cfg config.RabbitConfig, logger *log.Logger) (*Rabbit, error) {
	if logger == nil {
		logger = log.Default()
	}
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	return &Rabbit{conn: conn, queue: cfg.AnalysisQueue, logger: logger}, nil
}

func (r *Rabbit) Close() error {
	if r == nil || r.conn == nil {
		return nil
	}
	return r.conn.Close()
}

func (r *Rabbit) declare(ch *amqp.Channel) error {
	_, err := ch.QueueDeclare(
		r.queue,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,
	)
	return err
}

// PublishAnalysis enqueues one analysis task. Each publish uses a fresh
// channel; channels are cheap and not safe for concurrent use.
func (r *Rabbit) PublishAnalysis(task AnalysisTask) error {
	ch, err := r.conn.Channel()
	if err != nil {
		return fmt.Errorf("open channel: %w", err)
	}
	defer ch.Close()

	if err := r.declare(ch); err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}

	if task.Queued.IsZero() {
		task.Queued = time.Now().UTC()
	}
	body, err := json.Marshal(task)
	if err != nil {
		return err
	}

	return ch.Publish(
		"",      // default exchange
		r.queue, // routing key
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
}

// ConsumeAnalysis delivers tasks to handler until the context is done or the
// connection drops. A task that fails to decode is logged and dropped;
// handler errors are logged but do not stop the loop.
func (r *Rabbit) ConsumeAnalysis(ctx context.Context, handler func(ctx context.Context, task AnalysisTask) error) error {
	ch, err := r.conn.Channel()
	if err != nil {
		return fmt.Errorf("open channel: %w", err)
	}
	defer ch.Close()

	if err := r.declare(ch); err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}

	msgs, err := ch.Consume(
		r.queue,
		"",    // consumer tag
		false, // manual ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("consume: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-msgs:
			if !ok {
				return fmt.Errorf("rabbitmq channel closed")
			}

			var task AnalysisTask
			if err := json.Unmarshal(msg.Body, &task); err != nil {
				r.logger.Printf("[Queue] dropping malformed task: %v", err)
				_ = msg.Nack(false, false)
				continue
			}

			if err := handler(ctx, task); err != nil {
				r.logger.Printf("[Queue] analysis failed resume_id=%s err=%v", task.ResumeID, err)
				_ = msg.Nack(false, false)
				continue
			}
			_ = msg.Ack(false)
		}
	}
}
