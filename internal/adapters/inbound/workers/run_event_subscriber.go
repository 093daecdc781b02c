package workers

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"cloud.google.com/go/pubsub/v2"
	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/usecases"
)

// RunEventSubscriber consumes run completion events from Pub/Sub
// and records their outcomes in batches.
type RunEventSubscriber struct {
	Logger              *log.Logger                `resolve:""`
	Client              *pubsub.Client             `resolve:""`
	Interval            time.Duration              `config:"RUN_EVENTS_BATCH_INTERVAL" default:"3s"`
	BatchSize           int                        `config:"RUN_EVENTS_BATCH_SIZE" default:"20"`
	SubscriptionID      string                     `config:"PUBSUB_RUNS_SUBSCRIPTION_ID" default:"orchestration-runs-sub"`
	RecordRunOutcomes   usecases.RecordRunOutcomes `resolve:""`
	workerExecutionChan chan struct{}
}

// Run starts the subscriber worker.
func (s RunEventSubscriber) Run(ctx context.Context) error {
	s.Logger.Println("RunEventSubscriber: running...")

	eventCh := make(chan *pubsub.Message, s.BatchSize*2)
	subscriberInitErrCh := make(chan error, 1)

	go func() {
		err := s.Client.Subscriber(s.SubscriptionID).Receive(ctx, func(ctx context.Context, msg *pubsub.Message) {
			select {
			case eventCh <- msg:
				// Acked after the batch is recorded
			case <-ctx.Done():
				msg.Nack()
			}
		})

		if err != nil {
			subscriberInitErrCh <- err
		}
	}()

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	var batch []*pubsub.Message

	for {
		select {
		case <-ctx.Done():
			s.Logger.Println("RunEventSubscriber: stopping...")
			return nil

		case err := <-subscriberInitErrCh:
			return err

		case msg := <-eventCh:
			batch = append(batch, msg)
			if len(batch) >= s.BatchSize {
				s.flush(ctx, batch)
				batch = nil
			}

		case <-ticker.C:
			if len(batch) > 0 {
				s.flush(ctx, batch)
				batch = nil
			}
		}
	}
}

func (s RunEventSubscriber) flush(ctx context.Context, batch []*pubsub.Message) {
	s.Logger.Printf("RunEventSubscriber: processing batch size=%d", len(batch))

	if s.workerExecutionChan != nil {
		defer func() { s.workerExecutionChan <- struct{}{} }()
	}

	events := make([]domain.RunCompletedEvent, 0, len(batch))
	valid := make([]*pubsub.Message, 0, len(batch))
	for _, msg := range batch {
		var event domain.RunCompletedEvent
		if err := json.Unmarshal(msg.Data, &event); err != nil {
			// Undecodable messages would be redelivered forever.
			s.Logger.Printf("RunEventSubscriber: dropping message %s: %v", msg.ID, err)
			msg.Ack()
			continue
		}
		events = append(events, event)
		valid = append(valid, msg)
	}

	if len(events) == 0 {
		return
	}

	if err := s.RecordRunOutcomes.Execute(ctx, events); err != nil {
		s.Logger.Printf("RunEventSubscriber: failed to record run outcomes: %v", err)
		for _, msg := range valid {
			msg.Nack()
		}
		return
	}

	for _, msg := range valid {
		msg.Ack()
	}
}
