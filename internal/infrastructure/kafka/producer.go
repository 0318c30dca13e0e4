package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/DRSN-tech/freshcart-backend/internal/cfg"
	"github.com/DRSN-tech/freshcart-backend/internal/usecase"
	"github.com/DRSN-tech/freshcart-backend/pkg/e"
	"github.com/DRSN-tech/freshcart-backend/pkg/logger"
	"github.com/google/uuid"
	"github.com/jimlawless/whereami"
	"github.com/segmentio/kafka-go"
)

// storeEvent — JSON-конверт события изменения состояния витрины.
type storeEvent struct {
	EventID        string          `json:"event_id"`
	EventType      string          `json:"event_type"`
	EventTimestamp int64           `json:"event_timestamp"`
	Payload        json.RawMessage `json:"payload"`
}

type Producer struct {
	writer *kafka.Writer
	logger logger.Logger
	cfg    *cfg.KafkaCfg
}

func NewProducer(logger logger.Logger, cfg *cfg.KafkaCfg) (*Producer, error) {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchSize:    10,
		BatchTimeout: 500 * time.Millisecond,
		WriteTimeout: 10 * time.Second,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				logger.Warnf("Kafka producer error: %s", err.Error())
			}
		},
	}

	return &Producer{
		writer: writer,
		logger: logger,
		cfg:    cfg,
	}, nil
}

// WriteEvent публикует событие, ключом сообщения служит идентификатор
// сущности: все события одной сущности попадают в одну партицию.
func (p *Producer) WriteEvent(ctx context.Context, req *usecase.WriteEventReq) error {
	value, err := p.getPayloadBytes(req)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(req.Key),
		Value: value,
	})
}

// EnsureTopic создаёт топик, если его ещё нет.
func (p *Producer) EnsureTopic(timeout time.Duration) error {
	conn, err := kafka.Dial(p.cfg.NetworkMode, p.cfg.Brokers[0])
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	defer conn.Close()

	partitions, err := conn.ReadPartitions(p.cfg.Topic)
	if err == nil && len(partitions) > 0 {
		return nil
	}

	done := make(chan error, 1)
	go func() {
		done <- conn.CreateTopics(kafka.TopicConfig{
			Topic:             p.cfg.Topic,
			NumPartitions:     p.cfg.Partitions,
			ReplicationFactor: p.cfg.ReplicationFactor,
		})
	}()

	select {
	case err := <-done:
		if err != nil {
			return e.Wrap(whereami.WhereAmI(), err)
		}
		return nil
	case <-time.After(timeout):
		return e.Wrap(whereami.WhereAmI(), context.DeadlineExceeded)
	}
}

func (p *Producer) Close() error {
	return p.writer.Close()
}

func (p *Producer) getPayloadBytes(req *usecase.WriteEventReq) ([]byte, error) {
	payload, err := json.Marshal(req.Payload)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	event := storeEvent{
		EventID:        uuid.NewString(),
		EventType:      req.Type,
		EventTimestamp: time.Now().UnixNano(),
		Payload:        payload,
	}

	return json.Marshal(event)
}
