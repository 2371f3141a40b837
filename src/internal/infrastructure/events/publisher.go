package events

import (
	"github.com/xiangzhu626/jifen/src/internal/domain/points"
	"github.com/xiangzhu626/jifen/src/internal/domain/shared"
	"github.com/xiangzhu626/jifen/src/internal/infrastructure/metrics"
	"go.uber.org/zap"
)

// LogPublisher 將領域事件寫入日誌並更新 Prometheus 計數
//
// 沒有外部訊息佇列；事件只用於稽核日誌與指標。
type LogPublisher struct {
	logger  *zap.Logger
	metrics *metrics.Metrics
}

// NewLogPublisher 創建事件發布器
func NewLogPublisher(logger *zap.Logger, m *metrics.Metrics) shared.EventPublisher {
	return &LogPublisher{
		logger:  logger.Named("events"),
		metrics: m,
	}
}

// Publish 發布單一事件
func (p *LogPublisher) Publish(event shared.DomainEvent) error {
	fields := []zap.Field{
		zap.String("event_id", event.EventID()),
		zap.String("event_type", event.EventType()),
		zap.String("aggregate_id", event.AggregateID()),
		zap.Time("occurred_at", event.OccurredAt()),
	}

	if changed, ok := event.(*points.PointsChangedEvent); ok {
		txType := points.TransactionTypeCredit
		if changed.EventType() == points.EventTypePointsDebited {
			txType = points.TransactionTypeDebit
		}
		fields = append(fields,
			zap.Int("amount", changed.Amount().Value()),
			zap.Int("balance_after", changed.BalanceAfter().Value()),
			zap.String("description", changed.Description()),
		)
		p.metrics.PointsMoved(txType.String(), changed.Amount().Value())
	}

	p.metrics.EventPublished(event.EventType())
	p.logger.Info("domain event", fields...)
	return nil
}

// PublishBatch 依序發布
func (p *LogPublisher) PublishBatch(events []shared.DomainEvent) error {
	for _, e := range events {
		if err := p.Publish(e); err != nil {
			return err
		}
	}
	return nil
}
