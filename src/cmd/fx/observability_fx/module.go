package observability_fx

import (
	"github.com/xiangzhu626/jifen/src/internal/infrastructure/events"
	"github.com/xiangzhu626/jifen/src/internal/infrastructure/metrics"
	"go.uber.org/fx"
)

var Module = fx.Provide(
	metrics.New,
	events.NewLogPublisher,
)
