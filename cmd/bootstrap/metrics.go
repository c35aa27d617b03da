package bootstrap

import (
	"tripmatch/internal/pkg/config"
	"tripmatch/internal/pkg/metrics"
	"tripmatch/internal/usecase/commands"
	"tripmatch/internal/usecase/shared"

	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		metrics.New,
		func(m *metrics.Metrics) commands.MatchRecorder { return m },
		NewRetryPolicy,
	),
)

// NewRetryPolicy is shared by every storage backend; retries feed the retry counter.
func NewRetryPolicy(cfg config.Config, m *metrics.Metrics) shared.RetryPolicy {
	return shared.RetryPolicy{
		MaxRetries: cfg.Match.MaxRetries,
		BaseDelay:  cfg.Match.RetryBaseDelay,
		OnRetry: func(int, error) {
			m.RecordRetry()
		},
	}
}
