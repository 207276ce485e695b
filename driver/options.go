package driver

import (
	"log/slog"

	"github.com/rootreader/rootreader/internal/options"
	"github.com/rootreader/rootreader/rlog"
)

// config holds ReadData's optional settings, applied via Option.
type config struct {
	logger *slog.Logger
}

// Option configures a ReadData call, following the teacher's generic
// functional-options pattern (internal/options.Option[T], also used by
// blob.NumericEncoderOption in the teacher).
type Option = options.Option[*config]

// WithLogger routes ReadData's diagnostic logging to logger instead of
// rlog.Default(), useful when a caller wants decode failures attributed to
// a request-scoped logger.
func WithLogger(logger *slog.Logger) Option {
	return options.NoError(func(c *config) { c.logger = logger })
}

func newConfig(opts ...Option) (*config, error) {
	cfg := &config{logger: rlog.Default()}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}
