package dict

import (
	"github.com/on-the-ground/nocasedict/fold"
	"github.com/on-the-ground/nocasedict/shared/logging"
	"go.uber.org/zap"
)

const defaultName = "NocaseDict"

type config struct {
	name      string
	normalize fold.Func
	keyable   *KeyableBy
	logger    *zap.Logger
}

// Option configures a dictionary at construction time.
type Option func(*config)

// WithNormalizer replaces fold.Key. Every lookup, insertion, deletion and
// membership test goes through fn.
func WithNormalizer(fn fold.Func) Option {
	return func(c *config) {
		if fn != nil {
			c.normalize = fold.Checked(fn)
		}
	}
}

// WithKeyable attaches a keyable-by trait consulted when unpacking
// positional source items.
func WithKeyable(k KeyableBy) Option {
	return func(c *config) {
		c.keyable = &k
	}
}

// WithName sets the type name used by String.
func WithName(name string) Option {
	return func(c *config) {
		if name != "" {
			c.name = name
		}
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		c.logger = logging.OrNop(logger)
	}
}

func newConfig(opts []Option) config {
	c := config{
		name:      defaultName,
		normalize: fold.Key,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
