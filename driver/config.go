package driver

// DefaultQGramWindow is the q-gram window width used to build the
// candidate-generation QGramIndex when no WithQGramWindow option is
// supplied.
const DefaultQGramWindow = 3

// pipelineConfig holds Pipeline's configurable parameters, resolved once
// from defaults plus PipelineOption values applied in order.
type pipelineConfig struct {
	qgramWindow int
	useQGram    bool
}

// PipelineOption configures a Pipeline at Build time.
type PipelineOption func(*pipelineConfig)

// WithQGramWindow overrides the q-gram index's window width.
func WithQGramWindow(q int) PipelineOption {
	return func(cfg *pipelineConfig) {
		if q > 0 {
			cfg.qgramWindow = q
		}
	}
}

// WithoutQGramIndex disables the q-gram candidate-generation stage,
// leaving LabelIntersectionIndex as the sole candidate source. With the
// q-gram stage enabled, a query whose signature is too short for k (a
// large window over a short query) gets search.ErrThresholdTooLarge from
// the q-gram index, and Query then falls back to the label-intersection
// candidates alone.
func WithoutQGramIndex() PipelineOption {
	return func(cfg *pipelineConfig) {
		cfg.useQGram = false
	}
}

func newPipelineConfig(opts ...PipelineOption) pipelineConfig {
	cfg := pipelineConfig{
		qgramWindow: DefaultQGramWindow,
		useQGram:    true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
