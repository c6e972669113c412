package delaycache

type options struct {
	logger       *Logger
	strictReplay bool
}

// Option configures a Cache constructor.
type Option func(*options)

// WithLogger injects the logger used for best-effort diagnostics (status
// dump failures). The core never logs on hot paths. If nil is passed, a
// no-op logger is used.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithStrictReplay controls drain fidelity for LRU/LFU. By default a
// drained HIT record replays as a no-op insert, so the post-drain ordering
// reflects admission order rather than the original access order. With
// strict replay enabled, a HIT record performs the policy's promotion at
// drain time (LRU move-to-front, LFU frequency advance). Counter accounting
// is identical in both modes.
func WithStrictReplay(strict bool) Option {
	return func(o *options) {
		o.strictReplay = strict
	}
}
