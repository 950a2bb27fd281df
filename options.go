package unbox

type options struct {
	primitiveSlots int
	objectSlots    int
	logger         *Logger
}

// Option configures NewObject.
type Option func(*options)

// WithPrimitiveSlots reserves at least n primitive slots up front.
//
// Capacity still rounds up to the variant's growth granularity, exactly as
// the accessor factories do.
func WithPrimitiveSlots(n int) Option {
	return func(o *options) {
		o.primitiveSlots = n
	}
}

// WithObjectSlots reserves at least n object slots up front.
func WithObjectSlots(n int) Option {
	return func(o *options) {
		o.objectSlots = n
	}
}

// WithLogger configures the logger used for growth events.
// If nil is passed, logging stays disabled.
//
// Example with JSON logging:
//
//	logger := unbox.NewJSONLogger(slog.LevelDebug)
//	obj, _ := unbox.NewObject(intword.New(), unbox.WithLogger(logger))
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			return
		}
		o.logger = l
	}
}
