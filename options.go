package chamfer

import (
	"log/slog"

	"github.com/gogpu/chamfer/internal/scan"
)

// Option configures a Transform during creation.
//
// Example:
//
//	// Raw integer path costs, no normalization
//	t := chamfer.NewShortTransform(chamfer.Borgefors, chamfer.WithNormalize(false))
type Option func(*options)

// options holds optional configuration for Transform creation.
type options struct {
	normalize bool
	progress  ProgressFunc
	logger    *slog.Logger
}

// defaultOptions returns the default transform options.
func defaultOptions() options {
	return options{
		normalize: true,
		progress:  nil, // no progress reporting
		logger:    nil, // falls back to the package logger
	}
}

// WithNormalize sets whether distances are divided by the mask's reference
// weight once propagation is complete. The default is true.
func WithNormalize(normalize bool) Option {
	return func(o *options) {
		o.normalize = normalize
	}
}

// WithProgress installs a callback receiving stage and row events. The
// callback runs synchronously on the transform goroutine and has no effect
// on the result.
func WithProgress(fn ProgressFunc) Option {
	return func(o *options) {
		o.progress = fn
	}
}

// WithLogger sets the logger for one transform, overriding [SetLogger].
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// Stage identifies a step of a running transform.
type Stage = scan.Stage

// Transform stages, in the order they run.
const (
	StageInit      = scan.StageInit
	StageForward   = scan.StageForward
	StageBackward  = scan.StageBackward
	StageNormalize = scan.StageNormalize
	StageDone      = scan.StageDone
)

// ProgressEvent reports that Row of Rows rows of Stage are done.
type ProgressEvent = scan.Event

// ProgressFunc receives progress events.
type ProgressFunc func(ProgressEvent)
