package eggprice

import (
	"github.com/yorrLorenz/eggprice/pkg/core"
	"github.com/yorrLorenz/eggprice/pkg/interpolate"
	"github.com/yorrLorenz/eggprice/pkg/logger"
)

// Option is a functional option for configuring an Estimator
type Option func(*Estimator)

// WithHistory forwards every successful estimate to recorder.
// The estimator never reads the history back.
func WithHistory(recorder core.HistoryRecorder) Option {
	return func(e *Estimator) {
		e.history = recorder
	}
}

// WithLogger overrides DefaultLog
func WithLogger(log logger.Logger) Option {
	return func(e *Estimator) {
		e.log = log
	}
}

// WithSelector overrides the neighbor selection rule, by default interpolate.Select
func WithSelector(selector interpolate.Selector) Option {
	return func(e *Estimator) {
		e.selector = selector
	}
}
