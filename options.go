package slicegrow

import "github.com/go-logr/logr"

// Option configures an Array at construction.
type Option func(*settings)

type settings struct {
	policy    Policy
	observers []Observer
	logger    logr.Logger
}

func newSettings(opts []Option) settings {
	s := settings{policy: DefaultPolicy, logger: logr.Discard()}
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	return s
}

// WithPolicy replaces DefaultPolicy. A nil policy is ignored.
func WithPolicy(p Policy) Option {
	return func(s *settings) {
		if p != nil {
			s.policy = p
		}
	}
}

// WithObserver registers fn to be called once per growth.
// Observers run in registration order.
func WithObserver(fn Observer) Option {
	return func(s *settings) {
		if fn != nil {
			s.observers = append(s.observers, fn)
		}
	}
}

// WithLogger sets the logger used to trace growth at V(1).
func WithLogger(l logr.Logger) Option {
	return func(s *settings) {
		s.logger = l
	}
}
