package session

import "time"

type options struct {
	ttl      time.Duration
	capacity int
}

// apply apply options
func (o *options) apply(opts ...Option) *options {
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// setDefault default configuration
func (o *options) setDefault() {
	if o.ttl <= 0 {
		o.ttl = time.Hour // 默认1小时，与对局过期一致
	}
	if o.capacity <= 0 {
		o.capacity = 64
	}
}

type Option func(*options)

// WithTTL sets how long an untouched identity stays valid
func WithTTL(d time.Duration) Option {
	return func(o *options) {
		o.ttl = d
	}
}

// WithCapacity sets the maximum number of tracked identities
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}
