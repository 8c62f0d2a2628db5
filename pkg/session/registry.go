// Package session issues and tracks the short alphanumeric identities
// that tie a client to its player across reconnects within one process
// lifetime. Identities expire after the configured TTL so a token from
// a long-dead game cannot resume into a fresh one.
package session

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/jjoak3/dumptrick/pkg/hearts"
)

// Registry is the in-process identity store
type Registry struct {
	ids  *expirable.LRU[string, time.Time]
	opts *options
}

// New creates a registry
func New(opts ...Option) *Registry {
	o := new(options)
	o.apply(opts...).setDefault()

	return &Registry{
		ids:  expirable.NewLRU[string, time.Time](o.capacity, nil, o.ttl),
		opts: o,
	}
}

// Issue allocates a fresh identity, retrying on the rare collision
func (r *Registry) Issue() string {
	for {
		id := hearts.NewPlayerID()
		if r.Known(id) {
			continue
		}
		r.ids.Add(id, time.Now())
		return id
	}
}

// Known reports whether the identity is still valid
func (r *Registry) Known(id string) bool {
	if id == "" {
		return false
	}
	_, ok := r.ids.Get(id)
	return ok
}

// Touch refreshes the identity's expiry
func (r *Registry) Touch(id string) {
	if id == "" {
		return
	}
	r.ids.Add(id, time.Now())
}

// Forget drops the identity
func (r *Registry) Forget(id string) {
	r.ids.Remove(id)
}

// Len returns the number of live identities
func (r *Registry) Len() int {
	return r.ids.Len()
}
