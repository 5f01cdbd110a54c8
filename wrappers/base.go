// Package wrappers composes extra behavior onto an env.Environment
// without the environment's involvement. Each wrapper delegates
// everything it does not change.
package wrappers

import "github.com/zeu5/env-wrappers/env"

// Base delegates every Environment method to the wrapped environment.
// Concrete wrappers embed it and override what they change.
type Base struct {
	env.Environment
}

// Unwrap returns the wrapped environment.
func (b *Base) Unwrap() env.Environment {
	return b.Environment
}
