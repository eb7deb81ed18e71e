// Package middleware wraps a ports.DateStore to add behaviour.
package middleware

import "github.com/aretw0/countdown/pkg/ports"

// Middleware allows wrapping a DateStore to add behavior.
type Middleware func(ports.DateStore) ports.DateStore

// Chain applies middlewares so that the first one is the outermost.
func Chain(store ports.DateStore, mws ...Middleware) ports.DateStore {
	for i := len(mws) - 1; i >= 0; i-- {
		store = mws[i](store)
	}
	return store
}
