// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// TransactionManager runs a unit of work atomically.
type TransactionManager interface {
	// WithinTransaction runs fn in a transaction carried by the context passed to fn.
	// Repositories called with that context join the transaction. A nested call
	// joins the outer transaction instead of opening a new one.
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
