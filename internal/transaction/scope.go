// Package transaction provides the transactional boundary used by services.
package transaction

import "context"

// Scope runs business logic inside one database transaction.
type Scope interface {
	// Execute runs fn within a transaction. The transaction commits if fn
	// returns nil and rolls back otherwise. The ctx passed to fn carries the
	// transaction so repositories join it.
	Execute(ctx context.Context, fn func(ctx context.Context) error) error
}

// ExecuteWithResult runs fn within scope and returns its result.
func ExecuteWithResult[T any](ctx context.Context, scope Scope, fn func(ctx context.Context) (T, error)) (T, error) {
	var result T
	err := scope.Execute(ctx, func(ctx context.Context) error {
		var fnErr error
		result, fnErr = fn(ctx)
		return fnErr
	})
	return result, err
}
