package transaction_test

import (
	"context"
	"errors"
	"testing"

	"github.com/dukerupert/wardrobe/internal/transaction"
)

type mockScope struct {
	executeFn func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockScope) Execute(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.executeFn(ctx, fn)
}

func passThrough() *mockScope {
	return &mockScope{
		executeFn: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		},
	}
}

func TestExecuteWithResult_Success(t *testing.T) {
	result, err := transaction.ExecuteWithResult(context.Background(), passThrough(), func(ctx context.Context) (int64, error) {
		return 42, nil
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != 42 {
		t.Errorf("expected 42, got %d", result)
	}
}

func TestExecuteWithResult_FnError(t *testing.T) {
	errFn := errors.New("stock exceeded")
	result, err := transaction.ExecuteWithResult(context.Background(), passThrough(), func(ctx context.Context) (string, error) {
		return "", errFn
	})

	if !errors.Is(err, errFn) {
		t.Errorf("expected errFn, got %v", err)
	}
	if result != "" {
		t.Errorf("expected empty string, got %q", result)
	}
}

func TestExecuteWithResult_CommitError(t *testing.T) {
	errCommit := errors.New("commit failed")
	scope := &mockScope{
		executeFn: func(ctx context.Context, fn func(ctx context.Context) error) error {
			_ = fn(ctx)
			return errCommit
		},
	}

	_, err := transaction.ExecuteWithResult(context.Background(), scope, func(ctx context.Context) (int, error) {
		return 1, nil
	})

	if !errors.Is(err, errCommit) {
		t.Errorf("expected errCommit, got %v", err)
	}
}

func TestTxFromContext_Empty(t *testing.T) {
	tx, ok := transaction.TxFromContext(context.Background())
	if ok || tx != nil {
		t.Errorf("expected no transaction, got %v", tx)
	}
}
