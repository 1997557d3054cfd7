package closer

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
)

type closeFn func(ctx context.Context) error

type named struct {
	name string
	fn   closeFn
}

var (
	mu    sync.Mutex
	stack []named
	log   = zap.NewNop()
)

func SetLogger(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	if l != nil {
		log = l
	}
}

func Add(fn closeFn) {
	AddNamed("", fn)
}

func AddNamed(name string, fn closeFn) {
	mu.Lock()
	defer mu.Unlock()
	stack = append(stack, named{name: name, fn: fn})
}

// CloseAll runs the registered close functions in reverse registration
// order. Every function runs even if an earlier one fails; the errors are
// joined.
func CloseAll(ctx context.Context) error {
	mu.Lock()
	items := stack
	stack = nil
	mu.Unlock()

	var errs []error
	for i := len(items) - 1; i >= 0; i-- {
		it := items[i]
		if it.name != "" {
			log.Info("closing", zap.String("component", it.name))
		}
		if err := it.fn(ctx); err != nil {
			log.Error("close failed",
				zap.String("component", it.name),
				zap.Error(err),
			)
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
