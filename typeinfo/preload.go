package typeinfo

import (
	"context"
	"reflect"

	"golang.org/x/sync/errgroup"
)

// Preload derives the full identity of every given type concurrently, so
// later queries only read memoized values. It stops early if ctx is done.
func Preload(ctx context.Context, r *Registry, types ...reflect.Type) error {
	errs, ctx := errgroup.WithContext(ctx)

	for _, t := range types {
		t := t
		errs.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			info := r.Type(t)
			info.Seq()
			info.Hash()
			info.Name()
			return nil
		})
	}

	return errs.Wait()
}
