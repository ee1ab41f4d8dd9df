package abduce

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// enumerate walks every interpretation of the engine's variables, in index
// order, and scores the ones that agree with the fixed observations. The
// interpretation of index i binds variable v to bit v-1 of i.
//
// The walk is a pure function of immutable inputs, so it may be sharded; the
// shards are contiguous index ranges concatenated in order, which keeps the
// result identical to a sequential walk.
func (e *Engine) enumerate(ctx context.Context, fixed []observation) ([]Explanation, error) {
	total := 1 << uint(e.reg.Len())
	workers := e.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > runtime.NumCPU() {
		workers = runtime.NumCPU()
	}
	if workers == 1 || total < 2*workers {
		return e.enumerateRange(ctx, fixed, 0, total)
	}

	shards := make([][]Explanation, workers)
	g, ctx := errgroup.WithContext(ctx)
	per := (total + workers - 1) / workers
	for w := 0; w < workers; w++ {
		w := w
		lo, hi := w*per, (w+1)*per
		if hi > total {
			hi = total
		}
		g.Go(func() error {
			found, err := e.enumerateRange(ctx, fixed, lo, hi)
			shards[w] = found
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	var all []Explanation
	for _, shard := range shards {
		all = append(all, shard...)
	}
	return all, nil
}

func (e *Engine) enumerateRange(ctx context.Context, fixed []observation, lo, hi int) ([]Explanation, error) {
	n := e.reg.Len()
	var found []Explanation
	assign := make([]bool, n)
next:
	for i := lo; i < hi; i++ {
		if i%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		for _, o := range fixed {
			if ((i>>(uint(o.v)-1))&1 == 1) != o.val {
				continue next
			}
		}
		for v := 0; v < n; v++ {
			assign[v] = (i>>uint(v))&1 == 1
		}
		found = append(found, Explanation{
			Assignment: append([]bool(nil), assign...),
			Karma:      e.Karma(assign),
		})
	}
	return found, nil
}
