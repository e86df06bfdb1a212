package pipeline

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/textlabel/pkg/label"
)

// Layout lays out every request on e. Requests are processed in parallel
// with at most limit workers (limit <= 0 means one per CPU). Labels with no
// content are dropped; the remaining descriptors keep request order.
func Layout(ctx context.Context, e *label.Engine, reqs []label.Request, limit int) ([]label.Descriptor, error) {
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	type slot struct {
		d  label.Descriptor
		ok bool
	}
	slots := make([]slot, len(reqs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i := range reqs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			d, ok := e.Layout(reqs[i])
			slots[i] = slot{d: d, ok: ok}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]label.Descriptor, 0, len(reqs))
	for _, s := range slots {
		if s.ok {
			out = append(out, s.d)
		}
	}
	return out, nil
}
