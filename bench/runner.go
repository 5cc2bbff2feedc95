package bench

import (
	"context"

	"github.com/guiguan/caster"
)

// Runner executes scenarios in the background and broadcasts their results.
//
// Subscribers have to be registered before Start. The subscription channels
// are closed after the last result has been published or the run has been
// cancelled.
type Runner struct {
	cfg  Config
	cast *caster.Caster // broadcaster for results
}

// NewRunner creates a runner for cfg. Zero fields of cfg take their values
// from DefaultConfig.
func NewRunner(cfg Config) *Runner {
	return &Runner{
		cfg:  cfg.normalized(),
		cast: caster.New(nil),
	}
}

// Config returns the effective configuration.
func (r *Runner) Config() Config {
	return r.cfg
}

// Subscribe returns a channel receiving a Result for every scenario run. The
// channel buffers results for all scenarios, so a slow reader does not hold
// up the measurements.
func (r *Runner) Subscribe() (<-chan interface{}, bool) {
	return r.cast.Sub(context.Background(), uint(len(scenarios)))
}

// Start resolves names (all scenarios if empty) and runs them one after the
// other in a separate goroutine. Cancelling ctx stops the run before the
// next scenario.
func (r *Runner) Start(ctx context.Context, names []string) error {
	selected, err := Select(names)
	if err != nil {
		r.cast.Close()
		return err
	}
	go func() {
		defer r.cast.Close()
		for _, sc := range selected {
			if ctx.Err() != nil {
				tracer().Infof("bench: run cancelled before %s", sc.Name)
				return
			}
			res := sc.Run(r.cfg)
			if res.Err != nil {
				tracer().Errorf("bench: %s failed: %v", sc.Name, res.Err)
			} else {
				tracer().Debugf("bench: %v", res)
			}
			r.cast.Pub(res)
		}
	}()
	return nil
}

// Collect drains a subscription channel.
func Collect(sub <-chan interface{}) []Result {
	var results []Result
	for msg := range sub {
		if res, ok := msg.(Result); ok {
			results = append(results, res)
		}
	}
	return results
}
