package feed

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"scrollpanel/internal/ui"
)

var demoWords = []string{
	"alpha", "bravo", "charlie", "delta", "echo", "foxtrot", "golf",
	"hotel", "india", "juliet", "kilo", "lima", "mike", "november",
}

// DemoSource emits numbered lines of random words. Every ProgressEvery-th
// line is a progress bar that is redrawn in place ProgressSteps times.
type DemoSource struct {
	Label         string
	Panel         string
	Interval      time.Duration
	Jitter        time.Duration // up to this much extra delay per line
	Lines         int           // stop after this many lines; 0 runs until ctx is done
	ProgressEvery int
	ProgressSteps int
	Seed          uint64
}

var _ Source = (*DemoSource)(nil)

// Name implements Source.
func (d *DemoSource) Name() string {
	if d.Label != "" {
		return d.Label
	}
	return "demo:" + d.Panel
}

// Target implements Source.
func (d *DemoSource) Target() string { return d.Panel }

// Run implements Source.
func (d *DemoSource) Run(ctx context.Context, sink Sink) error {
	r := rand.New(rand.NewPCG(d.Seed, d.Seed^0x5deece66d))
	steps := d.ProgressSteps
	if steps <= 0 {
		steps = 10
	}

	for n := 1; d.Lines == 0 || n <= d.Lines; n++ {
		if err := d.wait(ctx, r); err != nil {
			return err
		}
		if d.ProgressEvery > 0 && n%d.ProgressEvery == 0 {
			sink(ui.AppendLineMsg{Target: d.Panel, Text: progressLine(n, 0, steps)})
			for step := 1; step <= steps; step++ {
				if err := d.wait(ctx, r); err != nil {
					return err
				}
				sink(ui.ReplaceLastLineMsg{Target: d.Panel, Text: progressLine(n, step, steps)})
			}
			continue
		}
		sink(ui.AppendLineMsg{Target: d.Panel, Text: randomLine(n, r)})
	}
	return nil
}

func (d *DemoSource) wait(ctx context.Context, r *rand.Rand) error {
	delay := d.Interval
	if d.Jitter > 0 {
		delay += time.Duration(r.Int64N(int64(d.Jitter)))
	}
	if delay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func randomLine(n int, r *rand.Rand) string {
	words := make([]string, 3)
	for i := range words {
		words[i] = demoWords[r.IntN(len(demoWords))]
	}
	return fmt.Sprintf("%03d %s", n, strings.Join(words, " "))
}

func progressLine(n, step, steps int) string {
	return fmt.Sprintf("%03d working [%s%s] %3d%%",
		n, strings.Repeat("#", step), strings.Repeat(" ", steps-step), step*100/steps)
}
