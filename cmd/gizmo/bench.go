package main

import (
	"flag"
	"fmt"
	"runtime"
	"sync/atomic"

	"github.com/spaghettifunk/gizmo/engine/core"
	"github.com/spaghettifunk/gizmo/engine/pixfont"
)

func runBench(env *environment, args []string) error {
	fs := flag.NewFlagSet("bench", flag.ContinueOnError)
	n := fs.Int("n", 1000, "Number of renders.")
	workers := fs.Int("workers", runtime.NumCPU(), "Renders running in parallel.")
	flip := fs.Bool("flip", env.cfg.Font.Flip, "Vertically flip the rendered image.")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if fs.NArg() != 1 || *n <= 0 {
		fmt.Fprintln(fs.Output(), "usage: gizmo bench [-n N] [-workers N] [-flip] STRING")
		return errUsage
	}
	text := unescape(fs.Arg(0))

	atlas := pixfont.DefaultAtlas()
	w, h, err := atlas.Measure(text)
	if err != nil {
		return err
	}

	js, err := core.NewJobSystem(*workers, *workers)
	if err != nil {
		return err
	}
	if err := core.MetricsInitialize(); err != nil {
		return err
	}

	var failed atomic.Int64
	total := core.NewClock()
	total.Start()
	for i := 0; i < *n; i++ {
		js.Submit(core.JobTask{
			Run: func() error {
				clock := core.NewClock()
				buf := make([]byte, w*h)
				clock.Start()
				err := atlas.Render(text, buf, w, h, *flip)
				clock.Update()
				core.MetricsUpdate(clock.Elapsed())
				return err
			},
			OnFailure: func(error) { failed.Add(1) },
		})
	}
	if err := js.Shutdown(); err != nil {
		return err
	}
	total.Update()
	total.Stop()

	env.logger.Debug("bench finished", "workers", *workers, "failed", failed.Load())
	fmt.Fprintf(env.out, "renders: %d of %dx%d on %d workers\n", *n, w, h, *workers)
	fmt.Fprintf(env.out, "total: %s\n", total.Elapsed())
	fmt.Fprintf(env.out, "average (last %d): %s\n", core.AVG_COUNT, core.MetricsAverage())
	fmt.Fprintf(env.out, "rate: %.0f/s\n", core.MetricsRate())
	if f := failed.Load(); f > 0 {
		return fmt.Errorf("%d of %d renders failed", f, *n)
	}
	return nil
}
