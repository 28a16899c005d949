/*
gizmo exercises the math core and the pixel font from the command line.

	gizmo [-config gizmo.toml] <command> [flags] [args]

Commands: text, frustum, ray, bench, config.
*/
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spaghettifunk/gizmo/engine/config"
	"github.com/spaghettifunk/gizmo/engine/core"
)

type command struct {
	name    string
	summary string
	run     func(env *environment, args []string) error
}

// environment is what every command gets: the effective configuration, a
// logger tagged with the run id, and where to print results.
type environment struct {
	cfg    *config.Config
	logger *log.Logger
	out    io.Writer
}

var commands = []command{
	{"text", "measure a string and print an ASCII preview of its pixels", runText},
	{"frustum", "print the frustum corners and planes of the configured camera", runFrustum},
	{"ray", "intersect a ray with a box, an oriented box and the ground plane", runRay},
	{"bench", "render a string repeatedly and report timings", runBench},
	{"config", "print the effective configuration as TOML", runConfig},
}

var errUsage = errors.New("usage")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, out, errOut io.Writer) int {
	fs := flag.NewFlagSet("gizmo", flag.ContinueOnError)
	fs.SetOutput(errOut)
	configPath := fs.String("config", "gizmo.toml", "TOML configuration file.")
	fs.Usage = func() { usage(fs) }
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(errOut, "gizmo: %v\n", err)
		return 1
	}
	if err := core.SetLogLevel(cfg.LogLevel); err != nil {
		fmt.Fprintf(errOut, "gizmo: %v\n", err)
		return 1
	}

	name := fs.Arg(0)
	for _, c := range commands {
		if c.name != name {
			continue
		}
		env := &environment{
			cfg:    cfg,
			logger: core.LogWith("run", uuid.NewString(), "cmd", name),
			out:    out,
		}
		env.logger.Debug("starting", "config", *configPath)
		if err := c.run(env, fs.Args()[1:]); err != nil {
			if errors.Is(err, errUsage) || errors.Is(err, flag.ErrHelp) {
				return 2
			}
			env.logger.Error(err.Error())
			return 1
		}
		return 0
	}

	fmt.Fprintf(errOut, "gizmo: unknown command %q\n", name)
	fs.Usage()
	return 2
}

func usage(fs *flag.FlagSet) {
	w := fs.Output()
	fmt.Fprintln(w, "usage: gizmo [-config file] <command> [flags] [args]")
	fmt.Fprintln(w, "\nflags:")
	fs.PrintDefaults()
	fmt.Fprintln(w, "\ncommands:")
	for _, c := range commands {
		fmt.Fprintf(w, "  %-8s %s\n", c.name, c.summary)
	}
}

// parseFlags treats every flag error as a usage error.
func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	return nil
}

func runConfig(env *environment, args []string) error {
	data, err := env.cfg.Encode()
	if err != nil {
		return err
	}
	_, err = env.out.Write(data)
	return err
}
