package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spaghettifunk/gizmo/engine/assets"
	"github.com/spaghettifunk/gizmo/engine/pixfont"
)

func runText(env *environment, args []string) error {
	fs := flag.NewFlagSet("text", flag.ContinueOnError)
	flip := fs.Bool("flip", env.cfg.Font.Flip, "Vertically flip the rendered image.")
	fontPath := fs.String("font", env.cfg.Font.Path, "BMFont (.fnt) or TrueType/OpenType font. Empty uses the built in atlas.")
	watch := fs.Bool("watch", env.cfg.Font.Watch, "Re-render whenever the font file changes (needs -font).")
	ink := fs.String("ink", env.cfg.Font.Ink, "Text used for ink pixels.")
	blank := fs.String("blank", env.cfg.Font.Blank, "Text used for background pixels.")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: gizmo text [-flip] [-font file] [-watch] STRING")
		fs.PrintDefaults()
	}
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return errUsage
	}
	text := unescape(fs.Arg(0))
	p := preview{ink: *ink, blank: *blank}

	if *fontPath == "" {
		if *watch {
			env.logger.Warn("-watch needs -font, rendering once")
		}
		return p.print(env.out, pixfont.DefaultAtlas(), text, *flip)
	}

	loader, err := assets.LoaderFor(*fontPath, env.cfg.Font.Size)
	if err != nil {
		return err
	}
	if !*watch {
		atlas, err := loader.Load(*fontPath)
		if err != nil {
			return err
		}
		return p.print(env.out, atlas, text, *flip)
	}

	aw, err := assets.NewAtlasWatcher(*fontPath, loader)
	if err != nil {
		return err
	}
	defer aw.Close()
	if err := aw.Start(); err != nil {
		return err
	}
	if err := p.print(env.out, aw.Atlas(), text, *flip); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	env.logger.Info("watching for changes, press ctrl+c to stop", "font", *fontPath)
	errs := aw.Errors()
	for {
		select {
		case atlas, ok := <-aw.Reloads():
			if !ok {
				return nil
			}
			if err := p.print(env.out, atlas, text, *flip); err != nil {
				env.logger.Warn(err.Error())
			}
		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			env.logger.Warn("font reload failed", "err", err)
		case <-ctx.Done():
			return nil
		}
	}
}

// unescape turns a literal \n typed on the command line into a newline.
func unescape(s string) string {
	return strings.ReplaceAll(s, `\n`, "\n")
}

type preview struct {
	ink   string
	blank string
}

func (p preview) print(w io.Writer, atlas *pixfont.Atlas, text string, flip bool) error {
	width, height, err := atlas.Measure(text)
	fmt.Fprintf(w, "measure: %dx%d (%s)\n", width, height, pixfont.StatusFromError(err))
	if err != nil {
		return err
	}
	img, err := atlas.RenderImage(text, flip)
	fmt.Fprintf(w, "render: %s\n", pixfont.StatusFromError(err))
	if err != nil {
		return err
	}
	p.write(w, img)
	return nil
}

func (p preview) write(w io.Writer, img *image.Gray) {
	var sb strings.Builder
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.GrayAt(x, y).Y != 0 {
				sb.WriteString(p.ink)
			} else {
				sb.WriteString(p.blank)
			}
		}
		sb.WriteByte('\n')
	}
	io.WriteString(w, sb.String())
}
