package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/leonelquinteros/gotext"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"darkpath/pkg/engine/terminal"
	"darkpath/pkg/engine/world"
	"darkpath/pkg/game/devtools"
	"darkpath/pkg/game/generator"
	"darkpath/pkg/game/library"
	"darkpath/pkg/game/renderer"
)

type options struct {
	size       int
	complexity float64
	seed       int64
	level      int
	all        bool
	plain      bool
	color      string
	dump       string
	load       string
	devmap     int
	verbose    bool
	locale     string
	locales    string
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "darkpath",
		Short: "Generate and preview switch-and-exit path boards",
		Long: `Generate a board by carving random paths, or show boards from the
board library.

Examples:
  darkpath --size 12 --complexity 30 --seed 7
  darkpath --level 5 --plain
  darkpath --all --dump boards.txt
  darkpath --load board.txt`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			initGettext(opts)
			log := initLogging(opts)

			if opts.seed == 0 {
				opts.seed = time.Now().UnixNano()
			}

			out := &printer{
				w:     cmd.OutOrStdout(),
				r:     renderer.New(useColor(opts.color)),
				plain: opts.plain,
			}
			return run(opts, log, out)
		},
	}

	f := cmd.Flags()
	f.IntVarP(&opts.size, "size", "s", 9, "board size (edge length, at least 3)")
	f.Float64VarP(&opts.complexity, "complexity", "c", 12, "upper bound on the chosen path length")
	f.Int64Var(&opts.seed, "seed", 0, "random seed (0 picks one from the clock)")
	f.IntVarP(&opts.level, "level", "l", 0, "show board N of the board library instead of generating one")
	f.BoolVar(&opts.all, "all", false, "show every board of the board library")
	f.BoolVar(&opts.plain, "plain", false, "print the digit form with the start trailer instead of the icon preview")
	f.StringVar(&opts.color, "color", "auto", "colour output: auto, always or never")
	f.StringVarP(&opts.dump, "dump", "o", "", "also write a debug dump of the board to this file")
	f.StringVar(&opts.load, "load", "", "read a board in digit form from this file and show it")
	f.IntVar(&opts.devmap, "devmap", 0, "show the developer board of size N")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "log generation diagnostics")
	f.StringVar(&opts.locale, "locale", "en_GB", "language for messages")
	f.StringVar(&opts.locales, "locales", "locales", "directory holding <locale>/LC_MESSAGES/default.po")
	return cmd
}

func initGettext(opts options) {
	gotext.Configure(opts.locales, opts.locale, "default")
}

func initLogging(opts options) logrus.FieldLogger {
	log := logrus.StandardLogger()
	log.SetOutput(os.Stderr)
	log.SetLevel(logrus.WarnLevel)
	if opts.verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

func useColor(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return terminal.SupportsColor()
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logrus.WithError(err).Error(gotext.Get("failed"))
		os.Exit(1)
	}
}

func run(opts options, log logrus.FieldLogger, out *printer) error {
	switch {
	case opts.load != "":
		b, err := devtools.LoadBoardFile(opts.load)
		if err != nil {
			return err
		}
		return out.show(gotext.Get("Loaded board"), b, opts, devtools.DumpMeta{})

	case opts.devmap > 0:
		b := devtools.DevBoard(opts.devmap)
		return out.show(gotext.Get("Developer board"), b, opts, devtools.DumpMeta{})

	case opts.level > 0 || opts.all:
		lib, err := library.New(generator.NewSeeded(opts.seed, log), library.DefaultConfig(), log)
		if err != nil {
			return err
		}
		return showLibrary(lib, opts, out)
	}

	gen := generator.NewSeeded(opts.seed, log)
	b, err := gen.Generate(opts.size, opts.complexity)
	if err != nil {
		return fmt.Errorf("size %d, complexity %v, seed %d: %w", opts.size, opts.complexity, opts.seed, err)
	}
	title := out.r.FormatText("GT{Board} %d×%d, GT{seed} %d", b.Size(), b.Size(), opts.seed)
	return out.show(title, b, opts, devtools.DumpMeta{Seed: opts.seed, Complexity: opts.complexity})
}

func showLibrary(lib *library.Library, opts options, out *printer) error {
	first, last := opts.level, opts.level
	if opts.all {
		first, last = 1, lib.Len()
	}

	for i := first; i != 0 && i <= last; i = lib.Next(i) {
		b, err := lib.Get(i)
		if err != nil {
			return fmt.Errorf("board %d: %w", i, err)
		}
		_, complexity := lib.Params(i)
		kind := gotext.Get("generated")
		if lib.IsFixed(i) {
			kind = gotext.Get("fixed")
		}
		title := out.r.FormatText("GT{Board} %d/%d (%s)", i, lib.Len(), kind)
		meta := devtools.DumpMeta{Index: i, Seed: opts.seed, Complexity: complexity}
		if err := out.show(title, b, opts, meta); err != nil {
			return err
		}
	}
	return nil
}

// printer writes boards either as the icon preview or in digit form
type printer struct {
	w     io.Writer
	r     *renderer.TextRenderer
	plain bool
}

func (p *printer) show(title string, b *world.Board, opts options, meta devtools.DumpMeta) error {
	if p.plain {
		if err := devtools.WriteBoard(p.w, b); err != nil {
			return err
		}
	} else {
		if !terminal.FitsBoard(b.Size()) {
			logrus.WithField("size", b.Size()).Warn(gotext.Get("board is wider than the terminal"))
		}
		fmt.Fprintln(p.w, title)
		if err := p.r.Render(p.w, b); err != nil {
			return err
		}
		start := b.Start()
		fmt.Fprintln(p.w, p.r.FormatText("GT{start}: COORD{%d, %d}", start.X, start.Y))
		fmt.Fprintln(p.w, p.r.Legend())
		fmt.Fprintln(p.w)
	}

	if opts.dump != "" {
		path, err := devtools.DumpBoardToFile(b, opts.dump, meta)
		if err != nil {
			return err
		}
		logrus.WithField("path", path).Info(gotext.Get("board dump written"))
	}
	return nil
}
