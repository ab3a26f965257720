package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"scrollpanel/internal/config"
	"scrollpanel/internal/feed"
	"scrollpanel/internal/pty"
	"scrollpanel/internal/telemetry"
	"scrollpanel/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	cli "github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
)

// session carries what Before sets up for the subcommands and After tears down.
type session struct {
	cfg     config.Config
	log     zerolog.Logger
	logFile io.Closer
	tracing *telemetry.Provider

	// run drives the TUI; tests replace it to inspect what would be shown.
	run func(ctx context.Context, app *ui.AppModel, sources []feed.Source) error
}

func newApp() *cli.App {
	return (&session{log: zerolog.Nop(), run: runProgram}).app()
}

func (s *session) app() *cli.App {
	scroll := &cli.Command{
		Name:      "scroll",
		Usage:     "scrolling panels fed by demo producers or a command",
		ArgsUsage: "[-- command args...] (same as --command)",
		Flags:     scrollFlags(),
		Action:    s.runScroll,
	}

	return &cli.App{
		Name:  "scrollpanel",
		Usage: "bordered, scrolling text panels in the terminal",
		Flags: append([]cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "YAML config file"},
			&cli.StringFlag{Name: "log-file", Usage: "log destination (the TUI owns the terminal)"},
			&cli.StringFlag{Name: "log-level", Usage: "trace, debug, info, warn or error"},
		}, scrollFlags()...),
		Before: s.before,
		After:  s.after,
		Commands: []*cli.Command{
			{
				Name:  "bordered",
				Usage: "a single static text panel with a titled border",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "title", Usage: "border title"},
					&cli.StringFlag{Name: "text", Usage: "panel text"},
					&cli.StringFlag{Name: "align", Usage: "title alignment: left, center or right"},
					&cli.StringFlag{Name: "background", Usage: "hex background color, e.g. #FFFACD"},
				},
				Action: s.runBordered,
			},
			scroll,
		},
		Action: s.runScroll,
	}
}

// scrollFlags are shared by the root command (which defaults to scroll)
// and the scroll subcommand.
func scrollFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{Name: "panels", Aliases: []string{"n"}, Value: 2, Usage: "number of demo panels"},
		&cli.IntFlag{Name: "capacity", Usage: "lines kept per panel (default 40)"},
		&cli.DurationFlag{Name: "interval", Value: 300 * time.Millisecond, Usage: "delay between demo lines"},
		&cli.Uint64Flag{Name: "seed", Usage: "random seed for demo lines (default: time-based)"},
		&cli.StringFlag{Name: "command", Usage: "feed the first panel from this command, run in a PTY"},
	}
}

func (s *session) before(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	if c.IsSet("log-file") {
		cfg.LogFile = c.String("log-file")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	s.cfg = cfg

	if err := s.openLog(); err != nil {
		return err
	}
	c.Context = s.log.WithContext(c.Context)

	s.tracing, err = telemetry.Setup(c.Context)
	if err != nil {
		s.log.Warn().Err(err).Msg("tracing disabled")
	}
	return nil
}

func (s *session) openLog() error {
	level, err := zerolog.ParseLevel(s.cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	if s.cfg.LogFile == "" {
		s.log = zerolog.Nop()
		return nil
	}
	f, err := os.OpenFile(s.cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	s.logFile = f
	s.log = zerolog.New(zerolog.ConsoleWriter{Out: f, NoColor: true}).
		Level(level).
		With().Timestamp().Logger()
	return nil
}

func (s *session) after(c *cli.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.tracing.Shutdown(ctx); err != nil {
		s.log.Warn().Err(err).Msg("flush traces")
	}
	if s.logFile != nil {
		return s.logFile.Close()
	}
	return nil
}

func (s *session) runBordered(c *cli.Context) error {
	bc := s.cfg.Bordered
	if c.IsSet("title") {
		bc.Title = c.String("title")
	}
	if c.IsSet("text") {
		bc.Text = c.String("text")
	}
	if c.IsSet("align") {
		bc.TitleAlign = c.String("align")
	}
	if c.IsSet("background") {
		bc.Background = c.String("background")
	}

	panel, err := newBorderedPanel(bc)
	if err != nil {
		return err
	}
	app := ui.NewAppModel(ui.NewSingleLayout("bordered", panel), ui.WithAppLogger(s.log))
	return s.run(c.Context, app, nil)
}

func newBorderedPanel(bc config.BorderedConfig) (*ui.StaticPanel, error) {
	align, ok := ui.ParseTitleAlign(bc.TitleAlign)
	if !ok {
		return nil, fmt.Errorf("unknown title alignment %q", bc.TitleAlign)
	}
	panel := ui.NewStaticPanel(bc.Text, bc.Title)
	panel.TitleAlign = align
	if err := panel.SetBackground(bc.Background); err != nil {
		return nil, err
	}
	return panel, nil
}

func (s *session) runScroll(c *cli.Context) error {
	capacity := s.cfg.Capacity
	if c.IsSet("capacity") {
		capacity = c.Int("capacity")
	}
	if capacity < 0 {
		return fmt.Errorf("capacity must not be negative, got %d", capacity)
	}

	// Copied so command overrides leave the loaded config alone.
	panelCfgs := append([]config.PanelConfig(nil), s.cfg.Panels...)
	if len(panelCfgs) == 0 {
		n := c.Int("panels")
		if n <= 0 {
			n = 2
		}
		panelCfgs = make([]config.PanelConfig, n)
	}
	if command := strings.Fields(c.String("command")); len(command) > 0 {
		panelCfgs[0].Command = command
	} else if args := c.Args().Slice(); len(args) > 0 {
		panelCfgs[0].Command = args
	}

	seed := c.Uint64("seed")
	if !c.IsSet("seed") {
		seed = uint64(time.Now().UnixNano())
	}

	layout, sources := buildScroll(panelCfgs, scrollOptions{
		capacity: capacity,
		interval: c.Duration("interval"),
		seed:     seed,
		log:      s.log,
	})
	app := ui.NewAppModel(layout, ui.WithPanelKeys(), ui.WithAppLogger(s.log))
	return s.run(c.Context, app, sources)
}

type scrollOptions struct {
	capacity int
	interval time.Duration
	seed     uint64
	log      zerolog.Logger
}

// buildScroll creates one panel per config entry and the source feeding it.
// A command panel keeps its PTY sized to the panel's text area.
func buildScroll(panelCfgs []config.PanelConfig, opts scrollOptions) (ui.Layout, []feed.Source) {
	ids := make([]string, 0, len(panelCfgs))
	views := make([]ui.View, 0, len(panelCfgs))
	sources := make([]feed.Source, 0, len(panelCfgs))

	for i, pc := range panelCfgs {
		panelOpts := []ui.ScrollPanelOption{ui.WithCapacity(opts.capacity), ui.WithLogger(opts.log)}
		if pc.Name != "" {
			panelOpts = append(panelOpts, ui.WithName(pc.Name))
		}

		var cmdSrc *feed.CommandSource
		if len(pc.Command) > 0 {
			cmdSrc = &feed.CommandSource{
				Path: pc.Command[0],
				Args: pc.Command[1:],
				Dir:  pc.Dir,
			}
			panelOpts = append(panelOpts, ui.WithResizeHook(func(cols, rows int) {
				err := cmdSrc.Resize(pty.Size{Rows: uint16(rows), Cols: uint16(cols)})
				if err != nil {
					opts.log.Warn().Err(err).Str("source", cmdSrc.Name()).Msg("resize pty")
				}
			}))
		}

		p := ui.NewScrollPanel(i+1, panelOpts...)
		ids = append(ids, p.Name())
		views = append(views, p)

		if cmdSrc != nil {
			cmdSrc.Panel = p.Name()
			sources = append(sources, cmdSrc)
			continue
		}
		interval := opts.interval
		if pc.Interval > 0 {
			interval = pc.Interval.Std()
		}
		sources = append(sources, &feed.DemoSource{
			Panel:         p.Name(),
			Interval:      interval,
			Jitter:        interval,
			ProgressEvery: 7,
			ProgressSteps: 10,
			Seed:          opts.seed + uint64(i),
		})
	}
	return ui.NewColumnsLayout(ids, views), sources
}

// runProgram runs the TUI until it quits, feeding it from sources meanwhile.
// Producers stop when the UI exits.
func runProgram(ctx context.Context, app *ui.AppModel, sources []feed.Source) error {
	log := zerolog.Ctx(ctx)
	p := tea.NewProgram(app.AsTeaModel(), tea.WithAltScreen(), tea.WithContext(ctx))

	eg, ctx := errgroup.WithContext(ctx)
	feedCtx, stopFeed := context.WithCancel(ctx)

	eg.Go(func() error {
		defer stopFeed()
		_, err := p.Run()
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil // interrupted by signal
		}
		return err
	})
	if len(sources) > 0 {
		eg.Go(func() error {
			// Source failures are already shown in their panels; keep the UI up.
			if err := feed.Run(feedCtx, p.Send, sources...); err != nil {
				log.Warn().Err(err).Msg("feed stopped")
			}
			return nil
		})
	}
	return eg.Wait()
}
