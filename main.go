package main

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/iburimskiy/circle-numbers/internal/circle"
	"github.com/iburimskiy/circle-numbers/internal/config"
	"github.com/iburimskiy/circle-numbers/internal/export"
	"github.com/iburimskiy/circle-numbers/internal/game"
	"github.com/iburimskiy/circle-numbers/internal/logging"
	"github.com/iburimskiy/circle-numbers/internal/tui"
)

// uniform draws from the process-wide generator.
type uniform struct{}

func (uniform) Float64() float64 { return rand.Float64() }

type options struct {
	configPath string
	logLevel   string
	width      int
	height     int
	palette    string
	multiplier int
	modulus    int
	noSound    bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options

	root := &cobra.Command{
		Use:          "circles",
		Short:        "Draw times-table circles",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := opts.settings(cmd)
			if err != nil {
				return err
			}
			logger, err := logging.New(settings.LogLevel, settings.LogFile)
			if err != nil {
				return err
			}
			defer logger.Sync()

			logger.Info("starting window",
				zap.Int("width", settings.Width),
				zap.Int("height", settings.Height),
				zap.String("palette", settings.Palette),
			)
			g := game.New(newSession(settings), settings, logger)
			if err := g.Run(); err != nil && !errors.Is(err, ebiten.Termination) {
				return err
			}
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "settings file (default ~/"+config.RCFileName+")")
	pf.StringVar(&opts.logLevel, "log-level", "", "debug, info, warn or error")
	pf.IntVar(&opts.width, "width", 0, "window or export width")
	pf.IntVar(&opts.height, "height", 0, "window or export height")
	pf.StringVar(&opts.palette, "palette", "", "mono or rainbow")
	pf.IntVar(&opts.multiplier, "multiplier", 0, "starting multiplier")
	pf.IntVar(&opts.modulus, "modulus", 0, "starting modulus")
	root.Flags().BoolVar(&opts.noSound, "no-sound", false, "disable the click tone")

	root.AddCommand(newTUICmd(&opts), newExportCmd(&opts), newCatalogueCmd())
	return root
}

// settings loads the settings file and environment, then applies any
// flags that were given explicitly.
func (o *options) settings(cmd *cobra.Command) (*config.Settings, error) {
	s, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		s.LogLevel = o.logLevel
	}
	if flags.Changed("width") {
		s.Width = o.width
	}
	if flags.Changed("height") {
		s.Height = o.height
	}
	if flags.Changed("palette") {
		s.Palette = o.palette
	}
	if flags.Changed("multiplier") {
		s.Multiplier = o.multiplier
	}
	if flags.Changed("modulus") {
		s.Modulus = o.modulus
	}
	if flags.Lookup("no-sound") != nil && flags.Changed("no-sound") {
		s.Sound = !o.noSound
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func newSession(s *config.Settings) *circle.Session {
	session := circle.NewSession(circle.Catalogue(), uniform{})
	session.SetParams(circle.Params{Multiplier: s.Multiplier, Modulus: s.Modulus})
	return session
}

func newTUICmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run in the terminal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := opts.settings(cmd)
			if err != nil {
				return err
			}
			logger, err := logging.Quiet(settings.LogLevel, settings.LogFile)
			if err != nil {
				return err
			}
			defer logger.Sync()

			return tui.Run(tui.New(newSession(settings), settings, logger))
		},
	}
}

func newExportCmd(opts *options) *cobra.Command {
	var (
		out     string
		slide   int
		caption bool
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render one circle to a PNG file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := opts.settings(cmd)
			if err != nil {
				return err
			}
			logger, err := logging.New(settings.LogLevel, settings.LogFile)
			if err != nil {
				return err
			}
			defer logger.Sync()

			session := newSession(settings)
			if slide != 0 && !session.GoToSlide(slide-1) {
				return fmt.Errorf("slide %d out of range 1-%d", slide, circle.CatalogueLen())
			}
			p := session.Params()

			path := out
			if path == "" {
				if path, err = settings.ExportPath(export.FileName(p)); err != nil {
					return err
				}
			}
			err = export.SavePNG(path, p, export.Options{
				Width:   settings.Width,
				Height:  settings.Height,
				Palette: settings.Palette,
				Caption: caption,
			})
			if err != nil {
				return err
			}
			logger.Info("exported",
				zap.String("path", path),
				zap.Int("multiplier", p.Multiplier),
				zap.Int("modulus", p.Modulus),
			)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default circle-MxN.png)")
	cmd.Flags().IntVar(&slide, "slide", 0, "export built-in circle N (1-based) instead")
	cmd.Flags().BoolVar(&caption, "caption", true, "print the parameters in the corner")
	return cmd
}

func newCatalogueCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "catalogue",
		Aliases: []string{"catalog"},
		Short:   "List the built-in circles",
		Run: func(cmd *cobra.Command, _ []string) {
			for i, e := range circle.Catalogue() {
				fmt.Fprintf(cmd.OutOrStdout(), "%2d  %4d × %d\n", i+1, e.Multiplier, e.Modulus)
			}
		},
	}
}
