package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	RCFileName = ".circlesrc"
	envPrefix  = "CIRCLES_"

	PaletteMono    = "mono"
	PaletteRainbow = "rainbow"
)

// Settings are the runtime options. Precedence, lowest first: defaults,
// rc file, environment, command flags.
type Settings struct {
	Width     int    `validate:"min=320"`
	Height    int    `validate:"min=240"`
	LogLevel  string `validate:"oneof=debug info warn error"`
	LogFile   string
	Sound     bool
	Palette   string `validate:"oneof=mono rainbow"`
	ExportDir string

	// Starting parameters
	Multiplier int `validate:"min=2"`
	Modulus    int `validate:"min=3"`
}

var validate = validator.New()

func Default() *Settings {
	return &Settings{
		Width:      WindowWidth,
		Height:     WindowHeight,
		LogLevel:   "info",
		Sound:      true,
		Palette:    PaletteMono,
		Multiplier: 2,
		Modulus:    9,
	}
}

// Load reads settings from path, or from ~/.circlesrc when path is empty,
// then applies the environment. A missing default rc file is not an error.
func Load(path string) (*Settings, error) {
	s := Default()

	explicit := path != ""
	if !explicit {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, RCFileName)
		}
	}

	if path != "" {
		f, err := os.Open(path)
		switch {
		case err == nil:
			defer f.Close()
			if err := s.parse(f); err != nil {
				return nil, fmt.Errorf("read %s: %w", path, err)
			}
		case explicit || !errors.Is(err, os.ErrNotExist):
			return nil, fmt.Errorf("open settings: %w", err)
		}
	}

	if err := s.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks every field against its constraints.
func (s *Settings) Validate() error {
	if err := validate.Struct(s); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("invalid setting %s: %v fails %s=%s", strings.ToLower(fe.Field()), fe.Value(), fe.Tag(), fe.Param())
		}
		return err
	}
	return nil
}

// ExportPath joins name onto ExportDir, creating the directory if needed.
func (s *Settings) ExportPath(name string) (string, error) {
	if s.ExportDir == "" {
		return name, nil
	}
	if err := os.MkdirAll(s.ExportDir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	return filepath.Join(s.ExportDir, name), nil
}

func (s *Settings) parse(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.ToLower(strings.TrimSpace(parts[0]))
		value := strings.TrimSpace(parts[1])
		if err := s.set(key, value); err != nil {
			return fmt.Errorf("line %d: %w", n, err)
		}
	}
	return scanner.Err()
}

func (s *Settings) applyEnv(lookup func(string) (string, bool)) error {
	for _, key := range []string{"width", "height", "log_level", "log_file", "sound", "palette", "export_dir"} {
		name := envPrefix + strings.ToUpper(key)
		if v, ok := lookup(name); ok && v != "" {
			if err := s.set(key, v); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
		}
	}
	return nil
}

func (s *Settings) set(key, value string) error {
	var err error
	switch key {
	case "width":
		s.Width, err = strconv.Atoi(value)
	case "height":
		s.Height, err = strconv.Atoi(value)
	case "log_level", "loglevel":
		s.LogLevel = strings.ToLower(value)
	case "log_file", "logfile":
		s.LogFile = expandHome(value)
	case "sound":
		s.Sound, err = strconv.ParseBool(value)
	case "palette":
		s.Palette = strings.ToLower(value)
	case "export_dir", "exportdir":
		s.ExportDir = expandHome(value)
	case "multiplier":
		s.Multiplier, err = strconv.Atoi(value)
	case "modulus":
		s.Modulus, err = strconv.Atoi(value)
	}
	if err != nil {
		return fmt.Errorf("bad value for %s: %q", key, value)
	}
	return nil
}

func expandHome(p string) string {
	if !strings.HasPrefix(p, "~") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}
