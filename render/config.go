package render

import (
	"os"

	"github.com/fatih/color"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Config represents a set of configuration parameters for rendering.
type Config struct {
	LineWidth int            // wrap level listings at this width (in en)
	Color     bool           // colorize values by depth
	Context   *uax11.Context // context for display width; nil means uax11.LatinContext
	Palette   []*color.Color // colors by depth, cycling; nil means DefaultPalette
}

// DefaultLineWidth is used whenever a configuration does not state a line width.
const DefaultLineWidth = 65

// DefaultPalette returns the colors used for successive tree levels.
func DefaultPalette() []*color.Color {
	return []*color.Color{
		color.New(color.FgRed, color.Bold),
		color.New(color.FgBlue),
		color.New(color.FgGreen),
		color.New(color.FgMagenta),
		color.New(color.FgCyan),
		color.New(color.FgYellow),
	}
}

// ConfigFromTerminal is a simple helper for creating a rendering Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly. Colors are turned on for
// terminals only.
func ConfigFromTerminal() *Config {
	config := &Config{}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		config.Color = true
		w, _, err := term.GetSize(fd)
		if err != nil {
			config.LineWidth = DefaultLineWidth
		} else {
			if w > 65 {
				config.LineWidth = w - 10
			} else if w > 30 {
				config.LineWidth = w - 5
			} else if w > 10 {
				config.LineWidth = w
			} else {
				config.LineWidth = 10
			}
		}
		config.Context = uax11.ContextFromEnvironment()
	} else {
		config.LineWidth = DefaultLineWidth
	}
	tracer().P("render", "console").Infof("setting line length to %d en", config.LineWidth)
	return config
}

func (config *Config) normalized() *Config {
	c := Config{}
	if config != nil {
		c = *config
	}
	if c.LineWidth <= 0 {
		c.LineWidth = DefaultLineWidth
	}
	if c.Context == nil {
		c.Context = uax11.LatinContext
	}
	if len(c.Palette) == 0 {
		c.Palette = DefaultPalette()
	}
	return &c
}
