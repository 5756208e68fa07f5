package config

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/memory-cards/internal/layout"
	"github.com/rocketscienceinc/memory-cards/internal/memory"
	"github.com/rocketscienceinc/memory-cards/internal/render"
)

const (
	FrontendTerminal = "terminal"
	FrontendWindow   = "window"
)

type Config struct {
	LogLevel string   `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	LogFile  string   `yaml:"log-file" env:"LOG_FILE" env-default:"memory.log"`
	Frontend string   `yaml:"frontend" env:"FRONTEND" env-default:"terminal"`
	Board    Board    `yaml:"board"`
	Timing   Timing   `yaml:"timing"`
	Theme    Theme    `yaml:"theme"`
	Window   Window   `yaml:"window"`
	Terminal Terminal `yaml:"terminal"`
}

type Board struct {
	Rows    int      `yaml:"rows" env:"BOARD_ROWS" env-default:"4"`
	Cols    int      `yaml:"cols" env:"BOARD_COLS" env-default:"4"`
	Symbols []string `yaml:"symbols" env:"BOARD_SYMBOLS" env-separator:"," env-default:"🍎,🍐,🍊,🍋,🍌,🍇,🍉,🍒"`
}

type Timing struct {
	TickRate    int           `yaml:"tick-rate" env:"TICK_RATE" env-default:"30"`
	RevealDelay time.Duration `yaml:"reveal-delay" env:"REVEAL_DELAY" env-default:"500ms"`
	VictoryHold time.Duration `yaml:"victory-hold" env:"VICTORY_HOLD" env-default:"2s"`
}

type Theme struct {
	Background string `yaml:"background" env:"THEME_BACKGROUND" env-default:"#ffffff"`
	Hidden     string `yaml:"hidden" env:"THEME_HIDDEN" env-default:"#3498db"`
	Revealed   string `yaml:"revealed" env:"THEME_REVEALED" env-default:"#2ecc71"`
	Matched    string `yaml:"matched" env:"THEME_MATCHED" env-default:"#95a5a6"`
	Text       string `yaml:"text" env:"THEME_TEXT" env-default:"#000000"`
}

// Window geometry is in pixels.
type Window struct {
	Title      string `yaml:"title" env:"WINDOW_TITLE" env-default:"Memory Card Game"`
	Width      int    `yaml:"width" env:"WINDOW_WIDTH" env-default:"800"`
	Height     int    `yaml:"height" env:"WINDOW_HEIGHT" env-default:"600"`
	CardSize   int    `yaml:"card-size" env:"WINDOW_CARD_SIZE" env-default:"100"`
	CardMargin int    `yaml:"card-margin" env:"WINDOW_CARD_MARGIN" env-default:"10"`
	OriginX    int    `yaml:"origin-x" env:"WINDOW_ORIGIN_X" env-default:"200"`
	OriginY    int    `yaml:"origin-y" env:"WINDOW_ORIGIN_Y" env-default:"150"`
	MovesY     int    `yaml:"moves-y" env:"WINDOW_MOVES_Y" env-default:"50"`
	BannerY    int    `yaml:"banner-y" env:"WINDOW_BANNER_Y" env-default:"100"`
}

// Terminal geometry is in character cells.
type Terminal struct {
	CardWidth  int `yaml:"card-width" env:"TERMINAL_CARD_WIDTH" env-default:"8"`
	CardHeight int `yaml:"card-height" env:"TERMINAL_CARD_HEIGHT" env-default:"4"`
	CardMargin int `yaml:"card-margin" env:"TERMINAL_CARD_MARGIN" env-default:"1"`
	OriginX    int `yaml:"origin-x" env:"TERMINAL_ORIGIN_X" env-default:"2"`
	OriginY    int `yaml:"origin-y" env:"TERMINAL_ORIGIN_Y" env-default:"4"`
	MovesY     int `yaml:"moves-y" env:"TERMINAL_MOVES_Y" env-default:"1"`
	BannerY    int `yaml:"banner-y" env:"TERMINAL_BANNER_Y" env-default:"2"`
}

// MustLoad - loads the configuration from path, falling back to the
// environment and defaults when the file does not exist.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return config, nil
}

func (that *Config) MemoryBoard() memory.Board {
	return memory.Board{
		Rows:        that.Board.Rows,
		Cols:        that.Board.Cols,
		Symbols:     that.Board.Symbols,
		RevealDelay: that.Timing.RevealDelay,
	}
}

func (that *Config) RenderTheme() (render.Theme, error) {
	return render.NewTheme(render.ThemeSpec{
		Background: that.Theme.Background,
		Hidden:     that.Theme.Hidden,
		Revealed:   that.Theme.Revealed,
		Matched:    that.Theme.Matched,
		Text:       that.Theme.Text,
	})
}

func (that *Config) WindowGeometry() layout.Geometry {
	return layout.Geometry{
		Rows:        that.Board.Rows,
		Cols:        that.Board.Cols,
		Origin:      image.Pt(that.Window.OriginX, that.Window.OriginY),
		CardWidth:   that.Window.CardSize,
		CardHeight:  that.Window.CardSize,
		Margin:      that.Window.CardMargin,
		ScreenWidth: that.Window.Width,
		MovesY:      that.Window.MovesY,
		BannerY:     that.Window.BannerY,
	}
}

// TerminalGeometry centres the move counter and banner over the grid, since
// the terminal width is only known at runtime.
func (that *Config) TerminalGeometry() layout.Geometry {
	geo := layout.Geometry{
		Rows:       that.Board.Rows,
		Cols:       that.Board.Cols,
		Origin:     image.Pt(that.Terminal.OriginX, that.Terminal.OriginY),
		CardWidth:  that.Terminal.CardWidth,
		CardHeight: that.Terminal.CardHeight,
		Margin:     that.Terminal.CardMargin,
		MovesY:     that.Terminal.MovesY,
		BannerY:    that.Terminal.BannerY,
	}

	geo.ScreenWidth = 2*that.Terminal.OriginX + geo.Bounds().Dx()

	return geo
}
