// Package config loads the settings of the sheet demo from defaults,
// an optional config file, SHEETDEMO_* environment variables and flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/esimov/bottomsheet"
	"github.com/esimov/bottomsheet/utils"
)

// EnvPrefix is the prefix of the environment variables overriding the settings.
const EnvPrefix = "SHEETDEMO"

// Config holds the demo configuration.
type Config struct {
	Window     WindowConfig
	Sheet      SheetConfig
	Background BackgroundConfig
}

// WindowConfig holds the window settings. Sizes are in Dp.
type WindowConfig struct {
	Title  string
	Width  float32
	Height float32
}

// SheetConfig holds the bottom sheet settings.
type SheetConfig struct {
	// HeightRatio is the expanded sheet height relative to the window height.
	HeightRatio float32 `mapstructure:"height_ratio"`
	// InitialOffset is the visible height of the collapsed sheet, in Dp.
	InitialOffset float32 `mapstructure:"initial_offset"`
	// VelocityThreshold is the flick speed in Dp per second. Zero selects the default.
	VelocityThreshold float32 `mapstructure:"velocity_threshold"`
	Color             string
	Expanded          bool
}

// BackgroundConfig holds the content panel settings.
type BackgroundConfig struct {
	// Source is an image path or URL. Empty means a plain color.
	Source string
	// Blur is the gaussian blur sigma applied to the image.
	Blur  float64
	Color string
}

// flagKeys maps the command line flags to the configuration keys.
var flagKeys = map[string]string{
	"title":              "window.title",
	"width":              "window.width",
	"window-height":      "window.height",
	"height-ratio":       "sheet.height_ratio",
	"initial-offset":     "sheet.initial_offset",
	"velocity-threshold": "sheet.velocity_threshold",
	"sheet-color":        "sheet.color",
	"expanded":           "sheet.expanded",
	"background":         "background.source",
	"blur":               "background.blur",
	"background-color":   "background.color",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("window.title", "Bottom sheet")
	v.SetDefault("window.width", 420)
	v.SetDefault("window.height", 820)
	v.SetDefault("sheet.height_ratio", 0.8)
	v.SetDefault("sheet.initial_offset", 60)
	v.SetDefault("sheet.velocity_threshold", bottomsheet.DefaultVelocityThreshold)
	v.SetDefault("sheet.color", "#ffffff")
	v.SetDefault("sheet.expanded", false)
	v.SetDefault("background.source", "")
	v.SetDefault("background.blur", 0)
	v.SetDefault("background.color", "#0f8b8d")
}

// Load reads the configuration. An explicit path must exist, otherwise the
// config file is looked up in $HOME/.config/sheetdemo and is optional.
// The flags, if any, take precedence over the other sources once set.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "sheetdemo"))
		}
		v.SetConfigName("config")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks the values which can't be checked by the sheet itself.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %vx%v", c.Window.Width, c.Window.Height)
	}
	if c.Sheet.HeightRatio <= 0 || c.Sheet.HeightRatio > 1 {
		return fmt.Errorf("sheet height ratio must be in (0, 1], got %v", c.Sheet.HeightRatio)
	}
	if c.Background.Blur < 0 {
		return fmt.Errorf("blur must not be negative, got %v", c.Background.Blur)
	}
	for _, col := range []string{c.Sheet.Color, c.Background.Color} {
		if _, err := utils.HexToRGBA(col); err != nil {
			return err
		}
	}
	return c.SheetConfig(0).Validate()
}

// SheetConfig returns the sheet geometry for a window with the given bottom inset.
// The collapsed sheet stays visible above the inset.
func (c Config) SheetConfig(bottomInset float32) bottomsheet.Config {
	return bottomsheet.Config{
		Height:        c.Sheet.HeightRatio * c.Window.Height,
		InitialOffset: c.Sheet.InitialOffset + bottomInset,
	}
}

// Behavior returns the sheet behavior.
func (c Config) Behavior() bottomsheet.Behavior {
	return bottomsheet.Behavior{
		VelocityThreshold: c.Sheet.VelocityThreshold,
	}
}
