package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/automoto/drift/shared/movement"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// WindowSettings is the window section of the config file.
type WindowSettings struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Title  string `mapstructure:"title"`
}

// PlayerSettings binds one player slot to a profile and a control scheme.
type PlayerSettings struct {
	Profile string `mapstructure:"profile"`
	Scheme  string `mapstructure:"scheme"`
	Gamepad *int   `mapstructure:"gamepad"` // gamepad ID; replaces the keyboard scheme when set
}

// DashSettings mirrors movement.DashConfig.
type DashSettings struct {
	CooldownTicks int     `mapstructure:"cooldownTicks"`
	DurationTicks int     `mapstructure:"durationTicks"`
	Multiplier    float64 `mapstructure:"multiplier"`
}

// ProfileSettings mirrors movement.Profile. Zero values select defaults.
type ProfileSettings struct {
	Discipline          string        `mapstructure:"discipline"`
	WalkingSpeed        float64       `mapstructure:"walkingSpeed"`
	MaxSpeed            float64       `mapstructure:"maxSpeed"`
	Acceleration        float64       `mapstructure:"acceleration"`
	DecelerationWalking float64       `mapstructure:"decelerationWalking"`
	DecelerationSliding float64       `mapstructure:"decelerationSliding"`
	SlideEnabled        bool          `mapstructure:"slideEnabled"`
	Dash                *DashSettings `mapstructure:"dash"`
	HistoryLen          int           `mapstructure:"historyLen"`
	SmoothnessWindow    int           `mapstructure:"smoothnessWindow"`
}

// Settings is the loaded configuration.
type Settings struct {
	LogLevel string                     `mapstructure:"logLevel"`
	Window   WindowSettings             `mapstructure:"window"`
	TPS      int                        `mapstructure:"tps"`
	Override string                     `mapstructure:"profile"` // profile for the first player, from --profile
	Players  []PlayerSettings           `mapstructure:"players"`
	Profiles map[string]ProfileSettings `mapstructure:"profiles"`
}

// EnvPrefix prefixes environment overrides, e.g. DRIFT_LOGLEVEL.
const EnvPrefix = "DRIFT"

// BindFlags registers the command line flags on fs and binds them into viper.
func BindFlags(fs *pflag.FlagSet) error {
	fs.String("config", "", "path to a YAML config file")
	fs.String("profile", "", "movement profile for the first player (walker, racer, ...)")
	fs.String("log-level", "", "log level: trace, debug, info, warn, error")

	if err := viper.BindPFlag("profile", fs.Lookup("profile")); err != nil {
		return err
	}
	return viper.BindPFlag("logLevel", fs.Lookup("log-level"))
}

func setDefaults() {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("window.width", C.Width)
	viper.SetDefault("window.height", C.Height)
	viper.SetDefault("window.title", C.Title)
	viper.SetDefault("tps", C.TPS)
	viper.SetDefault("profile", "")

	viper.SetDefault("players", []map[string]any{
		{"profile": "racer", "scheme": "wasd"},
		{"profile": "walker", "scheme": "arrows"},
	})

	walker := movement.Walker()
	viper.SetDefault("profiles.walker.discipline", walker.Discipline.String())
	viper.SetDefault("profiles.walker.walkingSpeed", walker.WalkingSpeed)
	viper.SetDefault("profiles.walker.maxSpeed", walker.MaxSpeed)
	viper.SetDefault("profiles.walker.acceleration", walker.Acceleration)
	viper.SetDefault("profiles.walker.slideEnabled", walker.SlideEnabled)

	racer := movement.Racer()
	viper.SetDefault("profiles.racer.discipline", racer.Discipline.String())
	viper.SetDefault("profiles.racer.maxSpeed", racer.MaxSpeed)
	viper.SetDefault("profiles.racer.acceleration", racer.Acceleration)
	viper.SetDefault("profiles.racer.historyLen", racer.HistoryLen)
	viper.SetDefault("profiles.racer.dash.cooldownTicks", racer.Dash.CooldownTicks)
	viper.SetDefault("profiles.racer.dash.durationTicks", racer.Dash.DurationTicks)
	viper.SetDefault("profiles.racer.dash.multiplier", racer.Dash.Multiplier)
}

// Load reads configuration from path and sets default values.
// An empty path looks for drift.yaml in the working directory and
// falls back to defaults when there is none.
func Load(path string) (*Settings, error) {
	setDefaults()

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if path != "" {
		viper.SetConfigFile(path)
	} else {
		viper.SetConfigName("drift")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var s Settings
	if err := viper.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	if s.Override != "" && len(s.Players) > 0 {
		s.Players[0].Profile = s.Override
	}
	return &s, nil
}

// Apply copies window and tick settings into the global config.
func (s *Settings) Apply() {
	if s.Window.Width > 0 {
		C.Width = s.Window.Width
	}
	if s.Window.Height > 0 {
		C.Height = s.Window.Height
	}
	if s.Window.Title != "" {
		C.Title = s.Window.Title
	}
	if s.TPS > 0 {
		C.TPS = s.TPS
	}
}

// Profile builds and validates the named movement profile.
func (s *Settings) Profile(name string) (movement.Profile, error) {
	ps, ok := s.Profiles[strings.ToLower(name)]
	if !ok {
		return movement.Profile{}, fmt.Errorf("%w: unknown profile %q", movement.ErrInvalidProfile, name)
	}

	discipline, err := movement.ParseDiscipline(ps.Discipline)
	if err != nil {
		return movement.Profile{}, fmt.Errorf("profile %q: %w", name, err)
	}

	p := movement.Profile{
		Name:                strings.ToLower(name),
		Discipline:          discipline,
		WalkingSpeed:        ps.WalkingSpeed,
		MaxSpeed:            ps.MaxSpeed,
		Acceleration:        ps.Acceleration,
		DecelerationWalking: ps.DecelerationWalking,
		DecelerationSliding: ps.DecelerationSliding,
		SlideEnabled:        ps.SlideEnabled,
		HistoryLen:          ps.HistoryLen,
		SmoothnessWindow:    ps.SmoothnessWindow,
	}
	if ps.Dash != nil {
		p.Dash = &movement.DashConfig{
			CooldownTicks: ps.Dash.CooldownTicks,
			DurationTicks: ps.Dash.DurationTicks,
			Multiplier:    ps.Dash.Multiplier,
		}
	}

	p = p.Normalize()
	if err := p.Validate(); err != nil {
		return movement.Profile{}, fmt.Errorf("profile %q: %w", name, err)
	}
	return p, nil
}
