package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/magicsquare/frozen"
	"github.com/katalvlaran/magicsquare/square"
)

// EnvPrefix prefixes environment overrides: MAGICSQUARE_SIDE, MAGICSQUARE_BASE, ...
const EnvPrefix = "MAGICSQUARE_"

// Defaults for the build command.
const (
	DefaultSide  = 5
	DefaultStyle = StyleClassic
)

// buildKeys are the config keys a build reads; flags outside this set are ignored.
var buildKeys = map[string]bool{
	"side":  true,
	"base":  true,
	"seed":  true,
	"style": true,
	"sums":  true,
}

// BuildConfig is the resolved configuration of one build.
type BuildConfig struct {
	Side    int
	Base    int  // meaningful only when HasBase
	HasBase bool // false → default draw
	Seed    int64
	HasSeed bool
	Style   string
	Sums    bool
}

// Options turns the config into square.New options.
func (c BuildConfig) Options() []square.Option {
	var opts []square.Option
	if c.HasBase {
		opts = append(opts, square.WithBase(c.Base))
	}
	if c.HasSeed {
		opts = append(opts, square.WithSeed(c.Seed))
	}
	return opts
}

// loadParams merges configuration sources into the registry's Params.
// Precedence (highest to lowest): flags > env vars > config file > defaults.
// Only explicitly set flags are loaded.
func loadParams(reg *frozen.Registry, cfgFile string, flags *pflag.FlagSet) (*frozen.Params, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"side":  DefaultSide,
		"style": DefaultStyle,
		"sums":  false,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file
	if cfgFile != "" {
		if err := k.Load(file.Provider(cfgFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", cfgFile, err)
		}
	}

	// 3. Environment: MAGICSQUARE_SIDE -> side
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed || !buildKeys[f.Name] {
				return "", nil
			}
			return f.Name, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	return reg.Instance(k.Raw()), nil
}

// resolveBuildConfig reads and validates the build settings from p.
// Values may arrive typed (YAML, flags) or as strings (env), so each getter
// accepts both.
func resolveBuildConfig(p *frozen.Params) (BuildConfig, error) {
	var cfg BuildConfig
	var err error

	if cfg.Side, _, err = intSetting(p, "side"); err != nil {
		return cfg, err
	}

	if v, ok := p.Field("base"); ok && !v.IsNil() {
		if cfg.Base, cfg.HasBase, err = square.ParseBase(fmt.Sprint(v.Scalar())); err != nil {
			return cfg, err
		}
	}

	seed, hasSeed, err := intSetting(p, "seed")
	if err != nil {
		return cfg, err
	}
	cfg.Seed, cfg.HasSeed = int64(seed), hasSeed

	cfg.Style = DefaultStyle
	if v, ok := p.Field("style"); ok {
		cfg.Style = strings.ToLower(fmt.Sprint(v.Scalar()))
	}
	if !validStyle(cfg.Style) {
		return cfg, fmt.Errorf("invalid style %q: must be one of %v", cfg.Style, ValidStyles)
	}

	if v, ok := p.Field("sums"); ok {
		if b, isBool := v.Bool(); isBool {
			cfg.Sums = b
		} else if cfg.Sums, err = strconv.ParseBool(fmt.Sprint(v.Scalar())); err != nil {
			return cfg, fmt.Errorf("invalid sums %q: %w", fmt.Sprint(v.Scalar()), err)
		}
	}

	return cfg, nil
}

// intSetting reads an integer setting given as a number or a numeric string.
// A missing or null key reports ok=false without error.
func intSetting(p *frozen.Params, key string) (n int, ok bool, err error) {
	v, found := p.Field(key)
	if !found || v.IsNil() {
		return 0, false, nil
	}
	if n, isInt := v.Int(); isInt {
		return n, true, nil
	}
	s := strings.TrimSpace(fmt.Sprint(v.Scalar()))
	n, err = strconv.Atoi(s)
	if err != nil {
		return 0, false, fmt.Errorf("invalid %s %q: not an integer", key, s)
	}
	return n, true, nil
}
