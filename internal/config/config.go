package config

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable read by Load.
const EnvPrefix = "MULTIHASH"

const (
	keyLogLevel = "log_level"
	keyWarnWeak = "warn_weak"
	keyPrompt   = "prompt"
)

// Config contains the runtime settings that do not come from positional arguments.
type Config struct {
	// LogLevel controls diagnostics on stderr (MULTIHASH_LOG_LEVEL).
	LogLevel string
	// WarnWeak prints a policy warning for weak passwords (MULTIHASH_WARN_WEAK).
	WarnWeak bool
	// Prompt allows reading the password from a terminal without echo (MULTIHASH_PROMPT).
	Prompt bool
}

// Load reads Config from MULTIHASH_* environment variables with defaults.
func Load() (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	v.SetDefault(keyLogLevel, "warn")
	v.SetDefault(keyWarnWeak, false)
	v.SetDefault(keyPrompt, true)

	warnWeak, err := boolSetting(v, keyWarnWeak)
	if err != nil {
		return Config{}, err
	}
	prompt, err := boolSetting(v, keyPrompt)
	if err != nil {
		return Config{}, err
	}

	return Config{
		LogLevel: v.GetString(keyLogLevel),
		WarnWeak: warnWeak,
		Prompt:   prompt,
	}, nil
}

// boolSetting rejects values viper would silently read as false.
func boolSetting(v *viper.Viper, key string) (bool, error) {
	b, err := cast.ToBoolE(v.Get(key))
	if err != nil {
		return false, fmt.Errorf("invalid %s_%s: %w", EnvPrefix, strings.ToUpper(key), err)
	}
	return b, nil
}
