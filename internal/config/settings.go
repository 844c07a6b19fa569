package config

import (
	"strings"

	"github.com/spf13/viper"
)

// SettingFunc looks up a raw setting by name. The boolean reports whether the
// setting was present.
type SettingFunc func(name string) (string, bool)

// Settings exposes raw, untyped settings such as REDLIB_COLLECTIONS that are
// parsed by their owning package rather than by Load.
type Settings struct {
	v *viper.Viper
}

// NewSettings returns a Settings backed by v. Names passed to Get are full
// environment-style keys (for example "REDLIB_COLLECTIONS"); the same value
// may also be supplied in the config file under its lowercased key.
func NewSettings(v *viper.Viper) *Settings {
	configure(v)
	return &Settings{v: v}
}

// Get returns the value of the named setting and whether it was set. An
// environment variable set to the empty string counts as unset, matching
// how Load treats empty variables.
func (s *Settings) Get(name string) (string, bool) {
	// BindEnv with an explicit env name bypasses the prefix, so the
	// setting name is used verbatim.
	key := strings.ToLower(name)
	_ = s.v.BindEnv(key, name)
	if !s.v.IsSet(key) {
		return "", false
	}
	return s.v.GetString(key), true
}
