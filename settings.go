package observe

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config interface {
	Get(string) interface{}
	GetBool(string) bool
	GetInt(string) int
	GetString(string) string
	GetStringSlice(string) []string
	GetDuration(string) time.Duration

	IsSet(string) bool
	Set(string, interface{})

	GetDefault(string, interface{}) interface{}
	GetBoolDefault(string, bool) bool
	GetIntDefault(string, int) int
	GetStringDefault(string, string) string
	GetStringSliceDefault(string, []string) []string
	GetDurationDefault(string, time.Duration) time.Duration

	GetConfig(string) (Config, bool)
}

// NewConfig wraps v, or a fresh viper instance when v is nil.
func NewConfig(v *viper.Viper) Config {
	if v == nil {
		v = viper.New()
	}
	return &viperWrapper{v}
}

// LoadConfig reads path (if not empty) and overlays OBSERVE_* environment
// variables, e.g. OBSERVE_LOG_LEVEL for log.level.
func LoadConfig(path string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("observe")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}
	return NewConfig(v), nil
}

type viperWrapper struct {
	*viper.Viper
}

func (w *viperWrapper) GetDefault(key string, v interface{}) interface{} {
	if w.IsSet(key) {
		return w.Get(key)
	}
	return v
}

func (w *viperWrapper) GetBoolDefault(key string, v bool) bool {
	if w.IsSet(key) {
		return w.GetBool(key)
	}
	return v
}

func (w *viperWrapper) GetIntDefault(key string, v int) int {
	if w.IsSet(key) {
		return w.GetInt(key)
	}
	return v
}

func (w *viperWrapper) GetStringDefault(key string, v string) string {
	if w.IsSet(key) {
		return w.GetString(key)
	}
	return v
}

func (w *viperWrapper) GetStringSliceDefault(key string, v []string) []string {
	if w.IsSet(key) {
		return w.GetStringSlice(key)
	}
	return v
}

func (w *viperWrapper) GetDurationDefault(key string, v time.Duration) time.Duration {
	if w.IsSet(key) {
		return w.GetDuration(key)
	}
	return v
}

// GetConfig returns the sub-tree under key. Values only present in the
// environment are not part of a sub-tree.
func (w *viperWrapper) GetConfig(key string) (Config, bool) {
	if w.IsSet(key) {
		if sub := w.Sub(key); sub != nil {
			return &viperWrapper{sub}, true
		}
	}
	return nil, false
}
