package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

type (
	Config struct {
		Display
	}

	Display struct {
		Locale         string // BCP 47 tag used for localized display strings, e.g. "en", "ru"
		FallbackLocale string // Used when Locale is not supported
	}
)

// localeSetting reads a locale key, falling back to def when the value is blank
func localeSetting(v *viper.Viper, key, def string) string {
	value := strings.TrimSpace(v.GetString(key))
	if value == "" {
		log.Printf("WARNING: %s is blank, using '%s'", key, def)
		return def
	}
	return value
}

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("display_locale", DefaultLocale)
	v.SetDefault("display_fallback_locale", DefaultLocale)

	return &Config{
		Display: Display{
			Locale:         localeSetting(v, "DISPLAY_LOCALE", DefaultLocale),
			FallbackLocale: localeSetting(v, "DISPLAY_FALLBACK_LOCALE", DefaultLocale),
		},
	}
}
