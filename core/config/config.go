package config

import (
	"reflect"
	"strings"

	"league-sync/core/apa"
	"league-sync/core/database"
	"league-sync/core/logger"
	"league-sync/core/server"
	"league-sync/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	// Server holds configuration for the read-only HTTP API.
	Server server.Config `mapstructure:"server"`
	// Storage holds configuration for the snapshot bucket.
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the league store.
	Database database.Config `mapstructure:"database"`
	// APA holds configuration for the league GraphQL API.
	APA apa.Config `mapstructure:"apa"`
}

// Binding ties a command-line flag to a configuration key. A flag the user
// set wins over the environment and the default.
type Binding struct {
	Key  string
	Flag *pflag.Flag
}

// LoadConfig loads configuration from the .env file in path, environment
// variables and the given flag bindings, in increasing precedence.
func LoadConfig(path string, bindings ...Binding) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Missing .env is normal outside development.
	_ = godotenv.Overload(envPath)

	v := viper.New()

	bindValues(v, Config{}, "")

	// DATABASE_HOST -> database.host
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for _, b := range bindings {
		if b.Flag == nil {
			continue
		}
		if err := v.BindPFlag(b.Key, b.Flag); err != nil {
			return nil, err
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues walks the struct and registers each 'mapstructure' key with its
// 'default' tag value so AutomaticEnv can resolve it.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		v.SetDefault(key, field.Tag.Get("default"))
	}
}
