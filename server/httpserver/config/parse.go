package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"
)

// SetDefaults registers every key so env overrides are seen by Unmarshal.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("httpserver.port", d.HTTPServer.Port)
	v.SetDefault("httpserver.domain", d.HTTPServer.Domain)
	v.SetDefault("logLevel", d.LogLevel)
	v.SetDefault("nodeName", d.NodeName)
	v.SetDefault("view.apiBaseUrl", d.View.APIBaseURL)
}

// Get layers defaults, the yaml file f, TODOWEB_* env vars and whatever
// flags were bound on v. A missing f is only an error when required is set.
func Get(v *viper.Viper, f string, required bool) (*Configs, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if f != "" {
		_, err := os.Stat(f)
		switch {
		case err == nil:
			v.SetConfigFile(f)
			v.SetConfigType("yaml")
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("read config %s: %w", f, err)
			}
		case errors.Is(err, fs.ErrNotExist) && !required:
		default:
			return nil, fmt.Errorf("config %s: %w", f, err)
		}
	}

	config := &Configs{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Configs) Yaml() ([]byte, error) {
	return yaml.Marshal(c)
}
