// Package store holds client-side configuration and the on-disk session
// cache for the category directory.
package store

import (
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config exposes the client settings.
type Config interface {
	BaseURL() string
	PageSize() int
	CachePath() string
	UseGeo() bool
	GeoURL() string
}

// LoadConfig reads the .ledger config file and LEDGER_* environment
// overrides.
func LoadConfig() (Config, error) {
	viper.SetDefault("api", "http://localhost:8080/api")
	viper.SetDefault("size", 10)
	viper.SetDefault("cache", "~/.ledger.cache")
	viper.SetDefault("geo", false)
	viper.SetDefault("geourl", "")
	viper.SetConfigName(".ledger") // .yaml is implicit
	viper.SetEnvPrefix("LEDGER")
	viper.AutomaticEnv()

	if override := os.Getenv("LEDGER_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	if home, err := homedir.Dir(); err == nil {
		viper.AddConfigPath(home)
	}
	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	return &fileConfig{
		api:    viper.GetString("api"),
		size:   viper.GetInt("size"),
		cache:  viper.GetString("cache"),
		geo:    viper.GetBool("geo"),
		geoURL: viper.GetString("geourl"),
	}, nil
}

type fileConfig struct {
	api    string
	size   int
	cache  string
	geo    bool
	geoURL string
}

func (f *fileConfig) BaseURL() string { return f.api }

func (f *fileConfig) PageSize() int {
	if f.size <= 0 {
		return 10
	}
	return f.size
}

func (f *fileConfig) CachePath() string {
	expanded, err := homedir.Expand(f.cache)
	if err != nil {
		return f.cache
	}
	return expanded
}

func (f *fileConfig) UseGeo() bool { return f.geo }

func (f *fileConfig) GeoURL() string { return f.geoURL }
