package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	envPrefix  = "TSSCAFFOLD"
	configName = ".tsscaffold"
	configType = "yaml"
)

// Config keys. Each is settable as TSSCAFFOLD_<KEY> or in the config file;
// the ones with a matching init flag are overridden by it.
const (
	keyScope       = "scope"
	keyAuthor      = "author"
	keyDescription = "description"
	keyTests       = "tests"
	keyLayout      = "layout"
	keyNpm         = "npm"
	keyTsc         = "tsc"
)

// loadConfig layers flags over env over the config file over defaults.
// A missing default config file is fine, a missing --config file is not.
func loadConfig(cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	v.SetDefault(keyTests, true)
	v.SetDefault(keyLayout, "single")
	v.SetDefault(keyNpm, "npm")
	v.SetDefault(keyTsc, "tsc")

	configFile, _ := cmd.Flags().GetString("config")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.SetConfigName(configName)
		v.SetConfigType(configType)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	for _, key := range []string{keyScope, keyAuthor, keyDescription, keyTests, keyLayout} {
		flag := cmd.Flags().Lookup(key)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return nil, fmt.Errorf("failed to bind --%s: %w", key, err)
		}
	}

	return v, nil
}
