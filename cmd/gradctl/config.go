package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config is gradctl's layered configuration (spec SPEC_FULL.md §10.3):
// cobra flags override environment variables, which override the
// optional YAML config file, which falls back to these zero values.
type Config struct {
	CatalogPath    string
	DegreesPath    string
	ActiveDegree   string
	SemanticScorer bool
	OpenAIKey      string
}

// bindConfigFlags registers gradctl's persistent flags on root and
// binds each one into viper under the same name, so flag > env > file
// precedence (viper's default) applies uniformly.
func bindConfigFlags(root *cobra.Command) {
	flags := root.PersistentFlags()
	flags.String("catalog", "", "path to the course catalog JSON file (spec §6.2)")
	flags.String("degrees", "", "path to the degree requirements JSON file (spec §6.3)")
	flags.String("active-degree", "", "name of the degree to evaluate fulfillment/recommendation against")
	flags.Bool("semantic", false, "enable the optional OpenAI-embedding recommendation scorer (spec §6.5)")
	flags.String("openai-key", "", "OpenAI API key for the semantic scorer")

	for _, name := range []string{"catalog", "degrees", "active-degree", "semantic", "openai-key"} {
		_ = viper.BindPFlag(name, flags.Lookup(name))
	}
}

// initViper wires viper's config-file and environment-variable layers.
// A missing config file is not an error — every setting also has a flag
// and an env var, per spec SPEC_FULL.md §10.3's "flags > env > YAML
// file" ordering.
func initViper(cfgFile string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("gradctl")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.config/gradctl")
	}

	viper.SetEnvPrefix("GRADCTL")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
	}
	return nil
}

func loadConfig() *Config {
	return &Config{
		CatalogPath:    viper.GetString("catalog"),
		DegreesPath:    viper.GetString("degrees"),
		ActiveDegree:   viper.GetString("active-degree"),
		SemanticScorer: viper.GetBool("semantic"),
		OpenAIKey:      viper.GetString("openai-key"),
	}
}
