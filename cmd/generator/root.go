package main

import (
	"strings"

	"address-datagen/internal/app"
	"address-datagen/internal/config"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

// cli holds the state shared by every subcommand.
type cli struct {
	configPath string
	sets       []string
	cfg        config.Config
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	rootCmd := &cobra.Command{
		Use:   "address-datagen",
		Short: "Generate labelled synthetic addresses for sequence-labelling models",
		Long: `address-datagen renders random UK-style addresses from a postal-code catalog
and a street-name catalog. Every character of every address carries one field label.

Examples:
  address-datagen generate --seed 7 --output train.jsonl
  address-datagen generate --set typo_prob=0 --set flat_prob=0.5
  address-datagen config
  address-datagen encode "Flat 1C, Abbey Road"`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			overrides, err := parseOverrides(c.sets)
			if err != nil {
				return err
			}
			cfg, err := config.Load(config.Options{Path: c.configPath, Overrides: overrides})
			if err != nil {
				return err
			}
			c.cfg = cfg
			return app.SetupLogging(cfg.LogLevel, true)
		},
	}

	rootCmd.PersistentFlags().StringVar(
		&c.configPath, "config", "configs", "config directory or file",
	)
	rootCmd.PersistentFlags().StringArrayVar(
		&c.sets, "set", nil, "override a config key, e.g. --set typo_prob=0.05 (repeatable)",
	)

	rootCmd.AddCommand(c.generateCmd())
	rootCmd.AddCommand(c.configCmd())
	rootCmd.AddCommand(encodeCmd())
	return rootCmd
}

// parseOverrides turns key=value pairs into a map. Later pairs win.
func parseOverrides(sets []string) (map[string]string, error) {
	overrides := make(map[string]string, len(sets))
	for _, s := range sets {
		key, value, ok := strings.Cut(s, "=")
		if !ok || strings.TrimSpace(key) == "" {
			return nil, errors.Newf("invalid --set %q, want key=value", s)
		}
		overrides[strings.TrimSpace(key)] = value
	}
	return overrides, nil
}
