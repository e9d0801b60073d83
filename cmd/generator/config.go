package main

import (
	"math"

	"address-datagen/internal/config"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func (c *cli) configCmd() *cobra.Command {
	var schema bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the resolved configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var out any = c.cfg
			if schema {
				out = schemaDoc()
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(out); err != nil {
				return errors.Wrap(err, "failed to encode config")
			}
			return enc.Close()
		},
	}
	cmd.Flags().BoolVar(&schema, "schema", false, "print the generation parameter schema instead")
	return cmd
}

type paramDoc struct {
	Key         string   `yaml:"key"`
	Kind        string   `yaml:"kind"`
	Default     any      `yaml:"default"`
	Min         *float64 `yaml:"min,omitempty"`
	Max         *float64 `yaml:"max,omitempty"`
	Description string   `yaml:"description"`
}

func schemaDoc() []paramDoc {
	params := config.Schema()
	out := make([]paramDoc, 0, len(params))
	for _, p := range params {
		doc := paramDoc{Key: p.Key, Kind: string(p.Kind), Default: p.Default, Description: p.Description}
		if p.Kind != config.KindString {
			lo, hi := p.Min, p.Max
			doc.Min = &lo
			if !math.IsInf(hi, 1) {
				doc.Max = &hi
			}
		}
		out = append(out, doc)
	}
	return out
}
