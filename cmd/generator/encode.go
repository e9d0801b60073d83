package main

import (
	"address-datagen/internal/vocab"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// encoded is the text as the model sees it: lower-cased, unknown characters replaced.
type encoded struct {
	Text       string  `yaml:"text"`
	Normalized string  `yaml:"normalized"`
	Length     int     `yaml:"length"`
	Codes      []int64 `yaml:"codes,flow"`
}

func encodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode <text>",
		Short: "Print the vocabulary codes of a text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, codes := vocab.Encode(args[0])
			out, err := yaml.Marshal(encoded{Text: args[0], Normalized: vocab.Decode(codes), Length: n, Codes: codes})
			if err != nil {
				return errors.Wrap(err, "failed to encode codes")
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}
