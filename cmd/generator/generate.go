package main

import (
	"os"

	"address-datagen/internal/app"
	"address-datagen/internal/config"
	"address-datagen/internal/dataset"
	"address-datagen/internal/repository"
	"address-datagen/internal/service"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func (c *cli) generateCmd() *cobra.Command {
	var (
		seed    uint64
		workers int
		output  string
		matrix  string
		store   bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one labelled address per catalog row",
		Long: `Generate renders one address for every postal record in the catalog and writes the
samples as JSON Lines. The same seed and catalog always give the same output,
whatever the number of workers.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := c.cfg
			if !cmd.Flags().Changed("seed") {
				seed = cfg.Seed
			}
			if !cmd.Flags().Changed("workers") {
				workers = cfg.Workers
			}
			if !cmd.Flags().Changed("output") {
				output = cfg.Output.File
			}
			if !cmd.Flags().Changed("matrix-output") {
				matrix = cfg.Output.MatrixFile
			}

			runID := uuid.New()
			logger := log.With().Str("run_id", runID.String()).Logger()

			var repo *repository.Repository
			if store || cfg.Catalog.Source == config.SourcePostgres {
				pool, err := repository.Connect(ctx, cfg.DBSource, 10)
				if err != nil {
					return err
				}
				defer pool.Close()
				repo = repository.NewRepository(pool)
			}

			var catalogStore app.CatalogStore
			if repo != nil {
				catalogStore = repo
			}
			cat, err := app.LoadCatalog(ctx, cfg.Catalog, catalogStore)
			if err != nil {
				return err
			}
			gen, err := app.NewGenerator(cfg.Generation, cat)
			if err != nil {
				return err
			}

			samples, err := service.NewDatasetService(gen, cat).Generate(ctx, seed, workers)
			if err != nil {
				return err
			}

			switch output {
			case "":
			case "-":
				w := dataset.NewWriter(os.Stdout)
				if err := w.Write(samples...); err != nil {
					return err
				}
				if err := w.Flush(); err != nil {
					return err
				}
				logger.Info().Int("samples", w.Count()).Msg("samples written to stdout")
			default:
				if err := dataset.WriteFile(output, samples); err != nil {
					return err
				}
				logger.Info().Str("file", output).Msg("samples written")
			}

			if matrix != "" {
				if err := dataset.WriteMatrixFile(matrix, samples); err != nil {
					return err
				}
				logger.Info().Str("file", matrix).Msg("label matrices written")
			}

			if store {
				if err := repo.CreateSchema(ctx); err != nil {
					return err
				}
				n, err := repo.SaveSamples(ctx, runID, samples)
				if err != nil {
					return err
				}
				logger.Info().Int64("rows", n).Msg("samples stored")
			}

			summary := service.Summarize(samples)
			logger.Info().
				Uint64("seed", seed).
				Int("samples", summary.Samples).
				Int("characters", summary.Characters).
				Float64("mean_length", summary.MeanLength).
				Interface("labels", summary.LabelCount).
				Msg("generation finished")
			return nil
		},
	}

	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed (default: config seed)")
	cmd.Flags().IntVar(&workers, "workers", 0, "parallel workers (default: config workers)")
	cmd.Flags().StringVarP(&output, "output", "o", "", `JSONL output file, "-" for stdout, "" to skip (default: config output.file)`)
	cmd.Flags().StringVar(&matrix, "matrix-output", "", `label matrix file in gonum binary form, "" to skip (default: config output.matrix_file)`)
	cmd.Flags().BoolVar(&store, "store", false, "also store the samples in PostgreSQL under a new run id")
	return cmd
}
