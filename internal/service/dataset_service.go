package service

import (
	"context"
	"math/rand/v2"
	"sync/atomic"

	"address-datagen/internal/label"
	"address-datagen/internal/models"
	"address-datagen/internal/vocab"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// MaxPreview is the largest number of samples Preview returns.
const MaxPreview = 1000

const progressEvery = 10000

// ErrInvalidCount is returned when a preview size is out of range.
var ErrInvalidCount = errors.Newf("sample count must be between 1 and %d", MaxPreview)

// AddressGenerator renders one labelled address for a postal record.
type AddressGenerator interface {
	Address(rng *rand.Rand, row models.PostalRecord) (label.Fragment, error)
}

// RowSource provides the postal records addresses are generated from.
type RowSource interface {
	Rows() []models.PostalRecord
	SampleRow(rng *rand.Rand) (int, models.PostalRecord)
}

// DatasetService turns catalog rows into training samples.
type DatasetService struct {
	gen  AddressGenerator
	rows RowSource
}

// NewDatasetService creates a new dataset service
func NewDatasetService(gen AddressGenerator, rows RowSource) *DatasetService {
	return &DatasetService{gen: gen, rows: rows}
}

// Generate produces one sample per catalog row, in catalog order.
//
// Row i is generated from its own source seeded with (seed, i), so the output depends only on
// seed and the catalog, not on the number of workers. The first error cancels the remaining
// work.
func (s *DatasetService) Generate(ctx context.Context, seed uint64, workers int) ([]models.Sample, error) {
	rows := s.rows.Rows()
	samples := make([]models.Sample, len(rows))
	if len(rows) == 0 {
		return samples, nil
	}
	workers = max(1, min(workers, len(rows)))
	chunk := (len(rows) + workers - 1) / workers

	log.Info().Int("rows", len(rows)).Int("workers", workers).Uint64("seed", seed).Msg("generating samples")

	var done atomic.Int64
	g, ctx := errgroup.WithContext(ctx)
	for start := 0; start < len(rows); start += chunk {
		end := min(start+chunk, len(rows))
		g.Go(func() error {
			for i := start; i < end; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				sample, err := s.sample(rand.New(rand.NewPCG(seed, uint64(i))), i, rows[i])
				if err != nil {
					return errors.Wrapf(err, "row %d", i)
				}
				samples[i] = sample
				if n := done.Add(1); n%progressEvery == 0 {
					log.Info().Int64("done", n).Int("total", len(rows)).Msg("generation progress")
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "service: generation failed")
	}
	return samples, nil
}

// Preview generates n samples from uniformly drawn rows with a single source seeded by seed.
func (s *DatasetService) Preview(ctx context.Context, n int, seed uint64) ([]models.Sample, error) {
	if n < 1 || n > MaxPreview {
		return nil, errors.Wrapf(ErrInvalidCount, "service: got %d", n)
	}

	rng := rand.New(rand.NewPCG(seed, 0))
	samples := make([]models.Sample, 0, n)
	for range n {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(err, "service: preview cancelled")
		}
		idx, row := s.rows.SampleRow(rng)
		sample, err := s.sample(rng, idx, row)
		if err != nil {
			return nil, errors.Wrap(err, "service: failed to generate preview")
		}
		samples = append(samples, sample)
	}
	return samples, nil
}

func (s *DatasetService) sample(rng *rand.Rand, idx int, row models.PostalRecord) (models.Sample, error) {
	frag, err := s.gen.Address(rng, row)
	if err != nil {
		return models.Sample{}, err
	}
	return ToSample(idx, frag), nil
}

// ToSample compresses a fragment into label indices and vocabulary codes.
func ToSample(idx int, frag label.Fragment) models.Sample {
	_, codes := vocab.Encode(frag.Text)
	return models.Sample{
		Index:  idx,
		Text:   frag.Text,
		Labels: frag.Labels.Indices(),
		Codes:  codes,
	}
}

// Summary describes a generated dataset.
type Summary struct {
	Samples    int            `json:"samples"`
	Characters int            `json:"characters"`
	MeanLength float64        `json:"mean_length"`
	LabelCount map[string]int `json:"label_count"`
}

// Summarize counts characters per label over samples.
func Summarize(samples []models.Sample) Summary {
	counts := make([]float64, label.NumLabels)
	lengths := make([]float64, len(samples))
	for i, s := range samples {
		for _, idx := range s.Labels {
			if idx >= 0 && idx < label.NumLabels {
				counts[idx]++
			}
		}
		lengths[i] = float64(len(s.Labels))
	}

	summary := Summary{
		Samples:    len(samples),
		Characters: int(floats.Sum(counts)),
		LabelCount: make(map[string]int, label.NumLabels),
	}
	if len(samples) > 0 {
		summary.MeanLength = stat.Mean(lengths, nil)
	}
	for i, c := range counts {
		summary.LabelCount[label.Field(i).String()] = int(c)
	}
	return summary
}
