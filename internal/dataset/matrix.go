package dataset

import (
	"bufio"
	"io"
	"os"

	"address-datagen/internal/label"
	"address-datagen/internal/models"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/mat"
)

// MatrixWriter streams each sample's one-hot label matrix as a gonum binary
// Dense matrix: one characters×labels float64 matrix per sample, back to back.
type MatrixWriter struct {
	buf *bufio.Writer
	n   int
}

// NewMatrixWriter returns a MatrixWriter on w.
func NewMatrixWriter(w io.Writer) *MatrixWriter {
	return &MatrixWriter{buf: bufio.NewWriter(w)}
}

// Write appends the label matrices of samples to the output.
func (w *MatrixWriter) Write(samples ...models.Sample) error {
	for _, s := range samples {
		m, err := label.FromIndices(s.Labels)
		if err != nil {
			return errors.Wrapf(err, "dataset: sample %d", s.Index)
		}
		d := m.Dense()
		if d == nil {
			return errors.Newf("dataset: sample %d has no characters", s.Index)
		}
		if _, err := d.MarshalBinaryTo(w.buf); err != nil {
			return errors.Wrapf(err, "dataset: failed to write matrix %d", s.Index)
		}
		w.n++
	}
	return nil
}

// Count returns the number of matrices written so far.
func (w *MatrixWriter) Count() int {
	return w.n
}

// Flush writes buffered matrices to the underlying writer.
func (w *MatrixWriter) Flush() error {
	if err := w.buf.Flush(); err != nil {
		return errors.Wrap(err, "dataset: failed to flush matrices")
	}
	return nil
}

// WriteMatrixFile writes the label matrices of samples to path, replacing any existing file.
func WriteMatrixFile(path string, samples []models.Sample) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "dataset: failed to create %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "dataset: failed to close %s", path)
		}
	}()

	w := NewMatrixWriter(f)
	if err := w.Write(samples...); err != nil {
		return err
	}
	return w.Flush()
}

// ReadMatrices decodes every label matrix from r.
func ReadMatrices(r io.Reader) ([]*mat.Dense, error) {
	br := bufio.NewReader(r)
	var out []*mat.Dense
	for {
		var d mat.Dense
		n, err := d.UnmarshalBinaryFrom(br)
		if err != nil {
			if n == 0 && errors.Is(err, io.ErrUnexpectedEOF) {
				return out, nil
			}
			return nil, errors.Wrapf(err, "dataset: failed to decode matrix %d", len(out))
		}
		out = append(out, &d)
	}
}
