// Package dataset writes generated samples as JSON Lines and their label matrices in gonum binary form.
package dataset

import (
	"bufio"
	"encoding/json"
	"io"
	"os"

	"address-datagen/internal/models"

	"github.com/cockroachdb/errors"
)

// Writer encodes one sample per line. It buffers output; call Flush when done.
type Writer struct {
	buf *bufio.Writer
	enc *json.Encoder
	n   int
}

// NewWriter returns a Writer on w.
func NewWriter(w io.Writer) *Writer {
	buf := bufio.NewWriter(w)
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	return &Writer{buf: buf, enc: enc}
}

// Write appends samples to the output.
func (w *Writer) Write(samples ...models.Sample) error {
	for _, s := range samples {
		if err := w.enc.Encode(s); err != nil {
			return errors.Wrapf(err, "dataset: failed to encode sample %d", s.Index)
		}
		w.n++
	}
	return nil
}

// Count returns the number of samples written so far.
func (w *Writer) Count() int {
	return w.n
}

// Flush writes buffered samples to the underlying writer.
func (w *Writer) Flush() error {
	if err := w.buf.Flush(); err != nil {
		return errors.Wrap(err, "dataset: failed to flush")
	}
	return nil
}

// WriteFile writes samples to path, replacing any existing file.
func WriteFile(path string, samples []models.Sample) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "dataset: failed to create %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "dataset: failed to close %s", path)
		}
	}()

	w := NewWriter(f)
	if err := w.Write(samples...); err != nil {
		return err
	}
	return w.Flush()
}

// Read decodes every sample from r.
func Read(r io.Reader) ([]models.Sample, error) {
	dec := json.NewDecoder(r)
	var samples []models.Sample
	for {
		var s models.Sample
		if err := dec.Decode(&s); err != nil {
			if errors.Is(err, io.EOF) {
				return samples, nil
			}
			return nil, errors.Wrapf(err, "dataset: failed to decode line %d", len(samples)+1)
		}
		samples = append(samples, s)
	}
}
