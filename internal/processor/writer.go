package processor

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"io"

	"github.com/e1four15f/AgeDatasetVisualization/internal/geo"
)

const (
	documentHeader = `{"type":"` + geo.TypeFeatureCollection + `","features":[` + "\n"
	documentFooter = "]}"
)

var errWriterClosed = errors.New("feature writer closed")

// FeatureWriter streams a FeatureCollection with one feature per line.
// The header is emitted on creation, the footer on Close.
type FeatureWriter struct {
	w     *bufio.Writer
	buf   bytes.Buffer
	enc   *json.Encoder
	count int
	done  bool
}

// NewFeatureWriter starts a FeatureCollection document on w.
func NewFeatureWriter(w io.Writer) *FeatureWriter {
	fw := &FeatureWriter{w: bufio.NewWriter(w)}
	fw.enc = json.NewEncoder(&fw.buf)
	fw.enc.SetEscapeHTML(false)

	// bufio keeps the first error, it surfaces on Write or Close
	_, _ = fw.w.WriteString(documentHeader)

	return fw
}

// Write appends a feature line. Features are separated by ",\n".
func (fw *FeatureWriter) Write(f geo.Feature) error {
	if fw.done {
		return errWriterClosed
	}

	fw.buf.Reset()
	if err := fw.enc.Encode(f); err != nil {
		return err
	}
	line := bytes.TrimSuffix(fw.buf.Bytes(), []byte{'\n'})

	if fw.count > 0 {
		if _, err := fw.w.WriteString(",\n"); err != nil {
			return err
		}
	}
	if _, err := fw.w.Write(line); err != nil {
		return err
	}

	fw.count++
	return nil
}

// Count returns the number of features written so far.
func (fw *FeatureWriter) Count() int {
	return fw.count
}

// Close terminates the document and flushes buffered output.
// It does not close the underlying writer.
func (fw *FeatureWriter) Close() error {
	if fw.done {
		return nil
	}
	fw.done = true

	if fw.count > 0 {
		if err := fw.w.WriteByte('\n'); err != nil {
			return err
		}
	}
	if _, err := fw.w.WriteString(documentFooter); err != nil {
		return err
	}

	return fw.w.Flush()
}
