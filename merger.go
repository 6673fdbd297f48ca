package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	pdfapi "github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// ErrNoInput is returned when a merge is requested with zero files.
var ErrNoInput = errors.New("no input files to merge")

// MalformedFileError reports an input that pdfcpu could not parse as a PDF.
// The whole merge aborts; there is no partial output.
type MalformedFileError struct {
	Name string
	Err  error
}

func (e *MalformedFileError) Error() string {
	return fmt.Sprintf("malformed PDF %q: %v", e.Name, e.Err)
}

func (e *MalformedFileError) Unwrap() error { return e.Err }

// mergeOrdered concatenates the page sequences of items, in the given order,
// into a single PDF held in memory. Everything stays resident: large batches
// cost memory proportional to their total size, the caller caps request
// sizes for that reason.
func mergeOrdered(items []UploadedItem) ([]byte, error) {
	if len(items) == 0 {
		return nil, ErrNoInput
	}

	conf := model.NewDefaultConfiguration()

	// Validate each input up front so the error can name the bad file;
	// MergeRaw alone would fail without saying which one.
	rs := make([]io.ReadSeeker, len(items))
	for i, it := range items {
		r := bytes.NewReader(it.Data)
		if err := pdfapi.Validate(r, conf); err != nil {
			return nil, &MalformedFileError{Name: it.Name, Err: err}
		}
		if _, err := r.Seek(0, io.SeekStart); err != nil {
			return nil, err
		}
		rs[i] = r
	}

	var out bytes.Buffer
	if err := pdfapi.MergeRaw(rs, &out, false, conf); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// bindUploads is the full pipeline: resolve the order, then merge.
func bindUploads(items []UploadedItem) ([]byte, error) {
	return mergeOrdered(sortUploads(items))
}
