package catalog

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"iter"
	"slices"

	"github.com/dmitrymomot/bookcatalog/pkg/xmlstream"
)

// DefaultRecordElement is the local name of record elements.
const DefaultRecordElement = "book"

// Extractor yields the records of a catalog document lazily, in document
// order. It cannot be restarted and is not safe for concurrent use.
type Extractor struct {
	r          *xmlstream.Reader
	root       *xmlstream.Subtree
	recordName string
	err        error // sticky, io.EOF once the document is exhausted
}

// NewExtractor creates an Extractor reading from src. An empty recordName
// selects DefaultRecordElement.
func NewExtractor(src io.Reader, recordName string) *Extractor {
	if recordName == "" {
		recordName = DefaultRecordElement
	}
	return &Extractor{
		r:          xmlstream.NewReader(src),
		recordName: recordName,
	}
}

// Next returns the next record. It returns io.EOF after the last record once
// the rest of the document was verified to be well formed, and an error
// wrapping ErrMalformedInput on bad markup. Errors are sticky.
func (e *Extractor) Next() (RawRecord, error) {
	if e.err != nil {
		return RawRecord{}, e.err
	}

	if e.root == nil {
		root, err := e.r.Root()
		if err != nil {
			return RawRecord{}, e.fail(err)
		}
		e.root = root
	}

	for {
		tok, err := e.root.Next()
		if errors.Is(err, io.EOF) {
			if err := e.r.End(); err != nil {
				return RawRecord{}, e.fail(err)
			}
			e.err = io.EOF
			return RawRecord{}, io.EOF
		}
		if err != nil {
			return RawRecord{}, e.fail(err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		sub := e.root.Child(start)
		if start.Name.Local != e.recordName {
			if err := sub.Skip(); err != nil {
				return RawRecord{}, e.fail(err)
			}
			continue
		}

		rec, err := readRecord(sub)
		if err != nil {
			return RawRecord{}, e.fail(err)
		}
		return rec, nil
	}
}

// All returns an iterator over the remaining records. Iteration stops after
// the first error, which is yielded with a zero RawRecord.
func (e *Extractor) All() iter.Seq2[RawRecord, error] {
	return func(yield func(RawRecord, error) bool) {
		for {
			rec, err := e.Next()
			if errors.Is(err, io.EOF) {
				return
			}
			if !yield(rec, err) || err != nil {
				return
			}
		}
	}
}

func (e *Extractor) fail(err error) error {
	if errors.Is(err, xmlstream.ErrMalformed) {
		err = fmt.Errorf("%w: %w", ErrMalformedInput, err)
	} else {
		err = fmt.Errorf("catalog: extract: %w", err)
	}
	e.err = err
	return err
}

func readRecord(sub *xmlstream.Subtree) (RawRecord, error) {
	var rec RawRecord
	for {
		tok, err := sub.Next()
		if errors.Is(err, io.EOF) {
			return rec, nil
		}
		if err != nil {
			return RawRecord{}, err
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		child := sub.Child(start)
		field := Field(start.Name.Local)
		if !slices.Contains(Fields, field) {
			if err := child.Skip(); err != nil {
				return RawRecord{}, err
			}
			continue
		}

		text, err := child.Text()
		if err != nil {
			return RawRecord{}, err
		}
		rec.Set(field, Text(text))
	}
}

