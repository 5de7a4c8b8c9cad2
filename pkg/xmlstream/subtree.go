package xmlstream

import (
	"encoding/xml"
	"errors"
	"io"
	"strings"
)

// Subtree exposes only the content of a single element. The element's end tag
// is consumed but never returned; Next reports io.EOF from then on.
type Subtree struct {
	r     *Reader
	start xml.StartElement
	depth int // reader depth while inside the element
	done  bool
}

// Start returns the element this subtree covers.
func (s *Subtree) Start() xml.StartElement {
	return s.start
}

// Next returns the next significant token inside the element.
func (s *Subtree) Next() (xml.Token, error) {
	if s.done || s.r.depth < s.depth {
		s.done = true
		return nil, io.EOF
	}

	tok, err := s.r.Next()
	if err != nil {
		return nil, err
	}
	if _, ok := tok.(xml.EndElement); ok && s.r.depth < s.depth {
		s.done = true
		return nil, io.EOF
	}
	return tok, nil
}

// Child returns a subtree for a start element just returned by Next.
// The parent subtree must not be read until the child is done.
func (s *Subtree) Child(start xml.StartElement) *Subtree {
	return s.r.Subtree(start)
}

// Skip consumes the rest of the element, including its end tag.
func (s *Subtree) Skip() error {
	for {
		_, err := s.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// Text consumes the element and returns its direct character data, CDATA
// sections included. Nested elements are skipped and contribute no text.
func (s *Subtree) Text() (string, error) {
	var b strings.Builder
	for {
		tok, err := s.Next()
		if errors.Is(err, io.EOF) {
			return b.String(), nil
		}
		if err != nil {
			return "", err
		}

		switch t := tok.(type) {
		case xml.CharData:
			b.Write(t)
		case xml.StartElement:
			if err := s.Child(t).Skip(); err != nil {
				return "", err
			}
		}
	}
}
