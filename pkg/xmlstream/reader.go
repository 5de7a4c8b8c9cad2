package xmlstream

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
)

// Reader is a forward-only cursor over the significant tokens of an XML
// document. It is not safe for concurrent use.
type Reader struct {
	dec        *xml.Decoder
	depth      int
	rootSeen   bool
	charsetErr error
	err        error // sticky; once set every call returns it
}

// NewReader creates a Reader on top of r. The reader is consumed lazily, one
// token at a time; nothing is buffered beyond what encoding/xml needs.
func NewReader(r io.Reader) *Reader {
	dec := xml.NewDecoder(r)
	dec.Strict = true

	rd := &Reader{dec: dec}
	// encoding/xml flattens the charset error into a string, keep the original.
	dec.CharsetReader = func(label string, input io.Reader) (io.Reader, error) {
		out, err := CharsetReader(label, input)
		if err != nil {
			rd.charsetErr = err
		}
		return out, err
	}
	return rd
}

// Depth returns the number of elements currently open.
func (r *Reader) Depth() int {
	return r.depth
}

// Next returns the next significant token: xml.StartElement, xml.EndElement
// or non-blank xml.CharData. Returned tokens are copies and stay valid after
// subsequent calls. io.EOF is returned once the document ended cleanly.
func (r *Reader) Next() (xml.Token, error) {
	if r.err != nil {
		return nil, r.err
	}

	for {
		tok, err := r.dec.Token()
		if err != nil {
			return nil, r.fail(err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if r.depth == 0 && r.rootSeen {
				return nil, r.fail(fmt.Errorf("%w: element <%s> after root element", ErrMalformed, t.Name.Local))
			}
			r.rootSeen = true
			r.depth++
			return t.Copy(), nil
		case xml.EndElement:
			r.depth--
			return t, nil
		case xml.CharData:
			if len(bytes.TrimSpace(t)) == 0 {
				continue
			}
			if r.depth == 0 {
				return nil, r.fail(fmt.Errorf("%w: text outside root element", ErrMalformed))
			}
			return t.Copy(), nil
		default:
			// Comments, processing instructions and directives carry no content.
			continue
		}
	}
}

// Root advances to the document's root element and returns a subtree over its
// content.
func (r *Reader) Root() (*Subtree, error) {
	if r.rootSeen {
		return nil, errors.New("xmlstream: root element already consumed")
	}
	tok, err := r.Next()
	if err != nil {
		return nil, err
	}
	start, ok := tok.(xml.StartElement)
	if !ok {
		// Next never yields char data or end tags at depth zero.
		return nil, r.fail(fmt.Errorf("%w: unexpected %T before root element", ErrMalformed, tok))
	}
	return r.Subtree(start), nil
}

// End verifies that nothing but ignorable content follows the root element.
func (r *Reader) End() error {
	tok, err := r.Next()
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return err
	}
	return r.fail(fmt.Errorf("%w: unexpected %T after root element", ErrMalformed, tok))
}

// Subtree returns a view over the content of start, which must be the start
// element most recently returned by the reader.
func (r *Reader) Subtree(start xml.StartElement) *Subtree {
	return &Subtree{r: r, start: start, depth: r.depth}
}

func (r *Reader) fail(err error) error {
	var syntaxErr *xml.SyntaxError
	switch {
	case errors.Is(err, io.EOF):
		if !r.rootSeen {
			err = fmt.Errorf("%w: missing root element", ErrMalformed)
		} else if r.depth > 0 {
			err = fmt.Errorf("%w: unexpected end of document", ErrMalformed)
		} else {
			err = io.EOF
		}
	case errors.Is(err, ErrMalformed):
	case r.charsetErr != nil:
		err = fmt.Errorf("%w: %w", ErrMalformed, r.charsetErr)
	case errors.As(err, &syntaxErr):
		err = fmt.Errorf("%w: %w", ErrMalformed, err)
	default:
		err = fmt.Errorf("xmlstream: read: %w", err)
	}
	r.err = err
	return err
}
