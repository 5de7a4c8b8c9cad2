// Package xmlstream provides a forward-only, pull-based cursor over XML
// documents and subtree-scoped views on top of it.
//
// Reader wraps encoding/xml's tokenizer and filters out everything that carries
// no content for record extraction: comments, processing instructions,
// directives and whitespace-only character data. It tracks the absolute element
// depth, rejects documents without a single root element, and reports every
// well-formedness violation as ErrMalformed.
//
// Subtree limits reading to the content of one element. Its Next method ends
// with io.EOF once the matching end tag was consumed, and Skip drains whatever
// is left, so after a subtree is done the cursor sits exactly at the next
// sibling (or at the parent's end tag) no matter how the element was nested
// internally. Subtrees compose: a child subtree opened inside another one reads
// from the same Reader and hands control back to its parent when it ends.
//
// # Usage
//
//	r := xmlstream.NewReader(f)
//	root, err := r.Root()
//	if err != nil {
//		return err
//	}
//	for {
//		tok, err := root.Next()
//		if errors.Is(err, io.EOF) {
//			break
//		}
//		if err != nil {
//			return err
//		}
//		if start, ok := tok.(xml.StartElement); ok {
//			text, err := root.Child(start).Text()
//			// ...
//		}
//	}
//	return r.End()
//
// Documents declaring a non UTF-8 encoding are decoded through the IANA
// charset registry of golang.org/x/text.
package xmlstream
