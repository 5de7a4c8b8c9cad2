package xmlstream

import (
	"errors"
	"fmt"
	"io"

	"golang.org/x/text/encoding/ianaindex"
)

// CharsetReader converts input declared in the given encoding into UTF-8.
// It is installed as the decoder's CharsetReader, which encoding/xml only
// consults for encodings other than UTF-8.
func CharsetReader(label string, input io.Reader) (io.Reader, error) {
	enc, err := ianaindex.IANA.Encoding(label)
	if err != nil || enc == nil {
		return nil, errors.Join(ErrUnsupportedCharset, fmt.Errorf("encoding %q", label))
	}
	return enc.NewDecoder().Reader(input), nil
}
