package trx

import (
	"bufio"
	"bytes"
	"encoding/xml"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/unicode"
)

var (
	utf8BOM    = []byte{0xEF, 0xBB, 0xBF}
	utf16LEBOM = []byte{0xFF, 0xFE}
	utf16BEBOM = []byte{0xFE, 0xFF}
)

// newDecoder returns an xml.Decoder reading r as UTF-8. A leading byte order mark selects
// UTF-8 or UTF-16, otherwise the encoding named by the XML declaration is used.
func newDecoder(r io.Reader) *xml.Decoder {
	reader := bufio.NewReader(r)
	prefix, _ := reader.Peek(len(utf8BOM))

	var input io.Reader = reader
	transcoded := false
	switch {
	case bytes.HasPrefix(prefix, utf8BOM):
		_, _ = reader.Discard(len(utf8BOM))
		transcoded = true
	case bytes.HasPrefix(prefix, utf16LEBOM):
		input = unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder().Reader(reader)
		transcoded = true
	case bytes.HasPrefix(prefix, utf16BEBOM):
		input = unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM).NewDecoder().Reader(reader)
		transcoded = true
	}

	decoder := xml.NewDecoder(input)
	decoder.CharsetReader = func(label string, input io.Reader) (io.Reader, error) {
		// the declaration still names the encoding the BOM already resolved
		if transcoded && isUnicodeLabel(label) {
			return input, nil
		}
		return charset.NewReaderLabel(label, input)
	}
	return decoder
}

func isUnicodeLabel(label string) bool {
	label = strings.ToLower(strings.TrimSpace(label))
	return strings.HasPrefix(label, "utf-") || label == "unicode"
}
