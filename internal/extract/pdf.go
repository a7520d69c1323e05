package extract

import (
	"bytes"
	"fmt"
	"strings"
	"unicode"

	"github.com/ledongthuc/pdf"
	"golang.org/x/text/unicode/norm"
)

// ReadPDFText extracts the text layer of a PDF, one entry per page in
// order, normalized to NFC with control characters stripped. Pages
// without decodable text are skipped, so a scanned PDF legitimately
// yields no pages. The pdf package panics on some malformed inputs;
// the recover turns those into ErrPDFRead.
func ReadPDFText(data []byte) (pages []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			pages = nil
			err = fmt.Errorf("%w: %v", ErrPDFRead, r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFRead, err)
	}

	fonts := make(map[string]*pdf.Font)
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		for _, name := range page.Fonts() {
			if _, ok := fonts[name]; !ok {
				font := page.Font(name)
				fonts[name] = &font
			}
		}
		text, err := page.GetPlainText(fonts)
		if err != nil {
			continue
		}
		if cleaned := cleanPageText(text); cleaned != "" {
			pages = append(pages, cleaned)
		}
	}
	return pages, nil
}

// cleanPageText normalizes extracted text to NFC and strips control
// characters. Newlines stay (they are reflow boundaries), tabs become
// spaces so adjacent words do not fuse.
func cleanPageText(text string) string {
	text = norm.NFC.String(text)
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\n':
			return r
		case r == '\t':
			return ' '
		case unicode.IsControl(r):
			return -1
		}
		return r
	}, text)
}
