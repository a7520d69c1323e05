package extract

import "errors"

var (
	// ErrNotDocx indicates the input is not a readable DOCX archive:
	// not a zip, missing word/document.xml, or undecodable XML.
	ErrNotDocx = errors.New("not a valid docx file")

	// ErrPDFRead indicates the input is not a readable PDF.
	ErrPDFRead = errors.New("cannot read pdf")
)
