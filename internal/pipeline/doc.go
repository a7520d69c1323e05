// Package pipeline turns format-specific sources into the shared block
// model.
//
// One parser exists per input format:
//   - MarkdownParser: explicit line state machine over a Markdown subset
//   - TextParser: blank-line separated paragraphs, no inline styling
//   - DocxParser: maps the extracted OOXML body onto blocks
//   - PDFParser: reflows the extracted PDF text layer into paragraphs
//
// Parsers build blocks; they never escape text. Run text stays raw
// source text and the latex package escapes it exactly once at
// emission. Format dispatch happens at the converter boundary, not
// here: the parsers are siblings and never call each other.
package pipeline
