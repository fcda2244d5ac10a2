// =============================================================================
// Election Results Verifier - CSV Parser Module
// =============================================================================
//
// This module reads results CSV files for the verifier. It produces the
// declared header and then one row at a time, so files of any size are
// verified without loading them into memory.
//
// FEATURES:
//   - Raw header names: only a UTF-8 byte order mark is removed, so padded
//     or empty column names reach the schema check as declared
//   - Raw field values: cells are never trimmed or rewritten, because the
//     rules lint the values exactly as written
//   - Short rows are padded with empty values; extra cells are ignored
//   - Source line numbers on every row for error reporting
//
// =============================================================================

package csvparser

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ginjaninja78/election-results-verifier/internal/types"
)

// byteOrderMark is stripped from the first header cell when present.
const byteOrderMark = "\uFEFF"

// =============================================================================
// STREAMING PARSER
// =============================================================================

// StreamingParser provides memory-efficient parsing of a results CSV file.
//
// USAGE:
//   parser, err := csvparser.Open(filePath)
//   if err != nil {
//       return err
//   }
//   defer parser.Close()
//
//   for parser.Next() {
//       row := parser.Row()
//       // Process the row...
//   }
//
//   if err := parser.Err(); err != nil {
//       return err
//   }
type StreamingParser struct {
	closer     io.Closer
	reader     *csv.Reader
	headers    []string
	currentRow types.Row
	rowNumber  int
	err        error
}

// Open opens the CSV file at filePath and reads its header row.
//
// RETURNS:
//   - A pointer to the StreamingParser. The caller must Close it.
//   - An error if the file cannot be opened or has no header row.
func Open(filePath string) (*StreamingParser, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	parser, err := NewStreamingParser(file)
	if err != nil {
		file.Close()
		return nil, err
	}

	parser.closer = file
	return parser, nil
}

// NewStreamingParser creates a streaming parser over r and reads its header row.
// Closing the parser does not close r.
func NewStreamingParser(r io.Reader) (*StreamingParser, error) {
	reader := csv.NewReader(bufio.NewReader(r))
	configureReader(reader)

	parser := &StreamingParser{
		reader: reader,
	}

	if err := parser.readHeaders(); err != nil {
		return nil, err
	}

	return parser, nil
}

// configureReader configures the CSV reader for results files.
func configureReader(reader *csv.Reader) {
	// Allow variable number of fields per row.
	// Short rows are padded when converted to a Row.
	reader.FieldsPerRecord = -1

	// Allow lazy quotes (quotes that don't follow strict CSV rules).
	reader.LazyQuotes = true

	// Rows share no backing storage with one another.
	reader.ReuseRecord = false
}

// readHeaders reads the header row.
func (p *StreamingParser) readHeaders() error {
	row, err := p.reader.Read()
	if err == io.EOF {
		return fmt.Errorf("CSV file is empty")
	}
	if err != nil {
		return fmt.Errorf("error reading header row: %w", err)
	}

	p.rowNumber++
	p.headers = stripByteOrderMark(row)
	return nil
}

// stripByteOrderMark removes a byte order mark from the first header name.
// Names are otherwise kept exactly as declared.
func stripByteOrderMark(headers []string) []string {
	if len(headers) > 0 {
		headers[0] = strings.TrimPrefix(headers[0], byteOrderMark)
	}
	return headers
}

// Next advances to the next row. Returns false when there are no more rows
// or a read error occurred; see Err.
func (p *StreamingParser) Next() bool {
	if p.err != nil {
		return false
	}

	record, err := p.reader.Read()
	if err == io.EOF {
		return false
	}
	if err != nil {
		p.err = fmt.Errorf("error reading row %d: %w", p.rowNumber+1, err)
		return false
	}

	p.rowNumber++

	line, _ := p.reader.FieldPos(0)

	fields := make(map[string]string, len(p.headers))
	for i, header := range p.headers {
		if i < len(record) {
			fields[header] = record[i]
		} else {
			fields[header] = ""
		}
	}

	p.currentRow = types.Row{
		Header: p.headers,
		Fields: fields,
		Line:   line,
	}

	return true
}

// Row returns the current row.
func (p *StreamingParser) Row() types.Row {
	return p.currentRow
}

// Headers returns the declared header names in file order.
func (p *StreamingParser) Headers() []string {
	return p.headers
}

// RowNumber returns the number of records read so far, header included.
func (p *StreamingParser) RowNumber() int {
	return p.rowNumber
}

// Err returns any error that occurred during parsing.
func (p *StreamingParser) Err() error {
	return p.err
}

// Close closes the underlying file when the parser was created by Open.
func (p *StreamingParser) Close() error {
	if p.closer == nil {
		return nil
	}
	return p.closer.Close()
}
