// SPDX-License-Identifier: MIT

// Package table: the Read pipeline (fetch, sniff, parse, shape-check).

package table

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlsci/dynamic"
)

const opRead = "Read"

// candidate delimiters probed during sniffing, in preference order.
var delimiters = []rune{',', ';', '\t', '|'}

// readErrorf wraps a cause so both ErrRead and the cause survive errors.Is.
func readErrorf(format string, args ...any) error {
	cause := fmt.Errorf(format, args...)

	return fmt.Errorf("%s: %w: %w", opRead, ErrRead, cause)
}

// Read loads a delimited numeric table from a filesystem path or an
// http(s) URL and returns it as a rectangular sequence-of-sequences
// dynamic value.
// Implementation:
//   - Stage 1 (Fetch): URL sources go through the configured HTTP client
//     with the context and timeout applied; anything else is a local file.
//   - Stage 2 (Sniff): the delimiter is chosen from {',', ';', tab, '|'}
//     by the highest count on the first non-empty line.
//   - Stage 3 (Parse): rows are read with the sniffed delimiter; leading
//     rows containing any non-numeric cell are skipped as headers; after
//     the first fully numeric row every cell must parse and every row must
//     have the same width.
//
// Inputs:
//   - ctx: cancels the fetch. source: path or http(s) URL.
//
// Returns:
//   - dynamic.Value: Array of row Arrays of Float, matrix.FromDynamic
//     compatible.
//
// Errors:
//   - ErrRead wrapping the unchanged transport/filesystem/parse cause.
//
// Complexity:
//   - Time O(bytes), Space O(rows*cols).
//
// AI-Hints:
//   - A file whose every row looks like a header (no fully numeric row)
//     yields an "empty table" failure rather than an empty matrix.
func Read(ctx context.Context, source string, opts ...Option) (dynamic.Value, error) {
	o := gatherOptions(opts...)

	raw, err := fetch(ctx, source, o)
	if err != nil {
		return dynamic.Value{}, readErrorf("fetch %q: %w", source, err)
	}

	rows, err := parseTable(raw)
	if err != nil {
		return dynamic.Value{}, readErrorf("parse %q: %w", source, err)
	}

	return dynamic.FromRows(rows), nil
}

// fetch returns the raw bytes of source. http(s) URLs use the configured
// client; everything else is treated as a filesystem path.
func fetch(ctx context.Context, source string, o options) ([]byte, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return fetchURL(ctx, source, o)
	}

	return os.ReadFile(source)
}

// fetchURL performs one bounded GET and drains the body.
func fetchURL(ctx context.Context, url string, o options) ([]byte, error) {
	if o.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := o.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	return io.ReadAll(resp.Body)
}

// sniffDelimiter picks the candidate with the highest count on the first
// non-empty line; ties and absence fall back to the comma.
func sniffDelimiter(raw []byte) rune {
	text := string(raw)
	var line string
	for _, l := range strings.Split(text, "\n") {
		if strings.TrimSpace(l) != "" {
			line = l
			break
		}
	}

	best, bestCount := ',', 0
	for _, d := range delimiters { // fixed probe order decides ties
		if n := strings.Count(line, string(d)); n > bestCount {
			best, bestCount = d, n
		}
	}

	return best
}

// parseTable turns raw delimited bytes into rectangular float rows.
func parseTable(raw []byte) ([][]float64, error) {
	reader := csv.NewReader(strings.NewReader(string(raw)))
	reader.Comma = sniffDelimiter(raw)
	reader.FieldsPerRecord = -1 // header rows may differ in width
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	var rows [][]float64
	width := -1 // width of the first numeric row, fixed thereafter
	for idx, record := range records {
		if len(record) == 1 && strings.TrimSpace(record[0]) == "" {
			continue // blank line
		}

		parsed, ok := parseNumericRow(record)
		if !ok {
			if width == -1 {
				continue // leading header row
			}

			return nil, fmt.Errorf("row %d: non-numeric cell after data started", idx)
		}

		if width == -1 {
			width = len(parsed)
		} else if len(parsed) != width {
			return nil, fmt.Errorf("row %d has %d columns, want %d", idx, len(parsed), width)
		}
		rows = append(rows, parsed)
	}

	if len(rows) == 0 {
		return nil, errors.New("empty table: no numeric rows")
	}

	return rows, nil
}

// parseNumericRow parses every cell of record as a float64.
// Returns ok=false when any cell fails, leaving header detection to the
// caller.
func parseNumericRow(record []string) ([]float64, bool) {
	parsed := make([]float64, 0, len(record))
	for _, cell := range record {
		v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
		if err != nil {
			return nil, false
		}
		parsed = append(parsed, v)
	}

	return parsed, true
}
