// ABOUTME: Local spreadsheet row source for offline previews and runs
// ABOUTME: Reads .xlsx workbooks via excelize and .csv files with charset and separator detection
package sheetfile

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

var ErrUnsupported = errors.New("unsupported sheet file type")

// Source reads rows from a local file exported from the contact sheet.
type Source struct {
	Path string
	// Charset of CSV input, e.g. "iso-8859-2". Empty means UTF-8.
	Charset string
}

func New(path, charset string) *Source {
	return &Source{Path: path, Charset: charset}
}

// Rows returns the file rows, header first. For workbooks, sheet selects the
// worksheet by name; an unknown or empty name falls back to the first sheet.
func (s *Source) Rows(ctx context.Context, sheet string) ([][]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(s.Path)) {
	case ".xlsx", ".xlsm":
		return s.readXLSX(sheet)
	case ".csv", ".tsv", ".txt":
		return s.readCSV()
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, s.Path)
	}
}

func (s *Source) readXLSX(sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook %s has no sheets", s.Path)
	}
	if sheet == "" || !slices.Contains(sheets, sheet) {
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	return rows, nil
}

// GetEncoding resolves a charset name; UTF-8 and empty names return nil.
func GetEncoding(name string) (encoding.Encoding, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || name == "utf-8" || name == "utf8" {
		return nil, nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", name, err)
	}
	return enc, nil
}

func (s *Source) readCSV() ([][]string, error) {
	enc, err := GetEncoding(s.Charset)
	if err != nil {
		return nil, err
	}

	fh, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open csv: %w", err)
	}
	defer func() { _ = fh.Close() }()

	var r io.Reader = fh
	if enc != nil {
		r = enc.NewDecoder().Reader(r)
	}
	return ReadCSV(r)
}

// ReadCSV reads all records, guessing the separator from the first bytes.
// Records may have differing lengths.
func ReadCSV(r io.Reader) ([][]string, error) {
	br := bufio.NewReaderSize(r, 1<<16)
	b, err := br.Peek(1024)
	if err != nil && len(b) == 0 {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}

	cr := csv.NewReader(br)
	cr.Comma = sniffSeparator(b)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv: %w", err)
	}
	return rows, nil
}

// sniffSeparator returns the first separator candidate seen on the header line.
func sniffSeparator(b []byte) rune {
	for _, r := range string(b) {
		switch r {
		case ',', ';', '\t', '|':
			return r
		case '\n', '\r':
			return ','
		}
	}
	return ','
}
