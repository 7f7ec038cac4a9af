// Package parser provides xlsx worksheet parsing and card grouping.
package parser

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const sharedStringsPath = "xl/sharedStrings.xml"

// ErrWorksheetNotFound indicates the requested worksheet part is absent
// from the archive.
var ErrWorksheetNotFound = errors.New("worksheet not found")

// ColumnLayout selects how cells are assigned to column positions.
type ColumnLayout string

const (
	// LayoutReference places each cell at the column encoded in its
	// reference label (e.g. "B3" -> column 1), filling gaps with empty
	// strings.
	LayoutReference ColumnLayout = "reference"
	// LayoutSequential appends cells in document order and assumes no
	// column gaps.
	LayoutSequential ColumnLayout = "sequential"
)

// worksheetXML mirrors the parts of a worksheet document we read.
type worksheetXML struct {
	XMLName xml.Name `xml:"worksheet"`
	Rows    []rowXML `xml:"sheetData>row"`
}

type rowXML struct {
	Cells []cellXML `xml:"c"`
}

type cellXML struct {
	Ref  string  `xml:"r,attr"`
	Type string  `xml:"t,attr"`
	V    *string `xml:"v"`
}

// LoadRows reads one worksheet's rows from an xlsx archive, resolving
// shared-string references. Rows and columns preserve document order.
// A missing shared-strings part is not an error; a missing worksheet
// part is.
func LoadRows(xlsxPath, sheet string, layout ColumnLayout) ([][]string, error) {
	r, err := zip.OpenReader(xlsxPath)
	if err != nil {
		return nil, fmt.Errorf("open xlsx %s: %w", xlsxPath, err)
	}
	defer r.Close()

	shared, err := loadSharedStrings(&r.Reader)
	if err != nil {
		return nil, err
	}

	sheetPath := "xl/worksheets/" + sheet + ".xml"
	data, err := readZipFile(&r.Reader, sheetPath)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, fmt.Errorf("%w: %s", ErrWorksheetNotFound, sheetPath)
	}

	var ws worksheetXML
	if err := xml.Unmarshal(data, &ws); err != nil {
		return nil, fmt.Errorf("parse worksheet %s: %w", sheetPath, err)
	}

	rows := make([][]string, 0, len(ws.Rows))
	for _, row := range ws.Rows {
		if layout == LayoutSequential {
			rows = append(rows, sequentialRow(row, shared))
			continue
		}
		rows = append(rows, referenceRow(row, shared))
	}
	return rows, nil
}

// referenceRow shapes a row by cell reference labels. The result has
// length maxCol+1 with unseen columns left empty; rows may differ in
// length from each other.
func referenceRow(row rowXML, shared []string) []string {
	byCol := make(map[int]string)
	maxCol := -1
	for _, c := range row.Cells {
		col := colRefToIndex(c.Ref)
		if col < 0 {
			continue
		}
		if col > maxCol {
			maxCol = col
		}
		byCol[col] = cellValue(c, shared)
	}

	vals := make([]string, maxCol+1)
	for col, v := range byCol {
		vals[col] = v
	}
	return vals
}

func sequentialRow(row rowXML, shared []string) []string {
	vals := make([]string, 0, len(row.Cells))
	for _, c := range row.Cells {
		vals = append(vals, cellValue(c, shared))
	}
	return vals
}

// cellValue resolves a cell to its string value. Cells without a value
// node are empty; shared-string cells with an unparsable or out-of-range
// index resolve to "" rather than failing.
func cellValue(c cellXML, shared []string) string {
	if c.V == nil {
		return ""
	}
	if c.Type == "s" {
		idx, err := strconv.Atoi(strings.TrimSpace(*c.V))
		if err != nil || idx < 0 || idx >= len(shared) {
			return ""
		}
		return shared[idx]
	}
	return *c.V
}

// colRefToIndex converts the alphabetic prefix of a cell reference to a
// 0-based column index (A=0, Z=25, AA=26). Returns -1 when the reference
// has no letter prefix.
func colRefToIndex(ref string) int {
	col := 0
	letters := 0
	for i := 0; i < len(ref); i++ {
		ch := ref[i]
		if ch >= 'a' && ch <= 'z' {
			ch -= 'a' - 'A'
		}
		if ch < 'A' || ch > 'Z' {
			break
		}
		col = col*26 + int(ch-'A') + 1
		letters++
	}
	if letters == 0 {
		return -1
	}
	return col - 1
}

// loadSharedStrings builds the shared string table from the archive.
// Each <si> entry concatenates the text of every descendant <t> node, so
// strings split across formatting runs come back whole. An absent part
// yields an empty table; a malformed part is an error.
func loadSharedStrings(r *zip.Reader) ([]string, error) {
	data, err := readZipFile(r, sharedStringsPath)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	var table []string
	var sb strings.Builder
	inItem := false
	textDepth := 0

	decoder := xml.NewDecoder(bytes.NewReader(data))
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", sharedStringsPath, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "si":
				inItem = true
				sb.Reset()
			case "t":
				if inItem {
					textDepth++
				}
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "si":
				table = append(table, sb.String())
				inItem = false
			case "t":
				if textDepth > 0 {
					textDepth--
				}
			}
		case xml.CharData:
			if textDepth > 0 {
				sb.Write(t)
			}
		}
	}
	return table, nil
}

func readZipFile(r *zip.Reader, name string) ([]byte, error) {
	for _, f := range r.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, nil
}
