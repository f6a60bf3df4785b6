package fileio

import (
	"bufio"
	"encoding/csv"
	"io"
	"strings"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// readCSV reads CSV with headerRow (1-based), auto-detecting encoding and
// converting to UTF-8. Hungarian exports are usually UTF-8 but legacy
// tools still emit ISO-8859-2 / Windows-1250.
func readCSV(r io.Reader, headerRow int) ([]string, [][]string, error) {
	br := bufio.NewReader(r)

	peek, _ := br.Peek(2048)
	cs := "utf-8"
	if len(peek) > 0 {
		if det, err := chardet.NewTextDetector().DetectBest(peek); err == nil && det != nil {
			cs = strings.ToLower(det.Charset)
		}
	}

	var dec io.Reader = br
	switch cs {
	case "iso-8859-2":
		dec = transform.NewReader(br, charmap.ISO8859_2.NewDecoder())
	case "windows-1250", "cp1250":
		dec = transform.NewReader(br, charmap.Windows1250.NewDecoder())
	case "windows-1252", "cp1252":
		dec = transform.NewReader(br, charmap.Windows1252.NewDecoder())
	default:
		// assume UTF-8
	}

	cr := csv.NewReader(dec)
	cr.FieldsPerRecord = -1
	cr.Comma = detectDelimiter(peek)

	var rows [][]string
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, err
		}
		rows = append(rows, rec)
	}
	if len(rows) == 0 {
		return nil, nil, nil
	}
	h := pickHeader(rows, headerRow)
	return h, dataRecords(rows, len(h), headerRow), nil
}

// detectDelimiter favors semicolons when they outnumber commas on the
// first sampled line; Hungarian locales export semicolon-separated CSV.
func detectDelimiter(sample []byte) rune {
	var commas, semis int
	for _, b := range sample {
		switch b {
		case ',':
			commas++
		case ';':
			semis++
		case '\n':
			if semis > 0 || commas > 0 {
				if semis > commas {
					return ';'
				}
				return ','
			}
		}
	}
	if semis > commas {
		return ';'
	}
	return ','
}
