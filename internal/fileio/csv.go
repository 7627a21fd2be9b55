package fileio

import (
	"bufio"
	"encoding/csv"
	"io"
	"strings"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/transform"
)

// readCSV reads a whole CSV, auto-detecting encoding and converting to UTF-8.
// Big5 (Excel "Save as CSV" on zh-TW Windows) and GB18030 are decoded, anything else is taken as UTF-8.
func readCSV(r io.Reader) ([][]string, error) {
	br := bufio.NewReader(r)

	// Peek a bit to detect encoding
	peek, _ := br.Peek(4096)
	dec := decoderFor(detectCharset(peek), br)

	cr := csv.NewReader(dec)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var rows [][]string
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		for i := range rec {
			rec[i] = normalizeCell(rec[i])
		}
		rows = append(rows, rec)
	}
	if len(rows) > 0 && len(rows[0]) > 0 {
		rows[0][0] = strings.TrimPrefix(rows[0][0], "\ufeff")
	}
	return trimTrailingEmpty(rows), nil
}

func detectCharset(peek []byte) string {
	if len(peek) == 0 {
		return "utf-8"
	}
	det, err := chardet.NewTextDetector().DetectBest(peek)
	if err != nil || det == nil {
		return "utf-8"
	}
	return strings.ToLower(det.Charset)
}

func decoderFor(charset string, r io.Reader) io.Reader {
	switch charset {
	case "big5":
		return transform.NewReader(r, traditionalchinese.Big5.NewDecoder())
	case "gb-18030", "gb18030":
		return transform.NewReader(r, simplifiedchinese.GB18030.NewDecoder())
	default:
		// assume UTF-8
		return r
	}
}
