// Package loader reads a delimited text file into an all-string model.Table.
// Every column gets the string type so identifiers with leading zeros survive
// untouched; rows shorter or longer than the header are padded or truncated.
package loader

import (
	"encoding/csv"
	"regexp"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/biosurv/merger/consts"
	"github.com/biosurv/merger/errs"
	"github.com/biosurv/merger/file"
	"github.com/biosurv/merger/model"
	"github.com/biosurv/merger/sniff"
)

// Under a semicolon delimiter, a comma inside a purely numeric token is a
// locale decimal separator.
var decimalComma = regexp.MustCompile(`^-?\d+,\d+$`)

// Load sniffs the delimiter of the file at path and materializes it.
func Load(path string) (*model.Table, error) {
	delim, err := sniff.Detect(path)
	if err != nil {
		return nil, errs.Wrap(errs.IO, err, "cannot open %s", path)
	}
	raw, err := file.ReadAll(path)
	if err != nil {
		return nil, errs.Wrap(errs.IO, err, "cannot read %s", path)
	}
	text, err := decode(raw)
	if err != nil {
		return nil, errs.Wrap(errs.Parse, err, "cannot decode %s", path)
	}
	return Parse(text, delim, path)
}

// Parse materializes already-decoded delimited text. The path is only used in
// error messages.
func Parse(text string, delim byte, path string) (*model.Table, error) {
	r := csv.NewReader(strings.NewReader(text))
	r.Comma = rune(delim)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	records, err := r.ReadAll()
	if err != nil {
		return nil, errs.Wrap(errs.Parse, err, "malformed content in %s", path)
	}
	if len(records) == 0 {
		return nil, errs.New(errs.Parse, "%s has no header line", path)
	}
	header := records[0]
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	t, err := model.NewTable(header)
	if err != nil {
		return nil, errs.Wrap(errs.Parse, err, "bad header in %s", path)
	}
	for _, rec := range records[1:] {
		if delim == consts.Semicolon {
			for i, v := range rec {
				if decimalComma.MatchString(v) {
					rec[i] = strings.ReplaceAll(v, ",", ".")
				}
			}
		}
		t.AddRow(rec)
	}
	return t, nil
}

// decode tolerates unknown encodings: BOMs select UTF-16 where present,
// everything else is read as UTF-8 with invalid bytes replaced.
func decode(raw []byte) (string, error) {
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	out, _, err := transform.Bytes(dec, raw)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
