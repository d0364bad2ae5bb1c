package importer

import (
	"encoding/csv"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"pharmadist/internal/domain"
)

// Row is one raw record keyed by normalized header names.
type Row struct {
	Line   int
	Fields map[string]string
}

// recordElements lists the XML element names that hold one record of each kind.
var recordElements = map[domain.ImportKind][]string{
	domain.ImportCustomers:    {"customer", "party", "account"},
	domain.ImportStock:        {"item", "product", "stock"},
	domain.ImportInvoices:     {"invoice", "bill", "transaction"},
	domain.ImportTransactions: {"invoice", "bill", "transaction"},
}

// NormalizeKey lower-cases a header and replaces anything outside [a-z0-9] with '_'.
func NormalizeKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}
		return '_'
	}, s)
}

// Parse splits data into raw rows in the given format.
func Parse(data string, format domain.ImportFormat, kind domain.ImportKind) ([]Row, error) {
	data = strings.TrimPrefix(data, "\ufeff")
	if strings.TrimSpace(data) == "" {
		return nil, domain.ErrEmptyImport
	}
	switch format {
	case domain.FormatCSV:
		return parseDelimited(data, ',')
	case domain.FormatDAT:
		return parseDelimited(data, '|')
	case domain.FormatXML:
		return parseXML(data, kind)
	}
	return nil, domain.ErrUnsupportedFormat
}

func parseDelimited(data string, sep rune) ([]Row, error) {
	r := csv.NewReader(strings.NewReader(data))
	r.Comma = sep
	r.LazyQuotes = true
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	keys := make([]string, len(header))
	for i, h := range header {
		keys[i] = NormalizeKey(h)
	}

	var rows []Row
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row: %w", err)
		}
		line, _ := r.FieldPos(0)
		if blank(record) {
			continue
		}
		fields := make(map[string]string, len(keys))
		for i, key := range keys {
			if i < len(record) {
				fields[key] = cleanValue(record[i])
			}
		}
		rows = append(rows, Row{Line: line, Fields: fields})
	}
	return rows, nil
}

func blank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func cleanValue(s string) string {
	return strings.TrimSpace(strings.Trim(strings.TrimSpace(s), `"'`))
}

func isRecordElement(kind domain.ImportKind, name string) bool {
	for _, n := range recordElements[kind] {
		if strings.EqualFold(n, name) {
			return true
		}
	}
	return false
}

// parseXML collects every record element's attributes and child element text.
// A child with no text falls back to its "value" attribute.
func parseXML(data string, kind domain.ImportKind) ([]Row, error) {
	dec := xml.NewDecoder(strings.NewReader(data))
	dec.Strict = false

	var (
		rows    []Row
		current *Row
		depth   int
		child   string
		text    strings.Builder
		attrVal string
	)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parsing xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch {
			case current == nil && isRecordElement(kind, t.Name.Local):
				line, _ := dec.InputPos()
				current = &Row{Line: line, Fields: make(map[string]string)}
				depth = 0
				for _, a := range t.Attr {
					current.Fields[NormalizeKey(a.Name.Local)] = strings.TrimSpace(a.Value)
				}
			case current != nil:
				depth++
				if depth == 1 {
					child = NormalizeKey(t.Name.Local)
					text.Reset()
					attrVal = ""
					for _, a := range t.Attr {
						if strings.EqualFold(a.Name.Local, "value") {
							attrVal = a.Value
						}
					}
				}
			}
		case xml.CharData:
			if current != nil && depth == 1 {
				text.Write(t)
			}
		case xml.EndElement:
			if current == nil {
				continue
			}
			if depth == 0 {
				rows = append(rows, *current)
				current = nil
				continue
			}
			if depth == 1 {
				v := strings.TrimFunc(text.String(), unicode.IsSpace)
				if v == "" {
					v = strings.TrimSpace(attrVal)
				}
				current.Fields[child] = v
			}
			depth--
		}
	}
	return rows, nil
}
