package importer

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Structural load failures. Both abort an import before any writes.
var (
	ErrFileNotFound      = errors.New("file not found")
	ErrUnsupportedFormat = errors.New("unsupported file type (use .csv or .json)")
)

// sniffSampleSize bounds how much of a CSV is inspected for delimiter
// detection.
const sniffSampleSize = 4096

var delimiterCandidates = []rune{'|', ',', ';', '\t'}

// LoadRecords reads a CSV or JSON file and returns its rows with
// normalized keys. CSV input is decoded BOM-tolerantly and its delimiter
// auto-detected; JSON input may be a top-level array of objects or an
// object carrying a "rows" array, any other shape yields no rows.
func LoadRecords(path string) ([]Row, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, errors.Wrapf(ErrFileNotFound, "%s", path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return loadCSV(path)
	case ".json":
		return loadJSON(path)
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "%s", path)
	}
}

func loadCSV(path string) ([]Row, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	// Strip a UTF-8 BOM if present so the first header cell is clean.
	decoded, _, err := transform.Bytes(unicode.UTF8BOM.NewDecoder(), raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	content := string(decoded)

	reader := csv.NewReader(strings.NewReader(content))
	reader.Comma = detectDelimiter(content)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return []Row{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	var rows []Row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		raw := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(record) {
				raw[name] = record[i]
			} else {
				raw[name] = ""
			}
		}
		rows = append(rows, NormalizeRow(raw))
	}
	return rows, nil
}

// detectDelimiter samples the first few lines of content and picks the
// candidate whose per-line count is consistent and highest. When no
// candidate is consistent it falls back to '|' if the header line
// contains one, else comma.
func detectDelimiter(content string) rune {
	sample := content
	truncated := false
	if len(sample) > sniffSampleSize {
		sample = sample[:sniffSampleSize]
		truncated = true
	}

	lines := strings.Split(strings.ReplaceAll(sample, "\r\n", "\n"), "\n")
	if truncated && len(lines) > 1 {
		lines = lines[:len(lines)-1] // last line may be cut mid-row
	}
	var nonEmpty []string
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			nonEmpty = append(nonEmpty, l)
		}
		if len(nonEmpty) == 10 {
			break
		}
	}

	best := rune(0)
	bestCount := 0
	for _, cand := range delimiterCandidates {
		count := -1
		consistent := len(nonEmpty) > 0
		for _, line := range nonEmpty {
			n := strings.Count(line, string(cand))
			if count == -1 {
				count = n
			}
			if n == 0 || n != count {
				consistent = false
				break
			}
		}
		if consistent && count > bestCount {
			best = cand
			bestCount = count
		}
	}
	if best != 0 {
		return best
	}

	header := ""
	if len(nonEmpty) > 0 {
		header = nonEmpty[0]
	}
	if strings.ContainsRune(header, '|') {
		return '|'
	}
	return ','
}

func loadJSON(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.UseNumber()
	var data interface{}
	if err := dec.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	var items []interface{}
	switch v := data.(type) {
	case []interface{}:
		items = v
	case map[string]interface{}:
		if rows, ok := v["rows"].([]interface{}); ok {
			items = rows
		}
	}

	rows := make([]Row, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		raw := make(map[string]string, len(obj))
		for k, val := range obj {
			raw[k] = stringifyValue(val)
		}
		rows = append(rows, NormalizeRow(raw))
	}
	return rows, nil
}

// stringifyValue flattens a decoded JSON value to the string form the
// parsers expect; arrays (CPT code lists in practice) join with commas.
func stringifyValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case json.Number:
		return val.String()
	case bool:
		return strconv.FormatBool(val)
	case []interface{}:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			parts = append(parts, stringifyValue(item))
		}
		return strings.Join(parts, ",")
	default:
		return fmt.Sprint(val)
	}
}
