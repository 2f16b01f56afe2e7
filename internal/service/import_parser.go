package service

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-whitelist-keeper/internal/validators"
)

// sniffSampleRunes is how much of the input is inspected to detect a
// delimited dialect.
const sniffSampleRunes = 1024

var candidateDelimiters = []rune{',', ';', '\t', '|'}

var errNoDialect = errors.New("no delimited dialect detected")

// parseNames extracts valid player names from untrusted text. Invalid UTF-8
// is dropped, a leading BOM stripped, and the first occurrence of each name
// kept.
func parseNames(data []byte) []string {
	text := strings.ToValidUTF8(string(data), "")
	text = strings.TrimPrefix(text, "\ufeff")

	tokens, err := parseDelimited(text)
	if err != nil {
		tokens = parseLines(text)
	}

	seen := make(map[string]struct{}, len(tokens))
	names := make([]string, 0, len(tokens))
	for _, token := range tokens {
		token = strings.TrimSpace(token)
		if token == "" || !validators.IsValidName(token) {
			continue
		}
		if _, dup := seen[token]; dup {
			continue
		}
		seen[token] = struct{}{}
		names = append(names, token)
	}
	return names
}

func parseDelimited(text string) ([]string, error) {
	delim, err := sniffDelimiter(text)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(strings.NewReader(text))
	reader.Comma = delim
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	var tokens []string
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return tokens, nil
		}
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, record...)
	}
}

// sniffDelimiter picks the first candidate that appears the same non-zero
// number of times on every complete, non-blank line of the sample.
func sniffDelimiter(text string) (rune, error) {
	sample, truncated := head(text, sniffSampleRunes)

	lines := strings.Split(sample, "\n")
	if truncated && len(lines) > 1 {
		lines = lines[:len(lines)-1]
	}

	for _, delim := range candidateDelimiters {
		count := -1
		consistent := true
		for _, line := range lines {
			line = strings.TrimRight(line, "\r")
			if strings.TrimSpace(line) == "" {
				continue
			}
			n := strings.Count(line, string(delim))
			if count == -1 {
				count = n
			}
			if n == 0 || n != count {
				consistent = false
				break
			}
		}
		if consistent && count > 0 {
			return delim, nil
		}
	}
	return 0, errNoDialect
}

// head returns at most n runes of s and whether s was cut.
func head(s string, n int) (string, bool) {
	if utf8.RuneCountInString(s) <= n {
		return s, false
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos], true
		}
		i++
	}
	return s, false
}

// parseLines is the fallback: one or more comma-separated names per line.
func parseLines(text string) []string {
	var tokens []string
	for _, line := range strings.Split(text, "\n") {
		tokens = append(tokens, strings.Split(strings.TrimRight(line, "\r"), ",")...)
	}
	return tokens
}
