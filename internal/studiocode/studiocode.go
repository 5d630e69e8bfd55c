// Package studiocode reads and writes studio codes: URL query strings whose
// colorNames parameter carries a JSON array of {"hex": "#RRGGBB", ...} objects.
package studiocode

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

const param = "colorNames"

var prefix = regexp.MustCompile(`(?i)^studiocode\?`)

var (
	ErrMissingColorNames = errors.New("no colorNames found in studio code")
	ErrInvalidJSON       = errors.New("colorNames is not valid JSON")
	ErrNotArray          = errors.New("colorNames is not a JSON array")
	ErrNoColors          = errors.New("no valid colors found in studio code")
)

// DecodeError reports a malformed studio code. Err wraps one of the
// Err* sentinels above.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return "invalid studio code: " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Entry is one color of a studio code. Name is empty when the payload
// carries none.
type Entry struct {
	Hex  string `json:"hex"`
	Name string `json:"name,omitempty"`
}

// Decode extracts the hex strings from a studio code, in payload order.
// The strings are returned verbatim; they are not validated as colors.
func Decode(raw string) ([]string, error) {
	entries, err := Entries(raw)
	if err != nil {
		return nil, err
	}
	return lo.Map(entries, func(e Entry, _ int) string { return e.Hex }), nil
}

// Entries decodes a studio code into its entries. Elements without a string
// "hex" field starting with '#' are dropped; zero remaining entries is an error.
func Entries(raw string) ([]Entry, error) {
	query := prefix.ReplaceAllString(strings.TrimSpace(raw), "")

	payload := queryParam(query, param)
	if payload == "" {
		return nil, &DecodeError{Err: ErrMissingColorNames}
	}

	var data any
	if err := json.Unmarshal([]byte(payload), &data); err != nil {
		return nil, &DecodeError{Err: fmt.Errorf("%w: %v", ErrInvalidJSON, err)}
	}

	items, ok := data.([]any)
	if !ok {
		return nil, &DecodeError{Err: ErrNotArray}
	}

	entries := lo.FilterMap(items, func(item any, _ int) (Entry, bool) {
		obj, ok := item.(map[string]any)
		if !ok {
			return Entry{}, false
		}
		hex, ok := obj["hex"].(string)
		if !ok || !strings.HasPrefix(hex, "#") {
			return Entry{}, false
		}
		name, _ := obj["name"].(string)
		return Entry{Hex: hex, Name: name}, true
	})
	if len(entries) == 0 {
		return nil, &DecodeError{Err: ErrNoColors}
	}

	return entries, nil
}

// queryParam returns the first value of key in query. Pairs are split on '&'
// only, and a '%' that does not start a valid escape is kept as written, so
// raw JSON such as "50% red" survives.
func queryParam(query, key string) string {
	for _, pair := range strings.Split(query, "&") {
		k, v, _ := strings.Cut(pair, "=")
		if unescape(k) == key {
			return unescape(v)
		}
	}
	return ""
}

func unescape(s string) string {
	if u, err := url.QueryUnescape(s); err == nil {
		return u
	}

	s = strings.ReplaceAll(s, "+", " ")
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) {
			if v, err := strconv.ParseUint(s[i+1:i+3], 16, 8); err == nil {
				b.WriteByte(byte(v))
				i += 2
				continue
			}
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// Encode builds a studio code carrying the given entries.
func Encode(entries []Entry) string {
	if entries == nil {
		entries = []Entry{}
	}
	payload, err := json.Marshal(entries)
	if err != nil {
		// Entry holds only strings.
		panic("studiocode: " + err.Error())
	}
	return "studiocode?" + url.Values{param: {string(payload)}}.Encode()
}
