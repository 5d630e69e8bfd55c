package parser

import (
	"strings"

	"github.com/jsvensson/swatchkit/internal/color"
)

// Result is the outcome of parsing a batch of color tokens.
type Result struct {
	Colors []color.Color
	Failed []string // tokens that did not parse, in input order
}

// Split breaks bulk input into color tokens. Tokens are separated by line
// breaks and by commas outside parentheses, so "rgb(1, 2, 3), #FFFFFF" yields
// two tokens. Tokens are trimmed and empty tokens are dropped.
func Split(text string) []string {
	var (
		tokens []string
		start  int
		depth  int
	)
	emit := func(end int) {
		if tok := strings.TrimSpace(text[start:end]); tok != "" {
			tokens = append(tokens, tok)
		}
		start = end + 1
	}

	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case '\n', '\r':
			depth = 0
			emit(i)
		case ',':
			if depth == 0 {
				emit(i)
			}
		}
	}
	if start < len(text) {
		emit(len(text))
	}
	return tokens
}

// ParseAll parses every token in text and reports successes and failures.
// A failing token never stops the batch.
func ParseAll(text string) Result {
	var res Result
	for _, tok := range Split(text) {
		c, err := Parse(tok)
		if err != nil {
			res.Failed = append(res.Failed, tok)
			continue
		}
		res.Colors = append(res.Colors, c)
	}
	return res
}
