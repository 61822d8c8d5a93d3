// Package tokenizer splits a line of text into lowercased word tokens.
// A word is a maximal run of Unicode letters, Unicode numbers and
// underscores; every other rune separates words and is never part of one.
package tokenizer

import (
	"strings"
	"unicode"
)

// Token is a single lowercased word and the 1-based column, counted in
// characters, where it starts in the line.
type Token struct {
	Term   string
	Column int
}

// IsWordRune reports whether r can be part of a word.
func IsWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

// Tokenize returns the words of line in the order they appear. Terms are
// lowercased rune by rune with no context rules, so a word-final Σ becomes σ.
func Tokenize(line string) []Token {
	tokens := make([]Token, 0, len(line)/6)
	start := -1
	startColumn := 0
	column := 0
	for i, r := range line {
		column++
		if IsWordRune(r) {
			if start < 0 {
				start = i
				startColumn = column
			}
			continue
		}
		if start >= 0 {
			tokens = append(tokens, Token{
				Term:   strings.ToLower(line[start:i]),
				Column: startColumn,
			})
			start = -1
		}
	}
	if start >= 0 {
		tokens = append(tokens, Token{
			Term:   strings.ToLower(line[start:]),
			Column: startColumn,
		})
	}
	return tokens
}
