package parsing

import "strings"

// stopwords are common words excluded from free-text tokenization
var stopwords = map[string]bool{
	"a": true, "an": true, "and": true, "are": true, "as": true, "at": true,
	"be": true, "by": true, "for": true, "from": true, "in": true, "is": true,
	"it": true, "of": true, "on": true, "or": true, "our": true, "the": true,
	"to": true, "we": true, "with": true, "you": true, "your": true,
}

// isTokenRune reports whether the rune may appear inside a token.
// '+', '#' and '.' are kept so tokens like c++, c# and node.js survive.
func isTokenRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '+' || r == '#' || r == '.' || r == '-':
		return true
	}
	return false
}

// Tokenize splits free text into normalized lowercase tokens with stopwords
// removed. Trailing punctuation such as a sentence-ending period is stripped.
func Tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !isTokenRune(r)
	})

	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		token := strings.Trim(field, ".-")
		if token == "" || stopwords[token] {
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens
}

// ContainsKeyword reports whether the normalized keyword occurs in the text.
// Single-token keywords match on word boundaries via tokenization; multi-word
// keywords match as a case-insensitive substring.
func ContainsKeyword(text, keyword string) bool {
	keyword = NormalizeSkillToken(keyword)
	if keyword == "" {
		return false
	}

	if strings.Contains(keyword, " ") {
		return strings.Contains(strings.ToLower(text), keyword)
	}

	for _, token := range Tokenize(text) {
		if NormalizeSkillToken(token) == keyword {
			return true
		}
	}
	return false
}
