package classifier

import (
	"regexp"
	"unicode"
	"unicode/utf8"
)

// maxTickerLen is the longest uppercase run taken as a ticker.
const maxTickerLen = 5

var upperRun = regexp.MustCompile(`[A-Z]+`)

// ExtractTickers returns every standalone run of 1-5 uppercase letters in order of
// appearance. Repeats are kept and nothing is checked against a symbol registry.
// A run touching any letter, digit or underscore, accented ones included, is
// not standalone.
func ExtractTickers(text string) []string {
	tickers := []string{}
	for _, loc := range upperRun.FindAllStringIndex(text, -1) {
		start, end := loc[0], loc[1]
		if end-start > maxTickerLen {
			continue
		}
		if r, _ := utf8.DecodeLastRuneInString(text[:start]); start > 0 && isWordRune(r) {
			continue
		}
		if r, _ := utf8.DecodeRuneInString(text[end:]); end < len(text) && isWordRune(r) {
			continue
		}
		tickers = append(tickers, text[start:end])
	}
	return tickers
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
