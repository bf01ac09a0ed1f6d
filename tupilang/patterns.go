package tupilang

import (
	"regexp"
	"strings"
)

// Keywords recognizes the fixed reserved word list. Each alternative is
// wrapped in word boundaries so "se" never matches inside "seuNome".
var Keywords = []string{
	"programa",
	"funcao",
	"procedimento",
	"retorne",
	"se",
	"senao",
	"entao",
	"enquanto",
	"faca",
	"para",
	"de",
	"ate",
	"passo",
	"repita",
	"inicio",
	"fim",
	"var",
	"vetor",
	"inteiro",
	"real",
	"caractere",
	"cadeia",
	"logico",
	"verdadeiro",
	"falso",
	"leia",
	"escreva",
}

// Symbols is an ordered list and the order is load-bearing: matching is
// first-alternative-wins, not longest-match, so every multi-character
// symbol must come before its single-character prefix (":=" before ":",
// "&&" before "&", ".." before "."). Never re-sort.
var Symbols = []string{
	":=",
	"||",
	"|",
	"&&",
	"&",
	"^",
	"~",
	"=",
	"<>",
	">=",
	"<=",
	">",
	"<",
	"+",
	"-",
	"*",
	"/",
	"%",
	"[",
	"]",
	"(",
	")",
	":",
	",",
	"..",
	".",
	";",
}

// patterns maps each token kind to its compiled matcher. regexp.Regexp
// values are safe for concurrent use, so the table is package-level and
// shared by all scanners. Go's regexp is leftmost-first on alternations,
// which is exactly the first-alternative-wins contract above; never
// switch to CompilePOSIX, leftmost-longest would change the output.
var patterns = map[TokenKind]*regexp.Regexp{
	TokenReservedWord:       regexp.MustCompile(keywordAlternation()),
	TokenSymbol:             regexp.MustCompile(symbolAlternation()),
	TokenRealNumber:         regexp.MustCompile(`\d*\.\d+`),
	TokenIntegerBinary:      regexp.MustCompile(`0[bB][01]+`),
	TokenIntegerOctal:       regexp.MustCompile(`0[0-7]+`),
	TokenIntegerHexadecimal: regexp.MustCompile(`0[xX][0-9A-Fa-f]+`),
	TokenIntegerDecimal:     regexp.MustCompile(`\d+`),
	TokenStringLiteral:      regexp.MustCompile(`"[^"` + "\n" + `]*"`),
	TokenIdentifier:         regexp.MustCompile(`[A-Za-z_][A-Za-z0-9_]*`),
	TokenShortComment:       regexp.MustCompile(`//[^` + "\n" + `]*`),
	TokenComment:            regexp.MustCompile(`(?s)/\*.*?\*/`),
	TokenWhitespace:         regexp.MustCompile(`[ \t\r` + "\n" + `]+`),
}

// classifyOrder is the dispatch priority: reserved words before
// identifiers (keywords are a subset of the identifier grammar), reals
// before symbols (".5" is one real, not "." then "5") and before
// integers ("3.4" must not split into "3" "." "4"), and the four
// integer bases prefixed forms first so a leading zero is never read as
// plain decimal. Reals ahead of symbols cannot shadow ".." or "1..5":
// the real pattern needs a digit after the dot, so it has no anchored
// match at those positions.
var classifyOrder = []TokenKind{
	TokenReservedWord,
	TokenRealNumber,
	TokenSymbol,
	TokenIntegerBinary,
	TokenIntegerOctal,
	TokenIntegerHexadecimal,
	TokenIntegerDecimal,
	TokenStringLiteral,
	TokenIdentifier,
}

// triviaOrder is the skip order tried before each token.
var triviaOrder = []TokenKind{
	TokenComment,
	TokenShortComment,
	TokenWhitespace,
}

func keywordAlternation() string {
	var sb strings.Builder
	for i, kw := range Keywords {
		if i > 0 {
			sb.WriteByte('|')
		}
		sb.WriteString(`\b`)
		sb.WriteString(regexp.QuoteMeta(kw))
		sb.WriteString(`\b`)
	}
	return sb.String()
}

func symbolAlternation() string {
	var sb strings.Builder
	for i, sym := range Symbols {
		if i > 0 {
			sb.WriteByte('|')
		}
		sb.WriteString(regexp.QuoteMeta(sym))
	}
	return sb.String()
}
