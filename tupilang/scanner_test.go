package tupilang

import (
	"errors"
	"strings"
	"testing"
)

func TestScanner(t *testing.T) {
	type TokenInfo struct {
		Kind TokenKind
		Text string
	}

	tests := []struct {
		input  string
		tokens []TokenInfo
	}{
		{
			input: "se",
			tokens: []TokenInfo{
				{TokenReservedWord, "se"},
			},
		},
		{
			input: "seuNome",
			tokens: []TokenInfo{
				{TokenIdentifier, "seuNome"},
			},
		},
		{
			input: "senao",
			tokens: []TokenInfo{
				{TokenReservedWord, "senao"},
			},
		},
		{
			input: "3.4",
			tokens: []TokenInfo{
				{TokenRealNumber, "3.4"},
			},
		},
		{
			input: ".5",
			tokens: []TokenInfo{
				{TokenRealNumber, ".5"},
			},
		},
		{
			input: "5.",
			tokens: []TokenInfo{
				{TokenIntegerDecimal, "5"},
				{TokenSymbol, "."},
			},
		},
		{
			input: ":=",
			tokens: []TokenInfo{
				{TokenSymbol, ":="},
			},
		},
		{
			input: "&&",
			tokens: []TokenInfo{
				{TokenSymbol, "&&"},
			},
		},
		{
			input: "<>",
			tokens: []TokenInfo{
				{TokenSymbol, "<>"},
			},
		},
		{
			input: "1..10",
			tokens: []TokenInfo{
				{TokenIntegerDecimal, "1"},
				{TokenSymbol, ".."},
				{TokenIntegerDecimal, "10"},
			},
		},
		{
			input: "0b101",
			tokens: []TokenInfo{
				{TokenIntegerBinary, "0b101"},
			},
		},
		{
			input: "017",
			tokens: []TokenInfo{
				{TokenIntegerOctal, "017"},
			},
		},
		{
			input: "0x1F",
			tokens: []TokenInfo{
				{TokenIntegerHexadecimal, "0x1F"},
			},
		},
		{
			input: "10",
			tokens: []TokenInfo{
				{TokenIntegerDecimal, "10"},
			},
		},
		{
			input: "0",
			tokens: []TokenInfo{
				{TokenIntegerDecimal, "0"},
			},
		},
		{
			input: `"abc"`,
			tokens: []TokenInfo{
				{TokenStringLiteral, `"abc"`},
			},
		},
		{
			input: `""`,
			tokens: []TokenInfo{
				{TokenStringLiteral, `""`},
			},
		},
		{
			input: "x := 0x1F // atribui",
			tokens: []TokenInfo{
				{TokenIdentifier, "x"},
				{TokenSymbol, ":="},
				{TokenIntegerHexadecimal, "0x1F"},
			},
		},
		{
			input: "a /* bloco */ b",
			tokens: []TokenInfo{
				{TokenIdentifier, "a"},
				{TokenIdentifier, "b"},
			},
		},
		{
			// an unterminated block comment never matches; the pieces
			// fall through to the symbol and identifier patterns
			input: "/*x",
			tokens: []TokenInfo{
				{TokenSymbol, "/"},
				{TokenSymbol, "*"},
				{TokenIdentifier, "x"},
			},
		},
		{
			input: "se x >= 10 entao",
			tokens: []TokenInfo{
				{TokenReservedWord, "se"},
				{TokenIdentifier, "x"},
				{TokenSymbol, ">="},
				{TokenIntegerDecimal, "10"},
				{TokenReservedWord, "entao"},
			},
		},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			scanner := NewScanner(NewSource("test", test.input))
			for i, expected := range test.tokens {
				token, err := scanner.Next()
				if err != nil {
					t.Fatalf("step %d: unexpected error: %v", i, err)
				}
				if token.Kind != expected.Kind {
					t.Errorf("step %d: expected kind %v, got %v (text: %q)", i, expected.Kind, token.Kind, token.Text)
				}
				if token.Text != expected.Text {
					t.Errorf("step %d: expected text %q, got %q", i, expected.Text, token.Text)
				}
			}
			if !scanner.IsAtEnd() {
				if _, err := scanner.Next(); err != ErrEndOfInput {
					t.Fatalf("expected end of input, got %v", err)
				}
			}
			if _, err := scanner.Next(); err != ErrEndOfInput {
				t.Fatalf("expected end of input, got %v", err)
			}
		})
	}
}

func TestScannerPositions(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		text   string
		line   int
		col    int
		before int // tokens to discard first
	}{
		{
			name:  "first token",
			input: "se x",
			text:  "se",
			line:  1,
			col:   1,
		},
		{
			name:   "after keyword and space",
			input:  "se x",
			text:   "x",
			line:   1,
			col:    4,
			before: 1,
		},
		{
			name:  "after line comment",
			input: "// nota\nx",
			text:  "x",
			line:  2,
			col:   1,
		},
		{
			name:   "tabs on fresh line",
			input:  "a\n\t\t b",
			text:   "b",
			line:   2,
			col:    10,
			before: 1,
		},
		{
			name:   "tabs without newline",
			input:  "a\t b",
			text:   "b",
			line:   1,
			col:    7,
			before: 1,
		},
		{
			name:   "string literal column",
			input:  `escreva("ola")`,
			text:   `"ola"`,
			line:   1,
			col:    9,
			before: 2,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			scanner := NewScanner(NewSource("test", test.input))
			for i := 0; i < test.before; i++ {
				if _, err := scanner.Next(); err != nil {
					t.Fatalf("skip %d: %v", i, err)
				}
			}
			token, err := scanner.Next()
			if err != nil {
				t.Fatal(err)
			}
			if token.Text != test.text {
				t.Errorf("expected text %q, got %q", test.text, token.Text)
			}
			if token.Line != test.line || token.Col != test.col {
				t.Errorf("expected %d:%d, got %d:%d", test.line, test.col, token.Line, token.Col)
			}
		})
	}
}

func TestScannerTabSize(t *testing.T) {
	scanner := NewScanner(NewSource("test", "a\n\t\t b"))
	if scanner.TabSize() != DefaultTabSize {
		t.Fatalf("got %d", scanner.TabSize())
	}

	if err := scanner.SetTabSize(0); !errors.Is(err, ErrInvalidTabSize) {
		t.Fatalf("got %v", err)
	}
	if err := scanner.SetTabSize(-3); !errors.Is(err, ErrInvalidTabSize) {
		t.Fatalf("got %v", err)
	}

	if err := scanner.SetTabSize(8); err != nil {
		t.Fatal(err)
	}
	if _, err := scanner.Next(); err != nil {
		t.Fatal(err)
	}
	token, err := scanner.Next()
	if err != nil {
		t.Fatal(err)
	}
	if token.Line != 2 || token.Col != 18 {
		t.Errorf("expected 2:18, got %d:%d", token.Line, token.Col)
	}
}

func TestScannerUnrecognizedChar(t *testing.T) {
	scanner := NewScanner(NewSource("test", "@"))

	_, err := scanner.Next()
	var fail *UnrecognizedCharError
	if !errors.As(err, &fail) {
		t.Fatalf("expected UnrecognizedCharError, got %v", err)
	}
	if fail.Char != '@' || fail.Line != 1 || fail.Col != 1 {
		t.Errorf("got %q at %d:%d", fail.Char, fail.Line, fail.Col)
	}

	// the offending character was consumed, so the next call reaches
	// end of input instead of repeating the same failure
	if !scanner.IsAtEnd() {
		t.Fatal("expected end of input")
	}
	if _, err := scanner.Next(); err != ErrEndOfInput {
		t.Fatalf("got %v", err)
	}
}

func TestScannerRecoversAfterError(t *testing.T) {
	scanner := NewScanner(NewSource("test", "x @ y"))

	token, err := scanner.Next()
	if err != nil {
		t.Fatal(err)
	}
	if token.Text != "x" {
		t.Fatalf("got %q", token.Text)
	}

	if _, err := scanner.Next(); err == nil {
		t.Fatal("expected error")
	}

	token, err = scanner.Next()
	if err != nil {
		t.Fatal(err)
	}
	if token.Text != "y" || token.Col != 5 {
		t.Fatalf("got %q at col %d", token.Text, token.Col)
	}
}

func TestScannerTrailingTrivia(t *testing.T) {
	scanner := NewScanner(NewSource("test", "x // cauda"))

	if _, err := scanner.Next(); err != nil {
		t.Fatal(err)
	}
	// trivia remains, so IsAtEnd is still false; the next call skips it
	// and reports end of input
	if scanner.IsAtEnd() {
		t.Fatal("should not be at end yet")
	}
	if _, err := scanner.Next(); err != ErrEndOfInput {
		t.Fatalf("got %v", err)
	}
	if !scanner.IsAtEnd() {
		t.Fatal("expected end of input")
	}
}

func TestScannerTokenLog(t *testing.T) {
	scanner := NewScanner(NewSource("test", "se x entao"))
	if scanner.Len() != 0 {
		t.Fatalf("got %d", scanner.Len())
	}

	var texts []string
	for !scanner.IsAtEnd() {
		token, err := scanner.Next()
		if err == ErrEndOfInput {
			break
		}
		if err != nil {
			t.Fatal(err)
		}
		texts = append(texts, token.Text)
	}

	if scanner.Len() != 3 {
		t.Fatalf("got %d", scanner.Len())
	}
	logged := scanner.Tokens()
	for i, token := range logged {
		if token.Text != texts[i] {
			t.Errorf("log %d: got %q, want %q", i, token.Text, texts[i])
		}
	}
}

func TestScanAllReplay(t *testing.T) {
	const program = `programa exemplo;
var x : inteiro;
inicio
	x := 0x1F; // atribui
	escreva("ola");
fim`

	tokens, errs := ScanAll(NewSource("exemplo", program))
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}

	var sb strings.Builder
	for _, token := range tokens {
		sb.WriteString(token.Text)
	}
	expected := `programaexemplo;varx:inteiro;iniciox:=0x1F;escreva("ola");fim`
	if sb.String() != expected {
		t.Fatalf("got %q", sb.String())
	}
}

func TestScanAllCollectsErrors(t *testing.T) {
	tokens, errs := ScanAll(NewSource("test", "x @ $ y"))
	if len(tokens) != 2 {
		t.Fatalf("got %d tokens", len(tokens))
	}
	if len(errs) != 2 {
		t.Fatalf("got %d errors", len(errs))
	}
}
