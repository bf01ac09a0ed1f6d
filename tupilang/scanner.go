package tupilang

import "unicode/utf8"

// Scanner turns a Source into a sequence of tokens. It owns its cursor
// and is not safe for concurrent use; the compiled pattern table is
// shared read-only across all instances.
type Scanner struct {
	source *Source
	cursor cursor
	tokens []Token
}

func NewScanner(source *Source) *Scanner {
	return &Scanner{
		source: source,
		cursor: newCursor(),
	}
}

func (s *Scanner) IsAtEnd() bool {
	return s.cursor.offset >= len(s.source.Content)
}

func (s *Scanner) TabSize() int {
	return s.cursor.tabSize
}

func (s *Scanner) SetTabSize(n int) error {
	if n <= 0 {
		return ErrInvalidTabSize
	}
	s.cursor.tabSize = n
	return nil
}

func (s *Scanner) Line() int {
	return s.cursor.line
}

func (s *Scanner) Column() int {
	return s.cursor.col
}

func (s *Scanner) Offset() int {
	return s.cursor.offset
}

// Len is the number of tokens produced so far.
func (s *Scanner) Len() int {
	return len(s.tokens)
}

// Tokens is a copy of every token produced so far, in production order,
// trivia excluded.
func (s *Scanner) Tokens() []Token {
	out := make([]Token, len(s.tokens))
	copy(out, s.tokens)
	return out
}

// Next returns the next token. It fails with ErrEndOfInput once the
// input is exhausted, or with *UnrecognizedCharError when no pattern
// matches at the cursor; in the latter case the offending character has
// been consumed, so the following call makes progress.
func (s *Scanner) Next() (Token, error) {
	if s.IsAtEnd() {
		return Token{}, ErrEndOfInput
	}

	s.skipTrivia()

	if s.IsAtEnd() {
		return Token{}, ErrEndOfInput
	}

	for _, kind := range classifyOrder {
		if token, ok := s.match(kind); ok {
			s.tokens = append(s.tokens, token)
			return token, nil
		}
	}

	r, size := utf8.DecodeRuneInString(s.source.Content[s.cursor.offset:])
	fail := &UnrecognizedCharError{
		Char: r,
		Line: s.cursor.line,
		Col:  s.cursor.col,
	}
	s.cursor.offset += size
	s.cursor.col++
	return Token{}, fail
}

// match runs kind's pattern over the remaining text and accepts only a
// match anchored at the cursor. A match found further ahead is a miss:
// tokens are recognized at the cursor, never skipped-to.
func (s *Scanner) match(kind TokenKind) (Token, bool) {
	rest := s.source.Content[s.cursor.offset:]
	loc := patterns[kind].FindStringIndex(rest)
	if loc == nil || loc[0] != 0 {
		return Token{}, false
	}
	token := Token{
		Kind: kind,
		Text: rest[:loc[1]],
		Line: s.cursor.line,
		Col:  s.cursor.col,
	}
	s.cursor.advance(kind, token.Text)
	return token, true
}

// skipTrivia consumes block comments, line comments and whitespace runs
// until none remain at the cursor. A plain loop, not recursion: long
// comment runs must not grow the stack. It terminates because every
// accepted trivia match strictly advances the offset.
func (s *Scanner) skipTrivia() {
	for {
		consumed := false
		for _, kind := range triviaOrder {
			if _, ok := s.match(kind); ok {
				consumed = true
				break
			}
		}
		if !consumed {
			return
		}
	}
}

// ScanAll drives scanner to the end of source, collecting tokens and
// every non-EOF failure.
func ScanAll(source *Source) ([]Token, []error) {
	scanner := NewScanner(source)
	var errs []error
	for !scanner.IsAtEnd() {
		_, err := scanner.Next()
		if err == ErrEndOfInput {
			break
		}
		if err != nil {
			errs = append(errs, err)
		}
	}
	return scanner.Tokens(), errs
}
