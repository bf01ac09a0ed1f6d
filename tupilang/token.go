package tupilang

type Token struct {
	Kind TokenKind
	Text string
	Line int
	Col  int
}

type TokenKind uint8

const (
	TokenInvalid TokenKind = iota

	TokenReservedWord
	TokenSymbol
	TokenRealNumber
	TokenIntegerBinary
	TokenIntegerOctal
	TokenIntegerDecimal
	TokenIntegerHexadecimal
	TokenStringLiteral
	TokenIdentifier

	// trivia kinds, consumed but never returned by Scanner.Next
	TokenShortComment
	TokenComment
	TokenWhitespace
)

func (k TokenKind) String() string {
	switch k {
	case TokenReservedWord:
		return "ReservedWord"
	case TokenSymbol:
		return "Symbol"
	case TokenRealNumber:
		return "RealNumber"
	case TokenIntegerBinary:
		return "IntegerBinary"
	case TokenIntegerOctal:
		return "IntegerOctal"
	case TokenIntegerDecimal:
		return "IntegerDecimal"
	case TokenIntegerHexadecimal:
		return "IntegerHexadecimal"
	case TokenStringLiteral:
		return "StringLiteral"
	case TokenIdentifier:
		return "Identifier"
	case TokenShortComment:
		return "ShortComment"
	case TokenComment:
		return "Comment"
	case TokenWhitespace:
		return "Whitespace"
	}
	return "Invalid"
}

func (k TokenKind) IsTrivia() bool {
	return k == TokenShortComment || k == TokenComment || k == TokenWhitespace
}
