package model

// TokenKind classifies a lexical token.
type TokenKind int

const (
	// TokenOther covers numbers, variables, inline markup and anything else
	// that is irrelevant to extraction.
	TokenOther TokenKind = iota
	// TokenIdentifier is a bare name (function, keyword, property).
	TokenIdentifier
	// TokenString is a complete string literal.
	TokenString
	// TokenOperator is punctuation or an operator, including brackets.
	TokenOperator
)

func (k TokenKind) String() string {
	switch k {
	case TokenIdentifier:
		return "identifier"
	case TokenString:
		return "string"
	case TokenOperator:
		return "operator"
	default:
		return "other"
	}
}

// Token is a single lexical unit.
type Token struct {
	Kind TokenKind
	// Raw is the token exactly as written in the source.
	Raw string
	// Value holds the de-escaped contents of a string literal. It is empty
	// for other kinds.
	Value string
	// Line is the 1-based line the token starts on.
	Line int
}

// Is reports whether t is an operator or identifier spelled raw.
func (t Token) Is(kind TokenKind, raw string) bool {
	return t.Kind == kind && t.Raw == raw
}
