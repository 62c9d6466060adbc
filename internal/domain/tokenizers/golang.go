package tokenizers

import (
	"go/scanner"
	"go/token"
	"strconv"

	m "glotscan.dev/pkg/glotscan/internal/model"
)

// GoTokenizer lexes Go source with the standard library scanner.
type GoTokenizer struct{}

// NewGoTokenizer returns the Go tokenizer.
func NewGoTokenizer() *GoTokenizer {
	return &GoTokenizer{}
}

func (t *GoTokenizer) Language() m.Language   { return m.LanguageGo }
func (t *GoTokenizer) Extensions() []string   { return []string{".go"} }
func (t *GoTokenizer) ConcatOperator() string { return "+" }

// Tokenize implements Tokenizer.
func (t *GoTokenizer) Tokenize(src []byte) ([]m.Token, error) {
	fset := token.NewFileSet()
	file := fset.AddFile("", fset.Base(), len(src))

	var firstErr *SyntaxError

	var s scanner.Scanner
	s.Init(file, src, func(pos token.Position, msg string) {
		if firstErr == nil {
			firstErr = &SyntaxError{Line: pos.Line, Msg: msg}
		}
	}, 0)

	var tokens []m.Token

	for {
		pos, tok, lit := s.Scan()
		if tok == token.EOF {
			break
		}

		line := file.Line(pos)

		switch {
		case tok == token.SEMICOLON && lit == "\n":
			// Inserted automatically at line ends.
			continue

		case tok == token.IDENT || tok.IsKeyword():
			tokens = append(tokens, m.Token{Kind: m.TokenIdentifier, Raw: tokenText(tok, lit), Line: line})

		case tok == token.STRING:
			value, err := strconv.Unquote(lit)
			if err != nil {
				tokens = append(tokens, m.Token{Kind: m.TokenOther, Raw: lit, Line: line})
				continue
			}

			tokens = append(tokens, m.Token{Kind: m.TokenString, Raw: lit, Value: value, Line: line})

		case tok.IsOperator():
			tokens = append(tokens, m.Token{Kind: m.TokenOperator, Raw: tok.String(), Line: line})

		default:
			tokens = append(tokens, m.Token{Kind: m.TokenOther, Raw: tokenText(tok, lit), Line: line})
		}
	}

	if firstErr != nil {
		return nil, firstErr
	}

	return tokens, nil
}

func tokenText(tok token.Token, lit string) string {
	if lit != "" {
		return lit
	}

	return tok.String()
}
