package css

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gorilla/css/scanner"
)

// TokenKind classifies value tokens.
type TokenKind uint8

// Kinds of tokens in property values. Whitespace and comments are dropped
// by the tokenizer.
const (
	TokIdent      TokenKind = iota // identifier, e.g. 'auto'
	TokNumber                      // plain number, e.g. '1.5'
	TokPercentage                  // number followed by '%'
	TokDimension                   // number followed by a unit, e.g. '12px'
	TokHash                        // hash, e.g. '#fff'
	TokString                      // quoted string, quotes removed
	TokFunction                    // function name, e.g. 'rgb' for 'rgb('
	TokComma                       // ','
	TokCloseParen                  // ')'
	TokDelim                       // any other single character
)

// Token is a single lexical item of a property value.
type Token struct {
	Kind TokenKind
	Text string  // identifier (lower case), unit-less text, or delimiter
	Num  float64 // numeric value for numbers, percentages and dimensions
	Unit string  // unit for dimensions (lower case)
}

func (tok Token) String() string {
	switch tok.Kind {
	case TokNumber:
		return strconv.FormatFloat(tok.Num, 'f', -1, 64)
	case TokPercentage:
		return strconv.FormatFloat(tok.Num, 'f', -1, 64) + "%"
	case TokDimension:
		return strconv.FormatFloat(tok.Num, 'f', -1, 64) + tok.Unit
	case TokFunction:
		return tok.Text + "("
	case TokString:
		return strconv.Quote(tok.Text)
	}
	return tok.Text
}

// IsIdent checks if a token is the identifier id.
func (tok Token) IsIdent(id string) bool {
	return tok.Kind == TokIdent && tok.Text == id
}

// Tokenize splits a raw property value into tokens. Tokenizing uses the
// CSS scanner of the Gorilla toolkit. Signs directly preceding a number
// are merged into the numeric token.
func Tokenize(value string) ([]Token, error) {
	s := scanner.New(value)
	var tokens []Token
	sign := 0.0
	for {
		t := s.Next()
		switch t.Type {
		case scanner.TokenEOF:
			if sign != 0 {
				return tokens, fmt.Errorf("dangling sign in value %q", value)
			}
			return tokens, nil
		case scanner.TokenError:
			return tokens, fmt.Errorf("cannot tokenize value %q at column %d", value, t.Column)
		case scanner.TokenS, scanner.TokenComment:
			if sign != 0 {
				return tokens, fmt.Errorf("dangling sign in value %q", value)
			}
			continue
		}
		tok, err := convertToken(t)
		if err != nil {
			return tokens, err
		}
		if sign != 0 {
			if tok.Kind != TokNumber && tok.Kind != TokPercentage && tok.Kind != TokDimension {
				return tokens, fmt.Errorf("sign not followed by a number in value %q", value)
			}
			tok.Num *= sign
			sign = 0
		} else if tok.Kind == TokDelim && (tok.Text == "-" || tok.Text == "+") {
			sign = 1
			if tok.Text == "-" {
				sign = -1
			}
			continue
		}
		tokens = append(tokens, tok)
	}
}

func convertToken(t *scanner.Token) (Token, error) {
	switch t.Type {
	case scanner.TokenIdent:
		return Token{Kind: TokIdent, Text: strings.ToLower(t.Value)}, nil
	case scanner.TokenNumber:
		n, err := strconv.ParseFloat(t.Value, 64)
		if err != nil {
			return Token{}, err
		}
		return Token{Kind: TokNumber, Text: t.Value, Num: n}, nil
	case scanner.TokenPercentage:
		n, err := strconv.ParseFloat(strings.TrimSuffix(t.Value, "%"), 64)
		if err != nil {
			return Token{}, err
		}
		return Token{Kind: TokPercentage, Text: t.Value, Num: n}, nil
	case scanner.TokenDimension:
		num, unit := splitDimension(t.Value)
		n, err := strconv.ParseFloat(num, 64)
		if err != nil {
			return Token{}, err
		}
		return Token{Kind: TokDimension, Text: t.Value, Num: n, Unit: strings.ToLower(unit)}, nil
	case scanner.TokenHash:
		return Token{Kind: TokHash, Text: strings.ToLower(strings.TrimPrefix(t.Value, "#"))}, nil
	case scanner.TokenString:
		return Token{Kind: TokString, Text: unquote(t.Value)}, nil
	case scanner.TokenFunction:
		return Token{Kind: TokFunction, Text: strings.ToLower(strings.TrimSuffix(t.Value, "("))}, nil
	case scanner.TokenChar:
		switch t.Value {
		case ",":
			return Token{Kind: TokComma, Text: ","}, nil
		case ")":
			return Token{Kind: TokCloseParen, Text: ")"}, nil
		}
		return Token{Kind: TokDelim, Text: t.Value}, nil
	}
	return Token{Kind: TokDelim, Text: t.Value}, nil
}

// splitDimension splits "12.5px" into "12.5" and "px".
func splitDimension(s string) (string, string) {
	for i, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_' || r > 0x7f {
			return s[:i], s[i:]
		}
	}
	return s, ""
}

func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}
