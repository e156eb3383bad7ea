// token.go: scanner for the brace-delimited tensor-tree text format.
//
// The format has three token kinds: '{', '}', and floating point numbers.
// Runs of whitespace and commas separate tokens and produce nothing.
// Any other byte is a lexical error. (The legacy regex scanner dropped
// unrecognized bytes silently; reporting them is a deliberate tightening.)
package ttree

import (
	"fmt"
	"strconv"
)

// TokenType represents the kind of token.
type TokenType int

const (
	EOF TokenType = iota
	LBRACE
	RBRACE
	NUMBER
)

// Token is a lexical token. Value is set for NUMBER tokens only.
type Token struct {
	Type   TokenType
	Lexeme string // raw text slice
	Value  float64
	Line   int // 1-based
	Col    int // 0-based column within line
}

// Lexer scans a tensor-tree data block into tokens, one per Next call.
// A fresh Lexer re-scans from the start of the text; there is no cursor
// shared across Lexer values.
type Lexer struct {
	src   string
	start int // start index of current token
	cur   int // current index
	line  int
	col   int

	// precise token start position
	tokStartLine int
	tokStartCol  int
}

// NewLexer creates a new lexer for the given data block.
func NewLexer(src string) *Lexer {
	return &Lexer{
		src:  src,
		line: 1,
		col:  0,
	}
}

func (l *Lexer) isAtEnd() bool { return l.cur >= len(l.src) }

func (l *Lexer) peek() (byte, bool) {
	if l.isAtEnd() {
		return 0, false
	}
	return l.src[l.cur], true
}

func (l *Lexer) peekN(n int) (byte, bool) {
	idx := l.cur + n
	if idx >= len(l.src) {
		return 0, false
	}
	return l.src[idx], true
}

func (l *Lexer) advance() (byte, bool) {
	if l.isAtEnd() {
		return 0, false
	}
	ch := l.src[l.cur]
	l.cur++
	if ch == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}
	return ch, true
}

func (l *Lexer) rewindToStart() {
	// Rewind stays within the current token; line/col must back up with
	// the cursor or re-scanning the byte would count it twice.
	l.cur = l.start
	l.line = l.tokStartLine
	l.col = l.tokStartCol
}

func (l *Lexer) token(tt TokenType, val float64) Token {
	tok := Token{
		Type:   tt,
		Lexeme: l.src[l.start:l.cur],
		Value:  val,
		Line:   l.tokStartLine,
		Col:    l.tokStartCol,
	}
	l.start = l.cur
	return tok
}

// skipSeparators consumes the whitespace/comma runs between tokens.
func (l *Lexer) skipSeparators() {
	for !l.isAtEnd() {
		ch, _ := l.peek()
		switch ch {
		case ' ', '\r', '\n', '\t', ',':
			l.advance()
			l.start = l.cur
		default:
			return
		}
	}
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func (l *Lexer) err(kind DiagKind, msg string) error {
	return &Error{Kind: kind, Line: l.tokStartLine, Col: l.tokStartCol, Msg: msg}
}

// scanNumber parses [-+]? digits ('.' digits)? exponent?, also accepting
// the .5 and 1. spellings.
func (l *Lexer) scanNumber() (float64, error) {
	if b, ok := l.peek(); ok && (b == '-' || b == '+') {
		l.advance()
	}

	sawDigits := false
	for {
		b, ok := l.peek()
		if !ok || !isDigit(b) {
			break
		}
		l.advance()
		sawDigits = true
	}

	// decimal point with optional digits
	if b, ok := l.peek(); ok && b == '.' {
		if sawDigits {
			l.advance()
			for {
				b, ok := l.peek()
				if !ok || !isDigit(b) {
					break
				}
				l.advance()
			}
		} else if b2, ok2 := l.peekN(1); ok2 && isDigit(b2) {
			l.advance()
			for {
				b, ok := l.peek()
				if !ok || !isDigit(b) {
					break
				}
				l.advance()
			}
			sawDigits = true
		}
	}

	// exponent; backtrack if 'e' is not followed by digits
	if b, ok := l.peek(); ok && (b == 'e' || b == 'E') {
		save := l.cur
		saveCol := l.col
		l.advance()
		if b2, ok := l.peek(); ok && (b2 == '+' || b2 == '-') {
			l.advance()
		}
		if b3, ok := l.peek(); ok && isDigit(b3) {
			for {
				b4, ok := l.peek()
				if !ok || !isDigit(b4) {
					break
				}
				l.advance()
			}
		} else {
			l.cur = save
			l.col = saveCol
		}
	}

	if !sawDigits {
		return 0, l.err(DiagLex, "malformed number")
	}

	lex := l.src[l.start:l.cur]
	v, convErr := strconv.ParseFloat(lex, 64)
	if convErr != nil {
		return 0, l.err(DiagFormat, fmt.Sprintf("unparsable numeric literal %q", lex))
	}
	return v, nil
}

// Next scans and returns the next token. The stream ends with one EOF
// token; calling Next past EOF keeps returning EOF.
func (l *Lexer) Next() (Token, error) {
	l.skipSeparators()
	l.tokStartLine = l.line
	l.tokStartCol = l.col
	l.start = l.cur

	if l.isAtEnd() {
		return l.token(EOF, 0), nil
	}

	ch, _ := l.advance()
	switch ch {
	case '{':
		return l.token(LBRACE, 0), nil
	case '}':
		return l.token(RBRACE, 0), nil
	}

	if isDigit(ch) || ch == '-' || ch == '+' || ch == '.' {
		l.rewindToStart()
		v, err := l.scanNumber()
		if err != nil {
			return Token{}, err
		}
		return l.token(NUMBER, v), nil
	}

	return Token{}, l.err(DiagLex, fmt.Sprintf("unexpected character: %q", ch))
}

// Scan tokenizes the entire data block and returns tokens (EOF included).
func (l *Lexer) Scan() ([]Token, error) {
	var tokens []Token
	for {
		tok, err := l.Next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Type == EOF {
			return tokens, nil
		}
	}
}
