package scanner

import (
	"errors"
	"fmt"
	"strconv"
	"unicode/utf8"
)

var (
	ErrUnterminatedString = errors.New("unterminated string")
	ErrUnexpectedChar     = errors.New("unexpected character")
)

// Error is a lexical error at a source position.
type Error struct {
	Pos Pos
	Err error
	Sym string
}

func (e *Error) Error() string {
	if e.Sym != "" {
		return fmt.Sprintf("[line %d:%d] Error: %s %q.", e.Pos.Line, e.Pos.Col, e.Err, e.Sym)
	}
	return fmt.Sprintf("[line %d:%d] Error: %s.", e.Pos.Line, e.Pos.Col, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Scanner splits Lox source into tokens. Errors are collected and scanning
// continues, so one pass reports every lexical problem.
type Scanner struct {
	src    string
	start  int
	offset int
	line   int
	lineAt int

	tokens []Token
	errs   []error
}

func New(src string) *Scanner {
	return &Scanner{src: src, line: 1}
}

// Scan returns all tokens, always terminated by an EOF token, and the lexical
// errors in source order.
func Scan(src string) ([]Token, []error) {
	return New(src).Scan()
}

func (s *Scanner) Scan() ([]Token, []error) {
	for !s.atEnd() {
		s.start = s.offset
		s.next()
	}
	s.start = s.offset
	s.tokens = append(s.tokens, Token{Kind: EOF, Pos: s.pos(s.offset)})
	return s.tokens, s.errs
}

func (s *Scanner) atEnd() bool { return s.offset >= len(s.src) }

func (s *Scanner) pos(offset int) Pos {
	return Pos{Line: s.line, Col: 1 + utf8.RuneCountInString(s.src[s.lineAt:offset])}
}

func (s *Scanner) advance() rune {
	r, size := utf8.DecodeRuneInString(s.src[s.offset:])
	s.offset += size
	return r
}

func (s *Scanner) peek() byte {
	if s.atEnd() {
		return 0
	}
	return s.src[s.offset]
}

func (s *Scanner) peekNext() byte {
	if s.offset+1 >= len(s.src) {
		return 0
	}
	return s.src[s.offset+1]
}

func (s *Scanner) match(c byte) bool {
	if s.peek() != c {
		return false
	}
	s.offset++
	return true
}

func (s *Scanner) newline() {
	s.line++
	s.lineAt = s.offset
}

func (s *Scanner) emit(kind Kind, literal any) {
	s.tokens = append(s.tokens, Token{
		Kind:    kind,
		Lexeme:  s.src[s.start:s.offset],
		Literal: literal,
		Pos:     s.pos(s.start),
	})
}

func (s *Scanner) fail(pos Pos, err error, sym string) {
	s.errs = append(s.errs, &Error{Pos: pos, Err: err, Sym: sym})
}

func (s *Scanner) either(c byte, two, one Kind) {
	if s.match(c) {
		s.emit(two, nil)
		return
	}
	s.emit(one, nil)
}

func (s *Scanner) next() {
	r := s.advance()
	switch r {
	case ' ', '\t', '\r':
	case '\n':
		s.newline()
	case '(':
		s.emit(LeftParen, nil)
	case ')':
		s.emit(RightParen, nil)
	case '-':
		s.emit(Minus, nil)
	case '+':
		s.emit(Plus, nil)
	case '*':
		s.emit(Star, nil)
	case '!':
		s.either('=', BangEqual, Bang)
	case '=':
		s.either('=', EqualEqual, Equal)
	case '<':
		s.either('=', LessEqual, Less)
	case '>':
		s.either('=', GreaterEqual, Greater)
	case '/':
		if s.match('/') {
			for s.peek() != '\n' && !s.atEnd() {
				s.offset++
			}
			return
		}
		s.emit(Slash, nil)
	case '"':
		s.scanString()
	default:
		switch {
		case isDigit(r):
			s.number()
		case isAlpha(r):
			s.identifier()
		default:
			s.fail(s.pos(s.start), ErrUnexpectedChar, string(r))
		}
	}
}

func (s *Scanner) scanString() {
	startPos := s.pos(s.start)
	for s.peek() != '"' && !s.atEnd() {
		if s.advance() == '\n' {
			s.newline()
		}
	}
	if s.atEnd() {
		s.fail(startPos, ErrUnterminatedString, "")
		return
	}
	s.offset++ // closing quote

	s.tokens = append(s.tokens, Token{
		Kind:    String,
		Lexeme:  s.src[s.start:s.offset],
		Literal: s.src[s.start+1 : s.offset-1],
		Pos:     startPos,
	})
}

func (s *Scanner) number() {
	for isDigit(rune(s.peek())) {
		s.offset++
	}
	if s.peek() == '.' && isDigit(rune(s.peekNext())) {
		s.offset++
		for isDigit(rune(s.peek())) {
			s.offset++
		}
	}
	v, err := strconv.ParseFloat(s.src[s.start:s.offset], 64)
	if err != nil {
		s.fail(s.pos(s.start), err, s.src[s.start:s.offset])
		return
	}
	s.emit(Number, v)
}

func (s *Scanner) identifier() {
	for isAlpha(rune(s.peek())) || isDigit(rune(s.peek())) {
		s.offset++
	}
	if kind, ok := keywords[s.src[s.start:s.offset]]; ok {
		s.emit(kind, nil)
		return
	}
	s.emit(Identifier, nil)
}

func isDigit(r rune) bool { return '0' <= r && r <= '9' }

func isAlpha(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || r == '_'
}
