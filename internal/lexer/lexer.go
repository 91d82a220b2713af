// Package lexer scans Tol source text into a token stream (spec §4.2).
package lexer

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/wrkean/tolc/internal/diagnostics"
	"github.com/wrkean/tolc/internal/token"
)

// autoSemiKinds are the token kinds after which a newline implies a
// statement-terminating semicolon (spec §4.2).
var autoSemiKinds = map[token.Kind]bool{
	token.Identifier:    true,
	token.RParen:        true,
	token.RBracket:      true,
	token.IntLit:        true,
	token.FloatLit:      true,
	token.StringLit:     true,
	token.ByteStringLit: true,
}

// Lexer scans Module.source into Module.tokens, single-pass over rune
// positions. Identifier scanning follows Unicode UAX #31 XID_Start/
// XID_Continue; Go's unicode package has no dedicated XID tables (no
// ecosystem library in reach covers this either), so classification is
// built from unicode.IsLetter/IsDigit/Mn-Mc-Nd categories, the same
// approximation the lexer's sibling implementation in the broader Funxy
// tree uses for identifiers above the ASCII range.
type Lexer struct {
	input    string
	pos      int // byte offset of ch
	nextPos  int // byte offset just past ch
	ch       rune
	line     int
	column   int
	lastKind token.Kind
	haveLast bool
	Errors   []*diagnostics.Diagnostic
}

func New(input string) *Lexer {
	l := &Lexer{input: input, line: 1, column: 0}
	l.readRune()
	return l
}

func (l *Lexer) readRune() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}
	if l.nextPos >= len(l.input) {
		l.pos = len(l.input)
		l.ch = 0
		l.nextPos = len(l.input) + 1
		l.column++
		return
	}
	r, w := utf8.DecodeRuneInString(l.input[l.nextPos:])
	l.pos = l.nextPos
	l.ch = r
	l.nextPos += w
	l.column++
}

func (l *Lexer) peekRune() rune {
	if l.nextPos >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.nextPos:])
	return r
}

// Tokenize drains the lexer into a slice terminated by exactly one Eof
// token, as Module.tokens requires (spec §3's Module invariant).
func (l *Lexer) Tokenize() []token.Token {
	var toks []token.Token
	for {
		t := l.NextToken()
		toks = append(toks, t)
		if t.Kind == token.Eof {
			return toks
		}
	}
}

func (l *Lexer) remember(kind token.Kind) {
	l.lastKind = kind
	l.haveLast = true
}

func (l *Lexer) NextToken() token.Token {
	for {
		l.skipIntertokenSpace()

		if l.ch == '\n' {
			if l.haveLast && autoSemiKinds[l.lastKind] {
				line, col := l.line, l.column
				l.readRune()
				tok := token.Token{Kind: token.SemiColon, Lexeme: ";", Line: line, Column: col}
				l.remember(token.SemiColon)
				return tok
			}
			l.readRune()
			continue
		}
		break
	}

	line, col := l.line, l.column

	if l.ch == 0 {
		return l.emit(token.Eof, "", line, col)
	}

	if l.ch == 'b' && l.peekRune() == '"' {
		l.readRune() // consume 'b', now at '"'
		return l.scanByteString(line, col)
	}
	if isIdentStart(l.ch) {
		return l.scanIdentifier(line, col)
	}
	if unicode.IsDigit(l.ch) {
		return l.scanNumber(line, col)
	}

	switch l.ch {
	case '"':
		return l.scanString(line, col)
	case '(':
		return l.single(token.LParen, line, col)
	case ')':
		return l.single(token.RParen, line, col)
	case '{':
		return l.single(token.LBrace, line, col)
	case '}':
		return l.single(token.RBrace, line, col)
	case '[':
		return l.single(token.LBracket, line, col)
	case ']':
		return l.single(token.RBracket, line, col)
	case ',':
		return l.single(token.Comma, line, col)
	case ';':
		return l.single(token.SemiColon, line, col)
	case '@':
		return l.single(token.At, line, col)
	case '&':
		return l.single(token.Amp, line, col)
	case ':':
		if l.peekRune() == ':' {
			return l.double(token.DoubleColon, "::", line, col)
		}
		return l.single(token.Colon, line, col)
	case '.':
		if l.peekRune() == '.' {
			l.readRune() // consume second '.'
			if l.peekRune() == '=' {
				l.readRune() // consume '='
				l.readRune()
				return l.finish(token.DotDotEq, "..=", line, col)
			}
			l.readRune()
			return l.finish(token.DotDot, "..", line, col)
		}
		return l.single(token.Dot, line, col)
	case '-':
		if l.peekRune() == '>' {
			return l.double(token.Arrow, "->", line, col)
		}
		if l.peekRune() == '=' {
			return l.double(token.MinusAssign, "-=", line, col)
		}
		return l.single(token.Minus, line, col)
	case '+':
		if l.peekRune() == '=' {
			return l.double(token.PlusAssign, "+=", line, col)
		}
		return l.single(token.Plus, line, col)
	case '*':
		if l.peekRune() == '=' {
			return l.double(token.StarAssign, "*=", line, col)
		}
		return l.single(token.Star, line, col)
	case '/':
		if l.peekRune() == '=' {
			return l.double(token.SlashAssign, "/=", line, col)
		}
		return l.single(token.Slash, line, col)
	case '%':
		if l.peekRune() == '=' {
			return l.double(token.PercentAssign, "%=", line, col)
		}
		return l.single(token.Percent, line, col)
	case '!':
		if l.peekRune() == '=' {
			return l.double(token.Neq, "!=", line, col)
		}
		return l.single(token.Bang, line, col)
	case '?':
		return l.single(token.Question, line, col)
	case '=':
		if l.peekRune() == '=' {
			return l.double(token.Eq, "==", line, col)
		}
		if l.peekRune() == '>' {
			return l.double(token.FatArrow, "=>", line, col)
		}
		return l.single(token.Assign, line, col)
	case '>':
		if l.peekRune() == '=' {
			return l.double(token.Gte, ">=", line, col)
		}
		return l.single(token.Gt, line, col)
	case '<':
		if l.peekRune() == '=' {
			return l.double(token.Lte, "<=", line, col)
		}
		return l.single(token.Lt, line, col)
	default:
		bad := l.ch
		l.readRune()
		d := diagnostics.Newf(diagnostics.Error, line, col, "di-wasto na karakter: %q", bad)
		d.WithHelp("subukang alisin ang karakter na ito")
		l.Errors = append(l.Errors, d)
		l.remember(token.Illegal)
		return token.Token{Kind: token.Illegal, Lexeme: string(bad), Line: line, Column: col}
	}
}

func (l *Lexer) emit(kind token.Kind, lexeme string, line, col int) token.Token {
	l.remember(kind)
	return token.Token{Kind: kind, Lexeme: lexeme, Line: line, Column: col}
}

func (l *Lexer) single(kind token.Kind, line, col int) token.Token {
	lexeme := string(l.ch)
	l.readRune()
	return l.emit(kind, lexeme, line, col)
}

// double consumes the current rune and peeked rune, then advances past
// both to produce a two-character operator.
func (l *Lexer) double(kind token.Kind, lexeme string, line, col int) token.Token {
	l.readRune() // consume first char, now at second
	l.readRune() // consume second char, now past it
	return l.emit(kind, lexeme, line, col)
}

// finish is used by multi-step operators (.. / ..=) that already advanced
// past every character of the lexeme.
func (l *Lexer) finish(kind token.Kind, lexeme string, line, col int) token.Token {
	return l.emit(kind, lexeme, line, col)
}

func (l *Lexer) skipIntertokenSpace() {
	for {
		for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' {
			l.readRune()
		}
		if l.ch == '/' && l.peekRune() == '/' {
			for l.ch != '\n' && l.ch != 0 {
				l.readRune()
			}
			continue
		}
		return
	}
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentContinue(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Mc, r)
}

func (l *Lexer) scanIdentifier(line, col int) token.Token {
	start := l.pos
	for isIdentContinue(l.ch) {
		l.readRune()
	}
	lexeme := l.input[start:l.pos]
	kind := token.LookupIdent(lexeme)
	return l.emit(kind, lexeme, line, col)
}

func (l *Lexer) scanNumber(line, col int) token.Token {
	start := l.pos
	isFloat := false
	for unicode.IsDigit(l.ch) || l.ch == '_' {
		l.readRune()
	}
	if l.ch == '.' && unicode.IsDigit(l.peekRune()) {
		isFloat = true
		l.readRune() // '.'
		for unicode.IsDigit(l.ch) || l.ch == '_' {
			l.readRune()
		}
	}
	raw := l.input[start:l.pos]
	stripped := strings.ReplaceAll(raw, "_", "")

	if isFloat {
		v, err := strconv.ParseFloat(stripped, 64)
		if err != nil {
			d := diagnostics.Newf(diagnostics.Error, line, col, "hindi ma-parse ang float na '%s'", raw)
			l.Errors = append(l.Errors, d)
			return l.emit(token.FloatLit, stripped, line, col)
		}
		tok := l.emit(token.FloatLit, stripped, line, col)
		tok.Literal = v
		return tok
	}

	v, err := strconv.ParseInt(stripped, 10, 64)
	if err != nil {
		d := diagnostics.Newf(diagnostics.Error, line, col, "hindi ma-parse ang integer na '%s'", raw)
		l.Errors = append(l.Errors, d)
		return l.emit(token.IntLit, stripped, line, col)
	}
	tok := l.emit(token.IntLit, stripped, line, col)
	tok.Literal = v
	return tok
}

func (l *Lexer) decodeEscape() rune {
	l.readRune() // consume backslash, now at escape char
	switch l.ch {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	case '"':
		return '"'
	case '\\':
		return '\\'
	default:
		return l.ch
	}
}

func (l *Lexer) scanString(line, col int) token.Token {
	var b strings.Builder
	l.readRune() // consume opening '"'
	for {
		if l.ch == '"' {
			l.readRune()
			break
		}
		if l.ch == 0 {
			d := diagnostics.Newf(diagnostics.Error, line, col, "hindi natapos na string literal")
			l.Errors = append(l.Errors, d)
			break
		}
		if l.ch == '\\' {
			b.WriteRune(l.decodeEscape())
			l.readRune()
			continue
		}
		b.WriteRune(l.ch)
		l.readRune()
	}
	tok := l.emit(token.StringLit, b.String(), line, col)
	tok.Literal = b.String()
	return tok
}

func (l *Lexer) scanByteString(line, col int) token.Token {
	tok := l.scanString(line, col)
	tok.Kind = token.ByteStringLit
	l.remember(token.ByteStringLit)
	return tok
}
