package lexer

import (
	"testing"

	"github.com/wrkean/tolc/internal/token"
)

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestSingleAndMultiCharOperators(t *testing.T) {
	tests := []struct {
		src  string
		want []token.Kind
	}{
		{"+ - * /", []token.Kind{token.Plus, token.Minus, token.Star, token.Slash, token.Eof}},
		{"== != >= <= -> =>", []token.Kind{token.Eq, token.Neq, token.Gte, token.Lte, token.Arrow, token.FatArrow, token.Eof}},
		{".. ..= ::", []token.Kind{token.DotDot, token.DotDotEq, token.DoubleColon, token.Eof}},
		{"+= -= *= /= %=", []token.Kind{token.PlusAssign, token.MinusAssign, token.StarAssign, token.SlashAssign, token.PercentAssign, token.Eof}},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			got := kinds(New(tt.src).Tokenize())
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("token %d: got %s, want %s", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestKeywordVsIdentifier(t *testing.T) {
	toks := New("paraan ang maiba bagay x").Tokenize()
	want := []token.Kind{token.Paraan, token.Ang, token.Maiba, token.Bagay, token.Identifier, token.Eof}
	got := kinds(toks)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestUnicodeIdentifier(t *testing.T) {
	toks := New("ang bilang_ñg = 1;").Tokenize()
	if toks[1].Kind != token.Identifier || toks[1].Lexeme != "bilang_ñg" {
		t.Fatalf("expected unicode identifier, got %+v", toks[1])
	}
}

func TestNumericUnderscoresStripped(t *testing.T) {
	toks := New("1_000_000").Tokenize()
	if toks[0].Lexeme != "1000000" {
		t.Fatalf("got lexeme %q, want 1000000", toks[0].Lexeme)
	}
}

func TestFloatVsIntDisambiguation(t *testing.T) {
	toks := New("1.5 1..2").Tokenize()
	if toks[0].Kind != token.FloatLit {
		t.Fatalf("expected float literal, got %s", toks[0].Kind)
	}
	// 1..2 : the '.' only starts a decimal when followed by a digit; here
	// the second '.' makes it a range, so 1 is an IntLit.
	if toks[1].Kind != token.IntLit || toks[2].Kind != token.DotDot {
		t.Fatalf("expected IntLit then DotDot, got %s %s", toks[1].Kind, toks[2].Kind)
	}
}

func TestStringEscapes(t *testing.T) {
	toks := New(`"a\nb\t\"c\\"`).Tokenize()
	want := "a\nb\t\"c\\"
	if toks[0].Literal != want {
		t.Fatalf("got %q, want %q", toks[0].Literal, want)
	}
}

func TestByteStringVsIdentifier(t *testing.T) {
	toks := New(`b"hi" bravo`).Tokenize()
	if toks[0].Kind != token.ByteStringLit {
		t.Fatalf("expected byte-string literal, got %s", toks[0].Kind)
	}
	if toks[1].Kind != token.Identifier || toks[1].Lexeme != "bravo" {
		t.Fatalf("expected plain identifier 'bravo', got %+v", toks[1])
	}
}

func TestAutomaticSemicolonInference(t *testing.T) {
	toks := New("ang x: i32 = 12\nibalik x").Tokenize()
	found := false
	for _, tk := range toks {
		if tk.Kind == token.SemiColon {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a synthesized semicolon after newline, got %v", kinds(toks))
	}
}

func TestEofTerminatesExactlyOnce(t *testing.T) {
	toks := New("ang x = 1;").Tokenize()
	count := 0
	for i, tk := range toks {
		if tk.Kind == token.Eof {
			count++
			if i != len(toks)-1 {
				t.Fatalf("Eof not last token")
			}
		}
	}
	if count != 1 {
		t.Fatalf("expected exactly one Eof, got %d", count)
	}
}

func TestInvalidCharacter(t *testing.T) {
	l := New("ang x = ~;")
	toks := l.Tokenize()
	if len(l.Errors) == 0 {
		t.Fatalf("expected an invalid-character diagnostic")
	}
	foundIllegal := false
	for _, tk := range toks {
		if tk.Kind == token.Illegal {
			foundIllegal = true
		}
	}
	if !foundIllegal {
		t.Fatalf("expected an ILLEGAL token for '~'")
	}
}
