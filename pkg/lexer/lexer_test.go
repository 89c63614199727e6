package lexer

import (
	"strings"
	"testing"
)

func tokens(t *testing.T, src string) []Token {
	t.Helper()
	l, err := New(strings.NewReader(src))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	var out []Token
	out = append(out, l.Current())
	for l.Current().Tag != Eof {
		tok, err := l.Next()
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		out = append(out, tok)
	}
	return out
}

func tagsOf(toks []Token) []Tag {
	tags := make([]Tag, len(toks))
	for i, tok := range toks {
		tags[i] = tok.Tag
	}
	return tags
}

func assertTags(t *testing.T, got []Token, want []Tag) {
	t.Helper()
	gotTags := tagsOf(got)
	if len(gotTags) != len(want) {
		t.Fatalf("tag count mismatch: got %v, want %v", gotTags, want)
	}
	for i := range want {
		if gotTags[i] != want[i] {
			t.Fatalf("token %d: got %s, want %s (full: %v)", i, gotTags[i], want[i], gotTags)
		}
	}
}

func TestLexHelloProgram(t *testing.T) {
	toks := tokens(t, `print "hello"`+"\n")
	assertTags(t, toks, []Tag{Print, String, Newline, Eof})
	if toks[1].StrValue != "hello" {
		t.Fatalf("expected string payload %q, got %q", "hello", toks[1].StrValue)
	}
}

func TestLexIndentDedentBalance(t *testing.T) {
	src := "if True:\n  print 1\nprint 2\n"
	toks := tokens(t, src)
	assertTags(t, toks, []Tag{
		If, True, Char, Newline,
		Indent, Print, Number, Newline,
		Dedent, Print, Number, Newline,
		Eof,
	})
}

func TestLexNestedIndentEmitsMultipleDedents(t *testing.T) {
	src := "if True:\n  if True:\n    print 1\nprint 2\n"
	toks := tokens(t, src)
	assertTags(t, toks, []Tag{
		If, True, Char, Newline,
		Indent, If, True, Char, Newline,
		Indent, Print, Number, Newline,
		Dedent, Dedent, Print, Number, Newline,
		Eof,
	})
}

func TestLexCommentsAndBlankLinesCollapseToOneNewline(t *testing.T) {
	src := "print 1\n\n# a comment\n\nprint 2\n"
	toks := tokens(t, src)
	assertTags(t, toks, []Tag{Print, Number, Newline, Print, Number, Newline, Eof})
}

func TestLexTrailingNewlineSyntheticWhenMissing(t *testing.T) {
	toks := tokens(t, `print 1`)
	assertTags(t, toks, []Tag{Print, Number, Newline, Eof})
}

func TestLexStringEscapes(t *testing.T) {
	toks := tokens(t, `print "a\nb\tc\\d"`+"\n")
	if toks[1].StrValue != "a\nb\tc\\d" {
		t.Fatalf("unexpected decoded string %q", toks[1].StrValue)
	}
}

func TestLexStringSingleQuoteDelimiter(t *testing.T) {
	toks := tokens(t, `print 'hi'`+"\n")
	if toks[1].Tag != String || toks[1].StrValue != "hi" {
		t.Fatalf("unexpected token %v", toks[1])
	}
}

func TestLexComparisonOperators(t *testing.T) {
	toks := tokens(t, "a == b != c <= d >= e < f > g\n")
	assertTags(t, toks, []Tag{
		Id, Eq, Id, NotEq, Id, LessOrEq, Id, GreaterOrEq, Id, Char, Id, Char, Id, Newline, Eof,
	})
}

func TestLexKeywordsAndIdentifiers(t *testing.T) {
	toks := tokens(t, "class return if else def print and or not None True False foo_bar\n")
	assertTags(t, toks, []Tag{
		Class, Return, If, Else, Def, Print, And, Or, Not, None, True, False, Id, Newline, Eof,
	})
	if toks[12].StrValue != "foo_bar" {
		t.Fatalf("expected identifier foo_bar, got %q", toks[12].StrValue)
	}
}

func TestLexStructuralCharacters(t *testing.T) {
	toks := tokens(t, ".,:+-*/()\n")
	want := []byte{'.', ',', ':', '+', '-', '*', '/', '(', ')'}
	if len(toks) != len(want)+2 {
		t.Fatalf("unexpected token count: %v", toks)
	}
	for i, ch := range want {
		if toks[i].Tag != Char || toks[i].ChValue != ch {
			t.Fatalf("token %d: got %v, want Char(%q)", i, toks[i], ch)
		}
	}
}

func TestLexUnexpectedCharacterFails(t *testing.T) {
	l, err := New(strings.NewReader("@\n"))
	if err == nil {
		t.Fatalf("expected LexerError, got lexer %v", l)
	}
	if _, ok := err.(*LexerError); !ok {
		t.Fatalf("expected *LexerError, got %T", err)
	}
}

func TestExpectMismatchFails(t *testing.T) {
	l, err := New(strings.NewReader("print 1\n"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := l.Expect(Number); err == nil {
		t.Fatalf("expected mismatch error")
	}
	if _, err := l.Expect(Print); err != nil {
		t.Fatalf("Expect(Print): %v", err)
	}
}

func TestTokenEqual(t *testing.T) {
	if !numberTok(3).Equal(numberTok(3)) {
		t.Fatalf("expected equal number tokens")
	}
	if numberTok(3).Equal(numberTok(4)) {
		t.Fatalf("expected unequal number tokens")
	}
	if !simple(Print).Equal(simple(Print)) {
		t.Fatalf("expected equal simple tokens")
	}
	if !idTok("x").Equal(idTok("x")) {
		t.Fatalf("expected equal id tokens")
	}
	if idTok("x").Equal(idTok("y")) {
		t.Fatalf("expected unequal id tokens")
	}
}
