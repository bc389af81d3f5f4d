package stream

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/npillmayer/pcomb"
	"github.com/npillmayer/pcomb/comb"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestRunesKeywords(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcomb.stream")
	defer teardown()
	//
	for _, test := range []struct {
		input string
		kw    string
		rest  string
	}{
		{input: "letter", kw: "letter", rest: ""},
		{input: "let x", kw: "let", rest: " x"},
		{input: "lambda", kw: "lambda", rest: ""},
	} {
		s := FromString(test.input)
		var stream comb.Stream[Char] = s
		kw, err := comb.Choose(stream, Keyword("letter"), Keyword("let"), Keyword("lambda"))
		if err != nil {
			t.Errorf("%q: unexpected error: %v", test.input, err)
			continue
		}
		if kw != test.kw {
			t.Errorf("%q: expected keyword %q, have %q", test.input, test.kw, kw)
		}
		if s.Rest() != test.rest {
			t.Errorf("%q: expected rest %q, have %q", test.input, test.rest, s.Rest())
		}
		if s.Depth() != 0 {
			t.Errorf("%q: expected all checkpoints to be released, %d left", test.input, s.Depth())
		}
	}
}

func TestRunesErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcomb.stream")
	defer teardown()
	//
	var stream comb.Stream[Char] = FromString("lex", Named("source"))
	_, err := Keyword("let")(stream)
	if err == nil || err.Error() != `source:1:4: unexpected token 'x', expected 't'` {
		t.Errorf("unexpected error %v", err)
	}
	stream = FromString("if")
	_, err = comb.Choose(stream, Keyword("let"), Keyword("lambda"))
	if err == nil || err.Error() != `1:1: unexpected token 'i'` {
		t.Errorf("unexpected error %v", err)
	}
}

func TestRunesPositions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcomb.stream")
	defer teardown()
	//
	s := FromString("ab\ncd")
	var stream comb.Stream[Char] = s
	s.Consume()
	if pos := stream.CurrentPos(); pos != (pcomb.Pos{Line: 1, Column: 2}) {
		t.Errorf("expected position 1:2, is %s", pos)
	}
	_, err := comb.Try(stream, func(s comb.Stream[Char]) (string, error) {
		return comb.StringAs(s, Chars("b\ncX"), AsText())
	})
	if err == nil {
		t.Fatalf("expected attempt to fail")
	}
	if pos := stream.CurrentPos(); pos != (pcomb.Pos{Line: 1, Column: 2}) {
		t.Errorf("expected position to be restored to 1:2, is %s", pos)
	}
	text, err := comb.StringAs(stream, Chars("b\nc"), AsText())
	if err != nil {
		t.Fatal(err)
	}
	if text != "b\nc" {
		t.Errorf("expected text %q, have %q", "b\nc", text)
	}
	if pos := stream.CurrentPos(); pos != (pcomb.Pos{Line: 2, Column: 2}) {
		t.Errorf("expected position 2:2, is %s", pos)
	}
	if s.Offset() != 4 {
		t.Errorf("expected offset 4, is %d", s.Offset())
	}
}

func TestRunesMany(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcomb.stream")
	defer teardown()
	//
	digit := comb.Satisfy(func(c Char) bool { return c >= '0' && c <= '9' })
	var stream comb.Stream[Char] = FromString("2022-10")
	year, err := comb.Many1As(stream, digit, AsText())
	if err != nil {
		t.Fatal(err)
	}
	if year != "2022" {
		t.Errorf("expected year 2022, have %q", year)
	}
	comb.Optional(stream, comb.Expect(Char('-')))
	month, _ := comb.ManyAs(stream, digit, AsText())
	if month != "10" {
		t.Errorf("expected month 10, have %q", month)
	}
	if _, ok := stream.Preview(); ok {
		t.Errorf("expected input to be exhausted")
	}
}

func TestRunesFromReader(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcomb.stream")
	defer teardown()
	//
	s, err := FromReader(strings.NewReader("xy"))
	if err != nil {
		t.Fatal(err)
	}
	if s.Rest() != "xy" {
		t.Errorf("expected input %q, have %q", "xy", s.Rest())
	}
	failure := errors.New("disk on fire")
	_, err = FromReader(iotest.ErrReader(failure))
	if !errors.Is(err, failure) {
		t.Errorf("expected read error to be wrapped, have %v", err)
	}
}
