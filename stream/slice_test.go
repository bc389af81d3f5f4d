package stream

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/pcomb"
	"github.com/npillmayer/pcomb/comb"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestSliceChoose(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcomb.stream")
	defer teardown()
	//
	s := FromSlice([]int{4, 5, 6, 7, 8, 9, 10})
	var stream comb.Stream[int] = s
	r, err := comb.Choose(stream, comb.Literal(1, 2, 3), comb.Literal(4, 5, 6, 8), comb.Literal(4, 5, 6))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{4, 5, 6}, r); diff != "" {
		t.Errorf("result mismatch (-want +got):\n%s", diff)
	}
	if s.Offset() != 3 {
		t.Errorf("expected cursor at 3, is at %d", s.Offset())
	}
	if s.Remaining() != 4 {
		t.Errorf("expected 4 tokens left, have %d", s.Remaining())
	}
	if s.Depth() != 0 {
		t.Errorf("expected all checkpoints to be released, %d left", s.Depth())
	}
}

func TestSliceNestedAttempts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcomb.stream")
	defer teardown()
	//
	s := FromSlice([]int{1, 2, 3, 4})
	var stream comb.Stream[int] = s
	_, err := comb.Try(stream, func(s comb.Stream[int]) (int, error) {
		comb.Atom(s, 1)
		comb.Try(s, comb.Literal(2, 9))
		comb.Try(s, comb.Literal(2, 3))
		return comb.Atom(s, 9)
	})
	if err == nil {
		t.Fatalf("expected attempt to fail")
	}
	if s.Offset() != 0 {
		t.Errorf("expected cursor to be rolled back to 0, is at %d", s.Offset())
	}
	if s.Depth() != 0 {
		t.Errorf("expected all checkpoints to be released, %d left", s.Depth())
	}
}

func TestSliceErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcomb.stream")
	defer teardown()
	//
	var stream comb.Stream[int] = FromSlice([]int{1, 2, 3})
	_, err := comb.String(stream, []int{1, 9})
	if err == nil || err.Error() != "1:3: unexpected token 2, expected 9" {
		t.Errorf("unexpected error %v", err)
	}
	e, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected error of type *Error, is %T", err)
	}
	if e.Pos != (pcomb.Pos{Line: 1, Column: 3}) {
		t.Errorf("expected error at 1:3, is at %s", e.Pos)
	}
	stream = FromSlice([]int{}, Named("numbers"))
	_, err = comb.Next(stream)
	if err == nil || err.Error() != "numbers:1:1: unexpected end of input" {
		t.Errorf("unexpected error %v", err)
	}
}

func TestSliceWithPositions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcomb.stream")
	defer teardown()
	//
	rows := func(offset int) pcomb.Pos {
		return pcomb.Pos{Line: offset/2 + 1, Column: offset%2 + 1}
	}
	var stream comb.Stream[int] = FromSlice([]int{1, 2, 3, 4}, Named("grid"), WithPositions(rows))
	comb.Many(stream, comb.Satisfy(func(x int) bool { return x < 4 }))
	if pos := stream.CurrentPos(); pos != (pcomb.Pos{Line: 2, Column: 2}) {
		t.Errorf("expected position 2:2, is %s", pos)
	}
	_, err := comb.Atom(stream, 5)
	if err == nil || err.Error() != "grid:3:1: unexpected token 4, expected 5" {
		t.Errorf("unexpected error %v", err)
	}
}

func TestSliceLoadWithoutSave(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcomb.stream")
	defer teardown()
	//
	s := FromSlice([]int{1, 2})
	s.Consume()
	s.Load()
	s.Commit()
	if s.Offset() != 1 {
		t.Errorf("expected cursor to stay at 1, is at %d", s.Offset())
	}
}

func TestErrorFormat(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcomb.stream")
	defer teardown()
	//
	for _, test := range []struct {
		err  *Error
		want string
	}{
		{&Error{Msg: "oops"}, "oops"},
		{&Error{Source: "in", Msg: "oops"}, "in: oops"},
		{&Error{Pos: pcomb.Pos{Line: 2, Column: 7}, Msg: "oops"}, "2:7: oops"},
		{&Error{Source: "in", Pos: pcomb.Pos{Line: 2, Column: 7}, Msg: "oops"}, "in:2:7: oops"},
	} {
		if test.err.Error() != test.want {
			t.Errorf("expected %q, have %q", test.want, test.err.Error())
		}
	}
}
