package inisrc

import (
	"strings"
	"testing"

	"logtap/src/pkg/iniparse"
)

func TestStringSourceYieldsEOIForever(t *testing.T) {
	src := StringSource("ab")
	want := []int{'a', 'b', -1, -1}
	for i, w := range want {
		if got := src(); got != w {
			t.Fatalf("byte %d: got %d, want %d", i, got, w)
		}
	}
}

func TestBoundedSourceMatchesStringSource(t *testing.T) {
	src := BoundedSource([]byte("xy"))
	if got := src(); got != 'x' {
		t.Fatalf("got %d, want 'x'", got)
	}
	if got := src(); got != 'y' {
		t.Fatalf("got %d, want 'y'", got)
	}
	if got := src(); got != -1 {
		t.Fatalf("got %d, want EOI", got)
	}
}

func TestReaderSourceDrivesParseFunc(t *testing.T) {
	var n uint32
	m := iniparse.SelectFunc(func(ctx *iniparse.Context) bool {
		if ctx.KeyIs("k") {
			ctx.MapUnsigned(&n, iniparse.MinUnsigned, iniparse.MaxUnsigned)
		}
		return true
	})
	r := strings.NewReader("[A]\nk = 7\n")
	if _, err := iniparse.ParseFunc(ReaderSource(r), m, 16); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 7 {
		t.Fatalf("expected 7, got %d", n)
	}
}
