package textchunk

import (
	"errors"
	"strings"
	"testing"
)

func TestNewRejectsInvalidUTF8(t *testing.T) {
	_, err := New(string([]byte{0xff}))
	if !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("expected ErrInvalidUTF8, got %v", err)
	}
}

func TestNewRejectsOversizedText(t *testing.T) {
	_, err := New(strings.Repeat("a", MaxBase+1))
	if !errors.Is(err, ErrChunkTooLarge) {
		t.Fatalf("expected ErrChunkTooLarge, got %v", err)
	}
}

func TestSummarizeCountsBytesCharsLines(t *testing.T) {
	c, err := New("ab\ncd\n")
	if err != nil {
		t.Fatalf("unexpected New error: %v", err)
	}
	s := c.Summarize()
	if s.Bytes != 6 {
		t.Errorf("Bytes = %d, want 6", s.Bytes)
	}
	if s.Chars != 6 {
		t.Errorf("Chars = %d, want 6", s.Chars)
	}
	if s.Lines != 2 {
		t.Errorf("Lines = %d, want 2", s.Lines)
	}
}

func TestSummarizeCountsMultibyteChars(t *testing.T) {
	c, err := New("a😀b")
	if err != nil {
		t.Fatalf("unexpected New error: %v", err)
	}
	if c.Len() != 6 {
		t.Fatalf("unexpected byte len: %d", c.Len())
	}
	s := c.Summarize()
	if s.Chars != 3 {
		t.Errorf("Chars = %d, want 3", s.Chars)
	}
	if s.DisplayWidth == 0 {
		t.Errorf("expected non-zero display width")
	}
}
