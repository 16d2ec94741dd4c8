package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenColors(t *testing.T) {
	s := NewScreen(10, 2)
	s.DrawTextColored(1, 1, "2048", ColorOrange)

	for i, ch := range "2048" {
		cell := s.GetCell(1+i, 1)
		if cell.Rune != ch || cell.Color != ColorOrange {
			t.Errorf("GetCell(%d, 1) = %+v, expected %q in orange", 1+i, cell, ch)
		}
	}

	s.Clear()
	if c := s.GetCell(1, 1); c.Color != ColorDefault || c.Rune != ' ' {
		t.Errorf("Clear should reset color, got %+v", c)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")

	for i, ch := range "Hello" {
		if s.Get(2+i, 1) != ch {
			t.Errorf("DrawText: expected %q at (%d, 1), got %q", ch, 2+i, s.Get(2+i, 1))
		}
	}

	// Only "He" fits
	s.DrawText(18, 0, "Hello")
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi")

	x := (20 - 2) / 2
	if s.Get(x, 2) != 'H' || s.Get(x+1, 2) != 'i' {
		t.Errorf("DrawTextCentered failed, text not at expected position")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4))

	corners := []struct {
		x, y int
		r    rune
	}{
		{1, 1, '┌'},
		{5, 1, '┐'},
		{1, 4, '└'},
		{5, 4, '┘'},
	}
	for _, c := range corners {
		if got := s.Get(c.x, c.y); got != c.r {
			t.Errorf("corner (%d, %d) = %q, expected %q", c.x, c.y, got, c.r)
		}
	}
	if s.Get(3, 1) != '─' || s.Get(1, 2) != '│' {
		t.Error("DrawBox edges not drawn")
	}
	if s.Get(3, 2) != ' ' {
		t.Error("DrawBox should not fill the interior")
	}
}

func TestScreenFillRect(t *testing.T) {
	s := NewScreen(6, 6)
	s.FillRect(NewRect(1, 1, 2, 2), '#')

	if s.Get(1, 1) != '#' || s.Get(2, 2) != '#' {
		t.Error("FillRect did not fill the area")
	}
	if s.Get(3, 3) != ' ' {
		t.Error("FillRect should not affect outside area")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "abc")
	s.DrawText(0, 1, "xyz")

	if got := s.String(); got != "abc\nxyz" {
		t.Errorf("String() = %q, expected %q", got, "abc\nxyz")
	}
	if got := s.Row(1); got != "xyz" {
		t.Errorf("Row(1) = %q, expected %q", got, "xyz")
	}
	if got := s.Row(5); got != strings.Repeat(" ", 3) {
		t.Errorf("Row(5) = %q, expected blanks", got)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(4, 4)
	s.Set(1, 1, 'X')
	s.Resize(8, 2)

	if s.Width() != 8 || s.Height() != 2 {
		t.Fatalf("Resize: got %dx%d, expected 8x2", s.Width(), s.Height())
	}
	if s.Get(1, 1) != ' ' {
		t.Error("Resize should clear the buffer")
	}
}
