package matrix

import "testing"

func TestScannerDutyCycleMatchesLevel(t *testing.T) {
	var img Image
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			img[r][c] = uint8((r*Cols + c) % (MaxBrightness + 1))
		}
	}

	var s Scanner
	s.Show(&img)

	var on Image
	for i := 0; i < AdvancesPerFrame; i++ {
		row, cols, done := s.Advance()
		for c, lit := range cols {
			if lit {
				on[row][c]++
			}
		}
		if done != (i == AdvancesPerFrame-1) {
			t.Fatalf("advance %d frameDone = %v", i, done)
		}
	}
	if on != img {
		t.Fatalf("on-time per pixel:\n%swant:\n%s", on.String(), img.String())
	}
	if s.Frames() != 1 {
		t.Fatalf("Frames() = %d, want 1", s.Frames())
	}
}

func TestScannerLatchesAtFrameStart(t *testing.T) {
	var a, b Image
	a.Fill(3)
	b.Fill(8)

	var s Scanner
	s.Show(&a)
	s.Advance()

	// A publish in the middle of a frame must not change the frame being drawn.
	s.Show(&b)
	for i := 1; i < AdvancesPerFrame; i++ {
		s.Advance()
		if s.Latched() != a {
			t.Fatalf("latched image changed mid-frame at advance %d", i)
		}
	}

	s.Advance()
	if s.Latched() != b {
		t.Fatal("expected new image latched at next frame start")
	}
}
