package matrix

// Scanner sequences the greyscale row multiplexing of a matrix.
//
// Each call to Advance lights one row for one brightness phase: a pixel is on
// when its level is greater than the phase. A full frame is Rows×MaxBrightness
// advances. The pending image is latched at the start of each frame, so a
// frame is always drawn from a single published image.
type Scanner struct {
	pending Image
	latched Image
	row     int
	phase   int
	frames  uint64
}

// Show replaces the image that will be latched at the next frame start.
func (s *Scanner) Show(img *Image) {
	s.pending = *img
}

// Advance moves the scan forward by one phase and returns the row to drive,
// the column pattern for that row, and whether a frame just completed.
func (s *Scanner) Advance() (row int, cols [Cols]bool, frameDone bool) {
	if s.row == 0 && s.phase == 0 {
		s.latched = s.pending
	}

	row = s.row
	for c := 0; c < Cols; c++ {
		cols[c] = int(s.latched[row][c]) > s.phase
	}

	s.phase++
	if s.phase == MaxBrightness {
		s.phase = 0
		s.row++
		if s.row == Rows {
			s.row = 0
			s.frames++
			frameDone = true
		}
	}
	return row, cols, frameDone
}

// Latched returns the image of the frame currently being scanned.
func (s *Scanner) Latched() Image { return s.latched }

// Frames returns the number of completed frames.
func (s *Scanner) Frames() uint64 { return s.frames }

// AdvancesPerFrame is the number of Advance calls that draw one frame.
const AdvancesPerFrame = Rows * MaxBrightness
