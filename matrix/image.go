package matrix

const (
	// Rows and Cols are the dimensions of the LED matrix.
	Rows = 5
	Cols = 5

	// MaxBrightness is the brightest greyscale level. Level 0 is off.
	MaxBrightness = 9
)

// Image is a 5×5 greyscale frame indexed [row][col], row 0 at the top and
// column 0 at the left.
type Image [Rows][Cols]uint8

// Column is one vertical slice of an Image, indexed by row.
type Column [Rows]uint8

// Shift drops column 0, moves the remaining columns one step left and writes
// col into the rightmost column.
func (m *Image) Shift(col Column) {
	for r := 0; r < Rows; r++ {
		copy(m[r][:Cols-1], m[r][1:])
		m[r][Cols-1] = col[r]
	}
}

// Col returns column c.
func (m *Image) Col(c int) Column {
	var col Column
	for r := 0; r < Rows; r++ {
		col[r] = m[r][c]
	}
	return col
}

// Valid reports whether every level is within 0..MaxBrightness.
func (m *Image) Valid() bool {
	for r := range m {
		for _, v := range m[r] {
			if v > MaxBrightness {
				return false
			}
		}
	}
	return true
}

// Blank reports whether every pixel is off.
func (m *Image) Blank() bool {
	return *m == Image{}
}

// Fill sets every pixel to level, clamped to MaxBrightness.
func (m *Image) Fill(level uint8) {
	if level > MaxBrightness {
		level = MaxBrightness
	}
	for r := range m {
		for c := range m[r] {
			m[r][c] = level
		}
	}
}

// String renders the image as five lines of level digits, '.' for off.
func (m *Image) String() string {
	b := make([]byte, 0, Rows*(Cols+1))
	for r := range m {
		for _, v := range m[r] {
			if v == 0 {
				b = append(b, '.')
				continue
			}
			b = append(b, '0'+v)
		}
		b = append(b, '\n')
	}
	return string(b)
}
