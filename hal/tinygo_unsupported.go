//go:build tinygo && !microbit_v2

package hal

// New panics: the firmware only knows the micro:bit v2 LED matrix wiring.
func New() HAL {
	panic("hal: unsupported board, build with -target=microbit-v2")
}
