package scroll

// MinLit is the dimmest level a lit pixel is shown at.
const MinLit = 5

// Jitter maps a random byte to the brightness of a lit pixel: b mod 10, with
// 0 through 5 collapsed onto MinLit. Six of the ten buckets land on MinLit so
// the shimmer stays biased towards mid brightness.
func Jitter(b uint8) uint8 {
	v := b % 10
	if v <= MinLit {
		return MinLit
	}
	return v
}
