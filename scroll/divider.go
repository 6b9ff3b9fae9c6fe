package scroll

// Divider turns the clock tick rate into the scroll rate: it fires on every
// Threshold-th tick and starts counting again from zero.
type Divider struct {
	Threshold uint8
	count     uint8
}

// Tick counts one tick and reports whether the threshold was reached.
func (d *Divider) Tick() bool {
	d.count++
	if d.count < d.Threshold {
		return false
	}
	d.count = 0
	return true
}

// Count returns the ticks accumulated since the divider last fired.
func (d *Divider) Count() uint8 { return d.count }
