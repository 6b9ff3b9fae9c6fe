package app

import (
	"fmt"
	"strings"

	"shimmer/hal"
	"shimmer/kernel"
	"shimmer/matrix"
)

// haltImage is shown when the firmware halts on a setup defect.
var haltImage = func() matrix.Image {
	var img matrix.Image
	for i := 0; i < matrix.Rows; i++ {
		img[i][i] = matrix.MaxBrightness
		img[i][matrix.Cols-1-i] = matrix.MaxBrightness
	}
	return img
}()

func installPanicHandler(l hal.Logger, p *kernel.Peripherals) {
	kernel.SetPanicHandler(func(info kernel.PanicInfo) {
		if l != nil {
			l.WriteLineString(fmt.Sprintf("shimmer halt: %v", info.Value))
			for _, line := range strings.Split(string(info.Stack), "\n") {
				if line == "" {
					continue
				}
				l.WriteLineString(line)
			}
		}

		if !p.Display.Installed() {
			return
		}
		img := haltImage
		p.Display.With(func(m hal.Matrix) { m.Show(&img) })
	})
}
