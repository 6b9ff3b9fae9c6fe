//go:build tinygo

package main

import (
	"shimmer/app"
	"shimmer/hal"
)

func main() {
	app.Run(hal.New())
}
