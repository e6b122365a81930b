package vmath

import (
	"math"
)

// Sin/Cos tables scaled to Q32.32, one full turn across LUTSize entries
var (
	sinLUT [LUTSize]int64
	cosLUT [LUTSize]int64
)

func init() {
	for i := 0; i < LUTSize; i++ {
		rad := 2.0 * math.Pi * float64(i) / LUTSize
		sinLUT[i] = int64(math.Sin(rad) * ScaleF)
		cosLUT[i] = int64(math.Cos(rad) * ScaleF)
	}
}
