package glm

import (
	"golang.org/x/mobile/exp/f32"
)

func FastSincos(r Rad) (sin, cos float32) {
	return FastSin(r), FastCos(r)
}

func FastSin(r Rad) float32 {
	return f32.Sin(float32(r))
}

func FastCos(r Rad) float32 {
	return f32.Cos(float32(r))
}
