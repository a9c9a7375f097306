package glm

import "golang.org/x/exp/constraints"

// Rad is an angle in radians.
type Rad float32

type numeric interface {
	constraints.Float | constraints.Integer
}
