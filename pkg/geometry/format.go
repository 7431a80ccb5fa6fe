package geometry

import (
	"fmt"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
)

const banner = "========================================================="

// FormatVector formats a 3D vector
func FormatVector(v r3.Vector) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}

// FormatPoint formats a 2D point
func FormatPoint(p r2.Point) string {
	return fmt.Sprintf("(%.6f, %.6f)", p.X, p.Y)
}
