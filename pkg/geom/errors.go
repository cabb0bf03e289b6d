package geom

import "fmt"

// InvalidParameterError reports a single numeric input outside its domain
// (non-positive radius, too few polygon sides, negative depth). Generators
// raise it before any computation happens; no partial result is ever built.
type InvalidParameterError struct {
	Param  string
	Value  float64
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s=%v: %s", e.Param, e.Value, e.Reason)
}

// ConfigurationError reports internally inconsistent composition inputs,
// such as parallel parameter lists of differing lengths.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return "configuration error: " + e.Message
}

// UnsupportedShapeError reports a name-based shape lookup that failed to
// resolve against the registry.
type UnsupportedShapeError struct {
	Name string
}

func (e *UnsupportedShapeError) Error() string {
	return fmt.Sprintf("unsupported shape type %q", e.Name)
}

// DegenerateGeometryError reports a configuration that is numerically valid
// but geometrically impossible, e.g. vesica circles too far apart to
// intersect. Detected after enough computation to know it is impossible.
type DegenerateGeometryError struct {
	Message string
}

func (e *DegenerateGeometryError) Error() string {
	return "degenerate geometry: " + e.Message
}

// ---------------------------------------------------------------------------
// Eager parameter checks shared by the generator packages
// ---------------------------------------------------------------------------

// CheckPositive returns an InvalidParameterError if value <= 0.
func CheckPositive(param string, value float64) error {
	if value <= 0 {
		return &InvalidParameterError{Param: param, Value: value, Reason: "must be strictly positive"}
	}
	return nil
}

// CheckMin returns an InvalidParameterError if value < min.
func CheckMin(param string, value, min float64) error {
	if value < min {
		return &InvalidParameterError{
			Param:  param,
			Value:  value,
			Reason: fmt.Sprintf("must be at least %v", min),
		}
	}
	return nil
}
