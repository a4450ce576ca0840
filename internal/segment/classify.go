package segment

import "fmt"

const (
	// DefaultNoiseFloor is the smallest pixel area kept as artwork.
	DefaultNoiseFloor = 50

	// DefaultFrameCoverage is the bounding-box coverage above which a
	// component is taken to be the enclosing frame.
	DefaultFrameCoverage = 0.5
)

// Class is the role assigned to a component.
type Class int

const (
	Foreground Class = iota
	Frame
	Noise
)

func (c Class) String() string {
	switch c {
	case Foreground:
		return "foreground"
	case Frame:
		return "frame"
	case Noise:
		return "noise"
	}
	return fmt.Sprintf("class(%d)", int(c))
}

// MarshalText encodes the class by name for JSON reports.
func (c Class) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText parses a class name written by MarshalText.
func (c *Class) UnmarshalText(text []byte) error {
	switch string(text) {
	case "foreground":
		*c = Foreground
	case "frame":
		*c = Frame
	case "noise":
		*c = Noise
	default:
		return fmt.Errorf("unknown class %q", text)
	}
	return nil
}

// Classifier separates artwork from frame and noise components.
type Classifier struct {
	// NoiseFloor is the minimum pixel area; smaller components are Noise.
	NoiseFloor int

	// FrameCoverage is the bounding-box coverage fraction (0-1) above which a
	// component is a Frame.
	FrameCoverage float64
}

// DefaultClassifier returns a classifier with the default thresholds.
func DefaultClassifier() Classifier {
	return Classifier{
		NoiseFloor:    DefaultNoiseFloor,
		FrameCoverage: DefaultFrameCoverage,
	}
}

// Coverage returns the component's bounding-box area divided by imageArea.
func Coverage(c Component, imageArea int) float64 {
	if imageArea <= 0 {
		return 0
	}
	return float64(c.Box.Area()) / float64(imageArea)
}

// Classify assigns a class to c inside an image of imageArea pixels.
func (cl Classifier) Classify(c Component, imageArea int) Class {
	if c.Area < cl.NoiseFloor {
		return Noise
	}
	if Coverage(c, imageArea) > cl.FrameCoverage {
		return Frame
	}
	return Foreground
}
