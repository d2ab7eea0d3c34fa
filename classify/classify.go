// Package classify maps raw health measurements to the category labels shown
// to patients and professionals. Every function here is pure.
package classify

import "errors"

var ErrInvalidMeasurement = errors.New("weight and height must be positive")

// Category is implemented by the label types of every metric.
type Category interface {
	~string
	// Metric is the catalog namespace of the label, e.g. "bmi".
	Metric() string
	Portuguese() string
}

// MessageKey is the lookup key of a category label in a message catalog.
func MessageKey[C Category](c C) string {
	return c.Metric() + ":" + string(c)
}

// normalize resolves labels written in Portuguese by older data files.
// Unknown labels are kept verbatim.
func normalize[C Category](label string, all []C) C {
	for _, c := range all {
		if string(c) == label || c.Portuguese() == label {
			return c
		}
	}
	return C(label)
}
