package content

import "strings"

// SizeClass groups threats by physical size, driving radius, score and explosion size
type SizeClass string

const (
	SizeSmall  SizeClass = "small"
	SizeMedium SizeClass = "medium"
	SizeLarge  SizeClass = "large"
)

// ParseSizeClass normalizes external size names, returns false for unknown classes
func ParseSizeClass(s string) (SizeClass, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "small", "s":
		return SizeSmall, true
	case "medium", "m":
		return SizeMedium, true
	case "large", "l":
		return SizeLarge, true
	default:
		return "", false
	}
}

// Template is one threat definition from the template source
type Template struct {
	ID        string    `yaml:"id"`
	Name      string    `yaml:"name"`
	SizeClass SizeClass `yaml:"size_class"`
	Hazardous bool      `yaml:"hazardous"`
}
