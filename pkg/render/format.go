package render

import "fmt"

// Format represents an output format.
type Format string

// Output formats supported by the renderers.
const (
	FormatANSI  Format = "ansi"
	FormatPlain Format = "plain"
	FormatJSON  Format = "json"
)

// ParseFormat parses a format string, returning an error for unknown formats.
func ParseFormat(formatStr string) (Format, error) {
	switch formatStr {
	case "ansi", "":
		return FormatANSI, nil
	case "plain", "text":
		return FormatPlain, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown format %q; valid formats: ansi, plain, json", formatStr)
	}
}

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// IsValid returns true if the format is a known valid format.
func (f Format) IsValid() bool {
	switch f {
	case FormatANSI, FormatPlain, FormatJSON:
		return true
	default:
		return false
	}
}
