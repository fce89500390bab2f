package catalog

import (
	"strings"
)

// Specification holds the parsed hardware attributes of a laptop configuration.
// Two free-text input forms are recognized:
//
//	labeled:    "CPU: Intel i5, RAM: 8GB, ROM: 256GB, Card: NVIDIA"
//	positional: "Intel i5 / 8GB / 256GB / NVIDIA"
//
// The labeled form accepts any subset of keys in any order. The positional
// form assumes the fixed order CPU, RAM, ROM, Card and accepts either "/" or
// "," as the separator. Missing attributes are simply absent.
type Specification struct {
	CPU  string
	RAM  string
	ROM  string
	Card string
}

// ParseSpecification parses a free-text specification string into its
// structured attributes.
func ParseSpecification(raw string) Specification {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Specification{}
	}
	if strings.Contains(raw, ":") {
		return parseLabeled(raw)
	}
	return parsePositional(raw)
}

func parseLabeled(raw string) Specification {
	var spec Specification
	for _, part := range strings.Split(raw, ",") {
		key, value, found := strings.Cut(part, ":")
		if !found {
			continue
		}
		value = strings.TrimSpace(value)
		switch strings.ToUpper(strings.TrimSpace(key)) {
		case "CPU":
			spec.CPU = value
		case "RAM":
			spec.RAM = value
		case "ROM":
			spec.ROM = value
		case "CARD":
			spec.Card = value
		}
	}
	return spec
}

func parsePositional(raw string) Specification {
	sep := "/"
	if !strings.Contains(raw, "/") {
		sep = ","
	}
	parts := strings.Split(raw, sep)
	var spec Specification
	for i, part := range parts {
		value := strings.TrimSpace(part)
		switch i {
		case 0:
			spec.CPU = value
		case 1:
			spec.RAM = value
		case 2:
			spec.ROM = value
		case 3:
			spec.Card = value
		}
	}
	return spec
}

// Normalize returns the canonical single-line form "CPU / RAM / ROM / Card".
// Both input forms normalize to the same output, which guards against format
// drift between import-time and export-time input.
func (s Specification) Normalize() string {
	return strings.Join([]string{s.CPU, s.RAM, s.ROM, s.Card}, " / ")
}

// Matches reports whether the raw specification string describes the same
// configuration as s. Both sides are canonicalized first and the final
// comparison is case-insensitive.
func (s Specification) Matches(raw string) bool {
	return strings.EqualFold(s.Normalize(), ParseSpecification(raw).Normalize())
}

// Attributes returns the present attributes keyed by column-friendly names.
// Absent attributes are omitted so callers can filter only on what was given.
func (s Specification) Attributes() map[string]string {
	attrs := make(map[string]string, 4)
	if s.CPU != "" {
		attrs["cpu"] = s.CPU
	}
	if s.RAM != "" {
		attrs["ram"] = s.RAM
	}
	if s.ROM != "" {
		attrs["rom"] = s.ROM
	}
	if s.Card != "" {
		attrs["card"] = s.Card
	}
	return attrs
}

// IsEmpty reports whether no attribute is present
func (s Specification) IsEmpty() bool {
	return s.CPU == "" && s.RAM == "" && s.ROM == "" && s.Card == ""
}
