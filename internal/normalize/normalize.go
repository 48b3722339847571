// Package normalize maps the supplier's free-form attribute values into the
// marketplace's fixed vocabulary. Every function is total: unmatched input
// degrades to a default, never to an error.
package normalize

import (
	"regexp"
	"strings"
)

const (
	OSWin11 = "Win 11"
	OSWin10 = "Win 10"
	OSMac   = "Mac OS"
	OSLinux = "Linux"
	OSOther = "Other"

	CPUIntel = "Intel"
	CPUAMD   = "AMD"
	CPUOther = "Other"

	GraphicsDiscrete   = "Discrete"
	GraphicsIntegrated = "Integrated"

	DefaultDisplay = "15.6"
	DefaultRAM     = "8 GB"
)

// Marker the supplier uses for a discrete graphics card.
const discreteCardMarker = "Plug-in-Card"

var displayPattern = regexp.MustCompile(`\d+(\.\d+)?`)

// DisplaySize extracts the first decimal number from the raw attribute text.
// 13.4 is sold as 13.3 in the marketplace's size vocabulary.
func DisplaySize(text string) string {
	match := displayPattern.FindString(text)
	if match == "" {
		return DefaultDisplay
	}
	if match == "13.4" {
		return "13.3"
	}
	return match
}

// OS normalizes the operating system name. Inputs may contain several of
// the markers, so the match order is part of the contract.
func OS(text string) string {
	switch {
	case strings.Contains(text, "Windows 11"):
		return OSWin11
	case strings.Contains(text, "Windows 10"):
		return OSWin10
	case strings.Contains(text, "macOS"):
		return OSMac
	case strings.Contains(text, "Linux"):
		return OSLinux
	default:
		return OSOther
	}
}

func CPU(text string) string {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "intel"):
		return CPUIntel
	case strings.Contains(lower, "amd"):
		return CPUAMD
	default:
		return CPUOther
	}
}

func Graphics(text string) string {
	if text == discreteCardMarker {
		return GraphicsDiscrete
	}
	return GraphicsIntegrated
}

// Attributes is the normalized attribute set of one product. Fields start
// from the defaults and are overwritten per observed feed attribute.
type Attributes struct {
	Display  string
	OS       string
	CPU      string
	RAM      string
	Graphics string
}

func DefaultAttributes() Attributes {
	return Attributes{
		Display:  DefaultDisplay,
		OS:       OSOther,
		CPU:      CPUOther,
		RAM:      DefaultRAM,
		Graphics: GraphicsIntegrated,
	}
}
