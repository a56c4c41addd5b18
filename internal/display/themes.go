// Package display renders quotes and pipeline results to the terminal.
package display

import (
	"os"

	"github.com/fatih/color"
)

// Theme maps display purposes to colors. Renderers only ever reference
// purposes so switching themes never touches rendering code.
type Theme struct {
	Name      string
	Primary   *color.Color // quote text
	Secondary *color.Color // authors, sources
	Emphasis  *color.Color // headings, IDs
	Success   *color.Color
	Warning   *color.Color
	Error     *color.Color
	Dim       *color.Color // notes, metadata
	Border    *color.Color
}

// ThemeNames lists the selectable themes in display order.
var ThemeNames = []string{"auto", "dark", "light", "high-contrast", "none"}

// ResolveTheme returns the theme for name, honoring the QUOTES_THEME
// environment override. Unknown names fall back to auto.
func ResolveTheme(name string) *Theme {
	if env := os.Getenv("QUOTES_THEME"); env != "" {
		name = env
	}
	switch name {
	case "dark":
		return darkTheme()
	case "light":
		return lightTheme()
	case "high-contrast":
		return highContrastTheme()
	case "none":
		return noneTheme()
	default:
		return autoTheme()
	}
}

// autoTheme picks dark unless color output is disabled entirely (piped
// output, NO_COLOR), in which case colors are inert anyway.
func autoTheme() *Theme {
	if color.NoColor {
		t := noneTheme()
		t.Name = "auto"
		return t
	}
	t := darkTheme()
	t.Name = "auto"
	return t
}

func darkTheme() *Theme {
	return &Theme{
		Name:      "dark",
		Primary:   color.New(color.FgWhite),
		Secondary: color.New(color.FgCyan),
		Emphasis:  color.New(color.FgYellow, color.Bold),
		Success:   color.New(color.FgGreen),
		Warning:   color.New(color.FgYellow),
		Error:     color.New(color.FgRed),
		Dim:       color.New(color.FgHiBlack),
		Border:    color.New(color.FgBlue),
	}
}

func lightTheme() *Theme {
	return &Theme{
		Name:      "light",
		Primary:   color.New(color.FgBlack),
		Secondary: color.New(color.FgBlue),
		Emphasis:  color.New(color.FgMagenta, color.Bold),
		Success:   color.New(color.FgGreen),
		Warning:   color.New(color.FgHiYellow),
		Error:     color.New(color.FgRed),
		Dim:       color.New(color.FgHiBlack),
		Border:    color.New(color.FgCyan),
	}
}

func highContrastTheme() *Theme {
	return &Theme{
		Name:      "high-contrast",
		Primary:   color.New(color.FgHiWhite, color.Bold),
		Secondary: color.New(color.FgHiCyan, color.Bold),
		Emphasis:  color.New(color.FgHiYellow, color.Bold),
		Success:   color.New(color.FgHiGreen, color.Bold),
		Warning:   color.New(color.FgHiYellow, color.Bold),
		Error:     color.New(color.FgHiRed, color.Bold),
		Dim:       color.New(color.FgWhite),
		Border:    color.New(color.FgHiWhite),
	}
}

func noneTheme() *Theme {
	plain := func() *color.Color {
		c := color.New()
		c.DisableColor()
		return c
	}
	return &Theme{
		Name:      "none",
		Primary:   plain(),
		Secondary: plain(),
		Emphasis:  plain(),
		Success:   plain(),
		Warning:   plain(),
		Error:     plain(),
		Dim:       plain(),
		Border:    plain(),
	}
}
