package palette

import (
	"fmt"
	"strings"
)

// Property is a single CSS declaration.
type Property struct {
	Name  string
	Value string
}

// Style is an ordered bag of CSS properties. The zero value is empty and
// ready to use. Style values are immutable: Set returns a copy.
type Style struct {
	props []Property
}

// NewStyle builds a style from name/value pairs.
// PRE: len(kv) is even
func NewStyle(kv ...string) Style {
	var s Style
	for i := 0; i+1 < len(kv); i += 2 {
		s = s.Set(kv[i], kv[i+1])
	}
	return s
}

// Set returns a copy of s with name set to value. An existing property keeps
// its position.
func (s Style) Set(name, value string) Style {
	out := Style{props: make([]Property, len(s.props), len(s.props)+1)}
	copy(out.props, s.props)
	for i := range out.props {
		if out.props[i].Name == name {
			out.props[i].Value = value
			return out
		}
	}
	out.props = append(out.props, Property{Name: name, Value: value})
	return out
}

func (s Style) get(name string) (string, bool) {
	for _, p := range s.props {
		if p.Name == name {
			return p.Value, true
		}
	}
	return "", false
}

// String renders the declarations, e.g. "color: #fff; padding: 8px 16px;".
func (s Style) String() string {
	var b strings.Builder
	for i, p := range s.props {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s: %s;", p.Name, p.Value)
	}
	return b.String()
}

// ButtonSolid is a filled button in a brand color.
func ButtonSolid(bg string) Style {
	return NewStyle(
		"display", "inline-flex",
		"align-items", "center",
		"justify-content", "center",
		"gap", "6px",
		"background", bg,
		"color", BrandTextOnDark,
		"padding", "10px 16px",
		"border-radius", "12px",
		"text-decoration", "none",
		"font-weight", "700",
		"border", "1px solid rgba(0,0,0,0.15)",
		"box-shadow", "0 1px 2px rgba(0,0,0,0.2)",
		"cursor", "pointer",
	)
}

// NavLink is an in-page navigation anchor.
func NavLink(color string) Style {
	return NewStyle("font-size", "14px", "color", color, "text-decoration", "none")
}

// Card is a bordered content panel.
func Card(p Palette) Style {
	return NewStyle(
		"background", p.CardBg,
		"border", "1px solid "+p.Border,
		"border-radius", "12px",
		"overflow", "hidden",
		"box-shadow", p.CardShadow,
	)
}

// ButtonPrimary is the accent call-to-action button.
func ButtonPrimary(p Palette) Style {
	return NewStyle(
		"display", "inline-flex",
		"align-items", "center",
		"justify-content", "center",
		"gap", "6px",
		"background", p.Accent,
		"color", "#fff",
		"padding", "8px 16px",
		"border-radius", "12px",
		"text-decoration", "none",
		"font-weight", "600",
		"border", "1px solid "+p.AccentBorder,
		"cursor", "pointer",
	)
}

// ButtonSecondary is an outlined button. An empty border color falls back
// to the light palette border.
func ButtonSecondary(p Palette) Style {
	border := p.Border
	if border == "" {
		border = Light().Border
	}
	return NewStyle(
		"display", "inline-flex",
		"align-items", "center",
		"justify-content", "center",
		"gap", "6px",
		"border", "1px solid "+border,
		"background", "transparent",
		"color", "inherit",
		"padding", "8px 16px",
		"border-radius", "12px",
		"text-decoration", "none",
	)
}

// Input is a single-line form field.
func Input(p Palette) Style {
	return NewStyle(
		"height", "40px",
		"padding", "0 10px",
		"border", "1px solid "+p.Border,
		"background", p.CardBg,
		"color", p.Text,
		"border-radius", "8px",
		"outline", "none",
	)
}

// Textarea is a multi-line form field.
func Textarea(p Palette) Style {
	return NewStyle(
		"padding", "10px",
		"border", "1px solid "+p.Border,
		"background", p.CardBg,
		"color", p.Text,
		"border-radius", "8px",
		"outline", "none",
		"resize", "vertical",
		"width", "100%",
	)
}
