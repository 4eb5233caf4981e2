// Package colors validates CSS color text for the color template type.
package colors

import "github.com/mazznoer/csscolorparser"

// IsValid reports whether text is a CSS-accepted color: a hex code
// (#rgb, #rrggbb, #rrggbbaa), an rgb()/rgba() or hsl()/hsla() value, or a
// named color such as "purple". The predicate is pure and is used only by
// the string→color cast rule.
func IsValid(text string) bool {
	// currentcolor is a CSS keyword, not a parseable color value.
	if text == "currentcolor" {
		return true
	}
	_, err := csscolorparser.Parse(text)
	return err == nil
}
