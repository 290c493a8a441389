// Terminal escape-code styling, cut down to what the palette swatch output
// needs: truecolor foreground/background with a 256- and 16-colour fallback
// cascade, plus bold.  See https://github.com/termstandard/colors for the
// cascade rationale.
package termfmt

import (
	"fmt"
	"math"
)

var (
	rgbSupported  = true
	c256Supported = true
)

// RGBSupported toggles the truecolor tier of the cascade.
func RGBSupported(supported bool) { rgbSupported = supported }

// C256Supported toggles the 256-colour tier of the cascade.
func C256Supported(supported bool) { c256Supported = supported }

// Bold wraps s in the bold escape.
func Bold(s string) string {
	return fmt.Sprintf("\x1b[1m%s\x1b[0m", s)
}

// Fg colours s's foreground, degrading to 256 or 16 colours as supported.
func Fg(r, g, b uint8, s string) string { return cascade(38, r, g, b, s) }

// Bg colours s's background, degrading to 256 or 16 colours as supported.
func Bg(r, g, b uint8, s string) string { return cascade(48, r, g, b, s) }

func cascade(esc int, r, g, b uint8, s string) string {
	if rgbSupported {
		return fmt.Sprintf("\x1b[%d;2;%d;%d;%dm%s\x1b[0m", esc, r, g, b, s)
	}
	if c256Supported {
		return fmt.Sprintf("\x1b[%d;5;%dm%s\x1b[0m", esc, RGBTo256(r, g, b), s)
	}
	// fg runs 30..37, bg 40..47, i.e. the cascade base minus 8 plus the cell.
	return fmt.Sprintf("\x1b[%dm%s\x1b[0m", esc-8+nearestC16(r, g, b), s)
}

// RGBTo256 maps truecolor to the closest xterm-256 cell: greys to the ramp
// at 232..255, everything else to the 6x6x6 cube.
func RGBTo256(r, g, b uint8) uint8 {
	if r == g && g == b {
		return ((r - 8) / 10) + 232
	}
	r = uint8(math.Floor(float64(r) / 255.0 * 6.0))
	g = uint8(math.Floor(float64(g) / 255.0 * 6.0))
	b = uint8(math.Floor(float64(b) / 255.0 * 6.0))
	return uint8(16 + (36 * r) + (6 * g) + b)
}

// nearestC16 quantises each channel to one bit, yielding the classic
// 8-colour cell 0..7.
func nearestC16(r, g, b uint8) int {
	c := 0
	if r >= 128 {
		c |= 1
	}
	if g >= 128 {
		c |= 2
	}
	if b >= 128 {
		c |= 4
	}
	return c
}
