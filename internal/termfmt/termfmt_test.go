package termfmt

import "testing"

func TestCascadeDegrades(t *testing.T) {
	defer func() {
		RGBSupported(true)
		C256Supported(true)
	}()

	if got, want := Bg(192, 128, 128, " "), "\x1b[48;2;192;128;128m \x1b[0m"; got != want {
		t.Errorf("truecolor Bg = %q, want %q", got, want)
	}

	RGBSupported(false)
	if got, want := Bg(192, 128, 128, " "), "\x1b[48;5;181m \x1b[0m"; got != want {
		t.Errorf("256-colour Bg = %q, want %q", got, want)
	}

	C256Supported(false)
	if got, want := Bg(192, 128, 128, " "), "\x1b[47m \x1b[0m"; got != want {
		t.Errorf("16-colour Bg = %q, want %q", got, want)
	}
}

func TestRGBTo256Grey(t *testing.T) {
	// greys land on the ramp, not the cube.
	if c := RGBTo256(128, 128, 128); c < 232 {
		t.Errorf("RGBTo256 grey = %d, want >= 232", c)
	}
}
