package utils

import (
	"fmt"
	"regexp"

	"github.com/go-gl/mathgl/mgl32"
)

// Colour is an RGBA colour with components in [0, 1], ready for
// gl.ClearColor and friends.
type Colour struct {
	R, G, B, A float32
}

func ColourValidate(c string) bool {
	match, err := regexp.MatchString(`^#[0-9A-Fa-f]{8}$`, c)
	if err != nil {
		panic(err)
	}
	return match
}

// ColourParse parses a "#RRGGBBAA" hex string. Use ColourValidate first;
// malformed input yields the zero colour.
func ColourParse(s string) (c Colour) {
	var r, g, b, a uint8
	fmt.Sscanf(s, "#%02x%02x%02x%02x", &r, &g, &b, &a)
	c.R = float32(r) / 255
	c.G = float32(g) / 255
	c.B = float32(b) / 255
	c.A = float32(a) / 255
	return
}

func (c Colour) Vec4() mgl32.Vec4 {
	return mgl32.Vec4{c.R, c.G, c.B, c.A}
}
