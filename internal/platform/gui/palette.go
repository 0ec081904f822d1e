// Package gui provides the Ebitengine window front-end for the crossing
// game. It draws the canvas at its native 505x606 pixel size.
package gui

import (
	"image/color"

	"github.com/vovakirdan/tui-crossing/internal/core"
)

// palette maps core.Color to RGBA, matching the terminal's ANSI colors.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault:       {0xff, 0xff, 0xff, 0xff},
	core.ColorRed:           {0xcd, 0x00, 0x00, 0xff},
	core.ColorGreen:         {0x00, 0xcd, 0x00, 0xff},
	core.ColorYellow:        {0xcd, 0xcd, 0x00, 0xff},
	core.ColorBlue:          {0x00, 0x00, 0xee, 0xff},
	core.ColorMagenta:       {0xcd, 0x00, 0xcd, 0xff},
	core.ColorCyan:          {0x00, 0xcd, 0xcd, 0xff},
	core.ColorWhite:         {0xe5, 0xe5, 0xe5, 0xff},
	core.ColorBrightRed:     {0xff, 0x00, 0x00, 0xff},
	core.ColorBrightGreen:   {0x00, 0xff, 0x00, 0xff},
	core.ColorBrightYellow:  {0xff, 0xff, 0x00, 0xff},
	core.ColorBrightBlue:    {0x5c, 0x5c, 0xff, 0xff},
	core.ColorBrightMagenta: {0xff, 0x00, 0xff, 0xff},
	core.ColorBrightCyan:    {0x00, 0xff, 0xff, 0xff},
	core.ColorBrightWhite:   {0xff, 0xff, 0xff, 0xff},
	core.ColorOrange:        {0xff, 0x87, 0x00, 0xff},
	core.ColorGray:          {0x8a, 0x8a, 0x8a, 0xff},
	core.ColorBlack:         {0x00, 0x00, 0x00, 0xff},
}

// RGBA returns the display color of c. Unknown colors render white.
func RGBA(c core.Color) color.RGBA {
	if rgba, ok := palette[c]; ok {
		return rgba
	}
	return palette[core.ColorDefault]
}
