//go:build !game

package game

import (
	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

// Editor fonts - Outfit for UI, JetBrains Mono for values
var editorFont rl.Font     // Outfit Regular - main UI font
var editorFontBold rl.Font // Outfit Bold - headers
var editorFontMono rl.Font // JetBrains Mono - numeric values
var editorFontsLoaded bool

// Theme colors - indigo/purple dark theme
var (
	// Base backgrounds (dark with slight blue tint)
	colorBgDark    = rl.NewColor(10, 10, 15, 255) // Darkest - top bar bg
	colorBgPanel   = rl.NewColor(18, 18, 24, 245) // Panel backgrounds
	colorBgElement = rl.NewColor(28, 28, 38, 255) // Input fields, buttons
	colorBgHover   = rl.NewColor(38, 38, 52, 255) // Hover state
	colorBgActive  = rl.NewColor(48, 48, 65, 255) // Active/pressed state

	// Accent colors - indigo/purple gradient
	colorAccent       = rl.NewColor(108, 99, 255, 255)  // Primary indigo #6c63ff
	colorAccentLight  = rl.NewColor(167, 139, 250, 255) // Light purple #a78bfa
	colorAccentHover  = rl.NewColor(130, 120, 255, 255) // Hover indigo
	colorAccentActive = rl.NewColor(90, 80, 220, 255)   // Pressed indigo

	// Text colors
	colorTextPrimary   = rl.NewColor(255, 255, 255, 255) // White
	colorTextSecondary = rl.NewColor(200, 200, 208, 255) // Light gray #c8c8d0
	colorTextMuted     = rl.NewColor(119, 119, 119, 255) // Muted #777

	// Borders
	colorBorder      = rl.NewColor(255, 255, 255, 13) // rgba(255,255,255,0.05)
	colorBorderHover = rl.NewColor(108, 99, 255, 100) // Indigo border on hover

	// Selection highlight (indigo tinted)
	colorSelection = rl.NewColor(108, 99, 255, 60) // Indigo with transparency
)

func loadEditorFont(path string) rl.Font {
	// High resolution so scaled text stays smooth.
	font := rl.LoadFontEx(path, 48, nil)
	if font.Texture.ID > 0 {
		rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
		zap.S().Debugw("loaded editor font", "path", path)
	} else {
		zap.S().Warnw("failed to load editor font, falling back to default", "path", path)
	}
	return font
}

// initRayguiStyle sets up the indigo dark theme
func initRayguiStyle() {
	if !editorFontsLoaded {
		editorFontsLoaded = true

		editorFont = loadEditorFont("assets/fonts/Outfit-Regular.ttf")
		if editorFont.Texture.ID > 0 {
			gui.SetFont(editorFont)
		}
		editorFontBold = loadEditorFont("assets/fonts/Outfit-Bold.ttf")
		editorFontMono = loadEditorFont("assets/fonts/JetBrainsMono-Regular.ttf")
	}

	// Background colors - dark with blue tint
	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(colorBgDark))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(colorBgElement))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_FOCUSED, gui.NewColorPropertyValue(colorBgHover))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(colorAccent))

	// Text colors
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorTextSecondary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_FOCUSED, gui.NewColorPropertyValue(colorTextPrimary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_PRESSED, gui.NewColorPropertyValue(colorTextPrimary))

	// Border colors - subtle with indigo on focus
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_NORMAL, gui.NewColorPropertyValue(rl.NewColor(50, 50, 65, 255)))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_FOCUSED, gui.NewColorPropertyValue(colorAccent))

	// Line color (for separators)
	gui.SetStyle(gui.DEFAULT, gui.LINE_COLOR, gui.NewColorPropertyValue(rl.NewColor(40, 40, 55, 255)))

	// Text size
	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 15)
}

// drawTextEx draws text using the specified font scaled to the requested size
func drawTextEx(font rl.Font, text string, x, y int32, size float32, color rl.Color) {
	if font.Texture.ID > 0 {
		rl.DrawTextEx(font, text, rl.Vector2{X: float32(x), Y: float32(y)}, size, 0, color)
	} else {
		rl.DrawText(text, x, y, int32(size), color)
	}
}
