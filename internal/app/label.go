package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Label is a boxed text drawn centred above a screen position
type Label struct {
	Text      string
	ScreenPos rl.Vector2
	BaseColor rl.Color
}

// Draw renders the label and returns its bounding rectangle
func (l *Label) Draw(font rl.Font, fontSize float32, padding float32) rl.Rectangle {
	textSize := rl.MeasureTextEx(font, l.Text, fontSize, 1)

	rect := rl.Rectangle{
		X:      l.ScreenPos.X - textSize.X/2 - padding,
		Y:      l.ScreenPos.Y - textSize.Y - 2*padding,
		Width:  textSize.X + 2*padding,
		Height: textSize.Y + 2*padding,
	}

	rl.DrawRectangleRec(rect, rl.NewColor(20, 20, 20, 220))
	rl.DrawRectangleLinesEx(rect, 2, l.BaseColor)

	textPos := rl.Vector2{
		X: rect.X + padding,
		Y: rect.Y + padding,
	}
	rl.DrawTextEx(font, l.Text, textPos, fontSize, 1, l.BaseColor)

	return rect
}
