package gui

import "github.com/gogpu/ggcv/command"

// Style holds the colors and metrics used when emitting commands.
type Style struct {
	Text          command.Color
	Window        command.Color
	Header        command.Color
	Border        command.Color
	Button        command.Color
	ButtonHover   command.Color
	ButtonActive  command.Color
	Toggle        command.Color
	ToggleHover   command.Color
	ToggleCursor  command.Color
	Property      command.Color
	PropertyArrow command.Color
	Edit          command.Color
	EditActive    command.Color
	Scaler        command.Color

	Padding     Vec2
	Spacing     Vec2
	HeaderPad   float64
	Rounding    int
	ScalerSize  float64
	ScrollSpeed float64
	MinSize     Vec2
}

// DefaultStyle returns the dark default theme.
func DefaultStyle() Style {
	return Style{
		Text:          command.RGB(175, 175, 175),
		Window:        command.RGB(45, 45, 45),
		Header:        command.RGB(40, 40, 40),
		Border:        command.RGB(65, 65, 65),
		Button:        command.RGB(50, 50, 50),
		ButtonHover:   command.RGB(40, 40, 40),
		ButtonActive:  command.RGB(35, 35, 35),
		Toggle:        command.RGB(100, 100, 100),
		ToggleHover:   command.RGB(120, 120, 120),
		ToggleCursor:  command.RGB(45, 45, 45),
		Property:      command.RGB(38, 38, 38),
		PropertyArrow: command.RGB(175, 175, 175),
		Edit:          command.RGB(38, 38, 38),
		EditActive:    command.RGB(60, 60, 60),
		Scaler:        command.RGB(100, 100, 100),

		Padding:     Vec2{X: 4, Y: 4},
		Spacing:     Vec2{X: 4, Y: 4},
		HeaderPad:   4,
		Rounding:    0,
		ScalerSize:  12,
		ScrollSpeed: 100,
		MinSize:     Vec2{X: 64, Y: 64},
	}
}
