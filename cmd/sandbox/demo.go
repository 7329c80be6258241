package main

import (
	"github.com/hubastard/winkel/engine/colors"
	"github.com/hubastard/winkel/engine/text"
	"github.com/hubastard/winkel/engine/ui"
)

// demoTree is a padded rounded button holding two lines of text.
func demoTree(onPressed func(button uint8)) ui.Widget {
	label := ui.NewColumn().
		Add(ui.NewText("Hello World", 20, text.DefaultFont).Color(colors.Blue).Build()).
		Add(ui.NewText("Hello World 2", 54, text.DefaultFont).Color(colors.Magenta).Build()).
		MustBuild()

	button := ui.NewButton(colors.Red).
		Hover(colors.Yellow).
		Active(colors.Green).
		Border(20).
		Child(label).
		OnPressed(onPressed).
		Build(nil)

	return ui.NewPadding(button).All(30).Build()
}
