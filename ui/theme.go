package ui

import (
	"image/color"

	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

var (
	textColor  color.Color = colornames.White
	mutedColor color.Color = colornames.Lightgray
	panelColor             = color.NRGBA{A: 200}
	buttonIdle             = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
	buttonOver             = color.NRGBA{R: 0x4a, G: 0x4a, B: 0x4a, A: 0xff}
)

func newFace() *ebtext.Face {
	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	return &face
}

func newTheme(face *ebtext.Face) *widget.Theme {
	return &widget.Theme{
		PanelTheme: &widget.PanelParams{
			BackgroundImage: imageui.NewNineSliceColor(panelColor),
		},
		ButtonTheme: &widget.ButtonParams{
			Image: &widget.ButtonImage{
				Idle:    imageui.NewNineSliceColor(buttonIdle),
				Hover:   imageui.NewNineSliceColor(buttonOver),
				Pressed: imageui.NewNineSliceColor(buttonIdle),
			},
			TextFace:  face,
			TextColor: &widget.ButtonTextColor{Idle: textColor},
		},
	}
}

func centered() widget.WidgetOpt {
	return widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})
}

func newLabel(label string, face *ebtext.Face, clr color.Color) *widget.Text {
	return widget.NewText(
		widget.TextOpts.Text(label, face, clr),
		widget.TextOpts.WidgetOpts(centered()),
	)
}

func newButton(label string, face *ebtext.Face, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    imageui.NewNineSliceColor(buttonIdle),
			Hover:   imageui.NewNineSliceColor(buttonOver),
			Pressed: imageui.NewNineSliceColor(buttonIdle),
		}),
		widget.ButtonOpts.Text(label, face, &widget.ButtonTextColor{Idle: textColor}),
		widget.ButtonOpts.WidgetOpts(centered()),
		widget.ButtonOpts.ClickedHandler(func(*widget.ButtonClickedEventArgs) {
			if onClick != nil {
				onClick()
			}
		}),
	)
}

// newPanel is a vertical panel centered in its anchor-layout parent.
func newPanel(minW, minH int) *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(panelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(minW, minH),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
}

func setVisible(w interface{ GetWidget() *widget.Widget }, visible bool) {
	if visible {
		w.GetWidget().Visibility = widget.Visibility_Show
		return
	}
	w.GetWidget().Visibility = widget.Visibility_Hide
}
