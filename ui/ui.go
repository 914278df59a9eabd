// Package ui draws the menus and the HUD over the game with ebitenui.
package ui

import (
	"fmt"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/rampball/common"
	"github.com/milk9111/rampball/session"
)

// Actions are the callbacks behind the menu buttons.
type Actions struct {
	Continue func()
	Revive   func()
	Resume   func()
}

// Overlay holds every screen and shows the ones that match the session.
type Overlay struct {
	ui *ebitenui.UI

	menu     *widget.Container
	hud      *widget.Container
	distance *widget.Text
	best     *widget.Text
	gameOver *widget.Container
	result   *widget.Text
	pause    *widget.Container
}

func New(actions Actions) *Overlay {
	face := newFace()
	o := &Overlay{}

	o.menu = newPanel(common.BaseWidth/3, common.BaseHeight/6)
	o.menu.AddChild(newLabel("Ramp Ball", face, textColor))
	o.menu.AddChild(newLabel("Press to drop", face, mutedColor))

	o.hud = widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(4),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 16, Left: 16, Right: 16}),
		)),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
			HorizontalPosition: widget.AnchorLayoutPositionEnd,
			VerticalPosition:   widget.AnchorLayoutPositionStart,
		})),
	)
	o.distance = newLabel(FormatDistance(0), face, textColor)
	o.best = newLabel(FormatBest(0), face, mutedColor)
	o.hud.AddChild(o.distance)
	o.hud.AddChild(o.best)

	o.gameOver = newPanel(common.BaseWidth/3, common.BaseHeight/3)
	o.gameOver.AddChild(newLabel("Game Over", face, textColor))
	o.result = newLabel("", face, mutedColor)
	o.gameOver.AddChild(o.result)
	o.gameOver.AddChild(newButton("Continue", face, actions.Continue))
	o.gameOver.AddChild(newButton("Revive", face, actions.Revive))

	o.pause = newPanel(common.BaseWidth/2, common.BaseHeight/2)
	o.pause.AddChild(newLabel("Paused", face, textColor))
	o.pause.AddChild(newButton("Resume", face, actions.Resume))

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(o.hud)
	root.AddChild(o.menu)
	root.AddChild(o.gameOver)
	root.AddChild(o.pause)

	o.ui = &ebitenui.UI{Container: root, PrimaryTheme: newTheme(face)}
	return o
}

// Update refreshes the labels, shows the screens for the current state and
// lets ebitenui handle input.
func (o *Overlay) Update(s *session.Session, paused bool) {
	o.Sync(s, paused)
	o.ui.Update()
}

// Sync applies the session to the screens without handling input.
func (o *Overlay) Sync(s *session.Session, paused bool) {
	inMenu := s.Game.Is(session.MainMenu)
	dead := s.Playing() && !s.Alive()

	setVisible(o.menu, inMenu && !paused)
	setVisible(o.hud, s.Playing())
	setVisible(o.gameOver, dead && !paused)
	setVisible(o.pause, paused)

	o.distance.Label = FormatDistance(s.TravelDistance)
	o.best.Label = FormatBest(s.BestDistance)
	o.result.Label = fmt.Sprintf("You rolled %s", FormatDistance(s.TravelDistance))
}

func (o *Overlay) Draw(screen *ebiten.Image) {
	o.ui.Draw(screen)
}

// FormatDistance renders a travel distance the way the HUD shows it.
func FormatDistance(meters float64) string {
	return fmt.Sprintf("%.0fm", meters)
}

func FormatBest(meters float64) string {
	return "Best " + FormatDistance(meters)
}
