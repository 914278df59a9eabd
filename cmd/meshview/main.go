// meshview shows the platform a tuning file and shape script produce, with
// the collider triangles drawn over the stroke.
//
// Left/Right step through platform indices, W toggles the wireframe and
// Up/Down change the flattening tolerance.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/rampball/collision"
	"github.com/milk9111/rampball/common"
	"github.com/milk9111/rampball/ecs"
	"github.com/milk9111/rampball/ecs/component"
	"github.com/milk9111/rampball/ecs/entity"
	"github.com/milk9111/rampball/ecs/render"
	"github.com/milk9111/rampball/ecs/system"
	"github.com/milk9111/rampball/mesh"
	"github.com/milk9111/rampball/prefabs"
)

type Viewer struct {
	tuning prefabs.Tuning
	shapes prefabs.ShapeSource
	logger *log.Logger

	index     int
	tolerance float64
	wireframe bool

	world    *ecs.World
	physics  *system.PhysicsSystem
	renderer *render.RenderSystem
	status   string
}

func NewViewer(tuning prefabs.Tuning, shapes prefabs.ShapeSource, logger *log.Logger) *Viewer {
	v := &Viewer{
		tuning:    tuning,
		shapes:    shapes,
		logger:    logger,
		tolerance: tuning.Platform.Stroke.Tolerance,
		wireframe: true,
		renderer:  render.NewRenderSystem(prefabs.ColorOr(tuning.World.Background, nil)),
	}
	if v.tolerance <= 0 {
		v.tolerance = mesh.DefaultStrokeOptions.Tolerance
	}
	v.rebuild()
	return v
}

// rebuild replaces the world with a single platform at the origin and a
// camera centered on it.
func (v *Viewer) rebuild() {
	v.world = ecs.NewWorld()
	v.physics = system.NewPhysicsSystem(0, common.TickSeconds)

	points, err := v.shapes.Points(v.index)
	if err != nil {
		v.logger.Warn("shape unusable", "index", v.index, "err", err)
		points = v.tuning.Platform.ControlPoints()
	}
	spec := v.tuning.Platform
	spec.Stroke.Tolerance = v.tolerance
	platform, err := entity.NewPlatform(v.world, spec, points, 0, 0)
	if err != nil {
		v.logger.Error("build platform", "err", err)
		return
	}
	camera, err := entity.NewCamera(v.world, v.tuning.World)
	if err != nil {
		v.logger.Error("build camera", "err", err)
		return
	}

	var box collision.Rect
	triangles := 0
	if body, ok := ecs.Get(v.world, platform, component.PhysicsBodyComponent.Kind()); ok {
		box = body.Mesh.BoundingBox()
		triangles = body.Mesh.TriangleCount()
	}
	if tr, ok := ecs.Get(v.world, camera, component.TransformComponent.Kind()); ok {
		c := box.Center()
		tr.X, tr.Y = c.X, c.Y
	}
	v.physics.Update(v.world)

	v.status = fmt.Sprintf("index %d  points %d  triangles %d  tolerance %g\nbounds %.0fx%.0f",
		v.index, len(points), triangles, v.tolerance, box.Width(), box.Height())
	v.logger.Debug("platform built", "index", v.index, "points", len(points), "triangles", triangles)
}

func (v *Viewer) Update() error {
	changed := false
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyRight):
		v.index++
		changed = true
	case inpututil.IsKeyJustPressed(ebiten.KeyLeft) && v.index > 0:
		v.index--
		changed = true
	case inpututil.IsKeyJustPressed(ebiten.KeyUp):
		v.tolerance *= 2
		changed = true
	case inpututil.IsKeyJustPressed(ebiten.KeyDown):
		v.tolerance /= 2
		changed = true
	case inpututil.IsKeyJustPressed(ebiten.KeyW):
		v.wireframe = !v.wireframe
	}
	if changed {
		v.rebuild()
	}
	return nil
}

func (v *Viewer) Draw(screen *ebiten.Image) {
	v.renderer.Draw(v.world, screen)
	if v.wireframe {
		render.DrawWireframe(v.physics.Space(), v.world, screen)
	}
	ebitenutil.DebugPrintAt(screen, v.status, 10, 10)
}

func (v *Viewer) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func main() {
	script := flag.String("script", "", "Shape script in prefabs/scripts (defaults to platform.yaml's shape_script)")
	seed := flag.Int64("seed", 1, "Seed handed to the shape script")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "meshview"})
	if *debug {
		logger.SetLevel(log.DebugLevel)
	}

	tuning, err := prefabs.LoadTuning()
	if err != nil {
		logger.Warn("tuning unreadable, using defaults", "err", err)
		tuning = prefabs.DefaultTuning()
	}
	name := *script
	if name == "" {
		name = tuning.Platform.ShapeScript
	}

	var shapes prefabs.ShapeSource = prefabs.FixedShape(tuning.Platform.ControlPoints())
	if name != "" {
		s, err := prefabs.NewScriptShape(name, *seed)
		if err != nil {
			logger.Fatal("load shape script", "script", name, "err", err)
		}
		shapes = s
	}

	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("meshview")
	if err := ebiten.RunGame(NewViewer(tuning, shapes, logger)); err != nil {
		logger.Fatal("run", "err", err)
	}
}
