package render

import (
	"image"
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/rampball/ecs"
	"github.com/milk9111/rampball/ecs/component"
	"github.com/milk9111/rampball/mesh"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

type RenderSystem struct {
	background color.Color

	vertices []ebiten.Vertex
	indices  []uint16
}

func NewRenderSystem(background color.Color) *RenderSystem {
	if background == nil {
		background = color.Black
	}
	return &RenderSystem{background: background}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}
	screen.Fill(r.background)

	bounds := screen.Bounds()
	view := ViewFor(w, float64(bounds.Dx()), float64(bounds.Dy()))

	entities := ecs.Query(w, component.RenderLayerComponent.Kind(), component.TransformComponent.Kind())
	sort.SliceStable(entities, func(i, j int) bool {
		li, _ := ecs.Get(w, entities[i], component.RenderLayerComponent.Kind())
		lj, _ := ecs.Get(w, entities[j], component.RenderLayerComponent.Kind())
		if li.Index != lj.Index {
			return li.Index < lj.Index
		}
		return uint64(entities[i]) < uint64(entities[j])
	})

	for _, e := range entities {
		x, y, ok := WorldPosition(w, e)
		if !ok {
			continue
		}
		if m, ok := ecs.Get(w, e, component.MeshRenderComponent.Kind()); ok {
			r.drawMesh(screen, view, x, y, m.Mesh.Vertices, m.Mesh.Indices, m.Color)
		}
		if t, ok := ecs.Get(w, e, component.TriangleRenderComponent.Kind()); ok {
			r.drawMesh(screen, view, x, y, t.Points[:], []uint32{0, 1, 2}, t.Color)
		}
		if c, ok := ecs.Get(w, e, component.CircleRenderComponent.Kind()); ok {
			drawCircle(screen, view, x, y, c)
		}
	}
}

func (r *RenderSystem) drawMesh(screen *ebiten.Image, view View, x, y float64, verts []mesh.Point, indices []uint32, clr color.Color) {
	if len(verts) == 0 || len(indices) < 3 || len(verts) > math.MaxUint16 {
		return
	}
	cr, cg, cb, ca := vertexColor(clr)

	r.vertices = r.vertices[:0]
	for _, p := range verts {
		sx, sy := view.ToScreen(x+p.X, y+p.Y)
		r.vertices = append(r.vertices, ebiten.Vertex{
			DstX: sx, DstY: sy,
			SrcX: 1, SrcY: 1,
			ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
		})
	}
	r.indices = r.indices[:0]
	for _, idx := range indices {
		r.indices = append(r.indices, uint16(idx))
	}

	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	screen.DrawTriangles(r.vertices, r.indices, whiteSubImage, op)
}

func drawCircle(screen *ebiten.Image, view View, x, y float64, c *component.CircleRender) {
	if c.Radius <= 0 || c.Color == nil {
		return
	}
	sx, sy := view.ToScreen(x, y)
	radius := c.Radius * view.Zoom
	if c.Inner <= 0 {
		vector.FillCircle(screen, sx, sy, float32(radius), c.Color, true)
		return
	}
	inner := c.Inner * view.Zoom
	width := radius - inner
	vector.StrokeCircle(screen, sx, sy, float32(inner+width/2), float32(width), c.Color, true)
}

func vertexColor(c color.Color) (float32, float32, float32, float32) {
	if c == nil {
		return 1, 1, 1, 1
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return float32(n.R) / 0xff, float32(n.G) / 0xff, float32(n.B) / 0xff, float32(n.A) / 0xff
}
