package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/rampball/common"
	"github.com/milk9111/rampball/ecs"
	"github.com/milk9111/rampball/ecs/component"
)

// teleportEpsilon is how far a transform may drift from the body before the
// body is moved to match it.
const teleportEpsilon = 1e-6

// PhysicsSystem mirrors PhysicsBody components into a Chipmunk2D space, steps
// it, and writes positions and contacts back.
type PhysicsSystem struct {
	space *cp.Space
	dt    float64

	entities map[ecs.Entity]*bodyInfo
	shapes   map[*cp.Shape]ecs.Entity
}

type bodyInfo struct {
	body         *cp.Body
	shapes       []*cp.Shape
	kind         component.BodyKind
	gravityScale float64
	lastX        float64
	lastY        float64
}

// NewPhysicsSystem creates a space with the given downward gravity, stepped
// by dt seconds per update.
func NewPhysicsSystem(gravity, dt float64) *PhysicsSystem {
	if dt <= 0 {
		dt = common.TickSeconds
	}
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: -gravity})
	return &PhysicsSystem{
		space:    space,
		dt:       dt,
		entities: make(map[ecs.Entity]*bodyInfo),
		shapes:   make(map[*cp.Shape]ecs.Entity),
	}
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

// SetGravity changes the downward gravity of the space.
func (ps *PhysicsSystem) SetGravity(gravity float64) {
	ps.space.SetGravity(cp.Vector{X: 0, Y: -gravity})
}

// BodyCount returns the number of entities with a live body.
func (ps *PhysicsSystem) BodyCount() int {
	if ps == nil {
		return 0
	}
	return len(ps.entities)
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil || ps.space == nil {
		return
	}

	ps.cleanupEntities(w)
	ps.syncEntities(w)

	ps.space.Step(ps.dt)

	ps.syncTransforms(w)
	ps.flushContacts(w)
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, bodyComp *component.PhysicsBody, transform *component.Transform) {
		info := ps.entities[e]
		if info == nil {
			info = ps.createBodyInfo(w, e, transform, bodyComp)
			if info == nil {
				return
			}
			ps.entities[e] = info
			bodyComp.Body = info.body
			bodyComp.Shapes = info.shapes
		}

		if math.Abs(transform.X-info.lastX) > teleportEpsilon || math.Abs(transform.Y-info.lastY) > teleportEpsilon {
			info.body.SetPosition(cp.Vector{X: transform.X, Y: transform.Y})
			info.lastX, info.lastY = transform.X, transform.Y
		}

		switch info.kind {
		case component.BodyKinematic:
			vel := cp.Vector{}
			if v, ok := ecs.Get(w, e, component.VelocityComponent.Kind()); ok {
				vel = cp.Vector{X: v.X, Y: v.Y}
			}
			info.body.SetVelocityVector(vel)
		case component.BodyDynamic:
			info.gravityScale = 1
			if g, ok := ecs.Get(w, e, component.GravityScaleComponent.Kind()); ok {
				info.gravityScale = g.Scale
			}
		}
	})
}

func (ps *PhysicsSystem) createBodyInfo(w *ecs.World, e ecs.Entity, transform *component.Transform, bodyComp *component.PhysicsBody) *bodyInfo {
	if !bodyComp.HasCollider() {
		return nil
	}

	info := &bodyInfo{kind: bodyComp.Kind, gravityScale: 1, lastX: transform.X, lastY: transform.Y}

	var body *cp.Body
	switch bodyComp.Kind {
	case component.BodyKinematic:
		body = cp.NewKinematicBody()
	case component.BodyStatic:
		body = cp.NewStaticBody()
	default:
		mass := bodyComp.Mass
		if mass <= 0 {
			mass = 1
		}
		var moment float64
		if bodyComp.Radius > 0 {
			moment = cp.MomentForCircle(mass, 0, bodyComp.Radius, cp.Vector{})
		} else {
			moment = cp.MomentForBox(mass, bodyComp.Width, bodyComp.Height)
		}
		body = cp.NewBody(mass, moment)
		body.SetVelocityUpdateFunc(func(b *cp.Body, gravity cp.Vector, damping, dt float64) {
			cp.BodyUpdateVelocity(b, gravity.Mult(info.gravityScale), damping, dt)
		})
	}
	body.SetPosition(cp.Vector{X: transform.X, Y: transform.Y})
	body.SetAngle(transform.Rotation)
	ps.space.AddBody(body)
	info.body = body

	var shapes []*cp.Shape
	switch {
	case bodyComp.Mesh.TriangleCount() > 0:
		verts := make([]cp.Vector, 3)
		for i := 0; i < bodyComp.Mesh.TriangleCount(); i++ {
			tri := bodyComp.Mesh.Triangle(i)
			for j, p := range tri {
				verts[j] = cp.Vector{X: p.X, Y: p.Y}
			}
			shapes = append(shapes, cp.NewPolyShapeRaw(body, 3, verts, 0))
		}
	case bodyComp.Radius > 0:
		shapes = append(shapes, cp.NewCircle(body, bodyComp.Radius, cp.Vector{}))
	default:
		shapes = append(shapes, cp.NewBox(body, bodyComp.Width, bodyComp.Height, 0))
	}

	filter := shapeFilter(w, e)
	for _, shape := range shapes {
		shape.SetFriction(bodyComp.Friction)
		shape.SetElasticity(bodyComp.Elasticity)
		shape.SetFilter(filter)
		ps.space.AddShape(shape)
		ps.shapes[shape] = e
	}
	info.shapes = shapes
	return info
}

// shapeFilter turns e's CollisionLayer into a cp filter. Zero fields mean
// every category.
func shapeFilter(w *ecs.World, e ecs.Entity) cp.ShapeFilter {
	layer, ok := ecs.Get(w, e, component.CollisionLayerComponent.Kind())
	if !ok {
		return cp.SHAPE_FILTER_ALL
	}
	category, mask := uint(layer.Category), uint(layer.Mask)
	if category == 0 {
		category = cp.ALL_CATEGORIES
	}
	if mask == 0 {
		mask = cp.ALL_CATEGORIES
	}
	return cp.NewShapeFilter(cp.NO_GROUP, category, mask)
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	for e, info := range ps.entities {
		if info.kind == component.BodyStatic {
			continue
		}
		transform, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		pos := info.body.Position()
		transform.X, transform.Y = pos.X, pos.Y
		transform.Rotation = info.body.Angle()
		info.lastX, info.lastY = pos.X, pos.Y

		if info.kind == component.BodyDynamic {
			if v, ok := ecs.Get(w, e, component.VelocityComponent.Kind()); ok {
				vel := info.body.Velocity()
				v.X, v.Y = vel.X, vel.Y
			}
		}
	}
}

func (ps *PhysicsSystem) flushContacts(w *ecs.World) {
	ecs.ForEach(w, component.CollidingEntitiesComponent.Kind(), func(e ecs.Entity, colliding *component.CollidingEntities) {
		colliding.Entities = colliding.Entities[:0]
		info := ps.entities[e]
		if info == nil {
			return
		}
		info.body.EachArbiter(func(arb *cp.Arbiter) {
			a, b := arb.Shapes()
			other, ok := ps.shapes[b]
			if ps.shapes[a] != e {
				other, ok = ps.shapes[a]
			}
			if !ok || other == e || colliding.Contains(uint64(other)) {
				return
			}
			colliding.Entities = append(colliding.Entities, uint64(other))
		})
	})
}

func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, info := range ps.entities {
		if ecs.IsAlive(w, e) && ecs.Has(w, e, component.PhysicsBodyComponent.Kind()) {
			continue
		}
		ps.removeBody(info)
		delete(ps.entities, e)
	}
}

func (ps *PhysicsSystem) removeBody(info *bodyInfo) {
	for _, shape := range info.shapes {
		ps.space.RemoveShape(shape)
		delete(ps.shapes, shape)
	}
	ps.space.RemoveBody(info.body)
}
