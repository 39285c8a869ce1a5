package museum

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-museum/common"
	"github.com/Carmen-Shannon/oxy-museum/engine/exhibit"
	"github.com/Carmen-Shannon/oxy-museum/engine/game_object"
	"github.com/Carmen-Shannon/oxy-museum/engine/light"
	"github.com/go-gl/mathgl/mgl32"
)

// Shared decor appearances.
var (
	pillarLook   = common.NewAppearance(0.75, 0.72, 0.68)
	frameLook    = common.NewAppearance(0.3, 0.2, 0.1)
	signLook     = common.NewAppearance(0.1, 0.15, 0.3).WithEmissive(0.3)
	pedestalLook = common.NewAppearance(0.5, 0.5, 0.5)
	lampLook     = common.NewAppearance(1, 0.95, 0.8).WithEmissive(1)

	sphereColors = [][3]float32{
		{0.9, 0.2, 0.2}, {0.95, 0.6, 0.1}, {0.9, 0.9, 0.2}, {0.2, 0.8, 0.3}, {0.2, 0.4, 0.9},
	}
)

// decorator places the themed objects of every room with Exhibit.PlaceObject.
type decorator struct {
	l     *layout
	reg   exhibit.Registry
	style exhibit.Style
}

func newDecorator(l *layout, reg exhibit.Registry, style exhibit.Style) *decorator {
	return &decorator{l: l, reg: reg, style: style}
}

func (d *decorator) decorate() {
	for _, id := range Rooms {
		d.lamp(id)
	}

	d.intro()
	d.brightContrast()
	d.blur()
	d.halls()
	d.celShading()
	d.bloom()
	d.particles()
	d.everything()
}

// place creates an object, registers it and puts it at local inside the room.
func (d *decorator) place(room RoomID, name string, look common.Appearance, local, scale mgl32.Vec3, options ...game_object.GameObjectBuilderOption) game_object.GameObject {
	options = append([]game_object.GameObjectBuilderOption{
		game_object.WithName(fmt.Sprintf("%s/%s", room, name)),
		game_object.WithAppearance(look),
		game_object.WithScale(scale[0], scale[1], scale[2]),
	}, options...)
	obj := game_object.NewGameObject(options...)
	d.reg.Add(obj)
	d.l.rooms[room].PlaceObject(obj, local)
	return obj
}

func (d *decorator) sphere(room RoomID, name string, look common.Appearance, local mgl32.Vec3, diameter float32) game_object.GameObject {
	return d.place(room, name, look.WithMesh(common.MeshSphere), local, mgl32.Vec3{diameter, diameter, diameter})
}

func (d *decorator) pillar(room RoomID, name string, x, z float32) game_object.GameObject {
	h := d.style.WallHeight
	return d.place(room, name, pillarLook, mgl32.Vec3{x, h / 2, z}, mgl32.Vec3{1, h, 1})
}

// painting hangs a framed canvas flat against the wall in the given slot.
func (d *decorator) painting(room RoomID, name string, wall exhibit.Direction, offset float32, canvas common.Appearance) {
	half := d.l.rooms[room].Size()/2 - d.style.Thickness
	center := wall.Vector().Mul(half).Add(mgl32.Vec3{0, 4, 0})
	along := mgl32.Vec3{1, 0, 0}
	frameScale := mgl32.Vec3{5, 3.5, 0.2}
	canvasScale := mgl32.Vec3{4.4, 2.9, 0.25}
	if wall.FacesX() {
		along = mgl32.Vec3{0, 0, 1}
		frameScale = mgl32.Vec3{0.2, 3.5, 5}
		canvasScale = mgl32.Vec3{0.25, 2.9, 4.4}
	}
	center = center.Add(along.Mul(offset))
	d.place(room, name+"/frame", frameLook, center, frameScale)
	d.place(room, name+"/canvas", canvas, center, canvasScale)
}

func (d *decorator) bob(obj game_object.GameObject, height, duration float32) {
	d.l.animations = append(d.l.animations, NewBob(obj.Transform(), height, duration))
}

func (d *decorator) spin(obj game_object.GameObject, duration float32) {
	d.l.animations = append(d.l.animations, NewSpin(obj.Transform(), duration))
}

// lamp hangs an emissive fixture under the ceiling with a point light attached to it.
func (d *decorator) lamp(room RoomID) {
	size := d.l.rooms[room].Size()
	l := light.NewLight(light.LightTypePoint,
		light.WithColor(1, 0.95, 0.85),
		light.WithIntensity(1.5),
		light.WithRange(size),
	)
	d.place(room, "lamp", lampLook,
		mgl32.Vec3{0, d.style.WallHeight - 0.5, 0},
		mgl32.Vec3{1.5, 0.2, 1.5},
		game_object.WithLight(l),
	)
}

func (d *decorator) intro() {
	size := d.l.rooms[Intro].Size()
	d.place(Intro, "sign", signLook, mgl32.Vec3{0, 5, -size/2 + d.style.Thickness + 0.1}, mgl32.Vec3{8, 3, 0.2})
	d.pillar(Intro, "pillar-l", -6, -6)
	d.pillar(Intro, "pillar-r", 6, -6)
	globe := d.sphere(Intro, "globe", common.NewAppearance(0.3, 0.5, 0.9), mgl32.Vec3{0, 2, 0}, 2)
	d.spin(globe, 8)
}

func (d *decorator) brightContrast() {
	for i, c := range sphereColors {
		z := float32(i-2) * 3
		s := d.sphere(BrightContrast, fmt.Sprintf("sphere-%d", i), common.NewAppearance(c[0], c[1], c[2]), mgl32.Vec3{2, 1.5, z}, 1.5)
		d.bob(s, 0.75, 1.5+float32(i)*0.25)
	}
	d.painting(BrightContrast, "gradient", exhibit.PosX, 0, common.NewAppearance(0.6, 0.6, 0.6))
}

func (d *decorator) blur() {
	d.painting(Blur, "landscape", exhibit.NegX, 0, common.NewAppearance(0.3, 0.6, 0.3))
	d.painting(Blur, "portrait", exhibit.PosZ, 0, common.NewAppearance(0.7, 0.5, 0.4))
	d.painting(Blur, "seascape", exhibit.NegZ, 0, common.NewAppearance(0.2, 0.4, 0.7))
}

func (d *decorator) halls() {
	d.pillar(Halls, "pillar-a", -4, -2.5)
	d.pillar(Halls, "pillar-b", 4, -2.5)
	d.pillar(Halls, "pillar-c", -4, 2.5)
	d.pillar(Halls, "pillar-d", 4, 2.5)
}

func (d *decorator) celShading() {
	for i, c := range sphereColors {
		x := float32(i-2) * 3
		d.sphere(CelShading, fmt.Sprintf("sphere-%d", i), common.NewAppearance(c[0], c[1], c[2]), mgl32.Vec3{x, 1.5, -4}, 2)
	}
	block := d.place(CelShading, "block", pillarLook, mgl32.Vec3{0, 1.5, 4}, mgl32.Vec3{2, 3, 2})
	d.spin(block, 6)
}

func (d *decorator) bloom() {
	for i, c := range sphereColors {
		z := float32(i-2) * 3
		look := common.NewAppearance(c[0], c[1], c[2]).WithEmissive(0.9)
		s := d.sphere(Bloom, fmt.Sprintf("orb-%d", i), look, mgl32.Vec3{-2, 2, z}, 1.2)
		d.bob(s, 1, 2+float32(i)*0.3)
	}
}

func (d *decorator) particles() {
	d.place(Particles, "pedestal", pedestalLook, mgl32.Vec3{0, 0.5, 0}, mgl32.Vec3{2, 1, 2})
	d.l.rooms[Particles].PlaceObject(d.l.emitter, mgl32.Vec3{0, 1.5, 0})
}

func (d *decorator) everything() {
	d.painting(Everything, "mural", exhibit.PosZ, 0, common.NewAppearance(0.8, 0.3, 0.5))
	for i, c := range sphereColors[:3] {
		x := float32(i-1) * 6
		look := common.NewAppearance(c[0], c[1], c[2]).WithEmissive(0.6)
		s := d.sphere(Everything, fmt.Sprintf("orb-%d", i), look, mgl32.Vec3{x, 2, 0}, 2)
		d.bob(s, 1.5, 2.5)
	}
	centerpiece := d.place(Everything, "centerpiece", pillarLook, mgl32.Vec3{0, 2, 8}, mgl32.Vec3{3, 4, 3})
	d.spin(centerpiece, 10)
	d.pillar(Everything, "pillar-l", -10, 10)
	d.pillar(Everything, "pillar-r", 10, 10)
}
