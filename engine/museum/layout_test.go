package museum

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-museum/engine/camera"
	"github.com/Carmen-Shannon/oxy-museum/engine/exhibit"
	"github.com/Carmen-Shannon/oxy-museum/engine/scene"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScene(x, y, z, yaw float32) scene.Scene {
	cam := camera.NewCamera(camera.WithController(camera.NewFirstPersonController(
		camera.WithStartPosition(x, y, z),
		camera.WithStartYaw(yaw),
		camera.WithMoveSpeed(10),
	)))
	return scene.NewScene("museum", cam, scene.WithComputeWorkers(1))
}

func TestBuildLayoutOrigins(t *testing.T) {
	l, err := BuildLayout(newTestScene(0, 5, 0, 0), exhibit.DefaultStyle())
	require.NoError(t, err)

	want := map[RoomID]mgl32.Vec3{
		Intro:          {0, 0, 0},
		BrightContrast: {20, 0, 0},
		Blur:           {-20, 0, 0},
		Halls:          {0, 0, 15},
		CelShading:     {0, 0, 30},
		Bloom:          {20, 0, 30},
		Particles:      {-20, 0, 30},
		Everything:     {0, 0, 55},
	}
	for id, origin := range want {
		got := l.Room(id).Origin()
		for i := range 3 {
			assert.InDelta(t, origin[i], got[i], 1e-4, "%s origin", id)
		}
	}

	exhibits := l.Exhibits()
	require.Len(t, exhibits, int(RoomCount))
	for i, e := range exhibits {
		assert.Equal(t, Rooms[i].String(), e.Name())
	}
}

func TestBuildLayoutCarvesDoorways(t *testing.T) {
	l, err := BuildLayout(newTestScene(0, 5, 0, 0), exhibit.DefaultStyle())
	require.NoError(t, err)

	carved := map[RoomID][]exhibit.Direction{
		Intro:          {exhibit.PosX, exhibit.NegX, exhibit.PosZ},
		BrightContrast: {exhibit.NegX},
		Blur:           {exhibit.PosX},
		Halls:          {exhibit.NegZ, exhibit.PosZ},
		CelShading:     {exhibit.NegZ, exhibit.PosX, exhibit.NegX, exhibit.PosZ},
		Bloom:          {exhibit.NegX},
		Particles:      {exhibit.PosX},
		Everything:     {exhibit.NegZ},
	}
	for _, id := range Rooms {
		e := l.Room(id)
		for _, dir := range exhibit.Directions {
			want := exhibit.WallFull
			for _, c := range carved[id] {
				if c == dir {
					want = exhibit.WallCarved
				}
			}
			assert.Equal(t, want, e.WallState(dir), "%s wall %s", id, dir)
		}
	}

	seg := l.Room(Everything).Wall(exhibit.NegZ).Transform()
	assert.InDelta(t, 11.5, seg.Scale()[0], 1e-4, "doorway into the 30 unit room uses the larger size")
}

func TestBuildLayoutFootprintsDoNotOverlap(t *testing.T) {
	l, err := BuildLayout(newTestScene(0, 5, 0, 0), exhibit.DefaultStyle())
	require.NoError(t, err)

	for _, a := range Rooms {
		for _, b := range Rooms {
			if a == b {
				continue
			}
			assert.False(t, l.Room(a).IsInExhibit(l.Room(b).Origin()), "%s contains origin of %s", a, b)
		}
	}
}

func TestBuildLayoutRegistersEverything(t *testing.T) {
	sc := newTestScene(0, 5, 0, 0)
	l, err := BuildLayout(sc, exhibit.DefaultStyle())
	require.NoError(t, err)

	surfaces := 0
	for _, e := range l.Exhibits() {
		surfaces += len(e.Surfaces())
	}
	assert.Greater(t, sc.Count(), surfaces, "decor is registered next to the surfaces")
	assert.Len(t, sc.Lights(), int(RoomCount), "one lamp per room")
	assert.NotEmpty(t, l.Animations())

	p := l.Emitter().Transform().Position()
	assert.True(t, l.Room(Particles).IsInExhibit(p))
}

func TestValidateStyle(t *testing.T) {
	style := exhibit.DefaultStyle()
	assert.NoError(t, ValidateStyle(style, 10, 20, 30))

	style.DoorGap = 10
	assert.ErrorIs(t, ValidateStyle(style, 10, 20), ErrDoorGapTooWide)

	style.DoorGap = 1.5
	assert.ErrorIs(t, ValidateStyle(style, 10, 20), ErrDoorGapTooNarrow)

	style = exhibit.DefaultStyle()
	style.DoorGap = 12
	_, err := BuildLayout(newTestScene(0, 5, 0, 0), style)
	assert.ErrorIs(t, err, ErrDoorGapTooWide)
}

func TestValidateStyleRejectsNonFiniteConstants(t *testing.T) {
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))
	cases := map[string]func(s *exhibit.Style){
		"nan thickness":   func(s *exhibit.Style) { s.Thickness = nan },
		"inf wall height": func(s *exhibit.Style) { s.WallHeight = inf },
		"nan door gap":    func(s *exhibit.Style) { s.DoorGap = nan },
		"inf door gap":    func(s *exhibit.Style) { s.DoorGap = inf },
		"nan buffer":      func(s *exhibit.Style) { s.CollisionBuffer = nan },
		"zero thickness":  func(s *exhibit.Style) { s.Thickness = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			style := exhibit.DefaultStyle()
			mutate(&style)
			assert.ErrorIs(t, ValidateStyle(style, RoomSizes()...), ErrInvalidStyle)

			_, err := BuildLayout(newTestScene(0, 5, 0, 0), style)
			assert.ErrorIs(t, err, ErrInvalidStyle)
		})
	}
}

func TestRoomSizesFollowFloorPlan(t *testing.T) {
	sizes := RoomSizes()
	require.Len(t, sizes, len(floorPlan))
	assert.Equal(t, float32(20), sizes[0])
	assert.Contains(t, sizes, float32(30))
}

func TestBuildRoomsPanicsOnUnbuiltParent(t *testing.T) {
	plan := []roomPlan{
		{id: Intro, size: 20, parent: noParent},
		{id: Bloom, size: 20, parent: CelShading, dir: exhibit.PosX},
	}
	assert.Panics(t, func() {
		_, _ = buildRooms(newTestScene(0, 5, 0, 0), exhibit.DefaultStyle(), plan)
	})
}

func TestBuildRoomsRejectsInvalidSize(t *testing.T) {
	plan := []roomPlan{{id: Intro, size: 0, parent: noParent}}
	_, err := buildRooms(newTestScene(0, 5, 0, 0), exhibit.DefaultStyle(), plan)
	assert.ErrorIs(t, err, exhibit.ErrInvalidSize)
}
