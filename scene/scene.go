// Package scene persists the editor's world as plain shape records.
// Records carry raw Q32.32 values so a save/load round trip is exact;
// JSON is the on-disk form, nothing else interprets it
package scene

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	"github.com/lixenwraith/planar/core"
	"github.com/lixenwraith/planar/engine"
	"github.com/lixenwraith/planar/geometry"
	"github.com/lixenwraith/planar/physics"
	"github.com/lixenwraith/planar/vmath"
)

// ShapeRecord is one entity flattened to plain fields. Points holds
// the defining vertices for point/line/bbox/polygon kinds; circles
// store their center there and the radius separately
type ShapeRecord struct {
	Kind   string     `json:"kind"`
	Points [][2]int64 `json:"points,omitempty"`
	Radius int64      `json:"radius,omitempty"`

	Position [2]int64 `json:"position"`
	Rotation int64    `json:"rotation"`
	Scale    [2]int64 `json:"scale"`

	Mass        int64 `json:"mass"`
	Restitution int64 `json:"restitution"`
	Friction    int64 `json:"friction"`

	IsTrigger bool   `json:"is_trigger"`
	Layer     uint32 `json:"layer"`
	Mask      uint32 `json:"mask"`
}

// Scene is a saved document
type Scene struct {
	ID     uuid.UUID     `json:"id"`
	Name   string        `json:"name"`
	Shapes []ShapeRecord `json:"shapes"`
}

func New(name string) *Scene {
	return &Scene{
		ID:   uuid.New(),
		Name: name,
	}
}

// Capture snapshots every shape-carrying entity. Entities missing a
// transform or flag are skipped, consistent with the pipeline's
// missing-component policy
func Capture(name string, space *physics.Space) *Scene {
	s := New(name)
	for _, e := range space.Shapes.Entities() {
		shape, ok := space.Shapes.Get(e)
		if !ok {
			continue
		}
		tr, ok := space.Transforms.Get(e)
		if !ok {
			continue
		}
		flag, ok := space.Flags.Get(e)
		if !ok {
			continue
		}
		body, _ := space.Bodies.Get(e)

		rec := ShapeRecord{
			Position:    [2]int64{tr.Position.X, tr.Position.Y},
			Rotation:    tr.Rotation.Angle(),
			Scale:       [2]int64{tr.Scale.X, tr.Scale.Y},
			Mass:        body.Mass,
			Restitution: body.Restitution,
			Friction:    body.Friction,
			IsTrigger:   flag.IsTrigger,
			Layer:       flag.Layer,
			Mask:        flag.Mask,
		}
		encodeShape(shape, &rec)
		s.Shapes = append(s.Shapes, rec)
	}
	return s
}

// Spawn instantiates every record into the world
func (s *Scene) Spawn(world *engine.World, space *physics.Space) []core.Entity {
	spawned := make([]core.Entity, 0, len(s.Shapes))
	for _, rec := range s.Shapes {
		shape, ok := decodeShape(rec)
		if !ok {
			continue
		}
		e := world.CreateEntity()
		space.Shapes.Set(e, shape)
		space.Transforms.Set(e, physics.Transform{
			Position: vmath.V(rec.Position[0], rec.Position[1]),
			Rotation: vmath.DirFromAngle(rec.Rotation),
			Scale:    vmath.V(rec.Scale[0], rec.Scale[1]),
		})
		space.Flags.Set(e, physics.CollisionFlag{
			IsTrigger: rec.IsTrigger,
			Layer:     rec.Layer,
			Mask:      rec.Mask,
		})
		space.Bodies.Set(e, physics.Body{
			Mass:        rec.Mass,
			Restitution: rec.Restitution,
			Friction:    rec.Friction,
		})
		space.Motions.Set(e, physics.Motion{})
		spawned = append(spawned, e)
	}
	return spawned
}

func encodeShape(shape geometry.Shape, rec *ShapeRecord) {
	rec.Kind = shape.Kind().String()
	switch sh := shape.(type) {
	case geometry.Point:
		rec.Points = [][2]int64{{sh.Pos.X, sh.Pos.Y}}
	case geometry.Line:
		rec.Points = [][2]int64{
			{sh.Start.Pos.X, sh.Start.Pos.Y},
			{sh.End.Pos.X, sh.End.Pos.Y},
		}
	case geometry.Bbox:
		rec.Points = [][2]int64{
			{sh.Min.Pos.X, sh.Min.Pos.Y},
			{sh.Max.Pos.X, sh.Max.Pos.Y},
		}
	case geometry.Circle:
		rec.Points = [][2]int64{{sh.Center.Pos.X, sh.Center.Pos.Y}}
		rec.Radius = sh.Radius
	case geometry.Polygon:
		rec.Points = make([][2]int64, len(sh))
		for i, pt := range sh {
			rec.Points[i] = [2]int64{pt.Pos.X, pt.Pos.Y}
		}
	}
}

func decodeShape(rec ShapeRecord) (geometry.Shape, bool) {
	pt := func(i int) geometry.Point {
		return geometry.Pt(rec.Points[i][0], rec.Points[i][1])
	}
	switch rec.Kind {
	case "point":
		if len(rec.Points) < 1 {
			return nil, false
		}
		return pt(0), true
	case "line":
		if len(rec.Points) < 2 {
			return nil, false
		}
		return geometry.Ln(pt(0), pt(1)), true
	case "bbox":
		if len(rec.Points) < 2 {
			return nil, false
		}
		return geometry.Bb(pt(0), pt(1)), true
	case "circle":
		if len(rec.Points) < 1 {
			return nil, false
		}
		return geometry.Cr(pt(0), rec.Radius), true
	case "polygon":
		poly := make(geometry.Polygon, len(rec.Points))
		for i := range rec.Points {
			poly[i] = pt(i)
		}
		return poly, true
	}
	return nil, false
}

// Encode renders the scene as indented JSON for the file on disk
func (s *Scene) Encode() ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

func Decode(data []byte) (*Scene, error) {
	var s Scene
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	return &s, nil
}

// Checksum hashes the canonical (compact) encoding; save verification
// compares it after writing
func (s *Scene) Checksum() (uint64, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return 0, err
	}
	return xxhash.Sum64(data), nil
}

// Save writes the scene to path
func (s *Scene) Save(path string) error {
	data, err := s.Encode()
	if err != nil {
		return fmt.Errorf("encode scene: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write scene: %w", err)
	}
	return nil
}

// Load reads a scene from path
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	return Decode(data)
}
