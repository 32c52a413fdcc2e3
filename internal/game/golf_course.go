package game

// Course geometry for one hole. Everything here is immutable once loaded;
// the physics tick reads it, never writes it.

// AABB is an axis-aligned box on the world plane, used for surface zones,
// hazards and speed-gate entries. Containment is inclusive of the edges.
type AABB struct {
	Min Vec2 `json:"min"`
	Max Vec2 `json:"max"`
}

// Contains reports whether p lies inside the box.
func (b AABB) Contains(p Vec2) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// Wall is a line segment the ball reflects off.
type Wall struct {
	A Vec2 `json:"a"`
	B Vec2 `json:"b"`
}

// Surface kinds.
const (
	SurfaceSand  = "sand"
	SurfaceSlow  = "slow"
	SurfaceSpeed = "speed"
)

// Surface is a damping zone. Speed pads additionally accelerate the ball
// along Dir up to MaxSpeed.
type Surface struct {
	Type string `json:"type" validate:"required,oneof=sand slow speed"`
	Zone AABB   `json:"zone"`

	// speed only; Accel and MaxSpeed fall back to the pad defaults when 0.
	Dir      Vec2    `json:"dir,omitempty"`
	Accel    float64 `json:"accel,omitempty"`
	MaxSpeed float64 `json:"maxSpeed,omitempty"`
}

// HeightField kinds.
const (
	FieldPlane = "plane"
	FieldDome  = "dome"
)

// HeightField tilts the ball via the gradient of a height function.
// A plane applies everywhere unless zoned; a dome applies within Radius
// of Center.
type HeightField struct {
	Type string `json:"type" validate:"required,oneof=plane dome"`

	// plane: h(x,z) = a*x + b*z
	A    float64 `json:"a,omitempty"`
	B    float64 `json:"b,omitempty"`
	Zone *AABB   `json:"zone,omitempty"`

	// dome
	Center Vec2    `json:"center,omitempty"`
	Radius float64 `json:"radius,omitempty"`
	Height float64 `json:"height,omitempty"`
}

// Obstacle kinds.
const (
	ObstacleBumperRound = "bumper_round"
	ObstacleBumperWedge = "bumper_wedge"
	ObstacleSpinner     = "spinner"
	ObstacleGate        = "gate"
	ObstacleBridge      = "bridge"
	ObstacleTunnel      = "tunnel"
	ObstacleSpeedGate   = "speed_gate"
)

// Obstacle is a tagged union over the seven obstacle kinds. Only the fields
// of the tagged kind are meaningful; the loader rejects holes that omit a
// kind's required fields.
type Obstacle struct {
	Type string `json:"type" validate:"required,oneof=bumper_round bumper_wedge spinner gate bridge tunnel speed_gate"`

	// bumper_round / bumper_wedge
	Pos         Vec2    `json:"pos,omitempty"`
	Radius      float64 `json:"radius,omitempty"` // also tunnel capture radius
	HalfLength  float64 `json:"halfLength,omitempty"`
	RotationDeg float64 `json:"rotationDeg,omitempty"`

	// spinner
	Pivot  Vec2    `json:"pivot,omitempty"`
	Length float64 `json:"length,omitempty"`
	RPS    float64 `json:"rps,omitempty"`
	Phase  float64 `json:"phase,omitempty"` // also gate phase

	// gate
	Hinge           Vec2    `json:"hinge,omitempty"`
	ArmLength       float64 `json:"armLength,omitempty"`
	ArcDeg          float64 `json:"arcDeg,omitempty"`
	PeriodSec       float64 `json:"periodSec,omitempty"`
	RotationBaseDeg float64 `json:"rotationBaseDeg,omitempty"`

	// bridge
	A     Vec2    `json:"a,omitempty"`
	B     Vec2    `json:"b,omitempty"`
	Width float64 `json:"width,omitempty"`

	// tunnel / speed_gate
	Enter Vec2 `json:"enter,omitempty"`
	Exit  Vec2 `json:"exit,omitempty"`

	// speed_gate
	Entry              AABB    `json:"entry,omitempty"`
	MinSpeed           float64 `json:"minSpeed,omitempty"`
	MaxSpeed           float64 `json:"maxSpeed,omitempty"`
	OnFail             string  `json:"onFail,omitempty"`
	ReflectRestitution float64 `json:"reflectRestitution,omitempty"`
}

// Hazard kinds.
const (
	HazardWater       = "water"
	HazardOutOfBounds = "out_of_bounds"
)

// Hazard is a position-only penalty zone. The tick reports the hit; the
// room layer owns the penalty and reset-to-last-safe.
type Hazard struct {
	Type string `json:"type" validate:"required,oneof=water out_of_bounds"`
	ID   string `json:"id" validate:"required"`
	Zone AABB   `json:"zone"`
}

// Bounds is the playable rectangle, origin at (0,0).
type Bounds struct {
	Width  float64 `json:"width" validate:"required,gt=0"`
	Height float64 `json:"height" validate:"required,gt=0"`
}

// Decor is rendering-only data the simulation never reads.
type Decor struct {
	Theme string `json:"theme,omitempty"`
	Seed  int64  `json:"seed,omitempty"`
}

// HoleData is the immutable description of one hole.
type HoleData struct {
	Version      int           `json:"version" validate:"required,gte=1"`
	HoleID       string        `json:"holeId" validate:"required"`
	Tier         int           `json:"tier" validate:"required,gte=1,lte=6"`
	Bounds       Bounds        `json:"bounds"`
	Start        Vec2          `json:"start"`
	Cup          Vec2          `json:"cup"`
	Walls        []Wall        `json:"walls"`
	Surfaces     []Surface     `json:"surfaces" validate:"dive"`
	HeightFields []HeightField `json:"heightFields" validate:"dive"`
	Obstacles    []Obstacle    `json:"obstacles" validate:"dive"`
	Hazards      []Hazard      `json:"hazards" validate:"dive"`
	Decor        Decor         `json:"decor,omitempty"`
}
