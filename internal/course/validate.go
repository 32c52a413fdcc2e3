package course

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/puttmatch/backend/internal/game"
)

var validate = validator.New()

// ValidateManifest parses and validates manifest JSON. On failure it returns
// every problem found, not just the first.
func ValidateManifest(raw []byte) (*Manifest, []string) {
	var m Manifest
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, []string{fmt.Sprintf("manifest is not valid JSON: %v", err)}
	}

	msgs := structErrors("manifest", validate.Struct(&m))
	seen := make(map[string]bool, len(m.Holes))
	for i, e := range m.Holes {
		if e.HoleID != "" && seen[e.HoleID] {
			msgs = append(msgs, fmt.Sprintf("manifest.holes[%d]: duplicate holeId %q", i, e.HoleID))
		}
		seen[e.HoleID] = true
	}
	if len(msgs) > 0 {
		return nil, msgs
	}
	return &m, nil
}

// ValidateHole parses and validates one hole file. Nothing reaches the
// physics engine until this passes.
func ValidateHole(raw []byte) (*game.HoleData, []string) {
	var h game.HoleData
	if err := json.Unmarshal(raw, &h); err != nil {
		return nil, []string{fmt.Sprintf("hole is not valid JSON: %v", err)}
	}

	msgs := structErrors(h.HoleID, validate.Struct(&h))
	msgs = append(msgs, holeGeometryErrors(&h)...)
	if len(msgs) > 0 {
		return nil, msgs
	}
	return &h, nil
}

// structErrors flattens validator.ValidationErrors into field-level messages.
func structErrors(subject string, err error) []string {
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{fmt.Sprintf("%s: %v", subject, err)}
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: field %s fails %q", subject, fe.Namespace(), fe.Tag()))
	}
	return msgs
}

// holeGeometryErrors covers the tagged-union rules struct tags cannot
// express: each surface, height field and obstacle kind has its own
// required fields.
func holeGeometryErrors(h *game.HoleData) []string {
	var msgs []string
	bad := func(format string, args ...interface{}) {
		msgs = append(msgs, fmt.Sprintf("%s: %s", h.HoleID, fmt.Sprintf(format, args...)))
	}

	if !inBounds(h.Start, h.Bounds) {
		bad("start %v outside bounds", h.Start)
	}
	if !inBounds(h.Cup, h.Bounds) {
		bad("cup %v outside bounds", h.Cup)
	}

	for i, s := range h.Surfaces {
		if s.Zone.Max.X < s.Zone.Min.X || s.Zone.Max.Z < s.Zone.Min.Z {
			bad("surfaces[%d]: degenerate zone", i)
		}
		if s.Type == game.SurfaceSpeed && s.Dir.IsZero() {
			bad("surfaces[%d]: speed pad needs a direction", i)
		}
	}

	for i, f := range h.HeightFields {
		if f.Type == game.FieldDome && f.Radius <= 0 {
			bad("heightFields[%d]: dome needs radius > 0", i)
		}
	}

	for i, o := range h.Obstacles {
		switch o.Type {
		case game.ObstacleBumperRound:
			if o.Radius <= 0 {
				bad("obstacles[%d]: bumper_round needs radius > 0", i)
			}
		case game.ObstacleBumperWedge:
			if o.HalfLength <= 0 {
				bad("obstacles[%d]: bumper_wedge needs halfLength > 0", i)
			}
		case game.ObstacleSpinner:
			if o.Length <= 0 {
				bad("obstacles[%d]: spinner needs length > 0", i)
			}
		case game.ObstacleGate:
			if o.ArmLength <= 0 {
				bad("obstacles[%d]: gate needs armLength > 0", i)
			}
			if o.PeriodSec <= 0 {
				bad("obstacles[%d]: gate needs periodSec > 0", i)
			}
		case game.ObstacleBridge:
			if o.Width <= 0 {
				bad("obstacles[%d]: bridge needs width > 0", i)
			}
		case game.ObstacleTunnel:
			if o.Radius <= 0 {
				bad("obstacles[%d]: tunnel needs radius > 0", i)
			}
		case game.ObstacleSpeedGate:
			if o.MaxSpeed < o.MinSpeed {
				bad("obstacles[%d]: speed_gate maxSpeed below minSpeed", i)
			}
			if o.Entry.Max.X < o.Entry.Min.X || o.Entry.Max.Z < o.Entry.Min.Z {
				bad("obstacles[%d]: speed_gate has a degenerate entry zone", i)
			}
		}
	}

	for i, hz := range h.Hazards {
		if hz.Zone.Max.X < hz.Zone.Min.X || hz.Zone.Max.Z < hz.Zone.Min.Z {
			bad("hazards[%d]: degenerate zone", i)
		}
	}

	return msgs
}

func inBounds(p game.Vec2, b game.Bounds) bool {
	return p.X >= 0 && p.X <= b.Width && p.Z >= 0 && p.Z <= b.Height
}
