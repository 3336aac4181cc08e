package possession

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// MaxPitch keeps the free-look camera short of looking straight up or down.
var MaxPitch = mgl32.DegToRad(89)

// Rig is the free-look camera. While a character is controlled the rig's
// position is authoritative and the character follows it.
//
// Yaw 0 looks towards -Z; positive yaw turns right towards +X. Positive
// pitch looks up.
type Rig struct {
	Position mgl32.Vec3
	Yaw      float32
	Pitch    float32
}

// Turn rotates the rig, clamping pitch to MaxPitch.
func (r *Rig) Turn(dYaw, dPitch float32) {
	r.Yaw = wrapAngle(r.Yaw + dYaw)
	r.Pitch = mgl32.Clamp(r.Pitch+dPitch, -MaxPitch, MaxPitch)
}

// Forward returns the horizontal unit vector the rig faces.
func (r *Rig) Forward() mgl32.Vec3 {
	s, c := math.Sincos(float64(r.Yaw))
	return mgl32.Vec3{float32(s), 0, float32(-c)}
}

// Right returns the horizontal unit vector to the rig's right.
func (r *Rig) Right() mgl32.Vec3 {
	s, c := math.Sincos(float64(r.Yaw))
	return mgl32.Vec3{float32(c), 0, float32(s)}
}

// Direction returns the unit view vector including pitch.
func (r *Rig) Direction() mgl32.Vec3 {
	sy, cy := math.Sincos(float64(r.Yaw))
	sp, cp := math.Sincos(float64(r.Pitch))
	return mgl32.Vec3{float32(sy * cp), float32(sp), float32(-cy * cp)}
}

// wrapAngle keeps an angle in (-pi, pi]. Non-finite angles become 0.
func wrapAngle(a float32) float32 {
	w := math.Remainder(float64(a), 2*math.Pi)
	if math.IsNaN(w) {
		return 0
	}
	r := float32(w)
	if r <= -math.Pi {
		r = -r
	}
	return r
}
