package game

import "github.com/bounceshot/shooter/internal/geom"

// DefaultAngle points the cannon straight up.
const DefaultAngle = 90.0

// Cannon holds the current aim in degrees (counter-clockwise from +x, screen
// y down). It does not clamp; the input layer decides the legal range.
// The angle is read once per shot, so changing it never steers bullets
// already in flight.
type Cannon struct {
	angle float64
}

func NewCannon() *Cannon {
	return &Cannon{angle: DefaultAngle}
}

func (c *Cannon) SetAngle(a float64) { c.angle = a }
func (c *Cannon) Angle() float64     { return c.angle }

// Rotate adds delta degrees to the current aim.
func (c *Cannon) Rotate(delta float64) { c.angle += delta }

// Direction returns the unit firing vector for the current aim.
func (c *Cannon) Direction() geom.Vec2 {
	return geom.FromAngle(c.angle)
}
