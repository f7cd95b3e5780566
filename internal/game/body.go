package game

import "github.com/bounceshot/shooter/internal/data"

// body is the size and speed shared by every entity of one kind.
type body struct {
	w, h  float64
	speed float64
}

func bodyFrom(t data.BodyTuning) *body {
	return &body{w: t.Width, h: t.Height, speed: t.Speed}
}
