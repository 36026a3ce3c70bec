package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Body identifies a celestial body using the numbering the mobile client
// already sends over the wire (Sun=0 .. Pluto=9, lunar nodes 10/11).
type Body int

// Supported bodies.
const (
	Sun Body = iota
	Moon
	Mercury
	Venus
	Mars
	Jupiter
	Saturn
	Uranus
	Neptune
	Pluto
	MeanNode
	TrueNode
)

// ErrUnknownBody is returned for body ids outside the supported set.
var ErrUnknownBody = errors.New("unknown body")

var bodyNames = map[Body]string{
	Sun:      "sun",
	Moon:     "moon",
	Mercury:  "mercury",
	Venus:    "venus",
	Mars:     "mars",
	Jupiter:  "jupiter",
	Saturn:   "saturn",
	Uranus:   "uranus",
	Neptune:  "neptune",
	Pluto:    "pluto",
	MeanNode: "mean_node",
	TrueNode: "true_node",
}

// Valid reports whether b is a supported body id.
func (b Body) Valid() bool {
	_, ok := bodyNames[b]
	return ok
}

func (b Body) String() string {
	if name, ok := bodyNames[b]; ok {
		return name
	}
	return fmt.Sprintf("body(%d)", int(b))
}

// AllBodies returns the supported bodies in id order.
func AllBodies() []Body {
	bodies := make([]Body, 0, len(bodyNames))
	for b := Sun; b <= TrueNode; b++ {
		bodies = append(bodies, b)
	}
	return bodies
}

// ParseBody resolves a body from its name (case-insensitive).
func ParseBody(name string) (Body, error) {
	lower := strings.ToLower(strings.TrimSpace(name))
	for b, n := range bodyNames {
		if n == lower {
			return b, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownBody, name)
}
