package game

import (
	"github.com/memmaker/skirmish/engine/grid"
	"github.com/pkg/errors"
)

type TargetingStyle int

const (
	StyleCycleTarget TargetingStyle = iota
	StyleGroundAim
	StyleDirectionalAim
	StyleAutoHitAll
	StyleNoTarget
)

func (s TargetingStyle) ToString() string {
	switch s {
	case StyleCycleTarget:
		return "CycleTarget"
	case StyleGroundAim:
		return "GroundAim"
	case StyleDirectionalAim:
		return "DirectionalAim"
	case StyleAutoHitAll:
		return "AutoHitAll"
	case StyleNoTarget:
		return "NoTarget"
	default:
		return "Unknown"
	}
}

type Affects int

const (
	AffectsEnemies Affects = iota
	AffectsAllies
	AffectsAll
)

// Pattern is the shape of an attack: either a fixed set of tile offsets or a
// procedural, facing-dependent function. Exactly one variant per pattern name.
type Pattern interface {
	isPattern()
}

// FixedPattern is a static set of offsets relative to the actor.
type FixedPattern []grid.Int2

func (FixedPattern) isPattern() {}

// ProceduralPattern builds a facing-dependent shape as pixel-space rectangles.
type ProceduralPattern func(actor *Unit, gameMap *grid.Map, facing grid.Int2) []grid.Rect

func (ProceduralPattern) isPattern() {}

// ActionDefinition is an immutable blueprint supplied by external data.
type ActionDefinition struct {
	Name            string
	Style           TargetingStyle
	Range           int32 // 0 means pattern-only, no diamond range
	MinRange        int32 // defaulted to 1 at registration
	LineOfSightOnly bool
	Piercing        bool // exempt from line-of-sight blocking
	PatternType     string
	AoERadius       int32 // extra blast radius around a ground-aim tile
	Affects         Affects
	Cost            int // wisp cost, 0 is always affordable
	Power           int // damage or heal amount, consumed by the resolver
	Healing         bool
	TeleportStrike  bool // needs a free tile behind the target to land on
}

// Catalog holds the blueprint data the core consumes. Lookups are soft:
// a missing entry is logged by the caller and skipped, never fatal.
type Catalog struct {
	actions  map[string]*ActionDefinition
	patterns map[string]Pattern
}

func NewCatalog() *Catalog {
	return &Catalog{
		actions:  make(map[string]*ActionDefinition),
		patterns: make(map[string]Pattern),
	}
}

func (c *Catalog) RegisterAction(def ActionDefinition) error {
	if def.Name == "" {
		return errors.New("action definition needs a name")
	}
	if _, exists := c.actions[def.Name]; exists {
		return errors.Errorf("action %s is already registered", def.Name)
	}
	if def.MinRange == 0 {
		def.MinRange = 1
	}
	c.actions[def.Name] = &def
	return nil
}

func (c *Catalog) RegisterPattern(name string, pattern Pattern) error {
	if pattern == nil {
		return errors.Errorf("pattern %s has no shape", name)
	}
	if _, exists := c.patterns[name]; exists {
		return errors.Errorf("pattern %s is already registered", name)
	}
	c.patterns[name] = pattern
	return nil
}

func (c *Catalog) GetAction(name string) (*ActionDefinition, bool) {
	def, ok := c.actions[name]
	return def, ok
}

// ResolvePattern returns the pattern for a definition, or nil when the
// definition has no pattern type (the raw diamond-range fallback).
func (c *Catalog) ResolvePattern(def *ActionDefinition) (Pattern, bool) {
	if def.PatternType == "" {
		return nil, true
	}
	pattern, ok := c.patterns[def.PatternType]
	return pattern, ok
}
