package models

import "fmt"

// FetchLevel selects how much of an entity is serialised.
type FetchLevel string

const (
	FetchLevelDefault FetchLevel = "default"
	FetchLevelCompact FetchLevel = "compact"
	FetchLevelIDOnly  FetchLevel = "id_only"
)

// Valid reports whether the level is one of the known values.
func (l FetchLevel) Valid() bool {
	switch l {
	case FetchLevelDefault, FetchLevelCompact, FetchLevelIDOnly:
		return true
	}
	return false
}

// UnmarshalText rejects unknown levels so decoding fails with a client error.
func (l *FetchLevel) UnmarshalText(text []byte) error {
	level := FetchLevel(text)
	if !level.Valid() {
		return fmt.Errorf("unknown fetch level %q", string(text))
	}
	*l = level
	return nil
}

// DefaultMaxFetchDepth bounds how many levels below the requested entity may
// be expanded beyond id_only.
const DefaultMaxFetchDepth = 2

// FetchPlan carries the level for the current entity, the level for its
// direct relations and the remaining expansion budget.
type FetchPlan struct {
	Level      FetchLevel
	Descendant FetchLevel
	Budget     int
}

// NewFetchPlan applies read defaults: default for the entity itself and
// id_only for its relations.
func NewFetchPlan(level, descendant *FetchLevel, maxDepth int) FetchPlan {
	plan := FetchPlan{Level: FetchLevelDefault, Descendant: FetchLevelIDOnly, Budget: maxDepth}
	if level != nil {
		plan.Level = *level
	}
	if descendant != nil {
		plan.Descendant = *descendant
	}
	if plan.Budget <= 0 {
		plan.Budget = DefaultMaxFetchDepth
	}
	return plan
}

// Nested returns the plan used for related entities. Grandchildren are
// id_only, and an exhausted budget forces id_only.
func (p FetchPlan) Nested() FetchPlan {
	next := FetchPlan{Level: p.Descendant, Descendant: FetchLevelIDOnly, Budget: p.Budget - 1}
	if next.Budget <= 0 {
		next.Level = FetchLevelIDOnly
		next.Budget = 0
	}
	return next
}

// Is reports whether the plan resolves to level.
func (p FetchPlan) Is(level FetchLevel) bool { return p.Level == level }
