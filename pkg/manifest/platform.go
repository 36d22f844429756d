package manifest

import "sort"

// Platform identifies a build platform a dependency edge can be limited to.
type Platform string

// Values of Platform.
const (
	PlatformIOS      Platform = "ios"
	PlatformMacOS    Platform = "macos"
	PlatformTVOS     Platform = "tvos"
	PlatformWatchOS  Platform = "watchos"
	PlatformVisionOS Platform = "visionos"
)

// IsValid reports whether the platform is a known value.
func (p Platform) IsValid() bool {
	switch p {
	case PlatformIOS, PlatformMacOS, PlatformTVOS, PlatformWatchOS, PlatformVisionOS:
		return true
	}
	return false
}

// PlatformCondition restricts a dependency edge to a set of platforms.
// A condition never holds an empty platform set; use When to construct.
type PlatformCondition struct {
	Platforms []Platform `json:"platforms"`
}

// When creates a PlatformCondition from the given platforms.
// It returns nil if no platforms are given, so an edge without restriction
// carries no condition instead of a condition with zero filters.
// Platforms are deduplicated and sorted for structural comparison.
func When(platforms ...Platform) *PlatformCondition {
	if len(platforms) == 0 {
		return nil
	}
	seen := make(map[Platform]struct{}, len(platforms))
	unique := make([]Platform, 0, len(platforms))
	for _, p := range platforms {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		unique = append(unique, p)
	}
	sort.Slice(unique, func(i, j int) bool { return unique[i] < unique[j] })
	return &PlatformCondition{Platforms: unique}
}

// Equal reports whether two conditions restrict the same platform set.
// Both nil (unconditional) compare equal.
func (c *PlatformCondition) Equal(o *PlatformCondition) bool {
	if c == nil || o == nil {
		return c == o
	}
	if len(c.Platforms) != len(o.Platforms) {
		return false
	}
	for i, p := range c.Platforms {
		if o.Platforms[i] != p {
			return false
		}
	}
	return true
}

func (c *PlatformCondition) validate() error {
	if len(c.Platforms) == 0 {
		return ErrEmptyCondition
	}
	for _, p := range c.Platforms {
		if !p.IsValid() {
			return &DecodeError{Field: "condition.platforms"}
		}
	}
	return nil
}
