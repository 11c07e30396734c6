package ecs

import (
	"cmp"
	"slices"
)

// StorageStats is a point-in-time summary of a Storage.
type StorageStats struct {
	TotalEntityCount int
	SingletonCount   int
	Components       []ComponentStats
}

// ComponentStats counts live components of one type.
type ComponentStats struct {
	Name  string
	Count int
}

// CollectStats summarises entity, singleton and per-component counts.
// Components are sorted by type name.
func (s *Storage) CollectStats() StorageStats {
	stats := StorageStats{
		TotalEntityCount: s.alive,
		SingletonCount:   len(s.singletons),
		Components:       make([]ComponentStats, 0, len(s.components)),
	}
	for compType, cs := range s.components {
		stats.Components = append(stats.Components, ComponentStats{
			Name:  compType.String(),
			Count: cs.Len(),
		})
	}
	slices.SortFunc(stats.Components, func(a, b ComponentStats) int {
		return cmp.Compare(a.Name, b.Name)
	})
	return stats
}
