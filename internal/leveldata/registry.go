package leveldata

import (
	"errors"
	"fmt"
)

// LevelRegistry holds the embedded level definitions.
type LevelRegistry struct {
	levels    map[string]*LevelDef
	all       []LevelDef
	defaultID string
}

// NewLevelRegistry creates a registry from loaded level definitions.
// If defaultID is empty the first level is the default.
func NewLevelRegistry(levels []LevelDef, defaultID string) *LevelRegistry {
	registry := &LevelRegistry{
		levels:    make(map[string]*LevelDef),
		all:       levels,
		defaultID: defaultID,
	}
	for i := range levels {
		registry.levels[levels[i].ID] = &levels[i]
	}
	if registry.defaultID == "" && len(levels) > 0 {
		registry.defaultID = levels[0].ID
	}
	return registry
}

// LoadLevelRegistry loads and creates a registry from the embedded levels.json.
func LoadLevelRegistry() (*LevelRegistry, error) {
	file, err := LoadLevels()
	if err != nil {
		return nil, err
	}
	if len(file.Levels) == 0 {
		return nil, errors.New("no levels loaded from levels.json")
	}
	return NewLevelRegistry(file.Levels, file.Default), nil
}

// MustLoadLevelRegistry loads a registry, panicking on error.
func MustLoadLevelRegistry() *LevelRegistry {
	registry, err := LoadLevelRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the level definition with the given ID, or nil if not found.
func (r *LevelRegistry) GetByID(id string) *LevelDef {
	return r.levels[id]
}

// Default returns the level to play when none is selected.
func (r *LevelRegistry) Default() (*LevelDef, error) {
	def := r.GetByID(r.defaultID)
	if def == nil {
		return nil, fmt.Errorf("default level %q not found", r.defaultID)
	}
	return def, nil
}

// Resolve picks a level by ID, falling back to the default for an empty ID.
func (r *LevelRegistry) Resolve(id string) (*LevelDef, error) {
	if id == "" {
		return r.Default()
	}
	def := r.GetByID(id)
	if def == nil {
		return nil, fmt.Errorf("unknown level %q", id)
	}
	return def, nil
}

// All returns all level definitions.
func (r *LevelRegistry) All() []LevelDef {
	return r.all
}

// Count returns the number of levels in the registry.
func (r *LevelRegistry) Count() int {
	return len(r.all)
}
