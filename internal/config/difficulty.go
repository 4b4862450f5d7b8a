package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
// Every preset maps to a fixed tick interval; the speed never changes during a game.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

var presetTickMS = map[DifficultyPreset]int{
	DifficultyEasy:   180,
	DifficultyNormal: 120,
	DifficultyHard:   70,
}

// Presets lists the presets from slowest to fastest.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}
}

// ParseDifficulty converts a user supplied name to a preset.
func ParseDifficulty(name string) (DifficultyPreset, error) {
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := presetTickMS[p]; !ok {
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", name)
	}
	return p, nil
}

// TickMSForPreset returns the tick period in milliseconds for a preset,
// or 0 for an unknown one.
func TickMSForPreset(preset DifficultyPreset) int {
	return presetTickMS[preset]
}

// ApplySnakePreset overrides the tick interval with the preset's.
// Unknown presets leave the config unchanged.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	ms, ok := presetTickMS[preset]
	if !ok {
		return
	}
	cfg.Difficulty = preset
	cfg.Speed.TickMS = ms
}
