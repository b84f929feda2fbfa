// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 760
	ScreenHeight = 900

	// Map geometry: a square board whose outer ring is the enemy track.
	MapSize  = 12
	InnerMin = 1
	InnerMax = MapSize - 2

	CellSize      = 56.0 // pixels per grid cell in the ebiten front-end
	BoardOffsetX  = 44.0
	BoardOffsetY  = 120.0
	UnitRadius    = 16.0
	EnemyRadius   = 11.0
	BossRadius    = 22.0
	HUDLineHeight = 18

	TargetTPS = 60
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	PathColor       = color.RGBA{70, 60, 50, 255}
	InnerColor      = color.RGBA{40, 70, 60, 255}
	GridStrokeColor = color.RGBA{15, 15, 20, 255}
	SpawnColor      = color.RGBA{120, 90, 40, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	BarrierColor    = color.RGBA{120, 200, 255, 90}
	FreezeColor     = color.RGBA{160, 220, 255, 60}

	// Indexed by defs.Grade (F..S).
	GradeColors = []color.RGBA{
		{136, 136, 136, 255}, // F
		{76, 175, 80, 255},   // E
		{33, 150, 243, 255},  // D
		{156, 39, 176, 255},  // C
		{255, 152, 0, 255},   // B
		{244, 67, 54, 255},   // A
		{255, 215, 0, 255},   // S
	}

	// Indexed by defs.Archetype.
	ArchetypeColors = []color.RGBA{
		{139, 195, 74, 255}, // single
		{255, 87, 34, 255},  // area
		{0, 188, 212, 255},  // penetrating
	}

	EnemyTypeColors = map[string]color.RGBA{
		"A": {231, 76, 60, 255},
		"B": {52, 152, 219, 255},
		"C": {46, 204, 113, 255},
		"D": {243, 156, 18, 255},
	}
	BossColor      = color.RGBA{255, 0, 0, 255}
	CritColor      = color.RGBA{255, 215, 0, 255}
	DamageColor    = color.RGBA{255, 68, 68, 255}
	HighGradeColor = color.RGBA{255, 107, 53, 255}
	DeathColor     = color.RGBA{255, 136, 68, 255}
	HealColor      = color.RGBA{120, 255, 140, 255}
	LightningColor = color.RGBA{200, 220, 255, 255}
)
