package entity

import "image/color"

// TerrainType determines the surface physics of a ground segment
type TerrainType int

const (
	TerrainAsphalt TerrainType = iota
	TerrainGrass
	TerrainSand
	TerrainWater
)

// String returns the terrain type name
func (t TerrainType) String() string {
	switch t {
	case TerrainAsphalt:
		return "asphalt"
	case TerrainGrass:
		return "grass"
	case TerrainSand:
		return "sand"
	case TerrainWater:
		return "water"
	default:
		return "unknown"
	}
}

// ObstacleType determines how an obstacle reacts to the player
type ObstacleType int

const (
	ObstacleStatue ObstacleType = iota // heavy, fatal on contact
	ObstacleChest                      // heavy, but can be landed on
	ObstacleBalloon                    // soft, bounces the player
)

// String returns the obstacle type name
func (o ObstacleType) String() string {
	switch o {
	case ObstacleStatue:
		return "statue"
	case ObstacleChest:
		return "chest"
	case ObstacleBalloon:
		return "balloon"
	default:
		return "unknown"
	}
}

// PowerType identifies a power-up effect
type PowerType int

const (
	PowerNone PowerType = iota
	PowerSpeedBoost
	PowerScoreMultiplier
	PowerBouncyShoes
	PowerLowerGravity
	PowerShield
)

// String returns the power type name
func (p PowerType) String() string {
	switch p {
	case PowerNone:
		return "none"
	case PowerSpeedBoost:
		return "speed boost"
	case PowerScoreMultiplier:
		return "score multiplier"
	case PowerBouncyShoes:
		return "bouncy shoes"
	case PowerLowerGravity:
		return "lower gravity"
	case PowerShield:
		return "shield"
	default:
		return "unknown"
	}
}

// TerrainColors maps terrain types to their fill colors
var TerrainColors = map[TerrainType]color.RGBA{
	TerrainAsphalt: {90, 90, 100, 255},
	TerrainGrass:   {80, 160, 70, 255},
	TerrainSand:    {210, 190, 120, 255},
	TerrainWater:   {60, 110, 200, 255},
}

// ObstacleColors maps obstacle types to their fill colors
var ObstacleColors = map[ObstacleType]color.RGBA{
	ObstacleStatue:  {160, 160, 160, 255},
	ObstacleChest:   {150, 100, 50, 255},
	ObstacleBalloon: {230, 80, 80, 255},
}

// PowerColors maps power types to their fill colors
var PowerColors = map[PowerType]color.RGBA{
	PowerSpeedBoost:      {255, 220, 60, 255},
	PowerScoreMultiplier: {120, 230, 120, 255},
	PowerBouncyShoes:     {255, 140, 200, 255},
	PowerLowerGravity:    {140, 140, 255, 255},
	PowerShield:          {90, 200, 230, 255},
}
