package config

// PhysicsConfig is the root config for physics.json
type PhysicsConfig struct {
	Display   DisplayConfig   `json:"display"`
	World     WorldConfig     `json:"world"`
	Terrain   TerrainConfig   `json:"terrain"`
	Forces    ForcesConfig    `json:"forces"`
	Jump      JumpConfig      `json:"jump"`
	Velocity  VelocityConfig  `json:"velocity"`
	Collision CollisionConfig `json:"collision"`
	Powerups  PowerupsConfig  `json:"powerups"`
	Spawn     SpawnConfig     `json:"spawn"`
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth"`
	ScreenHeight int `json:"screenHeight"`
	Framerate    int `json:"framerate"`
}

type WorldConfig struct {
	TileSize   int `json:"tileSize"`
	MaxObjects int `json:"maxObjects"`
}

// TerrainConfig maps surface names to their physics parameters
type TerrainConfig struct {
	Surfaces map[string]SurfaceConfig `json:"surfaces"`
}

type SurfaceConfig struct {
	Gravity  float64 `json:"gravity"`
	Friction float64 `json:"friction"`
}

type ForcesConfig struct {
	SpringK              float64 `json:"springK"`              // Hooke constant for bounces
	SkateDivisor         float64 `json:"skateDivisor"`         // propulsion force = mass / divisor
	BuoyancyDensityScale float64 `json:"buoyancyDensityScale"` // density per unit mass in water
}

type JumpConfig struct {
	Impulse  float64 `json:"impulse"`  // launch velocity, positive = up
	FlipRate float64 `json:"flipRate"` // radians rotated per airborne tick

	// HoldFrames and HoldBonus set the jump charge: each tick the key
	// stays held after launch adds Impulse*HoldBonus/HoldFrames, up to
	// HoldFrames ticks, so hold duration picks the jump tier.
	HoldFrames int     `json:"holdFrames"`
	HoldBonus  float64 `json:"holdBonus"`
}

// VelocityConfig bounds the player velocity. FallCap is a magnitude;
// the lower vertical bound is -FallCap.
type VelocityConfig struct {
	MinSpeed float64 `json:"minSpeed"`
	MaxSpeed float64 `json:"maxSpeed"`
	FallCap  float64 `json:"fallCap"`
	RiseCap  float64 `json:"riseCap"`
}

type CollisionConfig struct {
	// AssumedObstacleMass is used for every elastic knock regardless
	// of the obstacle's own mass.
	AssumedObstacleMass float64 `json:"assumedObstacleMass"`

	// LandingToleranceFlips is the landing angle tolerance in
	// multiples of the flip rate.
	LandingToleranceFlips float64 `json:"landingToleranceFlips"`
}

type PowerupsConfig struct {
	DurationTicks       int     `json:"durationTicks"`
	SpeedBoost          float64 `json:"speedBoost"`
	ScoreMultiplier     int     `json:"scoreMultiplier"`
	BouncyJumpBoost     float64 `json:"bouncyJumpBoost"`
	LowGravityJumpBoost float64 `json:"lowGravityJumpBoost"`
	LowGravityFallCap   float64 `json:"lowGravityFallCap"`
	LowGravityScale     float64 `json:"lowGravityScale"`
}

// SpawnConfig drives object spawning. Gaps must be sorted by
// ascending MinScore; the last entry whose MinScore the current score
// reaches wins.
type SpawnConfig struct {
	Gaps []SpawnGap `json:"gaps"`
}

type SpawnGap struct {
	MinScore int `json:"minScore"`
	Gap      int `json:"gap"` // ticks between spawns
}
