package config

// EntitiesConfig is the root config for entities.json
type EntitiesConfig struct {
	Player    PlayerConfig              `json:"player"`
	Obstacles map[string]ObstacleConfig `json:"obstacles"`
	Coin      CoinConfig                `json:"coin"`
	Power     PowerConfig               `json:"power"`
}

type PlayerConfig struct {
	Mass   float64 `json:"mass"`
	Width  int     `json:"width"`
	Height int     `json:"height"`
}

type ObstacleConfig struct {
	Mass   float64 `json:"mass"`
	Width  int     `json:"width"`
	Height int     `json:"height"`
}

type CoinConfig struct {
	Size  int `json:"size"`
	Value int `json:"value"`
}

type PowerConfig struct {
	Size int `json:"size"`
}
