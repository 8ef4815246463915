package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Port string
	}
	Database struct {
		DSN string
	}
	Redis struct {
		Addr     string
		Password string
		DB       int
	}
	JWT struct {
		Secret string
	}
	Game GameConfig
}

// GameConfig carries the tunable rule constants. Everything the rulebook
// leaves to the table (multipliers, thresholds) lives here instead of in code.
type GameConfig struct {
	PlayersPerRoom  int `mapstructure:"players_per_room"`
	BottomCards     int `mapstructure:"bottom_cards"`
	StartingLevel   int `mapstructure:"starting_level"`
	DefendThreshold int `mapstructure:"defend_threshold"`
	KouDiMultiplier int `mapstructure:"kou_di_multiplier"`
	DealIntervalMs  int `mapstructure:"deal_interval_ms"`
}

var C Config

func Load() {
	viper.SetConfigFile("config/config.yaml")
	if err := viper.ReadInConfig(); err != nil {
		log.Fatalf("Failed to read config: %v", err)
	}
	if err := viper.Unmarshal(&C); err != nil {
		log.Fatalf("Failed to parse config: %v", err)
	}
	C.Game = C.Game.withDefaults()
}

// DefaultGame returns the standard six-player four-deck table settings.
func DefaultGame() GameConfig {
	return GameConfig{
		PlayersPerRoom:  6,
		BottomCards:     6,
		StartingLevel:   2,
		DefendThreshold: 130,
		KouDiMultiplier: 2,
		DealIntervalMs:  800,
	}
}

func (g GameConfig) withDefaults() GameConfig {
	def := DefaultGame()
	if g.PlayersPerRoom == 0 {
		g.PlayersPerRoom = def.PlayersPerRoom
	}
	if g.BottomCards == 0 {
		g.BottomCards = def.BottomCards
	}
	if g.StartingLevel == 0 {
		g.StartingLevel = def.StartingLevel
	}
	if g.DefendThreshold == 0 {
		g.DefendThreshold = def.DefendThreshold
	}
	if g.KouDiMultiplier == 0 {
		g.KouDiMultiplier = def.KouDiMultiplier
	}
	if g.DealIntervalMs == 0 {
		g.DealIntervalMs = def.DealIntervalMs
	}
	return g
}
