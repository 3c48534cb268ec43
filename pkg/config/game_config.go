package config

import (
	"fmt"

	"github.com/decker502/cryptfall/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// DefaultConfigPath 默认配置文件路径（嵌入数据）
const DefaultConfigPath = "data/game.yaml"

// LevelUpConfig 玩家升级时的属性成长
type LevelUpConfig struct {
	Health  int `yaml:"health"`  // 每级增加生命值
	Damage  int `yaml:"damage"`  // 每级增加攻击力
	ExpStep int `yaml:"expStep"` // 经验需求增量系数：ExpRequired += ExpStep * 新等级
}

// PlayerConfig 玩家初始属性
type PlayerConfig struct {
	Health      int           `yaml:"health"`
	Damage      int           `yaml:"damage"`
	MoveSpeed   float32       `yaml:"moveSpeed"`   // 每帧移动距离
	AttackSpeed float64       `yaml:"attackSpeed"` // 攻击冷却（秒）
	AttackRange float32       `yaml:"attackRange"`
	ExpRequired int           `yaml:"expRequired"` // 升到 2 级所需经验
	LevelUp     LevelUpConfig `yaml:"levelUp"`
}

// DifficultyDelta 每提升一级难度时敌人属性的线性增量
type DifficultyDelta struct {
	Health int `yaml:"health"`
	Damage int `yaml:"damage"`
	Exp    int `yaml:"exp"`
	Score  int `yaml:"score"`
}

// EnemyConfig 难度 1 时的敌人基础属性
type EnemyConfig struct {
	Health        int             `yaml:"health"`
	Damage        int             `yaml:"damage"`
	MoveSpeed     float32         `yaml:"moveSpeed"`
	AttackSpeed   float64         `yaml:"attackSpeed"`
	AttackRange   float32         `yaml:"attackRange"`
	Exp           int             `yaml:"exp"`
	Score         int             `yaml:"score"`
	PerDifficulty DifficultyDelta `yaml:"perDifficulty"`
}

// SpawnConfig 刷怪配置
type SpawnConfig struct {
	Interval       float64 `yaml:"interval"`    // 刷怪间隔（秒）
	FirstWave      int     `yaml:"firstWave"`   // 第一个房间的敌人数量
	NextWave       int     `yaml:"nextWave"`    // 之后每个房间的敌人数量
	MinDistance    float32 `yaml:"minDistance"` // 与玩家的最小距离
	MinX           float32 `yaml:"minX"`
	MaxX           float32 `yaml:"maxX"`
	MinY           float32 `yaml:"minY"`
	MaxY           float32 `yaml:"maxY"`
	RoomClearBonus int     `yaml:"roomClearBonus"` // 清空房间奖励分数
}

// RoomConfig 房间尺寸（以瓦片为单位）
type RoomConfig struct {
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
	TileSize float32 `yaml:"tileSize"`
}

// SpriteConfig 角色精灵图集参数
type SpriteConfig struct {
	Columns             int     `yaml:"columns"`
	Rows                int     `yaml:"rows"`
	Scale               float32 `yaml:"scale"` // 精灵缩放，同时决定碰撞盒大小
	Depth               float32 `yaml:"depth"`
	FrameInterval       float64 `yaml:"frameInterval"`       // 角色帧间隔（秒）
	EffectFrameInterval float64 `yaml:"effectFrameInterval"` // 特效帧间隔（秒）
}

// FlashConfig 受击闪烁
type FlashConfig struct {
	Duration float64 `yaml:"duration"`
}

// AreaDamageConfig 伤害光环参数
type AreaDamageConfig struct {
	Cooldown   float64 `yaml:"cooldown"`
	Radius     float32 `yaml:"radius"`
	Damage     float64 `yaml:"damage"`
	RadiusStep float32 `yaml:"radiusStep"`
	DamageStep float64 `yaml:"damageStep"`
}

// LightningStrikeConfig 闪电打击参数
type LightningStrikeConfig struct {
	Cooldown     float64 `yaml:"cooldown"`
	Chance       float64 `yaml:"chance"`
	Damage       int     `yaml:"damage"`
	CooldownStep float64 `yaml:"cooldownStep"`
	MinCooldown  float64 `yaml:"minCooldown"`
	ChanceStep   float64 `yaml:"chanceStep"`
	DamageStep   int     `yaml:"damageStep"`
	UpgradeCap   int     `yaml:"upgradeCap"` // 达到该等级后升级改为提升伤害
}

// StatBoostConfig 属性强化的各项增量
type StatBoostConfig struct {
	Health       int     `yaml:"health"`
	AttackDamage int     `yaml:"attackDamage"`
	MoveSpeed    float32 `yaml:"moveSpeed"`
}

// PerksConfig 所有天赋的参数
type PerksConfig struct {
	AreaDamage      AreaDamageConfig      `yaml:"areaDamage"`
	LightningStrike LightningStrikeConfig `yaml:"lightningStrike"`
	StatBoost       StatBoostConfig       `yaml:"statBoost"`
}

// GameConfig 游戏数值配置文件结构
type GameConfig struct {
	Player PlayerConfig `yaml:"player"`
	Enemy  EnemyConfig  `yaml:"enemy"`
	Spawn  SpawnConfig  `yaml:"spawn"`
	Room   RoomConfig   `yaml:"room"`
	Sprite SpriteConfig `yaml:"sprite"`
	Flash  FlashConfig  `yaml:"flash"`
	Perks  PerksConfig  `yaml:"perks"`
}

// LoadGameConfig 加载并校验游戏数值配置
// 参数：
//
//	path - "data/" 开头读取嵌入数据，否则读取磁盘文件
//
// 返回：
//
//	*GameConfig - 解析后的配置对象
//	error - 文件读取、解析或校验失败
func LoadGameConfig(path string) (*GameConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config %s: %w", path, err)
	}

	cfg, err := ParseGameConfig(data)
	if err != nil {
		return nil, fmt.Errorf("invalid game config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseGameConfig 解析 YAML 内容
// 未出现的字段沿用 DefaultGameConfig 的值
func ParseGameConfig(data []byte) (*GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultGameConfig 返回与 data/game.yaml 一致的默认配置
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Player: PlayerConfig{
			Health:      100,
			Damage:      20,
			MoveSpeed:   0.05,
			AttackSpeed: 0.5,
			AttackRange: 3,
			ExpRequired: 10,
			LevelUp:     LevelUpConfig{Health: 10, Damage: 6, ExpStep: 10},
		},
		Enemy: EnemyConfig{
			Health:        50,
			Damage:        10,
			MoveSpeed:     0.02,
			AttackSpeed:   1.0,
			AttackRange:   1,
			Exp:           2,
			Score:         10,
			PerDifficulty: DifficultyDelta{Health: 10, Damage: 10, Exp: 2, Score: 5},
		},
		Spawn: SpawnConfig{
			Interval:       1.0,
			FirstWave:      20,
			NextWave:       10,
			MinDistance:    5,
			MinX:           -25,
			MaxX:           25,
			MinY:           -10,
			MaxY:           10,
			RoomClearBonus: 1000,
		},
		Room: RoomConfig{Width: 30, Height: 15, TileSize: 2},
		Sprite: SpriteConfig{
			Columns:             8,
			Rows:                15,
			Scale:               3,
			Depth:               0.5,
			FrameInterval:       0.1,
			EffectFrameInterval: 0.05,
		},
		Flash: FlashConfig{Duration: 0.2},
		Perks: PerksConfig{
			AreaDamage: AreaDamageConfig{
				Cooldown:   0.3,
				Radius:     5,
				Damage:     1,
				RadiusStep: 0.2,
				DamageStep: 0.2,
			},
			LightningStrike: LightningStrikeConfig{
				Cooldown:     6,
				Chance:       0.1,
				Damage:       20,
				CooldownStep: 1,
				MinCooldown:  1,
				ChanceStep:   0.2,
				DamageStep:   20,
				UpgradeCap:   3,
			},
			StatBoost: StatBoostConfig{Health: 10, AttackDamage: 10, MoveSpeed: 0.003},
		},
	}
}

// Validate 校验配置的完整性和合法性
func (c *GameConfig) Validate() error {
	if c.Player.Health <= 0 {
		return fmt.Errorf("player: health must be positive, got %d", c.Player.Health)
	}
	if c.Player.MoveSpeed <= 0 || c.Enemy.MoveSpeed <= 0 {
		return fmt.Errorf("moveSpeed must be positive (player %v, enemy %v)", c.Player.MoveSpeed, c.Enemy.MoveSpeed)
	}
	if c.Player.AttackSpeed < 0 || c.Enemy.AttackSpeed < 0 {
		return fmt.Errorf("attackSpeed cannot be negative")
	}
	if c.Player.ExpRequired <= 0 {
		return fmt.Errorf("player: expRequired must be positive, got %d", c.Player.ExpRequired)
	}
	if c.Enemy.Health <= 0 {
		return fmt.Errorf("enemy: health must be positive, got %d", c.Enemy.Health)
	}

	if c.Spawn.Interval <= 0 {
		return fmt.Errorf("spawn: interval must be positive, got %v", c.Spawn.Interval)
	}
	if c.Spawn.FirstWave <= 0 || c.Spawn.NextWave <= 0 {
		return fmt.Errorf("spawn: wave sizes must be positive (first %d, next %d)", c.Spawn.FirstWave, c.Spawn.NextWave)
	}
	if c.Spawn.MinX >= c.Spawn.MaxX || c.Spawn.MinY >= c.Spawn.MaxY {
		return fmt.Errorf("spawn: empty spawn rectangle [%v,%v]x[%v,%v]", c.Spawn.MinX, c.Spawn.MaxX, c.Spawn.MinY, c.Spawn.MaxY)
	}
	if c.Spawn.MinDistance < 0 {
		return fmt.Errorf("spawn: minDistance cannot be negative, got %v", c.Spawn.MinDistance)
	}

	if c.Room.Width < 3 || c.Room.Height < 3 {
		return fmt.Errorf("room: size must be at least 3x3, got %dx%d", c.Room.Width, c.Room.Height)
	}
	if c.Room.TileSize <= 0 {
		return fmt.Errorf("room: tileSize must be positive, got %v", c.Room.TileSize)
	}

	if c.Sprite.Columns <= 0 || c.Sprite.Rows <= 0 {
		return fmt.Errorf("sprite: columns and rows must be positive (%d x %d)", c.Sprite.Columns, c.Sprite.Rows)
	}
	if c.Sprite.Scale <= 0 {
		return fmt.Errorf("sprite: scale must be positive, got %v", c.Sprite.Scale)
	}
	if c.Sprite.FrameInterval <= 0 || c.Sprite.EffectFrameInterval <= 0 {
		return fmt.Errorf("sprite: frame intervals must be positive")
	}

	lightning := c.Perks.LightningStrike
	if lightning.Chance < 0 || lightning.Chance > 1 {
		return fmt.Errorf("perks.lightningStrike: chance must be within [0,1], got %v", lightning.Chance)
	}
	if lightning.UpgradeCap < 1 {
		return fmt.Errorf("perks.lightningStrike: upgradeCap must be at least 1, got %d", lightning.UpgradeCap)
	}
	if lightning.MinCooldown <= 0 || lightning.Cooldown < lightning.MinCooldown {
		return fmt.Errorf("perks.lightningStrike: cooldown %v must be >= minCooldown %v > 0", lightning.Cooldown, lightning.MinCooldown)
	}
	if c.Perks.AreaDamage.Cooldown <= 0 || c.Perks.AreaDamage.Radius <= 0 {
		return fmt.Errorf("perks.areaDamage: cooldown and radius must be positive")
	}

	return nil
}
