package systems

import (
	"log"

	"github.com/decker502/cryptfall/pkg/components"
	"github.com/decker502/cryptfall/pkg/config"
	"github.com/decker502/cryptfall/pkg/ecs"
	"github.com/decker502/cryptfall/pkg/entities"
	"github.com/decker502/cryptfall/pkg/utils"
	"github.com/ungerik/go3d/vec3"
)

// maxSpawnAttempts 采样次数上限，防止生成区域被玩家的安全半径完全覆盖时死循环
const maxSpawnAttempts = 1000

// SpawnSystem 按固定间隔在房间内生成敌人
//
// 每个房间开始时调用 StartWave 设置配额并启动计时器；
// 计时器每到一个间隔生成一个敌人，配额用尽后计时器停止
type SpawnSystem struct {
	entityManager *ecs.EntityManager
	config        *config.GameConfig
	clock         *Clock
	rng           RandomSource

	remaining int
	timer     float64
	armed     bool
}

// NewSpawnSystem 创建刷怪系统
func NewSpawnSystem(em *ecs.EntityManager, cfg *config.GameConfig, clock *Clock, rng RandomSource) *SpawnSystem {
	return &SpawnSystem{
		entityManager: em,
		config:        cfg,
		clock:         clock,
		rng:           rng,
	}
}

// StartWave 设置本波的刷怪配额并启动计时器
func (s *SpawnSystem) StartWave(count int) {
	s.remaining = count
	s.timer = 0
	s.armed = count > 0
	log.Printf("[SpawnSystem] 新一波开始: %d 个敌人", count)
}

// Remaining 本波还未生成的敌人数量
func (s *SpawnSystem) Remaining() int {
	return s.remaining
}

// Armed 计时器是否仍在运行
func (s *SpawnSystem) Armed() bool {
	return s.armed
}

// Update 推进刷怪计时器，返回本帧生成的敌人
func (s *SpawnSystem) Update(deltaTime float64, playerPos vec3.T, difficulty int) []ecs.EntityID {
	if !s.armed {
		return nil
	}

	var spawned []ecs.EntityID
	s.timer += deltaTime
	for s.armed && s.timer >= s.config.Spawn.Interval {
		s.timer -= s.config.Spawn.Interval

		x, y := s.SamplePosition(playerPos)
		id, err := entities.NewEnemyEntity(s.entityManager, s.config, difficulty, x, y)
		if err != nil {
			log.Printf("[SpawnSystem] 生成敌人失败: %v", err)
			s.armed = false
			break
		}
		// 新敌人的攻击冷却从出生时刻开始计算
		if combat, ok := ecs.GetComponent[*components.CombatComponent](s.entityManager, id); ok {
			combat.LastAttackTime = s.clock.Now()
		}
		spawned = append(spawned, id)

		s.remaining--
		if s.remaining <= 0 {
			s.remaining = 0
			s.armed = false
			log.Printf("[SpawnSystem] 本波敌人已全部生成")
		}
	}
	return spawned
}

// SamplePosition 在生成区域内随机取点，直到与玩家的距离不小于 MinDistance
// 超过采样上限时返回采样到的最远点
func (s *SpawnSystem) SamplePosition(playerPos vec3.T) (x, y float32) {
	spawn := s.config.Spawn
	bestDist := float32(-1)

	for attempt := 0; attempt < maxSpawnAttempts; attempt++ {
		cx := spawn.MinX + float32(s.rng.Float64())*(spawn.MaxX-spawn.MinX)
		cy := spawn.MinY + float32(s.rng.Float64())*(spawn.MaxY-spawn.MinY)

		candidate := vec3.T{cx, cy, playerPos[2]}
		dist := utils.PlanarDistance(&candidate, &playerPos)
		if dist >= spawn.MinDistance {
			return cx, cy
		}
		if dist > bestDist {
			bestDist = dist
			x, y = cx, cy
		}
	}

	log.Printf("[SpawnSystem] 采样 %d 次未找到合适位置，使用最远点 (%.2f, %.2f)", maxSpawnAttempts, x, y)
	return x, y
}
