package systems

import (
	"log"

	"github.com/decker502/cryptfall/pkg/components"
	"github.com/decker502/cryptfall/pkg/ecs"
)

// LifetimeSystem 倒计时限时实体（房间提示横幅），到期后标记删除
type LifetimeSystem struct {
	entityManager *ecs.EntityManager
}

// NewLifetimeSystem 创建一个新的生命周期系统
func NewLifetimeSystem(em *ecs.EntityManager) *LifetimeSystem {
	return &LifetimeSystem{
		entityManager: em,
	}
}

// Update 推进所有倒计时，返回本帧到期的实体数
func (s *LifetimeSystem) Update(deltaTime float64) int {
	expired := 0
	for _, id := range ecs.GetEntitiesWith1[*components.LifetimeComponent](s.entityManager) {
		lifetime, _ := ecs.GetComponent[*components.LifetimeComponent](s.entityManager, id)
		if lifetime.Expired() {
			continue
		}

		lifetime.Remaining -= deltaTime
		if lifetime.Expired() {
			s.entityManager.DestroyEntity(id)
			expired++
			log.Printf("[LifetimeSystem] Entity %d expired after %.1fs", id, lifetime.Duration)
		}
	}
	return expired
}
