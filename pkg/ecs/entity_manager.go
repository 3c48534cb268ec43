package ecs

import (
	"reflect"
	"slices"
)

// EntityID 实体编号，从 1 开始递增；0 表示“没有实体”
type EntityID uint64

// componentSet 单个实体挂载的组件，按组件的动态类型索引
type componentSet map[reflect.Type]any

// EntityManager 保存一局游戏中的全部实体
//
// 删除是延迟的：DestroyEntity 只登记，RemoveMarkedEntities 在一帧结束时
// 统一释放。同一帧内被登记删除的实体仍可读写组件，
// 因此击杀奖励、死亡动画等收尾逻辑可以安全地访问它。
type EntityManager struct {
	nextID     uint64
	components map[EntityID]componentSet
	pending    map[EntityID]struct{} // 等待帧末释放的实体
}

// NewEntityManager 创建空的实体世界
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID:     1,
		components: make(map[EntityID]componentSet),
		pending:    make(map[EntityID]struct{}),
	}
}

// CreateEntity 分配一个新实体
func (em *EntityManager) CreateEntity() EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	em.components[id] = make(componentSet)
	return id
}

// Exists 实体已创建且尚未被释放
func (em *EntityManager) Exists(id EntityID) bool {
	_, ok := em.components[id]
	return ok
}

// IsMarkedForDestroy 实体已登记删除但还没到帧末
func (em *EntityManager) IsMarkedForDestroy(id EntityID) bool {
	_, ok := em.pending[id]
	return ok
}

// DestroyEntity 登记实体在帧末释放，可以重复调用
func (em *EntityManager) DestroyEntity(id EntityID) {
	em.pending[id] = struct{}{}
}

// AddComponent 挂载组件，同类型的旧组件被替换；实体不存在时忽略
func (em *EntityManager) AddComponent(id EntityID, component any) {
	if set, ok := em.components[id]; ok {
		set[reflect.TypeOf(component)] = component
	}
}

// RemoveComponent 卸载指定类型的组件
func (em *EntityManager) RemoveComponent(id EntityID, componentType reflect.Type) {
	if set, ok := em.components[id]; ok {
		delete(set, componentType)
	}
}

// GetComponent 按类型读取组件，调用方自行断言；通常使用泛型版本
func (em *EntityManager) GetComponent(id EntityID, componentType reflect.Type) (any, bool) {
	comp, ok := em.components[id][componentType]
	return comp, ok
}

// HasComponent 实体是否挂载了指定类型的组件
func (em *EntityManager) HasComponent(id EntityID, componentType reflect.Type) bool {
	_, ok := em.components[id][componentType]
	return ok
}

// RemoveMarkedEntities 释放本帧登记删除的实体，返回实际释放的数量
func (em *EntityManager) RemoveMarkedEntities() int {
	removed := 0
	for id := range em.pending {
		if em.Exists(id) {
			delete(em.components, id)
			removed++
		}
	}
	clear(em.pending)
	return removed
}

// EntityCount 当前存活的实体数量（包括已登记删除的）
func (em *EntityManager) EntityCount() int {
	return len(em.components)
}

// GetEntitiesWith 返回同时拥有所有给定组件类型的实体，按编号升序
//
// 有序的结果让随机选目标（闪电打击）在固定种子下可以复现。
func (em *EntityManager) GetEntitiesWith(componentTypes ...reflect.Type) []EntityID {
	result := make([]EntityID, 0)
	for id, set := range em.components {
		if set.hasAll(componentTypes) {
			result = append(result, id)
		}
	}
	slices.Sort(result)
	return result
}

func (s componentSet) hasAll(types []reflect.Type) bool {
	for _, t := range types {
		if _, ok := s[t]; !ok {
			return false
		}
	}
	return true
}
