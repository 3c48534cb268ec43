package ecs

import "testing"

// TestGenericAPI 验证泛型 API 与反射 API 读写的是同一份组件
func TestGenericAPI(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	t.Run("AddComponent", func(t *testing.T) {
		AddComponent(em, id, &testHealthComponent{Health: 50, IsAlive: true})
		if !HasComponent[*testHealthComponent](em, id) {
			t.Fatal("AddComponent 失败：组件未添加")
		}
	})

	t.Run("GetComponent", func(t *testing.T) {
		comp, ok := GetComponent[*testHealthComponent](em, id)
		if !ok {
			t.Fatal("GetComponent 失败：组件不存在")
		}
		if comp.Health != 50 || !comp.IsAlive {
			t.Fatalf("GetComponent 失败：组件值不正确 %+v", comp)
		}
	})

	t.Run("ReflectInterop", func(t *testing.T) {
		em.AddComponent(id, &testPositionComponent{X: 3})
		pos, ok := GetComponent[*testPositionComponent](em, id)
		if !ok || pos.X != 3 {
			t.Fatal("泛型 API 应能读取反射 API 添加的组件")
		}
	})

	t.Run("GetEntitiesWith", func(t *testing.T) {
		other := em.CreateEntity()
		AddComponent(em, other, &testPositionComponent{})

		if got := GetEntitiesWith1[*testPositionComponent](em); len(got) != 2 {
			t.Fatalf("GetEntitiesWith1 期望 2 个实体，实际 %d 个", len(got))
		}
		got := GetEntitiesWith2[*testPositionComponent, *testHealthComponent](em)
		if len(got) != 1 || got[0] != id {
			t.Fatalf("GetEntitiesWith2 期望 [%d]，实际 %v", id, got)
		}
	})

	t.Run("RemoveComponent", func(t *testing.T) {
		RemoveComponent[*testHealthComponent](em, id)
		if HasComponent[*testHealthComponent](em, id) {
			t.Fatal("RemoveComponent 失败：组件仍存在")
		}
	})

	t.Run("MissingEntity", func(t *testing.T) {
		if _, ok := GetComponent[*testHealthComponent](em, 999); ok {
			t.Fatal("不存在的实体不应返回组件")
		}
	})
}
