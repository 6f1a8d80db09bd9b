package ecs

import (
	"reflect"
	"sort"
)

// EntityID 是实体的唯一标识符，0 保留为无效ID
type EntityID uint64

// EntityManager 管理所有实体和组件
//
// 除了按实体存储组件外，还维护一个按组件类型的索引，
// 查询时从拥有实体最少的类型开始过滤。
// 播放场景的实体在进入时一次性生成，之后不再销毁。
type EntityManager struct {
	nextID uint64
	// EntityID -> 组件类型 -> 组件实例
	components map[EntityID]map[reflect.Type]any
	// 组件类型 -> 拥有该组件的实体集合
	byType map[reflect.Type]map[EntityID]struct{}
}

// NewEntityManager 创建一个新的 EntityManager 实例
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID:     1,
		components: make(map[EntityID]map[reflect.Type]any),
		byType:     make(map[reflect.Type]map[EntityID]struct{}),
	}
}

// CreateEntity 创建新实体并返回唯一ID
func (em *EntityManager) CreateEntity() EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	em.components[id] = make(map[reflect.Type]any)
	return id
}

// EntityCount 返回当前存活的实体数量
func (em *EntityManager) EntityCount() int {
	return len(em.components)
}

// AddComponent 为实体添加组件，同类型组件会被替换
// 对不存在的实体无效
func (em *EntityManager) AddComponent(id EntityID, component any) {
	comps, ok := em.components[id]
	if !ok {
		return
	}
	t := reflect.TypeOf(component)
	comps[t] = component

	set, ok := em.byType[t]
	if !ok {
		set = make(map[EntityID]struct{})
		em.byType[t] = set
	}
	set[id] = struct{}{}
}

// GetComponent 获取实体的特定类型组件
func (em *EntityManager) GetComponent(id EntityID, componentType reflect.Type) (any, bool) {
	comp, ok := em.components[id][componentType]
	return comp, ok
}

// HasComponent 检查实体是否拥有特定类型组件
func (em *EntityManager) HasComponent(id EntityID, componentType reflect.Type) bool {
	_, ok := em.components[id][componentType]
	return ok
}

// GetEntitiesWith 查询拥有指定组件类型组合的所有实体
// 返回的实体ID按创建顺序排列，保证每帧遍历顺序一致。
// 不传类型时返回全部实体。
func (em *EntityManager) GetEntitiesWith(componentTypes ...reflect.Type) []EntityID {
	result := make([]EntityID, 0)

	if len(componentTypes) == 0 {
		for id := range em.components {
			result = append(result, id)
		}
	} else {
		// 从最小的集合开始
		smallest := componentTypes[0]
		for _, t := range componentTypes[1:] {
			if len(em.byType[t]) < len(em.byType[smallest]) {
				smallest = t
			}
		}

	candidates:
		for id := range em.byType[smallest] {
			for _, t := range componentTypes {
				if _, ok := em.byType[t][id]; !ok {
					continue candidates
				}
			}
			result = append(result, id)
		}
	}

	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}
