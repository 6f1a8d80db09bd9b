package components

// TransformComponent 存储实体的世界坐标
//
// 坐标系与窗口中心对齐：原点在窗口中心，X 向右，Y 向上。
// Z 决定绘制层级，数值越大越靠前。
type TransformComponent struct {
	X float64
	Y float64
	Z float64
}
