package components

// CameraComponent 2D 摄像机
// 视图中心位于 (X, Y) 世界坐标，场景中只有一个摄像机
type CameraComponent struct {
	X float64
	Y float64
}
