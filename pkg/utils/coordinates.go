// Package utils 提供游戏开发中常用的工具函数
//
// coordinates.go 提供世界坐标与屏幕坐标之间的转换。
//
// # 坐标系统概述
//
//   - **世界坐标**：原点在视图中心，X 向右，Y 向上（TransformComponent 使用）
//   - **屏幕坐标**：原点在窗口左上角，X 向右，Y 向下（Ebiten 默认行为）
//   - **实体锚点**：图片中心（TransformComponent.X/Y 代表图片的视觉中心）
//
// # 核心转换公式
//
//	screenX = screenW/2 + (x - cameraX) - imgW/2
//	screenY = screenH/2 - (y - cameraY) - imgH/2
package utils

// WorldToScreen 将实体中心的世界坐标转换为图片左上角的屏幕坐标
//
// 参数：
//   - x, y: 实体中心的世界坐标
//   - cameraX, cameraY: 摄像机中心的世界坐标
//   - screenW, screenH: 逻辑屏幕尺寸
//   - imgW, imgH: 要绘制的图片（或图集帧）尺寸
//
// 返回：
//   - 图片左上角的屏幕坐标
func WorldToScreen(x, y, cameraX, cameraY float64, screenW, screenH, imgW, imgH int) (float64, float64) {
	screenX := float64(screenW)/2 + (x - cameraX) - float64(imgW)/2
	screenY := float64(screenH)/2 - (y - cameraY) - float64(imgH)/2
	return screenX, screenY
}
