package components

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// SpriteComponent 单帧精灵（进度球、轨道线）
type SpriteComponent struct {
	Image *ebiten.Image
}

// SpriteSheetComponent 精灵图集组件
// 一张图片按固定网格切分为多帧，通过 Index 选择当前帧。
// 帧按行优先排列：Index = row*Cols + col
type SpriteSheetComponent struct {
	Sheet  *ebiten.Image
	FrameW int
	FrameH int
	Cols   int
	Rows   int
	Index  int
}

// FrameCount 返回图集的总帧数
func (s *SpriteSheetComponent) FrameCount() int {
	return s.Cols * s.Rows
}

// FrameRect 返回 index 对应帧在图集中的矩形区域
func (s *SpriteSheetComponent) FrameRect(index int) image.Rectangle {
	if s.Cols <= 0 {
		return image.Rectangle{}
	}
	col := index % s.Cols
	row := index / s.Cols
	x := col * s.FrameW
	y := row * s.FrameH
	return image.Rect(x, y, x+s.FrameW, y+s.FrameH)
}

// CurrentFrame 返回当前帧的子图像
func (s *SpriteSheetComponent) CurrentFrame() *ebiten.Image {
	if s.Sheet == nil {
		return nil
	}
	return s.Sheet.SubImage(s.FrameRect(s.Index)).(*ebiten.Image)
}
