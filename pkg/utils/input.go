// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// KeyTrigger 报告切换键是否在本帧刚刚按下
//
// 按下状态由 Ebitengine 在全局维护，场景切换后按住不放的按键不会再次触发。
type KeyTrigger interface {
	JustPressed() bool
}

// KeyTriggerFunc 让普通函数实现 KeyTrigger（测试中注入按键状态）
type KeyTriggerFunc func() bool

// JustPressed implements KeyTrigger.
func (f KeyTriggerFunc) JustPressed() bool {
	if f == nil {
		return false
	}
	return f()
}

// JustPressedKey 返回检测 Ebiten 键盘按键的 KeyTrigger
func JustPressedKey(key ebiten.Key) KeyTrigger {
	return KeyTriggerFunc(func() bool {
		return inpututil.IsKeyJustPressed(key)
	})
}
