package game

import "errors"

// AppState 应用状态
// 只能向前切换：Loading → Play
type AppState int

const (
	AppStateLoading AppState = iota
	AppStatePlay
)

// ErrStateRegression 试图切换回更早的状态或重复进入同一状态
var ErrStateRegression = errors.New("app state can only move forward")

// String 返回状态名称（用于日志）
func (s AppState) String() string {
	switch s {
	case AppStateLoading:
		return "Loading"
	case AppStatePlay:
		return "Play"
	}
	return "Unknown"
}
