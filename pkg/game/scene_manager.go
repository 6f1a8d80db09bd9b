package game

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneManager manages the game's high-level state by controlling which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
//
// Each scene is bound to an AppState and states only move forward, so the
// Loading → Play transition happens exactly once.
type SceneManager struct {
	currentScene Scene
	state        AppState
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts in the Loading state with no active scene; use SwitchTo to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{
		currentScene: nil,
		state:        AppStateLoading,
	}
}

// SwitchTo changes the active scene to the provided scene and enters state.
//
// The first call may enter the current (initial) state; every later call must
// move to a strictly later state, otherwise ErrStateRegression is returned.
// If the scene implements Enterer, OnEnter runs before the switch and its
// error aborts the switch.
func (sm *SceneManager) SwitchTo(state AppState, scene Scene) error {
	if state < sm.state || (sm.currentScene != nil && state == sm.state) {
		return fmt.Errorf("%w: %v -> %v", ErrStateRegression, sm.state, state)
	}

	if enterer, ok := scene.(Enterer); ok {
		if err := enterer.OnEnter(); err != nil {
			return fmt.Errorf("failed to enter %v: %w", state, err)
		}
	}

	log.Printf("[SceneManager] %v -> %v", sm.state, state)
	sm.state = state
	sm.currentScene = scene
	return nil
}

// State 返回当前应用状态
func (sm *SceneManager) State() AppState {
	return sm.state
}

// GetCurrentScene 返回当前活动的场景，如果没有活动场景则返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
// deltaTime is the time elapsed since the last update in seconds.
//
// A scene that reports a fatal error through Failer makes Update return it.
func (sm *SceneManager) Update(deltaTime float64) error {
	if sm.currentScene == nil {
		return nil
	}
	sm.currentScene.Update(deltaTime)
	if failer, ok := sm.currentScene.(Failer); ok {
		if err := failer.Err(); err != nil {
			return err
		}
	}
	return nil
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
