package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// TestConfigWatcherReload 修改配置文件后应收到新配置
func TestConfigWatcherReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "aeiou.yaml")
	if err := os.WriteFile(path, []byte("audio:\n  volume: 1.0\n"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	watcher, err := NewConfigWatcher(path)
	if err != nil {
		t.Fatalf("NewConfigWatcher() error: %v", err)
	}
	defer watcher.Close()

	if err := os.WriteFile(path, []byte("audio:\n  volume: 0.3\n"), 0644); err != nil {
		t.Fatalf("Failed to rewrite config: %v", err)
	}

	select {
	case cfg := <-watcher.Updates:
		if cfg.Audio.Volume != 0.3 {
			t.Errorf("Volume: got %v, want 0.3", cfg.Audio.Volume)
		}
	case err := <-watcher.Errors:
		t.Fatalf("Unexpected watcher error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("Timed out waiting for config reload")
	}
}

// TestConfigWatcherIgnoresOtherFiles 同目录其他文件的变化不触发重新加载
func TestConfigWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "aeiou.yaml")
	if err := os.WriteFile(path, []byte("{}\n"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	watcher, err := NewConfigWatcher(path)
	if err != nil {
		t.Fatalf("NewConfigWatcher() error: %v", err)
	}
	defer watcher.Close()

	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("{}\n"), 0644); err != nil {
		t.Fatalf("Failed to write other file: %v", err)
	}

	select {
	case <-watcher.Updates:
		t.Fatal("Unrelated file change should not reload config")
	case <-time.After(300 * time.Millisecond):
	}
}

// TestConfigWatcherCloseTwice 重复关闭是安全的
func TestConfigWatcherCloseTwice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aeiou.yaml")
	if err := os.WriteFile(path, []byte("{}\n"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	watcher, err := NewConfigWatcher(path)
	if err != nil {
		t.Fatalf("NewConfigWatcher() error: %v", err)
	}
	if err := watcher.Close(); err != nil {
		t.Errorf("First Close() error: %v", err)
	}
	if err := watcher.Close(); err != nil {
		t.Errorf("Second Close() error: %v", err)
	}
}

// TestConfigWatcherAppliesLastWrite 连续两次快速写入，最终生效的是第二次的内容
func TestConfigWatcherAppliesLastWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "aeiou.yaml")
	if err := os.WriteFile(path, []byte("audio:\n  volume: 1.0\n"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	watcher, err := NewConfigWatcher(path)
	if err != nil {
		t.Fatalf("NewConfigWatcher() error: %v", err)
	}
	defer watcher.Close()

	if err := os.WriteFile(path, []byte("audio:\n  volume: 0.2\n"), 0644); err != nil {
		t.Fatalf("Failed to rewrite config: %v", err)
	}
	time.Sleep(30 * time.Millisecond)
	if err := os.WriteFile(path, []byte("audio:\n  volume: 0.7\n"), 0644); err != nil {
		t.Fatalf("Failed to rewrite config: %v", err)
	}

	var last *AppConfig
	deadline := time.After(600 * time.Millisecond)
collect:
	for {
		select {
		case cfg := <-watcher.Updates:
			last = cfg
		case err := <-watcher.Errors:
			t.Fatalf("Unexpected watcher error: %v", err)
		case <-deadline:
			break collect
		}
	}

	if last == nil {
		t.Fatal("No config reload received")
	}
	if last.Audio.Volume != 0.7 {
		t.Errorf("Final volume: got %v, want 0.7", last.Audio.Volume)
	}
}
