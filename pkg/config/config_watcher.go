package config

import (
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceWindow 最后一个事件之后静默这么久才重新加载，
// 连续写入只加载最终内容
const debounceWindow = 100 * time.Millisecond

// ConfigWatcher 监听磁盘上的配置文件，变化时重新加载
//
// 监听的是文件所在目录而非文件本身：编辑器保存时常以重命名替换文件，
// 直接监听文件会在第一次保存后失效。
//
// 重新加载成功的配置通过 Updates 通道发送，失败的加载通过 Errors 通道发送。
// 通道由游戏主循环非阻塞读取。
type ConfigWatcher struct {
	path    string
	watcher *fsnotify.Watcher
	Updates chan *AppConfig
	Errors  chan error
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// NewConfigWatcher 开始监听 path 指向的配置文件
func NewConfigWatcher(path string) (*ConfigWatcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config path %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create config watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(absPath)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(absPath), err)
	}

	cw := &ConfigWatcher{
		path:    absPath,
		watcher: w,
		Updates: make(chan *AppConfig, 1),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go cw.run()
	return cw, nil
}

// Close 停止监听并关闭通道
func (cw *ConfigWatcher) Close() error {
	var err error
	cw.once.Do(func() {
		close(cw.closeCh)
		err = cw.watcher.Close()
		<-cw.done
		close(cw.Updates)
		close(cw.Errors)
	})
	return err
}

func (cw *ConfigWatcher) run() {
	defer close(cw.done)

	// fire 在没有待处理事件时为 nil
	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-cw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != cw.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounceWindow)
			} else {
				timer.Reset(debounceWindow)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			cw.reload()
		case err, ok := <-cw.watcher.Errors:
			if !ok {
				return
			}
			cw.sendError(err)
		case <-cw.closeCh:
			return
		}
	}
}

func (cw *ConfigWatcher) reload() {
	cfg, err := LoadAppConfig(cw.path)
	if err != nil {
		cw.sendError(err)
		return
	}
	log.Printf("[ConfigWatcher] Reloaded %s", cw.path)

	// 只保留最新的配置
	select {
	case <-cw.Updates:
	default:
	}
	select {
	case cw.Updates <- cfg:
	case <-cw.closeCh:
	}
}

func (cw *ConfigWatcher) sendError(err error) {
	select {
	case cw.Errors <- err:
	default:
		log.Printf("[ConfigWatcher] Dropped error: %v", err)
	}
}
