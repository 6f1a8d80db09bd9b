// Package embedded 提供资源文件的统一访问接口
//
// 由于 Go embed 指令只能嵌入当前包目录及其子目录的文件，
// embed.FS 变量必须声明在项目根目录（embed.go）。
// 配置文件（data/）嵌入到可执行文件中；媒体资源（assets/）
// 默认从可执行文件旁的 assets 目录读取，可通过 -assets 参数指定。
//
// 使用前必须调用 Init() 初始化。
package embedded

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

var (
	assetsFS    fs.FS
	dataFS      fs.FS
	initialized bool
)

// ErrNotInitialized 在 Init() 之前访问资源时返回
var ErrNotInitialized = errors.New("embedded package not initialized, call Init() first")

// Init 初始化资源文件系统
// 必须在 main() 开始时、任何资源加载之前调用
//
// 参数：
//   - assets: 以 "assets/" 为根的文件系统（如 os.DirFS(".")）
//   - data: 以 "data/" 为根的文件系统（通常为根目录的 embed.FS）
func Init(assets, data fs.FS) {
	assetsFS = assets
	dataFS = data
	initialized = true
}

// IsInitialized 返回 embedded 包是否已初始化
func IsInitialized() bool {
	return initialized
}

// normalize 标准化路径分隔符为正斜杠并移除 "./" 前缀
func normalize(path string) string {
	path = filepath.ToSlash(path)
	return strings.TrimPrefix(path, "./")
}

// route 根据路径前缀选择文件系统
// 路径必须以 "assets/" 或 "data/" 开头
func route(path string) (fs.FS, error) {
	if !initialized {
		return nil, ErrNotInitialized
	}
	switch {
	case strings.HasPrefix(path, "assets/"):
		if assetsFS == nil {
			return nil, fmt.Errorf("assets file system not configured: %s", path)
		}
		return assetsFS, nil
	case strings.HasPrefix(path, "data/"):
		if dataFS == nil {
			return nil, fmt.Errorf("data file system not configured: %s", path)
		}
		return dataFS, nil
	}
	return nil, fmt.Errorf("unknown resource path prefix: %s (must start with 'assets/' or 'data/')", path)
}

// Open 根据路径前缀选择正确的文件系统并打开文件
func Open(path string) (fs.File, error) {
	path = normalize(path)
	fsys, err := route(path)
	if err != nil {
		return nil, err
	}
	return fsys.Open(path)
}

// ReadFile 根据路径前缀选择正确的文件系统并读取文件内容
func ReadFile(path string) ([]byte, error) {
	path = normalize(path)
	fsys, err := route(path)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(fsys, path)
}

// Exists 检查文件是否存在
func Exists(path string) bool {
	file, err := Open(path)
	if err != nil {
		return false
	}
	file.Close()
	return true
}

// FS 返回按前缀路由的组合文件系统，供 ResourceManager 使用
func FS() fs.FS {
	return routerFS{}
}

// routerFS 将 fs.FS 接口转发到 Open
type routerFS struct{}

func (routerFS) Open(name string) (fs.File, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}
	return Open(name)
}

// Mount 将 fsys 挂载到 prefix 目录下
// 例如 Mount("assets", os.DirFS("/opt/media")) 使 "assets/mus.mp3" 读取 /opt/media/mus.mp3
func Mount(prefix string, fsys fs.FS) fs.FS {
	return mountFS{prefix: strings.TrimSuffix(prefix, "/") + "/", fsys: fsys}
}

// mountFS 去掉路径前缀后转发到内部文件系统
type mountFS struct {
	prefix string
	fsys   fs.FS
}

func (m mountFS) Open(name string) (fs.File, error) {
	rest, ok := strings.CutPrefix(name, m.prefix)
	if !ok || !fs.ValidPath(rest) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	return m.fsys.Open(rest)
}
