package game

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// 资源 ID，对应 data/resources.yaml
const (
	AssetGroup = "aeiou"

	ImageAnimID  = "IMAGE_ANIM"  // 背景动画图集
	SoundMusicID = "SOUND_MUSIC" // 音乐
	ImageMediaID = "IMAGE_MEDIA" // 播放/暂停图标图集
	ImageBallID  = "IMAGE_BALL"  // 进度球
	ImageLineID  = "IMAGE_LINE"  // 进度条
)

// ErrSheetSize 图集尺寸与网格、帧尺寸不符
var ErrSheetSize = errors.New("sprite sheet size mismatch")

// Sheet 图集及其网格
// FrameW/FrameH 为 0 时由图片尺寸除以列数/行数得到
type Sheet struct {
	Image  *ebiten.Image
	Cols   int
	Rows   int
	FrameW int
	FrameH int
}

// Assets 运行所需的五个资源句柄
// 由 AssetLoader 在 Loading 状态中逐个填充，全部就绪后才能进入 Play 状态
type Assets struct {
	Anim  Sheet
	Music *Track
	Media Sheet
	Ball  *ebiten.Image
	Line  *ebiten.Image
}

// assetStep 加载单个资源的步骤
type assetStep struct {
	id   string
	load func(rm *ResourceManager, a *Assets) error
}

// assetSteps 加载顺序与资源表一致
var assetSteps = []assetStep{
	{ImageAnimID, func(rm *ResourceManager, a *Assets) error {
		sheet, err := loadSheet(rm, ImageAnimID)
		a.Anim = sheet
		return err
	}},
	{SoundMusicID, func(rm *ResourceManager, a *Assets) error {
		track, err := rm.LoadTrackByID(SoundMusicID)
		a.Music = track
		return err
	}},
	{ImageMediaID, func(rm *ResourceManager, a *Assets) error {
		sheet, err := loadSheet(rm, ImageMediaID)
		a.Media = sheet
		return err
	}},
	{ImageBallID, func(rm *ResourceManager, a *Assets) error {
		img, err := rm.LoadImageByID(ImageBallID)
		a.Ball = img
		return err
	}},
	{ImageLineID, func(rm *ResourceManager, a *Assets) error {
		img, err := rm.LoadImageByID(ImageLineID)
		a.Line = img
		return err
	}},
}

// loadSheet 加载图集，网格与帧尺寸来自资源配置
//
// 配置了 frame_width/frame_height 时图片必须正好是 cols×rows 个该尺寸的帧；
// 未配置时图片尺寸必须能被网格整除。
func loadSheet(rm *ResourceManager, id string) (Sheet, error) {
	def, ok := rm.ImageDef(id)
	if !ok {
		return Sheet{}, fmt.Errorf("%w: %s", ErrResourceNotFound, id)
	}
	if !def.IsSheet() {
		return Sheet{}, fmt.Errorf("%s is not a sprite sheet (cols=%d rows=%d)", id, def.Cols, def.Rows)
	}
	img, err := rm.LoadImageByID(id)
	if err != nil {
		return Sheet{}, err
	}

	bounds := img.Bounds()
	frameW, frameH := def.FrameWidth, def.FrameHeight
	if frameW == 0 {
		frameW = bounds.Dx() / def.Cols
	}
	if frameH == 0 {
		frameH = bounds.Dy() / def.Rows
	}
	if frameW <= 0 || frameH <= 0 || bounds.Dx() != def.Cols*frameW || bounds.Dy() != def.Rows*frameH {
		return Sheet{}, fmt.Errorf("%w: %s is %dx%d, want %d×%d frames of %dx%d",
			ErrSheetSize, id, bounds.Dx(), bounds.Dy(), def.Cols, def.Rows, frameW, frameH)
	}

	return Sheet{Image: img, Cols: def.Cols, Rows: def.Rows, FrameW: frameW, FrameH: frameH}, nil
}

// AssetLoader 逐帧加载资源
//
// 每次调用 Step 加载一个资源，加载界面因此可以在加载期间继续绘制。
// 任一资源失败后加载器停止，错误由 Err 返回。
type AssetLoader struct {
	rm     *ResourceManager
	assets Assets
	next   int
	err    error
}

// NewAssetLoader 创建资源加载器，rm 必须已经加载资源配置
func NewAssetLoader(rm *ResourceManager) *AssetLoader {
	return &AssetLoader{rm: rm}
}

// Step 加载下一个资源
//
// 返回：
//   - bool: 全部资源是否已经就绪
//   - error: 加载失败的原因（之后的调用会返回同一个错误）
func (l *AssetLoader) Step() (bool, error) {
	if l.err != nil {
		return false, l.err
	}
	if l.Done() {
		return true, nil
	}

	step := assetSteps[l.next]
	if err := step.load(l.rm, &l.assets); err != nil {
		l.err = fmt.Errorf("failed to load asset %s: %w", step.id, err)
		return false, l.err
	}
	l.next++
	return l.Done(), nil
}

// Done 五个资源是否全部加载完成
func (l *AssetLoader) Done() bool {
	return l.next == len(assetSteps)
}

// Progress 加载进度 0.0 ~ 1.0
func (l *AssetLoader) Progress() float64 {
	return float64(l.next) / float64(len(assetSteps))
}

// Err 加载错误
func (l *AssetLoader) Err() error {
	return l.err
}

// Assets 已加载的资源；加载完成前返回 nil
func (l *AssetLoader) Assets() *Assets {
	if !l.Done() {
		return nil
	}
	return &l.assets
}
