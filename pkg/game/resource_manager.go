package game

import (
	"bytes"
	"fmt"
	"log"

	synth "github.com/decker502/memorymatch/internal/audio"
	"github.com/decker502/memorymatch/pkg/round"
	"github.com/gopxl/beep"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// ResourceManager 管理字体和合成音效
//
// 游戏不加载任何外部素材：字体使用内置的 Go Regular，
// 音效在启动时按 audio.Context 的采样率合成为 PCM。
//
// Example usage:
//
//	audioContext := audio.NewContext(48000)
//	rm := NewResourceManager(audioContext)
//	if err := rm.LoadCues(); err != nil { ... }
//	face := rm.GetFont(28)
type ResourceManager struct {
	audioContext  *audio.Context
	fontSource    *text.GoTextFaceSource
	fontFaceCache map[float64]*text.GoTextFace
	cuePCM        map[round.Cue][]byte
}

// NewResourceManager creates a ResourceManager.
// audioContext may be nil, in which case no audio players are created.
func NewResourceManager(audioContext *audio.Context) *ResourceManager {
	return &ResourceManager{
		audioContext:  audioContext,
		fontFaceCache: make(map[float64]*text.GoTextFace),
	}
}

// LoadFontSource 解析内置字体
func (rm *ResourceManager) LoadFontSource() error {
	if rm.fontSource != nil {
		return nil
	}
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("failed to parse built-in font: %w", err)
	}
	rm.fontSource = source
	return nil
}

// GetFont 返回指定字号的字体（缓存）；字体加载失败时返回 nil
func (rm *ResourceManager) GetFont(size float64) *text.GoTextFace {
	if face, ok := rm.fontFaceCache[size]; ok {
		return face
	}
	if err := rm.LoadFontSource(); err != nil {
		log.Printf("[ResourceManager] Warning: %v", err)
		return nil
	}
	face := &text.GoTextFace{Source: rm.fontSource, Size: size}
	rm.fontFaceCache[size] = face
	return face
}

// LoadCues 按音频上下文的采样率合成所有音效
func (rm *ResourceManager) LoadCues() error {
	if rm.audioContext == nil {
		return fmt.Errorf("audio context is nil")
	}
	pcm, err := synth.RenderCues(beep.SampleRate(rm.audioContext.SampleRate()))
	if err != nil {
		return fmt.Errorf("failed to synthesize cues: %w", err)
	}
	rm.cuePCM = pcm
	log.Printf("[ResourceManager] Synthesized %d cues at %d Hz", len(pcm), rm.audioContext.SampleRate())
	return nil
}

// NewCuePlayer 为音效创建播放器
// 背景音乐使用无限循环的播放器
func (rm *ResourceManager) NewCuePlayer(cue round.Cue) (*audio.Player, error) {
	if rm.audioContext == nil {
		return nil, fmt.Errorf("audio context is nil")
	}
	pcm, ok := rm.cuePCM[cue]
	if !ok {
		return nil, fmt.Errorf("cue %s not loaded", cue)
	}

	if cue == round.CueTheme {
		loop := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
		player, err := rm.audioContext.NewPlayer(loop)
		if err != nil {
			return nil, fmt.Errorf("failed to create theme player: %w", err)
		}
		return player, nil
	}
	return rm.audioContext.NewPlayerFromBytes(pcm), nil
}
