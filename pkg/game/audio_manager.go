package game

import (
	"log"

	synth "github.com/decker502/memorymatch/internal/audio"
	"github.com/decker502/memorymatch/pkg/config"
	"github.com/decker502/memorymatch/pkg/round"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioManager 音频管理器
//
// 音效单次播放，背景音乐循环播放；音量来自玩家设置。
// 实现 synth.Player，场景只依赖该接口。
type AudioManager struct {
	resourceManager *ResourceManager
	players         map[round.Cue]*audio.Player // 播放器缓存
	music           *audio.Player               // 当前背景音乐
	musicGain       float64
	soundGain       float64
}

var _ synth.Player = (*AudioManager)(nil)

// NewAudioManager 创建音频管理器
func NewAudioManager(rm *ResourceManager, musicGain, soundGain float64) *AudioManager {
	return &AudioManager{
		resourceManager: rm,
		players:         make(map[round.Cue]*audio.Player),
		musicGain:       musicGain,
		soundGain:       soundGain,
	}
}

// Play 播放音效；CueTheme 启动（或继续）背景音乐
func (am *AudioManager) Play(cue round.Cue) {
	if cue == round.CueTheme {
		am.playMusic()
		return
	}
	if am.soundGain <= 0 {
		return
	}

	player := am.getPlayer(cue)
	if player == nil {
		return
	}
	player.SetVolume(am.soundGain)
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", cue, err)
	}
	player.Play()
}

func (am *AudioManager) playMusic() {
	if am.music == nil {
		am.music = am.getPlayer(round.CueTheme)
		if am.music == nil {
			return
		}
	}
	am.music.SetVolume(am.musicVolume())
	if am.musicGain > 0 && !am.music.IsPlaying() {
		am.music.Play()
		log.Printf("[AudioManager] Playing theme (volume: %.2f)", am.musicVolume())
	}
}

// SetGains 更新音量，背景音乐立即生效；音乐关闭时暂停
func (am *AudioManager) SetGains(music, sound float64) {
	am.musicGain, am.soundGain = music, sound
	if am.music == nil {
		return
	}
	am.music.SetVolume(am.musicVolume())
	switch {
	case music <= 0 && am.music.IsPlaying():
		am.music.Pause()
	case music > 0 && !am.music.IsPlaying():
		am.music.Play()
	}
}

// Close 关闭所有播放器
func (am *AudioManager) Close() {
	for cue, player := range am.players {
		if err := player.Close(); err != nil {
			log.Printf("[AudioManager] Warning: Failed to close %s: %v", cue, err)
		}
	}
	am.players = make(map[round.Cue]*audio.Player)
	am.music = nil
}

func (am *AudioManager) musicVolume() float64 {
	return am.musicGain * config.ThemeMusicVolume
}

func (am *AudioManager) getPlayer(cue round.Cue) *audio.Player {
	if player, ok := am.players[cue]; ok {
		return player
	}
	if am.resourceManager == nil {
		return nil
	}
	player, err := am.resourceManager.NewCuePlayer(cue)
	if err != nil {
		log.Printf("[AudioManager] Warning: %v", err)
		return nil
	}
	am.players[cue] = player
	return player
}
