package audio

import (
	"fmt"
	"log"
	"math"
	"sync"
	"time"

	"github.com/decker502/memorymatch/pkg/config"
	"github.com/decker502/memorymatch/pkg/round"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

// Player 播放音效提示
type Player interface {
	Play(cue round.Cue)
	// SetGains 更新音乐和音效的线性增益（0 表示静音）
	SetGains(music, sound float64)
	Close()
}

// Nop 不发声的播放器（无音频设备或测试时使用）
type Nop struct{}

func (Nop) Play(round.Cue)            {}
func (Nop) SetGains(float64, float64) {}
func (Nop) Close()                    {}

// NewCueBank 预先合成所有音效到内存缓冲
func NewCueBank(rate beep.SampleRate) map[round.Cue]*beep.Buffer {
	format := beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}
	bank := make(map[round.Cue]*beep.Buffer, len(AllCues))
	for _, cue := range AllCues {
		buf := beep.NewBuffer(format)
		buf.Append(CueStreamer(cue, rate))
		bank[cue] = buf
	}
	return bank
}

// Speaker 通过 beep speaker 播放（终端宿主）
type Speaker struct {
	mu    sync.Mutex
	bank  map[round.Cue]*beep.Buffer
	mixer *beep.Mixer

	theme     *effects.Volume // 正在循环的背景音乐，nil 表示未播放
	musicGain float64
	soundGain float64
}

// NewSpeaker 初始化音频设备并开始播放混音器
func NewSpeaker(rate beep.SampleRate, musicGain, soundGain float64) (*Speaker, error) {
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("audio: init speaker: %w", err)
	}

	s := &Speaker{
		bank:      NewCueBank(rate),
		mixer:     &beep.Mixer{},
		musicGain: musicGain,
		soundGain: soundGain,
	}
	speaker.Play(s.mixer)
	log.Printf("[Audio] speaker initialized at %d Hz", rate)
	return s, nil
}

// Play 播放音效；背景音乐只会启动一次并无限循环
func (s *Speaker) Play(cue round.Cue) {
	s.mu.Lock()
	defer s.mu.Unlock()

	buf, ok := s.bank[cue]
	if !ok {
		return
	}

	if cue == round.CueTheme {
		if s.theme != nil {
			return
		}
		s.theme = &effects.Volume{Streamer: beep.Loop(-1, buf.Streamer(0, buf.Len())), Base: 2}
		setGain(s.theme, s.musicGain*config.ThemeMusicVolume)
		speaker.Lock()
		s.mixer.Add(s.theme)
		speaker.Unlock()
		return
	}

	if s.soundGain <= 0 {
		return
	}
	speaker.Lock()
	s.mixer.Add(newVolume(buf.Streamer(0, buf.Len()), s.soundGain))
	speaker.Unlock()
}

// SetGains 更新增益，正在播放的背景音乐立即生效
func (s *Speaker) SetGains(music, sound float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.musicGain, s.soundGain = music, sound
	if s.theme != nil {
		speaker.Lock()
		setGain(s.theme, music*config.ThemeMusicVolume)
		speaker.Unlock()
	}
}

// Close 停止所有声音并关闭设备
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	s.theme = nil
}

// setGain 把线性增益写入 Volume 效果
func setGain(v *effects.Volume, gain float64) {
	if gain <= 0 {
		v.Silent = true
		return
	}
	v.Silent = false
	v.Volume = math.Log2(gain)
}
