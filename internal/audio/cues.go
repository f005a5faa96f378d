package audio

import (
	"time"

	"github.com/decker502/memorymatch/pkg/round"
	"github.com/gopxl/beep"
)

// SampleRate 默认采样率
const SampleRate = beep.SampleRate(44100)

// 音符频率（Hz）
const (
	noteC4 = 261.63
	noteE4 = 329.63
	noteG4 = 392.00
	noteA4 = 440.00
	noteC5 = 523.25
	noteD5 = 587.33
	noteE5 = 659.25
	noteG5 = 783.99
	noteC6 = 1046.50
	noteE6 = 1318.51
)

// themeMelody 背景音乐的一个循环
var themeMelody = []float64{
	noteC5, noteE5, noteG5, noteE5,
	noteD5, noteG4, noteA4, noteG4,
	noteC5, noteE5, noteG5, noteC6,
	noteG5, noteE5, noteD5, noteC5,
}

const themeNoteLength = 250 * time.Millisecond

// CueStreamer 返回 cue 对应的有限长度音频流
// 背景音乐返回一个循环周期，由播放端负责循环
func CueStreamer(cue round.Cue, rate beep.SampleRate) beep.Streamer {
	switch cue {
	case round.CueCard:
		// 短促的点击声
		return newVolume(note(noteE5, 80*time.Millisecond, WaveSine, rate), 0.6)

	case round.CueSuccess:
		// 两音叮咚
		return newVolume(beep.Seq(
			note(noteC6, 90*time.Millisecond, WaveSquare, rate),
			note(noteE6, 160*time.Millisecond, WaveSquare, rate),
		), 0.25)

	case round.CueComplete:
		// 上行琶音
		return newVolume(beep.Seq(
			note(noteC5, 120*time.Millisecond, WaveTriangle, rate),
			note(noteE5, 120*time.Millisecond, WaveTriangle, rate),
			note(noteG5, 120*time.Millisecond, WaveTriangle, rate),
			note(noteC6, 360*time.Millisecond, WaveTriangle, rate),
		), 0.7)

	case round.CueTimeout:
		// 下行低音加噪声，Take 保证混音流有终点
		return newVolume(beep.Take(rate.N(600*time.Millisecond), beep.Mix(
			beep.Seq(
				note(noteE4, 200*time.Millisecond, WaveSquare, rate),
				note(noteC4, 400*time.Millisecond, WaveSquare, rate),
			),
			newVolume(note(0, 600*time.Millisecond, WaveNoise, rate), 0.1),
		)), 0.3)

	case round.CueTheme:
		notes := make([]beep.Streamer, 0, len(themeMelody)*2)
		for _, freq := range themeMelody {
			notes = append(notes,
				note(freq, themeNoteLength*4/5, WaveTriangle, rate),
				rest(themeNoteLength/5, rate),
			)
		}
		return beep.Seq(notes...)
	}
	return nil
}

// AllCues 所有需要预先合成的音效
var AllCues = []round.Cue{
	round.CueCard,
	round.CueSuccess,
	round.CueComplete,
	round.CueTimeout,
	round.CueTheme,
}
