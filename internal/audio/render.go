package audio

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/decker502/memorymatch/pkg/round"
	"github.com/gopxl/beep"
)

// bytesPerFrame 16位立体声，每帧 4 字节（Ebitengine 的 PCM 格式）
const bytesPerFrame = 4

// RenderPCM16 将有限长度的音频流渲染为 16 位小端立体声 PCM
func RenderPCM16(s beep.Streamer) ([]byte, error) {
	if s == nil {
		return nil, fmt.Errorf("audio: nil streamer")
	}

	buf := make([][2]float64, 512)
	var out []byte
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(buf[i][0])))
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(buf[i][1])))
		}
		if !ok || n == 0 {
			break
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("audio: render: %w", err)
	}
	return out, nil
}

func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(v * math.MaxInt16)
}

// RenderCues 预先合成所有音效
func RenderCues(rate beep.SampleRate) (map[round.Cue][]byte, error) {
	pcm := make(map[round.Cue][]byte, len(AllCues))
	for _, cue := range AllCues {
		data, err := RenderPCM16(CueStreamer(cue, rate))
		if err != nil {
			return nil, fmt.Errorf("cue %s: %w", cue, err)
		}
		pcm[cue] = data
	}
	return pcm, nil
}

// FrameCount 返回 PCM 数据包含的帧数
func FrameCount(pcm []byte) int {
	return len(pcm) / bytesPerFrame
}
