package audio

import (
	"encoding/binary"
	"math"
	"testing"
	"time"

	"github.com/decker502/memorymatch/pkg/round"
	"github.com/gopxl/beep"
)

func TestRenderPCM16(t *testing.T) {
	rate := beep.SampleRate(8000)
	pcm, err := RenderPCM16(NewOscillator(1, 50*time.Millisecond, WaveSquare, rate))
	if err != nil {
		t.Fatalf("RenderPCM16() error: %v", err)
	}

	frames := rate.N(50 * time.Millisecond)
	if FrameCount(pcm) != frames || len(pcm) != frames*4 {
		t.Fatalf("rendered %d bytes, want %d", len(pcm), frames*4)
	}

	// 方波第一帧为 +1，左右声道相同
	left := int16(binary.LittleEndian.Uint16(pcm[0:2]))
	right := int16(binary.LittleEndian.Uint16(pcm[2:4]))
	if left != math.MaxInt16 || right != math.MaxInt16 {
		t.Errorf("first frame = (%d, %d), want (%d, %d)", left, right, math.MaxInt16, math.MaxInt16)
	}
}

func TestRenderPCM16Nil(t *testing.T) {
	if _, err := RenderPCM16(nil); err == nil {
		t.Error("expected error for nil streamer")
	}
}

func TestToInt16Clamps(t *testing.T) {
	tests := []struct {
		in   float64
		want int16
	}{
		{0, 0},
		{1, math.MaxInt16},
		{2, math.MaxInt16},
		{-3, -math.MaxInt16},
	}
	for _, tt := range tests {
		if got := toInt16(tt.in); got != tt.want {
			t.Errorf("toInt16(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestRenderCues(t *testing.T) {
	pcm, err := RenderCues(SampleRate)
	if err != nil {
		t.Fatalf("RenderCues() error: %v", err)
	}
	for _, cue := range AllCues {
		if len(pcm[cue]) == 0 {
			t.Errorf("cue %s rendered empty", cue)
		}
	}
	if FrameCount(pcm[round.CueCard]) != SampleRate.N(80*time.Millisecond) {
		t.Errorf("card cue = %d frames", FrameCount(pcm[round.CueCard]))
	}
}

func TestCueBank(t *testing.T) {
	bank := NewCueBank(SampleRate)
	for _, cue := range AllCues {
		if bank[cue] == nil || bank[cue].Len() == 0 {
			t.Errorf("cue %s missing from bank", cue)
		}
	}

	var p Player = Nop{}
	p.Play(round.CueTheme)
	p.SetGains(0, 0)
	p.Close()
}
