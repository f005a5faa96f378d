package game

import (
	"testing"

	"github.com/decker502/memorymatch/pkg/round"
)

func TestAudioManagerCachesPlayers(t *testing.T) {
	rm := NewResourceManager(testAudioContext)
	if err := rm.LoadCues(); err != nil {
		t.Fatalf("LoadCues() error: %v", err)
	}
	am := NewAudioManager(rm, 0.5, 0.8)
	defer am.Close()

	am.Play(round.CueCard)
	am.Play(round.CueCard)
	if len(am.players) != 1 {
		t.Errorf("players cached = %d, want 1", len(am.players))
	}

	am.Play(round.CueTheme)
	if am.music == nil {
		t.Fatal("theme player should be created")
	}
	if got, want := am.musicVolume(), 0.5*0.1; got != want {
		t.Errorf("music volume = %v, want %v", got, want)
	}
}

func TestAudioManagerMutedSound(t *testing.T) {
	rm := NewResourceManager(testAudioContext)
	if err := rm.LoadCues(); err != nil {
		t.Fatalf("LoadCues() error: %v", err)
	}
	am := NewAudioManager(rm, 0, 0)

	am.Play(round.CueSuccess)
	if len(am.players) != 0 {
		t.Error("muted sound should not create players")
	}

	am.SetGains(0.7, 0.9)
	if am.musicGain != 0.7 || am.soundGain != 0.9 {
		t.Errorf("gains = (%v, %v)", am.musicGain, am.soundGain)
	}
}

func TestAudioManagerWithoutResources(t *testing.T) {
	am := NewAudioManager(nil, 1, 1)
	// 没有资源时静默跳过
	am.Play(round.CueCard)
	am.Play(round.CueTheme)
	am.SetGains(0, 0)
	am.Close()
}
