package engine

import (
	"testing"

	"github.com/campuslink/textguard/pkg/dict"
	"github.com/campuslink/textguard/pkg/profanity"
)

func TestEngineFacade(t *testing.T) {
	e := New()

	result := e.ScanProfanity("putangina naman")
	if !result.HasMatch || result.Language != dict.Tagalog {
		t.Errorf("ScanProfanity = %+v", result)
	}

	if got := e.Severity("walang problema"); got != profanity.LevelNone {
		t.Errorf("Severity = %q", got)
	}

	rep := e.CheckText("", "")
	if rep.QualityScore != 100 || rep.Status != "excellent" {
		t.Errorf("CheckText empty = score %d, status %q", rep.QualityScore, rep.Status)
	}

	fixed := e.AutoCorrect("teh schedule")
	if fixed.Corrected != "the schedule" || !fixed.HasChanges {
		t.Errorf("AutoCorrect = %+v", fixed)
	}
}

func TestEngineSetMask(t *testing.T) {
	e := New()
	e.SetMask('#')
	if got := e.Censor("shit"); got != "####" {
		t.Errorf("Censor with # mask = %q", got)
	}
}

func TestEngineStats(t *testing.T) {
	e := New()
	stats := e.Stats()

	for _, key := range []string{
		"tagalogWords", "tagalogCorrections", "tagalogRoots",
		"englishWords", "englishCorrections", "englishRoots",
		"whitelist",
	} {
		if stats[key] <= 0 {
			t.Errorf("stats[%s] = %d, expected positive", key, stats[key])
		}
	}

	if stats["compiledPatterns"] != 0 {
		t.Errorf("fresh engine should have no compiled patterns, got %d", stats["compiledPatterns"])
	}
	e.ScanProfanity("anything at all")
	if e.Stats()["compiledPatterns"] == 0 {
		t.Error("a scan should populate the pattern cache")
	}
}

// One engine is meant to be shared; concurrent reads must not race.
func TestEngineConcurrentUse(t *testing.T) {
	e := New()
	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 20; j++ {
				e.ScanProfanity("fuck this sh1t")
				e.Censor("putangina mo")
				e.CheckText("title", "Kelan ang exam po.")
				e.AutoCorrect("teh dog should of gone")
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}
