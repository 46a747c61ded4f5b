package reading

import (
	"strings"
	"testing"
)

const sampleDeepBlob = `TITLE: The Corridor That Kept Its Count
DREAM PROFILE: A recurring pursuit dream with a counting motif.
INTERPRETATION: Your brain ran a threat rehearsal through a familiar space. The corridor length changed each pass. That instability is the point. The counting was an attempt at prediction. It failed on purpose.
SYMBOLS & ASSOCIATIONS:
- corridor: transition under pressure
- counting: control ritual
- locked door: withheld outcome
LIKELY TRIGGER: An unresolved deadline you keep re-estimating.
WHAT YOUR BRAIN IS DOING: Memory consolidation tagged the deadline with threat salience and replayed it in a spatial frame.
TONIGHT’S EXPERIMENT:
Write the number down before sleep.
Leave the door in the note unlocked.
Read it once in the morning.
POST TEXT:
- CAPTION: I counted seventeen doors and only one looked back.
What number does your dream keep returning to?
Find yours at https://nightmare.example
- ON-IMAGE TEXT: The corridor kept its count.`

func TestSplitAllSectionsPresent(t *testing.T) {
	got := Split(sampleDeepBlob)

	if got[LabelTitle] != "The Corridor That Kept Its Count" {
		t.Errorf("title = %q", got[LabelTitle])
	}
	if got[LabelProfile] != "A recurring pursuit dream with a counting motif." {
		t.Errorf("profile = %q", got[LabelProfile])
	}
	if !strings.HasPrefix(got[LabelSymbols], "- corridor:") || !strings.Contains(got[LabelSymbols], "locked door") {
		t.Errorf("symbols = %q", got[LabelSymbols])
	}
	if !strings.Contains(got[LabelTonight], "Write the number down") {
		t.Errorf("tonight = %q", got[LabelTonight])
	}
	if !strings.HasSuffix(got[LabelCaption], "Find yours at https://nightmare.example") {
		t.Errorf("caption = %q", got[LabelCaption])
	}
	if got[LabelOnImage] != "The corridor kept its count." {
		t.Errorf("on-image = %q", got[LabelOnImage])
	}
}

func TestSplitAbsentLabelIsEmpty(t *testing.T) {
	text := "TITLE: Short\nINTERPRETATION: Something brief."
	got := Split(text)

	if got[LabelTitle] != "Short" {
		t.Errorf("title = %q", got[LabelTitle])
	}
	if got[LabelProfile] != "" {
		t.Errorf("absent profile should be empty, got %q", got[LabelProfile])
	}
	if got[LabelCaption] != "" {
		t.Errorf("absent caption should be empty, got %q", got[LabelCaption])
	}
}

func TestSplitLastSectionTakesRemainder(t *testing.T) {
	text := "TITLE: A\n- ON-IMAGE TEXT: one line\nand a second line\n"
	got := Split(text)

	if got[LabelOnImage] != "one line\nand a second line" {
		t.Errorf("on-image = %q", got[LabelOnImage])
	}
}

func TestSplitOutOfOrderLabels(t *testing.T) {
	// The model sometimes reorders sections. Each section must still end at
	// the nearest following label, whichever one that is.
	text := "INTERPRETATION: meaning here\nTITLE: Late Title\nLIKELY TRIGGER: stress"
	got := Split(text)

	if got[LabelInterpretation] != "meaning here" {
		t.Errorf("interpretation = %q", got[LabelInterpretation])
	}
	if got[LabelTitle] != "Late Title" {
		t.Errorf("title = %q", got[LabelTitle])
	}
	if got[LabelTrigger] != "stress" {
		t.Errorf("trigger = %q", got[LabelTrigger])
	}
}

func TestSplitRepeatedLabelUsesFirstOccurrence(t *testing.T) {
	text := "TITLE: First\nDREAM PROFILE: profile\nTITLE: Second"
	got := Split(text)

	if got[LabelTitle] != "First" {
		t.Errorf("title = %q, want first occurrence", got[LabelTitle])
	}
	// The second TITLE marker still terminates the profile section.
	if got[LabelProfile] != "profile" {
		t.Errorf("profile = %q", got[LabelProfile])
	}
}

func TestSplitEmptyInput(t *testing.T) {
	got := Split("")
	for _, label := range sectionLabels {
		if got[label] != "" {
			t.Errorf("label %q = %q, want empty", label, got[label])
		}
	}
}

func TestSplitUnicodeApostropheLabel(t *testing.T) {
	// The experiment label uses U+2019, not an ASCII quote. An ASCII variant
	// must not match.
	ascii := "TONIGHT'S EXPERIMENT:\nDo a thing."
	if got := Split(ascii)[LabelTonight]; got != "" {
		t.Errorf("ASCII apostrophe matched: %q", got)
	}
	curly := "TONIGHT’S EXPERIMENT:\nDo a thing."
	if got := Split(curly)[LabelTonight]; got != "Do a thing." {
		t.Errorf("tonight = %q", got)
	}
}

func TestAssembleSections(t *testing.T) {
	s := AssembleSections(sampleDeepBlob)

	if s.Title != "The Corridor That Kept Its Count" {
		t.Errorf("Title = %q", s.Title)
	}
	if s.Trigger != "An unresolved deadline you keep re-estimating." {
		t.Errorf("Trigger = %q", s.Trigger)
	}
	if s.OnImageText != "The corridor kept its count." {
		t.Errorf("OnImageText = %q", s.OnImageText)
	}
}
