package reading

import (
	"sort"
	"strings"
)

// Section labels the deep prompt demands, in required order. Matching is a
// plain substring search on the exact literal text, punctuation included.
const (
	LabelTitle          = "TITLE:"
	LabelProfile        = "DREAM PROFILE:"
	LabelInterpretation = "INTERPRETATION:"
	LabelSymbols        = "SYMBOLS & ASSOCIATIONS:"
	LabelTrigger        = "LIKELY TRIGGER:"
	LabelBrain          = "WHAT YOUR BRAIN IS DOING:"
	LabelTonight        = "TONIGHT’S EXPERIMENT:"
	LabelPostText       = "POST TEXT:"
	LabelCaption        = "- CAPTION:"
	LabelOnImage        = "- ON-IMAGE TEXT:"
)

var sectionLabels = []string{
	LabelTitle,
	LabelProfile,
	LabelInterpretation,
	LabelSymbols,
	LabelTrigger,
	LabelBrain,
	LabelTonight,
	LabelPostText,
	LabelCaption,
	LabelOnImage,
}

// Sections is the structured view of one generated deep-reading blob. Any
// field may be empty; the model is asked for all ten but not trusted.
type Sections struct {
	Title          string `json:"title"`
	Profile        string `json:"profile"`
	Interpretation string `json:"interpretation"`
	Symbols        string `json:"symbols"`
	Trigger        string `json:"trigger"`
	Brain          string `json:"brain"`
	Tonight        string `json:"tonight"`
	PostText       string `json:"post_text"`
	Caption        string `json:"caption"`
	OnImageText    string `json:"on_image_text"`
}

type labelMarker struct {
	pos   int
	label string
}

// Split extracts every labeled section from the blob in a single indexing
// pass: all label occurrences are located once, then each section runs from
// just after the first occurrence of its label to the next occurrence of any
// other label. Absent labels map to the empty string; a label with no later
// label after it takes the trimmed remainder.
func Split(text string) map[string]string {
	t := strings.TrimSpace(text)

	var markers []labelMarker
	first := make(map[string]int, len(sectionLabels))
	for _, label := range sectionLabels {
		first[label] = -1
		offset := 0
		for {
			i := strings.Index(t[offset:], label)
			if i == -1 {
				break
			}
			pos := offset + i
			if first[label] == -1 {
				first[label] = pos
			}
			markers = append(markers, labelMarker{pos: pos, label: label})
			offset = pos + len(label)
		}
	}
	sort.Slice(markers, func(i, j int) bool { return markers[i].pos < markers[j].pos })

	out := make(map[string]string, len(sectionLabels))
	for _, label := range sectionLabels {
		start := first[label]
		if start == -1 {
			out[label] = ""
			continue
		}
		start += len(label)
		end := len(t)
		for _, m := range markers {
			if m.pos >= start && m.label != label {
				end = m.pos
				break
			}
		}
		out[label] = strings.TrimSpace(t[start:end])
	}
	return out
}

// AssembleSections builds the structured view from one blob.
func AssembleSections(text string) Sections {
	m := Split(text)
	return Sections{
		Title:          m[LabelTitle],
		Profile:        m[LabelProfile],
		Interpretation: m[LabelInterpretation],
		Symbols:        m[LabelSymbols],
		Trigger:        m[LabelTrigger],
		Brain:          m[LabelBrain],
		Tonight:        m[LabelTonight],
		PostText:       m[LabelPostText],
		Caption:        m[LabelCaption],
		OnImageText:    m[LabelOnImage],
	}
}
