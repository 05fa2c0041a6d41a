package entities

import "strings"

// UnknownSpeaker labels utterances the provider could not attribute
const UnknownSpeaker = "Unknown"

// Sentence is a single speaker-attributed utterance
type Sentence struct {
	Text        string `json:"text"`
	SpeakerName string `json:"speaker_name,omitempty"`
	Speaker     string `json:"speaker,omitempty"`
}

// SpeakerLabel returns the best available speaker name
func (s Sentence) SpeakerLabel() string {
	switch {
	case s.SpeakerName != "":
		return s.SpeakerName
	case s.Speaker != "":
		return s.Speaker
	default:
		return UnknownSpeaker
	}
}

// TranscriptSummary is the provider-generated meeting summary
type TranscriptSummary struct {
	Overview     string `json:"overview"`
	ShortSummary string `json:"short_summary"`
}

// TranscriptData is a completed transcript as reported by the transcription provider
type TranscriptData struct {
	Title       string             `json:"title"`
	MeetingLink string             `json:"meeting_link"`
	Sentences   []Sentence         `json:"sentences"`
	Summary     *TranscriptSummary `json:"summary,omitempty"`
}

// Text flattens the sentences into "speaker: text" lines, skipping empty utterances
func (t *TranscriptData) Text() string {
	lines := make([]string, 0, len(t.Sentences))
	for _, s := range t.Sentences {
		if s.Text == "" {
			continue
		}
		lines = append(lines, s.SpeakerLabel()+": "+s.Text)
	}
	return strings.Join(lines, "\n")
}
