package i18n

import "testing"

func TestT(t *testing.T) {
	tests := []struct {
		phrase string
		lang   Language
		want   string
	}{
		{"Correct!", English, "Correct!"},
		{"Correct!", Hindi, "सही!"},
		{"Score", Tamil, "மதிப்பெண்"},
		{"Guess", Bengali, "অনুমান"},
		{"Untranslated phrase", Marathi, "Untranslated phrase"},
		{"Correct!", Language("klingon"), "Correct!"},
	}
	for _, tt := range tests {
		if got := T(tt.phrase, tt.lang); got != tt.want {
			t.Errorf("T(%q, %s) = %q, want %q", tt.phrase, tt.lang, got, tt.want)
		}
	}
}

func TestParse(t *testing.T) {
	if lang, err := Parse("tamil"); err != nil || lang != Tamil {
		t.Errorf("Parse(tamil) = %v, %v", lang, err)
	}
	if _, err := Parse("latin"); err == nil {
		t.Error("Parse(latin) did not error")
	}
}

func TestSpeechCode(t *testing.T) {
	tests := []struct {
		lang Language
		want string
	}{
		{English, "en-IN"},
		{Hindi, "hi-IN"},
		{Marathi, "mr-IN"},
		{Tamil, "ta-IN"},
		{Bengali, "bn-IN"},
		{Language("other"), "en-IN"},
	}
	for _, tt := range tests {
		if got := tt.lang.SpeechCode(); got != tt.want {
			t.Errorf("SpeechCode(%s) = %q, want %q", tt.lang, got, tt.want)
		}
	}
}

func TestFormatTime(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "00:00"},
		{5, "00:05"},
		{65, "01:05"},
		{600, "10:00"},
		{-3, "00:00"},
	}
	for _, tt := range tests {
		if got := FormatTime(tt.seconds); got != tt.want {
			t.Errorf("FormatTime(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}
