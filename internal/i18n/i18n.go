// Package i18n translates the short interface phrases the game shows.
// Translations are a static table; anything not in the table falls back
// to the English text.
package i18n

import "fmt"

// Language is one of the supported interface languages.
type Language string

const (
	English Language = "english"
	Hindi   Language = "hindi"
	Marathi Language = "marathi"
	Tamil   Language = "tamil"
	Bengali Language = "bengali"
)

// Languages lists the supported languages in settings order.
func Languages() []Language {
	return []Language{English, Hindi, Marathi, Tamil, Bengali}
}

// Parse maps a config string to a Language.
func Parse(s string) (Language, error) {
	for _, l := range Languages() {
		if string(l) == s {
			return l, nil
		}
	}
	return English, fmt.Errorf("unknown language %q", s)
}

// DisplayName returns the language's own name for the settings menu.
func (l Language) DisplayName() string {
	switch l {
	case Hindi:
		return "हिन्दी"
	case Marathi:
		return "मराठी"
	case Tamil:
		return "தமிழ்"
	case Bengali:
		return "বাংলা"
	default:
		return "English"
	}
}

// SpeechCode returns the BCP 47 tag used for speech synthesis.
func (l Language) SpeechCode() string {
	switch l {
	case Hindi:
		return "hi-IN"
	case Marathi:
		return "mr-IN"
	case Tamil:
		return "ta-IN"
	case Bengali:
		return "bn-IN"
	default:
		return "en-IN"
	}
}

var translations = map[Language]map[string]string{
	Hindi: {
		"Correct!":  "सही!",
		"Wrong!":    "गलत!",
		"Try again": "फिर से प्रयास करें",
		"Next":      "अगला",
		"Submit":    "जमा करें",
		"Start":     "शुरू करें",
		"Finish":    "समाप्त",
		"Score":     "अंक",
		"Time":      "समय",
		"Level":     "स्तर",
		"Easy":      "आसान",
		"Medium":    "मध्यम",
		"Hard":      "कठिन",
		"Math":      "गणित",
		"Quiz":      "प्रश्नोत्तरी",
		"Guess":     "अनुमान",
	},
	Marathi: {
		"Correct!":  "बरोबर!",
		"Wrong!":    "चूक!",
		"Try again": "पुन्हा प्रयत्न करा",
		"Next":      "पुढे",
		"Submit":    "सबमिट करा",
		"Start":     "सुरू करा",
		"Finish":    "समाप्त",
		"Score":     "गुण",
		"Time":      "वेळ",
		"Level":     "स्तर",
		"Easy":      "सोपे",
		"Medium":    "मध्यम",
		"Hard":      "कठीण",
		"Math":      "गणित",
		"Quiz":      "प्रश्नोत्तरी",
		"Guess":     "अंदाज",
	},
	Tamil: {
		"Correct!":  "சரி!",
		"Wrong!":    "தவறு!",
		"Try again": "மீண்டும் முயற்சிக்கவும்",
		"Next":      "அடுத்து",
		"Submit":    "சமர்ப்பிக்கவும்",
		"Start":     "தொடங்கு",
		"Finish":    "முடிக்க",
		"Score":     "மதிப்பெண்",
		"Time":      "நேரம்",
		"Level":     "நிலை",
		"Easy":      "எளிது",
		"Medium":    "நடுத்தரம்",
		"Hard":      "கடினம்",
		"Math":      "கணிதம்",
		"Quiz":      "வினாடி வினா",
		"Guess":     "ஊகிக்க",
	},
	Bengali: {
		"Correct!":  "সঠিক!",
		"Wrong!":    "ভুল!",
		"Try again": "আবার চেষ্টা করুন",
		"Next":      "পরবর্তী",
		"Submit":    "জমা দিন",
		"Start":     "শুরু করুন",
		"Finish":    "শেষ করুন",
		"Score":     "স্কোর",
		"Time":      "সময়",
		"Level":     "স্তর",
		"Easy":      "সহজ",
		"Medium":    "মাঝারি",
		"Hard":      "কঠিন",
		"Math":      "গণিত",
		"Quiz":      "কুইজ",
		"Guess":     "অনুমান",
	},
}

// T translates a phrase into the language, falling back to the phrase
// itself when no translation exists.
func T(phrase string, lang Language) string {
	if lang == English {
		return phrase
	}
	table, ok := translations[lang]
	if !ok {
		return phrase
	}
	if translated, ok := table[phrase]; ok {
		return translated
	}
	return phrase
}

// FormatTime renders a second count as MM:SS.
func FormatTime(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
