package localization

// DefaultLanguage is the language used when a requested language has no
// entry for an issue type.
const DefaultLanguage = "en"

// FallbackSuggestion is returned when an issue type is unknown or carries no
// localized text at all.
const FallbackSuggestion = "Please try again"

// SuggestionLocalizer resolves remediation text for quality issue types.
// The backing table is built once and never mutated, so lookups are safe for
// unsynchronized concurrent use.
type SuggestionLocalizer struct {
	suggestions map[string]map[string]string
}

// NewSuggestionLocalizer creates a localizer backed by the built-in
// suggestion table: the five active issue types in English, Hindi, Tamil,
// Telugu and Kannada.
func NewSuggestionLocalizer() *SuggestionLocalizer {
	return &SuggestionLocalizer{
		suggestions: map[string]map[string]string{
			"TOO_DARK": {
				"en": "Take the photo in better light or move closer to a window.",
				"hi": "फ़ोटो अच्छी रोशनी में लें या खिड़की के पास जाएँ।",
				"ta": "நல்ல வெளிச்சத்தில் புகைப்படம் எடுக்கவும்.",
				"te": "మంచి వెలుతురులో ఫోటో తీయండి.",
				"kn": "ಒಳ್ಳೆಯ ಬೆಳಕಿನಲ್ಲಿ ಫೋಟೋ ತೆಗೆಯಿರಿ.",
			},
			"TOO_BRIGHT": {
				"en": "Avoid direct sunlight or flash when taking the photo.",
				"hi": "फ़ोटो लेते समय सीधी धूप या फ़्लैश से बचें।",
				"ta": "நேரடி சூரிய ஒளி அல்லது ஃபிளாஷ் தவிர்க்கவும்.",
				"te": "నేరుగా ఎండ లేదా ఫ్లాష్ లేకుండా ఫోటో తీయండి.",
				"kn": "ನೇರ ಬಿಸಿಲು ಅಥವಾ ಫ್ಲ್ಯಾಶ್ ತಪ್ಪಿಸಿ.",
			},
			"BLURRY": {
				"en": "Hold the camera steady and tap to focus before taking the photo.",
				"hi": "कैमरा स्थिर रखें और फ़ोटो लेने से पहले फ़ोकस करें।",
				"ta": "கேமராவை அசையாமல் பிடித்து ஃபோகஸ் செய்யவும்.",
				"te": "కెమెరాను స్థిరంగా పట్టుకుని ఫోకస్ చేయండి.",
				"kn": "ಕ್ಯಾಮೆರಾವನ್ನು ಸ್ಥಿರವಾಗಿ ಹಿಡಿದು ಫೋಕಸ್ ಮಾಡಿ.",
			},
			"NO_PRODUCE": {
				"en": "Make sure the produce fills most of the frame.",
				"hi": "सुनिश्चित करें कि उपज फ़्रेम के अधिकांश भाग में दिखे।",
				"ta": "விளைபொருள் படத்தின் பெரும்பகுதியை நிரப்ப வேண்டும்.",
				"te": "పంట ఉత్పత్తి ఫ్రేమ్‌లో ఎక్కువ భాగం కనిపించేలా చూడండి.",
				"kn": "ಉತ್ಪನ್ನವು ಚೌಕಟ್ಟಿನ ಹೆಚ್ಚಿನ ಭಾಗವನ್ನು ತುಂಬುವಂತೆ ನೋಡಿಕೊಳ್ಳಿ.",
			},
			"LOW_RESOLUTION": {
				"en": "Use a higher camera resolution or move closer to the produce.",
				"hi": "कैमरे का उच्च रिज़ॉल्यूशन उपयोग करें या उपज के पास जाएँ।",
				"ta": "அதிக தெளிவுத்திறனில் புகைப்படம் எடுக்கவும்.",
				"te": "ఎక్కువ రిజల్యూషన్‌తో ఫోటో తీయండి లేదా దగ్గరగా వెళ్లండి.",
				"kn": "ಹೆಚ್ಚಿನ ರೆಸಲ್ಯೂಶನ್‌ನಲ್ಲಿ ಫೋಟೋ ತೆಗೆಯಿರಿ.",
			},
		},
	}
}

// Suggest returns remediation text for an issue type. Resolution order:
// exact (issueType, language) entry, then the English entry for the issue
// type, then the generic fallback. It never fails; unknown issue types fall
// straight through to the generic fallback.
func (l *SuggestionLocalizer) Suggest(issueType string, language string) string {
	if language == "" {
		language = DefaultLanguage
	}

	byLanguage, ok := l.suggestions[issueType]
	if !ok {
		return FallbackSuggestion
	}
	if text, ok := byLanguage[language]; ok {
		return text
	}
	if text, ok := byLanguage[DefaultLanguage]; ok {
		return text
	}
	return FallbackSuggestion
}
