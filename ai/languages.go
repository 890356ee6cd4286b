package ai

// NativeLanguage is the language the corpus and the model output are in.
// Answers are translated only when another language is selected.
const NativeLanguage = "English"

// NativeLanguageCode is the ISO-639 code of the native language.
const NativeLanguageCode = "en"

// Languages lists the selectable answer languages in display order.
// The first entry is the native language.
var Languages = []string{
	"English", "Hindi", "Bengali", "Telugu", "Marathi", "Tamil", "Urdu",
	"Gujarati", "Malayalam", "Kannada", "Punjabi", "Odia", "Maithili",
	"Sanskrit", "Santali", "Kashmiri", "Nepali", "Dogri", "Manipuri", "Bodo",
	"Sindhi", "Assamese", "Konkani", "Awadhi", "Rajasthani", "Haryanvi",
	"Bihari", "Chhattisgarhi", "Magahi",
}

// languageCodes maps display names to ISO-639 codes accepted by the
// translation service.
var languageCodes = map[string]string{
	"English":       "en",
	"Hindi":         "hi",
	"Bengali":       "bn",
	"Telugu":        "te",
	"Marathi":       "mr",
	"Tamil":         "ta",
	"Urdu":          "ur",
	"Gujarati":      "gu",
	"Malayalam":     "ml",
	"Kannada":       "kn",
	"Punjabi":       "pa",
	"Odia":          "or",
	"Maithili":      "mai",
	"Sanskrit":      "sa",
	"Santali":       "sat",
	"Kashmiri":      "ks",
	"Nepali":        "ne",
	"Dogri":         "doi",
	"Manipuri":      "mni",
	"Bodo":          "brx",
	"Sindhi":        "sd",
	"Assamese":      "as",
	"Konkani":       "gom",
	"Awadhi":        "awa",
	"Rajasthani":    "raj",
	"Haryanvi":      "bgc",
	"Bihari":        "bho",
	"Chhattisgarhi": "hne",
	"Magahi":        "mag",
}

// LanguageCode returns the ISO-639 code for a display name.
// The second return value is false for unknown languages.
func LanguageCode(name string) (string, bool) {
	code, ok := languageCodes[name]
	return code, ok
}

// IsNativeLanguage reports whether name is the pipeline's native language.
func IsNativeLanguage(name string) bool {
	return name == NativeLanguage
}
