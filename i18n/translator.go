package i18n

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "name" or "key").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "duplicate_name":
			return "フィールド名が重複しています"
		case "target_unresolved":
			return "マウント先のターゲットを解決できません"
		case "unknown_format":
			return "未知のフォーマットです"
		case "invalid_type":
			return "型が不正です"
		case "parse_error":
			return "解析エラー"
		case "invalid_mounting":
			return "マウント定義が不正です"
		}
	default: // "en"
		switch code {
		case "duplicate_name":
			return "duplicate field name"
		case "target_unresolved":
			return "mounting target could not be resolved"
		case "unknown_format":
			return "unknown format"
		case "invalid_type":
			return "invalid type"
		case "parse_error":
			return "parse error"
		case "invalid_mounting":
			return "invalid mounting definition"
		}
	}
	return code
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T resolves code into a message using the current Translator.
func T(code string, data map[string]string) string {
	return currentTranslator.Message(code, data)
}
