package i18n

// Translator retrieves localized messages for issue codes. data provides
// optional metadata to embed in the message (for example, "expected").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator. Codes are
// the draft-07 keyword names plus the facade's own codes.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "type":
			return "型が不正です"
		case "required":
			return "必須プロパティが不足しています"
		case "enum":
			return "許可された値ではありません"
		case "const":
			return "固定値と一致しません"
		case "additionalProperties":
			return "未知のキーです"
		case "additionalItems":
			return "許可されていない要素です"
		case "oneOf":
			return "いずれか一つのスキーマに一致する必要があります"
		case "anyOf":
			return "いずれのスキーマにも一致しません"
		case "allOf":
			return "すべてのスキーマに一致する必要があります"
		case "schema":
			return "スキーマは値を受け付けません"
		case "parse_error":
			return "解析エラー"
		}
	default: // "en"
		switch code {
		case "type":
			return "invalid type"
		case "required":
			return "required property missing"
		case "enum":
			return "value not in enum"
		case "const":
			return "value does not match const"
		case "additionalProperties":
			return "unknown key"
		case "additionalItems":
			return "item not allowed"
		case "oneOf":
			return "must match exactly one schema"
		case "anyOf":
			return "does not match any schema"
		case "allOf":
			return "must match all schemas"
		case "schema":
			return "schema accepts no value"
		case "parse_error":
			return "parse error"
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

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
