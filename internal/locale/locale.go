// Package locale picks the language for client-facing generic messages.
package locale

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys.
const (
	InternalServerError = "internal_server_error"
	NotFound            = "not_found"
)

var supported = []language.Tag{language.Korean, language.English}

func init() {
	for _, e := range []struct {
		tag      language.Tag
		key, msg string
	}{
		{language.Korean, InternalServerError, "서버 내부 오류가 발생했습니다"},
		{language.Korean, NotFound, "요청한 리소스를 찾을 수 없습니다"},
		{language.English, InternalServerError, "An internal server error occurred"},
		{language.English, NotFound, "The requested resource could not be found"},
	} {
		if err := message.SetString(e.tag, e.key, e.msg); err != nil {
			panic(err)
		}
	}
}

type Translator struct {
	tags     []language.Tag
	matcher  language.Matcher
	fallback language.Tag
}

// NewTranslator falls back to defaultLang when Accept-Language is absent or
// unsupported. An unparsable defaultLang means Korean.
func NewTranslator(defaultLang string) *Translator {
	fallback, err := language.Parse(defaultLang)
	if err != nil {
		fallback = language.Korean
	}
	_, idx, _ := language.NewMatcher(supported).Match(fallback)
	fallback = supported[idx]

	ordered := []language.Tag{fallback}
	for _, t := range supported {
		if t != fallback {
			ordered = append(ordered, t)
		}
	}
	return &Translator{tags: ordered, matcher: language.NewMatcher(ordered), fallback: fallback}
}

func (t *Translator) Translate(acceptLanguage, key string) string {
	tag := t.fallback
	if acceptLanguage != "" {
		if prefs, _, err := language.ParseAcceptLanguage(acceptLanguage); err == nil && len(prefs) > 0 {
			_, idx, confidence := t.matcher.Match(prefs...)
			if confidence != language.No {
				tag = t.tags[idx]
			}
		}
	}
	return message.NewPrinter(tag).Sprintf(key)
}
