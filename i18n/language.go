package i18n

import (
	"fmt"
	"strings"
)

// ParseLanguage maps a --lang value to a Language. It accepts the short
// codes and the display names.
func ParseLanguage(langStr string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(langStr)) {
	case "", "en", "english":
		return English, nil
	case "zh", "zh-cn", "简体中文":
		return Chinese, nil
	}
	return "", fmt.Errorf("unsupported language %q", langStr)
}

// Keys returns the translation keys of lang.
func Keys(lang Language) []string {
	t := GetTranslator()
	t.mu.RLock()
	defer t.mu.RUnlock()
	keys := make([]string, 0, len(t.translations[lang]))
	for k := range t.translations[lang] {
		keys = append(keys, k)
	}
	return keys
}
