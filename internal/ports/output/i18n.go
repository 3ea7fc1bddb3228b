package output

// Translator renders user-facing text (error messages, announcement labels)
// for a locale. A missing key renders as the key itself.
type Translator interface {
	T(locale, key string, data map[string]any) string
}
