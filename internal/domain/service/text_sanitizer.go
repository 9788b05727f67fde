package service

// TextSanitizer strips markup from user supplied free text before storage.
type TextSanitizer interface {
	Sanitize(text string) string
}
