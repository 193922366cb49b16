package watermark

import "strings"

// exemptSubstrings opts a field out of watermarking when its name
// contains any of them. Logos, icons and social-preview images must
// stay clean.
var exemptSubstrings = []string{"logo", "icon", "og_image"}

// ShouldWatermark reports whether a field with the given name is
// subject to watermarking. The check is a case-insensitive substring
// deny-list, not a policy engine.
func ShouldWatermark(fieldName string) bool {
	lower := strings.ToLower(fieldName)
	for _, sub := range exemptSubstrings {
		if strings.Contains(lower, sub) {
			return false
		}
	}
	return true
}
