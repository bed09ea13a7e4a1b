package utils

import "github.com/microcosm-cc/bluemonday"

var strictPolicy = bluemonday.StrictPolicy()

// SanitizeText strips any markup from customer-entered free text before it is
// stored or placed into a view model.
func SanitizeText(s string) string {
	return strictPolicy.Sanitize(s)
}
