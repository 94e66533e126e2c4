// Package mappers converts Magento wire types into the canonical commerce
// models returned by the actions.
package mappers

import (
	"time"
)

const (
	magentoDateLayout = "2006-01-02 15:04:05"
	isoDateLayout     = "2006-01-02T15:04:05.000Z"
)

// FormatDate converts a Magento timestamp (UTC, no zone) into ISO 8601.
// Values that do not parse are returned unchanged.
func FormatDate(value string) string {
	if value == "" {
		return ""
	}
	t, err := time.ParseInLocation(magentoDateLayout, value, time.UTC)
	if err != nil {
		return value
	}
	return t.UTC().Format(isoDateLayout)
}
