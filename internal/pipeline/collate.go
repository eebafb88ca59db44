package pipeline

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// collationTag is the locale used to order generated lists.
var collationTag = language.English

// Collators keep internal buffers and are not safe for concurrent use, so each
// sort builds its own.

// newFoldCollator compares case-insensitively.
func newFoldCollator() *collate.Collator {
	return collate.New(collationTag, collate.IgnoreCase)
}

// newCollator compares with the locale's default strength.
func newCollator() *collate.Collator {
	return collate.New(collationTag)
}
