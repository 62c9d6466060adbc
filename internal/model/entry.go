package model

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
)

// Occurrence is one place an entry's text was found.
type Occurrence struct {
	File Path
	Line int
}

// StringEntry is a unique translatable unit.
type StringEntry struct {
	ID          string
	Text        string
	Context     string
	Occurrences []Occurrence
	Warnings    []Warning
}

// TranslationEntry is a translated text for one entry in one locale.
type TranslationEntry struct {
	Locale  string
	EntryID string
	Text    string
}

// entryIDLength is the number of hex digits kept from the digest.
const entryIDLength = 32

// EntryID derives the stable identifier of (text, context). The context is
// length-prefixed so distinct pairs never share a pre-image.
func EntryID(text, context string) string {
	h := sha256.New()
	h.Write([]byte(strconv.Itoa(len(context))))
	h.Write([]byte{':'})
	h.Write([]byte(context))
	h.Write([]byte{0x04})
	h.Write([]byte(text))

	return hex.EncodeToString(h.Sum(nil))[:entryIDLength]
}
