package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

// Alphanumeric NanoIDs, URL-safe without the -_ characters.
var (
	NanoidSize     = 21
	nanoidAlphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

func NanoID() string {
	return NanoIDSize(NanoidSize)
}

// NanoIDSize generates an ID of the given length, falling back to the
// package default when size is zero.
func NanoIDSize(size int) string {
	if size == 0 {
		size = NanoidSize
	}

	return gonanoid.MustGenerate(nanoidAlphabet, size)
}
