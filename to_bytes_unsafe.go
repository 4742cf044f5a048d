//go:build unsafe

package bloom

import "unsafe"

// toBytes aliases the string's memory. Callers must not modify the result.
func toBytes(data string) []byte {
	return unsafe.Slice(unsafe.StringData(data), len(data))
}
