//go:build !unsafe

package bloom

func toBytes(data string) []byte { return []byte(data) }
