package pkg

import (
	"unsafe"
)

// BytesToString converts the byte slice without copying. The caller
// must not modify buf afterwards.
func BytesToString(buf []byte) string {
	return *(*string)(unsafe.Pointer(&buf))
}
