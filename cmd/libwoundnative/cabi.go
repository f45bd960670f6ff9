//go:build cgo

package main

// #include <stdlib.h>
import "C"

import "unsafe"

// woundnative_call returns the value of the named export. The result is
// owned by the caller and must be released with woundnative_free.
//
//export woundnative_call
func woundnative_call(name *C.char) *C.char {
	if name == nil {
		return C.CString(call(""))
	}
	return C.CString(call(C.GoString(name)))
}

// woundnative_free releases a string returned by woundnative_call.
//
//export woundnative_free
func woundnative_free(p *C.char) {
	C.free(unsafe.Pointer(p))
}
