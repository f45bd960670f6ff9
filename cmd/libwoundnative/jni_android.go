//go:build android

package main

/*
#include <jni.h>
#include <stdlib.h>

// Implemented in jni_android.c.
jstring woundnative_new_string(JNIEnv* env, const char* s);
*/
import "C"

import (
	"unsafe"

	"github.com/teslashibe/woundnative/pkg/exports"
)

// Java_com_pasindu_woundcarepro_nativebridge_NativeBridge_openCvVersion backs
// NativeBridge.openCvVersion(). It never returns null.
//
//export Java_com_pasindu_woundcarepro_nativebridge_NativeBridge_openCvVersion
func Java_com_pasindu_woundcarepro_nativebridge_NativeBridge_openCvVersion(env *C.JNIEnv, thiz C.jobject) C.jstring {
	v := C.CString(call(exports.OpenCVVersion))
	defer C.free(unsafe.Pointer(v))
	return C.woundnative_new_string(env, v)
}
