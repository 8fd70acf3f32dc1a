package main

/*
#include "hotkey_abi.h"

static void hk_invoke(hotkey_callback cb, hotkey_id id, void *user_data) {
	cb(id, user_data);
}
*/
import "C"
import "unsafe"

// invokeCallback lives in its own file: files containing //export
// directives may not define C functions in their preamble.
func invokeCallback(cb C.hotkey_callback, id C.hotkey_id, userData unsafe.Pointer) {
	C.hk_invoke(cb, id, userData)
}
