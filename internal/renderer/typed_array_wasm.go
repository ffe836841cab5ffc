//go:build js && wasm

package renderer

import (
	"syscall/js"
	"unsafe"
)

func float32Array(data []float32) js.Value {
	arr := js.Global().Get("Float32Array").New(len(data))
	if len(data) == 0 {
		return arr
	}
	copyToTypedArray(arr, unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), len(data)*4))
	return arr
}

func uint16Array(data []uint16) js.Value {
	arr := js.Global().Get("Uint16Array").New(len(data))
	if len(data) == 0 {
		return arr
	}
	copyToTypedArray(arr, unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), len(data)*2))
	return arr
}

// copyToTypedArray copies raw little-endian bytes into the backing store of
// a typed array of matching byte length.
func copyToTypedArray(arr js.Value, raw []byte) {
	view := js.Global().Get("Uint8Array").New(arr.Get("buffer"), arr.Get("byteOffset"), arr.Get("byteLength"))
	js.CopyBytesToJS(view, raw)
}
