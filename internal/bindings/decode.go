package bindings

import (
	"errors"
	"unsafe"
)

// Decode core: converts foreign buffers into Go-owned values. All functions
// copy every byte out of foreign memory before returning, so decoded values
// stay valid after FreeAll. None of this file touches cgo; the foreign
// pointers arrive as unsafe.Pointer from the build-tagged wrappers, which
// keeps the pointer-walking logic compilable and testable everywhere.
//
// The foreign encodings carry no lengths: a char* ends at the NUL byte, and
// flat/jagged arrays are exactly as long as the count query that pairs with
// them says. Counts must therefore come from the same locked call sequence
// as the array they describe; a stale count is an undetectable over-read.

var errNilPair = errors.New("nil symbol pair")

// goText copies a NUL-terminated foreign string. A nil pointer decodes to ""
// — call sites where nil means "not found" must check before decoding.
func goText(p unsafe.Pointer) string {
	if p == nil {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Add(p, n)) != 0 {
		n++
	}
	return string(unsafe.Slice((*byte)(p), n))
}

// goTextArray walks count consecutive char* slots. A nil pointer or a
// non-positive count is an empty result, not an error.
func goTextArray(p unsafe.Pointer, count int) []string {
	if p == nil || count <= 0 {
		return nil
	}
	slots := unsafe.Slice((*unsafe.Pointer)(p), count)
	out := make([]string, count)
	for i, s := range slots {
		out[i] = goText(s)
	}
	return out
}

// goJaggedText decodes a char*** whose i-th inner array holds inner[i]
// strings. The outer result always has len(inner) entries; a nil outer
// pointer yields that many empty inner slices.
func goJaggedText(p unsafe.Pointer, inner []int) [][]string {
	out := make([][]string, len(inner))
	if p == nil {
		return out
	}
	slots := unsafe.Slice((*unsafe.Pointer)(p), len(inner))
	for i, s := range slots {
		out[i] = goTextArray(s, inner[i])
	}
	return out
}

// goNumberArray copies count doubles.
func goNumberArray(p unsafe.Pointer, count int) []float64 {
	if p == nil || count <= 0 {
		return nil
	}
	src := unsafe.Slice((*float64)(p), count)
	out := make([]float64, count)
	copy(out, src)
	return out
}

// goJaggedNumbers decodes a double** with externally supplied inner counts,
// same shape rules as goJaggedText.
func goJaggedNumbers(p unsafe.Pointer, inner []int) [][]float64 {
	out := make([][]float64, len(inner))
	if p == nil {
		return out
	}
	slots := unsafe.Slice((*unsafe.Pointer)(p), len(inner))
	for i, s := range slots {
		out[i] = goNumberArray(s, inner[i])
	}
	return out
}

// goCountArray copies count unsigned-long slots. The result always has count
// entries; a nil pointer decodes to all zeros so that a jagged decode over an
// unknown module degrades to empty inner slices. Go's uint matches the width
// of C unsigned long on every platform the native build supports (Windows is
// excluded by build tag).
func goCountArray(p unsafe.Pointer, count int) []int {
	if count <= 0 {
		return nil
	}
	out := make([]int, count)
	if p == nil {
		return out
	}
	src := unsafe.Slice((*uint)(p), count)
	for i, v := range src {
		out[i] = int(v)
	}
	return out
}

// goEnumArray copies count C int slots (enumeration codes).
func goEnumArray(p unsafe.Pointer, count int) []int {
	if p == nil || count <= 0 {
		return nil
	}
	src := unsafe.Slice((*int32)(p), count)
	out := make([]int, count)
	for i, v := range src {
		out[i] = int(v)
	}
	return out
}

// goPair decodes an exactly-2-element char** into a SymbolPair. Unlike the
// array decodes, a nil pointer here is an error: a pair can be absent but
// never empty.
func goPair(p unsafe.Pointer) (SymbolPair, error) {
	if p == nil {
		return SymbolPair{}, errNilPair
	}
	elems := goTextArray(p, 2)
	return SymbolPair{Former: elems[0], Replacement: elems[1]}, nil
}
