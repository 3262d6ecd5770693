package bindings

import (
	"runtime"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

// arena builds foreign-shaped buffers in Go memory: NUL-terminated strings,
// pointer arrays, double arrays, unsigned-long count arrays. It keeps every
// backing slice referenced so the buffers stay valid for the whole test.
type arena struct {
	strings [][]byte
	ptrs    [][]unsafe.Pointer
	nums    [][]float64
	counts  [][]uint
	enums   [][]int32
}

func (a *arena) text(s string) unsafe.Pointer {
	b := append([]byte(s), 0)
	a.strings = append(a.strings, b)
	return unsafe.Pointer(&b[0])
}

func (a *arena) textArray(ss ...string) unsafe.Pointer {
	if len(ss) == 0 {
		return nil
	}
	arr := make([]unsafe.Pointer, len(ss))
	for i, s := range ss {
		arr[i] = a.text(s)
	}
	a.ptrs = append(a.ptrs, arr)
	return unsafe.Pointer(&arr[0])
}

func (a *arena) ptrArray(ps ...unsafe.Pointer) unsafe.Pointer {
	if len(ps) == 0 {
		return nil
	}
	arr := make([]unsafe.Pointer, len(ps))
	copy(arr, ps)
	a.ptrs = append(a.ptrs, arr)
	return unsafe.Pointer(&arr[0])
}

func (a *arena) numberArray(vs ...float64) unsafe.Pointer {
	if len(vs) == 0 {
		return nil
	}
	arr := make([]float64, len(vs))
	copy(arr, vs)
	a.nums = append(a.nums, arr)
	return unsafe.Pointer(&arr[0])
}

func (a *arena) countArray(vs ...uint) unsafe.Pointer {
	if len(vs) == 0 {
		return nil
	}
	arr := make([]uint, len(vs))
	copy(arr, vs)
	a.counts = append(a.counts, arr)
	return unsafe.Pointer(&arr[0])
}

func (a *arena) enumArray(vs ...int32) unsafe.Pointer {
	if len(vs) == 0 {
		return nil
	}
	arr := make([]int32, len(vs))
	copy(arr, vs)
	a.enums = append(a.enums, arr)
	return unsafe.Pointer(&arr[0])
}

// scorch overwrites every buffer the arena handed out, standing in for the
// foreign library recycling its allocations after freeAll.
func (a *arena) scorch() {
	for _, b := range a.strings {
		for i := range b {
			b[i] = 0xDD
		}
	}
	for _, p := range a.ptrs {
		for i := range p {
			p[i] = nil
		}
	}
	for _, n := range a.nums {
		for i := range n {
			n[i] = -1
		}
	}
	for _, c := range a.counts {
		for i := range c {
			c[i] = ^uint(0)
		}
	}
}

func TestGoTextNil(t *testing.T) {
	if got := goText(nil); got != "" {
		t.Fatalf("goText(nil) = %q, want empty", got)
	}
}

func TestGoText(t *testing.T) {
	a := &arena{}
	if got := goText(a.text("S1 + E")); got != "S1 + E" {
		t.Fatalf("goText = %q, want %q", got, "S1 + E")
	}
	if got := goText(a.text("")); got != "" {
		t.Fatalf("goText of empty string = %q, want empty", got)
	}
	runtime.KeepAlive(a)
}

func TestGoTextArrayEmpty(t *testing.T) {
	a := &arena{}
	p := a.textArray("x", "y")

	cases := []struct {
		name  string
		ptr   unsafe.Pointer
		count int
	}{
		{"nil pointer", nil, 3},
		{"zero count", p, 0},
		{"negative count", p, -1},
		{"nil and zero", nil, 0},
	}
	for _, tc := range cases {
		if got := goTextArray(tc.ptr, tc.count); len(got) != 0 {
			t.Errorf("%s: got %v, want empty", tc.name, got)
		}
	}
	runtime.KeepAlive(a)
}

func TestGoTextArray(t *testing.T) {
	a := &arena{}
	p := a.textArray("glucose", "", "ATP")

	got := goTextArray(p, 3)
	require.Equal(t, []string{"glucose", "", "ATP"}, got)
	runtime.KeepAlive(a)
}

func TestGoJaggedText(t *testing.T) {
	a := &arena{}
	outer := a.ptrArray(
		a.textArray("S1", "E"),
		nil,
		a.textArray("P1", "P2", "P3"),
	)

	got := goJaggedText(outer, []int{2, 0, 3})
	require.Len(t, got, 3)
	require.Equal(t, []string{"S1", "E"}, got[0])
	require.Empty(t, got[1])
	require.Equal(t, []string{"P1", "P2", "P3"}, got[2])
	runtime.KeepAlive(a)
}

func TestGoJaggedTextNilOuter(t *testing.T) {
	got := goJaggedText(nil, []int{2, 0, 3})
	if len(got) != 3 {
		t.Fatalf("outer length = %d, want 3", len(got))
	}
	for i, in := range got {
		if len(in) != 0 {
			t.Errorf("inner %d = %v, want empty", i, in)
		}
	}
}

func TestGoNumberArray(t *testing.T) {
	a := &arena{}
	p := a.numberArray(1, 2.5, 0)

	require.Equal(t, []float64{1, 2.5, 0}, goNumberArray(p, 3))
	require.Empty(t, goNumberArray(nil, 3))
	require.Empty(t, goNumberArray(p, 0))
	runtime.KeepAlive(a)
}

func TestGoJaggedNumbers(t *testing.T) {
	a := &arena{}
	outer := a.ptrArray(
		a.numberArray(1),
		nil,
		a.numberArray(2, 1),
	)

	got := goJaggedNumbers(outer, []int{1, 0, 2})
	require.Len(t, got, 3)
	require.Equal(t, []float64{1}, got[0])
	require.Empty(t, got[1])
	require.Equal(t, []float64{2, 1}, got[2])
	runtime.KeepAlive(a)
}

func TestGoCountArray(t *testing.T) {
	a := &arena{}
	p := a.countArray(1, 0, 2)

	require.Equal(t, []int{1, 0, 2}, goCountArray(p, 3))
	// Unknown module: the library returns null but the paired outer count may
	// still be positive; decode degrades to zeros of the right length.
	require.Equal(t, []int{0, 0}, goCountArray(nil, 2))
	require.Empty(t, goCountArray(p, 0))
	runtime.KeepAlive(a)
}

func TestGoEnumArray(t *testing.T) {
	a := &arena{}
	p := a.enumArray(0, 2, 1)

	require.Equal(t, []int{0, 2, 1}, goEnumArray(p, 3))
	require.Empty(t, goEnumArray(nil, 3))
	runtime.KeepAlive(a)
}

func TestGoPairNil(t *testing.T) {
	_, err := goPair(nil)
	if err == nil {
		t.Fatal("goPair(nil) succeeded, want error")
	}
}

func TestGoPair(t *testing.T) {
	a := &arena{}
	p := a.textArray("sub.S1", "S1")

	pair, err := goPair(p)
	if err != nil {
		t.Fatalf("goPair: %v", err)
	}
	if pair.Former != "sub.S1" || pair.Replacement != "S1" {
		t.Fatalf("goPair = %+v, want {sub.S1 S1}", pair)
	}
	runtime.KeepAlive(a)
}

// Decoded values must not alias foreign memory: after the library recycles
// its allocations, everything decoded earlier stays readable and unchanged.
func TestDecodedValuesSurviveBulkFree(t *testing.T) {
	a := &arena{}

	text := goText(a.text("J0"))
	flat := goTextArray(a.textArray("A", "B"), 2)
	jagged := goJaggedText(a.ptrArray(a.textArray("D", "E"), nil, a.textArray("F")), []int{2, 0, 1})
	nums := goNumberArray(a.numberArray(1, 2), 2)
	pair, err := goPair(a.textArray("former", "replacement"))
	require.NoError(t, err)

	a.scorch()

	require.Equal(t, "J0", text)
	require.Equal(t, []string{"A", "B"}, flat)
	require.Equal(t, [][]string{{"D", "E"}, nil, {"F"}}, jagged)
	require.Equal(t, []float64{1, 2}, nums)
	require.Equal(t, SymbolPair{Former: "former", Replacement: "replacement"}, pair)
	runtime.KeepAlive(a)
}
