/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package ops_test

import (
	"errors"
	"reflect"
	"sync"
	"sync/atomic"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/typemeta/apis"
	"dirpx.dev/typemeta/ops"
)

type point struct {
	X, Y  int
	Label string
}

type guarded struct {
	mu sync.Mutex
	n  int
}

type handleOnly struct {
	ops.NoCopy
	fd int
}

type mustInit struct {
	ops.NoDefault
	table map[string]int
}

type tracked struct {
	idx int
	log *[]int
}

func (t *tracked) Release() { *t.log = append(*t.log, t.idx) }

func ptr[T any](s []T) unsafe.Pointer {
	return unsafe.Pointer(unsafe.SliceData(s))
}

func TestTrivialKinds(t *testing.T) {
	type celsius float64
	trivial := []reflect.Type{
		reflect.TypeFor[bool](),
		reflect.TypeFor[uint8](),
		reflect.TypeFor[int64](),
		reflect.TypeFor[uintptr](),
		reflect.TypeFor[complex128](),
		reflect.TypeFor[celsius](),
		reflect.TypeFor[*point](),
		reflect.TypeFor[unsafe.Pointer](),
	}
	for _, typ := range trivial {
		assert.True(t, ops.Trivial(typ.Kind()), "%s", typ)
	}

	general := []reflect.Type{
		reflect.TypeFor[string](),
		reflect.TypeFor[[]int32](),
		reflect.TypeFor[point](),
		reflect.TypeFor[[4]int](),
		reflect.TypeFor[map[string]int](),
		reflect.TypeFor[error](),
		reflect.TypeFor[func()](),
		reflect.TypeFor[chan int](),
	}
	for _, typ := range general {
		assert.False(t, ops.Trivial(typ.Kind()), "%s", typ)
	}
}

func TestForTrivialHasNoFunctions(t *testing.T) {
	ctor, cp, dtor := ops.For[float32]("float32", apis.Capabilities{NoCopy: true, NoDefault: true})
	assert.Nil(t, ctor)
	assert.Nil(t, cp)
	assert.Nil(t, dtor)
}

func TestConstruct(t *testing.T) {
	ctor, _, _ := ops.For[point]("point", apis.Capabilities{})
	require.NotNil(t, ctor)

	for _, n := range []int{0, 1, 5} {
		buf := make([]point, n+1)
		for i := range buf {
			buf[i] = point{X: 9, Y: 9, Label: "dirty"}
		}
		require.NoError(t, ctor(ptr(buf), n))
		for i := 0; i < n; i++ {
			assert.Equal(t, point{}, buf[i], "n=%d i=%d", n, i)
		}
		// The element past the span is untouched.
		assert.Equal(t, point{X: 9, Y: 9, Label: "dirty"}, buf[n], "n=%d", n)
	}

	require.NoError(t, ctor(nil, 0))
}

func TestCopy(t *testing.T) {
	_, cp, _ := ops.For[point]("point", apis.Capabilities{})
	require.NotNil(t, cp)

	for _, n := range []int{0, 1, 4} {
		src := make([]point, n)
		for i := range src {
			src[i] = point{X: i, Y: -i, Label: string(rune('a' + i))}
		}
		dst := make([]point, n+1)
		dst[n] = point{Label: "keep"}

		require.NoError(t, cp(ptr(src), ptr(dst), n))
		assert.Equal(t, src, dst[:n], "n=%d", n)
		assert.Equal(t, point{Label: "keep"}, dst[n], "n=%d", n)
	}
}

func TestDestroyReleasesInIndexOrder(t *testing.T) {
	_, _, dtor := ops.For[tracked]("tracked", apis.Capabilities{})
	require.NotNil(t, dtor)

	var log []int
	elems := make([]tracked, 4)
	for i := range elems {
		elems[i] = tracked{idx: i, log: &log}
	}
	dtor(ptr(elems), len(elems))

	assert.Equal(t, []int{0, 1, 2, 3}, log)
	for _, e := range elems {
		assert.Equal(t, tracked{}, e)
	}

	// Nothing to do: must not panic.
	dtor(nil, 0)
	dtor(nil, 3)
	dtor(ptr(elems), -1)
}

func TestDestroyZeroesReferences(t *testing.T) {
	_, _, dtor := ops.For[[]byte]("[]byte", apis.Capabilities{})
	elems := [][]byte{[]byte("a"), []byte("bc")}
	dtor(ptr(elems), 2)
	assert.Nil(t, elems[0])
	assert.Nil(t, elems[1])
}

func TestIllegalCopy(t *testing.T) {
	caps := ops.Detect[handleOnly]()
	assert.True(t, caps.NoCopy)
	assert.False(t, caps.NoDefault)

	ctor, cp, dtor := ops.For[handleOnly]("fixture.handleOnly", caps)
	require.NotNil(t, ctor)
	require.NotNil(t, dtor)

	src := []handleOnly{{fd: 3}}
	dst := make([]handleOnly, 1)
	err := cp(ptr(src), ptr(dst), 1)
	require.ErrorIs(t, err, ops.ErrIllegalOperation)

	var illegal *ops.IllegalOperationError
	require.True(t, errors.As(err, &illegal))
	assert.Equal(t, "fixture.handleOnly", illegal.TypeName)
	assert.Equal(t, ops.OpCopy, illegal.Op)
	assert.Equal(t, "typemeta: type fixture.handleOnly does not allow assignment", err.Error())
	assert.Equal(t, 0, dst[0].fd, "refused copy must not touch storage")

	// Construct stays legal.
	require.NoError(t, ctor(ptr(src), 1))
	assert.Equal(t, 0, src[0].fd)
}

func TestIllegalConstruct(t *testing.T) {
	caps := ops.Detect[mustInit]()
	assert.True(t, caps.NoDefault)
	assert.False(t, caps.NoCopy)

	ctor, cp, _ := ops.For[mustInit]("fixture.mustInit", caps)
	err := ctor(nil, 0)
	var illegal *ops.IllegalOperationError
	require.ErrorAs(t, err, &illegal)
	assert.Equal(t, ops.OpConstruct, illegal.Op)
	assert.Equal(t, "typemeta: type fixture.mustInit is not default-constructible", err.Error())

	src := []mustInit{{table: map[string]int{"a": 1}}}
	dst := make([]mustInit, 1)
	require.NoError(t, cp(ptr(src), ptr(dst), 1))
	assert.Equal(t, 1, dst[0].table["a"])
}

type nestedLock struct {
	name  string
	inner guarded
}

type lockArray struct {
	slots [2]sync.Mutex
}

type counters struct {
	hits atomic.Int64
}

type sharedLock struct {
	mu    *sync.Mutex
	group []sync.Mutex
	byKey map[string]sync.Mutex
	none  [0]sync.Mutex
}

func TestDetectLocker(t *testing.T) {
	locked := []struct {
		name string
		caps apis.Capabilities
	}{
		{"sync.Mutex", ops.Detect[sync.Mutex]()},
		{"sync.RWMutex", ops.Detect[sync.RWMutex]()},
		{"sync.WaitGroup", ops.Detect[sync.WaitGroup]()},
		{"named field", ops.Detect[guarded]()},
		{"nested struct", ops.Detect[nestedLock]()},
		{"array of locks", ops.Detect[[2]sync.Mutex]()},
		{"array field", ops.Detect[lockArray]()},
		{"atomic field", ops.Detect[counters]()},
	}
	for _, tc := range locked {
		assert.True(t, tc.caps.NoCopy, tc.name)
		assert.False(t, tc.caps.NoDefault, tc.name)
	}

	// Indirections share the lock; copying them is fine.
	assert.Equal(t, apis.Capabilities{}, ops.Detect[sharedLock]())
	assert.Equal(t, apis.Capabilities{}, ops.Detect[point]())
	assert.Equal(t, apis.Capabilities{}, ops.Detect[[]sync.Mutex]())
}

func TestLockFieldRefusesCopy(t *testing.T) {
	caps := ops.Detect[guarded]()
	_, cp, _ := ops.For[guarded]("fixture.guarded", caps)

	src := []guarded{{n: 7}}
	dst := make([]guarded, 1)
	err := cp(ptr(src), ptr(dst), 1)
	require.ErrorIs(t, err, ops.ErrIllegalOperation)
	assert.Equal(t, 0, dst[0].n, "refused copy must not touch storage")
}

func TestRegistrationFlagsOverrideDetection(t *testing.T) {
	caps := ops.Detect[point]().Merge(apis.Capabilities{NoCopy: true})
	_, cp, _ := ops.For[point]("point", caps)
	require.ErrorIs(t, cp(nil, nil, 0), ops.ErrIllegalOperation)
}

func TestSpanErrors(t *testing.T) {
	ctor, cp, _ := ops.For[point]("point", apis.Capabilities{})
	buf := make([]point, 1)

	require.ErrorIs(t, ctor(ptr(buf), -1), ops.ErrNegativeCount)
	require.ErrorIs(t, ctor(nil, 2), ops.ErrNilStorage)
	require.ErrorIs(t, cp(ptr(buf), nil, 1), ops.ErrNilStorage)
	require.ErrorIs(t, cp(nil, ptr(buf), 1), ops.ErrNilStorage)
	require.ErrorIs(t, cp(ptr(buf), ptr(buf), -3), ops.ErrNegativeCount)
}

func TestZeroSizedElements(t *testing.T) {
	type empty struct{}
	ctor, cp, dtor := ops.For[empty]("empty", apis.Capabilities{})
	buf := make([]empty, 3)
	require.NoError(t, ctor(ptr(buf), 3))
	require.NoError(t, cp(ptr(buf), ptr(buf), 3))
	dtor(ptr(buf), 3)
}

func TestOperationString(t *testing.T) {
	assert.Equal(t, "construct", ops.OpConstruct.String())
	assert.Equal(t, "copy", ops.OpCopy.String())
	assert.Equal(t, "Operation(9)", ops.Operation(9).String())
}
