package dbg

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
)

// This converts arbitrary keys into random readable names, which are
// easier to tell apart in a long report than indexes or coordinates. Names are
// generated lazily and never forgotten, so don't feed it unbounded input.
//
// The same key gets the same name for the life of the process, but not between
// runs. Keys that can't be map keys (slices, maps, funcs) are named by their
// printed contents instead.

var (
	mu   sync.Mutex
	memo = make(map[interface{}]string)
)

func Name(key interface{}) string {
	if isNil(key) {
		return "Ø"
	}

	if !reflect.TypeOf(key).Comparable() {
		key = fmt.Sprintf("%T %#v", key, key)
	}

	mu.Lock()
	defer mu.Unlock()
	if r, ok := memo[key]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", title(petname.Adjective()), title(petname.Name()))
	memo[key] = r
	return r
}

func isNil(key interface{}) bool {
	if key == nil {
		return true
	}
	v := reflect.ValueOf(key)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Chan, reflect.Func:
		return v.IsNil()
	}
	return false
}

func title(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + word[1:]
}
