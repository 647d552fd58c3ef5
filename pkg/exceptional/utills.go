package exceptional

import (
	"reflect"
)

// IsNil reports whether i is absent: a nil interface or a nil pointer, map,
// slice, channel or func.
func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}

	switch v := reflect.ValueOf(i); v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func,
		reflect.Interface, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}

// RequireNonNil raises a contract violation naming what when v is absent.
func RequireNonNil(v interface{}, what string) {
	if IsNil(v) {
		violate("%s must not be nil", what)
	}
}

// SameCatcher reports whether a and b are the same policy value.
// Catchers whose dynamic type is not comparable are never the same.
func SameCatcher(a, b Catcher) bool {
	return identical(a, b)
}

func identical(a, b interface{}) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	return comparesEqual(a, b)
}

// comparesEqual is a == b, false when a struct or array of a comparable type
// holds an uncomparable value in an interface field.
func comparesEqual(a, b interface{}) (same bool) {
	defer func() {
		if recover() != nil {
			same = false
		}
	}()
	return a == b
}

func equal(a, b interface{}) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) {
		return false
	}
	// struct and array kinds may hold interfaces; == on those can panic
	if ta.Comparable() && ta.Kind() != reflect.Struct && ta.Kind() != reflect.Array {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}
