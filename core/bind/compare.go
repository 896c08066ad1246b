package bind

import "reflect"

// Comparator decides value-sameness between two projections. Returning true
// suppresses the re-render. Correct suppression assumes the comparator is
// reflexive and consistent across calls for equal inputs; it need not be a
// true equivalence relation.
type Comparator[T any] func(a, b T) bool

// Identity returns the default comparator: Go == for comparable kinds,
// reference identity for maps, slices, pointers, channels and funcs.
func Identity[T any]() Comparator[T] {
	return func(a, b T) bool { return identical(any(a), any(b)) }
}

// Shallow returns a comparator for mapping-like values: two values compare
// equal when their top-level key sets match and every value compares
// identity-equal. Works on maps, structs and pointers to structs; any other
// kind falls back to identity.
func Shallow[T any]() Comparator[T] {
	return func(a, b T) bool { return shallowEqual(any(a), any(b)) }
}

func identical(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}

	switch va.Kind() {
	case reflect.Map, reflect.Chan, reflect.Func, reflect.Pointer, reflect.UnsafePointer:
		return va.Pointer() == vb.Pointer()
	case reflect.Slice:
		// same backing array and same visible length
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()
	default:
		if !va.Type().Comparable() {
			return false
		}
		return a == b
	}
}

func shallowEqual(a, b any) bool {
	if identical(a, b) {
		return true
	}
	if a == nil || b == nil {
		return false
	}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}

	if va.Kind() == reflect.Pointer {
		if va.IsNil() || vb.IsNil() {
			return false
		}
		va, vb = va.Elem(), vb.Elem()
	}

	switch va.Kind() {
	case reflect.Map:
		if va.Len() != vb.Len() {
			return false
		}
		iter := va.MapRange()
		for iter.Next() {
			other := vb.MapIndex(iter.Key())
			if !other.IsValid() {
				return false
			}
			if !identical(iter.Value().Interface(), other.Interface()) {
				return false
			}
		}
		return true
	case reflect.Struct:
		t := va.Type()
		for i := 0; i < t.NumField(); i++ {
			if !t.Field(i).IsExported() {
				return false
			}
			if !identical(va.Field(i).Interface(), vb.Field(i).Interface()) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
