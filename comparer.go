package minilisp

import "reflect"

// Equals reports whether two values are structurally equal. Lists compare
// element by element, everything else with ==.
func Equals(v1, v2 Expr) bool {
	list1, isList1 := v1.(List)
	list2, isList2 := v2.(List)
	if isList1 && isList2 {
		return sliceEquals(list1, list2)
	}
	if isList1 || isList2 {
		return false
	}

	if !isComparable(v1) || !isComparable(v2) {
		return false
	}
	return v1 == v2
}

func sliceEquals(slice1, slice2 []Expr) bool {
	if len(slice1) != len(slice2) {
		return false
	}
	for i := 0; i < len(slice1); i++ {
		if !Equals(slice1[i], slice2[i]) {
			return false
		}
	}
	return true
}

// isComparable guards == against host values that would panic, such as
// slices or maps handed in by a builtin.
func isComparable(v Expr) bool {
	return v == nil || reflect.TypeOf(v).Comparable()
}
