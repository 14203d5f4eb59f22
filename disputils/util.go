package disputils

import (
	cerrors "github.com/cockroachdb/errors"
)

type Number interface {
	~int | ~uint | ~int32 | ~uint32
}

func CheckPow2[T Number](number T, name string) error {
	if number&(number-1) != 0 {
		return cerrors.Wrapf(PowerOfTwoError, "%s is %d", name, number)
	}
	return nil
}

// FloorToMultiple rounds value down to the nearest multiple of factor. A zero
// factor leaves the value untouched.
func FloorToMultiple[T Number](value T, factor T) T {
	if factor == 0 {
		return value
	}
	return value - (value % factor)
}

// CeilToMultiple rounds value up to the nearest multiple of factor. A zero
// factor leaves the value untouched.
func CeilToMultiple[T Number](value T, factor T) T {
	if factor == 0 {
		return value
	}
	remainder := value % factor
	if remainder == 0 {
		return value
	}
	return value + factor - remainder
}

// CeilLog2 returns the smallest n with 1<<n >= value. Values of 0 and 1 both
// yield 0.
func CeilLog2(value uint32) uint8 {
	var n uint8
	for (uint32(1) << n) < value {
		n++
	}
	return n
}
