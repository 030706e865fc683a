//go:build assertions_disabled

package assert

// True asserts that the given value is true.
// Disabled in this build; does nothing.
func True(value bool, args ...any) {
	// Intentionally left blank
}

// False asserts that the given value is false.
// Disabled in this build; does nothing.
func False(value bool, args ...any) {
	// Intentionally left blank
}

// Nil asserts that the given value is nil.
// Disabled in this build; does nothing.
func Nil(value any, args ...any) {
	// Intentionally left blank
}

// NotNil asserts that the given value is not nil.
// Disabled in this build; does nothing.
func NotNil(value any, args ...any) {
	// Intentionally left blank
}
