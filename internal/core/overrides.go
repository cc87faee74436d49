package core

import "strconv"

// OverrideInt parses cfg[key] into dst. A missing key, a value that fails to
// parse or one rejected by accept leaves dst untouched.
func OverrideInt(cfg map[string]string, key string, dst *int, accept func(int) bool) {
	v, ok := cfg[key]
	if !ok {
		return
	}
	parsed, err := strconv.Atoi(v)
	if err != nil || (accept != nil && !accept(parsed)) {
		return
	}
	*dst = parsed
}

// OverrideFloat32 is OverrideInt for float32 values.
func OverrideFloat32(cfg map[string]string, key string, dst *float32, accept func(float32) bool) {
	v, ok := cfg[key]
	if !ok {
		return
	}
	parsed, err := strconv.ParseFloat(v, 32)
	if err != nil || (accept != nil && !accept(float32(parsed))) {
		return
	}
	*dst = float32(parsed)
}

// OverrideBool parses cfg[key] with strconv.ParseBool.
func OverrideBool(cfg map[string]string, key string, dst *bool) {
	if v, ok := cfg[key]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			*dst = parsed
		}
	}
}

// Positive accepts values above zero.
func Positive[T int | float32](v T) bool { return v > 0 }

// NonNegative accepts zero and above.
func NonNegative[T int | float32](v T) bool { return v >= 0 }
