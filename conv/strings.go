package conv

import (
	"strconv"

	"github.com/signadot/reshape"
)

// NumberString accepts a string holding a number, such as "102.5",
// and yields the number.
func NumberString() reshape.Converter[float64, any] {
	return reshape.Pipe(String(), reshape.Apply("number in a string", func(s string) (float64, error) {
		return strconv.ParseFloat(s, 64)
	}))
}

// IntString accepts a string holding a decimal integer, such as
// "102", and yields the integer.
func IntString() reshape.Converter[int64, any] {
	return reshape.Pipe(String(), reshape.Apply("int in a string", func(s string) (int64, error) {
		return strconv.ParseInt(s, 10, 64)
	}))
}

// BoolString accepts the strings strconv understands as booleans,
// such as "true" and "0", and yields the boolean.
func BoolString() reshape.Converter[bool, any] {
	return reshape.Pipe(String(), reshape.Apply("bool in a string", func(s string) (bool, error) {
		return strconv.ParseBool(s)
	}))
}
