package utils

// NDNb version from source control
var NDNbVersion string = "unknown"

// If is the ternary operator (eager evaluation)
func If[T any](cond bool, t, f T) T {
	if cond {
		return t
	} else {
		return f
	}
}
