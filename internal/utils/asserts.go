package utils

import "log"

// MustBeTrue logs msg and panics when condition does not hold.
func MustBeTrue(condition bool, msg string) {
	if !condition {
		log.Panic(msg)
	}
}
