package vectormap

import (
	"reflect"
)

// Keyable is the constraint on key types: keys are compared with ==.
//
// Integral and boolean key kinds are additionally rejected at construction
// time (ErrIntegralKey), since a Go constraint cannot exclude them.
type Keyable interface {
	comparable
}

func checkKeyType[K Keyable]() error {
	switch reflect.TypeFor[K]().Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return ErrIntegralKey
	}
	return nil
}
