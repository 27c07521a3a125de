package validator

import (
	"encoding/json"
	"errors"
)

type settingState uint8

const (
	stateUnset settingState = iota
	stateSet
	stateCleared
)

// Setting is one key of a partial override. It is either unset (inherit the
// default), set to a value, or explicitly cleared. A cleared setting still
// replaces the default: the key becomes absent in the merged configuration.
type Setting[T any] struct {
	state settingState
	value T
}

// Set returns a Setting overriding the default with v.
func Set[T any](v T) Setting[T] {
	return Setting[T]{state: stateSet, value: v}
}

// Clear returns a Setting that removes the default for its key.
func Clear[T any]() Setting[T] {
	return Setting[T]{state: stateCleared}
}

// Present reports whether the setting takes part in the merge at all.
func (s Setting[T]) Present() bool { return s.state != stateUnset }

// Cleared reports whether the setting explicitly removes the default.
func (s Setting[T]) Cleared() bool { return s.state == stateCleared }

// Get returns the value and whether one is set.
func (s Setting[T]) Get() (T, bool) {
	return s.value, s.state == stateSet
}

// UnmarshalJSON maps a JSON null to a cleared setting. Keys missing from the
// document never reach this method and stay unset.
func (s *Setting[T]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = Clear[T]()
		return nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return errors.Join(ErrInvalidSetting, err)
	}
	*s = Set(v)
	return nil
}

// MarshalJSON writes cleared and unset settings as null.
func (s Setting[T]) MarshalJSON() ([]byte, error) {
	if s.state != stateSet {
		return []byte("null"), nil
	}
	return json.Marshal(s.value)
}

func overlayPtr[T any](dst **T, s Setting[T]) {
	switch s.state {
	case stateSet:
		v := s.value
		*dst = &v
	case stateCleared:
		*dst = nil
	}
}

// overlayBool applies s to a policy flag. A cleared flag reads as false,
// which makes the policy reject.
func overlayBool(dst *bool, s Setting[bool]) {
	switch s.state {
	case stateSet:
		*dst = s.value
	case stateCleared:
		*dst = false
	}
}

func ptr[T any](v T) *T { return &v }
