package domain

import (
	"maps"
	"reflect"
)

// InputID names an event understood by the state machine.
type InputID string

const (
	InputLoaded          InputID = "loaded"
	InputSelectDate      InputID = "selectDate"
	InputDateSelected    InputID = "dateSelected"
	InputError           InputID = "error"
	InputUpdateRemaining InputID = "updateRemaining"
	InputFinishCountdown InputID = "finishCountdown"
	InputArrived         InputID = "arrived"
)

// Input is an immutable event record consumed by the dispatch engine.
// Parameters is opaque to the engine; its shape depends on ID.
type Input struct {
	ID         InputID        `json:"id"`
	Parameters map[string]any `json:"parameters"`
}

// NewInput builds an Input, substituting an empty mapping for nil parameters.
func NewInput(id InputID, params map[string]any) Input {
	if params == nil {
		params = map[string]any{}
	}
	return Input{ID: id, Parameters: params}
}

// Param returns a single parameter value.
func (i Input) Param(key string) (any, bool) {
	v, ok := i.Parameters[key]
	return v, ok
}

// IsInput reports whether x has the shape of an Input: a string id and a
// mapping of parameters (possibly empty). Any non-nil map with string keys
// counts as a mapping. No other validation is performed.
func IsInput(x any) bool {
	_, ok := shape(x)
	return ok
}

// ParseInput converts a raw value received at the system boundary into an
// Input. It fails with an *InvalidInputError when IsInput(x) is false.
func ParseInput(x any) (Input, error) {
	in, ok := shape(x)
	if !ok {
		return Input{}, &InvalidInputError{Value: x}
	}
	return in, nil
}

func shape(x any) (Input, bool) {
	switch v := x.(type) {
	case Input:
		return NewInput(v.ID, v.Parameters), true
	case *Input:
		if v == nil {
			return Input{}, false
		}
		return NewInput(v.ID, v.Parameters), true
	}

	m, ok := stringMap(x)
	if !ok {
		return Input{}, false
	}
	id, ok := m["id"].(string)
	if !ok {
		return Input{}, false
	}
	params, ok := stringMap(m["parameters"])
	if !ok {
		return Input{}, false
	}
	return Input{ID: InputID(id), Parameters: params}, true
}

// stringMap copies any non-nil map keyed by strings into a map[string]any.
func stringMap(x any) (map[string]any, bool) {
	if m, ok := x.(map[string]any); ok {
		if m == nil {
			return nil, false
		}
		return maps.Clone(m), true
	}

	v := reflect.ValueOf(x)
	if v.Kind() != reflect.Map || v.Type().Key().Kind() != reflect.String || v.IsNil() {
		return nil, false
	}
	out := make(map[string]any, v.Len())
	iter := v.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out, true
}
