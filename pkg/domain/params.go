package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"time"

	"github.com/mitchellh/mapstructure"
)

// Parameter keys shared by producers and handlers.
const (
	ParamDate    = "date"
	ParamMessage = "message"
	ParamEvent   = "event"
)

// DateSelectedParams is the payload of a dateSelected input.
type DateSelectedParams struct {
	Date time.Time `json:"date" mapstructure:"date"`
}

// ErrorParams is the payload of an error input.
type ErrorParams struct {
	Message string `json:"message" mapstructure:"message"`
}

// DateSelected builds a dateSelected input for the given target.
func DateSelected(date time.Time) Input {
	return NewInput(InputDateSelected, map[string]any{ParamDate: date})
}

// ErrorInput builds an error input carrying a human-readable message.
func ErrorInput(message string) Input {
	return NewInput(InputError, map[string]any{ParamMessage: message})
}

// DecodeParams decodes input parameters into out (a pointer to a struct).
// Times may be given as time.Time, RFC3339 strings or epoch milliseconds.
func DecodeParams(params map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			epochMillisToTimeHook(),
			mapstructure.StringToTimeHookFunc(time.RFC3339),
		),
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return fmt.Errorf("failed to create params decoder: %w", err)
	}
	if err := dec.Decode(params); err != nil {
		return fmt.Errorf("failed to decode params: %w", err)
	}
	return nil
}

func epochMillisToTimeHook() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		if to != reflect.TypeOf(time.Time{}) {
			return data, nil
		}
		switch v := data.(type) {
		case int64:
			return time.UnixMilli(v), nil
		case int:
			return time.UnixMilli(int64(v)), nil
		case float64:
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return time.Time{}, nil
			}
			return time.UnixMilli(int64(v)), nil
		case json.Number:
			ms, err := v.Int64()
			if err != nil {
				return nil, fmt.Errorf("invalid epoch milliseconds %q: %w", v, err)
			}
			return time.UnixMilli(ms), nil
		}
		return data, nil
	}
}
