package utils

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func MarshalJson(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.WithMessagef(err, "marshal json %T", v)
	}
	return data, nil
}

// UnmarshalJson converts a loosely decoded payload, such as Message.Payload after a
// generic decode, into T.
func UnmarshalJson[T any](v any) (T, error) {
	data, err := MarshalJson(v)
	if err != nil {
		return *new(T), err
	}
	var result T
	if err := json.Unmarshal(data, &result); err != nil {
		return *new(T), errors.WithMessagef(err, "unmarshal json to %T", result)
	}
	return result, nil
}
