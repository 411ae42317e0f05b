package jsonutil

import (
	jsoniter "github.com/json-iterator/go"

	"github.com/DridgerVE/openbidder/errortypes"
)

var jsonConf jsoniter.API = jsoniter.ConfigCompatibleWithStandardLibrary

// Unmarshal unmarshals a byte slice into the specified data structure. Errors are
// returned as errortypes.FailedToUnmarshal so callers can classify them uniformly.
func Unmarshal(data []byte, v interface{}) error {
	if err := jsonConf.Unmarshal(data, v); err != nil {
		return &errortypes.FailedToUnmarshal{
			Message: err.Error(),
		}
	}
	return nil
}

// Marshal marshals a data structure into a byte slice. Errors are returned as
// errortypes.FailedToMarshal so callers can classify them uniformly.
func Marshal(v interface{}) ([]byte, error) {
	data, err := jsonConf.Marshal(v)
	if err != nil {
		return nil, &errortypes.FailedToMarshal{
			Message: err.Error(),
		}
	}
	return data, nil
}
