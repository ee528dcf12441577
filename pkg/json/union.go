package json

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
)

var nullJson = []byte("null")

// Unmarshals from json a union data type that can contain either a number or a string.
// A json null leaves both pointers nil.
func UnmarshalUnion(data []byte, pf **float64, ps **string) error {
	*pf = nil
	*ps = nil

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return err
	}

	switch v := tok.(type) {
	case nil:
		return nil
	case json.Number:
		f, err := v.Float64()
		if err == nil {
			*pf = &f
			return nil
		}
		return err
	case string:
		*ps = &v
		return nil
	}
	return errors.New("cannot unmarshal union: expected number or string")
}

// Marshals to json a union data type that can contain either a number or a string.
// NaN, infinities and an empty union are written as null.
func MarshalUnion(pf *float64, ps *string) ([]byte, error) {
	if pf != nil {
		if math.IsNaN(*pf) || math.IsInf(*pf, 0) {
			return nullJson, nil
		}
		return json.Marshal(*pf)
	}
	if ps != nil {
		return json.Marshal(*ps)
	}
	return nullJson, nil
}

// MarshalFloat writes f as a json number, or null when f is not finite
func MarshalFloat(f float64) ([]byte, error) {
	return MarshalUnion(&f, nil)
}
