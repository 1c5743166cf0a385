package config

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// KeySlice is a list of tree keys that also accepts a single key or a
// comma separated string, e.g. `keys: 10`, `keys: "10,20"` or `keys: [10, 20]`.
type KeySlice []int64

func (s *KeySlice) decode(a interface{}) error {
	switch d := a.(type) {
	case int:
		*s = append(*s, int64(d))

	case int64:
		*s = append(*s, d)

	case float64:
		if d != float64(int64(d)) {
			return errors.Errorf("key %v is not an integer", d)
		}
		*s = append(*s, int64(d))

	case string:
		keys, err := ParseKeys(d)
		if err != nil {
			return err
		}
		*s = append(*s, keys...)

	case []interface{}:
		for _, de := range d {
			if err := s.decode(de); err != nil {
				return err
			}
		}

	default:
		return errors.Errorf("unexpected type %T for KeySlice: %+v", d, d)
	}

	return nil
}

func (s *KeySlice) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var a interface{}
	if err := unmarshal(&a); err != nil {
		return err
	}

	*s = nil
	return s.decode(a)
}

func (s *KeySlice) UnmarshalJSON(b []byte) error {
	var a interface{}
	var err = json.Unmarshal(b, &a)
	if err != nil {
		return err
	}

	*s = nil
	return s.decode(a)
}

// ParseKeys parses a comma or space separated list of integer keys.
func ParseKeys(s string) ([]int64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})

	keys := make([]int64, 0, len(fields))
	for _, f := range fields {
		k, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid key %q", f)
		}
		keys = append(keys, k)
	}
	return keys, nil
}
