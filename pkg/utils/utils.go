package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"reflect"

	"github.com/gowebpki/jcs"
	"github.com/modern-go/reflect2"
)

func Optional[T any](args ...T) T {
	var _nil T
	for _, e := range args {
		if !reflect.DeepEqual(e, _nil) {
			return e
		}
	}
	return _nil
}

func OptionalDefaulted[T any](def T, args ...T) T {
	var _nil T
	for _, e := range args {
		if !reflect.DeepEqual(e, _nil) {
			return e
		}
	}
	return def
}

// HashData provides a stable hash for the given data.
// Structured values are hashed on their canonical (RFC 8785)
// JSON representation, so the hash does not depend on
// map iteration order.
func HashData(d interface{}) (string, error) {
	if reflect2.IsNil(d) {
		return "", nil
	}
	var err error
	var data []byte
	switch b := d.(type) {
	case []byte:
		data = b
	case string:
		data = []byte(b)
	default:
		data, err = json.Marshal(d)
		if err != nil {
			return "", err
		}
		data, err = jcs.Transform(data)
		if err != nil {
			return "", err
		}
	}
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:]), nil
}
