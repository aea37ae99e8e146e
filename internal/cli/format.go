package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/zoobzio/pluck"
	"github.com/zoobzio/pluck/bson"
	pluckjson "github.com/zoobzio/pluck/json"
	"github.com/zoobzio/pluck/msgpack"
	"github.com/zoobzio/pluck/toml"
	pluckyaml "github.com/zoobzio/pluck/yaml"
)

// ErrUnknownFormat indicates a document format with no codec.
var ErrUnknownFormat = errors.New("unknown format")

var codecs = map[string]func() pluck.Codec{
	"json":    pluckjson.New,
	"yaml":    pluckyaml.New,
	"yml":     pluckyaml.New,
	"toml":    toml.New,
	"msgpack": msgpack.New,
	"mpk":     msgpack.New,
	"bson":    bson.New,
}

// codecFor picks the codec named by format, or by the extension of path
// when format is empty or "auto".
func codecFor(format, path string) (pluck.Codec, error) {
	if format == "" || format == defaultFormat {
		format = strings.TrimPrefix(filepath.Ext(path), ".")
	}
	newCodec, ok := codecs[strings.ToLower(format)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return newCodec(), nil
}

// parseValue reads a command-line value as YAML so numbers, booleans,
// lists and maps keep their type. Text that is not valid YAML is kept as
// a string.
func parseValue(s string) any {
	var v any
	if err := yaml.Unmarshal([]byte(s), &v); err != nil {
		return s
	}
	return v
}

// render formats a value for output: strings as is, collections as JSON.
func render(v any) (string, error) {
	switch x := v.(type) {
	case nil:
		return "null", nil
	case string:
		return x, nil
	}

	switch reflect.TypeOf(v).Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct, reflect.Pointer:
		data, err := json.Marshal(v)
		if err != nil {
			return "", err
		}
		return string(data), nil
	default:
		return fmt.Sprint(v), nil
	}
}
