// Package querystring decodes nested bracket query strings such as
// `filter[data][name]=x&sorting[by][]=name&pagination[p]=2` into typed structs.
package querystring

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// Parse turns url.Values into a tree of map[string]interface{}, []interface{}
// and string leaves. Keys ending in `[]` or a numeric segment become lists.
// Blank values are treated as absent.
func Parse(values url.Values) (map[string]interface{}, error) {
	root := make(map[string]interface{})

	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		path, err := splitKey(key)
		if err != nil {
			return nil, err
		}
		for _, value := range values[key] {
			if strings.TrimSpace(value) == "" {
				continue
			}
			if err := insert(root, path, value, key); err != nil {
				return nil, err
			}
		}
	}

	return root, nil
}

func splitKey(key string) ([]string, error) {
	open := strings.IndexByte(key, '[')
	if open < 0 {
		return []string{key}, nil
	}
	if open == 0 {
		return nil, fmt.Errorf("query key %q has no name", key)
	}

	path := []string{key[:open]}
	rest := key[open:]
	for rest != "" {
		if rest[0] != '[' {
			return nil, fmt.Errorf("query key %q is malformed", key)
		}
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return nil, fmt.Errorf("query key %q has an unclosed bracket", key)
		}
		path = append(path, rest[1:end])
		rest = rest[end+1:]
	}
	return path, nil
}

func isListSegment(segment string) bool {
	if segment == "" {
		return true
	}
	for _, r := range segment {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func insert(node map[string]interface{}, path []string, value, key string) error {
	head := path[0]

	if len(path) == 1 {
		if _, exists := node[head]; exists {
			return fmt.Errorf("query key %q is repeated", key)
		}
		node[head] = value
		return nil
	}

	if len(path) == 2 && isListSegment(path[1]) {
		switch existing := node[head].(type) {
		case nil:
			node[head] = []interface{}{value}
		case []interface{}:
			node[head] = append(existing, value)
		default:
			return fmt.Errorf("query key %q mixes list and scalar values", key)
		}
		return nil
	}

	child, ok := node[head]
	if !ok {
		next := make(map[string]interface{})
		node[head] = next
		return insert(next, path[1:], value, key)
	}
	nested, ok := child.(map[string]interface{})
	if !ok {
		return fmt.Errorf("query key %q conflicts with an earlier value", key)
	}
	return insert(nested, path[1:], value, key)
}

// Decode parses values and decodes them into out (a pointer to a struct),
// matching `json` tags and converting strings to the target field types.
func Decode(values url.Values, out interface{}) error {
	tree, err := Parse(values)
	if err != nil {
		return err
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		ErrorUnused:      false,
		Result:           out,
		DecodeHook:       mapstructure.TextUnmarshallerHookFunc(),
	})
	if err != nil {
		return err
	}
	return decoder.Decode(tree)
}
