package config

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/sm-menu/cli/internal/clierr"
	"github.com/sm-menu/cli/internal/domain"
)

// Load reads the TOML preferences file at path into a flat key/value map.
// Keys may sit at the top level or inside any table:
//
//	colored_prompt = false
//
//	[logging]
//	enable_log = true
//
// A missing file is not an error. Unknown keys are skipped.
func Load(path string) (map[string]string, error) {
	values, _, err := load(path)
	return values, err
}

// load is Load that also reports the unknown keys it skipped, sorted.
func load(path string) (map[string]string, []string, error) {
	values := make(map[string]string)
	if path == "" {
		return values, nil, nil
	}

	var raw map[string]any
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return values, nil, nil
		}
		var parseErr toml.ParseError
		if errors.As(err, &parseErr) {
			return nil, nil, clierr.InvalidFileFormat(fmt.Sprintf("%s: %v", path, parseErr))
		}
		return nil, nil, clierr.FromIO(err)
	}

	var unknown []string
	if err := flatten(raw, values, &unknown); err != nil {
		return nil, nil, clierr.InvalidFileFormat(fmt.Sprintf("%s: %v", path, err))
	}
	sort.Strings(unknown)
	return values, unknown, nil
}

func flatten(raw map[string]any, into map[string]string, unknown *[]string) error {
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		switch v := raw[key].(type) {
		case map[string]any:
			if err := flatten(v, into, unknown); err != nil {
				return err
			}
		default:
			if !domain.IsValidConfigKey(key) {
				*unknown = append(*unknown, key)
				continue
			}
			s, err := stringify(v)
			if err != nil {
				return fmt.Errorf("key %q: %w", key, err)
			}
			into[key] = s
		}
	}
	return nil
}

func stringify(v any) (string, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case bool:
		return strconv.FormatBool(t), nil
	case int64:
		return strconv.FormatInt(t, 10), nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	default:
		return "", fmt.Errorf("unsupported value type %T", v)
	}
}
