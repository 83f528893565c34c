package starlark

import (
	"fmt"

	starlarkLib "go.starlark.net/starlark"
)

// convertStarlarkValueToInterface converts a Starlark value to a Go any value
func convertStarlarkValueToInterface(v starlarkLib.Value) (any, error) {
	if v == nil {
		return nil, nil
	}

	switch v := v.(type) {
	case starlarkLib.NoneType:
		return nil, nil
	case starlarkLib.Bool:
		return bool(v), nil
	case starlarkLib.Int:
		i, ok := v.Int64()
		if !ok {
			return nil, fmt.Errorf("int %s overflows int64", v.String())
		}
		return i, nil
	case starlarkLib.Float:
		return float64(v), nil
	case starlarkLib.String:
		return string(v), nil
	case *starlarkLib.List:
		return convertIterable(v, v.Len())
	case starlarkLib.Tuple:
		return convertIterable(v, v.Len())
	case *starlarkLib.Set:
		return convertIterable(v, v.Len())
	case *starlarkLib.Dict:
		dict := make(map[string]any, v.Len())
		for _, item := range v.Items() {
			// string keys keep the result JSON compatible
			key, ok := item[0].(starlarkLib.String)
			if !ok {
				key = starlarkLib.String(item[0].String())
			}

			val, err := convertStarlarkValueToInterface(item[1])
			if err != nil {
				return nil, fmt.Errorf("failed to convert dict value: %w", err)
			}
			dict[string(key)] = val
		}
		return dict, nil
	default:
		return nil, fmt.Errorf("unsupported Starlark type %T", v)
	}
}

func convertIterable(v starlarkLib.Iterable, size int) ([]any, error) {
	list := make([]any, 0, size)
	iter := v.Iterate()
	defer iter.Done()

	var elem starlarkLib.Value
	for iter.Next(&elem) {
		converted, err := convertStarlarkValueToInterface(elem)
		if err != nil {
			return nil, fmt.Errorf("failed to convert %s element: %w", v.Type(), err)
		}
		list = append(list, converted)
	}
	return list, nil
}
