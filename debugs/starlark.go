package debugs

import (
	"fmt"
	"reflect"

	"github.com/reusee/affine/terms"
	"github.com/reusee/starlarkutil"
	"go.starlark.net/starlark"
)

func toStarlarkValue(v any) starlark.Value {
	switch v := v.(type) {

	case nil:
		return starlark.None

	case starlark.Value:
		return v

	case bool:
		return starlark.Bool(v)

	case string:
		return starlark.String(v)

	case int:
		return starlark.MakeInt(v)

	case terms.NodeID:
		if !v.IsValid() {
			return starlark.None
		}
		return starlark.MakeUint(uint(v))

	case terms.SlotID:
		if !v.IsValid() {
			return starlark.None
		}
		return starlark.MakeUint(uint(v))

	case terms.Kind:
		return starlark.String(v.String())

	case terms.SlotState:
		return starlark.String(v.String())

	case terms.Node:
		return nodeDict(v)

	case []any:
		elems := make([]starlark.Value, len(v))
		for i, e := range v {
			elems[i] = toStarlarkValue(e)
		}
		return starlark.NewList(elems)

	case map[string]any:
		d := starlark.NewDict(len(v))
		for k, val := range v {
			d.SetKey(starlark.String(k), toStarlarkValue(val))
		}
		return d

	}

	value := reflect.ValueOf(v)
	switch value.Kind() {

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return starlark.MakeInt64(value.Int())

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return starlark.MakeUint64(value.Uint())

	case reflect.Slice, reflect.Array:
		elems := make([]starlark.Value, value.Len())
		for i := range elems {
			elems[i] = toStarlarkValue(value.Index(i).Interface())
		}
		return starlark.NewList(elems)

	case reflect.Pointer, reflect.Interface:
		elem := value.Elem()
		if !elem.IsValid() {
			return starlark.None
		}
		return toStarlarkValue(elem.Interface())

	case reflect.Func:
		return starlarkutil.MakeFunc("", value.Interface())

	}

	panic(fmt.Errorf("unsupported type for starlark: %T", v))
}

func nodeDict(node terms.Node) *starlark.Dict {
	fields := map[string]any{
		"id":      node.ID,
		"kind":    node.Term.Kind,
		"defined": node.Defined,
	}
	switch node.Term.Kind {
	case terms.Constant:
		fields["name"] = node.Term.Name
	case terms.Abstraction:
		fields["slot"] = node.Term.Slot
		fields["body"] = node.Term.Body
	case terms.Application:
		fields["fn"] = node.Term.Fn
		fields["arg"] = node.Term.Arg
	case terms.Reference:
		fields["slot"] = node.Term.Slot
	}
	return toStarlarkValue(fields).(*starlark.Dict)
}
