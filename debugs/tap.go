package debugs

import (
	"context"

	"github.com/reusee/affine/logs"
	"github.com/reusee/affine/terms"
	"github.com/reusee/starlarkutil"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Tap opens a Starlark REPL on stdin over a snapshot of store.
type Tap func(ctx context.Context, what string, store *terms.Store)

// Globals exposes a snapshot of store: nodes and slots as lists of dicts,
// plus format(id) and dump().
func Globals(store *terms.Store) starlark.StringDict {
	snapshot := store.Snapshot()
	nodes := make([]any, 0, len(snapshot))
	for _, node := range snapshot {
		nodes = append(nodes, node)
	}

	slots := make([]any, 0, store.NumSlots())
	for i := range store.NumSlots() {
		id := terms.SlotID(i)
		slot := map[string]any{
			"id":    id,
			"state": store.Slot(id),
		}
		if value, ok := store.SlotValue(id); ok {
			slot["value"] = value.String()
		}
		slots = append(slots, slot)
	}

	dump := store.Dump()
	formatted := make(map[terms.NodeID]string, len(snapshot))
	for _, node := range snapshot {
		formatted[node.ID] = store.Format(node.ID)
	}

	return starlark.StringDict{
		"nodes": toStarlarkValue(nodes),
		"slots": toStarlarkValue(slots),
		"format": starlarkutil.MakeFunc("format", func(id int) string {
			if s, ok := formatted[terms.NodeID(id)]; ok && id >= 0 {
				return s
			}
			return "<unknown>"
		}),
		"dump": starlarkutil.MakeFunc("dump", func() string {
			return dump
		}),
	}
}

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, store *terms.Store) {
		logger.InfoContext(ctx, "tap: "+what,
			"nodes", store.Len(),
			"slots", store.NumSlots(),
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		thread := &starlark.Thread{
			Name: "tap",
		}
		repl.REPLOptions(&syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
		}, thread, Globals(store))
	}
}
