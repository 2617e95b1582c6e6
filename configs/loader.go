package configs

import (
	"errors"
	"fmt"
	"iter"
	"os"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

var ErrValueNotFound = errors.New("value not found")

// Loader reads cue files lazily. Earlier files take precedence when a path is
// defined by more than one file.
type Loader struct {
	getRoots func() ([]root, error)
}

type root struct {
	value cue.Value
	path  string
}

func NewLoader(filePaths []string, schemaSrc string) Loader {
	return Loader{
		getRoots: sync.OnceValues(func() (ret []root, err error) {
			ctx := cuecontext.New()

			var schema cue.Value
			if schemaSrc != "" {
				schema = ctx.CompileString("close({" + schemaSrc + "})")
				if err := schema.Err(); err != nil {
					return nil, fmt.Errorf("compile schema: %w", err)
				}
			}

			for _, filePath := range filePaths {
				content, err := os.ReadFile(filePath)
				if err != nil {
					return nil, err
				}
				value := ctx.CompileBytes(content, cue.Filename(filePath))
				if err := value.Err(); err != nil {
					return nil, err
				}
				if schema.Exists() {
					value = schema.Unify(value)
					if err := value.Validate(cue.Concrete(true)); err != nil {
						return nil, fmt.Errorf("%s: %w", filePath, err)
					}
				}
				ret = append(ret, root{
					value: value,
					path:  filePath,
				})
			}

			return
		}),
	}
}

// Err reports a failure to read or validate the files.
func (l Loader) Err() error {
	_, err := l.getRoots()
	return err
}

func (l Loader) Paths() []string {
	roots, _ := l.getRoots()
	var ret []string
	for _, r := range roots {
		ret = append(ret, r.path)
	}
	return ret
}

func (l Loader) IterCueValues(path string) iter.Seq2[*cue.Value, error] {
	return func(yield func(*cue.Value, error) bool) {
		roots, err := l.getRoots()
		if err != nil {
			yield(nil, err)
			return
		}
		cuePath := cue.ParsePath(path)
		for _, r := range roots {
			value := r.value.LookupPath(cuePath)
			if !value.Exists() {
				continue
			}
			if err := value.Err(); err != nil {
				continue
			}
			if !yield(&value, nil) {
				return
			}
		}
	}
}

func (l Loader) AssignFirst(path string, target any) error {
	for value, err := range l.IterCueValues(path) {
		if err != nil {
			return err
		}
		return value.Decode(target)
	}
	return ErrValueNotFound
}
