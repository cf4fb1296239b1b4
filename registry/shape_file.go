package registry

import (
	"fmt"
	"io"
	"os"
	"reflect"

	"gopkg.in/yaml.v3"

	"github.com/suparena/recordstore/errors"
)

// shapeFile is the on-disk layout of a shape declaration document:
//
//	shapes:
//	  Dataset:
//	    pk:       {kind: S, required: true}
//	    sk:       {kind: S, required: true}
//	    itemtype: {kind: S, required: true}
//	    created:  {kind: N}
type shapeFile struct {
	Shapes map[string]Shape `yaml:"shapes"`
}

// namedShapes holds shapes loaded from declaration files, keyed by shape name.
var namedShapes = make(map[string]Shape)

// LoadShapes reads a YAML shape declaration document and registers every
// shape it contains by name. Loading a name that is already registered is
// an error, to prevent accidental overrides.
func LoadShapes(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("shape registry: read declarations: %w", err)
	}

	var file shapeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("shape registry: parse declarations: %w", err)
	}

	for name, shape := range file.Shapes {
		if err := RegisterNamedShape(name, shape); err != nil {
			return err
		}
	}
	return nil
}

// RegisterNamedShape registers a shape by name. Registering a name twice is
// an error, to prevent accidental overrides. Generated registration code
// (see the processor package) calls this from init functions.
func RegisterNamedShape(name string, shape Shape) error {
	mu.Lock()
	defer mu.Unlock()
	if _, exists := namedShapes[name]; exists {
		return fmt.Errorf("shape registry: shape %q already loaded", name)
	}
	namedShapes[name] = shape
	return nil
}

// MustRegisterNamedShape is like RegisterNamedShape but panics on error.
func MustRegisterNamedShape(name string, shape Shape) {
	if err := RegisterNamedShape(name, shape); err != nil {
		panic(err)
	}
}

// LoadShapesFromFile loads shape declarations from a YAML file on disk.
func LoadShapesFromFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("shape registry: open %s: %w", path, err)
	}
	defer f.Close()
	return LoadShapes(f)
}

// NamedShape returns a shape previously loaded from a declaration file.
func NamedShape(name string) (Shape, bool) {
	mu.RLock()
	defer mu.RUnlock()
	shape, ok := namedShapes[name]
	return shape, ok
}

// BindShape associates the Go type T with a named shape from a loaded
// declaration file. It returns an error wrapping errors.ErrNoShape when no
// shape with that name has been loaded.
func BindShape[T any](name string) error {
	t := reflect.TypeOf((*T)(nil)).Elem()

	mu.Lock()
	defer mu.Unlock()
	shape, ok := namedShapes[name]
	if !ok {
		return fmt.Errorf("bind shape %q for %s: %w", name, t, errors.ErrNoShape)
	}
	shapeRegistry[t] = shape
	return nil
}
