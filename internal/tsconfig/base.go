package tsconfig

import (
	"encoding/json"
	"fmt"

	"github.com/ohler55/ojg/sen"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Object is a config object that keeps its key order.
type Object = orderedmap.OrderedMap[string, any]

type option struct {
	key   string
	value any
}

// baseCompilerOptions are forced onto the seed config. Seed keys keep their
// position; options the seed lacks are appended in this order. Options not
// listed here keep the seed's value.
var baseCompilerOptions = []option{
	{"target", "ESNEXT"},
	{"module", "commonjs"},
	{"lib", []any{"ES5", "ES2015", "ES2016", "ES2017", "ES2018", "ES2019", "ES2020", "ES2021", "ESNEXT"}},
	{"composite", true},
	{"incremental", true},
	{"declaration", true},
	{"declarationMap", true},
	{"sourceMap", true},
	{"downlevelIteration", true},
	{"removeComments", true},
	{"forceConsistentCasingInFileNames", true},
	{"strict", true},
	{"strictNullChecks", true},
	{"strictBindCallApply", true},
	{"strictPropertyInitialization", true},
	{"moduleResolution", "node"},
	{"esModuleInterop", true},
	{"allowSyntheticDefaultImports", true},
	{"experimentalDecorators", true},
	{"emitDecoratorMetadata", true},
	{"newLine", "lf"},
}

// ParseSeed parses a compiler config as written by `tsc --init`.
// Comments and trailing commas are tolerated and key order is kept.
func ParseSeed(data []byte) (*Object, error) {
	var b seedBuilder
	if err := sen.Tokenize(data, &b); err != nil {
		return nil, fmt.Errorf("failed to parse compiler config: %w", err)
	}

	doc, ok := b.root.(*Object)
	if !ok {
		return nil, fmt.Errorf("compiler config is not an object: %T", b.root)
	}
	return doc, nil
}

// NormalizeBase applies the strict/modern option set to a seed config and
// returns it. The seed is modified in place.
func NormalizeBase(seed *Object) *Object {
	var options *Object
	if v, ok := seed.Get("compilerOptions"); ok {
		options, _ = v.(*Object)
	}
	if options == nil {
		options = orderedmap.New[string, any]()
		seed.Set("compilerOptions", options)
	}

	for _, opt := range baseCompilerOptions {
		value := opt.value
		if list, ok := value.([]any); ok {
			value = append([]any(nil), list...)
		}
		options.Set(opt.key, value)
	}

	return seed
}

// seedBuilder assembles sen tokens into ordered objects and slices.
type seedBuilder struct {
	frames []*frame
	root   any
}

type frame struct {
	obj *Object
	arr []any
	key string
}

func (b *seedBuilder) add(v any) {
	if len(b.frames) == 0 {
		b.root = v
		return
	}
	top := b.frames[len(b.frames)-1]
	if top.obj != nil {
		top.obj.Set(top.key, v)
		return
	}
	top.arr = append(top.arr, v)
}

func (b *seedBuilder) pop() {
	top := b.frames[len(b.frames)-1]
	b.frames = b.frames[:len(b.frames)-1]
	if top.obj != nil {
		b.add(top.obj)
		return
	}
	b.add(top.arr)
}

func (b *seedBuilder) Null()           { b.add(nil) }
func (b *seedBuilder) Bool(v bool)     { b.add(v) }
func (b *seedBuilder) Int(v int64)     { b.add(v) }
func (b *seedBuilder) Float(v float64) { b.add(v) }
func (b *seedBuilder) Number(v string) { b.add(json.Number(v)) }
func (b *seedBuilder) String(v string) { b.add(v) }
func (b *seedBuilder) Key(k string)    { b.frames[len(b.frames)-1].key = k }
func (b *seedBuilder) ObjectStart()    { b.frames = append(b.frames, &frame{obj: orderedmap.New[string, any]()}) }
func (b *seedBuilder) ObjectEnd()      { b.pop() }
func (b *seedBuilder) ArrayStart()     { b.frames = append(b.frames, &frame{arr: []any{}}) }
func (b *seedBuilder) ArrayEnd()       { b.pop() }
