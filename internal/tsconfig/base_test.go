package tsconfig

import (
	"testing"

	"github.com/jakoblorz/go-tsscaffold/internal/toolchain"
	"github.com/stretchr/testify/require"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

func compilerOptions(t *testing.T, doc *Object) *Object {
	t.Helper()
	v, ok := doc.Get("compilerOptions")
	require.True(t, ok)
	options, ok := v.(*Object)
	require.True(t, ok)
	return options
}

func keys(obj *Object) []string {
	out := make([]string, 0, obj.Len())
	for pair := obj.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key)
	}
	return out
}

func TestParseSeed_ToleratesCommentsAndTrailingCommas(t *testing.T) {
	seed, err := ParseSeed([]byte(toolchain.DefaultCompilerConfigTemplate))
	require.NoError(t, err)

	options := compilerOptions(t, seed)
	target, _ := options.Get("target")
	skipLibCheck, _ := options.Get("skipLibCheck")
	require.Equal(t, "es2016", target)
	require.Equal(t, true, skipLibCheck)
}

func TestParseSeed_KeepsKeyOrder(t *testing.T) {
	seed, err := ParseSeed([]byte(`{
  // leading comment
  "compilerOptions": {"target": "es2016", "module": "commonjs", "skipLibCheck": true,},
  "exclude": ["node_modules", "build"],
  "include": [],
}`))
	require.NoError(t, err)

	require.Equal(t, []string{"compilerOptions", "exclude", "include"}, keys(seed))
	require.Equal(t, []string{"target", "module", "skipLibCheck"}, keys(compilerOptions(t, seed)))

	exclude, _ := seed.Get("exclude")
	require.Equal(t, []any{"node_modules", "build"}, exclude)
	include, _ := seed.Get("include")
	require.Equal(t, []any{}, include)
}

func TestParseSeed_RejectsNonObject(t *testing.T) {
	_, err := ParseSeed([]byte(`["not", "an", "object"]`))
	require.Error(t, err)

	_, err = ParseSeed([]byte(`{"compilerOptions": `))
	require.Error(t, err)
}

func TestNormalizeBase(t *testing.T) {
	seed, err := ParseSeed([]byte(toolchain.DefaultCompilerConfigTemplate))
	require.NoError(t, err)

	options := compilerOptions(t, NormalizeBase(seed))

	for _, key := range []string{
		"strict", "strictNullChecks", "strictBindCallApply", "strictPropertyInitialization",
		"esModuleInterop", "allowSyntheticDefaultImports", "experimentalDecorators", "emitDecoratorMetadata",
		"incremental", "composite", "declaration", "declarationMap", "sourceMap",
	} {
		v, _ := options.Get(key)
		require.Equal(t, true, v, key)
	}
	moduleResolution, _ := options.Get("moduleResolution")
	newLine, _ := options.Get("newLine")
	target, _ := options.Get("target")
	lib, _ := options.Get("lib")
	require.Equal(t, "node", moduleResolution)
	require.Equal(t, "lf", newLine)
	require.Equal(t, "ESNEXT", target)
	require.Len(t, lib, 9)

	// seed options that are not forced survive
	skipLibCheck, _ := options.Get("skipLibCheck")
	require.Equal(t, true, skipLibCheck)
}

func TestNormalizeBase_SeedKeysKeepPosition(t *testing.T) {
	seed, err := ParseSeed([]byte(toolchain.DefaultCompilerConfigTemplate))
	require.NoError(t, err)

	options := compilerOptions(t, NormalizeBase(seed))
	require.Equal(t, []string{
		"target", "module", "esModuleInterop", "forceConsistentCasingInFileNames", "strict", "skipLibCheck",
		"lib", "composite", "incremental", "declaration", "declarationMap", "sourceMap",
		"downlevelIteration", "removeComments", "strictNullChecks", "strictBindCallApply",
		"strictPropertyInitialization", "moduleResolution", "allowSyntheticDefaultImports",
		"experimentalDecorators", "emitDecoratorMetadata", "newLine",
	}, keys(options))
}

func TestNormalizeBase_MissingCompilerOptions(t *testing.T) {
	options := compilerOptions(t, NormalizeBase(orderedmap.New[string, any]()))
	module, _ := options.Get("module")
	require.Equal(t, "commonjs", module)
}

func TestNormalizeBase_DoesNotShareLib(t *testing.T) {
	a := compilerOptions(t, NormalizeBase(orderedmap.New[string, any]()))
	lib, _ := a.Get("lib")
	lib.([]any)[0] = "changed"

	b := compilerOptions(t, NormalizeBase(orderedmap.New[string, any]()))
	lib, _ = b.Get("lib")
	require.Equal(t, "ES5", lib.([]any)[0])
}
