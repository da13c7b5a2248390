package manifest

import (
	"testing"

	"github.com/jakoblorz/go-tsscaffold/internal/toolchain"
	"github.com/stretchr/testify/require"
)

func TestParse_PreservesKeyOrder(t *testing.T) {
	m, err := Parse([]byte(toolchain.DefaultManifestTemplate))
	require.NoError(t, err)

	require.Equal(t,
		[]string{"name", "version", "description", "main", "scripts", "keywords", "author", "license"},
		m.Keys())
	require.Equal(t, "seed", m.Name())
	require.Equal(t, "1.0.0", m.Version())
}

func TestSet_ExistingKeyKeepsPosition(t *testing.T) {
	m, err := Parse([]byte(`{"a": 1, "b": 2}`))
	require.NoError(t, err)

	m.Set("a", "x")
	m.Set("c", 3)

	require.Equal(t, []string{"a", "b", "c"}, m.Keys())

	data, err := m.Marshal()
	require.NoError(t, err)
	require.Equal(t, "{\n    \"a\": \"x\",\n    \"b\": 2,\n    \"c\": 3\n}\n", string(data))
}

func TestClone_IsIndependent(t *testing.T) {
	m, err := Parse([]byte(`{"name": "a"}`))
	require.NoError(t, err)

	c := m.Clone()
	c.Set("name", "b")
	c.Set("extra", true)

	require.Equal(t, "a", m.Name())
	require.Equal(t, []string{"name"}, m.Keys())
	require.Equal(t, "b", c.Name())
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte(`{"name": `))
	require.Error(t, err)
}

func TestVersion_MissingOrWrongType(t *testing.T) {
	m, err := Parse([]byte(`{"version": 1}`))
	require.NoError(t, err)
	require.Equal(t, "", m.Version())
	require.Equal(t, "", New().Name())
}

func TestParse_PreservesNestedKeyOrder(t *testing.T) {
	input := `{
    "name": "seed",
    "scripts": {
        "test": "jest",
        "build": "tsc -b"
    },
    "workspaces": {
        "packages": ["packages/*"],
        "nohoist": ["**/jest"]
    },
    "contributors": [{"name": "ada", "email": "ada@example.com"}]
}
`
	m, err := Parse([]byte(input))
	require.NoError(t, err)

	scripts, ok := m.Get("scripts")
	require.True(t, ok)
	require.IsType(t, &Object{}, scripts)

	data, err := m.Marshal()
	require.NoError(t, err)
	require.Equal(t, `{
    "name": "seed",
    "scripts": {
        "test": "jest",
        "build": "tsc -b"
    },
    "workspaces": {
        "packages": [
            "packages/*"
        ],
        "nohoist": [
            "**/jest"
        ]
    },
    "contributors": [
        {
            "name": "ada",
            "email": "ada@example.com"
        }
    ]
}
`, string(data))
}
