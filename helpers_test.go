package viddler

import (
	"testing"

	"github.com/antonholmquist/jason"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMethodName(t *testing.T) {
	assert.Equal(t, "viddler.users.register", methodName("users.register"))
	assert.Equal(t, "viddler.users.register", methodName("viddler.users.register"))
	assert.Equal(t, "users.register", shortName("viddler.users.register"))
	assert.Equal(t, "users.register", shortName("users.register"))
}

func TestGetObjects(t *testing.T) {
	obj, err := jason.NewObjectFromBytes([]byte(`{
		"one": {"video": {"id": "a"}},
		"many": {"video": [{"id": "a"}, "", {"id": "b"}]},
		"none": {"video": ""}
	}`))
	require.NoError(t, err)

	assert.Len(t, getObjects(obj, "one", "video"), 1)
	many := getObjects(obj, "many", "video")
	require.Len(t, many, 2)
	assert.Equal(t, "b", getString(many[1], "id"))
	assert.Empty(t, getObjects(obj, "none", "video"))
	assert.Empty(t, getObjects(obj, "missing"))
}

func TestGetInt(t *testing.T) {
	obj, err := jason.NewObjectFromBytes([]byte(`{"a": "42", "b": "x", "c": {"d": " 7 "}}`))
	require.NoError(t, err)
	assert.Equal(t, 42, getInt(obj, "a"))
	assert.Equal(t, 0, getInt(obj, "b"))
	assert.Equal(t, 7, getInt(obj, "c", "d"))
	assert.Equal(t, 0, getInt(obj, "missing"))
	assert.Equal(t, 0, getInt(nil, "a"))
}
