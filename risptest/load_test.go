package risptest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	env, err := NewEnv()
	require.NoError(t, err)

	v, err := env.LoadString("test", `
; square every element
(def sq (fn (n) (* n n)))  # trailing comment
(repeat sq (num 4 1))
`)
	require.NoError(t, err)
	assert.Equal(t, "(1,4,9)", v.String())

	v, err = env.LoadString("test", "(sq 3)")
	require.NoError(t, err)
	assert.Equal(t, "9", v.String())

	v, err = env.LoadString("test", "  ; nothing here\n")
	assert.NoError(t, err)
	assert.Nil(t, v)

	_, err = env.LoadString("test", "(def a 1) (car (list)) (def b 2)")
	assert.EqualError(t, err, "empty list")
	v, err = env.LoadString("test", "a")
	require.NoError(t, err)
	assert.Equal(t, "1", v.String())
	_, err = env.LoadString("test", "b")
	assert.EqualError(t, err, "unbound symbol: b")

	_, err = env.LoadString("test", "(+ 1 2")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "closing parenthesis")
}
