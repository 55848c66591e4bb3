package tyrouter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoute0_InvokeNoArgs(t *testing.T) {
	rt, err := Route0(Nil(), func() string { return "home" })
	assert.NoError(t, err)
	assert.Equal(t, "home", rt.invoke(nil))
}

func TestRoute1_InvokeDecodesOneArg(t *testing.T) {
	rt, err := Route1(Var(Int, Nil()), func(id int) string { return "user" })
	assert.NoError(t, err)
	bundle := []boundValue{{w: Int.Witness(), v: 42}}
	assert.Equal(t, "user", rt.invoke(bundle))
}

func TestRoute2_InvokePreservesArgumentOrder(t *testing.T) {
	rt, err := Route2(Var(Int, Var(String, Nil())), func(id int, slug string) any {
		return []any{id, slug}
	})
	assert.NoError(t, err)
	bundle := []boundValue{
		{w: Int.Witness(), v: 7},
		{w: String.Witness(), v: "hello"},
	}
	assert.Equal(t, []any{7, "hello"}, rt.invoke(bundle))
}

func TestRouteN_RejectsNilHandler(t *testing.T) {
	_, err := Route0[string](Nil(), nil)
	assert.Error(t, err)

	_, err = Route1[int, string](Var(Int, Nil()), nil)
	assert.Error(t, err)
}

func TestRouteN_RejectsArityMismatch(t *testing.T) {
	_, err := Route0(Var(Int, Nil()), func() string { return "" })
	assert.Error(t, err)

	_, err = Route1(Nil(), func(id int) string { return "" })
	assert.Error(t, err)

	_, err = Route2(Var(Int, Nil()), func(a, b int) string { return "" })
	assert.Error(t, err)
}

func TestRouteImpl_InvokePanicsOnWitnessMismatch(t *testing.T) {
	rt, err := Route1(Var(Int, Nil()), func(id int) string { return "user" })
	assert.NoError(t, err)

	bundle := []boundValue{{w: String.Witness(), v: "not an int"}}
	assert.Panics(t, func() { rt.invoke(bundle) })
}

func TestRouteImpl_InvokePanicsOnShortBundle(t *testing.T) {
	rt, err := Route1(Var(Int, Nil()), func(id int) string { return "user" })
	assert.NoError(t, err)
	assert.Panics(t, func() { rt.invoke(nil) })
}
