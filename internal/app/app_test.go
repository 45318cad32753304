package app

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/componentdocs/internal/foundation/errors"
)

func echo(_ context.Context, in []any) (any, error) { return in[0], nil }

func TestNew_UniqueIDs(t *testing.T) {
	a, b := New("docs"), New("docs")
	require.NotEqual(t, a.ID(), b.ID())
	require.Equal(t, "docs", a.Name())
	require.Equal(t, "app(docs, "+a.ID()+")", a.String())
}

func TestCallback_Validation(t *testing.T) {
	var nilApp *App
	err := nilApp.Callback(Output("o", "children"), []Dependency{Input("b", "n_clicks")}, echo)
	require.True(t, errors.HasCategory(err, errors.CategoryValidation))

	a := New("docs")
	require.Error(t, a.Callback(Output("", "children"), []Dependency{Input("b", "n_clicks")}, echo))
	require.Error(t, a.Callback(Output("o", "children"), nil, echo))
	require.Error(t, a.Callback(Output("o", "children"), []Dependency{Input("b", "n_clicks")}, nil))

	require.NoError(t, a.Callback(Output("o", "children"), []Dependency{Input("b", "n_clicks")}, echo))
	err = a.Callback(Output("o", "children"), []Dependency{Input("c", "value")}, echo)
	require.True(t, errors.HasCategory(err, errors.CategoryValidation))
}

func TestCallback_ReRegistrationReplaces(t *testing.T) {
	a := New("docs")
	in := []Dependency{Input("b", "n_clicks")}
	require.NoError(t, a.Callback(Output("o", "children"), in, echo))
	require.NoError(t, a.Callback(Output("o", "children"), in,
		func(context.Context, []any) (any, error) { return "second", nil }))

	require.Len(t, a.Dependencies(), 1)
	resp, err := a.Dispatch(context.Background(), Request{Output: "o.children"})
	require.NoError(t, err)
	require.Equal(t, "second", resp.Response["o"]["children"])
}

func TestDependencies_Sorted(t *testing.T) {
	a := New("docs")
	require.NoError(t, a.Callback(Output("z", "children"), []Dependency{Input("b", "n_clicks")}, echo))
	require.NoError(t, a.Callback(Output("a", "children"), []Dependency{Input("b", "n_clicks")}, echo))

	deps := a.Dependencies()
	require.Len(t, deps, 2)
	require.Equal(t, "a.children", deps[0].Output.String())
	require.Equal(t, []Dependency{{ID: "b", Property: "n_clicks"}}, deps[1].Inputs)
}

func TestDispatch(t *testing.T) {
	a := New("docs")
	require.NoError(t, a.Callback(Output("out", "children"), []Dependency{Input("btn", "n_clicks")},
		func(_ context.Context, in []any) (any, error) { return IntInput(in, 0) * 2, nil }))

	resp, err := a.Dispatch(context.Background(), Request{
		Output: "out.children",
		Inputs: []InputValue{{ID: "btn", Property: "n_clicks", Value: float64(3)}},
	})
	require.NoError(t, err)
	require.Equal(t, 6, resp.Response["out"]["children"])

	_, err = a.Dispatch(context.Background(), Request{Output: "missing.children"})
	require.True(t, errors.HasCategory(err, errors.CategoryNotFound))
}

func TestDispatch_WrapsCallbackErrors(t *testing.T) {
	boom := stderrors.New("boom")
	a := New("docs")
	require.NoError(t, a.Callback(Output("out", "children"), []Dependency{Input("btn", "n_clicks")},
		func(context.Context, []any) (any, error) { return nil, boom }))

	_, err := a.Dispatch(context.Background(), Request{Output: "out.children"})
	require.ErrorIs(t, err, boom)
	require.True(t, errors.HasCategory(err, errors.CategoryCallback))
}

func TestDispatch_CanceledContext(t *testing.T) {
	a := New("docs")
	require.NoError(t, a.Callback(Output("out", "children"), []Dependency{Input("btn", "n_clicks")}, echo))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := a.Dispatch(ctx, Request{Output: "out.children"})
	require.ErrorIs(t, err, context.Canceled)
}

func TestIntInput(t *testing.T) {
	in := []any{float64(4), 7, nil, "x"}
	require.Equal(t, 4, IntInput(in, 0))
	require.Equal(t, 7, IntInput(in, 1))
	require.Equal(t, 0, IntInput(in, 2))
	require.Equal(t, 0, IntInput(in, 3))
	require.Equal(t, 0, IntInput(in, 9))
}
