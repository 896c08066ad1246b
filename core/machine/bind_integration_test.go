package machine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/proteanblank/xstate/core/bind"
	"github.com/proteanblank/xstate/core/view"
)

// The scenarios below drive the real runtime through the real bindings.

func TestScenario_twoStateMachineSelectValue(t *testing.T) {
	ref := MustInterpret(twoStateDef())

	var rendered []string

	h := view.New(view.Options{})
	h.Mount(bind.ActorProvider(func() bind.ActorRef[Snapshot] { return ref },
		func(c *view.Ctx) {
			v := bind.UseSelectorFromScope(c, func(s Snapshot) string { return s.Value })
			rendered = append(rendered, v)
		},
	))

	require.Equal(t, []string{"a"}, rendered)

	ref.Send("NEXT")
	require.Equal(t, 1, h.Flush())
	require.Equal(t, []string{"a", "b"}, rendered)

	h.Close()
	// the provider owns the ref: unmount stopped it
	ref.Send("NEXT")
	require.Equal(t, "b", ref.GetSnapshot().Value)
}

func TestScenario_shallowComparatorOverContext(t *testing.T) {
	def := Definition{
		ID:      "profile",
		Initial: "editing",
		Context: map[string]any{
			"user":  map[string]any{"name": "ada", "age": 36},
			"saves": 0,
		},
		States: map[string]StateNode{
			"editing": {On: map[string]Transition{
				"SAVE":   {Actions: []string{"countSave"}},
				"RENAME": {Actions: []string{"rename"}},
			}},
		},
		Impl: Impl{Actions: map[string]ActionFunc{
			"countSave": func(ac *ActionCtx) { ac.Assign("saves", ac.Get("saves").(int)+1) },
			"rename": func(ac *ActionCtx) {
				user := ac.Get("user").(map[string]any)
				ac.Assign("user", map[string]any{"name": ac.Event.Payload["name"], "age": user["age"]})
			},
		}},
	}

	ref := MustInterpret(def)

	renders := 0
	project := func(s Snapshot) map[string]any {
		u := s.Context["user"].(map[string]any)
		return map[string]any{"name": u["name"], "age": u["age"]}
	}

	h := view.New(view.Options{})
	h.Mount(bind.ActorProvider(func() bind.ActorRef[Snapshot] { return ref },
		func(c *view.Ctx) {
			bind.UseSelectorFromScope(c, project, bind.Shallow[map[string]any]())
			renders++
		},
	))
	defer h.Close()

	// unrelated context field changes: projected keys keep their values
	ref.Send("SAVE")
	require.Equal(t, 0, h.Flush())

	// a primitive inside the projected mapping changes: one re-render
	ref.Send(Event{Type: "RENAME", Payload: map[string]any{"name": "lovelace"}})
	require.Equal(t, 1, h.Flush())
	require.Equal(t, 2, renders)
}

func TestScenario_prebuiltConfiguredRefIsUsedAsIs(t *testing.T) {
	marker := false

	def := twoStateDef()
	def.States["a"] = StateNode{
		Entry: []string{"mark"},
		On:    map[string]Transition{"NEXT": {Target: "b"}},
	}
	def.Impl.Actions = map[string]ActionFunc{"mark": func(*ActionCtx) {}}

	// pre-built and pre-configured by the caller, already running
	external := MustInterpret(def, WithID("external-1"), WithAction("mark", func(*ActionCtx) { marker = true }))
	external.Start()
	defer external.Stop()

	var got bind.ActorRef[Snapshot]

	h := view.New(view.Options{})
	h.Mount(bind.ActorProviderRef[Snapshot](external, func(c *view.Ctx) {
		got = bind.UseActorRef[Snapshot](c)
	}))

	require.Same(t, external, got)
	require.Equal(t, "external-1", got.(*Ref).ID())
	require.True(t, marker, "the caller's configuration ran, not a fresh default")

	// the provider merely borrows the ref
	h.Close()
	external.Send("NEXT")
	require.Equal(t, "b", external.GetSnapshot().Value)
}

func TestScenario_selectorAgainstExplicitRef(t *testing.T) {
	ref := MustInterpret(twoStateDef())
	ref.Start()
	defer ref.Stop()

	var rendered []string

	// no provider scope anywhere: the standalone selector takes the ref
	h := view.New(view.Options{})
	h.Mount(func(c *view.Ctx) {
		v := bind.UseSelector(c, bind.ActorRef[Snapshot](ref), func(s Snapshot) string { return s.Value })
		rendered = append(rendered, v)
	})

	ref.Send("NEXT")
	h.Flush()
	require.Equal(t, []string{"a", "b"}, rendered)
}
