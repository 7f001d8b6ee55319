package selection

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func colorRed() Selection {
	return Selection{{ID: "color", OptionIDs: []string{"red"}}}
}

func TestNewStore_DraftMirrorsInitial(t *testing.T) {
	s := NewStore(colorRed())
	require.Equal(t, colorRed(), s.Selection())
	require.Equal(t, colorRed(), s.Draft())
	require.False(t, s.ModalOpen())
	require.False(t, s.HasPendingChanges())
}

func TestNewStore_NormalizesInitial(t *testing.T) {
	s := NewStore(Selection{{ID: "color"}, {ID: "size", OptionIDs: []string{"m", "m"}}})
	require.Equal(t, Selection{{ID: "size", OptionIDs: []string{"m"}}}, s.Selection())
}

func TestOpenModal_RecopiesSelection(t *testing.T) {
	s := NewStore(colorRed())
	s.OpenModal()
	s.ToggleOption("color", "blue")
	require.True(t, s.HasPendingChanges())

	s.OpenModal()
	require.True(t, s.ModalOpen())
	require.Equal(t, colorRed(), s.Draft())
}

func TestCloseModal_DiscardsDraft(t *testing.T) {
	s := NewStore(colorRed())
	s.OpenModal()
	s.ToggleOption("size", "m")
	s.CloseModal()

	require.False(t, s.ModalOpen())
	require.Equal(t, colorRed(), s.Draft())
	require.Equal(t, colorRed(), s.Selection())
}

func TestToggleOption(t *testing.T) {
	s := NewStore(nil)

	s.ToggleOption("color", "red")
	require.Equal(t, colorRed(), s.Draft())

	s.ToggleOption("color", "blue")
	require.Equal(t, Selection{{ID: "color", OptionIDs: []string{"red", "blue"}}}, s.Draft())

	s.ToggleOption("color", "red")
	require.Equal(t, Selection{{ID: "color", OptionIDs: []string{"blue"}}}, s.Draft())

	s.ToggleOption("color", "blue")
	require.Nil(t, s.Draft())
	require.False(t, s.HasDraftSelection())
	require.Nil(t, s.Selection(), "toggles must not touch the committed selection")
}

func TestToggleOption_AcceptsUnknownIDs(t *testing.T) {
	s := NewStore(nil)
	s.ToggleOption("no-such-filter", "no-such-option")
	require.True(t, s.Draft().Contains("no-such-filter", "no-such-option"))
}

func TestToggleOption_EmptyIDsDoNotSurviveNormalize(t *testing.T) {
	s := NewStore(nil)
	s.ToggleOption("", "x")
	s.ToggleOption("color", "")
	s.ApplyDraft()

	require.Len(t, s.Selection(), 2)
	require.Nil(t, s.Selection().Normalize())
}

func TestToggleOption_PairIsIdentity(t *testing.T) {
	start := Selection{
		{ID: "color", OptionIDs: []string{"red", "blue"}},
		{ID: "size", OptionIDs: []string{"m"}},
	}
	pairs := [][2]string{
		{"color", "red"}, {"color", "green"}, {"size", "m"}, {"brand", "acme"},
	}
	for _, p := range pairs {
		t.Run(p[0]+"/"+p[1], func(t *testing.T) {
			s := NewStore(start)
			s.OpenModal()
			s.ToggleOption(p[0], p[1])
			s.ToggleOption(p[0], p[1])
			require.True(t, Equal(start, s.Draft()))
			require.False(t, s.HasPendingChanges())
		})
	}
}

func TestToggleOption_NeverLeavesEmptyEntries(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	filters := []string{"color", "size", "brand"}
	options := []string{"a", "b", "c"}

	s := NewStore(nil)
	s.OpenModal()
	for i := 0; i < 500; i++ {
		s.ToggleOption(filters[rng.Intn(len(filters))], options[rng.Intn(len(options))])
		if i%50 == 0 {
			s.ApplyDraft()
			s.OpenModal()
		}
		for _, sel := range []Selection{s.Draft(), s.Selection()} {
			seen := map[string]bool{}
			for _, e := range sel {
				require.NotEmpty(t, e.OptionIDs, "entry %q has no options", e.ID)
				require.False(t, seen[e.ID], "filter %q appears twice", e.ID)
				seen[e.ID] = true
			}
		}
	}
}

func TestSetDraftOptions(t *testing.T) {
	s := NewStore(colorRed())

	s.SetDraftOptions("size", []string{"s", "m", "s"})
	require.Equal(t, []string{"s", "m"}, s.Draft().Options("size"))

	s.SetDraftOptions("color", []string{"blue"})
	require.Equal(t, []string{"blue"}, s.Draft().Options("color"))

	s.SetDraftOptions("color", nil)
	require.False(t, s.Draft().Contains("color", "blue"))
	require.Equal(t, 1, s.Draft().Len())

	s.SetDraftOptions("brand", nil)
	require.Equal(t, 1, s.Draft().Len())
}

func TestClearDraftFilterAndClearAll(t *testing.T) {
	s := NewStore(Selection{
		{ID: "color", OptionIDs: []string{"red"}},
		{ID: "size", OptionIDs: []string{"m"}},
	})
	s.ClearDraftFilter("color")
	require.Equal(t, Selection{{ID: "size", OptionIDs: []string{"m"}}}, s.Draft())

	s.ClearAllDraft()
	require.False(t, s.HasDraftSelection())
	require.True(t, s.HasSelection())
	require.True(t, s.HasPendingChanges())
}

func TestResetDraft_KeepsVisibility(t *testing.T) {
	s := NewStore(colorRed())
	s.OpenModal()
	s.ClearAllDraft()
	s.ResetDraft()
	require.True(t, s.ModalOpen())
	require.Equal(t, colorRed(), s.Draft())
}

func TestApplyDraft_CommitsExactlyTheDraft(t *testing.T) {
	var committed []Selection
	s := NewStore(colorRed(), WithCommitHook(func(sel Selection) {
		committed = append(committed, sel)
	}))
	s.OpenModal()
	s.ToggleOption("color", "blue")
	s.ToggleOption("size", "m")
	draft := s.Draft()

	s.ApplyDraft()
	require.True(t, Equal(draft, s.Selection()))
	require.False(t, s.ModalOpen())
	require.False(t, s.HasPendingChanges())
	require.Len(t, committed, 1)
	require.True(t, Equal(draft, committed[0]))

	// Later draft edits must not leak into the committed value.
	s.OpenModal()
	s.ToggleOption("color", "red")
	require.True(t, s.Selection().Contains("color", "red"))
}

func TestDiscardDraft_LeavesSelection(t *testing.T) {
	hookCalls := 0
	s := NewStore(colorRed(), WithCommitHook(func(Selection) { hookCalls++ }))
	s.OpenModal()
	s.ToggleOption("color", "red")
	s.ToggleOption("size", "l")

	s.DiscardDraft()
	require.Equal(t, colorRed(), s.Selection())
	require.True(t, Equal(s.Selection(), s.Draft()))
	require.False(t, s.ModalOpen())
	require.Zero(t, hookCalls)
}

func TestResetAll(t *testing.T) {
	var last Selection = colorRed()
	s := NewStore(colorRed(), WithCommitHook(func(sel Selection) { last = sel }))
	s.OpenModal()
	s.ToggleOption("size", "m")

	s.ResetAll()
	require.False(t, s.HasSelection())
	require.False(t, s.HasDraftSelection())
	require.False(t, s.ModalOpen())
	require.Nil(t, last)
}

func TestHasPendingChanges_OrderInsensitive(t *testing.T) {
	s := NewStore(Selection{{ID: "color", OptionIDs: []string{"red", "blue"}}})
	s.OpenModal()
	s.SetDraftOptions("color", []string{"blue", "red"})
	require.False(t, s.HasPendingChanges())

	s.ToggleOption("color", "green")
	require.True(t, s.HasPendingChanges())
}

func TestPendingDiff(t *testing.T) {
	s := NewStore(colorRed())
	s.OpenModal()
	s.ToggleOption("color", "blue")
	require.Equal(t, []Change{{FilterID: "color", Added: []string{"blue"}}}, s.PendingDiff())
}

func TestReadersGetCopies(t *testing.T) {
	s := NewStore(colorRed())
	sel := s.Selection()
	sel[0].OptionIDs[0] = "mutated"
	draft := s.Draft()
	draft[0].OptionIDs[0] = "mutated"

	require.Equal(t, colorRed(), s.Selection())
	require.Equal(t, colorRed(), s.Draft())
}

func ExampleStore() {
	s := NewStore(Selection{{ID: "color", OptionIDs: []string{"red"}}})
	s.OpenModal()
	s.ToggleOption("color", "blue")
	fmt.Println(s.HasPendingChanges())
	s.ApplyDraft()
	fmt.Println(s.Selection().Options("color"))
	// Output:
	// true
	// [red blue]
}
