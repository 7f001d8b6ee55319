package flow

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/five82/facet/internal/confirm"
	"github.com/five82/facet/internal/selection"
)

func newController(initial selection.Selection, opts ...Option) *Controller {
	return New(selection.NewStore(initial), confirm.New[Action](), opts...)
}

func colorRed() selection.Selection {
	return selection.Selection{{ID: "color", OptionIDs: []string{"red"}}}
}

func TestApply_ConfirmCommitsDraft(t *testing.T) {
	c := newController(colorRed())
	s := c.Store()

	s.OpenModal()
	require.Equal(t, colorRed(), s.Draft())

	s.ToggleOption("color", "blue")
	require.Equal(t, selection.Selection{{ID: "color", OptionIDs: []string{"red", "blue"}}}, s.Draft())

	require.True(t, c.Apply())
	require.True(t, c.Gate().Visible())
	require.True(t, s.ModalOpen(), "editor stays open while confirmation is pending")

	pending, ok := c.Gate().Pending()
	require.True(t, ok)
	require.Equal(t, ActionApplyDraft, pending.Confirm)
	require.True(t, pending.HasCancel)
	require.Equal(t, ActionDiscardDraft, pending.Cancel)
	prompt, ok := pending.Payload.(Prompt)
	require.True(t, ok)
	require.Equal(t, []selection.Change{{FilterID: "color", Added: []string{"blue"}}}, prompt.Changes)

	require.Equal(t, ActionApplyDraft, c.Confirm())
	require.Equal(t, selection.Selection{{ID: "color", OptionIDs: []string{"red", "blue"}}}, s.Selection())
	require.False(t, s.ModalOpen())
	require.False(t, c.Gate().Visible())
}

func TestApply_CancelDiscardsDraft(t *testing.T) {
	c := newController(colorRed())
	s := c.Store()

	s.OpenModal()
	s.ToggleOption("color", "blue")
	require.True(t, c.Apply())

	require.Equal(t, ActionDiscardDraft, c.Cancel())
	require.Equal(t, colorRed(), s.Selection())
	require.Equal(t, colorRed(), s.Draft())
	require.False(t, s.ModalOpen())
	require.False(t, c.Gate().Visible())
}

func TestApply_NoChangeClosesDirectly(t *testing.T) {
	c := newController(colorRed())
	s := c.Store()

	s.OpenModal()
	s.ToggleOption("color", "blue")
	s.ToggleOption("color", "blue")

	require.False(t, c.Apply())
	require.False(t, c.Gate().Visible())
	require.False(t, s.ModalOpen())
	require.Equal(t, colorRed(), s.Selection())
}

func TestDismiss_KeepLeavesDraft(t *testing.T) {
	c := newController(colorRed())
	s := c.Store()
	s.OpenModal()
	s.ToggleOption("size", "m")
	c.Apply()

	require.Equal(t, ActionNone, c.Dismiss())
	require.False(t, c.Gate().Visible())
	require.True(t, s.ModalOpen())
	require.True(t, s.Draft().Contains("size", "m"))
	require.Equal(t, colorRed(), s.Selection())
}

func TestDismiss_CancelPolicy(t *testing.T) {
	c := newController(colorRed(), WithDismissPolicy(DismissCancel))
	s := c.Store()
	s.OpenModal()
	s.ToggleOption("size", "m")
	c.Apply()

	require.Equal(t, ActionDiscardDraft, c.Dismiss())
	require.False(t, s.ModalOpen())
	require.Equal(t, colorRed(), s.Draft())
}

func TestRequestReset(t *testing.T) {
	c := newController(colorRed())

	require.True(t, c.RequestReset())
	pending, ok := c.Gate().Pending()
	require.True(t, ok)
	require.False(t, pending.HasCancel)

	require.Equal(t, ActionNone, c.Cancel(), "reset has no cancel action")
	require.True(t, c.Store().HasSelection())

	require.True(t, c.RequestReset())
	require.Equal(t, ActionResetAll, c.Confirm())
	require.False(t, c.Store().HasSelection())

	require.False(t, c.RequestReset(), "nothing to reset")
	require.False(t, c.Gate().Visible())
}

func TestConfirm_SupersededRequestNeverRuns(t *testing.T) {
	c := newController(colorRed())
	s := c.Store()
	s.OpenModal()
	s.ToggleOption("color", "blue")
	c.Apply()

	// A reset request replaces the pending apply.
	require.True(t, c.RequestReset())
	require.Equal(t, ActionResetAll, c.Confirm())
	require.False(t, s.HasSelection())
	require.Equal(t, ActionNone, c.Confirm())
}

func TestConfirmWithoutRequestIsNoop(t *testing.T) {
	c := newController(colorRed())
	require.Equal(t, ActionNone, c.Confirm())
	require.Equal(t, ActionNone, c.Cancel())
	require.Equal(t, ActionNone, c.Dismiss())
	require.Equal(t, colorRed(), c.Store().Selection())
}

func TestParseDismissPolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    DismissPolicy
		wantErr bool
	}{
		{"", DismissKeep, false},
		{"keep", DismissKeep, false},
		{" Cancel ", DismissCancel, false},
		{"bogus", DismissKeep, true},
	}
	for _, tt := range tests {
		got, err := ParseDismissPolicy(tt.in)
		if tt.wantErr {
			require.Error(t, err, tt.in)
		} else {
			require.NoError(t, err, tt.in)
		}
		require.Equal(t, tt.want, got, tt.in)
	}
}

func TestActionString(t *testing.T) {
	require.Equal(t, "apply-draft", ActionApplyDraft.String())
	require.Equal(t, "discard-draft", ActionDiscardDraft.String())
	require.Equal(t, "reset-all", ActionResetAll.String())
	require.Equal(t, "none", ActionNone.String())
}
