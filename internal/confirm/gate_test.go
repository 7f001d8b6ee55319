package confirm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGate_IdleByDefault(t *testing.T) {
	g := New[string]()
	require.False(t, g.Visible())
	_, ok := g.Pending()
	require.False(t, ok)
}

func TestGate_ConfirmReturnsActionOnce(t *testing.T) {
	g := New[string]()
	req := g.Open("apply", WithCancel("discard"))
	require.NotEmpty(t, req.ID)
	require.True(t, g.Visible())

	action, ok := g.Confirm()
	require.True(t, ok)
	require.Equal(t, "apply", action)
	require.False(t, g.Visible())

	_, ok = g.Confirm()
	require.False(t, ok, "second confirm must be a no-op")
}

func TestGate_CancelReturnsCancelAction(t *testing.T) {
	g := New[string]()
	g.Open("apply", WithCancel("discard"))

	action, ok := g.Cancel()
	require.True(t, ok)
	require.Equal(t, "discard", action)
	require.False(t, g.Visible())
}

func TestGate_CancelWithoutCancelActionStillCloses(t *testing.T) {
	g := New[string]()
	g.Open("reset")

	action, ok := g.Cancel()
	require.False(t, ok)
	require.Empty(t, action)
	require.False(t, g.Visible())
}

func TestGate_CloseDropsBothActions(t *testing.T) {
	g := New[string]()
	g.Open("apply", WithCancel("discard"))
	g.Close()

	require.False(t, g.Visible())
	_, ok := g.Confirm()
	require.False(t, ok)
	_, ok = g.Cancel()
	require.False(t, ok)
}

func TestGate_ResolveWithoutRequestIsNoop(t *testing.T) {
	g := New[int]()
	action, ok := g.Confirm()
	require.False(t, ok)
	require.Zero(t, action)

	action, ok = g.Cancel()
	require.False(t, ok)
	require.Zero(t, action)

	g.Close()
	require.False(t, g.Visible())
}

func TestGate_LastOpenWins(t *testing.T) {
	g := New[string]()
	first := g.Open("a", WithCancel("b"))
	second := g.Open("c", WithCancel("d"))
	require.NotEqual(t, first.ID, second.ID)

	pending, ok := g.Pending()
	require.True(t, ok)
	require.Equal(t, second.ID, pending.ID)

	action, ok := g.Confirm()
	require.True(t, ok)
	require.Equal(t, "c", action)

	_, ok = g.Confirm()
	require.False(t, ok, "the superseded request must never resolve")
}

func TestGate_PayloadIsCarried(t *testing.T) {
	g := New[string]()
	g.Open("apply", WithPayload[string]([]string{"color: +blue"}))

	pending, ok := g.Pending()
	require.True(t, ok)
	require.Equal(t, []string{"color: +blue"}, pending.Payload)
	require.False(t, pending.HasCancel)
}
