package tabs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_OpenSelectsNewTab(t *testing.T) {
	s := NewStore()
	a := s.Open("https://example.com", "Example", false)
	b := s.Open("https://go.dev", "Go", false)

	sel, ok := s.Selected(false)
	require.True(t, ok)
	assert.Equal(t, b.ID, sel.ID)
	assert.Equal(t, []string{a.ID, b.ID}, s.OrderedIDs(false))
}

func TestStore_PartitionsAreIndependent(t *testing.T) {
	s := NewStore()
	n := s.Open("https://example.com", "Example", false)
	p := s.Open("https://secret.example", "Secret", true)

	assert.Equal(t, []string{n.ID}, s.OrderedIDs(false))
	assert.Equal(t, []string{p.ID}, s.OrderedIDs(true))

	sel, ok := s.Selected(true)
	require.True(t, ok)
	assert.True(t, sel.Private)
	assert.Equal(t, p.ID, sel.ID)
}

func TestStore_CloseMovesSelectionToNeighbor(t *testing.T) {
	s := NewStore()
	a := s.Open("a", "", false)
	b := s.Open("b", "", false)
	c := s.Open("c", "", false)

	require.NoError(t, s.Select(b.ID))
	require.NoError(t, s.Close(b.ID))

	sel, ok := s.Selected(false)
	require.True(t, ok)
	assert.Equal(t, c.ID, sel.ID, "selection moves to the right neighbor")

	require.NoError(t, s.Close(c.ID))
	sel, ok = s.Selected(false)
	require.True(t, ok)
	assert.Equal(t, a.ID, sel.ID, "closing the rightmost selects the new last")
}

func TestStore_CloseLastTabClearsSelection(t *testing.T) {
	s := NewStore()
	a := s.Open("a", "", false)
	require.NoError(t, s.Close(a.ID))

	_, ok := s.SelectedID(false)
	assert.False(t, ok)
	assert.Zero(t, s.Count(false))
}

func TestStore_CloseUnknownTab(t *testing.T) {
	s := NewStore()
	assert.Error(t, s.Close("nope"))
}

func TestStore_Move(t *testing.T) {
	s := NewStore()
	a := s.Open("a", "", false)
	b := s.Open("b", "", false)
	c := s.Open("c", "", false)

	require.NoError(t, s.Move(c.ID, 0))
	assert.Equal(t, []string{c.ID, a.ID, b.ID}, s.OrderedIDs(false))

	assert.Error(t, s.Move(a.ID, 5))
	assert.Error(t, s.Move("nope", 0))
}

func TestStore_Navigate(t *testing.T) {
	s := NewStore()
	tab := s.Open("about:blank", "New Tab", false)

	require.NoError(t, s.Navigate(tab.ID, "https://example.com", "example.com"))
	got, ok := s.Get(tab.ID)
	require.True(t, ok)
	assert.Equal(t, "https://example.com", got.URL)
	assert.Equal(t, "example.com", got.Title)

	assert.Error(t, s.Navigate("nope", "https://x.test", "x"))
}

func TestStore_TabsReturnsCopy(t *testing.T) {
	s := NewStore()
	s.Open("a", "", false)

	got := s.Tabs(false)
	got[0].Title = "mutated"

	fresh := s.Tabs(false)
	assert.Empty(t, fresh[0].Title)
}

func TestSession_SaveAndLoadRoundTrip(t *testing.T) {
	sess, err := OpenSession(":memory:")
	require.NoError(t, err)
	defer sess.Close()

	s := NewStore()
	a := s.Open("https://example.com", "Example", false)
	b := s.Open("https://go.dev", "Go", false)
	p := s.Open("https://secret.example", "Secret", true)
	require.NoError(t, s.Select(a.ID))

	require.NoError(t, sess.Save(s))

	loaded, err := sess.Load()
	require.NoError(t, err)

	assert.Equal(t, []string{a.ID, b.ID}, loaded.OrderedIDs(false))
	assert.Equal(t, []string{p.ID}, loaded.OrderedIDs(true))

	sel, ok := loaded.Selected(false)
	require.True(t, ok)
	assert.Equal(t, a.ID, sel.ID)
	assert.Equal(t, "https://example.com", sel.URL)

	psel, ok := loaded.Selected(true)
	require.True(t, ok)
	assert.Equal(t, p.ID, psel.ID)
}

func TestSession_SaveReplacesPreviousSession(t *testing.T) {
	sess, err := OpenSession(":memory:")
	require.NoError(t, err)
	defer sess.Close()

	s := NewStore()
	s.Open("old", "", false)
	require.NoError(t, sess.Save(s))

	s2 := NewStore()
	fresh := s2.Open("new", "", false)
	require.NoError(t, sess.Save(s2))

	loaded, err := sess.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{fresh.ID}, loaded.OrderedIDs(false))
}

func TestSession_Reset(t *testing.T) {
	sess, err := OpenSession(":memory:")
	require.NoError(t, err)
	defer sess.Close()

	s := NewStore()
	s.Open("a", "", false)
	require.NoError(t, sess.Save(s))
	require.NoError(t, sess.Reset())

	loaded, err := sess.Load()
	require.NoError(t, err)
	assert.Zero(t, loaded.Count(false))
}
