// Package tabs owns the browser's tab collection: two privacy-partitioned
// ordered lists with a selected tab each, plus SQLite-backed session
// persistence. The gesture core reads it through the gesture.TabsView
// interface; mutation happens only on the UI goroutine.
package tabs

import (
	"fmt"

	"github.com/google/uuid"
)

// Tab is one open page.
type Tab struct {
	ID      string
	URL     string
	Title   string
	Private bool
}

// Store holds the ordered tab lists for both privacy partitions.
type Store struct {
	normal   []Tab
	private  []Tab
	selected map[bool]string
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{selected: make(map[bool]string)}
}

// Open appends a new tab to the given partition and selects it.
func (s *Store) Open(url, title string, private bool) Tab {
	tab := Tab{ID: uuid.NewString(), URL: url, Title: title, Private: private}
	list := s.list(private)
	*list = append(*list, tab)
	s.selected[private] = tab.ID
	return tab
}

// Close removes a tab. When the closed tab was selected, selection moves to
// its right neighbor, or the new last tab when it was rightmost.
func (s *Store) Close(id string) error {
	for _, private := range []bool{false, true} {
		list := s.list(private)
		for i, tab := range *list {
			if tab.ID != id {
				continue
			}
			*list = append((*list)[:i], (*list)[i+1:]...)
			if s.selected[private] == id {
				delete(s.selected, private)
				if len(*list) > 0 {
					next := i
					if next >= len(*list) {
						next = len(*list) - 1
					}
					s.selected[private] = (*list)[next].ID
				}
			}
			return nil
		}
	}
	return fmt.Errorf("close tab: no tab with id %q", id)
}

// Select makes the given tab the selected one in its partition.
func (s *Store) Select(id string) error {
	for _, private := range []bool{false, true} {
		for _, tab := range *s.list(private) {
			if tab.ID == id {
				s.selected[private] = id
				return nil
			}
		}
	}
	return fmt.Errorf("select tab: no tab with id %q", id)
}

// Navigate points a tab at a new URL and title.
func (s *Store) Navigate(id, url, title string) error {
	for _, private := range []bool{false, true} {
		list := s.list(private)
		for i := range *list {
			if (*list)[i].ID == id {
				(*list)[i].URL = url
				(*list)[i].Title = title
				return nil
			}
		}
	}
	return fmt.Errorf("navigate tab: no tab with id %q", id)
}

// Move reorders a tab within its partition to the given index.
func (s *Store) Move(id string, index int) error {
	for _, private := range []bool{false, true} {
		list := s.list(private)
		for i, tab := range *list {
			if tab.ID != id {
				continue
			}
			if index < 0 || index >= len(*list) {
				return fmt.Errorf("move tab: index %d out of range", index)
			}
			*list = append((*list)[:i], (*list)[i+1:]...)
			*list = append((*list)[:index], append([]Tab{tab}, (*list)[index:]...)...)
			return nil
		}
	}
	return fmt.Errorf("move tab: no tab with id %q", id)
}

// Get returns a tab by id.
func (s *Store) Get(id string) (Tab, bool) {
	for _, private := range []bool{false, true} {
		for _, tab := range *s.list(private) {
			if tab.ID == id {
				return tab, true
			}
		}
	}
	return Tab{}, false
}

// Tabs returns a copy of the partition's tabs in visual order.
func (s *Store) Tabs(private bool) []Tab {
	list := *s.list(private)
	out := make([]Tab, len(list))
	copy(out, list)
	return out
}

// Count returns the number of tabs in the partition.
func (s *Store) Count(private bool) int {
	return len(*s.list(private))
}

// Selected returns the selected tab of the partition, if any.
func (s *Store) Selected(private bool) (Tab, bool) {
	id, ok := s.selected[private]
	if !ok {
		return Tab{}, false
	}
	return s.Get(id)
}

// OrderedIDs implements gesture.TabsView.
func (s *Store) OrderedIDs(private bool) []string {
	list := *s.list(private)
	ids := make([]string, len(list))
	for i, tab := range list {
		ids[i] = tab.ID
	}
	return ids
}

// SelectedID implements gesture.TabsView.
func (s *Store) SelectedID(private bool) (string, bool) {
	id, ok := s.selected[private]
	return id, ok
}

func (s *Store) list(private bool) *[]Tab {
	if private {
		return &s.private
	}
	return &s.normal
}
