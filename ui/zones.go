package ui

import "fmt"

// Zone ID constants for bubblezone hit detection.
// These are used both in render paths (zone.Mark) and input paths
// (zone.Get().InBounds).
const (
	ZoneToolbar  = "zone-toolbar"
	ZoneTabStrip = "zone-tab-strip"
	ZoneContent  = "zone-content"
)

// TabZoneID returns the zone ID for a tab-strip cell by its visual index.
func TabZoneID(idx int) string {
	return fmt.Sprintf("zone-tab-%d", idx)
}

// TrayRowZoneID returns the zone ID for a tab-tray row by its rows-slice index.
func TrayRowZoneID(idx int) string {
	return fmt.Sprintf("zone-tray-row-%d", idx)
}
