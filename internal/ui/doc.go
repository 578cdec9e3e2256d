// Package ui provides the Bubble Tea terminal interface for devicedeck.
//
// # Views
//
// Two views share one *compare.Manager injected through Options:
//
//   - Catalog view: list tabs, product rows and the floating compare bar
//   - Compare view: the side-by-side comparison page
//
// Each catalog row carries the product-card toggle, "[+ compare]" or
// "[✓ comparing]". The floating bar appears once the compare list holds a
// product and shows a chip per member, placeholders up to four, and the
// compare trigger, which stays dimmed and inert below two members.
//
// All three presenters read the manager on every render and lay the set out
// through compare.BuildStrip and compare.BuildTable, so they always agree.
// None of them keeps its own copy of the set.
//
// # Feedback
//
// A capacity rejection opens a blocking notice that any key dismisses.
// Duplicates, additions and removals show a one-line notice above the
// bottom edge until the next key press.
//
// # Refresh
//
// A tick re-reads the catalog store (so reloads appear without a restart)
// and the catalog sync snapshot that feeds the header.
//
// # Key Bindings
//
//   - tab: Switch between catalog and comparison page
//   - j/k, g/G: Move the selection
//   - l/L: Next/previous list
//   - /: Search every list by keyword and price range; esc clears
//   - space: Toggle the selected product in the compare list
//   - a: Add the selected product
//   - c: Open the comparison (two or more products)
//   - 1-4: Remove that slot (comparison page)
//   - x: Clear the compare list
//   - s: Fixed four-slot or compact comparison layout (persisted)
//   - T: Cycle theme (persisted)
//   - h/?: Help
//   - q or Ctrl+C: Exit
package ui
