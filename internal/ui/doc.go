// Package ui provides the visual components of the panta shell.
//
// # Layout
//
//	┌─────────────────────────────────────────────────────┐
//	│ Header (1 line)                                     │
//	├──────────────┬──────────────────────────────────────┤
//	│              │                                      │
//	│   Sidebar    │         Page                         │
//	│  (32 cols,   │  (rendered markdown for the route)   │
//	│   5 as rail) │                                      │
//	│              │                                      │
//	├──────────────┴──────────────────────────────────────┤
//	│ Footer (1 line)                                     │
//	└─────────────────────────────────────────────────────┘
//
// # Components
//
// ViewContext: singleton for layout arithmetic. Sizes go through it so the
// sidebar, page and footer agree on column widths.
//
// Sidebar: the navigation shell. It reads mode and collapse state from a
// nav.Shell and renders one of three panes (nav, chat, workflow), or an
// icon rail when collapsed. Activating a link returns Navigate(path); the
// sidebar never changes the route itself.
//
// Page: a viewport over the glamour-rendered body of the current route.
//
// Modal: container for modals.ModalState values, composited over the frame
// with Overlay.
//
// Footer: context-aware key bindings, replaced by flash messages while one
// is active.
package ui
