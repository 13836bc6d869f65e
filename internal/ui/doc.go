// Package ui provides the visual components of the docdraft TUI.
//
// # Layout
//
//	┌──────────────────────────────────────────────────────────────┐
//	│ Header (1 line)                                              │
//	├────────────┬──────────────────────┬┬─────────────────────────┤
//	│            │                      ││ toolbar                 │
//	│  Sidebar   │  Chat                ││                         │
//	│  (history) │  transcript          ││  Preview                │
//	│            │                      ││  (rendered document     │
//	│            ├──────────────────────┤│   or editor)            │
//	│            │  prompt box          ││                         │
//	├────────────┴──────────────────────┴┴─────────────────────────┤
//	│ Footer (1 line)                                              │
//	└──────────────────────────────────────────────────────────────┘
//
// The double bar is the preview's resize handle. Pane widths come from
// layout.Controller and are cached in the ViewContext singleton; on a narrow
// terminal the sidebar or the preview covers the whole content area.
//
// # Components
//
// Header shows the app name on a gradient, the active chat, the language and
// the signed-in user. Footer shows context-aware shortcuts or a flash message.
// Sidebar lists chats newest first with a search filter. Chat holds the
// transcript viewport and the prompt textarea. Preview renders Markdown with
// highlighted code blocks, hosts the manual editor and supports mouse
// selection with copy to the clipboard. Modal centers one modals.ModalState
// over the screen.
//
// # Theming
//
// Colors come from the current Theme; SetTheme rebuilds every style variable
// and pushes the modal styles to the modals package.
package ui
