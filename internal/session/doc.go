// Package session keeps the history of drafting sessions.
//
// # Overview
//
// A session pairs a chat transcript with the one document that chat
// produced. The Store keeps sessions newest first and is the source of truth
// for every session except the one being edited live, which the workspace
// mirrors and writes back after each generation.
//
// # Session Lifecycle
//
// 1. Create: the first completed generation in a new chat prepends a session.
// Its title is the first 20 characters of the prompt (see Title) and its
// preview reads "Just now".
//
// 2. Update: later generations in the same chat replace the session's
// transcript and document in place. The preview changes to "Updated" and the
// list order does not change.
//
// 3. Rename / Delete: explicit user actions. Rename ignores blank titles.
//
// # Persistence
//
// Sessions are held in memory only. DemoSessions can seed the list so a new
// user sees what the history pane looks like.
package session
