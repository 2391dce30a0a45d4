// Package registry is the component UI registry: it binds component kinds,
// identified at runtime by a TypeKey, to the callbacks that display and edit
// them, and dispatches draw calls to the right callback.
//
// The Registry keeps three independent tables:
//
//  1. Legacy display callbacks: untyped, view-only. When present they always
//     win for display and are never used for editing.
//  2. Single-line edit-or-view callbacks.
//  3. Multi-line edit-or-view callbacks, preferred in the selection (detail)
//     layout; compact layouts only ever use single-line callbacks.
//
// When no table has an entry, the total fallback renderer draws the value.
//
// Edit-or-view callbacks are strongly typed (see RegisterSingleline). The
// registry stores them type-erased: a closure decodes the single selected
// element with a Codec, runs the callback on a read-only or mutable view and,
// in edit mode, re-encodes the value when the callback reports a change. The
// changed value is then handed to the Committer with the TypeKey it was
// requested under.
//
// Tables are populated once during startup by Modules and are read-only while
// frames are drawn, so dispatch takes no locks.
package registry
