// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the lifecycle of one session: load
// manifests and data, register component UIs, render entities and apply
// scripted edits. It is decoupled from any specific entrypoint like a CLI.
package app
