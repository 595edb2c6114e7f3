package ui

// Package ui contains the Fyne-based user interface for the application.
// It renders the home screen and one list screen per reading list, wires the
// add dialogs to the catalog form and keeps navigation in sync with the
// toolbar and menu. All UI strings are localized via Localization.
