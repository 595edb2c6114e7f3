// Package catalog holds the reusable core behind every reading list: a
// copy-on-write Store of entries, the per-list field Schema and the Form that
// turns raw user input into a validated model.Entry.
package catalog
