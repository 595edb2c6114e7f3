package model

// Package model defines the catalog data structures shared by the app: list
// entries, list kinds and genres. Derived display values (reading progress,
// lit rating stars) live next to the data so every list renders them the same way.
