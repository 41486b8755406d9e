package model

// Package model defines the domain data structures shared across the app:
// storage bins, the items they hold, and the derived fill status and tier
// enums used for rendering. Derivations are pure and recomputed on demand.
