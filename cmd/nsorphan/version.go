package main

const (
	// Version is bumped manually as part of the release checklist
	Version     = "v0.1.0"
	ReleaseDate = "2026-08-23"
)
