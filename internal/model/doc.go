package model

// Package model defines domain data structures used across the app: output
// formats, the conversion session state machine, conversion jobs and their
// results. Structures are plain values so the UI thread can own them and
// apply results from the worker explicitly.
