package utils

type ContextKey int

const (
	ContextKeyCurrentUser ContextKey = iota
	ContextKeyLogger
)
