package common

type ContextKey string

const (
	UserIDContextKey   ContextKey = "user_id"
	UsernameContextKey ContextKey = "username"
	LatencyContextKey  ContextKey = "latency"
)
