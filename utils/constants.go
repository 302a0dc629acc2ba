package utils

// Gin context keys shared by middleware and handlers.
const (
	LoggerKey    = "logger"
	SessionIDKey = "sessionID"
	RequestIDKey = "requestID"
)
