package errors

// ErrorCode is the application-level error code returned to API clients
type ErrorCode int

const (
	ErrorCode_HTTP_OK ErrorCode = 200

	// General
	ErrorCode_INTERNAL         ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT ErrorCode = 1001
	ErrorCode_NOT_FOUND        ErrorCode = 1002
	ErrorCode_INVALID_PAYLOAD  ErrorCode = 1003
	ErrorCode_FORBIDDEN        ErrorCode = 1004

	// Session
	ErrorCode_SESSION_NOT_FOUND           ErrorCode = 2000
	ErrorCode_SESSION_EMPTY               ErrorCode = 2001
	ErrorCode_SESSION_NO_CURRENT_QUESTION ErrorCode = 2002
	ErrorCode_SESSION_INCOMPLETE          ErrorCode = 2003
	ErrorCode_SESSION_INVALID_STATE       ErrorCode = 2004
	ErrorCode_SESSION_INVALID_SETTINGS    ErrorCode = 2005
	ErrorCode_SESSION_QUESTION_MISMATCH   ErrorCode = 2006

	// Scoring
	ErrorCode_SCORING_UNAVAILABLE   ErrorCode = 3000
	ErrorCode_SCORING_BAD_SIGNATURE ErrorCode = 3001
	ErrorCode_TRANSCRIPTION_FAILED  ErrorCode = 3002

	// Integration
	ErrorCode_INTEGRATION_STORAGE_FAILED ErrorCode = 4000
	ErrorCode_INTEGRATION_CACHE_FAILED   ErrorCode = 4001

	// Database
	ErrorCode_DB_QUERY_FAILED ErrorCode = 5000
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:                     "HTTP_OK",
	ErrorCode_INTERNAL:                    "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:            "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:                   "NOT_FOUND",
	ErrorCode_INVALID_PAYLOAD:             "INVALID_PAYLOAD",
	ErrorCode_FORBIDDEN:                   "FORBIDDEN",
	ErrorCode_SESSION_NOT_FOUND:           "SESSION_NOT_FOUND",
	ErrorCode_SESSION_EMPTY:               "SESSION_EMPTY",
	ErrorCode_SESSION_NO_CURRENT_QUESTION: "SESSION_NO_CURRENT_QUESTION",
	ErrorCode_SESSION_INCOMPLETE:          "SESSION_INCOMPLETE",
	ErrorCode_SESSION_INVALID_STATE:       "SESSION_INVALID_STATE",
	ErrorCode_SESSION_INVALID_SETTINGS:    "SESSION_INVALID_SETTINGS",
	ErrorCode_SESSION_QUESTION_MISMATCH:   "SESSION_QUESTION_MISMATCH",
	ErrorCode_SCORING_UNAVAILABLE:         "SCORING_UNAVAILABLE",
	ErrorCode_SCORING_BAD_SIGNATURE:       "SCORING_BAD_SIGNATURE",
	ErrorCode_TRANSCRIPTION_FAILED:        "TRANSCRIPTION_FAILED",
	ErrorCode_INTEGRATION_STORAGE_FAILED:  "INTEGRATION_STORAGE_FAILED",
	ErrorCode_INTEGRATION_CACHE_FAILED:    "INTEGRATION_CACHE_FAILED",
	ErrorCode_DB_QUERY_FAILED:             "DB_QUERY_FAILED",
}

// String returns the symbolic name of the code
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
