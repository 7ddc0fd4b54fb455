package logging

// Common structured log field keys to keep logs searchable/consistent.
const (
	FieldService    = "service"
	FieldVersion    = "version"
	FieldProvider   = "provider"
	FieldRequestID  = "request_id"
	FieldPath       = "path"
	FieldMethod     = "method"
	FieldStatusCode = "status_code"
	FieldMatchID    = "match_id"
	FieldTeamID     = "team_id"
	FieldSessionID  = "session_id"
	FieldSide       = "side"
	FieldEventType  = "event_type"
	FieldCount      = "count"
	FieldDurationMS = "duration_ms"
)
