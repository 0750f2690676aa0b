package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrMethod   = "method"
	AttrPath     = "path"
	AttrStatus   = "status"
	AttrSport    = "sport"
	AttrEndpoint = "endpoint"
	AttrResult   = "result"
)
