package visitor

// CounterKey names the page visit counter
const CounterKey = "dutreat_visitor_count"

// Count represents the value of a named counter
type Count struct {
	Key   string `json:"key"`
	Count int64  `json:"count"`
}
