package audit

// Audit is implemented by sinks recording catalog mutations.
type Audit interface {
	Write(e *Entry) error
}

// Entry describes a single audited operation, e.g. action "product.create"
// with the product identifier as subject.
type Entry struct {
	Action    string `json:"action"`
	Subject   string `json:"subject"`
	Timestamp int64  `json:"timestamp"`
}
