package subscription

// Request is the body sent when a visitor subscribes to a project's newsletter.
// It is built fresh for each submission and discarded once serialized.
type Request struct {
	Email string `json:"email"`
}

// Response is the decoded JSON returned by the subscriptions endpoint.
// Its shape belongs to the server; it is passed along untouched.
type Response = any
