// Package response holds the wire shapes. Success bodies mirror the
// storage driver's result objects (insertedId / matchedCount /
// deletedCount) or carry raw records; there is no envelope. Errors are a
// bare message object.
package response

// Err is the error body for every non-2xx response.
type Err struct {
	Message string `json:"message"`
}

func NewErr(msg string) Err { return Err{Message: msg} }

// Msg is the success body for operations the API reports in prose.
type Msg struct {
	Message string `json:"message"`
}

func NewMsg(msg string) Msg { return Msg{Message: msg} }

// Insert mirrors insertOne. InsertedID is null for the idempotent no-op
// user create, which is why it is typed any.
type Insert struct {
	Message    string `json:"message,omitempty"`
	InsertedID any    `json:"insertedId"`
}
