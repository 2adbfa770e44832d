package client

import "fmt"

// CodeOK is the envelope code the backend uses for success.
const CodeOK = 1

// Error is a handled business failure: the server replied with an envelope
// whose code is not CodeOK. The message is the server's human-readable reason
// and is safe to show to the user. Transport failures are never an *Error.
type Error struct {
	Code   int
	Msg    string
	Status int
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("api error (code %d)", e.Code)
	}
	return fmt.Sprintf("%s (code %d)", e.Msg, e.Code)
}
