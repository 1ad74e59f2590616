package content

import "fmt"

// Remote error codes with defined meaning. Code 5 is the CMS's explicit
// "resource does not exist" signal; every other code is a generic failure.
const (
	CodeInvalidSchema = 0
	CodeNotFound      = 5
	CodeTransport     = -1
)

// RemoteError is the single failure shape surfaced by every CMS call.
type RemoteError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *RemoteError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("cms error %d: %s", e.Code, e.Message)
}

// IsNotFound reports whether the CMS explicitly reported the resource absent.
// This single bit drives 404 vs 500 selection everywhere.
func IsNotFound(e *RemoteError) bool {
	return e != nil && e.Code == CodeNotFound
}
