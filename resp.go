package replink

import "strings"

// Reply status tokens and the reserved timeout body.
const (
	statusSuccess = "success"
	statusFailure = "failure"
	timeoutToken  = "<timeout>"
)

// DecodeResponse splits a reply payload into its status tag and body and
// interprets the status. The payload has the form
//
//	<status> <body>
//
// split on the first space only; the body may itself contain spaces. On
// "success" the body is returned unchanged. On "failure" the error is
// ErrRemoteTimeout if the body is the literal "<timeout>", and otherwise a
// *RemoteError carrying the body verbatim. A payload with no separator or
// an unrecognized status is a *ProtocolError.
func DecodeResponse(reply string) (string, error) {
	status, body, ok := strings.Cut(reply, " ")
	if !ok {
		return "", protoErrorf("reply %q has no status separator", reply)
	}
	switch status {
	case statusSuccess:
		return body, nil
	case statusFailure:
		if body == timeoutToken {
			return "", ErrRemoteTimeout
		}
		return "", &RemoteError{Message: body}
	}
	return "", protoErrorf("unknown reply status %q", status)
}
