package smtp

import "errors"

// ErrSendFailed indicates the SMTP server rejected the message or could not be reached.
var ErrSendFailed = errors.New("smtp: failed to send email")
