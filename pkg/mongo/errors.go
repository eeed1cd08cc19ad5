package mongo

import "errors"

var ErrFailedToConnect = errors.New("failed to connect to mongo")
