package client

import "errors"

var errIncompleteApp = errors.New("client app requires services and ui")
