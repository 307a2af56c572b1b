package xnode

import "errors"

var ErrBadJSON = errors.New("bad xnode json")
