package typeid

import (
	"go.jetify.com/typeid/v2"
)

const (
	PrefixSession = "sess"
	PrefixExport  = "exp"
)

func New(prefix string) string {
	id := typeid.MustGenerate(prefix)
	return id.String()
}

func NewSessionID() string { return New(PrefixSession) }
func NewExportID() string  { return New(PrefixExport) }
