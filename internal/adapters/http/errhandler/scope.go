package errhandler

import "github.com/jsamuelsen11/go-service-errors/internal/platform/logging"

// Ambient log field keys installed while an error is dispatched.
const (
	FieldErrorCode   = "error.code"
	FieldHTTPStatus  = "error.http_status"
	FieldCategory    = "error.category"
	FieldFieldCount  = "validation.fieldCount"
	FieldGlobalCount = "validation.globalCount"
	FieldObjectName  = "validation.objectName"
)

// fieldScope installs keys into a request's ambient log fields and puts the
// store back the way it was found.
type fieldScope struct {
	fields    *logging.Fields
	saved     map[string]string
	installed []string
}

func openScope(fields *logging.Fields) *fieldScope {
	return &fieldScope{fields: fields, saved: fields.Snapshot()}
}

func (s *fieldScope) set(key, value string) {
	s.fields.Set(key, value)
	s.installed = append(s.installed, key)
}

// restore reinstates the saved entries when there were any. Otherwise it
// removes only the keys this scope installed.
func (s *fieldScope) restore() {
	if s.saved != nil {
		s.fields.Replace(s.saved)
		return
	}
	s.fields.Remove(s.installed...)
}
