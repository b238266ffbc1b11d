package log

// Common field names for structured logging
const (
	FieldComponent     = "component"
	FieldError         = "error"
	FieldOperation     = "operation"
	FieldStorageKey    = "storage_key"
	FieldBackend       = "backend"
	FieldBytes         = "bytes"
	FieldCount         = "count"
	FieldTransactionID = "transaction_id"
	FieldCategoryID    = "category_id"
	FieldAmountCents   = "amount_cents"
	FieldType          = "type"
	FieldDate          = "date"
	FieldFilter        = "filter"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentStore   = "store"
	ComponentStorage = "storage"
	ComponentBackend = "backend"
	ComponentReport  = "report"
)

// Operations defines standard operation names
const (
	OpCreate   = "create"
	OpUpdate   = "update"
	OpDelete   = "delete"
	OpLoad     = "load"
	OpPersist  = "persist"
	OpSeed     = "seed"
	OpMigrate  = "migrate"
	OpStartup  = "startup"
	OpShutdown = "shutdown"
)

// LogFields provides a builder pattern for structured log fields
type LogFields map[string]any

// NewFields creates a new LogFields instance
func NewFields() LogFields {
	return make(LogFields)
}

func (f LogFields) WithOperation(op string) LogFields {
	f[FieldOperation] = op
	return f
}

// WithError adds error field
func (f LogFields) WithError(err error) LogFields {
	if err != nil {
		f[FieldError] = err.Error()
	}
	return f
}

func (f LogFields) WithKey(key string) LogFields {
	f[FieldStorageKey] = key
	return f
}

// WithTransaction adds the identifying fields of a transaction.
func (f LogFields) WithTransaction(id string, amountCents int64, typ, date string) LogFields {
	f[FieldTransactionID] = id
	f[FieldAmountCents] = amountCents
	f[FieldType] = typ
	f[FieldDate] = date
	return f
}

func (f LogFields) WithCategory(id, typ string) LogFields {
	f[FieldCategoryID] = id
	f[FieldType] = typ
	return f
}

// ToSlice converts LogFields to a slice for slog
func (f LogFields) ToSlice() []any {
	slice := make([]any, 0, len(f)*2)
	for k, v := range f {
		slice = append(slice, k, v)
	}
	return slice
}
