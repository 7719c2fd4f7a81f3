package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

const (
	TableName  = "orders"
	EntityName = "order"

	FieldID        = "id"
	FieldOrderID   = "order_id"
	FieldName      = "name"
	FieldEmail     = "email"
	FieldPhone     = "phone"
	FieldCopies    = "copies"
	FieldColor     = "color"
	FieldNotes     = "notes"
	FieldFiles     = "files"
	FieldStatus    = "status"
	FieldCreatedAt = "created_at"
)

// FileRefs is the ordered list of stored-file references for one order,
// persisted as a JSON-encoded text column.
type FileRefs []string

func (f FileRefs) Value() (driver.Value, error) {
	encoded, err := json.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("failed to encode file refs: %w", err)
	}

	return string(encoded), nil
}

func (f *FileRefs) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, f)
	case string:
		return json.Unmarshal([]byte(v), f)
	case nil:
		*f = nil

		return nil
	default:
		return fmt.Errorf("cannot scan %T into FileRefs", src)
	}
}

type Order struct {
	ID        int64     `db:"id"`
	OrderID   string    `db:"order_id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Phone     string    `db:"phone"`
	Copies    string    `db:"copies"`
	Color     string    `db:"color"`
	Notes     string    `db:"notes"`
	Files     FileRefs  `db:"files"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
}
