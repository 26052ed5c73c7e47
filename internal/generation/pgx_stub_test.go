package generation

import (
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type stubRow struct {
	scan func(dest ...any) error
}

func (r stubRow) Scan(dest ...any) error {
	if r.scan == nil {
		return pgx.ErrNoRows
	}
	return r.scan(dest...)
}

type stubRows struct {
	rows [][]any
	idx  int
}

func (r *stubRows) Next() bool {
	if r.idx >= len(r.rows) {
		return false
	}
	r.idx++
	return true
}

func (r *stubRows) Scan(dest ...any) error {
	row := r.rows[r.idx-1]
	if len(dest) != len(row) {
		return fmt.Errorf("scan: %d destinations for %d values", len(dest), len(row))
	}
	for i, value := range row {
		if err := assign(dest[i], value); err != nil {
			return err
		}
	}
	return nil
}

func (r *stubRows) Close()     {}
func (r *stubRows) Err() error { return nil }

func (r *stubRows) CommandTag() pgconn.CommandTag { return pgconn.CommandTag{} }
func (r *stubRows) Conn() *pgx.Conn               { return nil }

func (r *stubRows) FieldDescriptions() []pgconn.FieldDescription { return nil }

func (r *stubRows) Values() ([]any, error) {
	return nil, errors.New("values not supported in test rows")
}

func (r *stubRows) RawValues() [][]byte { return nil }

var _ pgx.Rows = (*stubRows)(nil)

func assign(dest, value any) error {
	switch d := dest.(type) {
	case *string:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("assign: want string, got %T", value)
		}
		*d = v
	case **string:
		switch v := value.(type) {
		case nil:
			*d = nil
		case string:
			s := v
			*d = &s
		case *string:
			*d = v
		default:
			return fmt.Errorf("assign: want nullable string, got %T", value)
		}
	case *bool:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("assign: want bool, got %T", value)
		}
		*d = v
	case *int:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("assign: want int, got %T", value)
		}
		*d = v
	case *time.Time:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("assign: want time.Time, got %T", value)
		}
		*d = v
	case *[]byte:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("assign: want []byte, got %T", value)
		}
		*d = append([]byte(nil), v...)
	case *[]string:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("assign: want []string, got %T", value)
		}
		*d = append([]string(nil), v...)
	case *Status:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("assign: want status string, got %T", value)
		}
		*d = Status(v)
	default:
		return fmt.Errorf("assign: unsupported destination %T", dest)
	}
	return nil
}
