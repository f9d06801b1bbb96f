package repositories

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
)

var (
	// ErrForeignKey: запись ссылается на несуществующего родителя или на неё ссылаются дети.
	ErrForeignKey = errors.New("foreign key violation")
	// ErrInvalidValue: значение отвергнуто ограничением схемы (CHECK, NOT NULL, формат).
	ErrInvalidValue = errors.New("invalid value")
)

// classify переводит коды postgres в доменные ошибки, сохраняя исходную.
func classify(op string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23503":
			return fmt.Errorf("%s: %w: %s", op, ErrForeignKey, pqErr.Message)
		case "23514", "23502", "22007", "22008", "22003", "22P02":
			return fmt.Errorf("%s: %w: %s", op, ErrInvalidValue, pqErr.Message)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

// patchBuilder собирает SET-часть UPDATE только из переданных колонок.
type patchBuilder struct {
	sets []string
	args []interface{}
}

func (b *patchBuilder) set(column string, value interface{}) {
	b.args = append(b.args, value)
	b.sets = append(b.sets, fmt.Sprintf("%s = $%d", column, len(b.args)))
}

func (b *patchBuilder) empty() bool {
	return len(b.sets) == 0
}

// query возвращает UPDATE ... RETURNING с id последним аргументом.
func (b *patchBuilder) query(table string, id int, returning string) (string, []interface{}) {
	args := append(b.args, id)
	q := fmt.Sprintf(
		"UPDATE %s SET %s, updated_at = NOW() WHERE id = $%d RETURNING %s",
		table, strings.Join(b.sets, ", "), len(args), returning,
	)
	return q, args
}
