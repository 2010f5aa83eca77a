package postgresql

import (
	"fmt"
	"strings"

	"github.com/invaderrssofficial-source/invaders.final/internal/repository"
)

// buildUpdate renders "UPDATE table SET a = $1, b = $2 WHERE id = $3".
// Column names come from the storage codec, never from request input.
func buildUpdate(table, id string, cols []repository.Column) (string, []interface{}) {
	sets := make([]string, 0, len(cols))
	args := make([]interface{}, 0, len(cols)+1)
	for i, c := range cols {
		sets = append(sets, fmt.Sprintf("%s = $%d", c.Name, i+1))
		args = append(args, c.Value)
	}
	args = append(args, id)
	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d", table, strings.Join(sets, ", "), len(cols)+1)
	return query, args
}
