package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ubuntucrafts/catalog/pkg/env/db"
)

// ErrNotFound is returned when a product identifier has no matching row.
var ErrNotFound = errors.New("product not found")

// rebind rewrites `?` placeholders into the `$n` form the pgx driver
// expects. MySQL statements pass through unchanged.
func rebind(driver db.DriverType, query string) string {
	if driver.Name() != "pgx" {
		return query
	}

	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			fmt.Fprintf(&b, "$%d", n)
			continue
		}
		b.WriteRune(r)
	}

	return b.String()
}
