package postgres

import (
	"github.com/aarondl/sqlboiler/v4/drivers"
	"github.com/aarondl/sqlboiler/v4/queries"
	"github.com/aarondl/sqlboiler/v4/queries/qm"
	"github.com/aarondl/strmangle"
)

// Dialect is the sqlboiler dialect of PostgreSQL.
var Dialect = drivers.Dialect{
	LQ: 0x22,
	RQ: 0x22,

	UseIndexPlaceholders: true,
	UseDefaultKeyword:    true,
}

// NewQuery initializes a new Query using the passed in QueryMods.
func NewQuery(mods ...qm.QueryMod) *queries.Query {
	q := &queries.Query{}
	queries.SetDialect(q, &Dialect)
	qm.Apply(q, mods...)

	return q
}

// Quote wraps an identifier in the dialect's quotes.
func Quote(ident string) string {
	return strmangle.IdentQuote(Dialect.LQ, Dialect.RQ, ident)
}
