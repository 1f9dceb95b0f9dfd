package readstore

import "github.com/Masterminds/squirrel"

// Postgres placeholder style shared by all read stores.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
