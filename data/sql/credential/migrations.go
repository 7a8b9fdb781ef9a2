package credential

import (
	"embed"

	"github.com/klwxsrx/adoption-portal/pkg/sql"
)

var Migrations = sql.FSMigrations(migrationFiles)

//go:embed *.sql
var migrationFiles embed.FS
