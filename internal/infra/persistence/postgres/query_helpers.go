package postgres

import (
	"strings"

	"loyalty/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// forUpdate pins the query to the primary and takes a row lock. SQLite has
// no row locks and serialises writers on its own, so the locking clause is
// skipped there.
func forUpdate(db *gorm.DB) *gorm.DB {
	db = db.Clauses(dbresolver.Write)
	if db.Dialector.Name() == "sqlite" {
		return db
	}

	return db.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate})
}

// paginate applies LIMIT/OFFSET when a limit is set.
func paginate(db *gorm.DB, p repository.Pagination) *gorm.DB {
	if p.Limit <= 0 {
		return db
	}

	return db.Limit(p.Limit).Offset(p.Offset())
}

// containsPattern builds a LIKE pattern matching s anywhere, escaping wildcards.
func containsPattern(s string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

	return "%" + strings.ToLower(replacer.Replace(s)) + "%"
}
