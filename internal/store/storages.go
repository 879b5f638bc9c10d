package store

import "github.com/Digitalizetheglobe/dtg-universal-cms/internal/logger"

// Storages aggregates every repository backed by one database.
type Storages struct {
	FormRepository          FormRepository
	SubmissionRepository    SubmissionRepository
	EmailTemplateRepository EmailTemplateRepository
}

// NewStorages builds all repositories on top of db.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		FormRepository:          NewFormRepository(db, logger),
		SubmissionRepository:    NewSubmissionRepository(db, logger),
		EmailTemplateRepository: NewEmailTemplateRepository(db, logger),
	}
}
