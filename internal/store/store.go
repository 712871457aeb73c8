// Package store implements the data-access layer: credential verification,
// ownership checks and CRUD over workspaces and notes. Every method takes the
// acting user's ID and enforces ownership before touching the target rows.
package store

import "gorm.io/gorm"

type Store struct {
	db              *gorm.DB
	defaultPageSize int
	maxPageSize     int
}

func New(db *gorm.DB, defaultPageSize, maxPageSize int) *Store {
	return &Store{
		db:              db,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
	}
}
