// Package session persists the client's login session in the local
// key/value store.
package session

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/sensitivv/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/sensitivv/internal/dbx"
)

// Persisted keys. KeyDarkMode belongs to the theme preference and is never
// touched by this package.
const (
	KeyUserID   = "userId"
	KeyUserName = "userName"
	KeyToken    = "userToken"
	KeyLanguage = "userLanguage"
	KeyDarkMode = "isDarkMode"
)

// Session is the stored session. Each field is independently optional: nil
// means the key is absent.
type Session struct {
	ID       *string
	Name     *string
	Token    *string
	Language *string
}

// Str is a convenience for building Session literals.
func Str(s string) *string { return &s }

// HasCredentials reports whether both id and token are present.
func (s Session) HasCredentials() bool {
	return s.ID != nil && *s.ID != "" && s.Token != nil && *s.Token != ""
}

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) repo(db dbx.DBTX) metadata.Repository {
	return metadata.NewSQLiteRepository(db)
}

// Read returns whatever subset of the session keys is stored.
func (s *Store) Read(ctx context.Context) (Session, error) {
	m, err := s.repo(s.db).GetMany(ctx, KeyUserID, KeyUserName, KeyToken, KeyLanguage)
	if err != nil {
		return Session{}, err
	}

	var out Session
	pick := func(key string) *string {
		if v, ok := m[key]; ok {
			return &v
		}
		return nil
	}
	out.ID = pick(KeyUserID)
	out.Name = pick(KeyUserName)
	out.Token = pick(KeyToken)
	out.Language = pick(KeyLanguage)
	return out, nil
}

// Write stores the non-nil fields of in within one transaction. Nil fields
// are left as they are.
func (s *Store) Write(ctx context.Context, in Session) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repo(tx)
		for _, kv := range []struct {
			key string
			val *string
		}{
			{KeyUserID, in.ID},
			{KeyUserName, in.Name},
			{KeyToken, in.Token},
			{KeyLanguage, in.Language},
		} {
			if kv.val == nil {
				continue
			}
			if err := repo.Set(ctx, kv.key, *kv.val); err != nil {
				return err
			}
		}
		return nil
	})
}

// ClearSession removes id, name and token atomically. The language
// preference survives.
func (s *Store) ClearSession(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return s.repo(tx).Delete(ctx, KeyUserID, KeyUserName, KeyToken)
	})
}

// Token returns the stored token, or "" when absent.
func (s *Store) Token(ctx context.Context) (string, error) {
	v, _, err := s.repo(s.db).Get(ctx, KeyToken)
	return v, err
}

// Language returns the stored language preference and whether one is set.
func (s *Store) Language(ctx context.Context) (string, bool, error) {
	return s.repo(s.db).Get(ctx, KeyLanguage)
}
