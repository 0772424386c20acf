package store

import (
	"errors"

	"github.com/go-redis/redis/v8"
	"github.com/gocql/gocql"
	minio "github.com/minio/minio-go/v7"
)

// ErrNotFound is returned when a referenced entity is absent
var ErrNotFound = errors.New("store: not found")

// ErrEmailTaken is returned when registering an already-used email
var ErrEmailTaken = errors.New("store: email taken")

// Store is the explicit handle to the backing stores (ScyllaDB, Redis,
// MinIO), constructed once in main and threaded through every component
type Store struct {
	session *gocql.Session
	redis   *redis.Client
	minio   *minio.Client
}

// New builds a store handle over live connections
func New(session *gocql.Session, redisClient *redis.Client, minioClient *minio.Client) *Store {
	return &Store{
		session: session,
		redis:   redisClient,
		minio:   minioClient,
	}
}

// EnsureSchema creates the tables if missing
func (s *Store) EnsureSchema() error {

	statements := []string{`
		CREATE TABLE IF NOT EXISTS users_by_email (
			email text,
			user_id uuid,
			name text,
			password_hash text,
			created timestamp,
			PRIMARY KEY (email))
		WITH compaction = { 'class' :  'LeveledCompactionStrategy'  };`, `
		CREATE TABLE IF NOT EXISTS users (
			user_id uuid,
			name text,
			email text,
			created timestamp,
			PRIMARY KEY (user_id))
		WITH compaction = { 'class' :  'LeveledCompactionStrategy'  };`, `
		CREATE TABLE IF NOT EXISTS user_relations (
			user_id uuid,
			peer_id uuid,
			state text,
			peer_name text,
			peer_email text,
			created timestamp,
			PRIMARY KEY (user_id, peer_id))
		WITH compaction = { 'class' :  'LeveledCompactionStrategy'  };`, `
		CREATE TABLE IF NOT EXISTS notes (
			owner_id uuid,
			note_id timeuuid,
			title text,
			content text,
			color text,
			tags list<text>,
			shared_with set<uuid>,
			allow_editing boolean,
			created timestamp,
			modified timestamp,
			PRIMARY KEY (owner_id, note_id))
		WITH compaction = { 'class' :  'LeveledCompactionStrategy'  };`, `
		CREATE TABLE IF NOT EXISTS note_shares (
			user_id uuid,
			note_id timeuuid,
			owner_id uuid,
			owner_name text,
			owner_email text,
			created timestamp,
			PRIMARY KEY (user_id, note_id))
		WITH compaction = { 'class' :  'LeveledCompactionStrategy'  };`, `
		CREATE TABLE IF NOT EXISTS note_attachments (
			note_id timeuuid,
			attachment_id timeuuid,
			filename text,
			content_type text,
			size bigint,
			created timestamp,
			PRIMARY KEY (note_id, attachment_id))
		WITH compaction = { 'class' :  'LeveledCompactionStrategy'  };`,
	}

	for _, stmt := range statements {
		if err := s.session.Query(stmt).Exec(); err != nil {
			return err
		}
	}

	return nil
}
