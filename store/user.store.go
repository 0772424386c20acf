package store

import (
	"context"
	"notehub-server/models"
	"time"

	"github.com/gocql/gocql"
)

// CreateUser inserts a new account, failing with ErrEmailTaken if the email
// is already registered
func (s *Store) CreateUser(ctx context.Context, name string, email string, passwordHash string) (models.User, error) {

	userID := gocql.TimeUUID()
	created := time.Now().UTC()

	applied, err := s.session.Query(`
		INSERT INTO users_by_email (email,user_id,name,password_hash,created)
		VALUES(?,?,?,?,?)
		IF NOT EXISTS;`,
		email,
		userID,
		name,
		passwordHash,
		created,
	).WithContext(ctx).MapScanCAS(make(map[string]interface{}))

	if err != nil {
		return models.User{}, err
	}
	if !applied {
		return models.User{}, ErrEmailTaken
	}

	err = s.session.Query(`
		INSERT INTO users (user_id,name,email,created)
		VALUES(?,?,?,?);`,
		userID,
		name,
		email,
		created,
	).WithContext(ctx).Exec()

	if err != nil {
		return models.User{}, err
	}

	return models.User{
		ID:           userID.String(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Created:      created,
	}, nil
}

// UserByEmail looks up an account with its credential hash
func (s *Store) UserByEmail(ctx context.Context, email string) (models.User, error) {

	res := make(map[string]interface{})

	err := s.session.Query(`
		SELECT * FROM users_by_email WHERE email = ? LIMIT 1;`,
		email,
	).WithContext(ctx).MapScan(res)

	if err != nil {
		if err == gocql.ErrNotFound {
			return models.User{}, ErrNotFound
		}
		return models.User{}, err
	}

	return models.User{
		ID:           res["user_id"].(gocql.UUID).String(),
		Name:         res["name"].(string),
		Email:        res["email"].(string),
		PasswordHash: res["password_hash"].(string),
		Created:      res["created"].(time.Time),
	}, nil
}

// UserByID looks up the profile record by id (no credential hash)
func (s *Store) UserByID(ctx context.Context, id string) (models.User, error) {

	res := make(map[string]interface{})

	err := s.session.Query(`
		SELECT * FROM users WHERE user_id = ? LIMIT 1;`,
		id,
	).WithContext(ctx).MapScan(res)

	if err != nil {
		if err == gocql.ErrNotFound {
			return models.User{}, ErrNotFound
		}
		return models.User{}, err
	}

	return models.User{
		ID:      res["user_id"].(gocql.UUID).String(),
		Name:    res["name"].(string),
		Email:   res["email"].(string),
		Created: res["created"].(time.Time),
	}, nil
}

// UsersByIDs resolves public profiles for a batch of ids; absent ids are
// silently skipped
func (s *Store) UsersByIDs(ctx context.Context, ids []string) ([]models.PublicUser, error) {

	if len(ids) == 0 {
		return nil, nil
	}

	iter := s.session.Query(`
		SELECT user_id, name, email FROM users WHERE user_id IN ?;`,
		ids,
	).WithContext(ctx).Iter()

	defer iter.Close()

	var users []models.PublicUser
	var (
		userID gocql.UUID
		name   string
		email  string
	)
	for iter.Scan(&userID, &name, &email) {
		users = append(users, models.PublicUser{
			ID:    userID.String(),
			Name:  name,
			Email: email,
		})
	}

	return users, iter.Close()
}

// AllUsersExcept scans every profile but the given one
func (s *Store) AllUsersExcept(ctx context.Context, selfID string) ([]models.PublicUser, error) {

	iter := s.session.Query(`
		SELECT user_id, name, email FROM users;`,
	).WithContext(ctx).Iter()

	defer iter.Close()

	var users []models.PublicUser
	var (
		userID gocql.UUID
		name   string
		email  string
	)
	for iter.Scan(&userID, &name, &email) {
		if userID.String() == selfID {
			continue
		}
		users = append(users, models.PublicUser{
			ID:    userID.String(),
			Name:  name,
			Email: email,
		})
	}

	return users, iter.Close()
}
