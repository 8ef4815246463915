package storage

import (
	"database/sql"
	"errors"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserExists = errors.New("username already exists")
	ErrBadLogin   = errors.New("invalid username or password")
)

// UserStore 账户存储抽象：postgres 为生产实现，内存版供测试
type UserStore interface {
	Register(username, password string) error
	Authenticate(username, password string) error
}

type pgUserStore struct {
	db *sql.DB
}

func NewPostgresUserStore(db *sql.DB) UserStore {
	return &pgUserStore{db: db}
}

func (s *pgUserStore) Register(username, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	res, err := s.db.Exec(
		`INSERT INTO users (username, password_hash) VALUES ($1, $2)
		 ON CONFLICT (username) DO NOTHING`,
		username, string(hash),
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrUserExists
	}
	return nil
}

func (s *pgUserStore) Authenticate(username, password string) error {
	var hash string
	err := s.db.QueryRow(
		`SELECT password_hash FROM users WHERE username = $1`, username,
	).Scan(&hash)
	if err == sql.ErrNoRows {
		return ErrBadLogin
	}
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return ErrBadLogin
	}
	return nil
}

type memUserStore struct {
	mu     sync.Mutex
	hashes map[string][]byte
}

func NewMemoryUserStore() UserStore {
	return &memUserStore{hashes: make(map[string][]byte)}
}

func (m *memUserStore) Register(username, password string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.hashes[username]; ok {
		return ErrUserExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		return err
	}
	m.hashes[username] = hash
	return nil
}

func (m *memUserStore) Authenticate(username, password string) error {
	m.mu.Lock()
	hash, ok := m.hashes[username]
	m.mu.Unlock()
	if !ok {
		return ErrBadLogin
	}
	if bcrypt.CompareHashAndPassword(hash, []byte(password)) != nil {
		return ErrBadLogin
	}
	return nil
}
