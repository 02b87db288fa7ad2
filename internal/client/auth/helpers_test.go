package auth

import (
	"context"
	"errors"
	"sync"

	"github.com/iudanet/khutwa/internal/client/storage"
)

// memTokens хранит токен в памяти и пишет журнал операций
type memTokens struct {
	deleteErr error
	journal   *[]string
	token     string
	mu        sync.Mutex
}

var _ storage.TokenStorage = (*memTokens)(nil)

func newMemTokens(token string, journal *[]string) *memTokens {
	if journal == nil {
		journal = &[]string{}
	}
	return &memTokens{token: token, journal: journal}
}

func (m *memTokens) SaveToken(ctx context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if token == "" {
		return storage.ErrEmptyToken
	}
	m.token = token
	*m.journal = append(*m.journal, "save")
	return nil
}

func (m *memTokens) GetToken(ctx context.Context) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, m.token != "", nil
}

func (m *memTokens) DeleteToken(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	*m.journal = append(*m.journal, "delete")
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.token = ""
	return nil
}

func (m *memTokens) current() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

var errDisk = errors.New("disk failure")
