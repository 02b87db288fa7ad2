package boltdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/iudanet/khutwa/internal/client/storage"
)

var tokenKey = []byte("current")

// Compile-time check that Storage implements TokenStorage
var _ storage.TokenStorage = (*Storage)(nil)

// SaveToken stores the session token, replacing the previous one
func (s *Storage) SaveToken(ctx context.Context, token string) error {
	if token == "" {
		return storage.ErrEmptyToken
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		// Сериализуем запись в JSON
		data, err := json.Marshal(storage.TokenRecord{
			Token:   token,
			SavedAt: time.Now().UTC(),
		})
		if err != nil {
			return fmt.Errorf("failed to marshal token record: %w", err)
		}

		if err := bucket.Put(tokenKey, data); err != nil {
			return fmt.Errorf("failed to save token: %w", err)
		}

		return nil
	})
}

// GetToken retrieves the stored session token
func (s *Storage) GetToken(ctx context.Context) (string, bool, error) {
	record, err := s.getRecord()
	if err != nil {
		if errors.Is(err, storage.ErrTokenNotFound) {
			// Отсутствие токена это нормальное состояние, не ошибка
			return "", false, nil
		}
		return "", false, err
	}
	return record.Token, true, nil
}

// SavedAt returns the time the current token was stored
func (s *Storage) SavedAt(ctx context.Context) (time.Time, error) {
	record, err := s.getRecord()
	if err != nil {
		return time.Time{}, err
	}
	return record.SavedAt, nil
}

// DeleteToken removes the stored session token (logout)
func (s *Storage) DeleteToken(ctx context.Context) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		// bbolt Delete для отсутствующего ключа не возвращает ошибку,
		// поэтому повторный logout безопасен
		if err := bucket.Delete(tokenKey); err != nil {
			return fmt.Errorf("failed to delete token: %w", err)
		}

		return nil
	})
}

func (s *Storage) getRecord() (*storage.TokenRecord, error) {
	var record *storage.TokenRecord

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		data := bucket.Get(tokenKey)
		if data == nil {
			return storage.ErrTokenNotFound
		}

		// Десериализуем (data валиден только внутри транзакции)
		record = &storage.TokenRecord{}
		if err := json.Unmarshal(data, record); err != nil {
			return fmt.Errorf("failed to unmarshal token record: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return record, nil
}
