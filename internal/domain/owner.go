package domain

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
)

type Owner struct {
	ID        int
	Email     string
	Secret    secret
	Role      string
	CreatedAt time.Time
}

// MaxSecretBytes is the longest input bcrypt hashes.
const MaxSecretBytes = 72

type secret struct {
	plaintext *string
	Hash      []byte
}

func (s *secret) Set(plaintext string) error {
	if len(plaintext) > MaxSecretBytes {
		return ErrSecretTooLong
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), 12)
	if err != nil {
		return err
	}

	s.plaintext = &plaintext
	s.Hash = hash

	return nil
}

func (s *secret) Matches(plaintext string) (bool, error) {
	err := bcrypt.CompareHashAndPassword(s.Hash, []byte(plaintext))
	if err != nil {
		switch {
		case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
			return false, nil
		default:
			return false, err
		}
	}

	return true, nil
}

type OwnerRepository interface {
	Create(ctx context.Context, owner *Owner) error
	GetById(ctx context.Context, id int) (*Owner, error)
	GetByEmail(ctx context.Context, email string) (*Owner, error)
}
