package db

import (
	"bytes"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"sync"

	"golang.org/x/crypto/nacl/secretbox"
	"golang.org/x/crypto/scrypt"
)

const (
	sealedMagic = "OASIS-SEALED-1"
	saltSize    = 16
	nonceSize   = 24
	keySize     = 32
	scryptN     = 1 << 15
	scryptR     = 8
	scryptP     = 1
)

// SealedKV encrypts values at rest with a key derived from a passphrase.
// Layout: magic | salt | nonce | secretbox(value).
type SealedKV struct {
	inner      KV
	passphrase []byte
	salt       [saltSize]byte
	key        [keySize]byte

	mu      sync.Mutex
	derived map[[saltSize]byte][keySize]byte
}

// NewSealedKV wraps inner. The passphrase must not be empty.
func NewSealedKV(inner KV, passphrase string) (*SealedKV, error) {
	if inner == nil {
		return nil, errors.New("sealed kv: nil inner store")
	}
	if passphrase == "" {
		return nil, errors.New("sealed kv: passphrase is required")
	}
	s := &SealedKV{inner: inner, passphrase: []byte(passphrase), derived: map[[saltSize]byte][keySize]byte{}}
	if _, err := io.ReadFull(rand.Reader, s.salt[:]); err != nil {
		return nil, fmt.Errorf("sealed kv: salt: %w", err)
	}
	key, err := s.deriveKey(s.salt)
	if err != nil {
		return nil, err
	}
	s.key = key
	return s, nil
}

func (s *SealedKV) deriveKey(salt [saltSize]byte) ([keySize]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if k, ok := s.derived[salt]; ok {
		return k, nil
	}
	var key [keySize]byte
	raw, err := scrypt.Key(s.passphrase, salt[:], scryptN, scryptR, scryptP, keySize)
	if err != nil {
		return key, fmt.Errorf("sealed kv: derive key: %w", err)
	}
	copy(key[:], raw)
	s.derived[salt] = key
	return key, nil
}

func (s *SealedKV) Get(key string) ([]byte, error) {
	sealed, err := s.inner.Get(key)
	if err != nil {
		return nil, err
	}
	header := len(sealedMagic) + saltSize + nonceSize
	if len(sealed) < header+secretbox.Overhead || !bytes.HasPrefix(sealed, []byte(sealedMagic)) {
		return nil, ErrSealed
	}
	var salt [saltSize]byte
	var nonce [nonceSize]byte
	off := len(sealedMagic)
	copy(salt[:], sealed[off:off+saltSize])
	copy(nonce[:], sealed[off+saltSize:header])
	k, err := s.deriveKey(salt)
	if err != nil {
		return nil, err
	}
	plain, ok := secretbox.Open(nil, sealed[header:], &nonce, &k)
	if !ok {
		return nil, ErrSealed
	}
	return plain, nil
}

func (s *SealedKV) Set(key string, value []byte) error {
	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return fmt.Errorf("sealed kv: nonce: %w", err)
	}
	out := make([]byte, 0, len(sealedMagic)+saltSize+nonceSize+len(value)+secretbox.Overhead)
	out = append(out, sealedMagic...)
	out = append(out, s.salt[:]...)
	out = append(out, nonce[:]...)
	out = secretbox.Seal(out, value, &nonce, &s.key)
	return s.inner.Set(key, out)
}

func (s *SealedKV) Close() error { return s.inner.Close() }

var _ KV = (*SealedKV)(nil)
