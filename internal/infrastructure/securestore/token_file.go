// Package securestore guarda el token de sesión cifrado en disco.
//
// Formato del archivo: salt(16) | nonce(24) | XChaCha20-Poly1305(token).
// La clave se deriva de TOKEN_SECRET con Argon2id y un salt nuevo en cada escritura.
package securestore

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"

	"github.com/jhoicas/Inventario-stock/internal/domain/repository"
)

var _ repository.TokenStore = (*TokenFile)(nil)

const (
	saltSize = 16

	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
)

// ErrCorrupt el archivo existe pero no se pudo descifrar (secreto distinto o datos dañados).
var ErrCorrupt = errors.New("securestore: token ilegible")

// TokenFile implementa repository.TokenStore sobre un archivo cifrado.
type TokenFile struct {
	mu     sync.Mutex
	path   string
	secret []byte
}

// NewTokenFile construye el almacén. secret no puede estar vacío.
func NewTokenFile(path, secret string) (*TokenFile, error) {
	if path == "" {
		return nil, errors.New("securestore: TOKEN_PATH vacío")
	}
	if secret == "" {
		return nil, errors.New("securestore: TOKEN_SECRET vacío")
	}
	return &TokenFile{path: path, secret: []byte(secret)}, nil
}

func (s *TokenFile) deriveKey(salt []byte) []byte {
	return argon2.IDKey(s.secret, salt, argonTime, argonMemory, argonThreads, chacha20poly1305.KeySize)
}

func (s *TokenFile) Get(_ context.Context) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("securestore: leer %s: %w", s.path, err)
	}
	if len(raw) < saltSize+chacha20poly1305.NonceSizeX+chacha20poly1305.Overhead {
		return "", false, ErrCorrupt
	}
	salt := raw[:saltSize]
	nonce := raw[saltSize : saltSize+chacha20poly1305.NonceSizeX]
	sealed := raw[saltSize+chacha20poly1305.NonceSizeX:]

	aead, err := chacha20poly1305.NewX(s.deriveKey(salt))
	if err != nil {
		return "", false, fmt.Errorf("securestore: cifrador: %w", err)
	}
	plain, err := aead.Open(nil, nonce, sealed, []byte(filepath.Base(s.path)))
	if err != nil {
		return "", false, ErrCorrupt
	}
	return string(plain), true, nil
}

func (s *TokenFile) Set(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	salt := make([]byte, saltSize)
	nonce := make([]byte, chacha20poly1305.NonceSizeX)
	if _, err := rand.Read(salt); err != nil {
		return fmt.Errorf("securestore: salt: %w", err)
	}
	if _, err := rand.Read(nonce); err != nil {
		return fmt.Errorf("securestore: nonce: %w", err)
	}
	aead, err := chacha20poly1305.NewX(s.deriveKey(salt))
	if err != nil {
		return fmt.Errorf("securestore: cifrador: %w", err)
	}

	out := make([]byte, 0, saltSize+len(nonce)+len(token)+aead.Overhead())
	out = append(out, salt...)
	out = append(out, nonce...)
	out = aead.Seal(out, nonce, []byte(token), []byte(filepath.Base(s.path)))

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("securestore: crear directorio: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, out, 0o600); err != nil {
		return fmt.Errorf("securestore: escribir: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("securestore: reemplazar: %w", err)
	}
	return nil
}

func (s *TokenFile) Delete(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("securestore: borrar: %w", err)
	}
	return nil
}
