package keys

import "errors"

// APITokenID names the bearer token guarding the docs endpoints.
const APITokenID = "api-token"

// TokenStore provides access to secrets used by the HTTP endpoints.
type TokenStore interface {
	Get(id string) (string, error)
	Put(id, token string) error
	Delete(id string) error
}

var ErrTokenNotFound = errors.New("token not found")

// ConfigStore is the in-memory TokenStore. It holds tokens handed to it by
// the caller and backs tests that must not touch the system keyring.
type ConfigStore struct {
	Tokens map[string]string
}

func (s *ConfigStore) Get(id string) (string, error) {
	if s == nil || s.Tokens == nil {
		return "", ErrTokenNotFound
	}
	val, ok := s.Tokens[id]
	if !ok || val == "" {
		return "", ErrTokenNotFound
	}
	return val, nil
}

func (s *ConfigStore) Put(id, token string) error {
	if s.Tokens == nil {
		s.Tokens = map[string]string{}
	}
	s.Tokens[id] = token
	return nil
}

func (s *ConfigStore) Delete(id string) error {
	if s == nil || s.Tokens == nil {
		return nil
	}
	delete(s.Tokens, id)
	return nil
}

// ResolveToken returns the configured token, falling back to store when
// configured is blank. A missing token in store is not an error.
func ResolveToken(configured string, store TokenStore) (string, error) {
	if configured != "" || store == nil {
		return configured, nil
	}
	tok, err := store.Get(APITokenID)
	if errors.Is(err, ErrTokenNotFound) {
		return "", nil
	}
	return tok, err
}
