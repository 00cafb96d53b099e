package session

import (
	"bytes"
	"context"
	"errors"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingStore struct{}

func (failingStore) Load(context.Context) (string, error) { return "", errors.New("disk gone") }
func (failingStore) Save(context.Context, string) error   { return errors.New("disk full") }
func (failingStore) Delete(context.Context) error         { return errors.New("read only") }

func TestSession_LastWriteWins(t *testing.T) {
	ctx := context.Background()
	var testCases = []struct {
		description string
		tokens      []string
		expect      string
	}{
		{description: "single", tokens: []string{"abc"}, expect: "abc"},
		{description: "overwrite", tokens: []string{"abc", "def", "ghi"}, expect: "ghi"},
		{description: "empty clears", tokens: []string{"abc", ""}, expect: ""},
		{description: "set after clear", tokens: []string{"abc", "", "xyz"}, expect: "xyz"},
	}
	for _, testCase := range testCases {
		s := New()
		for _, token := range testCase.tokens {
			s.Set(ctx, token)
		}
		assert.Equal(t, testCase.expect, s.Get(), testCase.description)
		assert.Equal(t, testCase.expect != "", s.Authenticated(), testCase.description)
	}
}

func TestSession_Clear(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	s := New(WithStore(store))
	s.Set(ctx, "abc123")
	persisted, _ := store.Load(ctx)
	assert.Equal(t, "abc123", persisted)

	s.Clear(ctx)
	assert.Equal(t, "", s.Get())
	persisted, _ = store.Load(ctx)
	assert.Equal(t, "", persisted)

	s.Clear(ctx)
	assert.False(t, s.Authenticated())
}

func TestSession_RestoreAcrossInstances(t *testing.T) {
	ctx := context.Background()
	URL := "mem://localhost/portal/restore/session.json"

	first := New(WithStore(NewURLStore(URL)))
	first.Restore(ctx)
	assert.Equal(t, "", first.Get())
	first.Set(ctx, "persisted-token")

	second := New(WithStore(NewURLStore(URL)))
	assert.Equal(t, "", second.Get(), "token is read lazily")
	second.Restore(ctx)
	assert.Equal(t, "persisted-token", second.Get())

	second.Clear(ctx)
	third := New(WithStore(NewURLStore(URL)))
	third.Restore(ctx)
	assert.Equal(t, "", third.Get())
}

func TestSession_RestoreOnce(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore("seed")
	s := New(WithStore(store))
	s.Restore(ctx)
	assert.Equal(t, "seed", s.Get())

	require.NoError(t, store.Save(ctx, "changed-elsewhere"))
	s.Restore(ctx)
	assert.Equal(t, "seed", s.Get())
}

func TestSession_PersistenceFailuresAreWarnings(t *testing.T) {
	ctx := context.Background()
	buf := &bytes.Buffer{}
	s := New(WithStore(failingStore{}), WithLogger(log.New(buf, "", 0)))

	s.Restore(ctx)
	s.Set(ctx, "abc")
	assert.Equal(t, "abc", s.Get())
	s.Clear(ctx)
	assert.Equal(t, "", s.Get())

	output := buf.String()
	assert.Contains(t, output, "[portal/session] warning: unable to restore credential: disk gone")
	assert.Contains(t, output, "unable to persist credential: disk full")
	assert.Contains(t, output, "unable to remove persisted credential: read only")
}

func TestSession_Token(t *testing.T) {
	ctx := context.Background()
	s := New()
	_, err := s.Token()
	assert.ErrorIs(t, err, ErrNoCredential)

	s.Set(ctx, "abc123")
	token, err := s.Token()
	require.NoError(t, err)
	assert.Equal(t, "abc123", token.AccessToken)
	assert.Equal(t, "Bearer", token.Type())
}
