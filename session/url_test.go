package session

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
)

func TestURLStore(t *testing.T) {
	ctx := context.Background()
	URL := "mem://localhost/portal/url/session.json"
	store := NewURLStore(URL)

	token, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "", token)

	require.NoError(t, store.Save(ctx, "abc123"))
	data, err := afs.New().DownloadWithURL(ctx, URL)
	require.NoError(t, err)
	assert.JSONEq(t, `{"token":"abc123"}`, string(data))

	token, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "abc123", token)

	require.NoError(t, store.Delete(ctx))
	require.NoError(t, store.Delete(ctx))
	token, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "", token)
}

func TestURLStore_Corrupted(t *testing.T) {
	ctx := context.Background()
	URL := "mem://localhost/portal/corrupted/session.json"
	fs := afs.New()
	require.NoError(t, fs.Upload(ctx, URL, fileMode, strings.NewReader("{not json")))
	_, err := NewURLStore(URL).Load(ctx)
	assert.Error(t, err)
}
