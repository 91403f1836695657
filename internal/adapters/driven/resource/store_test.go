package resource

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitepark/citygov-search/internal/core/domain"
)

func writeResource(t *testing.T, docroot, location, content string) {
	t.Helper()
	path := filepath.Join(docroot, location+".json")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoad(t *testing.T) {
	docroot := t.TempDir()
	writeResource(t, docroot, "/orga.php", `{
		"url": "/orga.php",
		"id": "12",
		"objectType": "citygovOrganisation",
		"locale": "de"
	}`)

	store := NewStore(docroot)
	res, err := store.Load(context.Background(), "/orga.php", "de")
	require.NoError(t, err)

	assert.Equal(t, "/orga.php", res.Location)
	assert.Equal(t, "12", res.ID)
	assert.Equal(t, domain.TypeOrganisation, res.ObjectType)
}

func TestLoad_FillsLocation(t *testing.T) {
	docroot := t.TempDir()
	writeResource(t, docroot, "/orga.php", `{"id": "12"}`)

	store := NewStore(docroot)
	res, err := store.Load(context.Background(), "/orga.php", "")
	require.NoError(t, err)
	assert.Equal(t, "/orga.php", res.Location)
}

func TestLoad_NotFound(t *testing.T) {
	store := NewStore(t.TempDir())

	_, err := store.Load(context.Background(), "/missing.php", "")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLoad_InvalidResource(t *testing.T) {
	docroot := t.TempDir()
	writeResource(t, docroot, "/broken.php", `{`)

	store := NewStore(docroot)
	_, err := store.Load(context.Background(), "/broken.php", "")
	assert.ErrorIs(t, err, domain.ErrInvalidResource)
}

func TestLoad_Cache(t *testing.T) {
	docroot := t.TempDir()
	writeResource(t, docroot, "/orga.php", `{"id": "12"}`)

	store := NewStore(docroot)
	first, err := store.Load(context.Background(), "/orga.php", "")
	require.NoError(t, err)

	// remove the file; the cache keeps serving the resource
	require.NoError(t, os.Remove(filepath.Join(docroot, "orga.php.json")))
	second, err := store.Load(context.Background(), "/orga.php", "")
	require.NoError(t, err)
	assert.Same(t, first, second)

	store.Cleanup()
	_, err = store.Load(context.Background(), "/orga.php", "")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLoadPrimaryPath(t *testing.T) {
	docroot := t.TempDir()
	writeResource(t, docroot, "/root.php", `{"id": "12"}`)
	writeResource(t, docroot, "/orga.php", `{
		"id": "123",
		"base": {"trees": {"citygovOrganisation": {
			"parents": {"12": {"url": "/root.php", "isPrimary": true}}
		}}}
	}`)

	store := NewStore(docroot)
	path, err := store.LoadPrimaryPath(context.Background(), "/orga.php")
	require.NoError(t, err)

	require.Len(t, path, 2)
	assert.Equal(t, "12", path[0].ID)
	assert.Equal(t, "123", path[1].ID)
}

func TestLoadPrimaryPath_SoleParentCountsAsPrimary(t *testing.T) {
	docroot := t.TempDir()
	writeResource(t, docroot, "/root.php", `{"id": "12"}`)
	writeResource(t, docroot, "/orga.php", `{
		"id": "123",
		"base": {"trees": {"citygovOrganisation": {
			"parents": {"12": {"url": "/root.php"}}
		}}}
	}`)

	store := NewStore(docroot)
	path, err := store.LoadPrimaryPath(context.Background(), "/orga.php")
	require.NoError(t, err)
	require.Len(t, path, 2)
	assert.Equal(t, "12", path[0].ID)
}

func TestLoadPrimaryPath_Root(t *testing.T) {
	docroot := t.TempDir()
	writeResource(t, docroot, "/root.php", `{"id": "12"}`)

	store := NewStore(docroot)
	path, err := store.LoadPrimaryPath(context.Background(), "/root.php")
	require.NoError(t, err)
	require.Len(t, path, 1)
	assert.Equal(t, "12", path[0].ID)
}

func TestLoadPrimaryPath_Cycle(t *testing.T) {
	docroot := t.TempDir()
	writeResource(t, docroot, "/a.php", `{
		"id": "1",
		"base": {"trees": {"citygovOrganisation": {
			"parents": {"2": {"url": "/b.php", "isPrimary": true}}
		}}}
	}`)
	writeResource(t, docroot, "/b.php", `{
		"id": "2",
		"base": {"trees": {"citygovOrganisation": {
			"parents": {"1": {"url": "/a.php", "isPrimary": true}}
		}}}
	}`)

	store := NewStore(docroot)
	_, err := store.LoadPrimaryPath(context.Background(), "/a.php")
	assert.ErrorIs(t, err, domain.ErrHierarchyCycle)
}

func TestResolvePath_Traversal(t *testing.T) {
	store := NewStore("/var/docroot")
	assert.Equal(t, filepath.Join("/var/docroot", "etc/passwd.json"), store.resolvePath("/../../etc/passwd"))
}
