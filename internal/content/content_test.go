package content

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aicloudmania.dev/internal/models"
)

func TestDefaultContentIsValid(t *testing.T) {
	site := Default()
	require.NoError(t, Validate(site))

	assert.Len(t, site.Services, 8)
	assert.Len(t, site.Technologies, 16)
	assert.Len(t, site.About.Team, 4)
	assert.Len(t, site.Projects, 4)
	assert.Len(t, site.Contact.Services, 8)
	assert.Len(t, site.Contact.Budgets, 5)
	assert.Equal(t, models.CategoryAll, site.Categories[0].ID)
}

func TestServiceOptionsMatchOfferings(t *testing.T) {
	site := Default()
	var offerings, options []string
	for _, s := range site.Services {
		offerings = append(offerings, s.ID)
	}
	for _, o := range site.Contact.Services {
		options = append(options, o.Value)
	}
	if diff := cmp.Diff(offerings, options); diff != "" {
		t.Fatalf("contact service options drifted from offerings (-offerings +options):\n%s", diff)
	}
}

func TestMarshalOutputParses(t *testing.T) {
	data, err := Marshal(Default())
	require.NoError(t, err)

	site, err := Parse(data)
	require.NoError(t, err)
	if diff := cmp.Diff(Default(), site); diff != "" {
		t.Fatalf("content changed after YAML export (-want +got):\n%s", diff)
	}
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte("company:\n  name: X\n  slogan: nope\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "slogan")
}

func TestParseRejectsEmpty(t *testing.T) {
	_, err := Parse(nil)
	require.Error(t, err)
}

func TestValidateRejectsUnknownTechnologyCategory(t *testing.T) {
	site := Default()
	site.Technologies = append(site.Technologies, models.Technology{Name: "COBOL", Category: "mainframe"})

	err := Validate(site)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"COBOL"`)
}

func TestValidateRejectsDuplicateBudget(t *testing.T) {
	site := Default()
	site.Contact.Budgets = append(site.Contact.Budgets, models.Option{Value: "under-50k", Label: "Again"})
	require.Error(t, Validate(site))
}

func writeContent(t *testing.T, path, company string) {
	t.Helper()
	site := Default()
	site.Company.Name = company
	data, err := Marshal(site)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o600))
}

func TestStoreReloadKeepsPreviousOnFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	writeContent(t, path, "First Co")

	store, err := NewStore(path)
	require.NoError(t, err)
	assert.Equal(t, "First Co", store.Get().Company.Name)

	require.NoError(t, os.WriteFile(path, []byte("company: [broken"), 0o600))
	require.Error(t, store.Reload())
	assert.Equal(t, "First Co", store.Get().Company.Name)

	writeContent(t, path, "Second Co")
	require.NoError(t, store.Reload())
	assert.Equal(t, "Second Co", store.Get().Company.Name)
}

func TestStoreWithoutPathServesDefaults(t *testing.T) {
	store, err := NewStore("")
	require.NoError(t, err)
	assert.Equal(t, "AiCloud Mania", store.Get().Company.Name)
	assert.NoError(t, store.Reload())
	assert.NoError(t, store.Watch(context.Background()))
}

func TestStoreWatchPicksUpWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	writeContent(t, path, "Before")

	store, err := NewStore(path)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- store.Watch(ctx) }()

	// Give the watcher time to register before the write.
	time.Sleep(100 * time.Millisecond)
	writeContent(t, path, "After")

	assert.Eventually(t, func() bool {
		return store.Get().Company.Name == "After"
	}, 3*time.Second, 20*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}
