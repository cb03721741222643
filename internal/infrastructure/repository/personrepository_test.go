package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/libdough/openvolunteer/internal/domain/org"
	"github.com/libdough/openvolunteer/internal/domain/person"
	"github.com/libdough/openvolunteer/internal/shared/errors"
)

func createTestPerson(t *testing.T, repo *PersonRepository, name string) *person.Person {
	t.Helper()
	p, err := person.NewPerson(name, name+"@example.org", "", map[string]any{"discord": "vol#1234"})
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), p))
	return p
}

func TestPersonRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPersonRepository(db)
	ctx := context.Background()

	p := createTestPerson(t, repo, "Jamie Rivera")

	t.Run("round trips attributes", func(t *testing.T) {
		got, err := repo.GetByID(ctx, p.ID())
		require.NoError(t, err)
		assert.Equal(t, "Jamie Rivera", got.FullName())
		assert.Equal(t, "vol#1234", got.Attribute("discord"))
	})

	t.Run("linking to an org twice is a no-op", func(t *testing.T) {
		require.NoError(t, repo.LinkToOrg(ctx, p.ID(), "org-1", "member"))
		require.NoError(t, repo.LinkToOrg(ctx, p.ID(), "org-1", "member"))
	})

	t.Run("unknown person is not found", func(t *testing.T) {
		_, err := repo.GetByID(ctx, "missing")
		assert.True(t, errors.IsNotFoundError(err))
	})
}

func TestPersonRepository_ListWithTag(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPersonRepository(db)
	tagRepo := NewTagRepository(db)
	ctx := context.Background()

	tagged := createTestPerson(t, repo, "Jamie Rivera")
	untagged := createTestPerson(t, repo, "Sam Okafor")
	outsider := createTestPerson(t, repo, "Riley Chen")

	require.NoError(t, repo.LinkToOrg(ctx, tagged.ID(), "org-1", "member"))
	require.NoError(t, repo.LinkToOrg(ctx, untagged.ID(), "org-1", "member"))
	// outsider carries the tag but is not an org member

	tag, err := tagRepo.GetOrCreatePreferringOrg(ctx, "needs-intro", "org-1")
	require.NoError(t, err)
	require.NoError(t, tagRepo.Attach(ctx, tagged.ID(), tag.ID()))
	require.NoError(t, tagRepo.Attach(ctx, outsider.ID(), tag.ID()))

	t.Run("returns only tagged org members", func(t *testing.T) {
		got, err := repo.ListWithTag(ctx, "needs-intro", "org-1", 0)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, tagged.ID(), got[0].ID())
	})

	t.Run("a global tag also matches", func(t *testing.T) {
		global, err := person.NewTag("volunteer", nil, "")
		require.NoError(t, err)
		require.NoError(t, db.Create(NewTagRepository(db).mapper.ToModel(global)).Error)
		require.NoError(t, tagRepo.Attach(ctx, untagged.ID(), global.ID()))

		got, err := repo.ListWithTag(ctx, "volunteer", "org-1", 0)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, untagged.ID(), got[0].ID())
	})

	t.Run("limit caps the result", func(t *testing.T) {
		require.NoError(t, tagRepo.Attach(ctx, untagged.ID(), tag.ID()))

		got, err := repo.ListWithTag(ctx, "needs-intro", "org-1", 1)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})
}

func TestTagRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTagRepository(db)
	ctx := context.Background()

	t.Run("creates an org scoped tag when none exists", func(t *testing.T) {
		tag, err := repo.GetOrCreatePreferringOrg(ctx, "no-show", "org-1")
		require.NoError(t, err)
		require.NotNil(t, tag.OrgID())
		assert.Equal(t, "org-1", *tag.OrgID())

		again, err := repo.GetOrCreatePreferringOrg(ctx, "no-show", "org-1")
		require.NoError(t, err)
		assert.Equal(t, tag.ID(), again.ID())
	})

	t.Run("an org scoped tag shadows the global one", func(t *testing.T) {
		global, err := person.NewTag("confirmed", nil, "")
		require.NoError(t, err)
		require.NoError(t, db.Create(repo.mapper.ToModel(global)).Error)

		scoped, err := person.NewTag("confirmed", strPtr("org-1"), "green")
		require.NoError(t, err)
		require.NoError(t, db.Create(repo.mapper.ToModel(scoped)).Error)

		got, err := repo.GetPreferringOrg(ctx, "confirmed", "org-1")
		require.NoError(t, err)
		assert.Equal(t, scoped.ID(), got.ID())

		got, err = repo.GetPreferringOrg(ctx, "confirmed", "org-2")
		require.NoError(t, err)
		assert.Equal(t, global.ID(), got.ID())
	})

	t.Run("missing tag is not found", func(t *testing.T) {
		_, err := repo.GetPreferringOrg(ctx, "missing", "org-1")
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("attach and detach are idempotent", func(t *testing.T) {
		tag, err := repo.GetOrCreatePreferringOrg(ctx, "called", "org-1")
		require.NoError(t, err)

		require.NoError(t, repo.Attach(ctx, "p-1", tag.ID()))
		require.NoError(t, repo.Attach(ctx, "p-1", tag.ID()))

		attached, err := repo.IsAttached(ctx, "p-1", tag.ID())
		require.NoError(t, err)
		assert.True(t, attached)

		require.NoError(t, repo.Detach(ctx, "p-1", tag.ID()))
		require.NoError(t, repo.Detach(ctx, "p-1", tag.ID()))

		attached, err = repo.IsAttached(ctx, "p-1", tag.ID())
		require.NoError(t, err)
		assert.False(t, attached)
	})
}

func TestOrganizationRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrganizationRepository(db)
	ctx := context.Background()

	save := func(name, slug string) {
		o, err := org.NewOrganization(name, slug)
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, o))
	}
	save("Sunrise Valley", "sunrise-valley")
	save("Riverside Mutual Aid", "riverside")

	t.Run("finds orgs by slug", func(t *testing.T) {
		got, err := repo.GetBySlug(ctx, "riverside")
		require.NoError(t, err)
		assert.Equal(t, "Riverside Mutual Aid", got.Name())

		_, err = repo.GetBySlug(ctx, "missing")
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("lists by slugs", func(t *testing.T) {
		got, err := repo.ListBySlugs(ctx, []string{"sunrise-valley", "missing"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Sunrise Valley", got[0].Name())
	})

	t.Run("lists all", func(t *testing.T) {
		got, err := repo.ListAll(ctx)
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})
}
