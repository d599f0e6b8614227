package sqlite_test

import (
	"context"
	"database/sql"
	"strings"
	"sync"
	"testing"
	"time"

	"linktrack/internal/database"
	"linktrack/internal/domain"
	"linktrack/internal/repository/sqlite"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.RunMigrations(db))
	return db
}

func makeCampaign(t *testing.T, ownerID, originalURL string) []*domain.TrackingLink {
	t.Helper()

	links := make([]*domain.TrackingLink, 0, len(domain.CampaignPlatforms))
	for _, platform := range domain.CampaignPlatforms {
		code, err := domain.GenerateShortCode()
		require.NoError(t, err)
		links = append(links, domain.NewTrackingLink(code, originalURL, ownerID, platform))
	}
	return links
}

func TestCreateBatch_RoundTrip(t *testing.T) {
	repo := sqlite.NewLinkRepository(setupTestDB(t))
	ctx := context.Background()

	links := makeCampaign(t, "owner-1", "https://myshop.kz/sale")
	require.NoError(t, repo.CreateBatch(ctx, links))

	for _, want := range links {
		byCode, err := repo.FindByShortCode(ctx, want.ShortCode)
		require.NoError(t, err)
		assert.Equal(t, want.ID, byCode.ID)
		assert.Equal(t, want.OriginalURL, byCode.OriginalURL)
		assert.Equal(t, want.Platform, byCode.Platform)
		assert.Equal(t, want.OwnerID, byCode.OwnerID)
		assert.Equal(t, int64(0), byCode.ClickCount)
		assert.Nil(t, byCode.LastClickAt)
		assert.Equal(t, want.CreatedAt.UnixMilli(), byCode.CreatedAt.UnixMilli())

		byID, err := repo.FindByID(ctx, want.OwnerID, want.ID)
		require.NoError(t, err)
		assert.Equal(t, byCode, byID)
	}
}

func TestCreateBatch_DuplicateCode_RollsBackWholeBatch(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewLinkRepository(db)
	ctx := context.Background()

	existing := makeCampaign(t, "owner-1", "https://example.com")
	require.NoError(t, repo.CreateBatch(ctx, existing))

	// Second campaign reuses one code already in the store.
	conflicting := makeCampaign(t, "owner-2", "https://other.example.com")
	conflicting[2].ShortCode = existing[0].ShortCode
	conflicting[2].ID = domain.LinkID(existing[0].ShortCode, conflicting[2].Platform)

	err := repo.CreateBatch(ctx, conflicting)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "UNIQUE constraint failed"))

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM links WHERE owner_id = ?", "owner-2").Scan(&count))
	assert.Equal(t, 0, count, "failed batch must leave no partial rows")
}

func TestFindByShortCode_Unknown_ReturnsNotFound(t *testing.T) {
	repo := sqlite.NewLinkRepository(setupTestDB(t))

	link, err := repo.FindByShortCode(context.Background(), "zzzzzzzz")

	assert.Nil(t, link)
	assert.ErrorIs(t, err, domain.ErrLinkNotFound)
}

func TestFindByID_WrongOwner_ReturnsNotFound(t *testing.T) {
	repo := sqlite.NewLinkRepository(setupTestDB(t))
	ctx := context.Background()

	links := makeCampaign(t, "owner-1", "https://example.com")
	require.NoError(t, repo.CreateBatch(ctx, links))

	link, err := repo.FindByID(ctx, "owner-2", links[0].ID)

	assert.Nil(t, link)
	assert.ErrorIs(t, err, domain.ErrLinkNotFound)
}

func TestListByOwner_NewestFirstAndScoped(t *testing.T) {
	repo := sqlite.NewLinkRepository(setupTestDB(t))
	ctx := context.Background()

	older := makeCampaign(t, "owner-1", "https://example.com/first")
	for _, l := range older {
		l.CreatedAt = time.Now().UTC().Add(-time.Hour)
	}
	newer := makeCampaign(t, "owner-1", "https://example.com/second")
	other := makeCampaign(t, "owner-2", gofakeit.URL())

	require.NoError(t, repo.CreateBatch(ctx, older))
	require.NoError(t, repo.CreateBatch(ctx, newer))
	require.NoError(t, repo.CreateBatch(ctx, other))

	got, err := repo.ListByOwner(ctx, "owner-1")
	require.NoError(t, err)
	require.Len(t, got, 8)

	for _, link := range got[:4] {
		assert.Equal(t, "https://example.com/second", link.OriginalURL)
	}
	for _, link := range got[4:] {
		assert.Equal(t, "https://example.com/first", link.OriginalURL)
	}
}

func TestListByOwner_NoLinks_ReturnsEmpty(t *testing.T) {
	repo := sqlite.NewLinkRepository(setupTestDB(t))

	got, err := repo.ListByOwner(context.Background(), "owner-none")

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestIncrementClicks_CountsAndStampsLastClick(t *testing.T) {
	repo := sqlite.NewLinkRepository(setupTestDB(t))
	ctx := context.Background()

	links := makeCampaign(t, "owner-1", "https://example.com")
	require.NoError(t, repo.CreateBatch(ctx, links))

	code := links[0].ShortCode
	clickedAt := time.Now().UTC()

	require.NoError(t, repo.IncrementClicks(ctx, code, clickedAt))
	require.NoError(t, repo.IncrementClicks(ctx, code, clickedAt.Add(time.Second)))

	link, err := repo.FindByShortCode(ctx, code)
	require.NoError(t, err)
	assert.Equal(t, int64(2), link.ClickCount)
	require.NotNil(t, link.LastClickAt)
	assert.Equal(t, clickedAt.Add(time.Second).UnixMilli(), link.LastClickAt.UnixMilli())

	// Sibling links in the same campaign are untouched.
	sibling, err := repo.FindByShortCode(ctx, links[1].ShortCode)
	require.NoError(t, err)
	assert.Equal(t, int64(0), sibling.ClickCount)
}

func TestIncrementClicks_UnknownCode_ReturnsNotFound(t *testing.T) {
	repo := sqlite.NewLinkRepository(setupTestDB(t))

	err := repo.IncrementClicks(context.Background(), "zzzzzzzz", time.Now())

	assert.ErrorIs(t, err, domain.ErrLinkNotFound)
}

func TestIncrementClicks_ConcurrentClicksAllCounted(t *testing.T) {
	repo := sqlite.NewLinkRepository(setupTestDB(t))
	ctx := context.Background()

	links := makeCampaign(t, "owner-1", "https://example.com")
	require.NoError(t, repo.CreateBatch(ctx, links))
	code := links[0].ShortCode

	const clicks = 50
	var wg sync.WaitGroup
	for i := 0; i < clicks; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, repo.IncrementClicks(ctx, code, time.Now().UTC()))
		}()
	}
	wg.Wait()

	link, err := repo.FindByShortCode(ctx, code)
	require.NoError(t, err)
	assert.Equal(t, int64(clicks), link.ClickCount)
}

func TestDelete_RemovesBothViews(t *testing.T) {
	repo := sqlite.NewLinkRepository(setupTestDB(t))
	ctx := context.Background()

	links := makeCampaign(t, "owner-1", "https://example.com")
	require.NoError(t, repo.CreateBatch(ctx, links))
	target := links[0]

	require.NoError(t, repo.Delete(ctx, "owner-1", target.ID))

	_, err := repo.FindByID(ctx, "owner-1", target.ID)
	assert.ErrorIs(t, err, domain.ErrLinkNotFound)

	_, err = repo.FindByShortCode(ctx, target.ShortCode)
	assert.ErrorIs(t, err, domain.ErrLinkNotFound)

	// Sibling links survive.
	_, err = repo.FindByShortCode(ctx, links[1].ShortCode)
	assert.NoError(t, err)
}

func TestDelete_WrongOwner_ReturnsNotFound(t *testing.T) {
	repo := sqlite.NewLinkRepository(setupTestDB(t))
	ctx := context.Background()

	links := makeCampaign(t, "owner-1", "https://example.com")
	require.NoError(t, repo.CreateBatch(ctx, links))

	err := repo.Delete(ctx, "owner-2", links[0].ID)
	assert.ErrorIs(t, err, domain.ErrLinkNotFound)

	// Still resolvable.
	_, err = repo.FindByShortCode(ctx, links[0].ShortCode)
	assert.NoError(t, err)
}

func TestCodeExists(t *testing.T) {
	repo := sqlite.NewLinkRepository(setupTestDB(t))
	ctx := context.Background()

	links := makeCampaign(t, "owner-1", "https://example.com")
	require.NoError(t, repo.CreateBatch(ctx, links))

	taken, err := repo.CodeExists(ctx, links[0].ShortCode)
	require.NoError(t, err)
	assert.True(t, taken)

	free, err := repo.CodeExists(ctx, "zzzzzzzz")
	require.NoError(t, err)
	assert.False(t, free)
}
