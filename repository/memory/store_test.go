package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atharsaifi001-eng/NEAT-RE/domain"
	"github.com/atharsaifi001-eng/NEAT-RE/pkg/idgen"
)

// fixedGenerator always proposes the same identifier first, then counts.
type fixedGenerator struct {
	seq   *idgen.Sequence
	first string
	used  bool
}

func (g *fixedGenerator) Next(prefix string) string {
	if !g.used {
		g.used = true
		return g.first
	}
	return g.seq.Next(prefix)
}

func TestStore_AssignIDSkipsTakenIdentifiers(t *testing.T) {
	store := NewStore(&fixedGenerator{seq: idgen.NewSequence(), first: "L-1001"})
	Seed(store, time.Now())
	repo := NewListingRepository(store)

	created, err := repo.Create(context.Background(), &domain.Listing{Title: "Flat"})
	require.NoError(t, err)

	assert.Equal(t, "L-1", created.ID)
	assert.Equal(t, 3, store.Stats().Listings)
}

func TestUserRepository_IdentifierIsUnique(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(NewStore(idgen.NewSequence()))

	first, err := repo.Create(ctx, &domain.User{Identifier: "9999999999", Role: domain.RoleBuyer})
	require.NoError(t, err)
	assert.Equal(t, "U-1", first.ID)

	_, err = repo.Create(ctx, &domain.User{Identifier: "9999999999", Role: domain.RoleDealer})
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeConflict))

	found, err := repo.GetByIdentifier(ctx, "9999999999")
	require.NoError(t, err)
	assert.Equal(t, first.ID, found.ID)

	_, err = repo.GetByID(ctx, "U-404")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestListingRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := NewStore(idgen.NewSequence())
	Seed(store, time.Now())
	repo := NewListingRepository(store)

	listings, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, listings, 2)

	listings[0].Title = "mutated"
	listings[0].Media[0].URI = "mutated"

	fresh, err := repo.GetByID(ctx, "L-1001")
	require.NoError(t, err)
	assert.Equal(t, "3 BHK House — Prime Area", fresh.Title)
	assert.NotEqual(t, "mutated", fresh.Media[0].URI)
}

func TestListingRepository_SetBoosted(t *testing.T) {
	ctx := context.Background()
	store := NewStore(idgen.NewSequence())
	Seed(store, time.Now())
	repo := NewListingRepository(store)

	require.NoError(t, repo.SetBoosted(ctx, "L-1002", true))
	l, err := repo.GetByID(ctx, "L-1002")
	require.NoError(t, err)
	assert.True(t, l.Boosted)

	assert.ErrorIs(t, repo.SetBoosted(ctx, "L-404", true), domain.ErrListingNotFound)
}

func TestChatRepository_RoomsAreImplicit(t *testing.T) {
	ctx := context.Background()
	repo := NewChatRepository(NewStore(idgen.NewSequence()))

	msgs, err := repo.Messages(ctx, "ROOM-L-1")
	require.NoError(t, err)
	assert.Empty(t, msgs)
	assert.NotNil(t, msgs)

	_, err = repo.Append(ctx, "ROOM-L-1", &domain.ChatMessage{Text: "hello"})
	require.NoError(t, err)
	_, err = repo.Append(ctx, "ROOM-L-1", &domain.ChatMessage{Text: "still there?"})
	require.NoError(t, err)

	msgs, err = repo.Messages(ctx, "ROOM-L-1")
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "hello", msgs[0].Text)
	assert.Equal(t, "MSG-1", msgs[0].ID)
	assert.Equal(t, "still there?", msgs[1].Text)
}

func TestVisitRepository_CheckInAttachesOnce(t *testing.T) {
	ctx := context.Background()
	repo := NewVisitRepository(NewStore(idgen.NewSequence()))

	visit, err := repo.Create(ctx, &domain.Visit{ListingID: "L-1", UserID: "U-1", Status: domain.VisitScheduled})
	require.NoError(t, err)

	require.NoError(t, repo.AttachCheckIn(ctx, visit.ID, domain.CheckIn{Lat: 28.63, Lng: 77.37}))
	assert.ErrorIs(t, repo.AttachCheckIn(ctx, visit.ID, domain.CheckIn{}), domain.ErrAlreadyCheckedIn)
	assert.ErrorIs(t, repo.AttachCheckIn(ctx, "VISIT-404", domain.CheckIn{}), domain.ErrVisitNotFound)

	stored, err := repo.GetByID(ctx, visit.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.CheckIn)
	assert.Equal(t, 28.63, stored.CheckIn.Lat)
}

func TestPerUserCollections_FilterByOwner(t *testing.T) {
	ctx := context.Background()
	store := NewStore(idgen.NewSequence())
	docs := NewDocumentRepository(store)
	commissions := NewCommissionRepository(store)
	leads := NewLeadRepository(store)

	_, _ = docs.Create(ctx, &domain.Document{UserID: "U-1", DocType: "Aadhaar"})
	_, _ = docs.Create(ctx, &domain.Document{UserID: "U-2", DocType: "PAN"})
	_, _ = commissions.Create(ctx, &domain.Commission{UserID: "U-1", Amount: 50000})
	_, _ = leads.Create(ctx, &domain.Lead{ListingID: "L-1", ToUserID: "U-1"})
	_, _ = leads.Create(ctx, &domain.Lead{ListingID: "L-2", ToUserID: "U-2"})

	userDocs, err := docs.ListByUser(ctx, "U-1")
	require.NoError(t, err)
	assert.Len(t, userDocs, 1)

	userCommissions, err := commissions.ListByUser(ctx, "U-2")
	require.NoError(t, err)
	assert.Empty(t, userCommissions)

	byListing, err := leads.ListByListing(ctx, "L-2")
	require.NoError(t, err)
	require.Len(t, byListing, 1)
	assert.Equal(t, "U-2", byListing[0].ToUserID)
}

func TestSessionRepository_SaveGetExtend(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository(NewStore(nil), time.Minute)

	session := &domain.Session{ID: "S-1", UserID: "U-1"}
	require.NoError(t, repo.Save(ctx, session))
	assert.False(t, session.ExpiresAt.IsZero())

	got, err := repo.Get(ctx, "S-1")
	require.NoError(t, err)
	assert.Equal(t, "U-1", got.UserID)

	require.NoError(t, repo.Extend(ctx, "S-1", 3600))
	require.NoError(t, repo.Delete(ctx, "S-1"))
	_, err = repo.Get(ctx, "S-1")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	assert.ErrorIs(t, repo.Extend(ctx, "S-1", 10), domain.ErrSessionNotFound)
}
