package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atharsaifi001-eng/NEAT-RE/domain"
)

func TestStack_PushThenPopRestores(t *testing.T) {
	st := NewStack(BuyerHome{})

	require.NoError(t, st.Push(Chat{RoomID: "ROOM-L-1", With: "Plot"}))
	assert.True(t, st.CanGoBack())
	assert.Equal(t, NameChat, st.Current().Name())

	assert.True(t, st.Pop())
	assert.Equal(t, []Screen{BuyerHome{}}, st.Entries())
	assert.False(t, st.CanGoBack())
}

func TestStack_PopAtRootIsNoop(t *testing.T) {
	st := NewStack(RoleSelection{})

	assert.False(t, st.Pop())
	assert.Equal(t, 1, st.Len())
	assert.Equal(t, RoleSelection{}, st.Current())
}

func TestStack_ReplaceRootClearsHistory(t *testing.T) {
	st := NewStack(Splash{})
	require.NoError(t, st.ReplaceRoot(RoleSelection{}))
	require.NoError(t, st.Push(Auth{Role: domain.RoleDealer}))
	require.Equal(t, 2, st.Len())

	require.NoError(t, st.ReplaceRoot(DealerHome{}))
	assert.Equal(t, []Screen{DealerHome{}}, st.Entries())
	assert.False(t, st.Pop())
}

func TestStack_RejectsNilScreens(t *testing.T) {
	st := NewStack(nil)
	assert.Equal(t, Splash{}, st.Current())

	assert.ErrorIs(t, st.Push(nil), ErrNilScreen)
	assert.ErrorIs(t, st.ReplaceRoot(nil), ErrNilScreen)
	assert.Equal(t, 1, st.Len())
}

func TestStack_EntriesIsACopy(t *testing.T) {
	st := NewStack(BuyerHome{})
	entries := st.Entries()
	entries[0] = AdminPanel{}

	assert.Equal(t, BuyerHome{}, st.Current())
}

func TestStack_ScreensCarryParameters(t *testing.T) {
	listing := domain.Listing{ID: "L-1001", Title: "House"}
	st := NewStack(BuyerHome{})
	require.NoError(t, st.Push(ListingDetail{Listing: listing}))
	require.NoError(t, st.Push(VisitScheduler{Listing: listing}))

	vs, ok := st.Current().(VisitScheduler)
	require.True(t, ok)
	assert.Equal(t, "L-1001", vs.Listing.ID)

	st.Pop()
	detail, ok := st.Current().(ListingDetail)
	require.True(t, ok)
	assert.Equal(t, "House", detail.Listing.Title)
}

func TestStack_ReplaceTopKeepsDepth(t *testing.T) {
	st := NewStack(BuyerHome{})
	require.NoError(t, st.Push(ListingDetail{Listing: domain.Listing{ID: "L-1", Boosted: false}}))

	require.NoError(t, st.ReplaceTop(ListingDetail{Listing: domain.Listing{ID: "L-1", Boosted: true}}))
	assert.Equal(t, 2, st.Len())
	detail := st.Current().(ListingDetail)
	assert.True(t, detail.Listing.Boosted)
	assert.ErrorIs(t, st.ReplaceTop(nil), ErrNilScreen)
}

func TestHomeFor(t *testing.T) {
	assert.Equal(t, BuyerHome{}, HomeFor(domain.RoleBuyer))
	assert.Equal(t, AdminPanel{}, HomeFor(domain.RoleAdmin))
	for _, role := range []domain.Role{domain.RoleDealer, domain.RoleSeller, domain.RoleAdvocate, domain.RoleLoanAgent, domain.RoleConsultant} {
		assert.Equal(t, DealerHome{}, HomeFor(role), role)
	}
}

func TestFlat(t *testing.T) {
	s, ok := Flat(NamePayouts)
	require.True(t, ok)
	assert.Equal(t, NamePayouts, s.Name())

	_, ok = Flat(NameChat)
	assert.False(t, ok, "chat needs a room")
}

func TestStack_ZeroValueStartsAtSplash(t *testing.T) {
	var st Stack

	assert.Equal(t, Splash{}, st.Current())
	assert.Equal(t, 1, st.Len())
	assert.False(t, st.CanGoBack())
	assert.False(t, st.Pop())

	require.NoError(t, st.Push(RoleSelection{}))
	assert.Equal(t, []Screen{Splash{}, RoleSelection{}}, st.Entries())
	assert.True(t, st.Pop())
	assert.Equal(t, Splash{}, st.Current())
}

func TestStack_ZeroValueReplaceTop(t *testing.T) {
	var st Stack
	require.NoError(t, st.ReplaceTop(RoleSelection{}))
	assert.Equal(t, []Screen{RoleSelection{}}, st.Entries())
}
