package chat

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atharsaifi001-eng/NEAT-RE/domain"
	"github.com/atharsaifi001-eng/NEAT-RE/pkg/idgen"
	"github.com/atharsaifi001-eng/NEAT-RE/repository/memory"
	"github.com/atharsaifi001-eng/NEAT-RE/usecase"
	"github.com/atharsaifi001-eng/NEAT-RE/usecase/usecasetest"
)

func newTestChat(t *testing.T) *UseCase {
	t.Helper()
	store := memory.NewStore(idgen.NewSequence())
	clock := usecasetest.NewClock(time.Date(2025, 8, 20, 9, 0, 0, 0, time.UTC))
	return New(memory.NewChatRepository(store), clock.Runtime(usecase.PolicySilent), nil)
}

func TestGetChat_UnknownRoomIsEmpty(t *testing.T) {
	uc := newTestChat(t)

	msgs, err := uc.GetChat(context.Background(), "ROOM-nowhere")
	require.NoError(t, err)
	assert.NotNil(t, msgs)
	assert.Empty(t, msgs)
}

func TestSendMessage_AppendsInOrder(t *testing.T) {
	uc := newTestChat(t)
	ctx := context.Background()
	room := domain.RoomForListing("L-1001")

	ok, err := uc.SendMessage(ctx, room, MessageInput{From: "U-1", Name: "Asha", Text: "Is it available?"})
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = uc.SendMessage(ctx, room, MessageInput{Text: "Yes"})
	require.NoError(t, err)
	require.True(t, ok)

	msgs, err := uc.GetChat(ctx, room)
	require.NoError(t, err)
	require.Len(t, msgs, 2)

	assert.Equal(t, "Is it available?", msgs[0].Text)
	assert.Equal(t, "U-1", msgs[0].From)
	assert.Equal(t, "Yes", msgs[1].Text)
	assert.Equal(t, AnonymousSender, msgs[1].From)
	assert.Equal(t, AnonymousName, msgs[1].Name)
	assert.NotEqual(t, msgs[0].ID, msgs[1].ID)
	assert.True(t, msgs[1].At.After(msgs[0].At))
	for _, m := range msgs {
		assert.False(t, m.Read)
	}
}

func TestSendMessage_RoomsAreIndependent(t *testing.T) {
	uc := newTestChat(t)
	ctx := context.Background()

	_, err := uc.SendMessage(ctx, "ROOM-a", MessageInput{Text: "hello"})
	require.NoError(t, err)

	other, err := uc.GetChat(ctx, "ROOM-b")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestSendMessage_Validation(t *testing.T) {
	uc := newTestChat(t)
	ctx := context.Background()

	_, err := uc.SendMessage(ctx, "", MessageInput{Text: "hi"})
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))

	_, err = uc.SendMessage(ctx, "ROOM-a", MessageInput{})
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))

	msgs, err := uc.GetChat(ctx, "ROOM-a")
	require.NoError(t, err)
	assert.Empty(t, msgs)
}
