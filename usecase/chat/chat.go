package chat

import (
	"context"

	"go.uber.org/zap"

	"github.com/atharsaifi001-eng/NEAT-RE/domain"
	"github.com/atharsaifi001-eng/NEAT-RE/repository"
	"github.com/atharsaifi001-eng/NEAT-RE/usecase"
)

// Sender defaults used when nobody is signed in.
const (
	AnonymousSender = "anon"
	AnonymousName   = "You"
)

type MessageInput struct {
	From string `json:"from"`
	Name string `json:"name"`
	Text string `json:"text" validate:"required"`
}

type roomInput struct {
	RoomID string `validate:"required"`
}

type UseCase struct {
	chats  repository.ChatRepository
	rt     usecase.Runtime
	logger *zap.Logger
}

func New(chats repository.ChatRepository, rt usecase.Runtime, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{chats: chats, rt: rt, logger: logger}
}

// GetChat returns the room history in send order. Unknown rooms are empty.
func (uc *UseCase) GetChat(ctx context.Context, roomID string) ([]domain.ChatMessage, error) {
	if err := uc.rt.Simulate(ctx, usecase.OpGetChat); err != nil {
		return nil, err
	}
	return uc.chats.Messages(ctx, roomID)
}

// SendMessage appends an unread message to the room, creating the room on first use.
func (uc *UseCase) SendMessage(ctx context.Context, roomID string, in MessageInput) (bool, error) {
	if err := usecase.Validate(roomInput{RoomID: roomID}, "invalid room"); err != nil {
		return false, err
	}
	if err := usecase.Validate(in, "invalid message"); err != nil {
		return false, err
	}
	if in.From == "" {
		in.From = AnonymousSender
	}
	if in.Name == "" {
		in.Name = AnonymousName
	}
	if err := uc.rt.Simulate(ctx, usecase.OpSendMessage); err != nil {
		return false, err
	}

	msg, err := uc.chats.Append(ctx, roomID, &domain.ChatMessage{
		From: in.From,
		Name: in.Name,
		Text: in.Text,
		At:   uc.rt.Now(),
		Read: false,
	})
	if err != nil {
		return false, err
	}
	uc.logger.Debug("message sent", zap.String("room_id", roomID), zap.String("message_id", msg.ID))
	return true, nil
}
