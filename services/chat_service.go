//go:generate go run go.uber.org/mock/mockgen -source=chat_service.go -destination=../mocks/mock_chat_service.go -package=mocks
package services

import (
	"context"
	"recipe-live/contract"
	"recipe-live/domain/chat"
)

type IChatService interface {
	Join(ctx context.Context, conn contract.Connection) error
	PostMessage(ctx context.Context, connID string, message chat.Message) error
	Typing(ctx context.Context, connID string, typing chat.Typing) error
	Leave(ctx context.Context, connID string) error
	Stats(ctx context.Context) (chat.RoomStats, error)
}

// ChatService is the entry point of the transports into the live chat.
type ChatService struct {
	hub contract.IHub
}

func NewChatService(hub contract.IHub) *ChatService {
	return &ChatService{hub: hub}
}

func (s *ChatService) Join(ctx context.Context, conn contract.Connection) error {
	return s.hub.Open(ctx, conn)
}

func (s *ChatService) PostMessage(ctx context.Context, connID string, message chat.Message) error {
	return s.hub.OnMessage(ctx, connID, message)
}

func (s *ChatService) Typing(ctx context.Context, connID string, typing chat.Typing) error {
	return s.hub.OnTyping(ctx, connID, typing)
}

func (s *ChatService) Leave(ctx context.Context, connID string) error {
	return s.hub.OnDisconnect(ctx, connID)
}

func (s *ChatService) Stats(ctx context.Context) (chat.RoomStats, error) {
	return s.hub.Stats(ctx)
}
