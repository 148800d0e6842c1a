//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"recipe-live/domain/chat"
	"recipe-live/moderation"
	"reflect"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// Connection is one live client as seen by the hub.
// Send must not block: it returns false when the outbound queue is full or closed.
type Connection interface {
	ID() string
	User() string
	Send(evt chat.Event) bool
	Close()
}

type IModerator interface {
	Moderate(author, text string) moderation.Result
}

type IHub interface {
	Open(ctx context.Context, conn Connection) error
	OnMessage(ctx context.Context, connID string, message chat.Message) error
	OnTyping(ctx context.Context, connID string, typing chat.Typing) error
	OnDisconnect(ctx context.Context, connID string) error
	Stats(ctx context.Context) (chat.RoomStats, error)
}
