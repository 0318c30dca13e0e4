package usecase

import "context"

// EventProducer публикует события об изменении состояния витрины.
// Публикация best-effort: отказ брокера логируется, но не проваливает мутацию.
type EventProducer interface {
	WriteEvent(ctx context.Context, req *WriteEventReq) error
}
