package notify

import (
	"context"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const changesChannel = "geofence_alerts:changes"

// Feed сообщает об изменениях журнала алертов по опекунам
type Feed interface {
	Publish(ctx context.Context, caregiverID string) error
	// Listen возвращает канал идентификаторов опекунов, закрывается по отмене ctx
	Listen(ctx context.Context) <-chan string
}

// RedisFeed - лента изменений поверх Redis Pub/Sub, общая для всех экземпляров сервиса
type RedisFeed struct {
	client *redis.Client
	logger *logrus.Logger
}

func NewRedisFeed(client *redis.Client, logger *logrus.Logger) *RedisFeed {
	return &RedisFeed{client: client, logger: logger}
}

func (f *RedisFeed) Publish(ctx context.Context, caregiverID string) error {
	if err := f.client.Publish(ctx, changesChannel, caregiverID).Err(); err != nil {
		return fmt.Errorf("failed to publish alert change: %w", err)
	}
	return nil
}

func (f *RedisFeed) Listen(ctx context.Context) <-chan string {
	out := make(chan string, 64)
	pubsub := f.client.Subscribe(ctx, changesChannel)

	go func() {
		defer close(out)
		defer pubsub.Close()

		messages := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-messages:
				if !ok {
					f.logger.Warn("Alert change subscription closed")
					return
				}
				select {
				case out <- msg.Payload:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out
}

// LocalFeed - лента изменений внутри процесса, для запуска одним экземпляром без Redis Pub/Sub
type LocalFeed struct {
	mu sync.Mutex
	// канал слушателя -> Done его контекста
	listeners map[chan string]<-chan struct{}
}

func NewLocalFeed() *LocalFeed {
	return &LocalFeed{listeners: make(map[chan string]<-chan struct{})}
}

// Publish ждёт место в буфере каждого живого слушателя.
// Отменённый слушатель пропускается, даже если ещё не успел отписаться.
func (f *LocalFeed) Publish(ctx context.Context, caregiverID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for ch, done := range f.listeners {
		select {
		case ch <- caregiverID:
		case <-done:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

func (f *LocalFeed) Listen(ctx context.Context) <-chan string {
	ch := make(chan string, 64)

	f.mu.Lock()
	f.listeners[ch] = ctx.Done()
	f.mu.Unlock()

	go func() {
		<-ctx.Done()
		f.mu.Lock()
		delete(f.listeners, ch)
		close(ch)
		f.mu.Unlock()
	}()

	return ch
}
