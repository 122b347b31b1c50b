package events

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"
)

// Topic identifies a class of notifications on the bus.
type Topic string

const (
	// TopicNutritionDataChanged is published when daily nutrition records
	// change in the external store. It carries no payload.
	TopicNutritionDataChanged Topic = "nutrition_data_changed"
	// TopicGoalsChanged is published when the goal list itself changed.
	TopicGoalsChanged Topic = "goals_changed"
)

func (t Topic) String() string {
	return string(t)
}

// Handler is invoked for every published notification on a subscribed topic.
type Handler func(ctx context.Context)

// Bus is an in-process publish/subscribe bus. Subscribers get an explicit
// Subscription handle and must Unsubscribe when done.
type Bus struct {
	mutex  sync.RWMutex
	nextID int
	subs   map[Topic]map[int]Handler
}

func NewBus() *Bus {
	return &Bus{
		subs: map[Topic]map[int]Handler{},
	}
}

type Subscription struct {
	bus   *Bus
	topic Topic
	id    int
}

func (b *Bus) Subscribe(topic Topic, handler Handler) *Subscription {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	b.nextID++
	if b.subs[topic] == nil {
		b.subs[topic] = map[int]Handler{}
	}
	b.subs[topic][b.nextID] = handler

	return &Subscription{
		bus:   b,
		topic: topic,
		id:    b.nextID,
	}
}

func (s *Subscription) Unsubscribe() {
	if s == nil || s.bus == nil {
		return
	}
	s.bus.mutex.Lock()
	defer s.bus.mutex.Unlock()
	delete(s.bus.subs[s.topic], s.id)
}

// Publish invokes all handlers subscribed to the topic, synchronously,
// in unspecified order.
func (b *Bus) Publish(ctx context.Context, topic Topic) {
	b.mutex.RLock()
	handlers := make([]Handler, 0, len(b.subs[topic]))
	for _, h := range b.subs[topic] {
		handlers = append(handlers, h)
	}
	b.mutex.RUnlock()

	log.Tracef("bus: publishing [%s] to %d subscribers", topic, len(handlers))

	for _, h := range handlers {
		h(ctx)
	}
}
