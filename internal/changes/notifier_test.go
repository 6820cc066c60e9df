package changes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotifier_DeliversInSubscriptionOrder(t *testing.T) {
	n := NewNotifier()

	var got []string
	n.Subscribe(TopicAuth, func(e Event) { got = append(got, "first") })
	n.Subscribe(TopicAuth, func(e Event) { got = append(got, "second") })

	n.Publish(Event{Topic: TopicAuth})

	assert.Equal(t, []string{"first", "second"}, got)
}

func TestNotifier_FiltersByTopic(t *testing.T) {
	n := NewNotifier()

	var auth, favs int
	n.Subscribe(TopicAuth, func(e Event) { auth++ })
	n.Subscribe(TopicFavorites, func(e Event) { favs++ })

	n.Publish(Event{Topic: TopicFavorites, Key: "favorites"})
	n.Publish(Event{Topic: TopicFavorites, Key: "favorites"})

	assert.Equal(t, 0, auth)
	assert.Equal(t, 2, favs)
}

func TestNotifier_PublishIsSynchronous(t *testing.T) {
	n := NewNotifier()

	delivered := false
	n.Subscribe(TopicStorage, func(e Event) { delivered = true })
	n.Publish(Event{Topic: TopicStorage, Key: "tg_logged_in"})

	assert.True(t, delivered, "handler must run before Publish returns")
}

func TestNotifier_Unsubscribe(t *testing.T) {
	n := NewNotifier()

	var count int
	id := n.Subscribe(TopicAuth, func(e Event) { count++ })
	n.Publish(Event{Topic: TopicAuth})
	n.Unsubscribe(id)
	n.Publish(Event{Topic: TopicAuth})

	assert.Equal(t, 1, count)
}

func TestNotifier_EventCarriesKeyAndOrigin(t *testing.T) {
	n := NewNotifier()

	var got Event
	n.Subscribe(TopicStorage, func(e Event) { got = e })
	n.Publish(Event{Topic: TopicStorage, Key: "", External: true})

	assert.True(t, got.External)
	assert.Empty(t, got.Key, "external events do not know the changed key")
}
