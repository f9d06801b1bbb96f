package realtime

import (
	"bytes"
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sponsortrack/internal/logger"
	"sponsortrack/internal/models"
	"sponsortrack/internal/services"
)

func TestDealHub_Broadcast(t *testing.T) {
	gin.SetMode(gin.TestMode)
	hub := NewDealHub(logger.New(&bytes.Buffer{}, "error"))
	r := gin.New()
	r.GET("/api/deals/events", hub.ServeWS)
	srv := httptest.NewServer(r)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/deals/events"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.Count() == 1 }, 2*time.Second, 10*time.Millisecond)

	ev := services.DealEvent{
		Kind:           services.DealStatusChanged,
		Deal:           models.Deal{ID: 4, AccountID: 1, Value: decimal.NewFromInt(5000), Status: models.DealStatusExpired},
		PreviousStatus: models.DealStatusActive,
	}
	require.NoError(t, hub.Notify(context.Background(), ev))

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var msg DealMessage
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, services.DealStatusChanged, msg.Type)
	assert.Equal(t, 4, msg.Deal.ID)
	assert.Equal(t, models.DealStatusActive, msg.PreviousStatus)

	require.NoError(t, conn.Close())
	require.Eventually(t, func() bool { return hub.Count() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestDealHub_NoSubscribers(t *testing.T) {
	hub := NewDealHub(logger.New(&bytes.Buffer{}, "error"))
	assert.NoError(t, hub.Notify(context.Background(), services.DealEvent{Kind: services.DealCreated}))
}

func TestDealHub_FullQueueDoesNotBlockNotify(t *testing.T) {
	hub := NewDealHub(logger.New(&bytes.Buffer{}, "error"))

	// подписчик без writeLoop: очередь никто не разбирает
	conn := &websocket.Conn{}
	sub := &subscriber{conn: conn, send: make(chan DealMessage, 1)}
	sub.send <- DealMessage{Type: services.DealCreated}
	hub.subs[conn] = sub

	done := make(chan struct{})
	go func() {
		_ = hub.Notify(context.Background(), services.DealEvent{Kind: services.DealCreated, Deal: models.Deal{ID: 1}})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Notify blocked on a full subscriber queue")
	}
	assert.Equal(t, 0, hub.Count())

	_, ok := <-sub.send
	assert.True(t, ok)
	_, ok = <-sub.send
	assert.False(t, ok, "queue of a dropped subscriber is closed")
}
