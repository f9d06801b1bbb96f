package realtime

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"sponsortrack/internal/models"
	"sponsortrack/internal/services"
)

const (
	writeWait  = 5 * time.Second
	// очередь на подписчика; переполнилась, значит доска не успевает читать
	sendBuffer = 16
)

// DealMessage уходит каждой подписанной доске.
type DealMessage struct {
	Type           services.DealEventKind `json:"type"`
	Deal           models.Deal            `json:"deal"`
	PreviousStatus models.DealStatus      `json:"previous_status,omitempty"`
}

type subscriber struct {
	conn *websocket.Conn
	send chan DealMessage
}

// DealHub рассылает события по сделкам всем открытым доскам.
// Каждое соединение пишет своя горутина, Notify только кладёт в очередь.
type DealHub struct {
	mu       sync.Mutex
	subs     map[*websocket.Conn]*subscriber
	upgrader websocket.Upgrader
	log      *logrus.Logger
}

func NewDealHub(log *logrus.Logger) *DealHub {
	return &DealHub{
		subs: make(map[*websocket.Conn]*subscriber),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// API без авторизации, origin уже ограничен CORS
			CheckOrigin: func(*http.Request) bool { return true },
		},
		log: log,
	}
}

func (h *DealHub) Register(conn *websocket.Conn) {
	sub := &subscriber{conn: conn, send: make(chan DealMessage, sendBuffer)}
	h.mu.Lock()
	h.subs[conn] = sub
	h.mu.Unlock()
	go h.writeLoop(sub)
}

// Unregister закрывает очередь; соединение закроет writeLoop.
func (h *DealHub) Unregister(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(conn)
}

func (h *DealHub) removeLocked(conn *websocket.Conn) {
	sub, ok := h.subs[conn]
	if !ok {
		return
	}
	delete(h.subs, conn)
	close(sub.send)
}

func (h *DealHub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

// Notify реализует services.Notifier и никогда не ждёт сеть:
// подписчик с полной очередью отключается.
func (h *DealHub) Notify(_ context.Context, ev services.DealEvent) error {
	msg := DealMessage{Type: ev.Kind, Deal: ev.Deal, PreviousStatus: ev.PreviousStatus}

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn, sub := range h.subs {
		select {
		case sub.send <- msg:
		default:
			h.log.WithField("deal_id", ev.Deal.ID).Warn("[ws] slow subscriber dropped")
			h.removeLocked(conn)
		}
	}
	return nil
}

func (h *DealHub) writeLoop(sub *subscriber) {
	defer sub.conn.Close()
	for msg := range sub.send {
		_ = sub.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := sub.conn.WriteJSON(msg); err != nil {
			h.log.WithError(err).Debug("[ws] drop subscriber")
			h.Unregister(sub.conn)
			return
		}
	}
}

// ServeWS обслуживает GET /api/deals/events.
func (h *DealHub) ServeWS(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade уже ответил клиенту
		return
	}
	h.Register(conn)
	defer h.Unregister(conn)

	// входящие сообщения не нужны, читаем до закрытия
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
