package orderControllers

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sarthak743/FlashDine/store"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// OrderFeedHandler streams order lifecycle events over a websocket.
// The kitchen display and tracking pages subscribe here instead of
// polling. The subscription lives exactly as long as the connection.
func OrderFeedHandler(sess *store.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		clientID := uuid.NewString()
		log.Printf("order feed client connected: %s", clientID)

		// The request context is not cancelled for hijacked
		// connections, so tie the subscription to the read loop.
		ctx, cancel := context.WithCancel(c.Request.Context())
		defer cancel()
		events := sess.Subscribe(ctx)

		// Drain reads so close frames are processed; the client never
		// sends meaningful messages.
		go func() {
			defer cancel()
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		for event := range events {
			if err := conn.WriteJSON(event); err != nil {
				log.Printf("order feed client dropped: %s", clientID)
				return
			}
		}
	}
}
