package handler

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 8192
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// wsClient is one websocket connection of a user
type wsClient struct {
	conn   *websocket.Conn
	send   chan []byte
	userID uuid.UUID
	hub    *NotificationHub
}

// NotificationHub tracks live websocket connections per user and fans
// notification payloads out to them
type NotificationHub struct {
	mu         sync.RWMutex
	userConns  map[uuid.UUID]map[*wsClient]bool
	register   chan *wsClient
	unregister chan *wsClient
	logger     *zap.Logger
}

// NewNotificationHub creates a new hub
func NewNotificationHub(logger *zap.Logger) *NotificationHub {
	return &NotificationHub{
		userConns:  make(map[uuid.UUID]map[*wsClient]bool),
		register:   make(chan *wsClient),
		unregister: make(chan *wsClient),
		logger:     logger,
	}
}

// Run processes register/unregister events. Call in a goroutine.
func (h *NotificationHub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if h.userConns[client.userID] == nil {
				h.userConns[client.userID] = make(map[*wsClient]bool)
			}
			h.userConns[client.userID][client] = true
			h.mu.Unlock()
			h.logger.Debug("websocket client registered",
				zap.String("user_id", client.userID.String()))

		case client := <-h.unregister:
			h.mu.Lock()
			if conns, ok := h.userConns[client.userID]; ok {
				if _, ok := conns[client]; ok {
					delete(conns, client)
					close(client.send)
					if len(conns) == 0 {
						delete(h.userConns, client.userID)
					}
				}
			}
			h.mu.Unlock()
		}
	}
}

// SendToUser pushes a payload to every live connection of the user. Returns
// false when the user has no open connection.
func (h *NotificationHub) SendToUser(userID uuid.UUID, payload []byte) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()

	conns, ok := h.userConns[userID]
	if !ok || len(conns) == 0 {
		return false
	}
	for client := range conns {
		select {
		case client.send <- payload:
		default:
			// slow consumer, drop the payload for this connection
		}
	}
	return true
}

// NotificationWSHandler upgrades authenticated requests to a websocket stream
type NotificationWSHandler struct {
	hub       *NotificationHub
	jwtSecret string
	logger    *zap.Logger
}

// NewNotificationWSHandler creates a new websocket handler
func NewNotificationWSHandler(hub *NotificationHub, jwtSecret string, logger *zap.Logger) *NotificationWSHandler {
	return &NotificationWSHandler{
		hub:       hub,
		jwtSecret: jwtSecret,
		logger:    logger,
	}
}

// HandleWS godoc
// @Summary 알림 웹소켓 연결
// @Description 사용자의 실시간 알림 스트림을 엽니다 (token 쿼리 파라미터 또는 Authorization 헤더)
// @Tags notifications
// @Param token query string false "JWT token"
// @Success 101 "Switching Protocols"
// @Failure 401 {object} map[string]interface{}
// @Router /notifications/ws [get]
func (h *NotificationWSHandler) HandleWS(c *gin.Context) {
	// browsers cannot set headers on websocket requests, so accept the
	// token as a query parameter too
	tokenString := c.Query("token")
	if tokenString == "" {
		authHeader := c.GetHeader("Authorization")
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && parts[0] == "Bearer" {
			tokenString = parts[1]
		}
	}
	if tokenString == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": gin.H{
				"code":    "UNAUTHORIZED",
				"message": "Token is required",
			},
			"message": "인증이 필요합니다",
		})
		return
	}

	userID, err := h.parseUserID(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": gin.H{
				"code":    "UNAUTHORIZED",
				"message": "Invalid or expired token",
			},
			"message": "유효하지 않거나 만료된 토큰입니다",
		})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("failed to upgrade connection", zap.Error(err))
		return
	}

	client := &wsClient{
		conn:   conn,
		send:   make(chan []byte, 256),
		userID: userID,
		hub:    h.hub,
	}
	h.hub.register <- client

	go h.writePump(client)
	go h.readPump(client)
}

// parseUserID validates the token locally and extracts the user ID claim
func (h *NotificationWSHandler) parseUserID(tokenString string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(h.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, jwt.ErrTokenMalformed
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, jwt.ErrTokenInvalidClaims
	}

	var userIDStr string
	if uid, ok := claims["user_id"].(string); ok {
		userIDStr = uid
	} else if sub, ok := claims["sub"].(string); ok {
		userIDStr = sub
	} else if uid, ok := claims["uid"].(string); ok {
		userIDStr = uid
	} else {
		return uuid.Nil, jwt.ErrTokenInvalidClaims
	}
	return uuid.Parse(userIDStr)
}

// readPump drains incoming frames. The stream is push-only; anything the
// client sends besides pongs is discarded.
func (h *NotificationWSHandler) readPump(client *wsClient) {
	defer func() {
		client.hub.unregister <- client
		client.conn.Close()
	}()

	client.conn.SetReadLimit(maxMessageSize)
	client.conn.SetReadDeadline(time.Now().Add(pongWait))
	client.conn.SetPongHandler(func(string) error {
		client.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := client.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.logger.Error("websocket error", zap.Error(err))
			}
			break
		}
	}
}

func (h *NotificationWSHandler) writePump(client *wsClient) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		client.conn.Close()
	}()

	for {
		select {
		case message, ok := <-client.send:
			client.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				client.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := client.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			client.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := client.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
