package main

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"creatiq-server/modules/caption"
	"creatiq-server/modules/common/config"
	"creatiq-server/modules/common/database"
	"creatiq-server/modules/common/model"
	redisClient "creatiq-server/modules/common/redis"
	"creatiq-server/modules/moodboard"
	"creatiq-server/modules/outfit"
	"creatiq-server/modules/posts"
	"creatiq-server/modules/worker"
)

// WebSocket upgrader
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// NoticeMessage - pushed to every connected client when a trending or reuse
// notice fires
type NoticeMessage struct {
	Type    string    `json:"type"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

// Client - one connected websocket listener
type Client struct {
	conn *websocket.Conn
	send chan []byte
}

// NoticeHub - single-room broadcast of app notices
type NoticeHub struct {
	mu      sync.RWMutex
	clients map[*Client]bool
}

func NewNoticeHub() *NoticeHub {
	return &NoticeHub{
		clients: make(map[*Client]bool),
	}
}

func (h *NoticeHub) addClient(client *Client) {
	h.mu.Lock()
	h.clients[client] = true
	count := len(h.clients)
	h.mu.Unlock()

	log.Printf("👤 Notice client connected (total: %d)", count)
}

func (h *NoticeHub) removeClient(client *Client) {
	h.mu.Lock()
	if _, exists := h.clients[client]; exists {
		close(client.send)
		delete(h.clients, client)
	}
	count := len(h.clients)
	h.mu.Unlock()

	log.Printf("👋 Notice client disconnected (remaining: %d)", count)
}

// Broadcast - push a notice to every connected client. Slow clients are
// dropped instead of blocking the sender.
func (h *NoticeHub) Broadcast(message string) {
	notice := NoticeMessage{
		Type:    "notice",
		Message: message,
		At:      time.Now().UTC(),
	}

	messageBytes, err := json.Marshal(notice)
	if err != nil {
		log.Printf("Error marshaling notice: %v", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		select {
		case client.send <- messageBytes:
		default:
			close(client.send)
			delete(h.clients, client)
		}
	}
}

// handleWebSocket - GET /ws
func (h *NoticeHub) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	client := &Client{
		conn: conn,
		send: make(chan []byte, 16),
	}
	h.addClient(client)

	go client.writePump()
	go client.readPump(h)
}

// readPump - listeners never send anything useful; reading just detects the
// disconnect
func (c *Client) readPump(h *NoticeHub) {
	defer func() {
		h.removeClient(c)
		c.conn.Close()
	}()

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error: %v", err)
			}
			break
		}
	}
}

func (c *Client) writePump() {
	defer c.conn.Close()

	for message := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			log.Printf("WebSocket write error: %v", err)
			return
		}
	}
	c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}

// enableCORS - CORS headers for every route
func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// healthCheck - GET /health
func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"service": "creatiq-content-server",
	})
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	// History store: Supabase when configured, in-memory otherwise
	var store model.HistoryStore
	if dbClient := database.NewClient(); dbClient != nil {
		store = dbClient
		log.Println("✅ Using Supabase history store")
	} else {
		store = database.NewMemoryStore()
		log.Println("⚠️  Using in-memory history store (history is lost on restart)")
	}

	hub := NewNoticeHub()

	captionService := caption.NewService(caption.NewClient(), store)
	captionHandler := caption.NewHandler(captionService)

	moodboardService := moodboard.NewService(store, hub)
	moodboardHandler := moodboard.NewHandler(moodboardService)

	outfitService := outfit.NewService(store)
	outfitHandler := outfit.NewHandler(outfitService)

	postsService := posts.NewService(store)
	postsHandler := posts.NewHandler(postsService)

	r := mux.NewRouter()
	r.Use(enableCORS)

	r.HandleFunc("/", healthCheck).Methods("GET")
	r.HandleFunc("/health", healthCheck).Methods("GET")
	r.HandleFunc("/ws", hub.handleWebSocket)

	r.HandleFunc("/api/caption/generate", captionHandler.HandleGenerate).Methods("POST", "OPTIONS")
	r.HandleFunc("/api/caption/script", captionHandler.HandleScript).Methods("POST", "OPTIONS")
	r.HandleFunc("/api/caption/history", captionHandler.HandleHistory).Methods("GET")

	r.HandleFunc("/api/moodboard/analyze", moodboardHandler.HandleAnalyze).Methods("POST", "OPTIONS")
	r.HandleFunc("/api/moodboard/items", moodboardHandler.HandleCreate).Methods("POST", "OPTIONS")
	r.HandleFunc("/api/moodboard/items", moodboardHandler.HandleList).Methods("GET")
	r.HandleFunc("/api/moodboard/items/{id}", moodboardHandler.HandleDelete).Methods("DELETE")

	r.HandleFunc("/api/outfit/analyze", outfitHandler.HandleAnalyze).Methods("POST", "OPTIONS")
	r.HandleFunc("/api/outfit", outfitHandler.HandleSave).Methods("POST", "OPTIONS")
	r.HandleFunc("/api/outfit", outfitHandler.HandleList).Methods("GET")
	r.HandleFunc("/api/outfit/{id}", outfitHandler.HandleDelete).Methods("DELETE")

	r.HandleFunc("/api/posts", postsHandler.HandleCreate).Methods("POST", "OPTIONS")
	r.HandleFunc("/api/posts", postsHandler.HandleList).Methods("GET")
	r.HandleFunc("/api/posts/{id}", postsHandler.HandleDelete).Methods("DELETE")

	// Job queue endpoints and worker only run when Redis is configured
	if cfg.RedisHost != "" {
		if rdb := redisClient.Connect(cfg); rdb != nil {
			log.Println("✅ Redis connected successfully")
			worker.NewHandler(rdb).RegisterRoutes(r)
			go worker.StartWorker(rdb, captionService)
		} else {
			log.Println("⚠️  Redis unreachable, job queue disabled")
		}
	}

	log.Printf("🚀 Creatiq Content Server starting on port %s", cfg.Port)
	log.Printf("❤️  Health check: http://localhost:%s/health", cfg.Port)
	log.Printf("📡 Notice stream: ws://localhost:%s/ws", cfg.Port)

	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
