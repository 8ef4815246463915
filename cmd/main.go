package main

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"ShengJi/config"
	"ShengJi/internal/auth"
	"ShengJi/internal/game/manager"
	"ShengJi/internal/middleware"
	"ShengJi/internal/storage"
	"ShengJi/internal/utils"
	"ShengJi/internal/websocket"
)

func main() {
	config.Load()
	utils.Init()

	//-------------------------------------------------------
	// 1. 初始化 Redis / Postgres
	//-------------------------------------------------------
	if err := storage.InitRedis(
		config.C.Redis.Addr,
		config.C.Redis.Password,
		config.C.Redis.DB,
	); err != nil {
		utils.Error.Fatalf("Redis init failed: %v", err)
	}

	var users storage.UserStore
	if dsn := config.C.Database.DSN; dsn != "" {
		if err := storage.InitPostgres(dsn); err != nil {
			utils.Error.Fatalf("Postgres init failed: %v", err)
		}
		users = storage.NewPostgresUserStore(storage.DB)
	} else {
		utils.Info.Printf("No database DSN, using in-memory user store")
		users = storage.NewMemoryUserStore()
	}

	//-------------------------------------------------------
	// 2. 初始化 Gin + CORS
	//-------------------------------------------------------
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	//-------------------------------------------------------
	// 3. 初始化 Hub（回调接好后再启动）
	//-------------------------------------------------------
	hub := websocket.NewHub()

	//-------------------------------------------------------
	// 4. 初始化 RoomManager
	//-------------------------------------------------------
	registry := manager.NewRegistry(storage.Rdb)
	mgr := manager.NewRoomManager(hub, registry, config.C.Game)
	hub.OnIncoming = mgr.HandlePlayerMessage
	hub.OnAttach = mgr.HandleAttach
	go hub.Run()

	//-------------------------------------------------------
	// 5. 认证路由
	//-------------------------------------------------------
	secret := ([]byte)(config.C.JWT.Secret)

	authGroup := r.Group("/auth")
	{
		ah := auth.NewHandler(users, secret)
		authGroup.POST("/register", ah.Register)
		authGroup.POST("/login", ah.Login)
	}

	//-------------------------------------------------------
	// 6. 受保护路由：WebSocket + 房间操作
	//-------------------------------------------------------
	protected := r.Group("/", middleware.JwtAuthMiddleware(secret))
	{
		protected.GET("/ws", websocket.ServeWS(hub))

		rh := manager.NewHandler(mgr)
		protected.POST("/rooms", rh.Create)
		protected.GET("/rooms/mine", rh.Mine)
		protected.POST("/rooms/:name/join", rh.Join)
		protected.POST("/rooms/:name/start", rh.Start)
		protected.GET("/rooms/:name/state", rh.State)
	}

	//-------------------------------------------------------
	// 7. 启动服务器
	//-------------------------------------------------------
	utils.Print.Info("server listening", "addr", config.C.Server.Port)
	r.Run(config.C.Server.Port)
}
