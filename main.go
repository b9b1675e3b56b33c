package main

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"vennespill/database" //PostgreSQLとRedisの初期化
	"vennespill/realtime" //ゲームビューのリアルタイム同期
	"vennespill/scoring"  //スコア集計・ラウンド管理・ランキングのコア
	"vennespill/screens"  //フロントの画面構成に対応するHTTPリクエストの処理
	"vennespill/utils"    //ロガーの初期化とCronジョブ(招待の定期クリーンナップ)

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/gorilla/websocket"
	"gorm.io/gorm"
)

func main() {
	var logger *zap.Logger
	var err error
	logger, err = utils.InitLogger() // ロガーの初期化
	if err != nil {
		panic(err) // 失敗した場合はプログラム停止
	}
	defer logger.Sync() // ロガーのクリーンアップ

	// Websocket接続で用いるアップグレーダーを初期化
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	// 非同期でPostgreSQLとRedisの初期化
	var db *gorm.DB
	var rdb *redis.Client
	done := make(chan bool)

	go func() {
		config, err := database.LoadConfig("config.json")
		if err != nil {
			logger.Fatal("設定ファイルの読み込みに失敗しました", zap.Error(err))
		}
		db, err = database.InitPostgreSQL(config, logger)
		if err != nil {
			logger.Fatal("PostgreSQLの初期化に失敗しました", zap.Error(err))
		}
		if err := database.AutoMigrateDB(db, logger); err != nil {
			logger.Fatal("マイグレーションに失敗しました", zap.Error(err))
		}
		done <- true
	}()

	go func() {
		rdb, err = database.InitRedis(logger)
		if err != nil {
			logger.Fatal("Failed to initialize Redis", zap.Error(err))
		}
		done <- true
	}()

	// 2つの初期化が完了するのを待つ
	<-done
	<-done

	// クーロンスケジューラのセットアップと呼び出し
	go utils.CronCleaner(db, logger)

	// スコアリングコアとリアルタイム同期ハブを初期化
	svc := scoring.NewService(db, rdb, logger)
	hub := realtime.NewHub(svc, rdb, logger)

	router := gin.New()
	//リクエストロガーとリカバリを起動
	router.Use(gin.Recovery(), utils.RequestLogger(logger))

	//CORS（Cross-Origin Resource Sharing）ポリシーを設定
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173"}, //ここにデプロイサーバーのオリジンを設定
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	//各HTTPリクエストのルーティング
	router.POST("/login", func(c *gin.Context) {
		screens.LoginHandler(c, db, logger)
	})
	router.GET("/concepts", func(c *gin.Context) {
		screens.ConceptList(c, db, logger)
	})
	router.POST("/orders", func(c *gin.Context) {
		screens.OrderCreate(c, db, logger)
	})
	router.GET("/dashboard", func(c *gin.Context) {
		screens.Dashboard(c, db, logger)
	})
	router.GET("/profile", func(c *gin.Context) {
		screens.Profile(c, db, logger)
	})
	router.POST("/games", func(c *gin.Context) {
		screens.GameCreate(c, db, logger)
	})
	router.GET("/games", func(c *gin.Context) {
		screens.MyGames(c, db, logger)
	})
	router.GET("/games/:id", func(c *gin.Context) {
		screens.GameDetail(c, svc, logger)
	})
	router.POST("/games/:id/participants", func(c *gin.Context) {
		screens.ParticipantAdd(c, db, svc, logger)
	})
	router.POST("/games/:id/rounds", func(c *gin.Context) {
		screens.RoundCreate(c, db, svc, logger)
	})
	router.PUT("/games/:id/rounds/:roundId", func(c *gin.Context) {
		screens.RoundRename(c, db, svc, logger)
	})
	router.PUT("/games/:id/rounds/:roundId/scores", func(c *gin.Context) {
		screens.ScoreSubmit(c, db, svc, logger)
	})
	router.GET("/games/:id/leaderboard", func(c *gin.Context) {
		screens.GameLeaderboardHandler(c, svc, logger)
	})
	router.GET("/leaderboard", func(c *gin.Context) {
		screens.CrossGameLeaderboardHandler(c, svc, logger)
	})
	router.POST("/games/:id/invitations", func(c *gin.Context) {
		screens.InvitationCreate(c, db, logger)
	})
	router.GET("/invitations", func(c *gin.Context) {
		screens.MyInvitations(c, db, logger)
	})
	router.PUT("/invitations/:invitationId/reply", func(c *gin.Context) {
		screens.InvitationReply(c, db, svc, logger)
	})
	router.GET("/ws", func(c *gin.Context) {
		realtime.HandleConnections(c.Request.Context(), c.Writer, c.Request, db, rdb, hub, logger, upgrader)
	})

	// テスト時はHTTPサーバーとして運用。デフォルトポートは ":8080"
	router.Run()

	// // 本番環境ではコメントアウトを解除し、HTTPSサーバーとして運用
	// err = router.RunTLS(":443", "path/to/cert.pem", "path/to/key.pem")
	// if err != nil {
	// 	logger.Fatal("Failed to run HTTPS server: ", zap.Error(err))
	// }
}
