// Package main 是应用程序的入口点。
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"ccps-chaser-go/internal/config"
	"ccps-chaser-go/internal/handler"
	"ccps-chaser-go/internal/middleware"
	"ccps-chaser-go/internal/pipeline"
	"ccps-chaser-go/internal/repository"
	"ccps-chaser-go/internal/service"
	"ccps-chaser-go/pkg/database"
	"ccps-chaser-go/pkg/es"
	"ccps-chaser-go/pkg/kafka"
	"ccps-chaser-go/pkg/log"
	"ccps-chaser-go/pkg/storage"
)

func main() {
	// 1. 初始化配置
	config.Init("./configs/config.yaml")
	cfg := config.Conf

	// 2. 初始化日志记录器
	log.Init(cfg.Log.Level, cfg.Log.Format, cfg.Log.OutputPath)
	defer log.Sync()
	log.Info("日志记录器初始化成功")

	// 3. 初始化数据库、Redis、MinIO、Elasticsearch 和 Kafka
	database.InitMySQL(cfg.Database.MySQL.DSN)
	database.InitRedis(cfg.Database.Redis.Addr, cfg.Database.Redis.Password, cfg.Database.Redis.DB)
	storage.InitMinIO(cfg.MinIO)
	if err := es.InitES(cfg.Elasticsearch); err != nil {
		log.Errorf("es 初始化失败 %s", err)
		return
	}
	kafka.InitProducer(cfg.Kafka)

	// 4. 初始化 Repository
	articleRepo := repository.NewArticleRepository(database.DB)
	keywordRepo := repository.NewKeywordRepository(database.DB)

	// 5. 初始化 Service (依赖注入)
	keywordCacheTTL := time.Duration(cfg.Search.KeywordCacheTTLMinutes) * time.Minute
	keywordService := service.NewKeywordService(keywordRepo, database.RDB, keywordCacheTTL)
	searchService := service.NewSearchService(es.ESClient, keywordService, cfg.Elasticsearch, cfg.MinIO, cfg.Search)
	articleService := service.NewArticleService(articleRepo, es.ESClient, keywordService, cfg.Elasticsearch, cfg.MinIO, cfg.Search)
	reindexService := service.NewReindexService(articleRepo)

	// 6. 初始化索引管道并启动后台 Kafka 消费者
	indexer := pipeline.NewIndexer(articleRepo, cfg.Elasticsearch)
	go kafka.StartConsumer(cfg.Kafka, indexer)

	// 7. 设置 Gin 模式并创建路由引擎
	gin.SetMode(cfg.Server.Mode)
	r := gin.New()
	r.Use(middleware.RequestLogger(), gin.Recovery())

	// 8. 注册路由
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	apiV1 := r.Group("/api/v1")
	{
		articles := apiV1.Group("/articles")
		{
			articles.GET("", handler.NewSearchHandler(searchService, cfg.Search).ListArticles)
			articles.GET("/:id", handler.NewArticleHandler(articleService).GetArticle)
			articles.GET("/:id/pdf", handler.NewArticleHandler(articleService).ProxyPDF)
		}

		apiV1.GET("/keywords", handler.NewKeywordHandler(keywordService).ListKeywords)

		admin := apiV1.Group("/admin")
		{
			admin.POST("/reindex", handler.NewAdminHandler(reindexService).Reindex)
		}
	}

	// 9. 启动 HTTP 服务器并实现优雅停机
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: r,
	}

	go func() {
		log.Infof("服务启动于 %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP 服务监听失败: %s\n", err)
		}
	}()

	// 等待中断信号以实现优雅停机
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("接收到停机信号，正在关闭服务...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("HTTP 服务器关闭失败: %v", err)
	}

	// Kafka 消费者随进程退出自然结束，索引写入是幂等的，
	// 中断的批次会在下次重建时补齐。
	log.Info("服务已优雅关闭")
}
