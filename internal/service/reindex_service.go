package service

import (
	"context"
	"fmt"

	"ccps-chaser-go/internal/repository"
	"ccps-chaser-go/pkg/kafka"
	"ccps-chaser-go/pkg/log"
	"ccps-chaser-go/pkg/tasks"
)

// reindexBatchSize 是每条 Kafka 任务携带的文章 ID 数。
const reindexBatchSize = 500

// ReindexService 接口定义了全量重建索引的触发操作。
type ReindexService interface {
	// EnqueueAll 把全部文章 ID 分批投递到重建索引队列，返回投递的文章数。
	EnqueueAll(ctx context.Context) (int, error)
}

type reindexService struct {
	articleRepo repository.ArticleRepository
}

// NewReindexService 创建一个新的 ReindexService 实例。
func NewReindexService(articleRepo repository.ArticleRepository) ReindexService {
	return &reindexService{articleRepo: articleRepo}
}

// EnqueueAll 扫描文章表并按批次发布重建任务。
// 实际写入 Elasticsearch 由后台消费者异步完成。
func (s *reindexService) EnqueueAll(ctx context.Context) (int, error) {
	ids, err := s.articleRepo.FindAllIDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("查询文章 ID 失败: %w", err)
	}

	for start := 0; start < len(ids); start += reindexBatchSize {
		end := start + reindexBatchSize
		if end > len(ids) {
			end = len(ids)
		}
		task := tasks.ReindexTask{ArticleIDs: ids[start:end]}
		if err := kafka.ProduceReindexTask(ctx, task); err != nil {
			return 0, fmt.Errorf("投递重建索引任务失败: %w", err)
		}
	}

	log.Infof("[ReindexService] 已投递 %d 篇文章的重建索引任务", len(ids))
	return len(ids), nil
}
