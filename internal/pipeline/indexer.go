// Package pipeline 定义了数据库到 Elasticsearch 的索引同步流程。
package pipeline

import (
	"context"
	"fmt"

	"ccps-chaser-go/internal/config"
	"ccps-chaser-go/internal/model"
	"ccps-chaser-go/internal/repository"
	"ccps-chaser-go/internal/service"
	"ccps-chaser-go/pkg/es"
	"ccps-chaser-go/pkg/log"
	"ccps-chaser-go/pkg/tasks"
)

// Indexer 消费重建索引任务：按批次从数据库加载文章行，
// 归一化发布日期键后写入 Elasticsearch。
type Indexer struct {
	articleRepo repository.ArticleRepository
	esCfg       config.ElasticsearchConfig
}

// NewIndexer 创建一个新的 Indexer 实例。
func NewIndexer(articleRepo repository.ArticleRepository, esCfg config.ElasticsearchConfig) *Indexer {
	return &Indexer{
		articleRepo: articleRepo,
		esCfg:       esCfg,
	}
}

// Process 处理一条重建索引任务。
func (p *Indexer) Process(ctx context.Context, task tasks.ReindexTask) error {
	log.Infof("[Indexer] 开始处理重建索引任务, 文章数: %d", len(task.ArticleIDs))

	articles, err := p.articleRepo.FindBatchByIDs(ctx, task.ArticleIDs)
	if err != nil {
		return fmt.Errorf("加载文章失败: %w", err)
	}
	if len(articles) < len(task.ArticleIDs) {
		// 任务发布后被删除的行：跳过即可，不算失败
		log.Warnf("[Indexer] 任务中的 %d 篇文章有 %d 篇已不存在", len(task.ArticleIDs), len(task.ArticleIDs)-len(articles))
	}

	for _, article := range articles {
		doc := toEsArticle(article)
		if err := es.IndexArticle(ctx, p.esCfg.IndexName, doc); err != nil {
			return fmt.Errorf("索引文章 %d 失败: %w", article.ID, err)
		}
	}

	log.Infof("[Indexer] 重建索引任务完成, 写入 %d 篇文章", len(articles))
	return nil
}

// toEsArticle 把数据库行转换为索引文档。
// published_key 在这里统一计算：这是发布日期进入比较语义前的唯一归一化入口。
func toEsArticle(article model.Article) model.EsArticle {
	var yearVal, monthVal interface{}
	if article.PublishedYear != nil {
		yearVal = *article.PublishedYear
	}
	if article.PublishedMonth != nil {
		monthVal = *article.PublishedMonth
	}

	doc := model.EsArticle{
		ArticleID:      article.ID,
		Title:          article.Title,
		Content:        article.ContentText(),
		PublishedYear:  yearVal,
		PublishedMonth: monthVal,
		PublishedKey:   service.PublishedKey(yearVal, monthVal),
		SourcePageURL:  article.SourcePageURL,
		CreatedAt:      article.CreatedAt,
	}
	if article.SourcePDFURL != nil {
		doc.SourcePDFURL = *article.SourcePDFURL
	}
	if article.PDFBucket != nil {
		doc.PDFBucket = *article.PDFBucket
	}
	if article.PDFPath != nil {
		doc.PDFPath = *article.PDFPath
	}
	return doc
}
