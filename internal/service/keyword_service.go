package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"

	"ccps-chaser-go/internal/repository"
	"ccps-chaser-go/pkg/log"
)

const keywordListCacheKey = "ccps:keywords:all"

// KeywordService 接口定义了关键词过滤相关的操作：
// 名称→文章 ID 的正向解析、文章 ID→关键词名的反向批量解析、关键词全量列表。
type KeywordService interface {
	// ResolveArticleIDs 把请求中的关键词名解析为带有任一关键词的文章 ID 集合（OR 语义）。
	// restricted=false 表示请求未带关键词，不做限定；
	// restricted=true 且集合为空表示过滤条件存在但无命中，调用方应直接短路为空页。
	ResolveArticleIDs(ctx context.Context, names []string) (ids []int64, restricted bool, err error)
	// KeywordsForArticles 批量解析每篇文章的关键词名（去重、字母序）。
	KeywordsForArticles(ctx context.Context, articleIDs []int64) (map[int64][]string, error)
	// ListKeywordNames 返回全部关键词名（字母序），结果经 Redis 缓存。
	ListKeywordNames(ctx context.Context) ([]string, error)
}

type keywordService struct {
	keywordRepo repository.KeywordRepository
	redisClient *redis.Client
	cacheTTL    time.Duration
}

// NewKeywordService 创建一个新的 KeywordService 实例。
func NewKeywordService(keywordRepo repository.KeywordRepository, redisClient *redis.Client, cacheTTL time.Duration) KeywordService {
	return &keywordService{
		keywordRepo: keywordRepo,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

// SplitKeywordParam 把请求参数里的关键词规整为名称列表。
// 参数可以重复出现，也可以是逗号拼接的批量；逐项去空白、丢弃空串、保序去重。
func SplitKeywordParam(values []string) []string {
	seen := make(map[string]struct{})
	var names []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			name := strings.TrimSpace(part)
			if name == "" {
				continue
			}
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}
	return names
}

// ResolveArticleIDs 执行名称→关键词 ID→文章 ID 的两跳联结。
func (s *keywordService) ResolveArticleIDs(ctx context.Context, names []string) ([]int64, bool, error) {
	if len(names) == 0 {
		return nil, false, nil
	}

	keywords, err := s.keywordRepo.FindByNames(ctx, names)
	if err != nil {
		return nil, true, fmt.Errorf("查询关键词失败: %w", err)
	}
	if len(keywords) == 0 {
		// 请求的关键词一个都不存在：合法的空结果，不是错误
		return []int64{}, true, nil
	}

	keywordIDs := make([]int64, 0, len(keywords))
	for _, kw := range keywords {
		keywordIDs = append(keywordIDs, kw.ID)
	}

	links, err := s.keywordRepo.FindLinksByKeywordIDs(ctx, keywordIDs)
	if err != nil {
		return nil, true, fmt.Errorf("查询文章关键词关联失败: %w", err)
	}

	// 关联表按 (article_id, keyword_id) 唯一，但多关键词命中同一篇文章是常态，去重
	seen := make(map[int64]struct{}, len(links))
	articleIDs := make([]int64, 0, len(links))
	for _, link := range links {
		if _, ok := seen[link.ArticleID]; ok {
			continue
		}
		seen[link.ArticleID] = struct{}{}
		articleIDs = append(articleIDs, link.ArticleID)
	}
	return articleIDs, true, nil
}

// KeywordsForArticles 执行文章 ID→关键词 ID→名称的反向两跳联结。
// 每篇文章的关键词列表去重后按字母序排列，保证输出稳定。
func (s *keywordService) KeywordsForArticles(ctx context.Context, articleIDs []int64) (map[int64][]string, error) {
	result := make(map[int64][]string)
	if len(articleIDs) == 0 {
		return result, nil
	}

	links, err := s.keywordRepo.FindLinksByArticleIDs(ctx, articleIDs)
	if err != nil {
		return nil, fmt.Errorf("查询文章关键词关联失败: %w", err)
	}
	if len(links) == 0 {
		return result, nil
	}

	keywordIDSet := make(map[int64]struct{})
	for _, link := range links {
		keywordIDSet[link.KeywordID] = struct{}{}
	}
	keywordIDs := make([]int64, 0, len(keywordIDSet))
	for id := range keywordIDSet {
		keywordIDs = append(keywordIDs, id)
	}

	keywords, err := s.keywordRepo.FindBatchByIDs(ctx, keywordIDs)
	if err != nil {
		return nil, fmt.Errorf("批量查询关键词失败: %w", err)
	}
	nameByID := make(map[int64]string, len(keywords))
	for _, kw := range keywords {
		nameByID[kw.ID] = kw.Name
	}

	seen := make(map[int64]map[string]struct{})
	for _, link := range links {
		name, ok := nameByID[link.KeywordID]
		if !ok {
			continue
		}
		if seen[link.ArticleID] == nil {
			seen[link.ArticleID] = make(map[string]struct{})
		}
		if _, dup := seen[link.ArticleID][name]; dup {
			continue
		}
		seen[link.ArticleID][name] = struct{}{}
		result[link.ArticleID] = append(result[link.ArticleID], name)
	}
	for _, names := range result {
		sort.Strings(names)
	}
	return result, nil
}

// ListKeywordNames 返回全部关键词名。关键词表只在离线映射工具运行时变化，
// 所以先查 Redis 缓存，未命中再回源数据库并回填。
func (s *keywordService) ListKeywordNames(ctx context.Context) ([]string, error) {
	if cached, err := s.redisClient.Get(ctx, keywordListCacheKey).Result(); err == nil {
		var names []string
		if err := json.Unmarshal([]byte(cached), &names); err == nil {
			return names, nil
		}
		log.Warnf("[KeywordService] 关键词缓存内容损坏，回源数据库")
	} else if err != redis.Nil {
		// 缓存故障降级为直接回源，不让列表接口跟着失败
		log.Warnf("[KeywordService] 读取关键词缓存失败: %v", err)
	}

	keywords, err := s.keywordRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("查询关键词列表失败: %w", err)
	}
	names := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		names = append(names, kw.Name)
	}

	if payload, err := json.Marshal(names); err == nil {
		if err := s.redisClient.Set(ctx, keywordListCacheKey, payload, s.cacheTTL).Err(); err != nil {
			log.Warnf("[KeywordService] 写入关键词缓存失败: %v", err)
		}
	}
	return names, nil
}
