package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/elastic/go-elasticsearch/v8"

	"ccps-chaser-go/internal/config"
	"ccps-chaser-go/internal/model"
	"ccps-chaser-go/pkg/log"
	"ccps-chaser-go/pkg/storage"
)

// SearchService 接口定义了归档文章的列表检索操作。
type SearchService interface {
	SearchArticles(ctx context.Context, query string, keywordNames []string, page, limit int) (*model.SearchPage, error)
}

type searchService struct {
	esClient   *elasticsearch.Client
	keywordSvc KeywordService
	esCfg      config.ElasticsearchConfig
	minioCfg   config.MinIOConfig
	searchCfg  config.SearchConfig
}

// NewSearchService 创建一个新的 SearchService 实例。
func NewSearchService(
	esClient *elasticsearch.Client,
	keywordSvc KeywordService,
	esCfg config.ElasticsearchConfig,
	minioCfg config.MinIOConfig,
	searchCfg config.SearchConfig,
) SearchService {
	return &searchService{
		esClient:   esClient,
		keywordSvc: keywordSvc,
		esCfg:      esCfg,
		minioCfg:   minioCfg,
		searchCfg:  searchCfg,
	}
}

// esSearchResponse 是检索响应中本服务关心的部分。
type esSearchResponse struct {
	Hits struct {
		Total struct {
			Value int64 `json:"value"`
		} `json:"total"`
		Hits []struct {
			Source model.EsArticle `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

// SearchArticles 执行一次带关键词过滤和全文条件的分页检索。
func (s *searchService) SearchArticles(ctx context.Context, query string, keywordNames []string, page, limit int) (*model.SearchPage, error) {
	query = strings.TrimSpace(query)
	log.Infof("[SearchService] 开始检索, q: '%s', keywords: %v, page: %d, limit: %d", query, keywordNames, page, limit)

	// 1. 关键词名 → 文章 ID 限定集（OR 语义）
	articleIDs, restricted, err := s.keywordSvc.ResolveArticleIDs(ctx, keywordNames)
	if err != nil {
		return nil, err
	}
	if restricted && len(articleIDs) == 0 {
		// 关键词不存在或没有任何关联文章：合法空页，不再查询存储
		log.Infof("[SearchService] 关键词限定集为空，短路返回空页")
		return emptyPage(page, limit), nil
	}

	// 2. 构建一次性的查询描述并执行（行窗口和精确计数来自同一请求）
	aq := NewArticleQuery(page, limit).WithText(query)
	if restricted {
		aq = aq.WithArticleIDs(articleIDs)
	}
	body, err := aq.Body()
	if err != nil {
		return nil, err
	}

	res, err := s.esClient.Search(
		s.esClient.Search.WithContext(ctx),
		s.esClient.Search.WithIndex(s.esCfg.IndexName),
		s.esClient.Search.WithBody(body),
	)
	if err != nil {
		return nil, fmt.Errorf("elasticsearch search failed: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		bodyBytes, _ := io.ReadAll(res.Body)
		log.Errorf("[SearchService] Elasticsearch 返回错误, status: %s, body: %s", res.Status(), string(bodyBytes))
		return nil, fmt.Errorf("elasticsearch returned an error: %s", res.Status())
	}

	var esResp esSearchResponse
	if err := json.NewDecoder(res.Body).Decode(&esResp); err != nil {
		return nil, fmt.Errorf("failed to decode es response: %w", err)
	}
	log.Infof("[SearchService] 命中 %d 条, 本页 %d 条", esResp.Hits.Total.Value, len(esResp.Hits.Hits))

	// 3. 批量解析本页文章的关键词名
	pageIDs := make([]int64, 0, len(esResp.Hits.Hits))
	for _, hit := range esResp.Hits.Hits {
		pageIDs = append(pageIDs, hit.Source.ArticleID)
	}
	keywordsByID, err := s.keywordSvc.KeywordsForArticles(ctx, pageIDs)
	if err != nil {
		return nil, err
	}

	// 4. 组装结果项（摘要 + PDF 引用派生字段 + 关键词）
	items := make([]model.SearchResultItem, 0, len(esResp.Hits.Hits))
	for _, hit := range esResp.Hits.Hits {
		items = append(items, s.assembleItem(hit.Source, query, keywordsByID))
	}

	// 5. 页内兜底重排：索引中的 published_key 可能与数据库原始行短暂不一致，
	// 用原始 year/month 重新算键排序。已有序时此步是幂等的，且不跨页。
	sort.SliceStable(items, func(i, j int) bool {
		ki := PublishedKey(items[i].PublishedYear, items[i].PublishedMonth)
		kj := PublishedKey(items[j].PublishedYear, items[j].PublishedMonth)
		if ki != kj {
			return ki > kj
		}
		return items[i].ID > items[j].ID
	})

	meta := NewPageMeta(esResp.Hits.Total.Value, page, limit)
	return &model.SearchPage{
		Items:      items,
		Total:      meta.Total,
		Page:       meta.Page,
		Limit:      meta.Limit,
		TotalPages: meta.TotalPages,
	}, nil
}

// assembleItem 把单条索引命中组装为响应结果项。
func (s *searchService) assembleItem(doc model.EsArticle, query string, keywordsByID map[int64][]string) model.SearchResultItem {
	item := model.SearchResultItem{
		ID:             doc.ArticleID,
		Title:          doc.Title,
		Excerpt:        BuildExcerpt(doc.Content, query, s.searchCfg.ExcerptRadius),
		PublishedYear:  doc.PublishedYear,
		PublishedMonth: doc.PublishedMonth,
		SourcePageURL:  doc.SourcePageURL,
		SourcePDFURL:   doc.SourcePDFURL,
		Keywords:       keywordsByID[doc.ArticleID],
		CreatedAt:      model.LocalTime(doc.CreatedAt),
	}
	if item.Keywords == nil {
		item.Keywords = []string{}
	}
	// bucket 和 path 必须同时存在才算有 PDF，单边缺失按无 PDF 处理
	if doc.PDFBucket != "" && doc.PDFPath != "" {
		item.HasPDF = true
		item.PDFPublicURL = storage.PublicURL(s.minioCfg, doc.PDFBucket, doc.PDFPath)
	}
	return item
}

// emptyPage 构造一个合法的空结果页（total=0, totalPages=1）。
func emptyPage(page, limit int) *model.SearchPage {
	meta := NewPageMeta(0, page, limit)
	return &model.SearchPage{
		Items:      []model.SearchResultItem{},
		Total:      0,
		Page:       meta.Page,
		Limit:      meta.Limit,
		TotalPages: meta.TotalPages,
	}
}
