package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/minio/minio-go/v7"
	"gorm.io/gorm"

	"ccps-chaser-go/internal/config"
	"ccps-chaser-go/internal/model"
	"ccps-chaser-go/internal/repository"
	"ccps-chaser-go/pkg/log"
	"ccps-chaser-go/pkg/storage"
)

// PDFStream 封装了 PDF 代理响应所需的对象流和区间信息。
type PDFStream struct {
	Body io.ReadCloser
	// Size 是对象的完整字节数。
	Size int64
	// Ranged 为 true 时 Start/End 描述本次返回的闭区间。
	Ranged bool
	Start  int64
	End    int64
}

// ArticleService 接口定义了文章详情、前后翻页和 PDF 代理操作。
type ArticleService interface {
	// GetArticle 返回文章详情和同一检索范围内的相邻文章 ID。
	// q 非空时：既用于摘要定位，也把详情和翻页限定在该全文条件的命中集内。
	GetArticle(ctx context.Context, id int64, query string) (*model.ArticleDetail, *model.ArticleNav, error)
	// OpenPDF 打开文章 PDF 的对象流，透传字节区间请求。
	OpenPDF(ctx context.Context, id int64, rangeHeader string) (*PDFStream, error)
}

type articleService struct {
	articleRepo repository.ArticleRepository
	esClient    *elasticsearch.Client
	keywordSvc  KeywordService
	esCfg       config.ElasticsearchConfig
	minioCfg    config.MinIOConfig
	searchCfg   config.SearchConfig
}

// NewArticleService 创建一个新的 ArticleService 实例。
func NewArticleService(
	articleRepo repository.ArticleRepository,
	esClient *elasticsearch.Client,
	keywordSvc KeywordService,
	esCfg config.ElasticsearchConfig,
	minioCfg config.MinIOConfig,
	searchCfg config.SearchConfig,
) ArticleService {
	return &articleService{
		articleRepo: articleRepo,
		esClient:    esClient,
		keywordSvc:  keywordSvc,
		esCfg:       esCfg,
		minioCfg:    minioCfg,
		searchCfg:   searchCfg,
	}
}

// GetArticle 组装文章详情：正文、摘要、关键词和前后翻页 ID。
func (s *articleService) GetArticle(ctx context.Context, id int64, query string) (*model.ArticleDetail, *model.ArticleNav, error) {
	if id <= 0 {
		return nil, nil, fmt.Errorf("无效的文章 ID %d: %w", id, ErrInvalidArgument)
	}
	query = strings.TrimSpace(query)

	article, err := s.articleRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, fmt.Errorf("article %d: %w", id, ErrNotFound)
		}
		return nil, nil, fmt.Errorf("查询文章失败: %w", err)
	}

	// q 生效时详情必须仍在命中集内，否则按未找到处理
	if query != "" {
		matched, err := s.matchesQuery(ctx, id, query)
		if err != nil {
			return nil, nil, err
		}
		if !matched {
			return nil, nil, fmt.Errorf("article %d excluded by query: %w", id, ErrNotFound)
		}
	}

	keywordsByID, err := s.keywordSvc.KeywordsForArticles(ctx, []int64{id})
	if err != nil {
		return nil, nil, err
	}
	keywords := keywordsByID[id]
	if keywords == nil {
		keywords = []string{}
	}

	detail := &model.ArticleDetail{
		ID:            article.ID,
		Title:         article.Title,
		Content:       article.ContentText(),
		Excerpt:       BuildExcerpt(article.ContentText(), query, s.searchCfg.ExcerptRadius),
		SourcePageURL: article.SourcePageURL,
		Keywords:      keywords,
		CreatedAt:     model.LocalTime(article.CreatedAt),
	}
	if article.PublishedYear != nil {
		detail.PublishedYear = *article.PublishedYear
	}
	if article.PublishedMonth != nil {
		detail.PublishedMonth = *article.PublishedMonth
	}
	if article.SourcePDFURL != nil {
		detail.SourcePDFURL = *article.SourcePDFURL
	}
	if article.HasPDF() {
		detail.HasPDF = true
		detail.PDFPublicURL = storage.PublicURL(s.minioCfg, *article.PDFBucket, *article.PDFPath)
	}

	// 前后翻页都基于规范排序键，且带上与列表一致的全文条件
	var yearVal, monthVal interface{}
	if article.PublishedYear != nil {
		yearVal = *article.PublishedYear
	}
	if article.PublishedMonth != nil {
		monthVal = *article.PublishedMonth
	}
	key := PublishedKey(yearVal, monthVal)

	nav := &model.ArticleNav{}
	if nav.NewerID, err = s.adjacentID(ctx, query, key, id, true); err != nil {
		return nil, nil, err
	}
	if nav.OlderID, err = s.adjacentID(ctx, query, key, id, false); err != nil {
		return nil, nil, err
	}

	return detail, nav, nil
}

// matchesQuery 判断指定文章是否命中给定的全文条件。
// 用与列表检索同一个查询描述（ID 限定 + 全文条件），保证范围语义一致。
func (s *articleService) matchesQuery(ctx context.Context, id int64, query string) (bool, error) {
	body, err := NewArticleQuery(1, 1).WithText(query).WithArticleIDs([]int64{id}).Body()
	if err != nil {
		return false, err
	}

	res, err := s.esClient.Search(
		s.esClient.Search.WithContext(ctx),
		s.esClient.Search.WithIndex(s.esCfg.IndexName),
		s.esClient.Search.WithBody(body),
	)
	if err != nil {
		return false, fmt.Errorf("elasticsearch search failed: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return false, fmt.Errorf("elasticsearch returned an error: %s", res.Status())
	}

	var esResp esSearchResponse
	if err := json.NewDecoder(res.Body).Decode(&esResp); err != nil {
		return false, fmt.Errorf("failed to decode es response: %w", err)
	}
	return esResp.Hits.Total.Value > 0, nil
}

// adjacentID 查找规范排序上相邻的一篇文章的 ID，无相邻行时返回 nil。
func (s *articleService) adjacentID(ctx context.Context, query string, key int, id int64, newer bool) (*int64, error) {
	body, err := NavBody(query, key, id, newer)
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
		return nil, fmt.Errorf("elasticsearch returned an error: %s", res.Status())
	}

	var esResp esSearchResponse
	if err := json.NewDecoder(res.Body).Decode(&esResp); err != nil {
		return nil, fmt.Errorf("failed to decode es response: %w", err)
	}
	if len(esResp.Hits.Hits) == 0 {
		return nil, nil
	}
	adjacent := esResp.Hits.Hits[0].Source.ArticleID
	return &adjacent, nil
}

// OpenPDF 打开文章对应的 PDF 对象流。
// 没有完整 (bucket, path) 引用或对象不存在时返回 ErrNotFound。
func (s *articleService) OpenPDF(ctx context.Context, id int64, rangeHeader string) (*PDFStream, error) {
	if id <= 0 {
		return nil, fmt.Errorf("无效的文章 ID %d: %w", id, ErrInvalidArgument)
	}
	article, err := s.articleRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("article %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("查询文章失败: %w", err)
	}
	if !article.HasPDF() {
		return nil, fmt.Errorf("article %d has no pdf: %w", id, ErrNotFound)
	}
	bucket, objectPath := *article.PDFBucket, *article.PDFPath

	stat, err := storage.MinioClient.StatObject(ctx, bucket, objectPath, minio.StatObjectOptions{})
	if err != nil {
		errResp := minio.ToErrorResponse(err)
		if errResp.Code == "NoSuchKey" || errResp.Code == "NoSuchBucket" {
			log.Warnf("[ArticleService] PDF 对象缺失: %s/%s", bucket, objectPath)
			return nil, fmt.Errorf("pdf object missing: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("查询 PDF 对象失败: %w", err)
	}

	opts := minio.GetObjectOptions{}
	stream := &PDFStream{Size: stat.Size}
	if start, end, ok := parseByteRange(rangeHeader, stat.Size); ok {
		if err := opts.SetRange(start, end); err != nil {
			return nil, fmt.Errorf("设置字节区间失败: %w", err)
		}
		stream.Ranged = true
		stream.Start = start
		stream.End = end
	}

	object, err := storage.MinioClient.GetObject(ctx, bucket, objectPath, opts)
	if err != nil {
		return nil, fmt.Errorf("读取 PDF 对象失败: %w", err)
	}
	stream.Body = object
	return stream, nil
}

// parseByteRange 解析形如 "bytes=a-b" / "bytes=a-" / "bytes=-n" 的单区间请求头。
// 无法解析或区间无效时返回 ok=false，调用方按整个对象返回。
func parseByteRange(header string, size int64) (start, end int64, ok bool) {
	spec, found := strings.CutPrefix(header, "bytes=")
	if !found || strings.Contains(spec, ",") {
		return 0, 0, false
	}
	first, last, found := strings.Cut(spec, "-")
	if !found {
		return 0, 0, false
	}

	if first == "" {
		// 后缀区间：最后 n 个字节
		n, err := strconv.ParseInt(last, 10, 64)
		if err != nil || n <= 0 {
			return 0, 0, false
		}
		if n > size {
			n = size
		}
		return size - n, size - 1, true
	}

	start, err := strconv.ParseInt(first, 10, 64)
	if err != nil || start < 0 || start >= size {
		return 0, 0, false
	}
	if last == "" {
		return start, size - 1, true
	}
	end, err = strconv.ParseInt(last, 10, 64)
	if err != nil || end < start {
		return 0, 0, false
	}
	if end >= size {
		end = size - 1
	}
	return start, end, true
}
