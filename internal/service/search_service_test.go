package service

import (
	"testing"

	"ccps-chaser-go/internal/config"
	"ccps-chaser-go/internal/model"
)

func newTestSearchService() *searchService {
	return &searchService{
		minioCfg: config.MinIOConfig{
			Endpoint:   "minio.internal:9000",
			BucketName: "ccps-pdfs",
		},
		searchCfg: config.SearchConfig{
			DefaultLimit:  20,
			MaxLimit:      50,
			ExcerptRadius: 180,
		},
	}
}

func TestAssembleItem_WithPDF(t *testing.T) {
	svc := newTestSearchService()
	doc := model.EsArticle{
		ArticleID:      42,
		Title:          "Hot Work Permits",
		Content:        "A welding spark ignited residual vapor in the tank.",
		PublishedYear:  float64(2019), // JSON 解码后数字是 float64
		PublishedMonth: "September",
		SourcePageURL:  "https://example.org/beacon/2019-09",
		PDFBucket:      "ccps-pdfs",
		PDFPath:        "2019/september.pdf",
	}
	keywords := map[int64][]string{42: {"fire", "welding"}}

	item := svc.assembleItem(doc, "welding", keywords)

	if item.ID != 42 || item.Title != doc.Title {
		t.Errorf("基础字段透传错误: %+v", item)
	}
	if !item.HasPDF {
		t.Errorf("bucket 和 path 都存在时 HasPDF 应为 true")
	}
	if item.PDFPublicURL == "" {
		t.Errorf("HasPDF 时必须给出公开访问 URL")
	}
	if item.Excerpt == "" {
		t.Errorf("摘要不应为空")
	}
	if len(item.Keywords) != 2 {
		t.Errorf("Keywords = %v, want 2 项", item.Keywords)
	}
}

func TestAssembleItem_PartialPDFReference(t *testing.T) {
	svc := newTestSearchService()
	cases := []struct {
		name   string
		bucket string
		path   string
	}{
		{"both missing", "", ""},
		{"bucket only", "ccps-pdfs", ""},
		{"path only", "", "2019/september.pdf"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc := model.EsArticle{ArticleID: 1, PDFBucket: tc.bucket, PDFPath: tc.path}
			item := svc.assembleItem(doc, "", nil)
			if item.HasPDF {
				t.Errorf("引用不完整时 HasPDF 应为 false")
			}
			if item.PDFPublicURL != "" {
				t.Errorf("引用不完整时不应构造 URL, got %q", item.PDFPublicURL)
			}
		})
	}
}

func TestAssembleItem_KeywordsNeverNil(t *testing.T) {
	svc := newTestSearchService()
	item := svc.assembleItem(model.EsArticle{ArticleID: 7}, "", nil)
	if item.Keywords == nil {
		t.Errorf("无关键词时 Keywords 应为空切片而非 nil")
	}
	if len(item.Keywords) != 0 {
		t.Errorf("Keywords = %v, want 空", item.Keywords)
	}
}

func TestEmptyPage(t *testing.T) {
	page := emptyPage(3, 20)
	if page.Total != 0 {
		t.Errorf("Total = %d, want 0", page.Total)
	}
	if page.TotalPages != 1 {
		t.Errorf("TotalPages = %d, want 1", page.TotalPages)
	}
	if page.Items == nil || len(page.Items) != 0 {
		t.Errorf("Items 应为空切片, got %v", page.Items)
	}
	if page.Limit != 20 {
		t.Errorf("Limit = %d, want 20", page.Limit)
	}
}
