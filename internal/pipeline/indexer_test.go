package pipeline

import (
	"testing"
	"time"

	"ccps-chaser-go/internal/model"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestToEsArticle(t *testing.T) {
	content := "A relief valve lifted during startup."
	article := model.Article{
		ID:             42,
		Title:          "Relief Valves",
		Content:        &content,
		PublishedYear:  intPtr(2019),
		PublishedMonth: strPtr("September"),
		SourcePageURL:  "https://example.org/beacon/2019-09",
		SourcePDFURL:   strPtr("https://example.org/beacon/2019-09.pdf"),
		PDFBucket:      strPtr("ccps-pdfs"),
		PDFPath:        strPtr("2019/september.pdf"),
		CreatedAt:      time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	doc := toEsArticle(article)

	if doc.ArticleID != 42 || doc.Title != article.Title || doc.Content != content {
		t.Errorf("基础字段转换错误: %+v", doc)
	}
	// 月份名在这里归一化为排序键，原始形态原样保留
	if doc.PublishedKey != 201909 {
		t.Errorf("PublishedKey = %d, want 201909", doc.PublishedKey)
	}
	if doc.PublishedMonth != "September" {
		t.Errorf("PublishedMonth = %v, 应保留原始形态", doc.PublishedMonth)
	}
	if doc.PDFBucket != "ccps-pdfs" || doc.PDFPath != "2019/september.pdf" {
		t.Errorf("PDF 引用转换错误: %+v", doc)
	}
}

func TestToEsArticle_NilFields(t *testing.T) {
	article := model.Article{
		ID:            7,
		Title:         "Untitled",
		SourcePageURL: "https://example.org/beacon/unknown",
	}

	doc := toEsArticle(article)

	if doc.PublishedKey != 0 {
		t.Errorf("缺失发布日期时 PublishedKey = %d, want 0", doc.PublishedKey)
	}
	if doc.PublishedYear != nil || doc.PublishedMonth != nil {
		t.Errorf("缺失字段应为 nil: year=%v month=%v", doc.PublishedYear, doc.PublishedMonth)
	}
	if doc.Content != "" {
		t.Errorf("Content = %q, want empty", doc.Content)
	}
	if doc.PDFBucket != "" || doc.PDFPath != "" || doc.SourcePDFURL != "" {
		t.Errorf("缺失 PDF 引用应转换为空串: %+v", doc)
	}
}

func TestToEsArticle_NumericMonth(t *testing.T) {
	article := model.Article{
		ID:             8,
		PublishedYear:  intPtr(2022),
		PublishedMonth: strPtr("3"),
	}
	doc := toEsArticle(article)
	if doc.PublishedKey != 202203 {
		t.Errorf("PublishedKey = %d, want 202203", doc.PublishedKey)
	}
}
