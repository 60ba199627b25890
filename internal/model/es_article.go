// Package model 定义了与数据库表对应的 Go 结构体。
package model

import "time"

// EsArticle 定义了存储在 Elasticsearch 中的文章结构。
// published_month 保留数据库中的原始形态（数字或英文月份名），
// published_key 是索引管道写入时用归一化函数算出的排序键（year*100+month）。
type EsArticle struct {
	ArticleID      int64       `json:"article_id"`
	Title          string      `json:"title"`
	Content        string      `json:"content"`
	PublishedYear  interface{} `json:"published_year"`
	PublishedMonth interface{} `json:"published_month"`
	PublishedKey   int         `json:"published_key"`
	SourcePageURL  string      `json:"source_page_url"`
	SourcePDFURL   string      `json:"source_pdf_url"`
	PDFBucket      string      `json:"pdf_bucket"`
	PDFPath        string      `json:"pdf_path"`
	CreatedAt      time.Time   `json:"created_at"`
}

// SearchResultItem 定义了返回给前端的单条检索结果。
type SearchResultItem struct {
	ID             int64       `json:"id"`
	Title          string      `json:"title"`
	Excerpt        string      `json:"excerpt"`
	PublishedYear  interface{} `json:"publishedYear"`
	PublishedMonth interface{} `json:"publishedMonth"`
	SourcePageURL  string      `json:"sourcePageUrl"`
	SourcePDFURL   string      `json:"sourcePdfUrl,omitempty"`
	HasPDF         bool        `json:"hasPdf"`
	PDFPublicURL   string      `json:"pdfPublicUrl,omitempty"`
	Keywords       []string    `json:"keywords"`
	CreatedAt      LocalTime   `json:"createdAt"`
}

// SearchPage 定义了返回给前端的检索结果页。
type SearchPage struct {
	Items      []SearchResultItem `json:"items"`
	Total      int64              `json:"total"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"totalPages"`
}

// ArticleDetail 定义了文章详情页的响应结构。
type ArticleDetail struct {
	ID             int64       `json:"id"`
	Title          string      `json:"title"`
	Content        string      `json:"content"`
	Excerpt        string      `json:"excerpt"`
	PublishedYear  interface{} `json:"publishedYear"`
	PublishedMonth interface{} `json:"publishedMonth"`
	SourcePageURL  string      `json:"sourcePageUrl"`
	SourcePDFURL   string      `json:"sourcePdfUrl,omitempty"`
	HasPDF         bool        `json:"hasPdf"`
	PDFPublicURL   string      `json:"pdfPublicUrl,omitempty"`
	Keywords       []string    `json:"keywords"`
	CreatedAt      LocalTime   `json:"createdAt"`
}

// ArticleNav 给出同一检索范围内相邻文章的 ID，用于详情页的前后翻页。
type ArticleNav struct {
	NewerID *int64 `json:"newerId"`
	OlderID *int64 `json:"olderId"`
}
