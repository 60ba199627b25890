// Package model 定义了与数据库表对应的 Go 结构体。
package model

import "time"

// Article 对应于数据库中的 'ccps_chaser_articles' 表。
// 该表由采集端（爬虫）写入，检索服务只读。
type Article struct {
	ID    int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Title string `gorm:"type:varchar(512);not null" json:"title"`
	// Content 是从 PDF 提取的全文，可能为空（提取失败时采集端写入 NULL）。
	Content *string `gorm:"type:longtext" json:"content"`
	// PublishedYear / PublishedMonth 来自归档页 URL。月份列是 varchar，
	// 历史数据中混有数字、数字字符串和英文月份名，排序前必须经过
	// MonthNumber 归一化，不能直接比较原始值。
	PublishedYear  *int    `json:"publishedYear"`
	PublishedMonth *string `gorm:"type:varchar(20)" json:"publishedMonth"`
	// SourcePageURL 是英文归档页地址，采集端以它作为 upsert 的唯一键。
	SourcePageURL string  `gorm:"type:varchar(512);not null;uniqueIndex" json:"sourcePageUrl"`
	SourcePDFURL  *string `gorm:"type:varchar(512)" json:"sourcePdfUrl"`
	// PDFBucket / PDFPath 指向对象存储中的 PDF，要么都有要么都没有。
	PDFBucket *string   `gorm:"type:varchar(100)" json:"pdfBucket"`
	PDFPath   *string   `gorm:"type:varchar(255)" json:"pdfPath"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

// TableName 指定了此模型在数据库中对应的表名。
func (Article) TableName() string {
	return "ccps_chaser_articles"
}

// ContentText 返回文章正文，NULL 视为空串。
func (a *Article) ContentText() string {
	if a.Content == nil {
		return ""
	}
	return *a.Content
}

// HasPDF 判断文章是否带有完整的 PDF 存储引用。
// bucket 和 path 只有一个时按“无 PDF”处理，不视为错误。
func (a *Article) HasPDF() bool {
	return a.PDFBucket != nil && *a.PDFBucket != "" && a.PDFPath != nil && *a.PDFPath != ""
}
