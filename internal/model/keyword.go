// Package model 定义了与数据库表对应的 Go 结构体。
package model

// Keyword 对应于数据库中的 'ccps_keywords' 表。
// 关键词由离线映射工具写入（name 上有唯一索引），检索服务只读。
type Keyword struct {
	ID   int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"type:varchar(255);not null;uniqueIndex" json:"name"`
}

// TableName 指定了此模型在数据库中对应的表名。
func (Keyword) TableName() string {
	return "ccps_keywords"
}

// ArticleKeyword 对应于数据库中的 'ccps_article_keywords' 关联表。
// 主键是 (article_id, keyword_id)，同一对最多出现一次。
type ArticleKeyword struct {
	ArticleID int64 `gorm:"primaryKey" json:"articleId"`
	KeywordID int64 `gorm:"primaryKey" json:"keywordId"`
}

// TableName 指定了此模型在数据库中对应的表名。
func (ArticleKeyword) TableName() string {
	return "ccps_article_keywords"
}
