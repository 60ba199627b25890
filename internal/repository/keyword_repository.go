// Package repository 包含了所有与数据库交互的逻辑。
package repository

import (
	"context"

	"gorm.io/gorm"

	"ccps-chaser-go/internal/model"
)

// KeywordRepository 接口定义了关键词及其关联表的数据操作方法。
// 两跳联结（名称→关键词 ID→文章 ID 及其反向）分别由
// FindByNames/FindLinksByKeywordIDs 与 FindLinksByArticleIDs/FindBatchByIDs 组合完成。
type KeywordRepository interface {
	FindByNames(ctx context.Context, names []string) ([]model.Keyword, error)
	FindBatchByIDs(ctx context.Context, ids []int64) ([]model.Keyword, error)
	FindAll(ctx context.Context) ([]model.Keyword, error)
	FindLinksByKeywordIDs(ctx context.Context, keywordIDs []int64) ([]model.ArticleKeyword, error)
	FindLinksByArticleIDs(ctx context.Context, articleIDs []int64) ([]model.ArticleKeyword, error)
}

type keywordRepository struct {
	db *gorm.DB
}

// NewKeywordRepository 创建一个新的 KeywordRepository 实例。
func NewKeywordRepository(db *gorm.DB) KeywordRepository {
	return &keywordRepository{db: db}
}

// FindByNames 按名称精确匹配批量查找关键词。
func (r *keywordRepository) FindByNames(ctx context.Context, names []string) ([]model.Keyword, error) {
	var keywords []model.Keyword
	if len(names) == 0 {
		return keywords, nil
	}
	err := r.db.WithContext(ctx).Where("name IN ?", names).Find(&keywords).Error
	return keywords, err
}

// FindBatchByIDs 按 ID 批量查找关键词。
func (r *keywordRepository) FindBatchByIDs(ctx context.Context, ids []int64) ([]model.Keyword, error) {
	var keywords []model.Keyword
	if len(ids) == 0 {
		return keywords, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&keywords).Error
	return keywords, err
}

// FindAll 按名称字母序返回全部关键词。
func (r *keywordRepository) FindAll(ctx context.Context) ([]model.Keyword, error) {
	var keywords []model.Keyword
	err := r.db.WithContext(ctx).Order("name asc").Find(&keywords).Error
	return keywords, err
}

// FindLinksByKeywordIDs 查找带有任一给定关键词的文章关联行。
func (r *keywordRepository) FindLinksByKeywordIDs(ctx context.Context, keywordIDs []int64) ([]model.ArticleKeyword, error) {
	var links []model.ArticleKeyword
	if len(keywordIDs) == 0 {
		return links, nil
	}
	err := r.db.WithContext(ctx).Where("keyword_id IN ?", keywordIDs).Find(&links).Error
	return links, err
}

// FindLinksByArticleIDs 查找给定文章的全部关键词关联行。
func (r *keywordRepository) FindLinksByArticleIDs(ctx context.Context, articleIDs []int64) ([]model.ArticleKeyword, error) {
	var links []model.ArticleKeyword
	if len(articleIDs) == 0 {
		return links, nil
	}
	err := r.db.WithContext(ctx).Where("article_id IN ?", articleIDs).Find(&links).Error
	return links, err
}
