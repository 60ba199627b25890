// Package repository 包含了所有与数据库交互的逻辑。
package repository

import (
	"context"

	"gorm.io/gorm"

	"ccps-chaser-go/internal/model"
)

// ArticleRepository 接口定义了文章表的数据操作方法。
// 文章表由采集端写入，这里只有读操作。
type ArticleRepository interface {
	FindByID(ctx context.Context, id int64) (*model.Article, error)
	FindBatchByIDs(ctx context.Context, ids []int64) ([]model.Article, error)
	FindAllIDs(ctx context.Context) ([]int64, error)
}

type articleRepository struct {
	db *gorm.DB
}

// NewArticleRepository 创建一个新的 ArticleRepository 实例。
func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

// FindByID 根据 ID 查找一篇文章，不存在时返回 gorm.ErrRecordNotFound。
func (r *articleRepository) FindByID(ctx context.Context, id int64) (*model.Article, error) {
	var article model.Article
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&article).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// FindBatchByIDs 批量查找文章，用于索引管道按任务批次加载行。
func (r *articleRepository) FindBatchByIDs(ctx context.Context, ids []int64) ([]model.Article, error) {
	var articles []model.Article
	if len(ids) == 0 {
		return articles, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&articles).Error
	return articles, err
}

// FindAllIDs 返回全部文章 ID，供重建索引时分批投递任务。
func (r *articleRepository) FindAllIDs(ctx context.Context) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).Model(&model.Article{}).Order("id asc").Pluck("id", &ids).Error
	return ids, err
}
