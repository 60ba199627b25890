// Package tasks 定义了在服务与后台管道之间传递的任务结构。
package tasks

// ReindexTask 是一批待重建索引的文章 ID。
// 由重建触发端发布到 Kafka，索引管道消费后从数据库加载行并写入 Elasticsearch。
type ReindexTask struct {
	ArticleIDs []int64 `json:"article_ids"`
}
