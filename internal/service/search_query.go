package service

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ArticleQuery 是一次列表检索的不可变查询描述：
// 可选的全文条件、可选的文章 ID 限定集、以及页窗口。
// 它一次性生成完整的 Elasticsearch 请求体（过滤 + 排序 + 窗口 + 精确计数），
// 命中行和总数来自同一个请求，过滤条件不可能在两次调用之间漂移。
type ArticleQuery struct {
	text        string
	articleIDs  []int64
	restrictIDs bool
	page        int
	limit       int
}

// NewArticleQuery 创建一个带页窗口的查询描述。
func NewArticleQuery(page, limit int) ArticleQuery {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}
	return ArticleQuery{page: page, limit: limit}
}

// WithText 返回附加了全文条件的新查询描述。空串表示不加全文条件。
func (q ArticleQuery) WithText(text string) ArticleQuery {
	q.text = text
	return q
}

// WithArticleIDs 返回附加了文章 ID 限定集的新查询描述。
// 与“未限定”不同，空集合也是一个有效的限定（命中必为 0），
// 调用方应在那之前短路，不再查询存储。
func (q ArticleQuery) WithArticleIDs(ids []int64) ArticleQuery {
	q.articleIDs = ids
	q.restrictIDs = true
	return q
}

// From 返回页窗口的起始偏移。
func (q ArticleQuery) From() int {
	return (q.page - 1) * q.limit
}

// boolClause 组装 bool 查询的 must/filter 子句，两者都可能缺省。
func (q ArticleQuery) boolClause() map[string]interface{} {
	clause := map[string]interface{}{}
	if q.text != "" {
		clause["must"] = map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":  q.text,
				"fields": []string{"title^2", "content"},
			},
		}
	}
	if q.restrictIDs {
		clause["filter"] = map[string]interface{}{
			"terms": map[string]interface{}{"article_id": q.articleIDs},
		}
	}
	return clause
}

// Body 生成列表检索的 Elasticsearch 请求体。
// 排序固定为 published_key desc, article_id desc（规范排序），
// track_total_hits=true 保证 total 是与过滤条件同范围的精确计数。
func (q ArticleQuery) Body() (*bytes.Buffer, error) {
	var query map[string]interface{}
	if clause := q.boolClause(); len(clause) > 0 {
		query = map[string]interface{}{"bool": clause}
	} else {
		query = map[string]interface{}{"match_all": map[string]interface{}{}}
	}

	body := map[string]interface{}{
		"query": query,
		"sort": []map[string]interface{}{
			{"published_key": map[string]interface{}{"order": "desc"}},
			{"article_id": map[string]interface{}{"order": "desc"}},
		},
		"from":             q.From(),
		"size":             q.limit,
		"track_total_hits": true,
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return nil, fmt.Errorf("failed to encode es query: %w", err)
	}
	return &buf, nil
}

// NavBody 生成详情页前后翻页的 Elasticsearch 请求体。
// newer=true 时查找规范键严格更大、或键相同且 ID 更大的最近一篇；
// newer=false 时方向对称。可选的全文条件与列表检索一致，
// 保证翻页不会跳出当前检索范围。
func NavBody(text string, key int, articleID int64, newer bool) (*bytes.Buffer, error) {
	keyRange := "gt"
	idRange := "gt"
	order := "asc"
	if !newer {
		keyRange = "lt"
		idRange = "lt"
		order = "desc"
	}

	// (published_key > key) OR (published_key == key AND article_id > id)
	cursor := map[string]interface{}{
		"bool": map[string]interface{}{
			"should": []map[string]interface{}{
				{"range": map[string]interface{}{
					"published_key": map[string]interface{}{keyRange: key},
				}},
				{"bool": map[string]interface{}{
					"filter": []map[string]interface{}{
						{"term": map[string]interface{}{"published_key": key}},
						{"range": map[string]interface{}{
							"article_id": map[string]interface{}{idRange: articleID},
						}},
					},
				}},
			},
			"minimum_should_match": 1,
		},
	}

	clause := map[string]interface{}{
		"filter": cursor,
	}
	if text != "" {
		clause["must"] = map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":  text,
				"fields": []string{"title^2", "content"},
			},
		}
	}

	body := map[string]interface{}{
		"query": map[string]interface{}{"bool": clause},
		"sort": []map[string]interface{}{
			{"published_key": map[string]interface{}{"order": order}},
			{"article_id": map[string]interface{}{"order": order}},
		},
		"size":    1,
		"_source": []string{"article_id"},
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return nil, fmt.Errorf("failed to encode nav query: %w", err)
	}
	return &buf, nil
}
