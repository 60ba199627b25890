package service

import (
	"encoding/json"
	"testing"
)

func decodeBody(t *testing.T, raw []byte) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("请求体不是合法 JSON: %v", err)
	}
	return body
}

func TestArticleQuery_DefaultBody(t *testing.T) {
	buf, err := NewArticleQuery(1, 20).Body()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	body := decodeBody(t, buf.Bytes())

	query := body["query"].(map[string]interface{})
	if _, ok := query["match_all"]; !ok {
		t.Errorf("无条件时应为 match_all, got %v", query)
	}
	if body["from"].(float64) != 0 {
		t.Errorf("from = %v, want 0", body["from"])
	}
	if body["size"].(float64) != 20 {
		t.Errorf("size = %v, want 20", body["size"])
	}
	if body["track_total_hits"] != true {
		t.Errorf("track_total_hits 必须为 true")
	}

	sorts := body["sort"].([]interface{})
	if len(sorts) != 2 {
		t.Fatalf("sort 子句数 = %d, want 2", len(sorts))
	}
	first := sorts[0].(map[string]interface{})
	if _, ok := first["published_key"]; !ok {
		t.Errorf("首个排序字段应为 published_key, got %v", first)
	}
	second := sorts[1].(map[string]interface{})
	if _, ok := second["article_id"]; !ok {
		t.Errorf("次级排序字段应为 article_id, got %v", second)
	}
}

func TestArticleQuery_TextAndIDs(t *testing.T) {
	q := NewArticleQuery(3, 10).WithText("hot work").WithArticleIDs([]int64{5, 7})
	buf, err := q.Body()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	body := decodeBody(t, buf.Bytes())

	if body["from"].(float64) != 20 {
		t.Errorf("from = %v, want 20", body["from"])
	}

	boolClause := body["query"].(map[string]interface{})["bool"].(map[string]interface{})
	must := boolClause["must"].(map[string]interface{})
	mm := must["multi_match"].(map[string]interface{})
	if mm["query"] != "hot work" {
		t.Errorf("multi_match.query = %v, want 'hot work'", mm["query"])
	}

	filter := boolClause["filter"].(map[string]interface{})
	terms := filter["terms"].(map[string]interface{})
	ids := terms["article_id"].([]interface{})
	if len(ids) != 2 || ids[0].(float64) != 5 || ids[1].(float64) != 7 {
		t.Errorf("terms.article_id = %v, want [5 7]", ids)
	}
}

// 查询描述是值语义：派生新查询不影响原查询。
func TestArticleQuery_Immutable(t *testing.T) {
	base := NewArticleQuery(1, 20)
	_ = base.WithText("hazard")

	buf, err := base.Body()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	body := decodeBody(t, buf.Bytes())
	if _, ok := body["query"].(map[string]interface{})["match_all"]; !ok {
		t.Errorf("原查询不应被 WithText 修改")
	}
}

func TestArticleQuery_EmptyIDRestriction(t *testing.T) {
	buf, err := NewArticleQuery(1, 20).WithArticleIDs([]int64{}).Body()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	body := decodeBody(t, buf.Bytes())

	// 空限定集也是有效限定（调用方应在此之前短路，但语义必须正确）
	boolClause := body["query"].(map[string]interface{})["bool"].(map[string]interface{})
	filter := boolClause["filter"].(map[string]interface{})
	ids := filter["terms"].(map[string]interface{})["article_id"].([]interface{})
	if len(ids) != 0 {
		t.Errorf("空限定集应生成空 terms, got %v", ids)
	}
}

func TestNavBody_Newer(t *testing.T) {
	buf, err := NavBody("", 202203, 7, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	body := decodeBody(t, buf.Bytes())

	if body["size"].(float64) != 1 {
		t.Errorf("size = %v, want 1", body["size"])
	}

	sorts := body["sort"].([]interface{})
	keySort := sorts[0].(map[string]interface{})["published_key"].(map[string]interface{})
	if keySort["order"] != "asc" {
		t.Errorf("newer 方向排序应为 asc, got %v", keySort["order"])
	}

	boolClause := body["query"].(map[string]interface{})["bool"].(map[string]interface{})
	cursor := boolClause["filter"].(map[string]interface{})["bool"].(map[string]interface{})
	should := cursor["should"].([]interface{})
	if len(should) != 2 {
		t.Fatalf("游标条件应有两个分支, got %d", len(should))
	}
	rangeClause := should[0].(map[string]interface{})["range"].(map[string]interface{})
	keyCond := rangeClause["published_key"].(map[string]interface{})
	if keyCond["gt"].(float64) != 202203 {
		t.Errorf("published_key.gt = %v, want 202203", keyCond["gt"])
	}
	if cursor["minimum_should_match"].(float64) != 1 {
		t.Errorf("minimum_should_match = %v, want 1", cursor["minimum_should_match"])
	}
}

func TestNavBody_OlderWithText(t *testing.T) {
	buf, err := NavBody("hazard", 202203, 7, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	body := decodeBody(t, buf.Bytes())

	sorts := body["sort"].([]interface{})
	keySort := sorts[0].(map[string]interface{})["published_key"].(map[string]interface{})
	if keySort["order"] != "desc" {
		t.Errorf("older 方向排序应为 desc, got %v", keySort["order"])
	}

	boolClause := body["query"].(map[string]interface{})["bool"].(map[string]interface{})
	must, ok := boolClause["must"].(map[string]interface{})
	if !ok {
		t.Fatalf("带 q 时翻页查询应携带全文条件")
	}
	if must["multi_match"].(map[string]interface{})["query"] != "hazard" {
		t.Errorf("翻页的全文条件应与列表一致")
	}
}
