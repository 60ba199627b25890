package service

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// monthNames 是英文月份名及常见缩写到月份序号的映射。
// September 另有四字母缩写 "sept"。
var monthNames = map[string]int{
	"january": 1, "jan": 1,
	"february": 2, "feb": 2,
	"march": 3, "mar": 3,
	"april": 4, "apr": 4,
	"may": 5,
	"june": 6, "jun": 6,
	"july": 7, "jul": 7,
	"august": 8, "aug": 8,
	"september": 9, "sep": 9, "sept": 9,
	"october": 10, "oct": 10,
	"november": 11, "nov": 11,
	"december": 12, "dec": 12,
}

// MonthNumber 把数据库/索引中各种形态的月份值归一化为 0..12。
// 历史数据里同一列混有数字、数字字符串和英文月份名，
// 任何比较都必须先经过这里，绝不能直接比较原始值。
// 无法识别的输入一律归为 0（未知月份，排在该年份的最前面）。
func MonthNumber(v interface{}) int {
	switch m := v.(type) {
	case nil:
		return 0
	case int:
		return clampMonth(m)
	case int64:
		return clampMonth(int(m))
	case float64:
		return clampMonth(int(math.Floor(m)))
	case json.Number:
		if f, err := m.Float64(); err == nil {
			return clampMonth(int(math.Floor(f)))
		}
		return 0
	case string:
		s := strings.ToLower(strings.TrimSpace(m))
		if s == "" {
			return 0
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return clampMonth(int(math.Floor(f)))
		}
		if n, ok := monthNames[s]; ok {
			return n
		}
		return 0
	default:
		return 0
	}
}

func clampMonth(m int) int {
	if m < 1 || m > 12 {
		return 0
	}
	return m
}

// PublishedKey 计算文章发布日期的规范排序键 year*100+month。
// 所有按发布日期的排序和翻页游标都只用这个键，
// 不单独比较 year/month，以保证平局处理唯一。
func PublishedKey(year interface{}, month interface{}) int {
	return yearNumber(year)*100 + MonthNumber(month)
}

// yearNumber 把年份值归一化为整数，缺失或无法解析时为 0。
func yearNumber(v interface{}) int {
	switch y := v.(type) {
	case nil:
		return 0
	case int:
		return y
	case int64:
		return int(y)
	case float64:
		return int(math.Floor(y))
	case json.Number:
		if f, err := y.Float64(); err == nil {
			return int(math.Floor(f))
		}
		return 0
	case string:
		s := strings.TrimSpace(y)
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return int(math.Floor(f))
		}
		return 0
	default:
		return 0
	}
}
