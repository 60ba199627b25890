// Package service 实现了归档检索的业务逻辑。
package service

import "errors"

// 业务层的哨兵错误。handler 通过 errors.Is 区分三类结果
// （参数错误 / 未找到 / 底层存储失败），不依赖错误文本。
var (
	// ErrInvalidArgument 表示请求参数在任何存储调用之前就被拒绝。
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotFound 表示 ID 不存在，或被当前生效的全文过滤条件排除。
	ErrNotFound = errors.New("not found")
)
