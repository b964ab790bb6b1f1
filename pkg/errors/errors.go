package errors

import "errors"

// 错误分类。各模块业务错误包装其中之一，HTTP 层用 errors.Is 映射状态码
var (
	// ErrNotFound 引用的记录不存在
	ErrNotFound = errors.New("not found")
	// ErrConflict 违反唯一性规则
	ErrConflict = errors.New("conflict")
	// ErrInvalid 请求参数不合法
	ErrInvalid = errors.New("invalid request")
	// ErrPersistence 存储层读写失败
	ErrPersistence = errors.New("persistence failure")
)
