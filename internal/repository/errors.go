package repository

import "errors"

// ErrNotFound 记录不存在（sql.ErrNoRows 统一映射为该错误，便于上层 errors.Is 判断）
var ErrNotFound = errors.New("not found")
