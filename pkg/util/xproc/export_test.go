package xproc

import "sync"

// ResetProcessName 重置进程名称缓存（仅用于测试）。
func ResetProcessName() {
	processNameOnce = sync.Once{}
	processNameValue = ""
}

// swapTitleArea 替换参数区并清空已记录的标题（仅用于测试），返回恢复函数。
// 使用者不可 t.Parallel()。
func swapTitleArea(area []byte) (restore func()) {
	titleMu.Lock()
	origArea, origValue := titleArea, titleValue
	titleArea, titleValue = area, ""
	titleMu.Unlock()

	return func() {
		titleMu.Lock()
		titleArea, titleValue = origArea, origValue
		titleMu.Unlock()
	}
}
