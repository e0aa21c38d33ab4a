package xproc

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// useFakeArea 以 size 字节的缓冲区替代真实参数区。
// 测试结束时恢复真实参数区并重置标题。
func useFakeArea(t *testing.T, size int) []byte {
	t.Helper()
	area := make([]byte, size)
	restore := swapTitleArea(area)
	t.Cleanup(func() {
		restore()
		if Supported() {
			_ = Reset()
		}
	})
	return area
}

// 不可 t.Parallel()：替换包级参数区。
func TestRename_Validation(t *testing.T) {
	useFakeArea(t, 32)

	require.ErrorIs(t, Rename(""), ErrEmptyTitle)
	require.ErrorIs(t, Rename(" \t\n"), ErrEmptyTitle)
	require.ErrorIs(t, Rename("a\x00b"), ErrInvalidTitle)

	// 校验失败不修改参数区
	title, err := Title()
	require.NoError(t, err)
	assert.Empty(t, title)
}

// 不可 t.Parallel()：替换包级参数区。
func TestRename_ValidationBeforePlatformCheck(t *testing.T) {
	restore := swapTitleArea(nil)
	defer restore()

	require.ErrorIs(t, Rename(""), ErrEmptyTitle)
	require.ErrorIs(t, Rename("a\x00b"), ErrInvalidTitle)
}

// 不可 t.Parallel()：替换包级参数区。
func TestRename_Unsupported(t *testing.T) {
	restore := swapTitleArea(nil)
	defer restore()

	assert.False(t, Supported())
	assert.Equal(t, 0, Capacity())
	require.ErrorIs(t, CheckSupport(), ErrUnsupportedPlatform)

	// 多次调用结果一致，不 panic
	for range 3 {
		require.ErrorIs(t, Rename("rename-test"), ErrUnsupportedPlatform)
	}
	require.ErrorIs(t, Reset(), ErrUnsupportedPlatform)

	title, err := Title()
	require.ErrorIs(t, err, ErrUnsupportedPlatform)
	assert.Empty(t, title)
}

// 不可 t.Parallel()：替换包级参数区。
func TestRename_FakeArea(t *testing.T) {
	area := useFakeArea(t, 32)

	require.True(t, Supported())
	require.NoError(t, CheckSupport())
	assert.Equal(t, 32, Capacity())

	require.NoError(t, Rename("rename-test"))
	title, err := Title()
	require.NoError(t, err)
	assert.Equal(t, "rename-test", title)

	// 标题之后全部为 NUL
	for i := len("rename-test"); i < len(area); i++ {
		require.Zero(t, area[i], "byte %d", i)
	}
}

// 不可 t.Parallel()：替换包级参数区。
func TestRename_ShorterTitleClearsTail(t *testing.T) {
	useFakeArea(t, 32)

	require.NoError(t, Rename("a-much-longer-title"))
	require.NoError(t, Rename("short"))

	title, err := Title()
	require.NoError(t, err)
	assert.Equal(t, "short", title)
}

// 不可 t.Parallel()：替换包级参数区。
func TestRename_Idempotent(t *testing.T) {
	area := useFakeArea(t, 32)

	require.NoError(t, Rename("worker"))
	once := append([]byte(nil), area...)

	require.NoError(t, Rename("worker"))
	assert.Equal(t, once, area)

	title, err := Title()
	require.NoError(t, err)
	assert.Equal(t, "worker", title)
}

// 不可 t.Parallel()：替换包级参数区。
func TestRename_Truncates(t *testing.T) {
	area := useFakeArea(t, 8)

	err := Rename("0123456789")
	require.ErrorIs(t, err, ErrTitleTruncated)
	assert.Equal(t, "01234567", readArea(area))

	// 读回的是请求的完整标题，而不是参数区中的前缀
	title, err := Title()
	require.NoError(t, err)
	assert.Equal(t, "0123456789", title)
}

// 不可 t.Parallel()：替换包级参数区。
func TestRename_TruncatesOnRuneBoundary(t *testing.T) {
	area := useFakeArea(t, 4)

	require.ErrorIs(t, Rename("ab中文"), ErrTitleTruncated)
	assert.Equal(t, "ab", readArea(area))

	title, err := Title()
	require.NoError(t, err)
	assert.Equal(t, "ab中文", title)
}

// 不可 t.Parallel()：替换包级参数区。
// 参数区不足时 Rename 要么读回原值，要么报错，不能静默截断。
func TestRename_SmallAreaNeverSilent(t *testing.T) {
	useFakeArea(t, 3)

	err := Rename("rename-test")
	title, terr := Title()
	require.NoError(t, terr)
	if err == nil {
		assert.Equal(t, "rename-test", title)
		return
	}
	require.ErrorIs(t, err, ErrTitleTruncated)
	assert.Contains(t, err.Error(), "wrote 3 of 11 bytes")
	assert.Equal(t, "rename-test", title)

	// 之后能容纳的标题正常写入
	require.NoError(t, Rename("ab"))
	title, terr = Title()
	require.NoError(t, terr)
	assert.Equal(t, "ab", title)
}

// 不可 t.Parallel()：替换包级参数区。
func TestReset_RestoresInvocationName(t *testing.T) {
	useFakeArea(t, 256)
	require.NotEmpty(t, InvocationName())

	require.NoError(t, Rename("rename-test"))
	require.NoError(t, Reset())

	title, err := Title()
	require.NoError(t, err)
	assert.Equal(t, InvocationName(), title)
}

// 不可 t.Parallel()：替换包级参数区。
// 配合 -race 运行，验证 titleMu 的保护。
func TestRename_Concurrent(t *testing.T) {
	useFakeArea(t, 32)

	titles := []string{"alpha", "bravo-bravo", "charlie-charlie-c"}

	const goroutines = 10
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := range goroutines {
		go func(idx int) {
			defer wg.Done()
			if err := Rename(titles[idx%len(titles)]); err != nil {
				t.Errorf("concurrent Rename: %v", err)
			}
			if _, err := Title(); err != nil {
				t.Errorf("concurrent Title: %v", err)
			}
		}(i)
	}
	wg.Wait()

	// 最终标题必须是某一次完整写入的结果，不能是多次写入的混合。
	title, err := Title()
	require.NoError(t, err)
	assert.Contains(t, titles, title)
}

func TestTruncateUTF8(t *testing.T) {
	tests := []struct {
		name  string
		s     string
		limit int
		want  string
	}{
		{"fits", "abc", 5, "abc"},
		{"exact", "abc", 3, "abc"},
		{"cut", "abcdef", 3, "abc"},
		{"zero", "abc", 0, ""},
		{"negative", "abc", -1, ""},
		{"rune_boundary", "中文", 4, "中"},
		{"rune_inside", "中文", 2, ""},
		{"mixed", "a中b", 3, "a"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, truncateUTF8(tt.s, tt.limit))
		})
	}
}

func TestReadArea(t *testing.T) {
	assert.Equal(t, "abc", readArea([]byte("abc\x00def")))
	assert.Equal(t, "abc", readArea([]byte("abc")))
	assert.Equal(t, "", readArea([]byte("\x00abc")))
	assert.Equal(t, "", readArea(nil))
}

func TestWriteArea(t *testing.T) {
	area := []byte(strings.Repeat("x", 10))
	writeArea(area, "hi")
	assert.Equal(t, []byte("hi\x00\x00\x00\x00\x00\x00\x00\x00"), area)
}

func TestCloneArgs(t *testing.T) {
	args := []string{"/bin/app", "-v"}
	out := cloneArgs(args)
	assert.Equal(t, args, out)
	assert.Empty(t, cloneArgs(nil))
}
