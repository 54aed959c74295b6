package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestStore_NilPassthrough(t *testing.T) {
	if err := Store("list", nil); err != nil {
		t.Errorf("nil 错误不应被包装，实际: %v", err)
	}
}

func TestStore_UnwrapAndClassify(t *testing.T) {
	cause := errors.New("connection refused")
	err := fmt.Errorf("list vacancies: %w", Store("vacancy.list", cause))

	if !IsStore(err) {
		t.Fatal("期望被识别为 StoreError")
	}
	if !errors.Is(err, cause) {
		t.Error("StoreError 应可解包出原始错误")
	}
	if IsStore(ErrNotFound) {
		t.Error("ErrNotFound 不应被识别为 StoreError")
	}
}
