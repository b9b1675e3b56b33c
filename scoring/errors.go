package scoring

import (
	"errors"
	"fmt"
)

// エラー分類。呼び出し側はerrors.Isで判別します。
var (
	ErrValidation   = errors.New("validation error")   // 不正な入力やコンテキスト違い
	ErrPrecondition = errors.New("precondition error") // ポリシーガードによる拒否
	ErrNotFound     = errors.New("not found")          // 参照先エンティティが存在しない
	ErrStore        = errors.New("store error")        // 永続化レイヤの失敗
)

// storeErr はGORMのエラーをErrStoreでラップします。
func storeErr(err error) error {
	return fmt.Errorf("%w: %v", ErrStore, err)
}
