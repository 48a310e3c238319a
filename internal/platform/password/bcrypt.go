// Package password はbcryptによるパスワードのハッシュ化と検証を提供します。
package password

import (
	"fmt"
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

// BcryptHasher はusecase.PasswordHasherのbcrypt実装です。
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher は指定したコストでBcryptHasherを生成します。
// 範囲外のコストはbcrypt.DefaultCostに置き換えます。
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// CostFromEnv は環境変数 BCRYPT_COST からコストを読み込みます。未設定または不正な値の場合は0を返します。
func CostFromEnv() int {
	cost, err := strconv.Atoi(os.Getenv("BCRYPT_COST"))
	if err != nil {
		return 0
	}
	return cost
}

// Hash はパスワードをハッシュ化します。
// 72バイトを超える入力など、bcryptが拒否した場合はエラーを返します。
func (h *BcryptHasher) Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// Verify は平文パスワードがハッシュと一致するかを返します。
func (h *BcryptHasher) Verify(plain, hashed string) bool {
	// 第1引数はハッシュ化パスワード、第2引数は平文パスワード
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}
