// Package dto はusersフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// CreateUserReq は POST /api/v1/users のリクエストボディです。
// age は数値と数値文字列の両方を受け付けるため any で受け取ります。
type CreateUserReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Age      any    `json:"age"`
	Dob      string `json:"dob"`
	Password string `json:"password"`
}

// UpdateUserReq は PUT /api/v1/users/:id のリクエストボディです。
type UpdateUserReq struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Age   any    `json:"age"`
	Dob   string `json:"dob"`
}

// NameReq は PATCH /api/v1/users/:id/name のリクエストボディです。
type NameReq struct {
	Name string `json:"name"`
}

// EmailReq は PATCH /api/v1/users/:id/email のリクエストボディです。
type EmailReq struct {
	Email string `json:"email"`
}

// PasswordReq は PATCH /api/v1/users/:id/password のリクエストボディです。
type PasswordReq struct {
	NewPassword string `json:"newPassword"`
	OldPassword string `json:"oldPassword"`
}
