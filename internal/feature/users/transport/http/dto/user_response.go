package dto

import "users_backend/internal/feature/users/domain/entity"

// DobLayout は生年月日のレスポンス形式です（UTC、ミリ秒付き）。
const DobLayout = "2006-01-02T15:04:05.000Z07:00"

// UserResponse はユーザーのレスポンスDTOです。
type UserResponse struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Age      int    `json:"age"`
	Dob      string `json:"dob"`
	Password string `json:"password"` // 保存済みハッシュ
}

// UserEnvelope は単一ユーザーを返す成功レスポンスです。
type UserEnvelope struct {
	Message string       `json:"message"`
	Data    UserResponse `json:"data"`
}

// UserListEnvelope はユーザー一覧を返す成功レスポンスです。
type UserListEnvelope struct {
	Message string         `json:"message"`
	Data    []UserResponse `json:"data"`
}

// NewUserResponse はエンティティをレスポンスDTOに変換します。
func NewUserResponse(u entity.User) UserResponse {
	return UserResponse{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		Age:      u.Age,
		Dob:      u.Dob.UTC().Format(DobLayout),
		Password: u.Password,
	}
}

// NewUserListResponse はエンティティのスライスをレスポンスDTOに変換します。
func NewUserListResponse(users []entity.User) []UserResponse {
	res := make([]UserResponse, 0, len(users))
	for _, u := range users {
		res = append(res, NewUserResponse(u))
	}
	return res
}
