// Package handler はusersフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"users_backend/internal/feature/users/transport/http/dto"
	"users_backend/internal/feature/users/usecase"
)

// msgInvalidBody はJSONとして解釈できないリクエストボディに対する応答です。
const msgInvalidBody = "Invalid request body"

// UserUsecase はユーザーリソースに対するユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type UserUsecase interface {
	ListUsers(ctx context.Context) usecase.Outcome
	GetUser(ctx context.Context, rawID string) usecase.Outcome
	CreateUser(ctx context.Context, in usecase.CreateUserInput) usecase.Outcome
	UpdateUser(ctx context.Context, rawID string, in usecase.UpdateUserInput) usecase.Outcome
	DeleteUser(ctx context.Context, rawID string) usecase.Outcome
	RenameUser(ctx context.Context, rawID, name string) usecase.Outcome
	ChangeEmail(ctx context.Context, rawID, email string) usecase.Outcome
	ChangePassword(ctx context.Context, rawID string, in usecase.ChangePasswordInput) usecase.Outcome
}

// UserHandler はユーザーリソースのHTTPリクエストを処理します。
// 失敗時はメッセージをtext/plainで、成功時は {message, data} をJSONで返します。
type UserHandler struct {
	users UserUsecase
}

// NewUserHandler はUserHandlerの新しいインスタンスを生成します。
func NewUserHandler(users UserUsecase) *UserHandler {
	return &UserHandler{users: users}
}

// List は GET /api/v1/users を処理します。
func (h *UserHandler) List(c *gin.Context) {
	h.render(c, h.users.ListUsers(c.Request.Context()))
}

// Get は GET /api/v1/users/:id を処理します。
func (h *UserHandler) Get(c *gin.Context) {
	h.render(c, h.users.GetUser(c.Request.Context(), c.Param("id")))
}

// Create は POST /api/v1/users を処理します。
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserReq
	if !bindBody(c, &req) {
		return
	}
	h.render(c, h.users.CreateUser(c.Request.Context(), usecase.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Age:      req.Age,
		Dob:      req.Dob,
		Password: req.Password,
	}))
}

// Update は PUT /api/v1/users/:id を処理します。
func (h *UserHandler) Update(c *gin.Context) {
	var req dto.UpdateUserReq
	if !bindBody(c, &req) {
		return
	}
	h.render(c, h.users.UpdateUser(c.Request.Context(), c.Param("id"), usecase.UpdateUserInput{
		Name:  req.Name,
		Email: req.Email,
		Age:   req.Age,
		Dob:   req.Dob,
	}))
}

// Delete は DELETE /api/v1/users/:id を処理します。
func (h *UserHandler) Delete(c *gin.Context) {
	h.render(c, h.users.DeleteUser(c.Request.Context(), c.Param("id")))
}

// Rename は PATCH /api/v1/users/:id/name を処理します。
func (h *UserHandler) Rename(c *gin.Context) {
	var req dto.NameReq
	if !bindBody(c, &req) {
		return
	}
	h.render(c, h.users.RenameUser(c.Request.Context(), c.Param("id"), req.Name))
}

// ChangeEmail は PATCH /api/v1/users/:id/email を処理します。
func (h *UserHandler) ChangeEmail(c *gin.Context) {
	var req dto.EmailReq
	if !bindBody(c, &req) {
		return
	}
	h.render(c, h.users.ChangeEmail(c.Request.Context(), c.Param("id"), req.Email))
}

// ChangePassword は PATCH /api/v1/users/:id/password を処理します。
func (h *UserHandler) ChangePassword(c *gin.Context) {
	var req dto.PasswordReq
	if !bindBody(c, &req) {
		return
	}
	h.render(c, h.users.ChangePassword(c.Request.Context(), c.Param("id"), usecase.ChangePasswordInput{
		NewPassword: req.NewPassword,
		OldPassword: req.OldPassword,
	}))
}

// render はOutcomeをHTTPレスポンスに変換します。
func (h *UserHandler) render(c *gin.Context, out usecase.Outcome) {
	switch {
	case out.Failed():
		c.String(out.Status, out.Message)
	case out.Users != nil:
		c.JSON(out.Status, dto.UserListEnvelope{Message: out.Message, Data: dto.NewUserListResponse(out.Users)})
	case out.User != nil:
		c.JSON(out.Status, dto.UserEnvelope{Message: out.Message, Data: dto.NewUserResponse(*out.User)})
	default:
		c.JSON(out.Status, gin.H{"message": out.Message})
	}
}

// bindBody はJSONボディをreqにデコードします。空のボディは {} として扱います。
// デコードに失敗した場合は400を書き込み、falseを返します。
func bindBody(c *gin.Context, req any) bool {
	err := c.ShouldBindJSON(req)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}
	slog.Warn("request body rejected", "error", err, "path", c.FullPath(), "remote_addr", c.ClientIP())
	c.String(http.StatusBadRequest, msgInvalidBody)
	return false
}
