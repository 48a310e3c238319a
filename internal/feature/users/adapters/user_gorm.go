// Package adapters はusersフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"users_backend/internal/feature/users/domain/entity"
	"users_backend/internal/feature/users/usecase"
)

// pgUniqueViolation はPostgreSQLの一意制約違反のSQLSTATEです。
const pgUniqueViolation = "23505"

// userGorm はUserRepositoryインターフェースのGORM実装です。
// PostgreSQL（本番）とSQLite（テスト・ローカル開発）の両方で動作します。
type userGorm struct {
	db *gorm.DB
}

// userGormがUserRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.UserRepository = (*userGorm)(nil)

// NewUserGorm は指定されたgorm.DB接続でuserGormの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタです。
func NewUserGorm(db *gorm.DB) *userGorm {
	return &userGorm{db: db}
}

// FindAll は全ユーザーをID順に返します。
func (r *userGorm) FindAll(ctx context.Context) ([]entity.User, error) {
	var users []entity.User
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// FindByID はIDでユーザーを取得します。
// ユーザーが存在しない場合、usecase.ErrUserNotFoundを返します。
func (r *userGorm) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	return r.first(r.db.WithContext(ctx).Where("id = ?", id))
}

// FindByEmail はメールアドレスでユーザーを取得します。
// ユーザーが存在しない場合、usecase.ErrUserNotFoundを返します。
func (r *userGorm) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.first(r.db.WithContext(ctx).Where("email = ?", email))
}

// Create はユーザーをデータベースに追加します。
// 同じメールアドレスのユーザーが既に存在する場合、usecase.ErrEmailAlreadyExistsを返します。
func (r *userGorm) Create(ctx context.Context, u *entity.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		return translate(err)
	}
	return nil
}

// Update は名前・メール・年齢・生年月日を更新し、更新後のレコードを返します。
func (r *userGorm) Update(ctx context.Context, id uint, f entity.UserUpdate) (*entity.User, error) {
	return r.update(ctx, id, map[string]any{
		"name":  f.Name,
		"email": f.Email,
		"age":   f.Age,
		"dob":   f.Dob,
	})
}

// UpdateName は名前のみを更新します。
func (r *userGorm) UpdateName(ctx context.Context, id uint, name string) (*entity.User, error) {
	return r.update(ctx, id, map[string]any{"name": name})
}

// UpdateEmail はメールアドレスのみを更新します。
func (r *userGorm) UpdateEmail(ctx context.Context, id uint, email string) (*entity.User, error) {
	return r.update(ctx, id, map[string]any{"email": email})
}

// UpdatePassword はパスワードハッシュのみを更新します。
func (r *userGorm) UpdatePassword(ctx context.Context, id uint, password string) (*entity.User, error) {
	return r.update(ctx, id, map[string]any{"password": password})
}

// Delete はユーザーを物理削除し、削除前のレコードを返します。
// 読み取りと削除は同一トランザクション内で行います。
func (r *userGorm) Delete(ctx context.Context, id uint) (*entity.User, error) {
	var deleted *entity.User
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		u, err := r.first(tx.Where("id = ?", id))
		if err != nil {
			return err
		}
		res := tx.Delete(&entity.User{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return usecase.ErrUserNotFound
		}
		deleted = u
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

// update applies columns to the row with the given id and reloads it.
func (r *userGorm) update(ctx context.Context, id uint, columns map[string]any) (*entity.User, error) {
	db := r.db.WithContext(ctx)
	res := db.Model(&entity.User{}).Where("id = ?", id).Updates(columns)
	if res.Error != nil {
		return nil, translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, usecase.ErrUserNotFound
	}
	return r.first(db.Where("id = ?", id))
}

// first returns the first user matched by q.
func (r *userGorm) first(q *gorm.DB) (*entity.User, error) {
	var u entity.User
	if err := q.First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// translate maps a unique index violation to usecase.ErrEmailAlreadyExists.
// gorm.ErrDuplicatedKey requires gorm.Config{TranslateError: true}; the pgconn
// check covers connections opened without it.
func translate(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return usecase.ErrEmailAlreadyExists
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return usecase.ErrEmailAlreadyExists
	}
	return err
}
