package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"users_backend/internal/feature/users/domain/entity"
)

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
//
// 対象レコードが存在しない場合は ErrUserNotFound を、メールアドレスの一意制約に
// 違反した場合は ErrEmailAlreadyExists を返します。それ以外のエラーはそのまま返します。
type UserRepository interface {
	FindAll(ctx context.Context) ([]entity.User, error)
	FindByID(ctx context.Context, id uint) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create は新しいユーザーを保存し、採番されたIDを user に設定します。
	Create(ctx context.Context, user *entity.User) error

	Update(ctx context.Context, id uint, fields entity.UserUpdate) (*entity.User, error)
	UpdateName(ctx context.Context, id uint, name string) (*entity.User, error)
	UpdateEmail(ctx context.Context, id uint, email string) (*entity.User, error)
	UpdatePassword(ctx context.Context, id uint, password string) (*entity.User, error)

	// Delete はユーザーを削除し、削除したレコードを返します。
	Delete(ctx context.Context, id uint) (*entity.User, error)
}

// PasswordHasher はパスワードの一方向ハッシュ化と検証を行います。
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, hashed string) bool
}

// EmailValidator reports whether an email address is well formed.
type EmailValidator func(email string) bool

// CreateUserInput is the field bundle accepted by Create.
// Age is left untyped because clients send it as a number or a numeric string.
type CreateUserInput struct {
	Name     string
	Email    string
	Age      any
	Dob      string
	Password string
}

// UpdateUserInput is the field bundle accepted by Update.
type UpdateUserInput struct {
	Name  string
	Email string
	Age   any
	Dob   string
}

// ChangePasswordInput is the field bundle accepted by ChangePassword.
type ChangePasswordInput struct {
	NewPassword string
	OldPassword string
}

// Outcome is the result of every UserUsecase operation: an HTTP status, a
// message, and the affected record(s) on success.
type Outcome struct {
	Status  int
	Message string
	User    *entity.User
	Users   []entity.User
}

// Failed reports whether the outcome is an error response.
func (o Outcome) Failed() bool {
	return o.Status >= http.StatusBadRequest
}

// UserUsecase はユーザーリソースの検証とオーケストレーションを担当します。
// すべての操作は Outcome を返し、エラーを呼び出し元に伝播させません。
type UserUsecase struct {
	users      UserRepository
	hasher     PasswordHasher
	validEmail EmailValidator
}

// NewUserUsecase はUserUsecaseの新しいインスタンスを生成します。
func NewUserUsecase(users UserRepository, hasher PasswordHasher, validEmail EmailValidator) *UserUsecase {
	return &UserUsecase{
		users:      users,
		hasher:     hasher,
		validEmail: validEmail,
	}
}

// ListUsers は全ユーザーを返します。0件の場合は404になります。
func (u *UserUsecase) ListUsers(ctx context.Context) Outcome {
	return u.run("list_users", func() (Outcome, error) {
		users, err := u.users.FindAll(ctx)
		if err != nil {
			return Outcome{}, fmt.Errorf("find all users: %w", err)
		}
		if len(users) == 0 {
			return Outcome{}, ErrNoUsers
		}
		return Outcome{Status: http.StatusOK, Message: "User Data Found", Users: users}, nil
	})
}

// GetUser はIDでユーザーを取得します。
func (u *UserUsecase) GetUser(ctx context.Context, rawID string) Outcome {
	return u.run("get_user", func() (Outcome, error) {
		id, err := parseID(rawID)
		if err != nil {
			return Outcome{}, err
		}
		user, err := u.findExisting(ctx, id)
		if err != nil {
			return Outcome{}, err
		}
		return Outcome{Status: http.StatusOK, Message: fmt.Sprintf("User Found for %d", id), User: user}, nil
	})
}

// CreateUser は入力を検証し、パスワードをハッシュ化して新規ユーザーを登録します。
// 検証順序: 必須項目 → 年齢 → メール形式 → 生年月日 → メール重複（DB）。
func (u *UserUsecase) CreateUser(ctx context.Context, in CreateUserInput) Outcome {
	return u.run("create_user", func() (Outcome, error) {
		if in.Name == "" || in.Email == "" || in.Dob == "" || in.Password == "" {
			return Outcome{}, ErrAllFieldsRequired
		}
		age, err := parseAge(in.Age)
		if err != nil {
			return Outcome{}, err
		}
		if !u.validEmail(in.Email) {
			return Outcome{}, ErrInvalidEmail
		}
		dob, err := parseDob(in.Dob)
		if err != nil {
			return Outcome{}, err
		}

		if err := u.ensureEmailFree(ctx, in.Email); err != nil {
			return Outcome{}, err
		}

		hashed, err := u.hasher.Hash(in.Password)
		if err != nil || hashed == "" {
			slog.Warn("password hashing failed", "op", "create_user", "error", err)
			return Outcome{}, ErrHashPassword
		}

		user := &entity.User{
			Name:     in.Name,
			Email:    in.Email,
			Age:      age,
			Dob:      dob,
			Password: hashed,
		}
		if err := u.users.Create(ctx, user); err != nil {
			if errors.Is(err, ErrEmailAlreadyExists) {
				return Outcome{}, ErrEmailTaken
			}
			return Outcome{}, fmt.Errorf("create user: %w", err)
		}
		if user.ID == 0 {
			return Outcome{}, ErrCreateFailed
		}
		return Outcome{Status: http.StatusCreated, Message: "User created successfully", User: user}, nil
	})
}

// UpdateUser は名前・メール・年齢・生年月日をまとめて更新します。
// この操作ではメール重複の事前チェックを行わず、一意制約違反のみを扱います。
func (u *UserUsecase) UpdateUser(ctx context.Context, rawID string, in UpdateUserInput) Outcome {
	return u.run("update_user", func() (Outcome, error) {
		id, err := parseID(rawID)
		if err != nil {
			return Outcome{}, err
		}
		if in.Name == "" || in.Email == "" || in.Dob == "" {
			return Outcome{}, ErrAllFieldsRequired
		}
		age, err := parseAge(in.Age)
		if err != nil {
			return Outcome{}, err
		}
		if !u.validEmail(in.Email) {
			return Outcome{}, ErrMalformedEmail
		}
		dob, err := parseDob(in.Dob)
		if err != nil {
			return Outcome{}, err
		}

		if _, err := u.findExisting(ctx, id); err != nil {
			return Outcome{}, err
		}

		updated, err := u.users.Update(ctx, id, entity.UserUpdate{
			Name:  in.Name,
			Email: in.Email,
			Age:   age,
			Dob:   dob,
		})
		if err := writeResult(updated, err, ErrUpdateFailed); err != nil {
			return Outcome{}, err
		}
		return Outcome{Status: http.StatusOK, Message: "User updated successfully", User: updated}, nil
	})
}

// DeleteUser はユーザーを削除し、削除したレコードを返します。
func (u *UserUsecase) DeleteUser(ctx context.Context, rawID string) Outcome {
	return u.run("delete_user", func() (Outcome, error) {
		id, err := parseID(rawID)
		if err != nil {
			return Outcome{}, err
		}
		if _, err := u.findExisting(ctx, id); err != nil {
			return Outcome{}, err
		}

		deleted, err := u.users.Delete(ctx, id)
		if err := writeResult(deleted, err, ErrDeleteFailed); err != nil {
			return Outcome{}, err
		}
		return Outcome{
			Status:  http.StatusOK,
			Message: fmt.Sprintf("User with ID %d deleted successfully", id),
			User:    deleted,
		}, nil
	})
}

// RenameUser はユーザー名のみを更新します。
func (u *UserUsecase) RenameUser(ctx context.Context, rawID, name string) Outcome {
	return u.run("rename_user", func() (Outcome, error) {
		id, err := parseID(rawID)
		if err != nil {
			return Outcome{}, err
		}
		if name == "" {
			return Outcome{}, ErrNameRequired
		}
		if _, err := u.findExisting(ctx, id); err != nil {
			return Outcome{}, err
		}

		updated, err := u.users.UpdateName(ctx, id, name)
		if err := writeResult(updated, err, ErrNameUpdateFailed); err != nil {
			return Outcome{}, err
		}
		return Outcome{Status: http.StatusOK, Message: "User name updated successfully", User: updated}, nil
	})
}

// ChangeEmail はメールアドレスのみを更新します。
// 新しいメールアドレスの所有者が存在すれば、それが対象ユーザー自身であっても重複として扱います。
func (u *UserUsecase) ChangeEmail(ctx context.Context, rawID, email string) Outcome {
	return u.run("change_email", func() (Outcome, error) {
		id, err := parseID(rawID)
		if err != nil {
			return Outcome{}, err
		}
		if email == "" {
			return Outcome{}, ErrEmailRequired
		}
		if !u.validEmail(email) {
			return Outcome{}, ErrMalformedEmail
		}
		if _, err := u.findExisting(ctx, id); err != nil {
			return Outcome{}, err
		}
		if err := u.ensureEmailFree(ctx, email); err != nil {
			return Outcome{}, err
		}

		updated, err := u.users.UpdateEmail(ctx, id, email)
		if err := writeResult(updated, err, ErrEmailUpdateFailed); err != nil {
			return Outcome{}, err
		}
		return Outcome{Status: http.StatusOK, Message: "User Email updated successfully", User: updated}, nil
	})
}

// ChangePassword は旧パスワードを検証したうえで、新しいパスワードのハッシュを保存します。
func (u *UserUsecase) ChangePassword(ctx context.Context, rawID string, in ChangePasswordInput) Outcome {
	return u.run("change_password", func() (Outcome, error) {
		id, err := parseID(rawID)
		if err != nil {
			return Outcome{}, err
		}
		if in.NewPassword == "" || in.OldPassword == "" {
			return Outcome{}, ErrPasswordsRequired
		}
		user, err := u.findExisting(ctx, id)
		if err != nil {
			return Outcome{}, err
		}

		if !u.hasher.Verify(in.OldPassword, user.Password) {
			return Outcome{}, ErrOldPasswordIncorrect
		}
		hashed, err := u.hasher.Hash(in.NewPassword)
		if err != nil || hashed == "" {
			slog.Warn("password hashing failed", "op", "change_password", "user_id", id, "error", err)
			return Outcome{}, ErrHashNewPassword
		}

		updated, err := u.users.UpdatePassword(ctx, id, hashed)
		if err := writeResult(updated, err, ErrPasswordUpdateFailed); err != nil {
			return Outcome{}, err
		}
		return Outcome{Status: http.StatusOK, Message: "User Password updated successfully", User: updated}, nil
	})
}

// findExisting loads the target user, mapping absence to a 404.
func (u *UserUsecase) findExisting(ctx context.Context, id uint) (*entity.User, error) {
	user, err := u.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrNoSuchUser
		}
		return nil, fmt.Errorf("find user %d: %w", id, err)
	}
	if user == nil {
		return nil, ErrNoSuchUser
	}
	return user, nil
}

// ensureEmailFree fails with ErrEmailTaken when any user already owns email.
func (u *UserUsecase) ensureEmailFree(ctx context.Context, email string) error {
	owner, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil
		}
		return fmt.Errorf("find user by email: %w", err)
	}
	if owner != nil {
		return ErrEmailTaken
	}
	return nil
}

// writeResult maps the result of a gateway write. A missing row or a nil
// record becomes failed; a unique index violation becomes ErrEmailTaken.
func writeResult(user *entity.User, err error, failed *Error) error {
	switch {
	case errors.Is(err, ErrUserNotFound):
		return failed
	case errors.Is(err, ErrEmailAlreadyExists):
		return ErrEmailTaken
	case err != nil:
		return fmt.Errorf("write user: %w", err)
	case user == nil:
		return failed
	}
	return nil
}

// run is the operation boundary. Mapped failures become their own outcome;
// anything else, panics included, is logged and reported as a 500.
func (u *UserUsecase) run(op string, fn func() (Outcome, error)) (out Outcome) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("user operation panicked", "op", op, "panic", r)
			out = failure(ErrInternal)
		}
	}()

	res, err := fn()
	if err == nil {
		return res
	}

	var mapped *Error
	if errors.As(err, &mapped) {
		return failure(mapped)
	}
	slog.Error("user operation failed", "op", op, "error", err)
	return failure(ErrInternal)
}

func failure(e *Error) Outcome {
	return Outcome{Status: e.Status, Message: e.Message}
}
