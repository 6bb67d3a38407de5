package util

import "errors"

// 校验类错误
var (
	ErrValidation       = errors.New("validation failed")
	ErrEmailRegistered  = errors.New("ایمیل قبلاً ثبت شده است")
	ErrPasswordMismatch = errors.New("رمز عبور و تکرار آن یکسان نیستند")
	ErrConsentRequired  = errors.New("پذیرش شرایط استفاده الزامی است")
)

// 认证类错误
var (
	ErrInvalidCredentials = errors.New("ایمیل یا رمز عبور نادرست است")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrPermissionDenied   = errors.New("permission denied")
)

// 资源不存在
var (
	ErrUserNotFound     = errors.New("کاربر یافت نشد")
	ErrJourneyNotFound  = errors.New("مسیر یافت نشد")
	ErrProgressNotFound = errors.New("پیشرفتی برای این مسیر ثبت نشده است")
)
