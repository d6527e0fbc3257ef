package domain

import (
	"errors"
	"fmt"
)

// ErrorKind は生成処理の失敗分類です。対処方法が異なるため呼び出し元で区別します。
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	// KindValidation は入力が前提条件を満たさない場合。通信は発生しません。
	KindValidation
	// KindTransport はネットワーク障害、非成功ステータス、不正なレスポンスエンベロープ。
	KindTransport
	// KindContent は通信は成功したが、使える内容が得られなかった場合。
	KindContent
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindTransport:
		return "transport"
	case KindContent:
		return "content"
	}
	return "unknown"
}

var (
	ErrValidation = errors.New("validation error")
	ErrTransport  = errors.New("transport error")
	ErrContent    = errors.New("content error")
)

// GenerationError は分類済みのエラーです。
// errors.Is で分類の sentinel と、ラップした原因の両方に一致します。
type GenerationError struct {
	Kind    ErrorKind
	Op      string
	Message string
	Err     error
}

func (e *GenerationError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	} else if e.Err != nil {
		msg = msg + ": " + e.Err.Error()
	}
	return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, msg)
}

func (e *GenerationError) Unwrap() []error {
	var errs []error
	if s := e.Kind.sentinel(); s != nil {
		errs = append(errs, s)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

func (k ErrorKind) sentinel() error {
	switch k {
	case KindValidation:
		return ErrValidation
	case KindTransport:
		return ErrTransport
	case KindContent:
		return ErrContent
	}
	return nil
}

// NewValidationError は入力検証の失敗を表すエラーを返します。
func NewValidationError(op, message string) error {
	return &GenerationError{Kind: KindValidation, Op: op, Message: message}
}

// NewTransportError は通信層の失敗を表すエラーを返します。
func NewTransportError(op, message string, err error) error {
	return &GenerationError{Kind: KindTransport, Op: op, Message: message, Err: err}
}

// NewContentError はモデルが使える内容を返さなかったことを表すエラーを返します。
func NewContentError(op, message string, err error) error {
	return &GenerationError{Kind: KindContent, Op: op, Message: message, Err: err}
}

// KindOf は err の分類を返します。分類済みでなければ KindUnknown です。
func KindOf(err error) ErrorKind {
	var genErr *GenerationError
	if errors.As(err, &genErr) {
		return genErr.Kind
	}
	return KindUnknown
}
