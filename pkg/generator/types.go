package generator

import "time"

const (
	DefaultImageModel = "gemini-2.5-flash-image"
	DefaultTextModel  = "gemini-2.5-flash"
	DefaultTimeout    = 120 * time.Second

	mimeTypeJSON = "application/json"
)

// Pipeline は呼び出し元の操作の種類です。
type Pipeline string

const (
	PipelineMockup Pipeline = "mockup"
	PipelineCopy   Pipeline = "copy"
)

// State は 1 回の呼び出しの状態です。Cancelled は存在しません。
type State string

const (
	StatePending   State = "pending"
	StateSucceeded State = "succeeded"
	StateFailed    State = "failed"
)

// Options は AdGenerator の設定です。ゼロ値の項目はデフォルトが使われます。
type Options struct {
	ImageModel   string
	TextModel    string
	Timeout      time.Duration // 1 回の呼び出しの上限。負数なら無制限
	CaptionCount int
	Observer     Observer
}
