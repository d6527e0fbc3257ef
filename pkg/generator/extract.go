package generator

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/shouni/gemini-ad-kit/pkg/domain"
	"google.golang.org/genai"
)

// ExtractImage はレスポンスから最初の画像パーツを取り出します。
// 画像が複数あっても最初の 1 枚だけを使い、残りは無視します。
func ExtractImage(resp *genai.GenerateContentResponse) (*domain.ImageAsset, error) {
	const op = "extract image"

	candidate, err := firstCandidate(op, resp)
	if err != nil {
		return nil, err
	}

	var ignored []string
	if candidate.Content != nil {
		for _, part := range candidate.Content.Parts {
			if part == nil || part.InlineData == nil || len(part.InlineData.Data) == 0 {
				continue
			}
			mimeType := domain.NormalizeMimeType(part.InlineData.MIMEType)
			if mimeType == "" {
				mimeType = domain.NormalizeMimeType(http.DetectContentType(part.InlineData.Data))
			}
			// 画像以外の添付や未対応形式は読み飛ばし、後続の画像を探す
			if !domain.IsSupportedMimeType(mimeType) {
				ignored = append(ignored, mimeType)
				continue
			}
			return &domain.ImageAsset{
				MimeType: mimeType,
				Data:     bytes.Clone(part.InlineData.Data),
			}, nil
		}
	}

	msg := "no image produced"
	if reason := abnormalFinish(candidate); reason != "" {
		msg += " (finish reason: " + reason + ")"
	}
	if len(ignored) > 0 {
		msg += " (ignored inline data: " + strings.Join(ignored, ", ") + ")"
	}
	if text := strings.TrimSpace(candidateText(candidate)); text != "" {
		msg += ": " + truncate(text, 200)
	}
	return nil, domain.NewContentError(op, msg, nil)
}

// ExtractCaptions はレスポンスのテキストを文字列配列として解析します。
// 自由文の応答を分割するような推測はせず、解析できなければ ContentError です。
func ExtractCaptions(resp *genai.GenerateContentResponse) ([]string, error) {
	const op = "extract captions"

	candidate, err := firstCandidate(op, resp)
	if err != nil {
		return nil, err
	}

	text := strings.TrimSpace(stripCodeFence(candidateText(candidate)))
	if text == "" {
		msg := "no captions text produced"
		if reason := abnormalFinish(candidate); reason != "" {
			msg += " (finish reason: " + reason + ")"
		}
		return nil, domain.NewContentError(op, msg, nil)
	}

	// null の配列や null 要素を空文字と区別するためポインタで受ける
	var raw []*string
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, domain.NewContentError(op, "captions are not a JSON array of strings", err)
	}
	if raw == nil {
		return nil, domain.NewContentError(op, "captions are not a JSON array of strings: got null", nil)
	}

	captions := make([]string, len(raw))
	for i, c := range raw {
		if c == nil {
			return nil, domain.NewContentError(op, fmt.Sprintf("caption %d is null", i), nil)
		}
		captions[i] = strings.TrimSpace(*c)
	}
	return captions, nil
}

// firstCandidate は最初の候補を返します。現状は最初の候補だけを利用します。
func firstCandidate(op string, resp *genai.GenerateContentResponse) (*genai.Candidate, error) {
	if resp == nil {
		return nil, domain.NewTransportError(op, "malformed response envelope: empty response", nil)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		// プロンプト自体がブロックされた場合は通信ではなく内容の問題
		if fb := resp.PromptFeedback; fb != nil && fb.BlockReason != "" {
			msg := fmt.Sprintf("prompt was blocked (%s)", fb.BlockReason)
			if fb.BlockReasonMessage != "" {
				msg += ": " + fb.BlockReasonMessage
			}
			return nil, domain.NewContentError(op, msg, nil)
		}
		return nil, domain.NewTransportError(op, "malformed response envelope: no candidates", nil)
	}
	return resp.Candidates[0], nil
}

func candidateText(c *genai.Candidate) string {
	if c.Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range c.Content.Parts {
		if part != nil && part.Text != "" {
			sb.WriteString(part.Text)
		}
	}
	return sb.String()
}

func abnormalFinish(c *genai.Candidate) string {
	if c.FinishReason == genai.FinishReasonUnspecified || c.FinishReason == genai.FinishReasonStop {
		return ""
	}
	return string(c.FinishReason)
}

// stripCodeFence は全体を囲む ```json ... ``` を 1 組だけ外します。
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") || !strings.HasSuffix(s, "```") || len(s) < 6 {
		return s
	}
	body := strings.TrimSuffix(s[3:], "```")
	if nl := strings.IndexByte(body, '\n'); nl >= 0 {
		lang := strings.TrimSpace(body[:nl])
		if lang == "" || lang == "json" {
			body = body[nl+1:]
		}
	}
	return body
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
