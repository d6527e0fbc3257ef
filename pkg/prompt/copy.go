package prompt

import (
	"fmt"
	"strings"

	"github.com/shouni/gemini-ad-kit/pkg/domain"
)

// DefaultCaptionCount は 1 回の生成で要求するキャプション数です。
const DefaultCaptionCount = 3

// BuildCopy は CopyRequest から、キャプションを JSON 配列で返させるプロンプトを組み立てます。
func BuildCopy(req domain.CopyRequest, count int) string {
	if count <= 0 {
		count = DefaultCaptionCount
	}
	channel := channelOrDefault(req.ChannelName)

	lines := []string{
		fmt.Sprintf("Write %d distinct ad captions for a %s post.", count, channel),
		"Channel: " + channel,
		"Product type: " + req.ProductType,
		"Product details: " + req.ProductDetails,
	}
	if strings.TrimSpace(req.ToneName) != "" {
		lines = append(lines, "Tone: "+req.ToneName)
	}
	lines = append(lines,
		fmt.Sprintf("Each caption must suit the conventions and length limits of %s and differ clearly from the others.", channel),
		fmt.Sprintf("Respond with a JSON array of exactly %d strings, one caption per element.", count),
		"Do not add any commentary, numbering, headings or markdown outside the JSON array.",
	)
	return strings.Join(lines, "\n")
}
